package dvdauthor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// RegisterMode selects how general purpose registers may be used by the
// command compiler.
type RegisterMode uint8

const (
	RegistersDefault RegisterMode = iota
	// RegistersJumppad generates extra commands so jumps and calls can reach
	// more destinations.
	RegistersJumppad
	// RegistersAll frees all 16 registers at the cost of convenience
	// features.
	RegistersAll
)

func (m RegisterMode) String() string {
	switch m {
	case RegistersJumppad:
		return "jumppad"
	case RegistersAll:
		return "allgprm"
	default:
		return "default"
	}
}

// ResolveRegisterMode maps the two mutually exclusive switches onto a mode.
func ResolveRegisterMode(jumppad, allgprm bool) (RegisterMode, error) {
	switch {
	case jumppad && allgprm:
		return RegistersDefault, ErrRegisterModeConflict
	case jumppad:
		return RegistersJumppad, nil
	case allgprm:
		return RegistersAll, nil
	default:
		return RegistersDefault, nil
	}
}

// Scanner is the vobu scanner. It fills every vob of vg with its vobu
// index and channel samples, feeds detected attributes back through the
// VobGroup setters and assigns the cell id ranges of every cell.
type Scanner interface {
	Scan(ctx context.Context, base string, vg *VobGroup, t GroupType) error
}

// Writer serializes the validated model.
type Writer interface {
	WriteTitleSet(ctx context.Context, base string, ws *Workset) error
	WriteTOC(ctx context.Context, path string, ws *Workset, fpc *PGC) error
	FixVobs(ctx context.Context, base string, vg *VobGroup, ws *Workset, t GroupType) error
}

// Workset is everything the writer sees for one generation run.
type Workset struct {
	TOC      *TOCSummary
	Menus    *MenuGroup
	Titles   *PGCGroup
	TitleSet int
	Mode     RegisterMode
}

type Options struct {
	Logger           *log.Logger
	Registers        RegisterMode
	DefaultFrameRate FrameRate
	Scanner          Scanner
	Writer           Writer
	Catalog          Catalog
}

// Author builds the groups of one disc and drives their generation.
type Author struct {
	opts    Options
	log     *log.Logger
	scanner Scanner
	writer  Writer
	catalog Catalog
}

func New(opts Options) *Author {
	lg := opts.Logger
	if lg == nil {
		lg = log.NewWithOptions(os.Stderr, log.Options{Prefix: "dvdauthor"})
	}
	return &Author{
		opts:    opts,
		log:     lg,
		scanner: opts.Scanner,
		writer:  opts.Writer,
		catalog: opts.Catalog,
	}
}

func (a *Author) jumppad() bool {
	return a.opts.Registers == RegistersJumppad
}

// NewPGCGroup creates a group of the given type. Title groups get their
// own vob group.
func (a *Author) NewPGCGroup(t GroupType) *PGCGroup {
	pg := &PGCGroup{Type: t, log: a.log}
	if t == TitleSet {
		pg.vg = newVobGroup(a.log, a.opts.DefaultFrameRate)
	}
	return pg
}

func (a *Author) NewMenuGroup() *MenuGroup {
	return &MenuGroup{vg: newVobGroup(a.log, a.opts.DefaultFrameRate)}
}

// forceMenu gives jumppad a menu to work with.
func (a *Author) forceMenu(mg *MenuGroup, t GroupType) {
	if !a.jumppad() || len(mg.langs) > 0 {
		return
	}
	a.log.Warn("The use of jumppad requires a menu; creating a dummy ENGLISH menu")
	mg.langs = append(mg.langs, LangGroup{Lang: "en", Group: a.NewPGCGroup(t)})
}

func (a *Author) prepareMenus(mg *MenuGroup, t GroupType) error {
	a.forceMenu(mg, t)
	for _, l := range mg.langs {
		pg := l.Group
		if err := pg.validateSummary(); err != nil {
			return fmt.Errorf("%s menu '%s': %w", t, l.Lang, err)
		}
		pg.createVobs(mg.vg)
		switch t {
		case ManagerMenu:
			pg.forceAddEntry(EntryTitle, a.jumppad())
		case TitleSetMenu:
			pg.forceAddEntry(EntryPTT, a.jumppad())
			pg.checkAddEntry(EntryRoot, a.jumppad())
		}
	}
	return nil
}

func (a *Author) listTitleSets(ctx context.Context) ([]string, error) {
	if a.catalog == nil {
		return nil, nil
	}
	return a.catalog.List(ctx)
}

// GenerateTitleSet authors the next free title set below base: validates
// and resolves menus and titles, scans their vobs, negotiates attributes
// and hands the result to the writer. An empty base writes to "" and
// uses title set 1.
func (a *Author) GenerateTitleSet(ctx context.Context, menus *MenuGroup, titles *PGCGroup, base string) error {
	a.log.Info("dvdauthor creating VTS")
	ws := &Workset{Menus: menus, Titles: titles, Mode: a.opts.Registers}

	if err := a.prepareMenus(menus, TitleSetMenu); err != nil {
		return err
	}
	if err := titles.validateSummary(); err != nil {
		return fmt.Errorf("titles: %w", err)
	}
	titles.createVobs(titles.vg)
	if len(titles.pgcs) == 0 {
		return ErrNoTitles
	}

	ws.TitleSet = 1
	if base != "" {
		names, err := a.listTitleSets(ctx)
		if err != nil {
			return fmt.Errorf("list title sets: %w", err)
		}
		ws.TitleSet = NextTitleSetNumber(names)
		if ws.TitleSet > maxTitleSets {
			return fmt.Errorf("%w: all %d numbers are taken", ErrTooManyTitleSets, maxTitleSets)
		}
		a.log.Infof("Picking VTS %02d", ws.TitleSet)
		base = filepath.Join(base, "VIDEO_TS", fmt.Sprintf("VTS_%02d", ws.TitleSet))
	}

	hasMenuVobs := len(menus.vg.vobs) > 0
	if hasMenuVobs {
		if err := a.scan(ctx, base, menus.vg, TitleSetMenu); err != nil {
			return err
		}
	}
	if err := a.scan(ctx, base, titles.vg, TitleSet); err != nil {
		return err
	}
	if !hasMenuVobs {
		menus.vg.video = titles.vg.video
	}

	if a.writer == nil {
		return nil
	}
	if err := a.writer.WriteTitleSet(ctx, base, ws); err != nil {
		return fmt.Errorf("write title set: %w", err)
	}
	if hasMenuVobs {
		if err := a.writer.FixVobs(ctx, base, menus.vg, ws, TitleSetMenu); err != nil {
			return fmt.Errorf("fix menu vobs: %w", err)
		}
	}
	if err := a.writer.FixVobs(ctx, base, titles.vg, ws, TitleSet); err != nil {
		return fmt.Errorf("fix title vobs: %w", err)
	}
	return nil
}

// GenerateTOC authors the video manager for the title sets already present
// below base. fpc is the first-play PGC and may be nil.
func (a *Author) GenerateTOC(ctx context.Context, fpc *PGC, menus *MenuGroup, base string) error {
	if base == "" {
		return nil
	}
	ws := &Workset{Menus: menus, Mode: a.opts.Registers}
	if err := a.prepareMenus(menus, ManagerMenu); err != nil {
		return err
	}

	a.log.Info("dvdauthor creating table of contents")
	names, err := a.listTitleSets(ctx)
	if err != nil {
		return fmt.Errorf("list title sets: %w", err)
	}
	if ws.TOC, err = a.scanTitleSets(ctx, names); err != nil {
		return err
	}

	vtsdir := filepath.Join(base, "VIDEO_TS")
	hasMenuVobs := len(menus.vg.vobs) > 0
	if hasMenuVobs {
		a.log.Info("Creating menu for TOC")
		vob := filepath.Join(vtsdir, "VIDEO_TS.VOB")
		if err := a.scan(ctx, vob, menus.vg, ManagerMenu); err != nil {
			return err
		}
		if a.writer != nil {
			if err := a.writer.FixVobs(ctx, vob, menus.vg, ws, ManagerMenu); err != nil {
				return fmt.Errorf("fix menu vobs: %w", err)
			}
		}
	}

	if a.writer == nil {
		return nil
	}
	for _, name := range []string{"VIDEO_TS.IFO", "VIDEO_TS.BUP"} {
		if err := a.writer.WriteTOC(ctx, filepath.Join(vtsdir, name), ws, fpc); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func (a *Author) scan(ctx context.Context, base string, vg *VobGroup, t GroupType) error {
	if a.scanner != nil {
		if err := a.scanner.Scan(ctx, base, vg, t); err != nil {
			return fmt.Errorf("scan %s vobs: %w", t, err)
		}
	}
	if err := vg.Resolve(t); err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}
	return nil
}
