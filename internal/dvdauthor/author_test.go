package dvdauthor

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

type scanCall struct {
	base string
	t    GroupType
}

type fakeScanner struct {
	calls []scanCall
	video []string
	err   error
}

func (s *fakeScanner) Scan(ctx context.Context, base string, vg *VobGroup, t GroupType) error {
	s.calls = append(s.calls, scanCall{base, t})
	if s.err != nil {
		return s.err
	}
	if t == TitleSet {
		for _, tok := range s.video {
			if _, err := vg.SetVideoAttr(AttrAny, tok); err != nil {
				return err
			}
		}
	}
	return nil
}

type fakeWriter struct {
	titleSets []string
	tocs      []string
	fixes     []scanCall
	ws        *Workset
}

func (w *fakeWriter) WriteTitleSet(ctx context.Context, base string, ws *Workset) error {
	w.titleSets = append(w.titleSets, base)
	w.ws = ws
	return nil
}

func (w *fakeWriter) WriteTOC(ctx context.Context, path string, ws *Workset, fpc *PGC) error {
	w.tocs = append(w.tocs, path)
	w.ws = ws
	return nil
}

func (w *fakeWriter) FixVobs(ctx context.Context, base string, vg *VobGroup, ws *Workset, t GroupType) error {
	w.fixes = append(w.fixes, scanCall{base, t})
	return nil
}

func newFakeAuthor(t *testing.T, mode RegisterMode, cat Catalog) (*Author, *fakeScanner, *fakeWriter) {
	t.Helper()
	lg, _ := newTestLogger(t)
	sc := &fakeScanner{video: []string{"pal", "16:9"}}
	wr := &fakeWriter{}
	a := New(Options{Logger: lg, Registers: mode, Scanner: sc, Writer: wr, Catalog: cat})
	return a, sc, wr
}

func TestGenerateTitleSetWithoutMenuVobs(t *testing.T) {
	a, sc, wr := newFakeAuthor(t, RegistersDefault, nil)
	menus := a.NewMenuGroup()
	titles := titleGroup(t, a, []string{"title.vob"})

	if err := a.GenerateTitleSet(context.Background(), menus, titles, ""); err != nil {
		t.Fatalf("GenerateTitleSet: %v", err)
	}
	if want := []scanCall{{"", TitleSet}}; !reflect.DeepEqual(sc.calls, want) {
		t.Fatalf("scans = %v, want %v", sc.calls, want)
	}
	if wr.ws.TitleSet != 1 || len(wr.titleSets) != 1 {
		t.Fatalf("title set = %d, writes = %d", wr.ws.TitleSet, len(wr.titleSets))
	}
	if want := []scanCall{{"", TitleSet}}; !reflect.DeepEqual(wr.fixes, want) {
		t.Fatalf("fixes = %v, want %v", wr.fixes, want)
	}
	mv := menus.VobGroup().Video()
	if mv.TVFormat != PAL || mv.Aspect != Aspect16x9 {
		t.Fatalf("menu video = %+v, want copied from titles", mv)
	}
}

func TestGenerateTitleSetPicksNumber(t *testing.T) {
	cat := FSCatalog{FS: fstest.MapFS{
		"VTS_01_0.IFO": {Data: buildTitleSetIFO()},
		"VTS_02_0.IFO": {Data: buildTitleSetIFO()},
	}}
	a, sc, wr := newFakeAuthor(t, RegistersDefault, cat)
	menus := a.NewMenuGroup()
	menuPGC := a.NewPGCGroup(TitleSetMenu)
	p := NewPGC()
	s := NewSource("menu.vob")
	s.AddCell(0, 1, CellChapter, 0, nil)
	p.AddSource(s)
	menuPGC.AddPGC(p)
	if err := menus.AddGroup("en", menuPGC); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	titles := titleGroup(t, a, []string{"title.vob"})

	if err := a.GenerateTitleSet(context.Background(), menus, titles, "/out"); err != nil {
		t.Fatalf("GenerateTitleSet: %v", err)
	}
	base := filepath.Join("/out", "VIDEO_TS", "VTS_03")
	if want := []scanCall{{base, TitleSetMenu}, {base, TitleSet}}; !reflect.DeepEqual(sc.calls, want) {
		t.Fatalf("scans = %v, want %v", sc.calls, want)
	}
	if wr.ws.TitleSet != 3 {
		t.Fatalf("title set = %d, want 3", wr.ws.TitleSet)
	}
	if want := []scanCall{{base, TitleSetMenu}, {base, TitleSet}}; !reflect.DeepEqual(wr.fixes, want) {
		t.Fatalf("fixes = %v, want %v", wr.fixes, want)
	}
	if got := menuPGC.Entries(); got != EntryPTT|EntryRoot {
		t.Fatalf("menu entries = %v, want ptt and root", got)
	}
}

func TestGenerateTitleSetErrors(t *testing.T) {
	a, _, _ := newFakeAuthor(t, RegistersDefault, nil)
	err := a.GenerateTitleSet(context.Background(), a.NewMenuGroup(), a.NewPGCGroup(TitleSet), "")
	if !errors.Is(err, ErrNoTitles) {
		t.Fatalf("err = %v, want %v", err, ErrNoTitles)
	}

	a, sc, _ := newFakeAuthor(t, RegistersDefault, nil)
	boom := errors.New("boom")
	sc.err = boom
	err = a.GenerateTitleSet(context.Background(), a.NewMenuGroup(), titleGroup(t, a, []string{"t.vob"}), "")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	a, sc, _ = newFakeAuthor(t, RegistersDefault, nil)
	sc.video = []string{"4:3", "nopanscan"}
	err = a.GenerateTitleSet(context.Background(), a.NewMenuGroup(), titleGroup(t, a, []string{"t.vob"}), "")
	if !errors.Is(err, ErrWidescreenConflict) {
		t.Fatalf("err = %v, want %v", err, ErrWidescreenConflict)
	}
}

func TestGenerateTitleSetJumppadMenu(t *testing.T) {
	a, _, _ := newFakeAuthor(t, RegistersJumppad, nil)
	menus := a.NewMenuGroup()
	if err := a.GenerateTitleSet(context.Background(), menus, titleGroup(t, a, []string{"t.vob"}), ""); err != nil {
		t.Fatalf("GenerateTitleSet: %v", err)
	}
	langs := menus.Languages()
	if len(langs) != 1 || langs[0].Lang != "en" {
		t.Fatalf("languages = %+v, want dummy en menu", langs)
	}
	if got := langs[0].Group.Entries(); got != EntryPTT {
		t.Fatalf("dummy menu entries = %v, want ptt", got)
	}
}

func TestGenerateTOC(t *testing.T) {
	cat := FSCatalog{FS: fstest.MapFS{
		"VIDEO_TS.IFO": {Data: []byte{0}},
		"VTS_01_0.IFO": {Data: buildTitleSetIFO()},
	}}
	a, sc, wr := newFakeAuthor(t, RegistersDefault, cat)
	menus := a.NewMenuGroup()
	vmgm := a.NewPGCGroup(ManagerMenu)
	vmgm.AddPGC(NewPGC())
	menus.AddGroup("en", vmgm)

	if err := a.GenerateTOC(context.Background(), nil, menus, "/out"); err != nil {
		t.Fatalf("GenerateTOC: %v", err)
	}
	if len(sc.calls) != 0 {
		t.Fatalf("scans = %v, want none", sc.calls)
	}
	dir := filepath.Join("/out", "VIDEO_TS")
	if want := []string{filepath.Join(dir, "VIDEO_TS.IFO"), filepath.Join(dir, "VIDEO_TS.BUP")}; !reflect.DeepEqual(wr.tocs, want) {
		t.Fatalf("writes = %v, want %v", wr.tocs, want)
	}
	if len(wr.ws.TOC.TitleSets) != 1 || wr.ws.TOC.TitleSets[0].Chapters[0] != 3 {
		t.Fatalf("toc = %+v", wr.ws.TOC)
	}
	if vmgm.Entries() != EntryTitle {
		t.Fatalf("vmgm entries = %v, want title", vmgm.Entries())
	}
}

func TestGenerateTOCWithoutTitleSets(t *testing.T) {
	a, _, _ := newFakeAuthor(t, RegistersDefault, FSCatalog{FS: fstest.MapFS{}})
	err := a.GenerateTOC(context.Background(), nil, a.NewMenuGroup(), "/out")
	if !errors.Is(err, ErrNoTitleSets) {
		t.Fatalf("err = %v, want %v", err, ErrNoTitleSets)
	}
}

func TestResolveRegisterMode(t *testing.T) {
	if _, err := ResolveRegisterMode(true, true); !errors.Is(err, ErrRegisterModeConflict) {
		t.Fatalf("err = %v, want %v", err, ErrRegisterModeConflict)
	}
	if m, _ := ResolveRegisterMode(false, true); m != RegistersAll || m.String() != "allgprm" {
		t.Fatalf("mode = %v", m)
	}
}
