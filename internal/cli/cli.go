package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/autobrr/go-dvdauthor/internal/config"
	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

const (
	exitOK    = 0
	exitError = 1
)

// Options are the global flags shared by every command. Set flags take
// precedence over the configuration file.
type Options struct {
	ConfigPath string
	Jumppad    bool
	AllGPRM    bool
	LogLevel   string
	FrameRate  string
}

func (o Options) load() (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.Jumppad {
		cfg.Jumppad = true
	}
	if o.AllGPRM {
		cfg.AllGPRM = true
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.FrameRate != "" {
		cfg.DefaultFrameRate = o.FrameRate
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(stderr io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(stderr, log.Options{Prefix: "dvdauthor", Level: lvl})
}

// setup resolves the configuration and builds an author logging to stderr.
// On failure the error is already reported.
func setup(opts Options, stderr io.Writer) (*dvdauthor.Author, *config.Config, bool) {
	cfg, err := opts.load()
	if err != nil {
		newLogger(stderr, log.InfoLevel).Error(err.Error())
		return nil, nil, false
	}
	a := dvdauthor.New(dvdauthor.Options{
		Logger:           newLogger(stderr, cfg.Level()),
		Registers:        cfg.Registers,
		DefaultFrameRate: cfg.FrameRate,
	})
	return a, cfg, true
}

// AttrsRequest holds the declaration tokens of the attrs command. Audio and
// Subpicture carry one comma separated token list per track.
type AttrsRequest struct {
	Menu       bool
	Video      []string
	Audio      []string
	Subpicture []string
}

// Attrs negotiates a set of declared stream attributes the way a title set
// without detected streams would, and prints the result.
func Attrs(opts Options, req AttrsRequest, stdout, stderr io.Writer) int {
	a, _, ok := setup(opts, stderr)
	if !ok {
		return exitError
	}
	lg := newLogger(stderr, log.ErrorLevel)

	var (
		vg *dvdauthor.VobGroup
		t  = dvdauthor.TitleSet
	)
	if req.Menu {
		vg = a.NewMenuGroup().VobGroup()
		t = dvdauthor.TitleSetMenu
	} else {
		vg = a.NewPGCGroup(dvdauthor.TitleSet).VobGroup()
	}

	for _, tok := range splitTokens(req.Video) {
		if _, err := vg.SetVideoAttr(dvdauthor.AttrAny, tok); err != nil {
			lg.Error(err.Error())
			return exitError
		}
	}
	for track, list := range req.Audio {
		for _, tok := range splitTokens([]string{list}) {
			if _, err := vg.SetAudioAttr(track, dvdauthor.AttrAny, tok); err != nil {
				lg.Error(fmt.Sprintf("audio %d: %v", track, err))
				return exitError
			}
		}
	}
	for track, list := range req.Subpicture {
		for _, tok := range splitTokens([]string{list}) {
			if _, err := vg.SetSubpicAttr(track, dvdauthor.AttrAny, tok); err != nil {
				lg.Error(fmt.Sprintf("subpicture %d: %v", track, err))
				return exitError
			}
		}
	}

	if err := vg.Resolve(t); err != nil {
		lg.Error(err.Error())
		return exitError
	}
	renderAttrs(stdout, t, vg)
	return exitOK
}

func splitTokens(lists []string) []string {
	var out []string
	for _, list := range lists {
		for _, tok := range strings.Split(list, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// Timecode encodes seconds into DVD BCD timecodes. Arguments starting with
// 0x are decoded instead.
func Timecode(opts Options, args []string, stdout, stderr io.Writer) int {
	_, cfg, ok := setup(opts, stderr)
	if !ok {
		return exitError
	}
	lg := newLogger(stderr, log.ErrorLevel)
	denom := int64(90090)
	if cfg.FrameRate == dvdauthor.FrameRatePAL {
		denom = 90000
	}

	for _, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "0x") {
			tc, err := strconv.ParseUint(arg[2:], 16, 32)
			if err != nil {
				lg.Error(fmt.Sprintf("invalid timecode %q", arg))
				return exitError
			}
			ticks := dvdauthor.DecodeTime(uint32(tc))
			fmt.Fprintf(stdout, "%s  %s  %.3fs\n", styleValue.Render(fmt.Sprintf("0x%08X", tc)), formatTimecode(uint32(tc)), float64(ticks)/90000)
			continue
		}
		sec, err := strconv.ParseFloat(arg, 64)
		if err != nil || sec < 0 {
			lg.Error(fmt.Sprintf("invalid duration %q", arg))
			return exitError
		}
		tc := dvdauthor.BuildTime(int64(sec*90000+.5), denom)
		fmt.Fprintf(stdout, "%.3fs  %s  %s\n", sec, styleValue.Render(fmt.Sprintf("0x%08X", tc)), formatTimecode(tc))
	}
	return exitOK
}

func formatTimecode(tc uint32) string {
	rate := "pal"
	if (tc>>6)&3 == 3 {
		rate = "ntsc"
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x %s", byte(tc>>24), byte(tc>>16), byte(tc>>8), byte(tc)&0x3F, rate)
}

// SubpicMask prints the subpicture display modes legal for an aspect ratio
// and an optional widescreen conversion.
func SubpicMask(opts Options, aspect, widescreen string, stdout, stderr io.Writer) int {
	a, _, ok := setup(opts, stderr)
	if !ok {
		return exitError
	}
	lg := newLogger(stderr, log.ErrorLevel)
	vg := a.NewPGCGroup(dvdauthor.TitleSet).VobGroup()
	if _, err := vg.SetVideoAttr(dvdauthor.AttrAspect, aspect); err != nil {
		lg.Error(err.Error())
		return exitError
	}
	if widescreen != "" {
		if _, err := vg.SetVideoAttr(dvdauthor.AttrWidescreen, widescreen); err != nil {
			lg.Error(err.Error())
			return exitError
		}
	}

	d := vg.Video()
	mask := dvdauthor.ComputeSubpicMask(d.Aspect, d.Widescreen)
	var modes []string
	for m := dvdauthor.ModeNormal; m <= dvdauthor.ModePanscan; m++ {
		if mask.Has(m) {
			modes = append(modes, m.String())
		}
	}
	fmt.Fprintf(stdout, "%s %s\n", styleLabel.Render("legal modes:"), styleValue.Render(strings.Join(modes, ",")))
	return exitOK
}
