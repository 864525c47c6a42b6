package dvdauthor

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// GroupType says which part of the disc a PGC group authors.
type GroupType uint8

const (
	TitleSet GroupType = iota
	TitleSetMenu
	ManagerMenu
)

var groupTypeNames = [...]string{"VTS", "VTSM", "VMGM"}

func (t GroupType) String() string {
	if int(t) < len(groupTypeNames) {
		return groupTypeNames[t]
	}
	return "invalid"
}

func (t GroupType) isMenu() bool {
	return t != TitleSet
}

// allowedEntries is the set of menu entries a group type may define.
func (t GroupType) allowedEntries() Entry {
	switch t {
	case TitleSetMenu:
		return EntryRoot | EntrySubtitle | EntryAudio | EntryAngle | EntryPTT
	case ManagerMenu:
		return EntryTitle
	default:
		return 0
	}
}

// VobGroup holds the stream attributes negotiated for one disc section,
// the vobs of that section and every PGC drawing from them.
type VobGroup struct {
	video  videoAttrs
	audio  []audioAttrs
	subpic []subpicAttrs
	vobs   []*Vob
	pgcs   []*PGC

	defaultRate FrameRate
	log         *log.Logger
}

func newVobGroup(lg *log.Logger, defaultRate FrameRate) *VobGroup {
	return &VobGroup{log: lg, defaultRate: defaultRate}
}

func (vg *VobGroup) Vobs() []*Vob { return vg.vobs }
func (vg *VobGroup) PGCs() []*PGC { return vg.pgcs }

func (vg *VobGroup) Video() VideoDesc {
	return vg.video.desc()
}

func (vg *VobGroup) Audio() []AudioDesc {
	out := make([]AudioDesc, len(vg.audio))
	for i := range vg.audio {
		out[i] = vg.audio[i].desc()
	}
	return out
}

func (vg *VobGroup) Subpictures() []SubpicDesc {
	out := make([]SubpicDesc, len(vg.subpic))
	for i := range vg.subpic {
		out[i] = vg.subpic[i].desc()
	}
	return out
}

// AudioChannel returns the logical channel of audio track i, -1 if unbound.
func (vg *VobGroup) AudioChannel(i int) int {
	if i < 0 || i >= len(vg.audio) || vg.audio[i].id == 0 {
		return -1
	}
	f := vg.audio[i].format.get()
	if f == AudioFormatNone {
		return -1
	}
	return audioChannel(f, vg.audio[i].id)
}

// SetVideoAttr applies a video declaration token. With AttrAny every video
// attribute is tried in turn. It reports whether the token conflicted
// with an earlier declaration.
func (vg *VobGroup) SetVideoAttr(kind AttrKind, s string) (bool, error) {
	return vg.video.set(kind, s, vg.log)
}

// SetVideoFrameRate merges a detected MPEG frame rate code. Reserved codes
// are rejected.
func (vg *VobGroup) SetVideoFrameRate(rate FrameRate) (bool, error) {
	if rate == FrameRateNone || rate > FrameRate60 {
		return false, fmt.Errorf("%w: frame rate code %d", ErrUnknownAttribute, uint8(rate))
	}
	if !vg.video.frameRate.isSet() && rate != FrameRatePAL && rate != FrameRateNTSC {
		vg.log.Warnf("not a valid DVD frame rate: %s", rate)
	}
	return vg.video.frameRate.update(rate, frameRateVocab, vg.log), nil
}

func (vg *VobGroup) SetAudioAttr(track int, kind AttrKind, s string) (bool, error) {
	if track < 0 || track >= maxAudioTracks {
		return false, fmt.Errorf("%w: audio track %d", ErrTrackRange, track)
	}
	vg.growAudio(track + 1)
	return vg.audio[track].set(kind, s, vg.log)
}

func (vg *VobGroup) SetSubpicAttr(track int, kind AttrKind, s string) (bool, error) {
	if track < 0 || track >= maxSubpicTracks {
		return false, fmt.Errorf("%w: subpicture track %d", ErrTrackRange, track)
	}
	vg.growSubpic(track + 1)
	conflict, err := vg.subpic[track].set(kind, s, vg.log)
	if err != nil {
		return false, fmt.Errorf("track %d: %w", track, err)
	}
	return conflict, nil
}

// SetSubpicStream binds subpicture stream id to track for one display mode.
func (vg *VobGroup) SetSubpicStream(track int, mode string, id int) error {
	if track < 0 || track >= maxSubpicTracks {
		return fmt.Errorf("%w: subpicture track %d", ErrTrackRange, track)
	}
	vg.growSubpic(track + 1)
	m, ok := ParseSubpicMode(mode)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrBadMode, mode)
	}
	return setSubpicSlot(&vg.subpic[track].idmap[m], track, m, id)
}

func (vg *VobGroup) growAudio(n int) {
	for len(vg.audio) < n {
		vg.audio = append(vg.audio, audioAttrs{})
	}
}

func (vg *VobGroup) growSubpic(n int) {
	for len(vg.subpic) < n {
		vg.subpic = append(vg.subpic, subpicAttrs{})
	}
}

// PGCGroup is an ordered set of PGCs of one type. Title groups own their
// vob group; menu groups use the one of their MenuGroup.
type PGCGroup struct {
	Type GroupType

	pgcs       []*PGC
	vg         *VobGroup
	allEntries Entry
	numEntries int
	log        *log.Logger
}

func (pg *PGCGroup) PGCs() []*PGC { return pg.pgcs }

// VobGroup is nil for menu groups.
func (pg *PGCGroup) VobGroup() *VobGroup { return pg.vg }

// Entries is the union of all entries defined in the group.
func (pg *PGCGroup) Entries() Entry { return pg.allEntries }

func (pg *PGCGroup) NumEntries() int { return pg.numEntries }

func (pg *PGCGroup) AddPGC(p *PGC) error {
	if p.group != nil {
		return ErrPGCGrouped
	}
	pg.pgcs = append(pg.pgcs, p)
	p.group = pg
	return nil
}

func (pg *PGCGroup) Destroy() {
	for _, p := range pg.pgcs {
		p.Destroy()
	}
	pg.pgcs = nil
	pg.vg = nil
}

// createVobs registers the group's PGCs with vg, resolves every source to
// a vob and distributes color tables.
func (pg *PGCGroup) createVobs(vg *VobGroup) {
	vg.pgcs = append(vg.pgcs, pg.pgcs...)
	for _, p := range pg.pgcs {
		for _, s := range p.sources {
			vg.addVob(p, s)
		}
	}
	pg.assignColors()
}

// LangGroup is one language variant of a menu set.
type LangGroup struct {
	Lang  string
	Group *PGCGroup
}

// MenuGroup is a set of per-language menu groups sharing one vob group.
type MenuGroup struct {
	langs []LangGroup
	vg    *VobGroup
}

func (mg *MenuGroup) Languages() []LangGroup { return mg.langs }
func (mg *MenuGroup) VobGroup() *VobGroup { return mg.vg }

func (mg *MenuGroup) AddGroup(lang string, pg *PGCGroup) error {
	code, err := normalizeLanguage(lang)
	if err != nil {
		return fmt.Errorf("menu language: %w", err)
	}
	mg.langs = append(mg.langs, LangGroup{Lang: code, Group: pg})
	return nil
}

func (mg *MenuGroup) Destroy() {
	for _, l := range mg.langs {
		l.Group.Destroy()
	}
	mg.langs = nil
}
