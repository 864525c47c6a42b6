package dvdauthor

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxButtons = 36
	// PauseInfinite holds a cell or PGC still forever.
	PauseInfinite = 255
)

// Command is a parsed navigation command owned by the model. The model
// never inspects it; it only releases it when its owner is destroyed.
type Command interface {
	Release()
}

func releaseCommand(c Command) {
	if c != nil {
		c.Release()
	}
}

// CellMark says whether a cell starts a program or a chapter.
type CellMark uint8

const (
	CellPlain CellMark = iota
	CellChapter
	CellProgram
)

// Cell is a playback interval of a source in 90 kHz units.
type Cell struct {
	StartPTS int64
	EndPTS   int64
	Mark     CellMark
	Pause    int
	Command  Command
	// StartCell and EndCell are the vob cell id range [StartCell, EndCell)
	// assigned when the scanner marks chapters.
	StartCell int
	EndCell   int
}

// Source is an ordered run of cells played from one file.
type Source struct {
	Filename string
	Cells    []Cell

	vob *Vob
}

func NewSource(filename string) *Source {
	return &Source{Filename: filename}
}

// AddCell appends a cell spanning start..end seconds.
func (s *Source) AddCell(start, end float64, mark CellMark, pause int, cmd Command) {
	s.Cells = append(s.Cells, Cell{
		StartPTS: int64(start*90000 + .5),
		EndPTS:   int64(end*90000 + .5),
		Mark:     mark,
		Pause:    pause,
		Command:  cmd,
	})
}

// Vob is the media unit the source resolved to, nil until vobs are created.
func (s *Source) Vob() *Vob {
	return s.vob
}

func (s *Source) release() {
	for i := range s.Cells {
		releaseCommand(s.Cells[i].Command)
		s.Cells[i].Command = nil
	}
}

// ButtonLinks are the neighbour button names for one display stream.
type ButtonLinks struct {
	Up    string
	Down  string
	Left  string
	Right string
}

type Button struct {
	Name    string
	Command Command
	Links   []ButtonLinks
}

// Entry is a bitmask of menu entry points.
type Entry uint8

const (
	EntryTitle    Entry = 1 << 2
	EntryRoot     Entry = 1 << 3
	EntrySubtitle Entry = 1 << 4
	EntryAudio    Entry = 1 << 5
	EntryAngle    Entry = 1 << 6
	EntryPTT      Entry = 1 << 7
)

var entryNames = [8]string{"", "", "title", "root", "subtitle", "audio", "angle", "ptt"}

func (e Entry) String() string {
	var names []string
	for i := 2; i < 8; i++ {
		if e&(1<<i) != 0 {
			names = append(names, entryNames[i])
		}
	}
	return strings.Join(names, ",")
}

// PGC is a program chain: sources played in order plus the interactive
// state attached to them.
type PGC struct {
	// Still is the PGC still time in seconds, PauseInfinite for forever.
	Still int

	sources []*Source
	buttons []*Button
	pre     Command
	post    Command
	entries Entry
	subpmap [maxSubpicTracks][numModes]uint8
	colors  *ColorTable
	group   *PGCGroup
}

func NewPGC() *PGC {
	return &PGC{}
}

func (p *PGC) Sources() []*Source { return p.sources }
func (p *PGC) Buttons() []*Button { return p.buttons }
func (p *PGC) Pre() Command { return p.pre }
func (p *PGC) Post() Command { return p.post }
func (p *PGC) Entries() Entry { return p.entries }
func (p *PGC) Group() *PGCGroup { return p.group }
func (p *PGC) ColorTable() *ColorTable { return p.colors }

// SubpicMap returns the subpicture stream table, one row per track and
// one column per display mode.
func (p *PGC) SubpicMap() [maxSubpicTracks][numModes]uint8 {
	return p.subpmap
}

func (p *PGC) SetPre(cmd Command) error {
	if p.pre != nil {
		return fmt.Errorf("%w: pre", ErrCommandSet)
	}
	p.pre = cmd
	return nil
}

func (p *PGC) SetPost(cmd Command) error {
	if p.post != nil {
		return fmt.Errorf("%w: post", ErrCommandSet)
	}
	p.post = cmd
	return nil
}

// SetColor writes one palette entry, creating the PGC's table on first use.
func (p *PGC) SetColor(index int, color uint32) error {
	if index < 0 || index >= numColors {
		return fmt.Errorf("color index %d out of range", index)
	}
	if p.colors == nil {
		p.colors = NewColorTable()
		p.colors.retain()
	}
	p.colors.Colors[index] = color
	return nil
}

// AttachColorTable makes the PGC share ct, dropping any table it held.
func (p *PGC) AttachColorTable(ct *ColorTable) {
	if p.colors == ct {
		return
	}
	ct.retain()
	if p.colors != nil {
		p.colors.release()
	}
	p.colors = ct
}

func (p *PGC) SetSubpicStream(track int, mode string, id int) error {
	if track < 0 || track >= maxSubpicTracks {
		return fmt.Errorf("%w: subpicture track %d", ErrTrackRange, track)
	}
	m, ok := ParseSubpicMode(mode)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrBadMode, mode)
	}
	return setSubpicSlot(&p.subpmap[track][m], track, m, id)
}

// AddEntry marks the PGC as the target of a named menu entry.
func (p *PGC) AddEntry(name string) error {
	for i := 2; i < 8; i++ {
		if !strings.EqualFold(name, entryNames[i]) {
			continue
		}
		e := Entry(1 << i)
		if p.entries&e != 0 {
			return fmt.Errorf("%w: '%s' in the same PGC", ErrDuplicateEntry, name)
		}
		p.entries |= e
		return nil
	}
	return fmt.Errorf("%w: '%s'", ErrUnknownEntry, name)
}

func (p *PGC) AddSource(s *Source) error {
	if s.Filename == "" {
		return ErrNoFilename
	}
	p.sources = append(p.sources, s)
	return nil
}

// AddButton appends a button. An empty name defaults to the button's
// 1-based position.
func (p *PGC) AddButton(name string, cmd Command) (*Button, error) {
	if len(p.buttons) == maxButtons {
		return nil, ErrTooManyButtons
	}
	if name == "" {
		name = strconv.Itoa(len(p.buttons) + 1)
	}
	b := &Button{Name: name, Command: cmd}
	p.buttons = append(p.buttons, b)
	return b, nil
}

// Destroy releases every command the PGC owns and its share of the color
// table. The PGC must not be used afterwards.
func (p *PGC) Destroy() {
	for _, s := range p.sources {
		s.release()
	}
	p.sources = nil
	for _, b := range p.buttons {
		releaseCommand(b.Command)
	}
	p.buttons = nil
	releaseCommand(p.pre)
	releaseCommand(p.post)
	p.pre, p.post = nil, nil
	if p.colors != nil {
		p.colors.release()
		p.colors = nil
	}
}
