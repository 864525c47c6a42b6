package dvdauthor

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

const (
	dvdSectorSize = 2048

	ifoLastSectorOff = 0x000C
	ifoCategoryOff   = 0x0022
	ifoMenuVOBOff    = 0x00C0
	ifoAttrOff       = 0x0100
	ifoAttrSize      = 0x0300

	maxTitleSets = 99
)

// TitleSetSummary is what the table of contents needs to know about an
// already authored title set.
type TitleSetSummary struct {
	Name       string
	HasMenu    bool
	NumSectors uint32
	Category   [4]byte
	// Attributes is the raw VTS attribute block copied into the VMG.
	Attributes [ifoAttrSize]byte
	// Chapters holds the chapter count of each title.
	Chapters []int
}

// TOCSummary lists the title sets of the disc in number order.
type TOCSummary struct {
	TitleSets []TitleSetSummary
}

// ParseTitleSetSummary reads the VTSI_MAT sector and the first sector of
// VTS_PTT_SRPT of a VTS_nn_0.IFO.
func ParseTitleSetSummary(r io.Reader) (TitleSetSummary, error) {
	buf := make([]byte, 2*dvdSectorSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return TitleSetSummary{}, fmt.Errorf("%w: %v", ErrShortIFO, err)
	}
	mat, ptt := buf[:dvdSectorSize], buf[dvdSectorSize:]

	ts := TitleSetSummary{
		HasMenu:    binary.BigEndian.Uint32(mat[ifoMenuVOBOff:]) != 0,
		NumSectors: binary.BigEndian.Uint32(mat[ifoLastSectorOff:]) + 1,
	}
	copy(ts.Category[:], mat[ifoCategoryOff:ifoCategoryOff+4])
	copy(ts.Attributes[:], mat[ifoAttrOff:ifoAttrOff+ifoAttrSize])

	numTitles := int(binary.BigEndian.Uint16(ptt))
	if numTitles == 0 {
		return ts, nil
	}
	if 12+(numTitles-1)*4 > len(ptt) {
		return TitleSetSummary{}, fmt.Errorf("%w: %d titles", ErrShortIFO, numTitles)
	}
	ts.Chapters = make([]int, numTitles)
	first := 8 + numTitles*4
	for i := 0; i < numTitles-1; i++ {
		n := int(binary.BigEndian.Uint32(ptt[12+i*4:]))
		ts.Chapters[i] = (n - first) / 4
		first = n
	}
	last := int(binary.BigEndian.Uint32(ptt[4:]))
	ts.Chapters[numTitles-1] = (last + 1 - first) / 4
	return ts, nil
}

// titleSetNumber returns nn for a VTS_nn_0.IFO name.
func titleSetNumber(name string) (int, bool) {
	if len(name) != 12 || !strings.EqualFold(name[:4], "VTS_") || !strings.EqualFold(name[6:], "_0.IFO") {
		return 0, false
	}
	d1, d2 := name[4], name[5]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, false
	}
	return int(d1-'0')*10 + int(d2-'0'), true
}

// OrderTitleSets picks the VTS_nn_0.IFO names out of a directory listing
// and returns them by number. Numbers must run from 01 without gaps.
func OrderTitleSets(names []string) ([]string, error) {
	var byNum [maxTitleSets + 1]string
	for _, name := range names {
		n, ok := titleSetNumber(name)
		if !ok {
			continue
		}
		if byNum[n] != "" {
			return nil, fmt.Errorf("%w: %s and %s", ErrTitleSetConflict, byNum[n], name)
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: cannot have titleset #0 (%s)", ErrTitleSetNumbering, name)
		}
		byNum[n] = name
	}

	var ordered []string
	i := 1
	for ; i <= maxTitleSets && byNum[i] != ""; i++ {
		ordered = append(ordered, byNum[i])
	}
	for ; i <= maxTitleSets; i++ {
		if byNum[i] != "" {
			return nil, fmt.Errorf("%w: titleset #%d (%s) does not immediately follow the last titleset", ErrTitleSetNumbering, i, byNum[i])
		}
	}
	if len(ordered) == 0 {
		return nil, ErrNoTitleSets
	}
	return ordered, nil
}

// NextTitleSetNumber is the first title set number without an IFO.
func NextTitleSetNumber(names []string) int {
	present := map[int]bool{}
	for _, name := range names {
		if n, ok := titleSetNumber(name); ok {
			present[n] = true
		}
	}
	i := 1
	for i <= maxTitleSets && present[i] {
		i++
	}
	return i
}

// Catalog lists and opens the files of an existing VIDEO_TS directory.
type Catalog interface {
	List(ctx context.Context) ([]string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FSCatalog serves a VIDEO_TS directory from an fs.FS rooted at it.
type FSCatalog struct {
	FS fs.FS
}

func (c FSCatalog) List(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(c.FS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (c FSCatalog) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return c.FS.Open(name)
}

func (a *Author) scanTitleSets(ctx context.Context, names []string) (*TOCSummary, error) {
	ordered, err := OrderTitleSets(names)
	if err != nil {
		return nil, err
	}
	toc := &TOCSummary{}
	for _, name := range ordered {
		a.log.Infof("Scanning %s", name)
		rc, err := a.catalog.Open(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", name, err)
		}
		ts, err := ParseTitleSetSummary(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		ts.Name = name
		toc.TitleSets = append(toc.TitleSets, ts)
	}
	return toc, nil
}
