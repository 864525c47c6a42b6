package dvdauthor

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestOrderTitleSets(t *testing.T) {
	got, err := OrderTitleSets([]string{"VIDEO_TS.IFO", "VTS_02_0.IFO", "VTS_01_0.BUP", "VTS_01_0.IFO", "VTS_01_1.VOB"})
	if err != nil {
		t.Fatalf("OrderTitleSets: %v", err)
	}
	if want := []string{"VTS_01_0.IFO", "VTS_02_0.IFO"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	cases := []struct {
		names []string
		want  error
	}{
		{[]string{"VTS_01_0.IFO", "VTS_03_0.IFO"}, ErrTitleSetNumbering},
		{[]string{"VTS_00_0.IFO"}, ErrTitleSetNumbering},
		{[]string{"VTS_01_0.IFO", "vts_01_0.ifo"}, ErrTitleSetConflict},
		{[]string{"VIDEO_TS.IFO"}, ErrNoTitleSets},
		{nil, ErrNoTitleSets},
	}
	for _, tc := range cases {
		if _, err := OrderTitleSets(tc.names); !errors.Is(err, tc.want) {
			t.Fatalf("OrderTitleSets(%v) = %v, want %v", tc.names, err, tc.want)
		}
	}
}

func TestNextTitleSetNumber(t *testing.T) {
	if got := NextTitleSetNumber(nil); got != 1 {
		t.Fatalf("empty = %d, want 1", got)
	}
	if got := NextTitleSetNumber([]string{"VTS_01_0.IFO", "VTS_02_0.IFO", "VTS_04_0.IFO", "VTS_03_1.VOB"}); got != 3 {
		t.Fatalf("next = %d, want 3", got)
	}
}

func buildTitleSetIFO() []byte {
	data := make([]byte, 2*dvdSectorSize)
	mat, ptt := data[:dvdSectorSize], data[dvdSectorSize:]
	binary.BigEndian.PutUint32(mat[ifoLastSectorOff:], 99)
	copy(mat[ifoCategoryOff:], []byte{0, 1, 2, 3})
	binary.BigEndian.PutUint32(mat[ifoMenuVOBOff:], 42)
	mat[ifoAttrOff] = 0x4C
	mat[ifoAttrOff+ifoAttrSize-1] = 0xFF

	// Two titles: three chapters then two.
	binary.BigEndian.PutUint16(ptt, 2)
	binary.BigEndian.PutUint32(ptt[4:], 35)
	binary.BigEndian.PutUint32(ptt[8:], 16)
	binary.BigEndian.PutUint32(ptt[12:], 28)
	return data
}

func TestParseTitleSetSummary(t *testing.T) {
	ts, err := ParseTitleSetSummary(bytes.NewReader(buildTitleSetIFO()))
	if err != nil {
		t.Fatalf("ParseTitleSetSummary: %v", err)
	}
	if !ts.HasMenu || ts.NumSectors != 100 {
		t.Fatalf("menu = %v, sectors = %d", ts.HasMenu, ts.NumSectors)
	}
	if ts.Category != ([4]byte{0, 1, 2, 3}) {
		t.Fatalf("category = %v", ts.Category)
	}
	if ts.Attributes[0] != 0x4C || ts.Attributes[ifoAttrSize-1] != 0xFF {
		t.Fatalf("attributes not copied")
	}
	if want := []int{3, 2}; !reflect.DeepEqual(ts.Chapters, want) {
		t.Fatalf("chapters = %v, want %v", ts.Chapters, want)
	}
}

func TestParseTitleSetSummaryShort(t *testing.T) {
	if _, err := ParseTitleSetSummary(bytes.NewReader(make([]byte, dvdSectorSize))); !errors.Is(err, ErrShortIFO) {
		t.Fatalf("err = %v, want %v", err, ErrShortIFO)
	}
}

func TestFSCatalog(t *testing.T) {
	cat := FSCatalog{FS: fstest.MapFS{
		"VTS_01_0.IFO":  {Data: buildTitleSetIFO()},
		"VTS_01_1.VOB":  {Data: []byte{0}},
		"JUNK/file.txt": {Data: []byte{0}},
	}}
	names, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"VTS_01_0.IFO", "VTS_01_1.VOB"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}

	a, _ := newTestAuthor(t)
	a.catalog = cat
	toc, err := a.scanTitleSets(context.Background(), names)
	if err != nil {
		t.Fatalf("scanTitleSets: %v", err)
	}
	if len(toc.TitleSets) != 1 || toc.TitleSets[0].Name != "VTS_01_0.IFO" || !toc.TitleSets[0].HasMenu {
		t.Fatalf("toc = %+v", toc.TitleSets)
	}
}
