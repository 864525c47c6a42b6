package dvdauthor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestLogger(t *testing.T) (*log.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func newTestAuthor(t *testing.T) (*Author, *bytes.Buffer) {
	t.Helper()
	lg, buf := newTestLogger(t)
	return New(Options{Logger: lg}), buf
}

func countLines(buf *bytes.Buffer, substr string) int {
	return strings.Count(buf.String(), substr)
}

// titleGroup builds a title set group with one PGC per filename list and
// creates its vobs.
func titleGroup(t *testing.T, a *Author, files ...[]string) *PGCGroup {
	t.Helper()
	pg := a.NewPGCGroup(TitleSet)
	for _, names := range files {
		p := NewPGC()
		for _, name := range names {
			s := NewSource(name)
			s.AddCell(0, 1, CellChapter, 0, nil)
			if err := p.AddSource(s); err != nil {
				t.Fatalf("AddSource: %v", err)
			}
		}
		if err := pg.AddPGC(p); err != nil {
			t.Fatalf("AddPGC: %v", err)
		}
	}
	return pg
}

type countingCommand struct {
	released *int
}

func (c countingCommand) Release() {
	*c.released++
}
