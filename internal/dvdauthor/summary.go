package dvdauthor

import (
	"errors"
	"fmt"
)

// validateSummary checks the entries of every PGC against the group type
// and against each other, and normalizes the cell flags of each PGC. All
// problems are collected before the group fails.
func (pg *PGCGroup) validateSummary() error {
	allowed := pg.Type.allowedEntries()
	var errs []error

	for i, p := range pg.pgcs {
		if p.post == nil && len(p.sources) > 0 {
			s := p.sources[len(p.sources)-1]
			if n := len(s.Cells); n > 0 {
				s.Cells[n-1].Pause = PauseInfinite
			}
		}
		if dup := pg.allEntries & p.entries; dup != 0 {
			errs = append(errs, fmt.Errorf("%w: %s, 2nd occurrence in PGC #%d", ErrDuplicateEntry, dup, i))
		}
		if bad := p.entries &^ allowed; bad != 0 {
			errs = append(errs, fmt.Errorf("%w: %s for menu type %s", ErrEntryNotAllowed, bad, pg.Type))
		}
		pg.allEntries |= p.entries

		first := true
		for _, s := range p.sources {
			if len(s.Cells) == 0 {
				pg.log.Warnf("Source has no cells (%s) in PGC %d", s.Filename, i)
				continue
			}
			if first {
				if s.Cells[0].Mark != CellChapter {
					pg.log.Warnf("First cell is not marked as a chapter in PGC %d, setting chapter flag", i)
					s.Cells[0].Mark = CellChapter
				}
				first = false
			}
		}
	}

	pg.numEntries = 0
	for e := Entry(1); e != 0; e <<= 1 {
		if pg.allEntries&e != 0 {
			pg.numEntries++
		}
	}
	return errors.Join(errs...)
}

// forceAddEntry makes sure the group exposes entry, assigning it to the
// first PGC. Empty groups only get it in jumppad mode.
func (pg *PGCGroup) forceAddEntry(e Entry, jumppad bool) {
	if len(pg.pgcs) == 0 && !jumppad {
		return
	}
	if pg.allEntries&e != 0 {
		return
	}
	if len(pg.pgcs) > 0 {
		pg.pgcs[0].entries |= e
	}
	pg.allEntries |= e
	pg.numEntries++
}

func (pg *PGCGroup) checkAddEntry(e Entry, jumppad bool) {
	if len(pg.pgcs) > 0 {
		pg.forceAddEntry(e, jumppad)
	}
}
