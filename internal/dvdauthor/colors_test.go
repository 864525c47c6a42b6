package dvdauthor

import "testing"

func TestColorTableSharedAndFreedOnce(t *testing.T) {
	a, _ := newTestAuthor(t)
	pg := titleGroup(t, a, []string{"a.vob"}, []string{"a.vob"}, []string{"a.vob"})
	pgcs := pg.PGCs()
	if err := pgcs[1].SetColor(0, 0x108080); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	pg.createVobs(pg.VobGroup())

	ct := pgcs[1].ColorTable()
	for i, p := range pgcs {
		if p.ColorTable() != ct {
			t.Fatalf("PGC %d has its own table", i)
		}
	}
	if ct.Refs() != 3 {
		t.Fatalf("refs = %d, want 3", ct.Refs())
	}
	if ct.Colors[0] != 0x108080 || ct.Colors[1] != defaultColor {
		t.Fatalf("colors = %x", ct.Colors[:2])
	}

	frees := 0
	ct.onRelease = func() { frees++ }
	for i, p := range pgcs {
		p.Destroy()
		if released := ct.Released(); released != (i == len(pgcs)-1) {
			t.Fatalf("after destroying PGC %d released = %v", i, released)
		}
	}
	if frees != 1 {
		t.Fatalf("frees = %d, want 1", frees)
	}
}

func TestColorTableAllocatedPerVobSet(t *testing.T) {
	a, _ := newTestAuthor(t)
	pg := titleGroup(t, a, []string{"a.vob"}, []string{"b.vob"}, []string{"b.vob"})
	pg.createVobs(pg.VobGroup())

	pgcs := pg.PGCs()
	if pgcs[0].ColorTable() == nil || pgcs[0].ColorTable().Refs() != 1 {
		t.Fatalf("PGC 0 table = %+v", pgcs[0].ColorTable())
	}
	if pgcs[1].ColorTable() != pgcs[2].ColorTable() {
		t.Fatalf("PGCs sharing b.vob have different tables")
	}
	if pgcs[1].ColorTable() == pgcs[0].ColorTable() {
		t.Fatalf("unrelated PGCs share a table")
	}
	if got := pgcs[1].ColorTable().Refs(); got != 2 {
		t.Fatalf("refs = %d, want 2", got)
	}
}

func TestColorTableConflictWarns(t *testing.T) {
	a, buf := newTestAuthor(t)
	pg := titleGroup(t, a, []string{"a.vob"}, []string{"a.vob"})
	pgcs := pg.PGCs()
	pgcs[0].SetColor(0, 1)
	pgcs[1].SetColor(0, 2)
	pg.createVobs(pg.VobGroup())

	if pgcs[0].ColorTable() == pgcs[1].ColorTable() {
		t.Fatalf("explicit tables were merged")
	}
	if countLines(buf, "Conflict in colormap between PGC 0 and 1") != 1 {
		t.Fatalf("missing conflict warning\n%s", buf.String())
	}
}

func TestAttachColorTable(t *testing.T) {
	ct := NewColorTable()
	p, q := NewPGC(), NewPGC()
	p.AttachColorTable(ct)
	q.AttachColorTable(ct)
	q.AttachColorTable(ct)
	if ct.Refs() != 2 {
		t.Fatalf("refs = %d, want 2", ct.Refs())
	}
	p.Destroy()
	q.Destroy()
	if !ct.Released() {
		t.Fatalf("table not released")
	}
}

func TestColorTableDoubleReleasePanics(t *testing.T) {
	ct := NewColorTable()
	ct.retain()
	ct.release()
	defer func() {
		if recover() == nil {
			t.Fatalf("second release did not panic")
		}
	}()
	ct.release()
}
