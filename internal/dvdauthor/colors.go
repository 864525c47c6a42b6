package dvdauthor

const (
	numColors    = 16
	defaultColor = 0x1000000
)

// ColorTable is the 16 entry subpicture palette. It is shared by every PGC
// playing the same vobs and freed when the last of them is destroyed.
type ColorTable struct {
	Colors [numColors]uint32

	refs      int
	freed     bool
	onRelease func()
}

// NewColorTable returns a default palette with no owners.
func NewColorTable() *ColorTable {
	ct := &ColorTable{}
	for i := range ct.Colors {
		ct.Colors[i] = defaultColor
	}
	return ct
}

func (ct *ColorTable) Refs() int {
	return ct.refs
}

func (ct *ColorTable) Released() bool {
	return ct.freed
}

func (ct *ColorTable) retain() {
	if ct.freed {
		panic("dvdauthor: retain of released color table")
	}
	ct.refs++
}

func (ct *ColorTable) release() {
	if ct.refs <= 0 {
		panic("dvdauthor: color table released twice")
	}
	ct.refs--
	if ct.refs == 0 {
		ct.freed = true
		if ct.onRelease != nil {
			ct.onRelease()
		}
	}
}

// pushColors hands each PGC's table to every PGC sharing one of its vobs
// that has no table yet. With warn set, PGCs that already hold a different
// table are reported; the first table seen is kept.
func (pg *PGCGroup) pushColors(warn bool) {
	for i, p := range pg.pgcs {
		if p.colors == nil {
			continue
		}
		for _, s := range p.sources {
			if s.vob == nil {
				continue
			}
			for ii, q := range pg.pgcs {
				if !q.uses(s.vob) {
					continue
				}
				switch {
				case q.colors == nil:
					q.colors = p.colors
					q.colors.retain()
				case q.colors != p.colors && warn:
					pg.log.Warnf("Conflict in colormap between PGC %d and %d", i, ii)
				}
			}
		}
	}
}

func (p *PGC) uses(v *Vob) bool {
	for _, s := range p.sources {
		if s.vob == v {
			return true
		}
	}
	return false
}

// assignColors runs the three propagation passes: share existing tables,
// give every remaining PGC a fresh table and share it, then report
// conflicts.
func (pg *PGCGroup) assignColors() {
	pg.pushColors(false)
	for _, p := range pg.pgcs {
		if p.colors == nil {
			p.colors = NewColorTable()
			p.colors.retain()
			pg.pushColors(false)
		}
	}
	pg.pushColors(true)
}
