package dvdauthor

import "sort"

// Vobu is one navigation unit of a vob as reported by the scanner.
type Vobu struct {
	Sector     int
	LastSector int
	// CellID is vobID<<8 | local cell id.
	CellID   int
	PTS      [2]int64
	VideoPTS [2]int64
	HasVideo bool
}

// Sample is one observed packet group on an audio or subpicture channel.
type Sample struct {
	PTS    [2]int64
	Sector int
}

// ChannelSamples accumulates the presence samples of one channel together
// with the attributes the scanner derived from them.
type ChannelSamples struct {
	Samples []Sample
	Attrs   AudioDesc
}

func (c *ChannelSamples) Add(s Sample) {
	c.Samples = append(c.Samples, s)
}

func (c *ChannelSamples) Present() bool {
	return len(c.Samples) > 0
}

// Vob is one physical media file referenced by one or more sources.
type Vob struct {
	Filename string
	// ID is assigned by the scanner and keys Vobu.CellID.
	ID    int
	Vobus []Vobu

	owner    *PGC
	channels [2 * numChannels]ChannelSamples
}

func newVob(filename string, owner *PGC) *Vob {
	return &Vob{Filename: filename, owner: owner}
}

// Owner is the PGC the vob was created for.
func (v *Vob) Owner() *PGC {
	return v.owner
}

// Audio returns the accumulator of logical audio channel ch (0..31).
func (v *Vob) Audio(ch int) *ChannelSamples {
	return &v.channels[ch]
}

// Subpicture returns the accumulator of subpicture channel ch (0..31).
func (v *Vob) Subpicture(ch int) *ChannelSamples {
	return &v.channels[numChannels+ch]
}

// AddVobu appends a navigation unit. Units must arrive in ascending cell
// and PTS order.
func (v *Vob) AddVobu(u Vobu) {
	v.Vobus = append(v.Vobus, u)
}

// FindCell returns the index of the first vobu whose cell key is at least
// the key of cellID, the insertion point when no vobu carries it.
func (v *Vob) FindCell(cellID int) int {
	key := (cellID & 255) | (v.ID << 8)
	return sort.Search(len(v.Vobus), func(i int) bool {
		return v.Vobus[i].CellID >= key
	})
}

// FindVobu returns the index within [lo,hi] of the vobu containing pts,
// lo-1 when pts precedes the range and hi+1 when it is at or past its end.
func (v *Vob) FindVobu(pts int64, lo, hi int) int {
	if hi < lo {
		return lo - 1
	}
	if pts < v.Vobus[lo].PTS[0] {
		return lo - 1
	}
	if pts >= v.Vobus[hi].PTS[1] {
		return hi + 1
	}
	n := sort.Search(hi-lo+1, func(i int) bool {
		return pts < v.Vobus[lo+i].PTS[0]
	})
	return lo + n - 1
}

// CellPTS is the presentation time covered by the vobus of one cell.
func (v *Vob) CellPTS(cellID int) int64 {
	s, e := v.FindCell(cellID), v.FindCell(cellID+1)
	if s == e {
		return 0
	}
	return v.Vobus[e-1].PTS[1] - v.Vobus[s].PTS[0]
}

// PTSSpan sums the cell spans of every cell range the PGC plays.
func (p *PGC) PTSSpan() int64 {
	var span int64
	for _, s := range p.sources {
		if s.vob == nil {
			continue
		}
		for _, c := range s.Cells {
			for id := c.StartCell; id < c.EndCell; id++ {
				span += s.vob.CellPTS(id)
			}
		}
	}
	return span
}

// addVob resolves the vob backing s. Vobs are shared by filename, except
// that a PGC with buttons always gets a private vob and never shares one.
func (vg *VobGroup) addVob(p *PGC, s *Source) {
	if len(p.buttons) == 0 {
		for _, v := range vg.vobs {
			if v.Filename == s.Filename && (v.owner == nil || len(v.owner.buttons) == 0) {
				s.vob = v
				return
			}
		}
	}
	v := newVob(s.Filename, p)
	vg.vobs = append(vg.vobs, v)
	s.vob = v
}
