package dvdauthor

import "fmt"

// SubpicMask is a bit set over SubpicMode.
type SubpicMask uint8

func (m SubpicMask) Has(mode SubpicMode) bool {
	return m&(1<<mode) != 0
}

// ComputeSubpicMask returns the display modes legal for the given aspect
// ratio and widescreen conversion.
func ComputeSubpicMask(aspect Aspect, ws Widescreen) SubpicMask {
	var mask SubpicMask
	if aspect == Aspect16x9 {
		mask = 1<<ModeWidescreen | 1<<ModeLetterbox | 1<<ModePanscan
	} else {
		mask = 1 << ModeNormal
	}
	switch ws {
	case NoLetterbox:
		mask &^= 1 << ModeLetterbox
	case NoPanscan:
		mask &^= 1 << ModePanscan
	case Crop:
		mask |= 1 << ModeWidescreen
	}
	return mask
}

func isStream(slot uint8) bool {
	return slot&subpicStreamBase != 0
}

// mapSubpictures fills each PGC's subpicture table from the streams found
// in its vobs, then clears and completes the per-mode slots against the
// legal mode mask.
func (vg *VobGroup) mapSubpictures(t GroupType) error {
	mask := ComputeSubpicMask(vg.video.aspect.get(), vg.video.widescreen.get())
	for i, p := range vg.pgcs {
		if !p.subpicDeclared() {
			if err := vg.inferSubpictures(p, mask); err != nil {
				return fmt.Errorf("PGC %d: %w", i, err)
			}
		}
		vg.completeSubpictures(i, p, mask)
	}

	for track := 0; track < maxSubpicTracks; track++ {
		used := false
		for _, p := range vg.pgcs {
			for m := 0; m < numModes; m++ {
				if p.subpmap[track][m] != 0 {
					used = true
				}
			}
		}
		if used {
			vg.growSubpic(track + 1)
		}
	}

	if len(vg.subpic) > 1 && t.isMenu() {
		vg.log.Warnf("Too many subpicture tracks for a menu; 1 is allowed, %d are present.  Perhaps you want different streams for normal/widescreen/letterbox/panscan instead of actually having multiple streams?", len(vg.subpic))
	}
	return nil
}

// subpicDeclared reports whether the author set any mode of track 0, in
// which case the whole table is taken as given.
func (p *PGC) subpicDeclared() bool {
	for m := 0; m < numModes; m++ {
		if p.subpmap[0][m] != 0 {
			return true
		}
	}
	return false
}

func (p *PGC) references(slot uint8) bool {
	for l := range p.subpmap {
		for m := 0; m < numModes; m++ {
			if p.subpmap[l][m] == slot {
				return true
			}
		}
	}
	return false
}

func (vg *VobGroup) inferSubpictures(p *PGC, mask SubpicMask) error {
	for _, s := range p.sources {
		if s.vob == nil {
			continue
		}
		for k := 0; k < numChannels; k++ {
			if !s.vob.Subpicture(k).Present() {
				continue
			}
			slot := uint8(subpicStreamBase + k)
			if p.references(slot) {
				continue
			}

			used := false
			for l := range vg.subpic {
				for m := 0; m < numModes; m++ {
					if vg.subpic[l].idmap[m] == slot && p.subpmap[l][m] == 0 {
						p.subpmap[l][m] = slot
						used = true
					}
				}
			}
			if used {
				continue
			}

			l, ok := vg.freeSubpicTrack(p)
			if !ok {
				return fmt.Errorf("%w for stream %d", ErrNoFreeSubpicTrack, k)
			}
			for m := SubpicMode(0); m < numModes; m++ {
				if mask.Has(m) {
					p.subpmap[l][m] = slot
				} else {
					p.subpmap[l][m] = subpicSuppressed
				}
			}
		}
	}
	return nil
}

// freeSubpicTrack finds the first track neither the vob group nor the PGC
// has assigned in any mode.
func (vg *VobGroup) freeSubpicTrack(p *PGC) (int, bool) {
next:
	for l := 0; l < maxSubpicTracks; l++ {
		for m := 0; m < numModes; m++ {
			if l < len(vg.subpic) && vg.subpic[l].idmap[m] != 0 {
				continue next
			}
			if p.subpmap[l][m] != 0 {
				continue next
			}
		}
		return l, true
	}
	return 0, false
}

// completeSubpictures suppresses streams set for illegal modes and copies a
// track's single stream id into its unset legal modes.
func (vg *VobGroup) completeSubpictures(i int, p *PGC, mask SubpicMask) {
	for l := range p.subpmap {
		row := &p.subpmap[l]
		mainID := -1
		for m := SubpicMode(0); m < numModes; m++ {
			if !mask.Has(m) && isStream(row[m]) {
				vg.log.Warnf("PGC %d has the subtitle set for stream %d, mode %s which is illegal given the video characteristics.  Forcibly removing.", i, l, m)
				row[m] = subpicSuppressed
			}
			if isStream(row[m]) {
				id := int(row[m] &^ subpicStreamBase)
				if mainID == -1 {
					mainID = id
				} else if mainID >= 0 && mainID != id {
					mainID = -2
				}
			}
		}
		if mainID == -1 {
			continue
		}
		for m := SubpicMode(0); m < numModes; m++ {
			if !mask.Has(m) || isStream(row[m]) {
				continue
			}
			if mainID < 0 {
				vg.log.Warnf("Cannot infer the stream id for subpicture %d mode %s in PGC %d; please manually specify.", l, m, i)
			} else {
				row[m] = uint8(subpicStreamBase + mainID)
			}
		}
	}
}
