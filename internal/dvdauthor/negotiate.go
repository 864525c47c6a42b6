package dvdauthor

import (
	"fmt"
	"strings"
)

// Resolve runs the global inference pass over the group once the scanner
// has filled in every vob: video defaults and legality, audio stream
// binding and defaults, subpicture stream mapping, then a summary log.
func (vg *VobGroup) Resolve(t GroupType) error {
	if err := vg.resolveVideo(); err != nil {
		return err
	}
	vg.inferAudio()
	vg.defaultAudio()
	if err := vg.mapSubpictures(t); err != nil {
		return err
	}
	vg.logSummary(t)
	return nil
}

func (vg *VobGroup) resolveVideo() error {
	v := &vg.video
	if !v.mpeg.isSet() {
		vg.log.Warn("video mpeg version was not autodetected")
	}
	if !v.res.isSet() {
		vg.log.Warn("video resolution was not autodetected")
	}
	if !v.format.isSet() {
		vg.log.Warn("video format was not autodetected")
	}
	if !v.aspect.isSet() {
		vg.log.Warn("aspect ratio was not autodetected")
	}
	v.mpeg.infer(MPEG2)
	v.res.infer(Resolution720Full)
	v.format.infer(NTSC)
	v.aspect.infer(Aspect4x3)

	ws := v.widescreen.get()
	if v.aspect.get() == Aspect4x3 {
		if ws == NoLetterbox || ws == NoPanscan {
			return fmt.Errorf("%w: %s should not be set for 4:3 source material", ErrWidescreenConflict, ws)
		}
	} else if ws == Crop {
		return fmt.Errorf("%w: crop should not be set for 16:9 source material", ErrWidescreenConflict)
	}
	return nil
}

// observedAudio returns the attributes of the first vob carrying samples
// on the given channel.
func (vg *VobGroup) observedAudio(ch int) (AudioDesc, bool) {
	for _, v := range vg.vobs {
		if c := v.Audio(ch); c.Present() {
			return c.Attrs, true
		}
	}
	return AudioDesc{}, false
}

// inferAudio binds every audio stream seen in the vobs to a track. A
// stream already bound is skipped; otherwise the unbound track agreeing
// with the most observed fields wins, the first one on ties, and a new
// track is added when no unbound track fits.
func (vg *VobGroup) inferAudio() {
	for i := 0; i < numChannels; i++ {
		id, f := uint8(i>>2)+1, AudioFormat(i&3)+1
		obs, ok := vg.observedAudio(audioChannel(f, id))
		if !ok {
			continue
		}

		known := false
		for j := range vg.audio {
			if vg.audio[j].format.get() == f && vg.audio[j].id == id {
				known = true
				break
			}
		}
		if known {
			continue
		}

		match, best := -1, -1
		for j := range vg.audio {
			a := &vg.audio[j]
			if a.id != 0 {
				continue
			}
			score, ok := scoreAudio(a, f, obs)
			if ok && score > best {
				match, best = j, score
			}
		}
		if match < 0 {
			vg.audio = append(vg.audio, audioAttrs{})
			match = len(vg.audio) - 1
		}

		a := &vg.audio[match]
		a.format.val = f
		a.id = id
		a.quant.merge(obs.Quantization, quantVocab, vg.log)
		a.dolby.merge(obs.Dolby, dolbyVocab, vg.log)
		a.channels.merge(obs.Channels, channelsVocab, vg.log)
		a.sample.merge(obs.SampleRate, sampleRateVocab, vg.log)
	}
}

// scoreAudio counts the fields of a that equal the observed stream. ok is
// false when a set field contradicts an observed one.
func scoreAudio(a *audioAttrs, f AudioFormat, obs AudioDesc) (int, bool) {
	score := 0
	cmp := func(have, seen uint8) bool {
		if have != 0 && seen != 0 && have != seen {
			return false
		}
		if have == seen {
			score++
		}
		return true
	}
	if !cmp(uint8(a.format.get()), uint8(f)) ||
		!cmp(uint8(a.quant.get()), uint8(obs.Quantization)) ||
		!cmp(uint8(a.dolby.get()), uint8(obs.Dolby)) ||
		!cmp(uint8(a.channels.get()), uint8(obs.Channels)) ||
		!cmp(uint8(a.sample.get()), uint8(obs.SampleRate)) {
		return 0, false
	}
	return score, true
}

func (vg *VobGroup) defaultAudio() {
	for i := range vg.audio {
		a := &vg.audio[i]
		if !a.format.isSet() {
			vg.log.Warnf("audio stream %d was not autodetected", i)
		}
		a.format.infer(MP2)
		switch a.format.get() {
		case AC3, DTS:
			a.quant.infer(QuantDRC)
			a.channels.infer(6)
		case MP2:
			a.quant.infer(Quant20)
			a.channels.infer(2)
		case PCM:
			a.channels.infer(2)
			a.quant.infer(Quant16)
		}
		a.sample.infer(Rate48kHz)
	}
}

// Width and Height are the frame dimensions of the negotiated resolution.
func (d VideoDesc) Width() int {
	switch d.Resolution {
	case Resolution704Full:
		return 704
	case Resolution352Full, Resolution352Half:
		return 352
	default:
		return 720
	}
}

func (d VideoDesc) Height() int {
	h := 480
	if d.Resolution == Resolution352Half {
		h = 240
	}
	if d.TVFormat == PAL {
		return h * 6 / 5
	}
	return h
}

func (vg *VobGroup) logSummary(t GroupType) {
	d := vg.video.desc()
	vg.log.Infof("Generating %s with the following video attributes:", t)
	vg.log.Infof("MPEG version: %s", d.MPEG)
	vg.log.Infof("TV standard: %s", d.TVFormat)
	vg.log.Infof("Aspect ratio: %s", d.Aspect)
	vg.log.Infof("Resolution: %dx%d", d.Width(), d.Height())
	for i := range vg.audio {
		vg.log.Infof("Audio ch %d format: %s", i, vg.audio[i].desc().Summary())
		if vg.audio[i].id == 0 {
			vg.log.Warnf("Audio ch %d is not used!", i)
		}
	}
	for i := range vg.subpic {
		if lang := formatLanguage(vg.subpic[i].lang); lang != "" {
			vg.log.Infof("Subpicture ch %d language: %s", i, lang)
		}
	}
}

// Summary renders the track the way the authoring log prints it.
func (d AudioDesc) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s, %s %s", d.Format, d.Channels, d.SampleRate, d.Quantization)
	if d.Dolby == Surround {
		b.WriteString(", surround")
	}
	if d.LangPresence == HasLang {
		fmt.Fprintf(&b, ", '%s'", d.Lang)
	}
	return b.String()
}
