package dvdauthor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	maxAudioTracks  = 8
	maxSubpicTracks = 32
	numChannels     = 32

	// Subpicture id map slots hold zero (unset), subpicSuppressed, or
	// subpicStreamBase plus the stream id.
	subpicSuppressed = 127
	subpicStreamBase = 128
)

type videoAttrs struct {
	mpeg       attr[MPEGVersion]
	res        attr[Resolution]
	format     attr[TVFormat]
	aspect     attr[Aspect]
	widescreen attr[Widescreen]
	frameRate  attr[FrameRate]
	caption    uint8
}

// VideoDesc is a snapshot of the negotiated video attributes.
type VideoDesc struct {
	MPEG       MPEGVersion
	Resolution Resolution
	TVFormat   TVFormat
	Aspect     Aspect
	Widescreen Widescreen
	FrameRate  FrameRate
	// Caption is bit 0 for field 1, bit 1 for field 2.
	Caption uint8
}

func (v *videoAttrs) desc() VideoDesc {
	return VideoDesc{
		MPEG:       v.mpeg.get(),
		Resolution: v.res.get(),
		TVFormat:   v.format.get(),
		Aspect:     v.aspect.get(),
		Widescreen: v.widescreen.get(),
		FrameRate:  v.frameRate.get(),
		Caption:    v.caption,
	}
}

func (v *videoAttrs) set(kind AttrKind, s string, lg *log.Logger) (bool, error) {
	if kind.matches(AttrMPEG) {
		if ok, conflict := v.mpeg.scan(s, mpegVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrTVFormat) {
		if ok, conflict := v.format.scan(s, tvFormatVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrAspect) {
		if ok, conflict := v.aspect.scan(s, aspectVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrWidescreen) {
		if ok, conflict := v.widescreen.scan(s, widescreenVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrCaption) {
		switch strings.ToLower(s) {
		case "field1":
			v.caption |= 1
			return false, nil
		case "field2":
			v.caption |= 2
			return false, nil
		}
	}
	if kind.matches(AttrResolution) && strings.Contains(s, "x") {
		return v.setResolution(s, lg), nil
	}
	return false, fmt.Errorf("%w: video option '%s'", ErrUnknownAttribute, s)
}

// setResolution classifies a WxH token. The height may be a number or
// full/high; anything else counts as a half height.
func (v *videoAttrs) setResolution(s string, lg *log.Logger) bool {
	w, rest, _ := strings.Cut(s, "x")
	width := leadingInt(w)
	var height int
	switch {
	case rest != "" && rest[0] >= '0' && rest[0] <= '9':
		height = leadingInt(rest)
	case strings.EqualFold(rest, "full"), strings.EqualFold(rest, "high"):
		height = 384
	default:
		height = 383
	}

	var r Resolution
	switch {
	case width > 704:
		r = Resolution720Full
	case width > 352:
		r = Resolution704Full
	case height >= 384:
		r = Resolution352Full
	default:
		r = Resolution352Half
	}
	conflict := v.res.update(r, resolutionVocab, lg)

	if !v.format.isSet() {
		if height%5 == 0 {
			v.format.val = NTSC
		} else if height%9 == 0 {
			v.format.val = PAL
		}
	}
	return conflict
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

type audioAttrs struct {
	format   attr[AudioFormat]
	quant    attr[Quantization]
	dolby    attr[Dolby]
	langp    attr[LangPresence]
	channels attr[Channels]
	sample   attr[SampleRate]
	// id is the 1-based stream id within the format, zero while unbound.
	id         uint8
	lang       string
	warnedLang string
}

// AudioDesc describes one audio track, or the attributes observed on one
// audio channel of a vob.
type AudioDesc struct {
	Format       AudioFormat
	Quantization Quantization
	Dolby        Dolby
	LangPresence LangPresence
	Channels     Channels
	SampleRate   SampleRate
	ID           uint8
	Lang         string
}

// Channel returns the logical channel index of the track, or -1 when no
// stream is bound to it.
func (d AudioDesc) Channel() int {
	if d.ID == 0 || d.Format == AudioFormatNone {
		return -1
	}
	return audioChannel(d.Format, d.ID)
}

func audioChannel(f AudioFormat, id uint8) int {
	return int(id-1) + int(f-1)*8
}

func (a *audioAttrs) desc() AudioDesc {
	return AudioDesc{
		Format:       a.format.get(),
		Quantization: a.quant.get(),
		Dolby:        a.dolby.get(),
		LangPresence: a.langp.get(),
		Channels:     a.channels.get(),
		SampleRate:   a.sample.get(),
		ID:           a.id,
		Lang:         a.lang,
	}
}

func (a *audioAttrs) set(kind AttrKind, s string, lg *log.Logger) (bool, error) {
	if kind.matches(AttrAudioFormat) {
		if ok, conflict := a.format.scan(s, audioFormatVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrQuantization) {
		if ok, conflict := a.quant.scan(s, quantVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrDolby) {
		if ok, conflict := a.dolby.scan(s, dolbyVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind == AttrAny {
		if ok, conflict := a.langp.scan(s, audioLangVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrChannels) {
		if ok, conflict := a.channels.scan(s, channelsVocab, lg); ok {
			return conflict, nil
		}
	}
	if kind.matches(AttrSampleRate) {
		if ok, conflict := a.sample.scan(s, sampleRateVocab, lg); ok {
			return conflict, nil
		}
	}
	if len(s) == 2 {
		return setLanguage(&a.langp, &a.lang, &a.warnedLang, s, audioLangVocab, lg)
	}
	return false, fmt.Errorf("%w: audio option '%s'", ErrUnknownAttribute, s)
}

type subpicAttrs struct {
	langp      attr[LangPresence]
	lang       string
	warnedLang string
	idmap      [numModes]uint8
}

// SubpicDesc describes one subpicture track declared for a vob group.
type SubpicDesc struct {
	LangPresence LangPresence
	Lang         string
	IDMap        [numModes]uint8
}

func (sp *subpicAttrs) desc() SubpicDesc {
	return SubpicDesc{LangPresence: sp.langp.get(), Lang: sp.lang, IDMap: sp.idmap}
}

func (sp *subpicAttrs) set(kind AttrKind, s string, lg *log.Logger) (bool, error) {
	if kind == AttrAny {
		if ok, conflict := sp.langp.scan(s, subpicLangVocab, lg); ok {
			return conflict, nil
		}
	}
	if len(s) == 2 {
		return setLanguage(&sp.langp, &sp.lang, &sp.warnedLang, s, subpicLangVocab, lg)
	}
	return false, fmt.Errorf("%w: subpicture option '%s'", ErrUnknownAttribute, s)
}

// setLanguage marks the track as carrying a language and stores the code.
// A later different code is rejected like any other attribute conflict.
func setLanguage(langp *attr[LangPresence], lang, warned *string, s string, vc vocab[LangPresence], lg *log.Logger) (bool, error) {
	code, err := normalizeLanguage(s)
	if err != nil {
		return false, err
	}
	conflict := langp.update(HasLang, vc, lg)
	switch {
	case *lang == "":
		*lang = code
	case *lang != code:
		if *warned != code {
			lg.Warnf("attempt to update %s code from %s to %s; skipping", vc.desc, *lang, code)
			*warned = code
		}
		conflict = true
	}
	return conflict, nil
}

func setSubpicSlot(slot *uint8, track int, mode SubpicMode, id int) error {
	if id < 0 || id >= numChannels {
		return fmt.Errorf("%w: subpicture stream id %d", ErrTrackRange, id)
	}
	want := uint8(subpicStreamBase + id)
	if *slot != 0 && *slot != want {
		return fmt.Errorf("%w: subpicture %d mode %s", ErrSubpicRedefined, track, mode)
	}
	*slot = want
	return nil
}
