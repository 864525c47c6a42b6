package dvdauthor

import "strings"

type MPEGVersion uint8

const (
	MPEGNone MPEGVersion = iota
	MPEG1
	MPEG2
)

type Resolution uint8

const (
	ResolutionNone Resolution = iota
	Resolution720Full
	Resolution704Full
	Resolution352Full
	Resolution352Half
)

type TVFormat uint8

const (
	TVFormatNone TVFormat = iota
	NTSC
	PAL
)

type Aspect uint8

const (
	AspectNone Aspect = iota
	Aspect4x3
	Aspect16x9
)

type Widescreen uint8

const (
	WidescreenNone Widescreen = iota
	NoLetterbox
	NoPanscan
	Crop
)

type FrameRate uint8

const (
	FrameRateNone FrameRate = iota
	FrameRate23976
	FrameRate24
	FrameRate25
	FrameRate2997
	FrameRate30
	FrameRate50
	FrameRate5994
	FrameRate60

	FrameRatePAL  = FrameRate25
	FrameRateNTSC = FrameRate2997
)

type AudioFormat uint8

const (
	AudioFormatNone AudioFormat = iota
	AC3
	MP2
	PCM
	DTS
)

type Quantization uint8

const (
	QuantNone Quantization = iota
	Quant16
	Quant20
	Quant24
	QuantDRC
)

type Dolby uint8

const (
	DolbyNone Dolby = iota
	Surround
)

type LangPresence uint8

const (
	LangUnset LangPresence = iota
	NoLang
	HasLang
)

// Channels is the channel count itself; zero is unset.
type Channels uint8

type SampleRate uint8

const (
	SampleRateNone SampleRate = iota
	Rate48kHz
	Rate96kHz
)

// SubpicMode indexes the four subpicture display variants.
type SubpicMode uint8

const (
	ModeNormal SubpicMode = iota
	ModeWidescreen
	ModeLetterbox
	ModePanscan

	numModes = 4
)

var (
	mpegVocab       = vocab[MPEGVersion]{"mpeg format", []string{"", "mpeg1", "mpeg2"}}
	resolutionVocab = vocab[Resolution]{"resolution", []string{"", "720xfull", "704xfull", "352xfull", "352xhalf"}}
	tvFormatVocab   = vocab[TVFormat]{"tv format", []string{"", "ntsc", "pal"}}
	aspectVocab     = vocab[Aspect]{"aspect ratio", []string{"", "4:3", "16:9"}}
	widescreenVocab = vocab[Widescreen]{"widescreen conversion", []string{"", "noletterbox", "nopanscan", "crop"}}
	frameRateVocab  = vocab[FrameRate]{"frame rate", []string{"",
		"24000.0/1001.0 (NTSC 3:2 pulldown converted FILM)",
		"24.0 (NATIVE FILM)",
		"25.0 (PAL/SECAM VIDEO / converted FILM)",
		"30000.0/1001.0 (NTSC VIDEO)",
		"30.0",
		"50.0 (PAL FIELD RATE)",
		"60000.0/1001.0 (NTSC FIELD RATE)",
		"60.0",
	}}
	audioFormatVocab = vocab[AudioFormat]{"audio format", []string{"", "ac3", "mp2", "pcm", "dts"}}
	quantVocab       = vocab[Quantization]{"audio quantization", []string{"", "16bps", "20bps", "24bps", "drc"}}
	dolbyVocab       = vocab[Dolby]{"surround", []string{"", "surround"}}
	audioLangVocab   = vocab[LangPresence]{"audio language", []string{"", "nolang", "lang"}}
	subpicLangVocab  = vocab[LangPresence]{"subpicture language", []string{"", "nolang", "lang"}}
	channelsVocab    = vocab[Channels]{"number of channels", []string{"", "1ch", "2ch", "3ch", "4ch", "5ch", "6ch", "7ch", "8ch"}}
	sampleRateVocab  = vocab[SampleRate]{"sampling rate", []string{"", "48khz", "96khz"}}

	modeNames = [numModes]string{"normal", "widescreen", "letterbox", "panscan"}
)

func (v MPEGVersion) String() string  { return mpegVocab.name(v) }
func (v Resolution) String() string   { return resolutionVocab.name(v) }
func (v TVFormat) String() string     { return tvFormatVocab.name(v) }
func (v Aspect) String() string       { return aspectVocab.name(v) }
func (v Widescreen) String() string   { return widescreenVocab.name(v) }
func (v FrameRate) String() string    { return frameRateVocab.name(v) }
func (v AudioFormat) String() string  { return audioFormatVocab.name(v) }
func (v Quantization) String() string { return quantVocab.name(v) }
func (v Dolby) String() string        { return dolbyVocab.name(v) }
func (v LangPresence) String() string { return audioLangVocab.name(v) }
func (v Channels) String() string     { return channelsVocab.name(v) }
func (v SampleRate) String() string   { return sampleRateVocab.name(v) }

func (m SubpicMode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return "invalid"
}

// ParseSubpicMode resolves a display mode name case-insensitively.
func ParseSubpicMode(s string) (SubpicMode, bool) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return SubpicMode(i), true
		}
	}
	return 0, false
}
