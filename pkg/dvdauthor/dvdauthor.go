package dvdauthor

import (
	"io"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

// Types
type Author = dvdauthor.Author
type Options = dvdauthor.Options
type RegisterMode = dvdauthor.RegisterMode
type Scanner = dvdauthor.Scanner
type Writer = dvdauthor.Writer
type Catalog = dvdauthor.Catalog
type FSCatalog = dvdauthor.FSCatalog
type Workset = dvdauthor.Workset

type GroupType = dvdauthor.GroupType
type VobGroup = dvdauthor.VobGroup
type PGCGroup = dvdauthor.PGCGroup
type MenuGroup = dvdauthor.MenuGroup
type LangGroup = dvdauthor.LangGroup
type PGC = dvdauthor.PGC
type Source = dvdauthor.Source
type Cell = dvdauthor.Cell
type CellMark = dvdauthor.CellMark
type Button = dvdauthor.Button
type ButtonLinks = dvdauthor.ButtonLinks
type Command = dvdauthor.Command
type Entry = dvdauthor.Entry
type ColorTable = dvdauthor.ColorTable

type Vob = dvdauthor.Vob
type Vobu = dvdauthor.Vobu
type Sample = dvdauthor.Sample
type ChannelSamples = dvdauthor.ChannelSamples

type AttrKind = dvdauthor.AttrKind
type VideoDesc = dvdauthor.VideoDesc
type AudioDesc = dvdauthor.AudioDesc
type SubpicDesc = dvdauthor.SubpicDesc
type SubpicMode = dvdauthor.SubpicMode
type SubpicMask = dvdauthor.SubpicMask
type FrameRate = dvdauthor.FrameRate
type TVFormat = dvdauthor.TVFormat
type Aspect = dvdauthor.Aspect
type Widescreen = dvdauthor.Widescreen

type TitleSetSummary = dvdauthor.TitleSetSummary
type TOCSummary = dvdauthor.TOCSummary

// Constants
const (
	TitleSet     = dvdauthor.TitleSet
	TitleSetMenu = dvdauthor.TitleSetMenu
	ManagerMenu  = dvdauthor.ManagerMenu

	RegistersDefault = dvdauthor.RegistersDefault
	RegistersJumppad = dvdauthor.RegistersJumppad
	RegistersAll     = dvdauthor.RegistersAll

	AttrAny          = dvdauthor.AttrAny
	AttrMPEG         = dvdauthor.AttrMPEG
	AttrResolution   = dvdauthor.AttrResolution
	AttrTVFormat     = dvdauthor.AttrTVFormat
	AttrAspect       = dvdauthor.AttrAspect
	AttrWidescreen   = dvdauthor.AttrWidescreen
	AttrCaption      = dvdauthor.AttrCaption
	AttrAudioFormat  = dvdauthor.AttrAudioFormat
	AttrQuantization = dvdauthor.AttrQuantization
	AttrDolby        = dvdauthor.AttrDolby
	AttrLanguage     = dvdauthor.AttrLanguage
	AttrChannels     = dvdauthor.AttrChannels
	AttrSampleRate   = dvdauthor.AttrSampleRate

	NTSC = dvdauthor.NTSC
	PAL  = dvdauthor.PAL

	FrameRatePAL  = dvdauthor.FrameRatePAL
	FrameRateNTSC = dvdauthor.FrameRateNTSC

	Aspect4x3  = dvdauthor.Aspect4x3
	Aspect16x9 = dvdauthor.Aspect16x9

	WidescreenNone = dvdauthor.WidescreenNone
	NoLetterbox    = dvdauthor.NoLetterbox
	NoPanscan      = dvdauthor.NoPanscan
	Crop           = dvdauthor.Crop

	ModeNormal     = dvdauthor.ModeNormal
	ModeWidescreen = dvdauthor.ModeWidescreen
	ModeLetterbox  = dvdauthor.ModeLetterbox
	ModePanscan    = dvdauthor.ModePanscan

	EntryTitle    = dvdauthor.EntryTitle
	EntryRoot     = dvdauthor.EntryRoot
	EntrySubtitle = dvdauthor.EntrySubtitle
	EntryAudio    = dvdauthor.EntryAudio
	EntryAngle    = dvdauthor.EntryAngle
	EntryPTT      = dvdauthor.EntryPTT

	CellPlain   = dvdauthor.CellPlain
	CellChapter = dvdauthor.CellChapter
	CellProgram = dvdauthor.CellProgram

	PauseInfinite = dvdauthor.PauseInfinite
)

// Errors
var (
	ErrUnknownAttribute   = dvdauthor.ErrUnknownAttribute
	ErrSubpicRedefined    = dvdauthor.ErrSubpicRedefined
	ErrWidescreenConflict = dvdauthor.ErrWidescreenConflict
	ErrNoTitles           = dvdauthor.ErrNoTitles
	ErrNoTitleSets        = dvdauthor.ErrNoTitleSets
)

// Functions
func New(opts Options) *Author {
	return dvdauthor.New(opts)
}

func NewPGC() *PGC {
	return dvdauthor.NewPGC()
}

func NewSource(filename string) *Source {
	return dvdauthor.NewSource(filename)
}

func BuildTime(num, denom int64) uint32 {
	return dvdauthor.BuildTime(num, denom)
}

func DecodeTime(tc uint32) int64 {
	return dvdauthor.DecodeTime(tc)
}

func ComputeSubpicMask(aspect Aspect, ws Widescreen) SubpicMask {
	return dvdauthor.ComputeSubpicMask(aspect, ws)
}

func ParseTitleSetSummary(r io.Reader) (TitleSetSummary, error) {
	return dvdauthor.ParseTitleSetSummary(r)
}

func OrderTitleSets(names []string) ([]string, error) {
	return dvdauthor.OrderTitleSets(names)
}

func FormatVersion(version string) string {
	return dvdauthor.FormatVersion(version)
}

func SetAppVersion(version string) {
	dvdauthor.SetAppVersion(version)
}
