package dvdauthor

import "errors"

var (
	ErrUnknownAttribute     = errors.New("cannot parse attribute")
	ErrBadMode              = errors.New("cannot parse subpicture stream mode")
	ErrSubpicRedefined      = errors.New("subpicture stream already defined")
	ErrNoFreeSubpicTrack    = errors.New("no free subpicture track")
	ErrTooManyButtons       = errors.New("limit of up to 36 buttons")
	ErrNoFilename           = errors.New("source has no filename")
	ErrUnknownEntry         = errors.New("unknown entry")
	ErrDuplicateEntry       = errors.New("entry defined multiple times")
	ErrEntryNotAllowed      = errors.New("entry not allowed for menu type")
	ErrBadLanguage          = errors.New("language is not two letters")
	ErrWidescreenConflict   = errors.New("widescreen conversion does not fit aspect ratio")
	ErrNoTitles             = errors.New("no titles defined")
	ErrNoTitleSets          = errors.New("no .IFO files to process")
	ErrTitleSetNumbering    = errors.New("titleset numbering is not contiguous")
	ErrTitleSetConflict     = errors.New("two different names for the same titleset")
	ErrTooManyTitleSets     = errors.New("too many title sets")
	ErrRegisterModeConflict = errors.New("cannot enable both allgprm and jumppad")
	ErrPGCGrouped           = errors.New("pgc already belongs to a group")
	ErrCommandSet           = errors.New("command already set")
	ErrShortIFO             = errors.New("ifo too short")
	ErrTrackRange           = errors.New("track out of range")
)
