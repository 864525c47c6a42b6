package dvdauthor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

type code interface {
	~uint8
}

// vocab is the ordered list of tokens accepted for one attribute. Index 0
// names the unset value and is never matched.
type vocab[T code] struct {
	desc  string
	names []string
}

func (v vocab[T]) lookup(s string) (T, bool) {
	for i := 1; i < len(v.names); i++ {
		if strings.EqualFold(s, v.names[i]) {
			return T(i), true
		}
	}
	return 0, false
}

func (v vocab[T]) name(c T) string {
	if int(c) < len(v.names) {
		return v.names[c]
	}
	return strconv.Itoa(int(c))
}

// attr is a tri-state attribute value: unset, a value, and the last value
// a conflicting update was warned about.
type attr[T code] struct {
	val    T
	warned T
}

func (a *attr[T]) get() T {
	return a.val
}

func (a *attr[T]) isSet() bool {
	return a.val != 0
}

// update merges v into the attribute and reports whether v was rejected
// because a different value is already stored. The stored value never
// changes once set.
func (a *attr[T]) update(v T, vc vocab[T], lg *log.Logger) bool {
	if a.val == 0 {
		a.val = v
		return false
	}
	if a.val == v {
		return false
	}
	if a.warned != v {
		lg.Warnf("attempt to update %s from %s to %s; skipping", vc.desc, vc.name(a.val), vc.name(v))
		a.warned = v
	}
	return true
}

// merge is update for observed values, where zero means nothing was seen.
func (a *attr[T]) merge(v T, vc vocab[T], lg *log.Logger) bool {
	if v == 0 {
		return false
	}
	return a.update(v, vc, lg)
}

// scan resolves s against vc and merges it. matched is false when s is not
// a token of vc.
func (a *attr[T]) scan(s string, vc vocab[T], lg *log.Logger) (matched, conflict bool) {
	v, ok := vc.lookup(s)
	if !ok {
		return false, false
	}
	return true, a.update(v, vc, lg)
}

func (a *attr[T]) infer(def T) {
	if a.val == 0 {
		a.val = def
	}
}

// AttrKind restricts which attribute a declaration token is applied to.
type AttrKind uint8

const (
	AttrAny AttrKind = iota
	AttrMPEG
	AttrResolution
	AttrTVFormat
	AttrAspect
	AttrWidescreen
	AttrCaption
	AttrAudioFormat
	AttrQuantization
	AttrDolby
	AttrLanguage
	AttrChannels
	AttrSampleRate
)

func (k AttrKind) matches(want AttrKind) bool {
	return k == AttrAny || k == want
}
