package charset

import (
	"unicode/utf8"
)

// CharSet is an immutable set of runes built from one or more specs: a
// three-rune spec of the form "x-y" (x <= y) denotes a range; any other
// spec contributes each of its runes individually.
type CharSet struct {
	m Matcher
}

// New builds a CharSet from the given specs.
func New(specs ...string) *CharSet {
	return &CharSet{m: specsToMatcher(specs).Optimize()}
}

// FromMatcher wraps an existing Matcher as an (immutable) CharSet.
func FromMatcher(m Matcher) *CharSet {
	return &CharSet{m: m}
}

// Union returns a new CharSet containing every rune in cs plus every rune
// denoted by specs.
func (cs *CharSet) Union(specs ...string) *CharSet {
	return &CharSet{m: Or(cs.m, specsToMatcher(specs)).Optimize()}
}

// Difference returns a new CharSet containing every rune in cs that is not
// denoted by specs.
func (cs *CharSet) Difference(specs ...string) *CharSet {
	return &CharSet{m: And(cs.m, Not(specsToMatcher(specs))).Optimize()}
}

func (cs *CharSet) Match(r rune) bool      { return cs.m.Match(r) }
func (cs *CharSet) ForEach(f func(r rune)) { cs.m.ForEach(f) }
func (cs *CharSet) Optimize() Matcher      { return cs.m.Optimize() }
func (cs *CharSet) String() string         { return cs.m.String() }

var _ Matcher = (*CharSet)(nil)

func specsToMatcher(specs []string) Matcher {
	var runes []rune
	var ranges []Range
	for _, spec := range specs {
		if isRangeSpec(spec) {
			rs := []rune(spec)
			ranges = append(ranges, Range{Lo: rs[0], Hi: rs[2]})
			continue
		}
		for _, r := range spec {
			runes = append(runes, r)
		}
	}
	switch {
	case len(runes) == 0 && len(ranges) == 0:
		return None()
	case len(ranges) == 0:
		return RuneSet(runes...)
	case len(runes) == 0:
		return Ranges(ranges...)
	default:
		return Or(RuneSet(runes...), Ranges(ranges...))
	}
}

// isRangeSpec reports whether spec is a three-rune "x-y" range: a spec is
// a range iff it decodes to exactly three runes, the middle one is '-',
// and Lo <= Hi.
func isRangeSpec(spec string) bool {
	if utf8.RuneCountInString(spec) != 3 {
		return false
	}
	rs := []rune(spec)
	return rs[1] == '-' && rs[0] <= rs[2]
}
