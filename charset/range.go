package charset

import (
	"sort"
)

// Range represents a range of consecutive runes.
//
// If Lo < Hi, then this Range represents the runes Lo, Lo+1, ..., Hi-1, Hi.
//
// If Lo == Hi, then this Range represents the single rune Lo.
//
// If Lo > Hi, then this Range represents the null set.
type Range struct {
	Lo rune
	Hi rune
}

// Ranges returns a Matcher that matches any rune falling within one of
// the given Range entries. Prefer this over RuneSet when the set is
// mostly made of runs of consecutive code points, such as the letter and
// digit ranges a charset spec like "a-z" compiles to.
func Ranges(rs ...Range) Matcher {
	return makeRange(rs)
}

type mRange struct {
	Ranges []Range
}

var _ Matcher = (*mRange)(nil)

func (m *mRange) Match(r rune) bool {
	i := sort.Search(len(m.Ranges), func(i int) bool {
		return m.Ranges[i].Hi >= r
	})
	if i >= len(m.Ranges) {
		return false
	}
	rr := m.Ranges[i]
	return rr.Lo <= r && r <= rr.Hi
}

func (m *mRange) ForEach(f func(r rune)) {
	for _, rr := range m.Ranges {
		for i := rr.Lo; i <= rr.Hi; i++ {
			f(i)
		}
	}
}

func (m *mRange) Optimize() Matcher {
	if len(m.Ranges) == 0 {
		return None()
	}
	return m
}

func (m *mRange) String() string {
	return genericString(m)
}

func makeRange(rs []Range) *mRange {
	rs = coalesceRanges(rs)
	return &mRange{Ranges: rs}
}

// coalesceRanges drops empty ranges, sorts the rest by Lo, and merges any
// pair that touches or overlaps, which is what (*mRange).Match's binary
// search over Hi values requires: sorted, non-overlapping entries.
func coalesceRanges(a []Range) []Range {
	b := make([]Range, 0, len(a))
	for _, r := range a {
		if r.Hi >= r.Lo {
			b = append(b, r)
		}
	}
	sort.Sort(rangeSlice(b))

	if len(b) < 2 {
		return b
	}

	// entries are sorted by Lo ascending, so each new entry either
	// extends the last one (adjacent, overlapping, or subsumed) or
	// starts a fresh run.
	c := make([]Range, 0, len(b))
	var lastHi rune
	var have bool
	for _, r := range b {
		if have && lastHi >= r.Hi {
			// r is fully subsumed by the run in progress.
			continue
		} else if have && lastHi+1 >= r.Lo {
			// r touches or overlaps the run in progress; extend it.
			c[len(c)-1].Hi = r.Hi
			lastHi = r.Hi
		} else {
			c = append(c, r)
			lastHi = r.Hi
			have = true
		}
	}
	return c
}
