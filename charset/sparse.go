package charset

import (
	"sort"
)

// RuneSet returns a Matcher that matches any of the given runes. Prefer
// this over Ranges when the set is small and its members don't run
// together into ranges, such as a literal charset spec like "aeiou".
func RuneSet(given ...rune) Matcher {
	set := make(map[rune]struct{}, len(given))
	for _, r := range given {
		set[r] = struct{}{}
	}
	return &mSparse{Set: set}
}

type mSparse struct {
	Set map[rune]struct{}
}

var _ Matcher = (*mSparse)(nil)

func (m *mSparse) Match(r rune) bool {
	_, found := m.Set[r]
	return found
}

func (m *mSparse) ForEach(f func(r rune)) {
	sorted := make([]rune, 0, len(m.Set))
	for r := range m.Set {
		sorted = append(sorted, r)
	}
	sort.Sort(runeSlice(sorted))
	for _, r := range sorted {
		f(r)
	}
}

func (m *mSparse) Optimize() Matcher {
	if len(m.Set) == 0 {
		return None()
	}
	if len(m.Set) == 1 {
		for r := range m.Set {
			return Exactly(r)
		}
	}
	return m
}

func (m *mSparse) String() string {
	return genericString(m)
}
