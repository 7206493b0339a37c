package charset

// And returns a Matcher matching any rune that every one of ms matches.
// Used by CharSet.Difference to intersect a set with the negation of the
// runes being removed.
func And(ms ...Matcher) Matcher {
	l := make([]Matcher, len(ms))
	copy(l, ms)
	return &mIntersection{List: l}
}

type mIntersection struct {
	List []Matcher
}

var _ Matcher = (*mIntersection)(nil)

func (m *mIntersection) Match(r rune) bool {
	for _, sub := range m.List {
		if !sub.Match(r) {
			return false
		}
	}
	return true
}

func (m *mIntersection) ForEach(f func(r rune)) {
	forEachIntersection(m.List, f)
}

func (m *mIntersection) Optimize() Matcher {
	if len(m.List) == 0 {
		return All()
	}
	if len(m.List) == 1 {
		return m.List[0].Optimize()
	}
	return m
}

func (m *mIntersection) String() string {
	return genericString(m)
}
