package charset

// Or returns a Matcher matching any rune that at least one of ms matches.
// Match and ForEach cost is whatever the slowest of ms costs. Optimize
// collapses a single-element union to that element directly.
func Or(ms ...Matcher) Matcher {
	l := make([]Matcher, len(ms))
	copy(l, ms)
	return &mUnion{List: l}
}

type mUnion struct {
	List []Matcher
}

var _ Matcher = (*mUnion)(nil)

func (m *mUnion) Match(r rune) bool {
	for _, sub := range m.List {
		if sub.Match(r) {
			return true
		}
	}
	return false
}

func (m *mUnion) ForEach(f func(r rune)) {
	forEachUnion(m.List, f)
}

func (m *mUnion) Optimize() Matcher {
	if len(m.List) == 0 {
		return None()
	}
	if len(m.List) == 1 {
		return m.List[0].Optimize()
	}
	return m
}

func (m *mUnion) String() string {
	return genericString(m)
}
