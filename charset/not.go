package charset

// Not returns a Matcher matching every rune m does not. Its ForEach walks
// every scalar value and tests Match on each, since the complement of an
// arbitrary Matcher has no more direct enumeration; Optimize cancels a
// double negation and rewrites the negation of All/None to the other.
func Not(m Matcher) Matcher {
	return &mNegation{Inner: m}
}

type mNegation struct {
	Inner Matcher
}

var _ Matcher = (*mNegation)(nil)

func (m *mNegation) Match(r rune) bool {
	return !m.Inner.Match(r)
}

func (m *mNegation) ForEach(f func(r rune)) {
	genericForEach(m, f)
}

func (m *mNegation) Optimize() Matcher {
	m.Inner = m.Inner.Optimize()
	switch sub := m.Inner.(type) {
	case *mAll:
		return None()
	case *mNone:
		return All()
	case *mNegation:
		return sub.Inner
	default:
		return m
	}
}

func (m *mNegation) String() string {
	return "!" + m.Inner.String()
}
