package charset

// All returns a Matcher that matches every rune, including the null
// scalar; the VM's own any instruction is what excludes the null scalar,
// not this Matcher.
func All() Matcher { return singletonAll }

type mAll struct{}

var _ Matcher = (*mAll)(nil)
var singletonAll = &mAll{}

func (m *mAll) Match(r rune) bool      { return true }
func (m *mAll) ForEach(f func(r rune)) { genericForEach(m, f) }
func (m *mAll) Optimize() Matcher      { return singletonAll }
func (m *mAll) String() string         { return "." }

// None returns a Matcher that never matches, the identity element for Or
// and the annihilator for And.
func None() Matcher { return singletonNone }

type mNone struct{}

var _ Matcher = (*mNone)(nil)
var singletonNone = &mNone{}

func (m *mNone) Match(r rune) bool      { return false }
func (m *mNone) ForEach(f func(r rune)) {}
func (m *mNone) Optimize() Matcher      { return singletonNone }
func (m *mNone) String() string         { return "!." }

// Exactly returns a Matcher that matches one specific rune. RuneSet
// collapses to this on Optimize when it holds a single rune; Ranges does
// not.
func Exactly(r rune) Matcher {
	return &mExact{Rune: r}
}

type mExact struct{ Rune rune }

var _ Matcher = (*mExact)(nil)

func (m *mExact) Match(r rune) bool {
	return r == m.Rune
}

func (m *mExact) ForEach(f func(r rune)) {
	f(m.Rune)
}

func (m *mExact) Optimize() Matcher {
	return m
}

func (m *mExact) String() string {
	return genericString(m)
}
