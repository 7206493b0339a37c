// Package charset implements immutable sets of Unicode scalar values
// (runes), used by the VM's charset instruction and by grammar authors
// composing character classes.
package charset

// Matcher is a predicate that returns true for certain runes.
//
// For the sake of all that is good and holy, implementations of Matcher
// must *not* change their state on a call to Match.
type Matcher interface {
	// Match returns true iff rune r is in the set.
	Match(r rune) bool

	// ForEach calls f exactly once for each rune in the set. The arguments
	// for successive calls are guaranteed to be in ascending order.
	ForEach(f func(r rune))

	// Optimize returns a Matcher that matches the same set of runes, but
	// possibly in a more efficient way. If no better implementation can be
	// found, returns this matcher.
	Optimize() Matcher

	// String returns a string representation of the set.
	String() string
}

// Runes appends each rune matched by m to out, then returns the updated slice.
func Runes(m Matcher, out []rune) []rune {
	m.ForEach(func(r rune) { out = append(out, r) })
	return out
}
