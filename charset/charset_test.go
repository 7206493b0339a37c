package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchRow struct {
	Input    rune
	Expected bool
}

func runMatchTests(t *testing.T, m Matcher, data []matchRow) {
	t.Helper()
	for i, row := range data {
		assert.Equalf(t, row.Expected, m.Match(row.Input), "%s/%03d: %q", t.Name(), i, row.Input)
	}
}

func runForEachTests(t *testing.T, m Matcher, expected []rune) {
	t.Helper()
	actual := Runes(m, nil)
	assert.Equal(t, expected, actual)
}

func TestAll_Match(t *testing.T) {
	m := All()
	runMatchTests(t, m, []matchRow{
		{'0', true},
		{'A', true},
		{'z', true},
		{' ', true},
		{'世', true},
		{0, true},
	})
}

func TestAll_String(t *testing.T) {
	require.Equal(t, ".", All().String())
}

func TestNone_Match(t *testing.T) {
	m := None()
	runMatchTests(t, m, []matchRow{
		{'0', false},
		{'A', false},
		{'世', false},
	})
}

func TestNone_ForEach(t *testing.T) {
	runForEachTests(t, None(), nil)
}

func TestNone_String(t *testing.T) {
	require.Equal(t, "!.", None().String())
}

func TestNot(t *testing.T) {
	m0 := Not(All())
	runMatchTests(t, m0, []matchRow{{'0', false}, {'A', false}})

	m1 := Not(None())
	runMatchTests(t, m1, []matchRow{{'0', true}, {'A', true}})

	require.Equal(t, "!.", Not(All()).String())
	require.Equal(t, All(), Not(None()).Optimize())
}

func TestAnd(t *testing.T) {
	m := And()
	runMatchTests(t, m, []matchRow{{'0', true}, {'z', true}})

	m = And(All())
	runMatchTests(t, m, []matchRow{{'0', true}})

	m = And(All(), None())
	runMatchTests(t, m, []matchRow{{'0', false}})

	digits := Ranges(Range{'0', '9'})
	odd := RuneSet('1', '3', '5', '7', '9')
	m = And(digits, odd)
	runForEachTests(t, m, []rune{'1', '3', '5', '7', '9'})
}

func TestOr(t *testing.T) {
	m := Or()
	runMatchTests(t, m, []matchRow{{'0', false}})

	m = Or(None())
	runMatchTests(t, m, []matchRow{{'0', false}})

	m = Or(None(), All())
	runMatchTests(t, m, []matchRow{{'0', true}})
}

func makeRuneSetDemo() Matcher {
	return RuneSet('a', 'e', 'i', 'o', 'u')
}

func TestRuneSet_Match(t *testing.T) {
	m := makeRuneSetDemo()
	runMatchTests(t, m, []matchRow{
		{'a', true}, {'e', true}, {'i', true}, {'o', true}, {'u', true},
		{'9', false}, {'b', false}, {'z', false},
	})
}

func TestRuneSet_ForEach(t *testing.T) {
	runForEachTests(t, makeRuneSetDemo(), []rune{'a', 'e', 'i', 'o', 'u'})
}

func TestRuneSet_Optimize(t *testing.T) {
	require.Equal(t, None(), RuneSet().Optimize())
	require.Equal(t, Exactly('a'), RuneSet('a').Optimize())
}

func makeRangeDemo() Matcher {
	return Ranges(
		Range{'0', '9'},
		Range{'A', 'Z'},
		Range{'a', 'z'})
}

func TestRange_Match(t *testing.T) {
	m := makeRangeDemo()
	runMatchTests(t, m, []matchRow{
		{'0', true}, {'7', true}, {'9', true},
		{'A', true}, {'X', true}, {'Z', true},
		{'a', true}, {'x', true}, {'z', true},
		{' ', false}, {'@', false}, {'`', false},
	})
}

func TestRange_ForEach(t *testing.T) {
	m := makeRangeDemo()
	runForEachTests(t, m, []rune(
		"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"))
}

func TestRange_Coalesce(t *testing.T) {
	m := Ranges(Range{'a', 'c'}, Range{'d', 'f'}, Range{'b', 'e'}).(*mRange)
	require.Equal(t, []Range{{'a', 'f'}}, m.Ranges)
}

func TestRunes(t *testing.T) {
	m0 := makeRuneSetDemo()
	assert.Equal(t, "aeiou", string(Runes(m0, nil)))

	m1 := makeRangeDemo()
	expected := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	assert.Equal(t, expected, string(Runes(m1, nil)))

	m2 := Or(m0, m1)
	assert.Equal(t, expected, string(Runes(m2, nil)))
}

func TestCharSet_RangeSpec(t *testing.T) {
	cs := New("a-z")
	runMatchTests(t, cs, []matchRow{{'a', true}, {'m', true}, {'z', true}, {'A', false}})
}

func TestCharSet_LiteralSpec(t *testing.T) {
	cs := New("abcd")
	runMatchTests(t, cs, []matchRow{{'a', true}, {'b', true}, {'e', false}})
}

func TestCharSet_Union(t *testing.T) {
	cs := New("a-z").Union("0-9")
	runMatchTests(t, cs, []matchRow{{'a', true}, {'5', true}, {'A', false}})
}

func TestCharSet_Difference(t *testing.T) {
	cs := New("a-z").Difference("aeiou")
	runMatchTests(t, cs, []matchRow{{'b', true}, {'a', false}, {'e', false}})
}
