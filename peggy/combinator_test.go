package peggy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/peggy/peggyvm"
)

func TestLiteral(t *testing.T) {
	code := Literal("Hello")
	require.Len(t, code, 5)
	for i, r := range "Hello" {
		assert.Equal(t, peggyvm.OpChar, code[i].Op)
		assert.Equal(t, r, code[i].Char)
	}

	assert.Len(t, Literal(""), 0)
}

func TestChoice_SingleAlternativeIsIdentity(t *testing.T) {
	a := Literal("a")
	assert.Equal(t, a, Choice(a))
}

func TestChoice_RightAssociative(t *testing.T) {
	a, b, c := Literal("a"), Literal("b"), Literal("c")
	assert.Equal(t, Choice(a, Choice(b, c)), Choice(a, b, c))
}

func TestChoice_Offsets(t *testing.T) {
	a, b := Literal("a"), Literal("b")
	code := Choice(a, b)
	require.Len(t, code, 4)
	assert.Equal(t, peggyvm.OpChoice, code[0].Op)
	assert.Equal(t, len(a)+1, code[0].Offset)
	assert.Equal(t, peggyvm.OpCommit, code[2].Op)
	assert.Equal(t, len(b), code[2].Offset)
}

func TestZeroOrMore_Offsets(t *testing.T) {
	p := Literal("a")
	code := ZeroOrMore(p)
	require.Len(t, code, len(p)+2)
	assert.Equal(t, peggyvm.OpChoice, code[0].Op)
	assert.Equal(t, len(p)+1, code[0].Offset)
	last := code[len(code)-1]
	assert.Equal(t, peggyvm.OpCommit, last.Op)
	assert.Equal(t, -(len(p) + 2), last.Offset)
}

func TestOptional_Offsets(t *testing.T) {
	p := Literal("x")
	code := Optional(p, peggyvm.Absent)
	require.Len(t, code, len(p)+3)
	assert.Equal(t, peggyvm.OpChoice, code[0].Op)
	assert.Equal(t, len(p)+1, code[0].Offset)
	commit := code[len(code)-2]
	assert.Equal(t, peggyvm.OpCommit, commit.Op)
	assert.Equal(t, 1, commit.Offset)
	pushd := code[len(code)-1]
	assert.Equal(t, peggyvm.OpPushd, pushd.Op)
	assert.Equal(t, peggyvm.Absent, pushd.Value)
}

func TestNot_Offsets(t *testing.T) {
	p := Literal("x")
	code := Not(p)
	require.Len(t, code, len(p)+3)
	assert.Equal(t, peggyvm.OpChoice, code[0].Op)
	assert.Equal(t, len(p)+2, code[0].Offset)
	assert.Equal(t, peggyvm.OpCommit, code[len(code)-2].Op)
	assert.Equal(t, 0, code[len(code)-2].Offset)
	assert.Equal(t, peggyvm.OpFail, code[len(code)-1].Op)
}

func TestExcept(t *testing.T) {
	comma := Literal(",")
	quote := Literal("\"")
	code := Except(Any(), comma, quote)
	assert.Equal(t, Sequence(Not(comma), Not(quote), Any()), code)
}
