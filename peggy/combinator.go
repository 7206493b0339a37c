package peggy

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/peggy/charset"
	"github.com/chronos-tachyon/peggy/peggyvm"
)

// Code is an immutable, flat instruction sequence, the output of every
// combinator in this file and the unit Grammar.Define stores per rule.
type Code = peggyvm.Code

// Value is anything a capture, a pushd operand, or a reduction callback's
// return value may hold.
type Value = peggyvm.Value

// Action is a reduction callback: given the Parser's context value and
// the ordered captures collected since the enclosing scope opened, it
// returns the single Value that replaces them.
type Action = peggyvm.Action

// Fragment is anything a combinator accepts in place of an already-built
// Code value: a Code itself, a string (wrapped with Literal), a rune
// (wrapped as a single char match), or a []Fragment (wrapped with
// Sequence). Passing any other type panics.
type Fragment = any

func normalize(f Fragment) Code {
	switch v := f.(type) {
	case Code:
		return v
	case string:
		return Literal(v)
	case rune:
		return Code{{Op: peggyvm.OpChar, Char: v}}
	case []Fragment:
		return Sequence(v...)
	case nil:
		return Code{}
	default:
		panic(fmt.Sprintf("peggy: cannot normalize %T as a grammar fragment", f))
	}
}

// Literal compiles to exactly one char instruction per scalar in s. The
// empty string compiles to no instructions.
func Literal(s string) Code {
	var out Code
	for _, r := range s {
		out = append(out, peggyvm.Instr{Op: peggyvm.OpChar, Char: r})
	}
	return out
}

// Charset builds a character-set matcher from specs (see
// charset.New) and emits a single charset instruction.
func Charset(specs ...string) Code {
	return Code{{Op: peggyvm.OpCharset, Set: charset.New(specs...)}}
}

// Any matches a single scalar other than the null scalar.
func Any() Code {
	return Code{{Op: peggyvm.OpAny}}
}

// Sequence (a.k.a. concat) normalizes and concatenates its arguments in
// order. It emits no instructions of its own.
func Sequence(parts ...Fragment) Code {
	var out Code
	for _, p := range parts {
		out = append(out, normalize(p)...)
	}
	return out
}

// Choice compiles an ordered choice among its alternatives via
// right-associative nesting: choice(a) is a itself, and
// choice(a, b, c) == choice(a, choice(b, c)).
func Choice(parts ...Fragment) Code {
	if len(parts) == 0 {
		return Code{}
	}
	codes := make([]Code, len(parts))
	for i, p := range parts {
		codes[i] = normalize(p)
	}
	return choiceFrom(codes)
}

func choiceFrom(codes []Code) Code {
	if len(codes) == 1 {
		return codes[0]
	}
	a := codes[0]
	rest := choiceFrom(codes[1:])
	out := make(Code, 0, len(a)+len(rest)+2)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpChoice, Offset: len(a) + 1})
	out = append(out, a...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpCommit, Offset: len(rest)})
	out = append(out, rest...)
	return out
}

// ZeroOrMore matches P as many times as it succeeds, including zero.
func ZeroOrMore(p Fragment) Code {
	return zeroOrMore(normalize(p))
}

func zeroOrMore(p Code) Code {
	out := make(Code, 0, len(p)+2)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpChoice, Offset: len(p) + 1})
	out = append(out, p...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpCommit, Offset: -(len(p) + 2)})
	return out
}

// OneOrMore matches P once, then as many additional times as it
// succeeds.
func OneOrMore(p Fragment) Code {
	body := normalize(p)
	out := make(Code, 0, 2*len(body)+2)
	out = append(out, body...)
	out = append(out, zeroOrMore(body)...)
	return out
}

// Optional matches P if it can, or else pushes def without consuming
// input.
func Optional(p Fragment, def Value) Code {
	body := normalize(p)
	out := make(Code, 0, len(body)+3)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpChoice, Offset: len(body) + 1})
	out = append(out, body...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpCommit, Offset: 1})
	out = append(out, peggyvm.Instr{Op: peggyvm.OpPushd, Value: def})
	return out
}

// ZeroOrOne is Optional with peggyvm.Absent as the default.
func ZeroOrOne(p Fragment) Code {
	return Optional(p, peggyvm.Absent)
}

// Not is a non-consuming predicate: it succeeds, without consuming input
// or leaving captures, exactly when P fails; it fails exactly when P
// succeeds.
func Not(p Fragment) Code {
	body := normalize(p)
	out := make(Code, 0, len(body)+3)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpChoice, Offset: len(body) + 2})
	out = append(out, body...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpCommit, Offset: 0})
	out = append(out, peggyvm.Instr{Op: peggyvm.OpFail})
	return out
}

// And is a non-consuming predicate that succeeds exactly when P
// succeeds: the double negation of Not.
func And(p Fragment) Code {
	return Not(Not(normalize(p)))
}

// Lookaround moves the cursor by delta (without leaving it moved) and
// tries P at that offset. It is a negative predicate: it succeeds,
// consuming nothing, exactly when P does not match there (or the move
// would put the cursor before the start), and fails when P matches. A
// negative delta tests a lookbehind.
func Lookaround(delta int, p Fragment) Code {
	body := normalize(p)
	probe := make(Code, 0, len(body)+1)
	probe = append(probe, peggyvm.Instr{Op: peggyvm.OpMove, Offset: delta})
	probe = append(probe, body...)
	return Not(probe)
}

// RuleRef compiles to a subroutine call into the named rule.
func RuleRef(name string) Code {
	return Code{{Op: peggyvm.OpJsr, Rule: name}}
}

// Consume matches P and discards whatever it captured.
func Consume(p Fragment) Code {
	body := normalize(p)
	out := make(Code, 0, len(body)+2)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpFrame})
	out = append(out, body...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpDrop})
	return out
}

// Capture matches P and packs its captures into a single []Value.
func Capture(p Fragment) Code {
	body := normalize(p)
	out := make(Code, 0, len(body)+2)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpFrame})
	out = append(out, body...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpReduce})
	return out
}

// Join matches P and concatenates its captures into a single string.
func Join(p Fragment) Code {
	body := normalize(p)
	out := make(Code, 0, len(body)+2)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpFrame})
	out = append(out, body...)
	out = append(out, peggyvm.Instr{Op: peggyvm.OpReduce, Action: joinAction})
	return out
}

func joinAction(_ any, args []Value) Value {
	var b strings.Builder
	for _, v := range args {
		switch x := v.(type) {
		case rune:
			b.WriteRune(x)
		case string:
			b.WriteString(x)
		default:
			fmt.Fprintf(&b, "%v", x)
		}
	}
	return b.String()
}

// String is Join(OneOrMore(P)): it matches P one or more times and joins
// the captures into a single string.
func String(p Fragment) Code {
	return Join(OneOrMore(normalize(p)))
}

// Except matches head only if none of tails would match first: it
// compiles to Not(tail1), Not(tail2), ..., head in sequence.
func Except(head Fragment, tails ...Fragment) Code {
	parts := make([]Fragment, 0, len(tails)+1)
	for _, t := range tails {
		parts = append(parts, Not(t))
	}
	parts = append(parts, head)
	return Sequence(parts...)
}

// AnyExcept is Except(Any(), tails...).
func AnyExcept(tails ...Fragment) Code {
	return Except(Any(), tails...)
}
