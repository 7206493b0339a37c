// Package peggy builds and runs Parsing Expression Grammars on top of the
// peggyvm bytecode machine.
//
// A grammar fragment is built out of pure combinator functions (Literal,
// Charset, Any, Sequence, Choice, ZeroOrMore, OneOrMore, ZeroOrOne,
// Optional, Not, And, Lookaround, RuleRef, Consume, Capture, Join,
// String, Except, AnyExcept). Each returns an immutable Code value; none
// of them touch a Grammar or execute anything. A Grammar maps rule names
// to compiled rule bodies. Define normalizes a fragment, appends a
// return instruction carrying the rule's optional reduction callback,
// and stores the result; Get panics with a *peggyvm.GrammarError on an
// undefined name, and a jsr into an undefined name (looked up through
// the Resolve method) makes the VM return a *peggyvm.GrammarError, since
// an undefined rule reference is a grammar-authoring bug rather than an
// ordinary parse failure.
//
// A Parser wraps a peggyvm.VM bound to a Grammar and a start rule. Feed
// it input with Accept, drive it to completion with Run, and read back
// the result with Result. Restart begins a fresh match at the current
// cursor without resetting it, and MatchAll uses that to lazily produce
// every successive match over the fed input.
package peggy
