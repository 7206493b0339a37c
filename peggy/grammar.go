package peggy

import (
	"github.com/chronos-tachyon/peggy/peggyvm"
)

// Grammar is a mapping from nonterminal name to a compiled rule body.
// The zero value is not usable; construct with NewGrammar.
type Grammar struct {
	rules map[string]Code
}

// NewGrammar returns an empty Grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]Code)}
}

// Define normalizes body, appends a return instruction carrying action
// (which may be nil), and stores the result under name. It returns
// RuleRef(name) so a defined rule can be composed as a first-class
// combinator immediately, including in a fragment defined before name
// itself is (forward references are allowed; they are only resolved
// when the VM actually jsrs into them).
func (g *Grammar) Define(name string, body Fragment, action Action) Code {
	compiled := normalize(body)
	full := make(Code, 0, len(compiled)+1)
	full = append(full, compiled...)
	full = append(full, peggyvm.Instr{Op: peggyvm.OpRet, Action: action})
	g.rules[name] = full
	return RuleRef(name)
}

// Get returns the compiled body stored under name. It panics with a
// *peggyvm.GrammarError if name was never defined: an undefined rule
// reference is a grammar-authoring bug, not an ordinary parse failure.
func (g *Grammar) Get(name string) Code {
	body, ok := g.rules[name]
	if !ok {
		panic(&peggyvm.GrammarError{Rule: name})
	}
	return body
}

// Resolve implements peggyvm.Resolver. Unlike Get, it reports a missing
// rule with ok==false rather than panicking, since it is called from
// inside a running VM's jsr handler, which surfaces the same condition
// as a *peggyvm.GrammarError returned from Step/Run/Accept.
func (g *Grammar) Resolve(name string) (peggyvm.Code, bool) {
	body, ok := g.rules[name]
	return body, ok
}

// Parser builds a Parser bound to this grammar, starting execution at
// the rule named start, with context threaded through to every
// reduction callback.
func (g *Grammar) Parser(start string, context any) *Parser {
	return &Parser{vm: peggyvm.New(g, start, context)}
}
