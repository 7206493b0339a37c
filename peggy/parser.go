package peggy

import (
	"fmt"
	"iter"

	"github.com/chronos-tachyon/peggy/peggyvm"
)

// wrap recovers a panicking reduction callback (the only panic-worthy
// event Step can encounter against correctly compiled Code) and
// surfaces it as a *peggyvm.CallbackError instead of letting it cross
// the Parser's API boundary as a bare panic. vm.CurrentRule names the
// rule whose reduction was running at the moment of the panic.
func wrap(vm *peggyvm.VM, run func() error) (result error) {
	defer func() {
		if r := recover(); r != nil {
			rule := vm.CurrentRule()
			if e, ok := r.(error); ok {
				result = &peggyvm.CallbackError{Rule: rule, Err: e}
			} else {
				result = &peggyvm.CallbackError{Rule: rule, Err: fmt.Errorf("%v", r)}
			}
		}
	}()
	return run()
}

// Parser is a single match-in-progress against a Grammar. It may be fed
// more input and restarted many times; a Parser is not safe for
// concurrent use, though independent Parsers over the same Grammar may
// run on different goroutines.
type Parser struct {
	vm *peggyvm.VM
}

// Accept appends more to the input and drives the parser forward while
// there is unconsumed input and it is still running. It suspends at
// whichever consuming instruction exhausts the buffer; call Run once no
// more input is forthcoming to let a match reach its conclusion.
func (p *Parser) Accept(more string) error {
	return wrap(p.vm, func() error { return p.vm.Accept([]rune(more)) })
}

// Run drives the parser until it halts.
func (p *Parser) Run() error {
	return wrap(p.vm, p.vm.Run)
}

// Restart resets the parser to begin a fresh match at the current
// cursor. The bootloader is reinstalled and the stack/backtrack chain
// are cleared, but the cursor itself is untouched. It reports whether
// input remains to be scanned, which is what MatchAll uses to know when
// to stop.
func (p *Parser) Restart() bool {
	p.vm.Restart()
	return p.vm.Cursor() < p.vm.InputLen()
}

// Skip advances the cursor by n without running any instruction. Used
// for scan-style recovery: skip past a position no rule matched, then
// Restart.
func (p *Parser) Skip(n int) {
	p.vm.Skip(n)
}

// Result returns the value produced by the start rule, if the parser
// halted with Status() == "success".
func (p *Parser) Result() (Value, bool) {
	return p.vm.Result()
}

// Status is "", "success", or "failure".
func (p *Parser) Status() string {
	return p.vm.Status.String()
}

// Running reports whether the parser has not yet halted.
func (p *Parser) Running() bool {
	return p.vm.Running
}

// Cursor is the index of the next unconsumed input scalar.
func (p *Parser) Cursor() int {
	return p.vm.Cursor()
}

// MatchAll lazily produces the value of every successive successful
// match over the input fed so far: on success it yields the result and
// restarts; on failure with input remaining it advances the cursor by
// one scalar and restarts; on failure with no input remaining it ends
// the sequence. All input must already be Accept-ed before ranging over
// MatchAll's iterator.
func (p *Parser) MatchAll() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			if err := p.Run(); err != nil {
				return
			}
			if p.vm.Status == peggyvm.StatusSuccess {
				v, _ := p.Result()
				if !yield(v) {
					return
				}
				p.Restart()
				continue
			}
			if p.Cursor() >= p.vm.InputLen() {
				return
			}
			p.Skip(1)
			p.Restart()
		}
	}
}
