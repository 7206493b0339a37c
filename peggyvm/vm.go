package peggyvm

// Status is the terminal outcome of a VM run. Status is only meaningful
// once running is false.
type Status uint8

const (
	StatusNone Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return ""
	}
}

// Resolver looks up a compiled rule body by name. A Grammar implements
// Resolver; the VM itself carries no notion of a grammar so that this
// package has no dependency on the combinator/grammar layer built atop
// it.
type Resolver interface {
	Resolve(name string) (Code, bool)
}

// VM is a single match-in-progress: a program counter, an input cursor, a
// mixed data/call stack, a frame pointer, and a backtrack chain.
type VM struct {
	Resolver Resolver
	Context  any

	bootloader Code
	code       Code
	pc         int

	input  []rune
	cursor int

	stack []cell
	fp    int
	bp    *backtrack

	rule      string
	ruleStack []string

	Running bool
	Status  Status
	Clock   uint64
}

// New returns a VM bound to resolver and ready to run start as its entry
// rule. context is threaded through to every reduction callback. The
// returned VM has no input yet; call Accept to feed it before Run.
func New(resolver Resolver, start string, context any) *VM {
	bootloader := Code{
		{Op: OpJsr, Rule: start},
		{Op: OpEnd},
	}
	vm := &VM{
		Resolver:   resolver,
		Context:    context,
		bootloader: bootloader,
		code:       bootloader,
		Running:    true,
	}
	return vm
}

func (vm *VM) push(c cell) {
	vm.stack = append(vm.stack, c)
}

func (vm *VM) pop() cell {
	n := len(vm.stack)
	assert(n > 0, "pop on empty stack")
	c := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return c
}

// Cursor returns the index of the next unconsumed input scalar.
func (vm *VM) Cursor() int { return vm.cursor }

// InputLen returns the number of scalars fed so far via Accept.
func (vm *VM) InputLen() int { return len(vm.input) }

// Skip advances the cursor by n without executing any instruction. Used
// by match_all-style scanning to step past a position no rule matched.
func (vm *VM) Skip(n int) {
	vm.cursor += n
}

func (vm *VM) fail() {
	if vm.bp == nil {
		vm.Running = false
		vm.Status = StatusFailure
		return
	}
	bt := vm.bp
	vm.pc = bt.pc
	vm.code = bt.code
	vm.cursor = bt.cursor
	vm.stack = vm.stack[:bt.sp]
	vm.fp = bt.fp
	vm.rule = bt.rule
	vm.ruleStack = vm.ruleStack[:bt.ruleDepth]
	vm.bp = bt.prev
}

// Step decodes and executes exactly one instruction.
func (vm *VM) Step() error {
	if !vm.Running {
		return ErrExecutionHalted
	}

	assert(vm.pc >= 0 && vm.pc < len(vm.code), "pc out of range")
	ins := vm.code[vm.pc]
	vm.pc++
	vm.Clock++

	switch ins.Op {
	case OpChar:
		if vm.cursor < len(vm.input) && vm.input[vm.cursor] == ins.Char {
			vm.push(cell{kind: cellScalar, scalar: ins.Char})
			vm.cursor++
		} else {
			vm.fail()
		}

	case OpCharset:
		if vm.cursor < len(vm.input) && ins.Set.Match(vm.input[vm.cursor]) {
			r := vm.input[vm.cursor]
			vm.push(cell{kind: cellScalar, scalar: r})
			vm.cursor++
		} else {
			vm.fail()
		}

	case OpAny:
		if vm.cursor < len(vm.input) && vm.input[vm.cursor] != 0 {
			r := vm.input[vm.cursor]
			vm.push(cell{kind: cellScalar, scalar: r})
			vm.cursor++
		} else {
			vm.fail()
		}

	case OpMove:
		next := vm.cursor + ins.Offset
		if next < 0 {
			vm.fail()
		} else {
			vm.cursor = next
		}

	case OpPushd:
		vm.push(cell{kind: cellValue, value: ins.Value})

	case OpJsr:
		code, ok := vm.Resolver.Resolve(ins.Rule)
		if !ok {
			vm.Running = false
			vm.Status = StatusFailure
			return &GrammarError{Rule: ins.Rule}
		}
		vm.push(cell{kind: cellSavedPC, pc: vm.pc})
		vm.push(cell{kind: cellSavedCode, code: vm.code})
		vm.push(cell{kind: cellSavedFP, fp: vm.fp})
		vm.ruleStack = append(vm.ruleStack, vm.rule)
		vm.rule = ins.Rule
		vm.fp = len(vm.stack)
		vm.code = code
		vm.pc = 0

	case OpRet:
		values := cellsToValues(vm.stack[vm.fp:])
		vm.stack = vm.stack[:vm.fp]
		fpCell := vm.pop()
		codeCell := vm.pop()
		pcCell := vm.pop()
		assert(fpCell.kind == cellSavedFP, "ret: expected saved fp")
		assert(codeCell.kind == cellSavedCode, "ret: expected saved code")
		assert(pcCell.kind == cellSavedPC, "ret: expected saved pc")
		vm.fp = fpCell.fp
		vm.code = codeCell.code
		vm.pc = pcCell.pc
		result := applyAction(ins.Action, vm.Context, values)
		n := len(vm.ruleStack) - 1
		vm.rule = vm.ruleStack[n]
		vm.ruleStack = vm.ruleStack[:n]
		vm.push(cell{kind: cellValue, value: result})

	case OpCall:
		assert(ins.Action != nil, "call with no action")
		values := cellsToValues(vm.stack[vm.fp:])
		vm.stack = vm.stack[:vm.fp]
		fpCell := vm.pop()
		assert(fpCell.kind == cellSavedFP, "call: expected saved fp")
		vm.fp = fpCell.fp
		vm.push(cell{kind: cellValue, value: ins.Action(vm.Context, values)})

	case OpFrame:
		vm.push(cell{kind: cellSavedFP, fp: vm.fp})
		vm.fp = len(vm.stack)

	case OpDrop:
		vm.stack = vm.stack[:vm.fp]
		fpCell := vm.pop()
		assert(fpCell.kind == cellSavedFP, "drop: expected saved fp")
		vm.fp = fpCell.fp

	case OpReduce:
		values := cellsToValues(vm.stack[vm.fp:])
		vm.stack = vm.stack[:vm.fp]
		fpCell := vm.pop()
		assert(fpCell.kind == cellSavedFP, "reduce: expected saved fp")
		vm.fp = fpCell.fp
		vm.push(cell{kind: cellValue, value: applyAction(ins.Action, vm.Context, values)})

	case OpChoice:
		vm.bp = &backtrack{
			prev:      vm.bp,
			pc:        vm.pc + ins.Offset,
			code:      vm.code,
			cursor:    vm.cursor,
			sp:        len(vm.stack),
			fp:        vm.fp,
			rule:      vm.rule,
			ruleDepth: len(vm.ruleStack),
		}

	case OpCommit:
		assert(vm.bp != nil, "commit with no pending backtrack point")
		vm.bp = vm.bp.prev
		vm.pc += ins.Offset

	case OpFail:
		vm.fail()

	case OpEnd:
		vm.Running = false
		vm.Status = StatusSuccess

	default:
		return &RuntimeError{Err: ErrUnknownOpcode, PC: vm.pc - 1, Op: ins.Op}
	}
	return nil
}

func applyAction(f Action, context any, values []Value) Value {
	if f != nil {
		return f(context, values)
	}
	return values
}

// Run steps the VM until it halts.
func (vm *VM) Run() error {
	for vm.Running {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Accept appends more to the input and drives the VM while it is still
// running and input remains unconsumed. It suspends, without error,
// the moment the cursor catches up with the fed input, whether or not
// the match is complete; call Run afterward once no more input is
// forthcoming to let the match run to its conclusion.
func (vm *VM) Accept(more []rune) error {
	vm.input = append(vm.input, more...)
	for vm.Running && vm.cursor < len(vm.input) {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Restart resets the VM to begin a fresh match at the current cursor: the
// bootloader is reinstalled, the stack and backtrack chain are cleared,
// and running is set true. The cursor itself is untouched, which is what
// lets match_all resume scanning after a match.
func (vm *VM) Restart() {
	vm.code = vm.bootloader
	vm.pc = 0
	vm.stack = vm.stack[:0]
	vm.fp = 0
	vm.bp = nil
	vm.rule = ""
	vm.ruleStack = vm.ruleStack[:0]
	vm.Running = true
	vm.Status = StatusNone
}

// CurrentRule returns the name of the rule whose body is presently
// executing, or "" if execution has not yet entered a named rule (e.g.
// while still in the bootloader). A ret restores the caller's rule only
// after its callback returns, so after a callback panic it still names
// the rule whose callback panicked.
func (vm *VM) CurrentRule() string { return vm.rule }

// Result returns the value produced by the start rule, if the VM halted
// with StatusSuccess.
func (vm *VM) Result() (Value, bool) {
	if vm.Status != StatusSuccess || len(vm.stack) == 0 {
		return nil, false
	}
	return cellsToValues(vm.stack[:1])[0], true
}
