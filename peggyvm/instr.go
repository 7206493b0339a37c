package peggyvm

import (
	"fmt"

	"github.com/chronos-tachyon/peggy/charset"
)

// Value is anything a grammar's captures, reduction callbacks, or pushd
// operands may carry. Most commonly a rune (a single captured scalar), a
// string or []Value built by a reduction callback, or Absent.
type Value = any

type absentType struct{}

func (absentType) String() string { return "<absent>" }

// Absent is the sentinel value pushed by optional(P, default) when P fails
// and no explicit default was supplied.
var Absent Value = absentType{}

// Action is a user-supplied reduction callback. It receives the VM's
// context value and the ordered list of captures collected since the
// enclosing frame/call was opened, and returns the single Value that
// replaces them on the stack.
type Action func(context any, args []Value) Value

// Instr is one instruction. Op selects which of the remaining fields is
// meaningful:
//
//	Char    OpChar
//	Set     OpCharset
//	Offset  OpMove, OpChoice, OpCommit
//	Rule    OpJsr
//	Action  OpRet, OpCall, OpReduce
//	Value   OpPushd
//
// OpAny, OpFrame, OpDrop, OpFail, and OpEnd carry no operand.
type Instr struct {
	Op     OpCode
	Char   rune
	Set    charset.Matcher
	Offset int
	Rule   string
	Action Action
	Value  Value
}

// Code is an immutable, flat sequence of instructions. The program counter
// is an index into Code, advancing by one position per instruction, so a
// jump's Offset is counted in instructions rather than the byte or pair
// offsets a packed bytecode encoding would need.
type Code []Instr

func (c Code) String() string {
	var out []byte
	for i, ins := range c {
		out = append(out, []byte(fmt.Sprintf("%4d  %s\n", i, ins.disasm()))...)
	}
	return string(out)
}

func (ins Instr) disasm() string {
	switch ins.Op {
	case OpChar:
		return fmt.Sprintf("%-8s %q", ins.Op, ins.Char)
	case OpCharset:
		return fmt.Sprintf("%-8s %s", ins.Op, ins.Set)
	case OpMove, OpChoice, OpCommit:
		return fmt.Sprintf("%-8s %+d", ins.Op, ins.Offset)
	case OpJsr:
		return fmt.Sprintf("%-8s %s", ins.Op, ins.Rule)
	case OpRet, OpCall, OpReduce:
		if ins.Action != nil {
			return fmt.Sprintf("%-8s <callback>", ins.Op)
		}
		return ins.Op.String()
	case OpPushd:
		return fmt.Sprintf("%-8s %v", ins.Op, ins.Value)
	default:
		return ins.Op.String()
	}
}
