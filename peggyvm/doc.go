// Package peggyvm implements a virtual machine for Parsing Expression
// Grammars.
//
// A grammar rule compiles to a Code value: a flat, immutable sequence of
// Instr values. Unlike a packed bytecode stream, each Instr is a plain Go
// struct carrying only the operand fields its opcode needs, and the
// program counter is an ordinary index into Code: there is no varint
// decoding, no label/fixup pass, and no distinction between a one-slot
// and two-slot instruction form.
//
// The VM (type VM) is a small register machine:
//
//   - pc, the index of the next instruction to execute
//   - code, the Code currently executing (changes across jsr/ret)
//   - cursor, the index of the next unconsumed input scalar
//   - stack, a single mixed stack carrying both captures and the
//     bookkeeping cells jsr/frame push to delimit a scope
//   - fp, the index of the current frame's first stack cell
//   - bp, the head of a linked chain of backtrack records
//   - running/status/clock, the halt flag, terminal outcome, and a step
//     counter
//
// Step decodes and executes exactly one instruction. Run steps until the
// VM halts. Accept appends more input and steps while there is
// unconsumed input and the VM is still running, allowing a match to be
// driven forward as bytes arrive rather than requiring the whole input
// up front. Restart resets the VM to begin a fresh match at the current
// cursor, without losing the position already reached, the shape
// match_all-style repeated scanning needs.
//
// Ordered-choice backtracking works by pushing a backtrack record
// (choice), discarding the most recent one once an alternative has
// committed (commit), or restoring the most recent one and giving the
// next alternative a turn (fail). A rule call (jsr/ret) pushes a saved
// pc/code/fp triple and opens a new frame; a bare capture scope
// (frame/drop/reduce) pushes only a saved fp. call shares reduce's
// frame shape but does not restore pc/code, letting a host computation
// run mid-rule without returning from the enclosing call.
package peggyvm
