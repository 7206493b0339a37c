package peggyvm

// backtrack is one link of the backtrack-point chain that fail() restores
// from. It snapshots every register choice needs to undo: pc, code (the
// active rule body may differ from the one in effect when the backtrack
// point was recorded, since a choice can straddle a jsr), cursor, the
// stack height, fp, and the rule bookkeeping (a choice can also straddle
// a jsr/ret pair, so the current rule name and call depth need undoing
// too).
type backtrack struct {
	prev      *backtrack
	pc        int
	code      Code
	cursor    int
	sp        int
	fp        int
	rule      string
	ruleDepth int
}
