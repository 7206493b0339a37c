package peggyvm

// cellKind tags the variant held by a single stack cell. Captures and
// call/frame bookkeeping share one stack, so a cell needs enough tags to
// tell a captured input scalar apart from the saved registers jsr and
// frame push.
type cellKind uint8

const (
	cellScalar cellKind = iota
	cellSavedPC
	cellSavedCode
	cellSavedFP
	cellValue
)

type cell struct {
	kind   cellKind
	scalar rune
	pc     int
	code   Code
	fp     int
	value  Value
}

// cellsToValues extracts the capture list carried by a slice of stack
// cells. Only cellScalar and cellValue cells may appear between a frame's
// fp and the top of stack; encountering anything else means a jsr/frame
// frame was unwound with the wrong shape of handler (ret used where call
// was meant, or vice versa).
func cellsToValues(cells []cell) []Value {
	out := make([]Value, len(cells))
	for i, c := range cells {
		switch c.kind {
		case cellScalar:
			out[i] = c.scalar
		case cellValue:
			out[i] = c.value
		default:
			panic("peggyvm: capture range contains a non-capture stack cell")
		}
	}
	return out
}
