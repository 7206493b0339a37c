package peggyvm

import (
	"bytes"
	"errors"
	"fmt"
)

// assert panics if cond is false. Reserved for invariants a well-formed
// Code can never violate (a malformed Code is a programming error, not a
// parse failure; see RuntimeError).
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}
