package unidiff

import "fmt"

// ParseError is the single error kind produced by the parser. It carries a
// human-readable message and the offending raw input line. Every parse
// error is fatal: the pass aborts and no partial result is returned.
type ParseError struct {
	Msg  string // What went wrong
	Line string // The raw line that triggered the error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Msg, e.Line)
}
