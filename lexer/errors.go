package lexer

import (
	"fmt"
)

// Error is a lexical error. It always points at the offending character
// with 1-based line and column.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errUnexpectedChar(r rune, line, col int) *Error {
	return &Error{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf("unexpected character %q at line %d, column %d", r, line, col),
	}
}

// errASCIIHyphen reports the one confusion worth a dedicated message: the
// ASCII dash is not the minus operator.
func errASCIIHyphen(line, col int) *Error {
	return &Error{
		Line:   line,
		Column: col,
		Message: fmt.Sprintf(
			"invalid character '-' (ASCII dash U+002D) at line %d, column %d; did you mean '−' (minus sign U+2212)?",
			line, col),
	}
}

func errLetterInNumber(r rune, line, col int) *Error {
	return &Error{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf("invalid character %q in number at line %d, column %d", r, line, col),
	}
}
