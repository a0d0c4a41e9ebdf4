package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/minilisp/lexer"
)

// errNoParseResult signals an internal inconsistency: the control stack
// drained without leaving the finished tree on the value stack. Unreachable
// with a correct table and correct actions.
var errNoParseResult = errors.New("parse completed but no result was produced")

// SyntaxError is a parse error. It always points at the token that could
// not be accepted; Expected is TokenInvalid when no single terminal was
// expected at that point.
type SyntaxError struct {
	Expected lexer.TokenType
	Found    lexer.TokenType
	Line     int
	Column   int

	message string
}

func (e *SyntaxError) Error() string {
	return e.message
}

func errExpected(expected lexer.TokenType, found lexer.Token) *SyntaxError {
	line, col := found.Pos()
	return &SyntaxError{
		Expected: expected,
		Found:    found.Type(),
		Line:     line,
		Column:   col,
		message: fmt.Sprintf("expected %v but found %v at line %d, column %d",
			expected, found.Type(), line, col),
	}
}

func errUnexpected(found lexer.Token, context string) *SyntaxError {
	line, col := found.Pos()
	return &SyntaxError{
		Found:  found.Type(),
		Line:   line,
		Column: col,
		message: fmt.Sprintf("unexpected %v at line %d, column %d in %s",
			found.Type(), line, col, context),
	}
}

func errBadNumber(found lexer.Token) *SyntaxError {
	line, col := found.Pos()
	return &SyntaxError{
		Expected: lexer.TokenNumber,
		Found:    found.Type(),
		Line:     line,
		Column:   col,
		message: fmt.Sprintf("invalid number literal %q at line %d, column %d",
			found.Text(), line, col),
	}
}
