// Package minilisp parses MiniLisp expressions into parse trees. The work
// happens in the lexer and parser packages; this package just wires them
// together.
package minilisp

import (
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

// Parse scans and parses a MiniLisp source text and returns its parse tree
func Parse(in []byte) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.New(tokens).Parse()
}

// ParseString is like Parse but takes a string
func ParseString(in string) (*ast.Node, error) {
	return Parse([]byte(in))
}
