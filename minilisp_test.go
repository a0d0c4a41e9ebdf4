package minilisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

func TestParseString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`42`, `42`},
		{`x`, `"x"`},
		{`(+ 2 3)`, `["PLUS",2,3]`},
		{`(? (= x 0) 1 0)`, `["CONDITIONAL",["EQUALS","x",0],1,0]`},
		{`((λ x (+ x 1)) 5)`, `[["LAMBDA","x",["PLUS","x",1]],5]`},
		{`(≜ y 10 y)`, `["LET","y",10,"y"]`},
	}

	for i := range testCases {
		root, err := ParseString(testCases[i].In)

		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)))
	}
}

func TestParseLexError(t *testing.T) {
	root, err := ParseString(`(- 2 3)`)
	assert.Nil(t, root)

	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "U+2212")
}

func TestParseSyntaxError(t *testing.T) {
	root, err := ParseString(`(+ 2`)
	assert.Nil(t, root)

	var synErr *parser.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, lexer.TokenEOF, synErr.Found)
}
