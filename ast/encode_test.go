package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plusTree() *Node {
	return NewSequence(nil).
		Push(NewSymbol(nil, "PLUS")).
		Push(NewNumber(nil, 2)).
		Push(NewNumber(nil, 3))
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{
			NewNumber(nil, 42),
			`42`,
		},
		{
			NewNumber(nil, -7),
			`-7`,
		},
		{
			NewSymbol(nil, "x"),
			`"x"`,
		},
		{
			NewSequence(nil),
			`[]`,
		},
		{
			plusTree(),
			`["PLUS",2,3]`,
		},
		{
			NewSequence(nil).
				Push(NewSymbol(nil, "CONDITIONAL")).
				Push(NewSequence(nil).
					Push(NewSymbol(nil, "EQUALS")).
					Push(NewSymbol(nil, "x")).
					Push(NewNumber(nil, 0))).
				Push(NewNumber(nil, 1)).
				Push(NewNumber(nil, 0)),
			`["CONDITIONAL",["EQUALS","x",0],1,0]`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestEncodeIndent(t *testing.T) {
	out := "[\n" +
		"  \"PLUS\",\n" +
		"  2,\n" +
		"  [\n" +
		"    \"MULT\",\n" +
		"    3,\n" +
		"    4\n" +
		"  ]\n" +
		"]"

	tree := NewSequence(nil).
		Push(NewSymbol(nil, "PLUS")).
		Push(NewNumber(nil, 2)).
		Push(NewSequence(nil).
			Push(NewSymbol(nil, "MULT")).
			Push(NewNumber(nil, 3)).
			Push(NewNumber(nil, 4)))

	assert.Equal(t, out, string(EncodeIndent(tree)))
}

func TestEncodeDeterminism(t *testing.T) {
	tree := plusTree()

	assert.Equal(t, Encode(tree), Encode(tree))
	assert.Equal(t, EncodeIndent(tree), EncodeIndent(tree))
}

func TestEscapeString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`abc`, `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{`a/b`, `"a\/b"`},
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\tb"`},
		{"λ", "\"\\u03bb\""},
		{"\x01", "\"\\u0001\""},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, escapeString(testCases[i].In))
	}
}
