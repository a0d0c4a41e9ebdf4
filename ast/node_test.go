package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/minilisp/lexer"
)

func TestValueNodes(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenNumber, "42", 1, 1)

	num := NewNumber(&tok, 42)
	assert.Equal(t, NodeTypeNumber, num.Type())
	assert.Equal(t, int64(42), num.Int())
	assert.True(t, num.IsValue())
	assert.False(t, num.IsVector())
	assert.NotNil(t, num.Token())

	sym := NewSymbol(nil, "x")
	assert.Equal(t, NodeTypeSymbol, sym.Type())
	assert.Equal(t, "x", sym.Text())
	assert.True(t, sym.IsValue())
	assert.Nil(t, sym.Token())
}

func TestSequenceNodes(t *testing.T) {
	seq := NewSequence(nil)
	assert.Equal(t, NodeTypeSequence, seq.Type())
	assert.True(t, seq.IsVector())
	assert.False(t, seq.IsValue())
	assert.Equal(t, 0, seq.Len())

	seq.Push(NewSymbol(nil, "PLUS")).
		Push(NewNumber(nil, 2)).
		Push(NewNumber(nil, 3))

	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, "PLUS", seq.List()[0].Text())
	assert.Equal(t, int64(3), seq.List()[2].Int())
}
