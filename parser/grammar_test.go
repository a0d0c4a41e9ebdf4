package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/minilisp/lexer"
)

var allTerminals = []lexer.TokenType{
	lexer.TokenNumber,
	lexer.TokenIdentifier,
	lexer.TokenPlus,
	lexer.TokenMinus,
	lexer.TokenMult,
	lexer.TokenEquals,
	lexer.TokenConditional,
	lexer.TokenLambda,
	lexer.TokenLet,
	lexer.TokenLeftParen,
	lexer.TokenRightParen,
	lexer.TokenEOF,
}

func TestLookaheadSets(t *testing.T) {
	table := newParseTable()

	testCases := []struct {
		nt  nonTerminal
		Out map[lexer.TokenType]int
	}{
		{
			ntProgram,
			map[lexer.TokenType]int{
				lexer.TokenNumber:     1,
				lexer.TokenIdentifier: 1,
				lexer.TokenLeftParen:  1,
			},
		},
		{
			ntExpr,
			map[lexer.TokenType]int{
				lexer.TokenNumber:     2,
				lexer.TokenIdentifier: 3,
				lexer.TokenLeftParen:  4,
			},
		},
		{
			ntParenBody,
			map[lexer.TokenType]int{
				lexer.TokenPlus:        5,
				lexer.TokenMult:        6,
				lexer.TokenEquals:      7,
				lexer.TokenMinus:       8,
				lexer.TokenConditional: 9,
				lexer.TokenLambda:      10,
				lexer.TokenLet:         11,
				lexer.TokenNumber:      12,
				lexer.TokenIdentifier:  12,
				lexer.TokenLeftParen:   12,
			},
		},
	}

	for _, tc := range testCases {
		for _, tt := range allTerminals {
			prod := table.lookup(tc.nt, tt)
			id, ok := tc.Out[tt]

			if !ok {
				assert.Nil(t, prod, "%v on %v should have no entry", tc.nt, tt)
				continue
			}

			require.NotNil(t, prod, "%v on %v", tc.nt, tt)
			assert.Equal(t, id, prod.id, "%v on %v", tc.nt, tt)
		}
	}
}

func TestFixedArityProductionsEndInAction(t *testing.T) {
	table := newParseTable()

	for _, tt := range []lexer.TokenType{
		lexer.TokenPlus,
		lexer.TokenMult,
		lexer.TokenEquals,
		lexer.TokenMinus,
		lexer.TokenConditional,
		lexer.TokenLambda,
		lexer.TokenLet,
	} {
		prod := table.lookup(ntParenBody, tt)
		require.NotNil(t, prod)

		last := prod.rhs[len(prod.rhs)-1]
		assert.Equal(t, symAction, last.kind, "production %d", prod.id)
	}
}

func TestApplicationProductionHasNoStoredRHS(t *testing.T) {
	table := newParseTable()

	prod := table.lookup(ntParenBody, lexer.TokenIdentifier)
	require.NotNil(t, prod)

	assert.Equal(t, applicationProduction, prod.id)
	assert.Empty(t, prod.rhs)
}
