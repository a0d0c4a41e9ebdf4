package parser

import (
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
)

// nonTerminal represents a grammar symbol that expands into other symbols
type nonTerminal uint8

const (
	ntProgram nonTerminal = iota
	ntExpr
	ntParenBody
)

var nonTerminalNames = map[nonTerminal]string{
	ntProgram:   "<program>",
	ntExpr:      "<expr>",
	ntParenBody: "<paren-body>",
}

func (nt nonTerminal) String() string {
	return nonTerminalNames[nt]
}

// semanticAction combines finished operand nodes from the value stack into
// one sequence node. Each action pops a fixed, production-determined number
// of values, rightmost operand first.
type semanticAction func(vs *nodeStack)

type symbolKind uint8

const (
	symTerminal symbolKind = iota
	symNonTerminal
	symAction
)

// symbol is one entry of a production's right-hand side: a terminal to
// match, a non-terminal to expand, or a semantic action to run.
type symbol struct {
	kind symbolKind
	tt   lexer.TokenType
	nt   nonTerminal
	act  semanticAction
}

func term(tt lexer.TokenType) symbol {
	return symbol{kind: symTerminal, tt: tt}
}

func nonterm(nt nonTerminal) symbol {
	return symbol{kind: symNonTerminal, nt: nt}
}

func act(fn semanticAction) symbol {
	return symbol{kind: symAction, act: fn}
}

// production is one rewrite rule. The function-application rule has no
// stored right-hand side; the engine hands it to the variable-arity
// sub-parser instead.
type production struct {
	id  int
	rhs []symbol
}

// applicationProduction is the one rule with an unbounded right-hand side:
// <paren-body> → <expr> <expr>*
const applicationProduction = 12

type tableKey struct {
	nt nonTerminal
	tt lexer.TokenType
}

// parseTable maps (non-terminal, lookahead terminal) pairs to productions.
// It is built once and read-only afterwards; at most one production per
// pair (the grammar is LL(1)).
type parseTable map[tableKey]*production

func (t parseTable) lookup(nt nonTerminal, tt lexer.TokenType) *production {
	return t[tableKey{nt, tt}]
}

func (t parseTable) add(nt nonTerminal, tt lexer.TokenType, p *production) {
	t[tableKey{nt, tt}] = p
}

func newParseTable() parseTable {
	table := parseTable{}

	// 1: <program> → <expr>
	prog := &production{id: 1, rhs: []symbol{nonterm(ntExpr)}}
	table.add(ntProgram, lexer.TokenNumber, prog)
	table.add(ntProgram, lexer.TokenIdentifier, prog)
	table.add(ntProgram, lexer.TokenLeftParen, prog)

	// 2: <expr> → NUMBER
	table.add(ntExpr, lexer.TokenNumber,
		&production{id: 2, rhs: []symbol{term(lexer.TokenNumber)}})

	// 3: <expr> → IDENTIFIER
	table.add(ntExpr, lexer.TokenIdentifier,
		&production{id: 3, rhs: []symbol{term(lexer.TokenIdentifier)}})

	// 4: <expr> → '(' <paren-body> ')'
	table.add(ntExpr, lexer.TokenLeftParen,
		&production{id: 4, rhs: []symbol{
			term(lexer.TokenLeftParen),
			nonterm(ntParenBody),
			term(lexer.TokenRightParen),
		}})

	// 5-8: <paren-body> → OP <expr> <expr>
	binary := func(id int, tt lexer.TokenType, op string) {
		table.add(ntParenBody, tt, &production{id: id, rhs: []symbol{
			term(tt),
			nonterm(ntExpr),
			nonterm(ntExpr),
			act(buildBinary(op)),
		}})
	}
	binary(5, lexer.TokenPlus, "PLUS")
	binary(6, lexer.TokenMult, "MULT")
	binary(7, lexer.TokenEquals, "EQUALS")
	binary(8, lexer.TokenMinus, "MINUS")

	// 9: <paren-body> → '?' <expr> <expr> <expr>
	table.add(ntParenBody, lexer.TokenConditional,
		&production{id: 9, rhs: []symbol{
			term(lexer.TokenConditional),
			nonterm(ntExpr),
			nonterm(ntExpr),
			nonterm(ntExpr),
			act(buildConditional),
		}})

	// 10: <paren-body> → 'λ' IDENTIFIER <expr>
	table.add(ntParenBody, lexer.TokenLambda,
		&production{id: 10, rhs: []symbol{
			term(lexer.TokenLambda),
			term(lexer.TokenIdentifier),
			nonterm(ntExpr),
			act(buildLambda),
		}})

	// 11: <paren-body> → '≜' IDENTIFIER <expr> <expr>
	table.add(ntParenBody, lexer.TokenLet,
		&production{id: 11, rhs: []symbol{
			term(lexer.TokenLet),
			term(lexer.TokenIdentifier),
			nonterm(ntExpr),
			nonterm(ntExpr),
			act(buildLet),
		}})

	// 12: <paren-body> → <expr> <expr>*
	app := &production{id: applicationProduction}
	table.add(ntParenBody, lexer.TokenNumber, app)
	table.add(ntParenBody, lexer.TokenIdentifier, app)
	table.add(ntParenBody, lexer.TokenLeftParen, app)

	return table
}

// Node builders. Both the table actions and the variable-arity sub-parser
// go through these, so tree shapes are identical regardless of which path
// produced them.

func binaryNode(op string, left, right *ast.Node) *ast.Node {
	return ast.NewSequence(nil).
		Push(ast.NewSymbol(nil, op)).
		Push(left).
		Push(right)
}

func conditionalNode(cond, then, els *ast.Node) *ast.Node {
	return ast.NewSequence(nil).
		Push(ast.NewSymbol(nil, "CONDITIONAL")).
		Push(cond).
		Push(then).
		Push(els)
}

func lambdaNode(param, body *ast.Node) *ast.Node {
	return ast.NewSequence(nil).
		Push(ast.NewSymbol(nil, "LAMBDA")).
		Push(param).
		Push(body)
}

func letNode(name, value, body *ast.Node) *ast.Node {
	return ast.NewSequence(nil).
		Push(ast.NewSymbol(nil, "LET")).
		Push(name).
		Push(value).
		Push(body)
}

func buildBinary(op string) semanticAction {
	return func(vs *nodeStack) {
		right := vs.pop()
		left := vs.pop()
		vs.push(binaryNode(op, left, right))
	}
}

func buildConditional(vs *nodeStack) {
	els := vs.pop()
	then := vs.pop()
	cond := vs.pop()
	vs.push(conditionalNode(cond, then, els))
}

func buildLambda(vs *nodeStack) {
	body := vs.pop()
	param := vs.pop()
	vs.push(lambdaNode(param, body))
}

func buildLet(vs *nodeStack) {
	body := vs.pop()
	value := vs.pop()
	name := vs.pop()
	vs.push(letNode(name, value, body))
}
