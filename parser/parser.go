package parser

import (
	"strconv"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
)

// Parser is a table-driven LL(1) predictive parser over a token slice. It
// drives a control stack of grammar symbols and a value stack of tree
// fragments; the one unbounded-arity rule (function application) is handed
// to a recursive sub-parser instead of the table.
//
// Each Parser owns its own cursor and stacks, and the parse table is
// read-only, so independent inputs may be parsed concurrently.
type Parser struct {
	tokens []lexer.Token
	pos    int

	table parseTable
}

// New creates a Parser for a token slice produced by lexer.Tokenize
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		table:  newParseTable(),
	}
}

// Parse consumes the whole token stream and returns the parse tree, or a
// *SyntaxError for the first token that could not be accepted.
func (p *Parser) Parse() (*ast.Node, error) {
	control := &symbolStack{}
	values := &nodeStack{}

	// EOF sits at the stack base so it is matched last.
	control.push(term(lexer.TokenEOF))
	control.push(nonterm(ntProgram))

	for control.len() > 0 {
		sym := control.pop()

		switch sym.kind {
		case symAction:
			sym.act(values)

		case symTerminal:
			tok := p.curr()
			if !tok.Is(sym.tt) {
				return nil, errExpected(sym.tt, tok)
			}

			switch sym.tt {
			case lexer.TokenNumber:
				node, err := numberNode(tok)
				if err != nil {
					return nil, err
				}
				values.push(node)
			case lexer.TokenIdentifier:
				values.push(symbolNode(tok))
			}

			if sym.tt != lexer.TokenEOF {
				p.advance()
			}

		case symNonTerminal:
			tok := p.curr()
			prod := p.table.lookup(sym.nt, tok.Type())
			if prod == nil {
				return nil, errUnexpected(tok, "context of "+sym.nt.String())
			}

			if prod.id == applicationProduction {
				node, err := p.parseApplication()
				if err != nil {
					return nil, err
				}
				values.push(node)
				continue
			}

			// Push the RHS in reverse so the leftmost symbol is
			// processed first.
			for i := len(prod.rhs) - 1; i >= 0; i-- {
				control.push(prod.rhs[i])
			}
		}
	}

	if values.len() != 1 {
		return nil, errNoParseResult
	}
	return values.pop(), nil
}

// parseApplication parses <expr> <expr>* by direct recursion: one
// expression in function position, then arguments until the lookahead is
// ')' or EOF. Any other stopping token is left for the caller to reject.
func (p *Parser) parseApplication() (*ast.Node, error) {
	seq := ast.NewSequence(nil)

	fn, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	seq.Push(fn)

	for {
		switch p.curr().Type() {
		case lexer.TokenNumber, lexer.TokenIdentifier, lexer.TokenLeftParen:
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			seq.Push(arg)
		default:
			return seq, nil
		}
	}
}

// parseExpr parses one <expr> by dispatching on the lookahead kind.
func (p *Parser) parseExpr() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {
	case lexer.TokenNumber:
		node, err := numberNode(tok)
		if err != nil {
			return nil, err
		}
		p.advance()
		return node, nil

	case lexer.TokenIdentifier:
		p.advance()
		return symbolNode(tok), nil

	case lexer.TokenLeftParen:
		p.advance()

		node, err := p.parseParenBody()
		if err != nil {
			return nil, err
		}

		if !p.curr().Is(lexer.TokenRightParen) {
			return nil, errExpected(lexer.TokenRightParen, p.curr())
		}
		p.advance()

		return node, nil

	default:
		return nil, errUnexpected(tok, "expression")
	}
}

// parseParenBody mirrors the <paren-body> dispatch of the grammar table.
// The tree shapes come from the same node builders the table actions use.
func (p *Parser) parseParenBody() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {
	case lexer.TokenPlus:
		p.advance()
		return p.parseBinary("PLUS")

	case lexer.TokenMult:
		p.advance()
		return p.parseBinary("MULT")

	case lexer.TokenEquals:
		p.advance()
		return p.parseBinary("EQUALS")

	case lexer.TokenMinus:
		p.advance()
		return p.parseBinary("MINUS")

	case lexer.TokenConditional:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		then, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		els, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return conditionalNode(cond, then, els), nil

	case lexer.TokenLambda:
		p.advance()
		param, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return lambdaNode(param, body), nil

	case lexer.TokenLet:
		p.advance()
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return letNode(name, value, body), nil

	case lexer.TokenNumber, lexer.TokenIdentifier, lexer.TokenLeftParen:
		return p.parseApplication()

	default:
		return nil, errUnexpected(tok, "parenthesized expression")
	}
}

func (p *Parser) parseBinary(op string) (*ast.Node, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return binaryNode(op, left, right), nil
}

func (p *Parser) expectIdentifier() (*ast.Node, error) {
	tok := p.curr()
	if !tok.Is(lexer.TokenIdentifier) {
		return nil, errExpected(lexer.TokenIdentifier, tok)
	}
	p.advance()
	return symbolNode(tok), nil
}

func (p *Parser) curr() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1]
}

// advance moves the cursor forward; it never moves past the EOF token.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func numberNode(tok lexer.Token) (*ast.Node, error) {
	v, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, errBadNumber(tok)
	}
	return ast.NewNumber(&tok, v), nil
}

func symbolNode(tok lexer.Token) *ast.Node {
	return ast.NewSymbol(&tok, tok.Text())
}
