package lexer

// Lexer is a single-pass scanner over a MiniLisp source text. It keeps an
// explicit rune cursor with 1-based line and column tracking.
type Lexer struct {
	in  []rune
	pos int

	line int
	col  int
}

// New initializes a Lexer for the given source text
func New(in []byte) *Lexer {
	return &Lexer{
		in:   []rune(string(in)),
		line: 1,
		col:  1,
	}
}

// Tokenize scans the whole input and returns its tokens in source order,
// always terminated by exactly one EOF token. It stops at the first
// unrecognized or malformed character and returns a *Error for it.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)

	tokens := []Token{}
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}

// Next scans and returns the next token. After the input is exhausted it
// keeps returning EOF tokens.
func (lx *Lexer) Next() (Token, error) {
	lx.skipWhitespace()

	line, col := lx.line, lx.col

	if lx.atEnd() {
		return NewToken(TokenEOF, "", line, col), nil
	}

	r := lx.peek()

	if tt, ok := glyphTokens[r]; ok {
		lx.advance()
		return NewToken(tt, "", line, col), nil
	}

	if isDigit(r) {
		return lx.scanNumber(line, col)
	}

	if isAlpha(r) {
		return lx.scanIdentifier(line, col), nil
	}

	if r == '-' {
		return Token{}, errASCIIHyphen(line, col)
	}

	return Token{}, errUnexpectedChar(r, line, col)
}

// scanNumber consumes a maximal run of digits. The lexeme keeps leading
// zeros; numeric interpretation belongs to the parser. A letter directly
// after the run makes the token malformed.
func (lx *Lexer) scanNumber(line, col int) (Token, error) {
	start := lx.pos
	for !lx.atEnd() && isDigit(lx.peek()) {
		lx.advance()
	}

	if !lx.atEnd() && isAlpha(lx.peek()) {
		return Token{}, errLetterInNumber(lx.peek(), lx.line, lx.col)
	}

	return NewToken(TokenNumber, string(lx.in[start:lx.pos]), line, col), nil
}

// scanIdentifier consumes a letter followed by a maximal run of letters
// and digits.
func (lx *Lexer) scanIdentifier(line, col int) Token {
	start := lx.pos
	lx.advance()
	for !lx.atEnd() && isAlphanumeric(lx.peek()) {
		lx.advance()
	}
	return NewToken(TokenIdentifier, string(lx.in[start:lx.pos]), line, col)
}

func (lx *Lexer) skipWhitespace() {
	for !lx.atEnd() {
		switch lx.peek() {
		case ' ', '\t', '\r':
			lx.advance()
		case '\n':
			lx.pos++
			lx.line++
			lx.col = 1
		default:
			return
		}
	}
}

func (lx *Lexer) peek() rune {
	return lx.in[lx.pos]
}

func (lx *Lexer) advance() rune {
	r := lx.in[lx.pos]
	lx.pos++
	lx.col++
	return r
}

func (lx *Lexer) atEnd() bool {
	return lx.pos >= len(lx.in)
}
