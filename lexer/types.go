package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid     TokenType = iota
	TokenNumber                // Decimal digit run: [0-9]+
	TokenIdentifier            // Letter followed by letters or digits
	TokenPlus                  // Plus sign: "+"
	TokenMinus                 // Minus sign: "−" (U+2212, not the ASCII hyphen)
	TokenMult                  // Multiplication sign: "×" (U+00D7)
	TokenEquals                // Equals sign: "="
	TokenConditional           // Question mark: "?"
	TokenLambda                // Lambda: "λ" (U+03BB)
	TokenLet                   // Let binder: "≜" (U+225C)
	TokenLeftParen             // Open parenthesis: "("
	TokenRightParen            // Close parenthesis: ")"
	TokenEOF                   // End of input
)

// Reserved non-ASCII glyphs. These exact code points are part of the
// language definition; ASCII look-alikes are not accepted.
const (
	GlyphMinus  = '−' // U+2212
	GlyphMult   = '×' // U+00D7
	GlyphLambda = 'λ' // U+03BB
	GlyphLet    = '≜' // U+225C
)

var tokenNames = map[TokenType]string{
	TokenInvalid:     "INVALID",
	TokenNumber:      "NUMBER",
	TokenIdentifier:  "IDENTIFIER",
	TokenPlus:        "PLUS",
	TokenMinus:       "MINUS",
	TokenMult:        "MULT",
	TokenEquals:      "EQUALS",
	TokenConditional: "CONDITIONAL",
	TokenLambda:      "LAMBDA",
	TokenLet:         "LET",
	TokenLeftParen:   "LPAREN",
	TokenRightParen:  "RPAREN",
	TokenEOF:         "EOF",
}

// Single-glyph tokens, keyed by the rune that forms them.
var glyphTokens = map[rune]TokenType{
	'+':         TokenPlus,
	GlyphMinus:  TokenMinus,
	GlyphMult:   TokenMult,
	'=':         TokenEquals,
	'?':         TokenConditional,
	GlyphLambda: TokenLambda,
	GlyphLet:    TokenLet,
	'(':         TokenLeftParen,
	')':         TokenRightParen,
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphanumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
