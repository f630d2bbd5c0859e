package lexer

import (
	"log/slog"

	"github.com/gospdx/spdxexpr/internal/types"
)

// Lexer tokenizes SPDX expression source text.
type Lexer struct {
	source []byte
	pos    int
	types.Logger
}

// New creates a lexer over source, using logger for trace output (may be zero-value).
func New(source []byte, logger types.Logger) *Lexer {
	return &Lexer{source: source, Logger: logger}
}

// Error reports a lexical failure at a byte offset.
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Tokenize scans the entire source and returns its token stream, or the
// first lexical error encountered.
func Tokenize(source []byte, logger types.Logger) ([]Token, error) {
	lx := New(source, logger)
	tokens := make([]Token, 0, len(source)/4+1)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) isEOF() bool { return l.pos >= len(l.source) }

func (l *Lexer) peek() byte {
	if l.isEOF() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.source[l.pos]
	l.pos++
	return c
}

func (l *Lexer) skipWhitespace() {
	for !l.isEOF() && isSpace(l.peek()) {
		l.pos++
	}
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos))
}

func (l *Lexer) error(pos int, message string) error {
	return &Error{Pos: pos, Message: message}
}

// NextToken scans and returns the next token, or a lexical error.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if l.isEOF() {
		return NewToken(TokEOF, "", l.spanFrom(start)), nil
	}

	c := l.peek()
	switch {
	case c == '(':
		l.advance()
		return NewToken(TokLParen, "(", l.spanFrom(start)), nil
	case c == ')':
		l.advance()
		return NewToken(TokRParen, ")", l.spanFrom(start)), nil
	case c == '+':
		l.advance()
		return NewToken(TokPlus, "+", l.spanFrom(start)), nil
	case isIdentStart(c):
		return l.scanIdentifier(start)
	default:
		l.advance()
		return Token{}, l.error(start, "unexpected character "+quoteByte(c))
	}
}

// scanIdentifier consumes a maximal run of identifier characters and
// classifies it as a reserved word (AND/OR/WITH, exact uppercase spelling)
// or a plain identifier.
func (l *Lexer) scanIdentifier(start int) (Token, error) {
	for !l.isEOF() && isIdentChar(l.peek()) {
		l.advance()
	}
	text := string(l.source[start:l.pos])
	span := l.spanFrom(start)
	var kind TokenKind
	switch text {
	case "AND":
		kind = TokAnd
	case "OR":
		kind = TokOr
	case "WITH":
		kind = TokWith
	default:
		kind = TokIdent
	}
	l.Trace("scanned identifier", slog.String("text", text), slog.String("kind", kind.String()))
	return NewToken(kind, text, span), nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentStart(c byte) bool { return isAlpha(c) || isDigit(c) }

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '.' || c == '-' || c == ':'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func quoteByte(c byte) string {
	return "'" + string(rune(c)) + "'"
}
