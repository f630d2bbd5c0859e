// Package parser implements the recursive-descent parser that turns SPDX
// expression text into an expr.Expr tree.
package parser

import (
	"github.com/gospdx/spdxexpr/expr"
	"github.com/gospdx/spdxexpr/internal/lexer"
	"github.com/gospdx/spdxexpr/internal/types"
)

// Parser holds the full token stream for one expression and a cursor into
// it. The grammar never needs more than one token of lookahead, but
// tokenizing up front lets parsePrimary() cheaply check whether a trailing "+"
// is adjacent to the identifier it modifies.
type Parser struct {
	tokens []lexer.Token
	pos    int
	types.Logger
}

// New creates a parser over an already-tokenized source.
func New(tokens []lexer.Token, logger types.Logger) *Parser {
	return &Parser{tokens: tokens, Logger: logger}
}

// Parse tokenizes and parses source, then validates the resulting tree
// under strictness against catalog. It returns an *expr.SyntaxError for
// malformed text or an *expr.ValidationError for an identifier the active
// strictness rejects.
func Parse(source string, strictness expr.Strictness, catalog expr.Catalog, logger types.Logger) (expr.Expr, error) {
	tokens, err := lexer.Tokenize([]byte(source), logger)
	if err != nil {
		lexErr := err.(*lexer.Error)
		return nil, &expr.SyntaxError{Position: lexErr.Pos, Lexeme: source[lexErr.Pos : lexErr.Pos+1], Message: lexErr.Message}
	}

	p := New(tokens, logger)
	tree, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.TokEOF) {
		tok := p.peek()
		return nil, &expr.SyntaxError{Position: int(tok.Span.Start), Lexeme: tok.Text, Message: "unexpected trailing input"}
	}

	if err := expr.Validate(tree, strictness, catalog); err != nil {
		return nil, err
	}
	return tree, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

// parseOr := andExpr ( "OR" andExpr )*
func (p *Parser) parseOr() (expr.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokOr) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expr.Compound{Left: left, Op: expr.OpOr, Right: right}
	}
	return left, nil
}

// parseAnd := withExpr ( "AND" withExpr )*
func (p *Parser) parseAnd() (expr.Expr, error) {
	left, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokAnd) {
		p.advance()
		right, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		left = expr.Compound{Left: left, Op: expr.OpAnd, Right: right}
	}
	return left, nil
}

// parseWith := primary ( "WITH" IDENT )?
func (p *Parser) parseWith() (expr.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.TokWith) {
		return left, nil
	}
	withTok := p.advance()

	lic, ok := left.(expr.LicenseId)
	if !ok {
		return nil, &expr.SyntaxError{
			Position: int(withTok.Span.Start),
			Lexeme:   withTok.Text,
			Message:  "WITH requires a single license identifier operand, not a compound expression or license reference",
		}
	}
	if !p.check(lexer.TokIdent) {
		tok := p.peek()
		return nil, &expr.SyntaxError{Position: int(tok.Span.Start), Lexeme: tok.Text, Message: "expected exception identifier after WITH"}
	}
	idTok := p.advance()
	return expr.WithException{License: lic, ExceptionID: idTok.Text}, nil
}

// primary := "(" expr ")" | IDENT [ "+" ]
func (p *Parser) parsePrimary() (expr.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.check(lexer.TokRParen) {
			closeTok := p.peek()
			return nil, &expr.SyntaxError{Position: int(closeTok.Span.Start), Lexeme: closeTok.Text, Message: "expected closing parenthesis"}
		}
		p.advance()
		return inner, nil

	case lexer.TokIdent:
		idTok := p.advance()
		if expr.IsLicenseRef(idTok.Text) {
			return expr.LicenseRef{ID: idTok.Text}, nil
		}
		lic := expr.LicenseId{ID: idTok.Text}
		// "+" only attaches to a LicenseId, and only with no intervening
		// whitespace; otherwise it is left for the caller to report as a
		// stray, unconsumed token.
		if p.check(lexer.TokPlus) && p.peek().Span.Start == idTok.Span.End {
			p.advance()
			lic.OrLater = true
		}
		return lic, nil

	default:
		return nil, &expr.SyntaxError{Position: int(tok.Span.Start), Lexeme: tok.Text, Message: "expected a license identifier or '('"}
	}
}
