package lexer_test

import (
	"testing"

	"github.com/gospdx/spdxexpr/internal/lexer"
	"github.com/gospdx/spdxexpr/internal/testutil"
	"github.com/gospdx/spdxexpr/internal/types"
)

func tokenize(t *testing.T, source string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(source), types.Logger{})
	testutil.NilErr(t, err, "tokenizing %q", source)
	return toks
}

func kinds(toks []lexer.Token) []lexer.TokenKind {
	out := make([]lexer.TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeBasicExpression(t *testing.T) {
	toks := tokenize(t, "MIT AND (Apache-2.0 OR BSD-3-Clause)")
	got := kinds(toks)
	want := []lexer.TokenKind{
		lexer.TokIdent, lexer.TokAnd, lexer.TokLParen, lexer.TokIdent,
		lexer.TokOr, lexer.TokIdent, lexer.TokRParen, lexer.TokEOF,
	}
	testutil.Len(t, got, len(want), "token count")
	for i := range want {
		testutil.Equal(t, want[i], got[i], "token %d", i)
	}
}

func TestTokenizeLowercaseKeywordsAreIdentifiers(t *testing.T) {
	toks := tokenize(t, "and or with")
	for i, want := range []lexer.TokenKind{lexer.TokIdent, lexer.TokIdent, lexer.TokIdent, lexer.TokEOF} {
		testutil.Equal(t, want, toks[i].Kind, "token %d", i)
	}
}

func TestTokenizePlusAdjacency(t *testing.T) {
	toks := tokenize(t, "GPL-1.0+")
	testutil.Len(t, toks, 3, "GPL-1.0+ token count") // IDENT, PLUS, EOF
	testutil.Equal(t, lexer.TokIdent, toks[0].Kind)
	testutil.Equal(t, lexer.TokPlus, toks[1].Kind)
	testutil.Equal(t, toks[0].Span.End, toks[1].Span.Start, "plus should be adjacent to identifier")
}

func TestTokenizeDocumentRefIdentifier(t *testing.T) {
	toks := tokenize(t, "DocumentRef-spdx-tool-1.2:LicenseRef-MIT-Style-2")
	testutil.Equal(t, lexer.TokIdent, toks[0].Kind)
	testutil.Equal(t, "DocumentRef-spdx-tool-1.2:LicenseRef-MIT-Style-2", toks[0].Text)
}

func TestTokenizeRejectsInvalidCharacter(t *testing.T) {
	_, err := lexer.Tokenize([]byte("MIT & Apache-2.0"), types.Logger{})
	testutil.NotNilErr(t, err, "expected lexical error on '&'")
}

func TestTokenizeWithWhitespaceBeforePlus(t *testing.T) {
	toks := tokenize(t, "GPL-1.0 +")
	testutil.Equal(t, lexer.TokIdent, toks[0].Kind)
	testutil.Equal(t, lexer.TokPlus, toks[1].Kind)
	if toks[0].Span.End == toks[1].Span.Start {
		t.Fatalf("expected a gap between identifier and '+' when separated by whitespace")
	}
}
