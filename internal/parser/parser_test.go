package parser_test

import (
	"testing"

	"github.com/gospdx/spdxexpr/expr"
	"github.com/gospdx/spdxexpr/internal/parser"
	"github.com/gospdx/spdxexpr/internal/testutil"
	"github.com/gospdx/spdxexpr/internal/types"
)

func mustParse(t *testing.T, source string) expr.Expr {
	t.Helper()
	tree, err := parser.Parse(source, expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NilErr(t, err, "parsing %q", source)
	return tree
}

func TestParsePrecedenceWithBindsTighterThanAnd(t *testing.T) {
	tree := mustParse(t, "GPL-2.0-only WITH Classpath-exception-2.0 AND MIT")
	c, ok := tree.(expr.Compound)
	testutil.True(t, ok, "expected top-level Compound")
	testutil.Equal(t, expr.OpAnd, c.Op)
	_, ok = c.Left.(expr.WithException)
	testutil.True(t, ok, "left operand of AND should be the WITH expression")
}

func TestParsePrecedenceAndBindsTighterThanOr(t *testing.T) {
	tree := mustParse(t, "MIT OR Apache-2.0 AND BSD-3-Clause")
	c, ok := tree.(expr.Compound)
	testutil.True(t, ok, "expected top-level Compound")
	testutil.Equal(t, expr.OpOr, c.Op)
	right, ok := c.Right.(expr.Compound)
	testutil.True(t, ok, "right operand of OR should be the AND subtree")
	testutil.Equal(t, expr.OpAnd, right.Op)
}

func TestParseExplicitParenthesesOverridePrecedence(t *testing.T) {
	tree := mustParse(t, "(MIT OR Apache-2.0) AND BSD-3-Clause")
	c, ok := tree.(expr.Compound)
	testutil.True(t, ok, "expected top-level Compound")
	testutil.Equal(t, expr.OpAnd, c.Op)
	left, ok := c.Left.(expr.Compound)
	testutil.True(t, ok, "left operand of AND should be the parenthesized OR subtree")
	testutil.Equal(t, expr.OpOr, left.Op)
}

func TestParseLeftAssociativityOfAnd(t *testing.T) {
	tree := mustParse(t, "MIT AND Apache-2.0 AND BSD-3-Clause")
	top, ok := tree.(expr.Compound)
	testutil.True(t, ok, "expected top-level Compound")
	_, leftIsCompound := top.Left.(expr.Compound)
	testutil.True(t, leftIsCompound, "left-associative parse should nest on the left")
}

func TestParseLicenseRefBypassesCatalog(t *testing.T) {
	tree := mustParse(t, "LicenseRef-my-custom-license")
	_, ok := tree.(expr.LicenseRef)
	testutil.True(t, ok, "expected a LicenseRef node")
}

func TestParseDocumentRefLicenseRef(t *testing.T) {
	tree := mustParse(t, "DocumentRef-spdx-tool-1.2:LicenseRef-MIT-Style-2")
	ref, ok := tree.(expr.LicenseRef)
	testutil.True(t, ok, "expected a LicenseRef node")
	testutil.Equal(t, "DocumentRef-spdx-tool-1.2:LicenseRef-MIT-Style-2", ref.ID)
}

func TestParseOrLaterOperator(t *testing.T) {
	tree := mustParse(t, "GPL-2.0+")
	id, ok := tree.(expr.LicenseId)
	testutil.True(t, ok, "expected a LicenseId node")
	testutil.True(t, id.OrLater, "expected OrLater to be true")
}

func TestParseRejectsWithOnCompoundOperand(t *testing.T) {
	_, err := parser.Parse("(MIT AND Apache-2.0) WITH Classpath-exception-2.0", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a syntax error for WITH on a compound operand")
	_, ok := err.(*expr.SyntaxError)
	testutil.True(t, ok, "expected *expr.SyntaxError")
}

func TestParseRejectsWithOnLicenseRefOperand(t *testing.T) {
	_, err := parser.Parse("LicenseRef-foo WITH Classpath-exception-2.0", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a syntax error for WITH on a LicenseRef operand")
}

func TestParseRejectsMismatchedParens(t *testing.T) {
	_, err := parser.Parse("(MIT AND Apache-2.0", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a syntax error for an unclosed paren")
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := parser.Parse("", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a syntax error for empty input")
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := parser.Parse("MIT MIT", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a syntax error for trailing input")
}

func TestParseRejectsNonAdjacentPlus(t *testing.T) {
	_, err := parser.Parse("GPL-2.0 +", expr.AllowAny, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "a '+' separated from its identifier by whitespace should not attach, and should surface as trailing input")
}

func TestParseAppliesStrictness(t *testing.T) {
	_, err := parser.Parse("Not-A-Real-License", expr.AllowCurrent, expr.DefaultCatalog(), types.Logger{})
	testutil.NotNilErr(t, err, "expected a validation error under AllowCurrent")
	_, ok := err.(*expr.ValidationError)
	testutil.True(t, ok, "expected *expr.ValidationError")
}

func TestParseRoundTripsThroughRender(t *testing.T) {
	sources := []string{
		"MIT",
		"GPL-2.0-or-later WITH Classpath-exception-2.0 AND MIT",
		"(MIT OR Apache-2.0) AND BSD-3-Clause",
	}
	for _, src := range sources {
		tree := mustParse(t, src)
		rendered := expr.Render(tree)
		reparsed := mustParse(t, rendered)
		testutil.True(t, tree == reparsed, "parse(render(parse(%q))) == parse(%q)", src, src)
	}
}
