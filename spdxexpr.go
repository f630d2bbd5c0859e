// Package spdxexpr parses, validates, and algebraically rewrites SPDX
// license expressions such as "GPL-2.0-or-later WITH Classpath-exception-2.0
// AND MIT". The grammar, the AST, and every transform over it (render,
// validate, normalize, decompose, dnf) live in the expr subpackage and are
// re-exported here by alias; this file owns the one operation that needs
// the lexer and parser wired together: Parse.
package spdxexpr

import (
	"log/slog"

	"github.com/gospdx/spdxexpr/expr"
	"github.com/gospdx/spdxexpr/internal/parser"
	"github.com/gospdx/spdxexpr/internal/types"
)

// ParseOption configures a Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	catalog expr.Catalog
	logger  types.Logger
}

// WithCatalog substitutes a non-default catalog, e.g. a synthetic one built
// with NewCatalog for tests.
func WithCatalog(catalog expr.Catalog) ParseOption {
	return func(c *parseConfig) { c.catalog = catalog }
}

// WithLogger attaches a logger for trace-level lexer/parser diagnostics.
// Parse never logs anything above trace level: it is value-returning by
// contract (see expr.SyntaxError / expr.ValidationError) and never prints.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = types.Logger{L: logger} }
}

// Parse converts text into an Expr under the given strictness, or returns
// an *expr.SyntaxError (malformed grammar) or *expr.ValidationError
// (well-formed but rejected by strictness). It is the only operation that
// can fail; Render, Normalize, Decompose, and DNF are total over any Expr
// Parse can produce.
func Parse(text string, strictness expr.Strictness, opts ...ParseOption) (expr.Expr, error) {
	cfg := parseConfig{catalog: expr.DefaultCatalog()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return parser.Parse(text, strictness, cfg.catalog, cfg.logger)
}
