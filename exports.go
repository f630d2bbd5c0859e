package spdxexpr

import "github.com/gospdx/spdxexpr/expr"

// Type aliases for public API - all types come from the expr subpackage.

// Expr is the sealed AST for a parsed SPDX license expression.
type Expr = expr.Expr

// LicenseId is a bare SPDX license identifier, optionally "or later".
type LicenseId = expr.LicenseId

// LicenseRef is a user-defined license identifier outside the catalog.
type LicenseRef = expr.LicenseRef

// WithException pairs a license with a license exception.
type WithException = expr.WithException

// Compound is a binary AND/OR composition.
type Compound = expr.Compound

// Op is a boolean composition operator (AND/OR).
type Op = expr.Op

// Op constants.
const (
	OpAnd = expr.OpAnd
	OpOr  = expr.OpOr
)

// Strictness is the policy controlling which identifiers Parse accepts.
type Strictness = expr.Strictness

// Strictness constants.
const (
	AllowAny        = expr.AllowAny
	AllowDeprecated = expr.AllowDeprecated
	AllowCurrent    = expr.AllowCurrent
)

// Catalog is a read-only table of known SPDX licenses and exceptions.
type Catalog = expr.Catalog

// License is a catalog entry for an SPDX license identifier.
type License = expr.License

// Exception is a catalog entry for an SPDX license exception identifier.
type Exception = expr.Exception

// CombinedSuccessor is the replacement for a deprecated combined identifier.
type CombinedSuccessor = expr.CombinedSuccessor

// SyntaxError reports malformed SPDX expression text.
type SyntaxError = expr.SyntaxError

// ValidationError reports an identifier rejected by the active Strictness.
type ValidationError = expr.ValidationError

// Catalog constructors.
var (
	NewCatalog     = expr.NewCatalog
	DefaultCatalog = expr.DefaultCatalog
)

// Core operations, re-exported from expr for direct use alongside Parse.
var (
	Render       = expr.Render
	Validate     = expr.Validate
	Normalize    = expr.Normalize
	Decompose    = expr.Decompose
	DNF          = expr.DNF
	LicenseWith  = expr.LicenseWith
	IsLicenseRef = expr.IsLicenseRef
)
