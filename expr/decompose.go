package expr

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Decompose splits e on AND and OR (never on WITH) and returns the set of
// atomic license expressions reached, each a LicenseId, LicenseRef, or
// WithException. The set is keyed by canonical Render text, so two atoms
// that render identically collapse to one entry — this is the dedup rule
// §4.6 specifies ("render outputs are pairwise distinct"). The returned
// slice is sorted by Render text for a deterministic result.
func Decompose(e Expr) []Expr {
	atoms := collectAtoms(e, nil)

	comparator := func(a, b interface{}) int {
		return utils.StringComparator(a.(Expr).Render(), b.(Expr).Render())
	}
	set := treeset.NewWith(comparator)
	for _, atom := range atoms {
		set.Add(atom)
	}

	values := set.Values()
	result := make([]Expr, len(values))
	for i, v := range values {
		result[i] = v.(Expr)
	}
	return result
}

// collectAtoms walks compound AND/OR nodes, appending every non-compound
// leaf it finds. WithException is a leaf here: WITH groupings are never
// split apart.
func collectAtoms(e Expr, out []Expr) []Expr {
	if c, ok := e.(Compound); ok {
		out = collectAtoms(c.Left, out)
		out = collectAtoms(c.Right, out)
		return out
	}
	return append(out, e)
}
