package expr

// Render returns the canonical textual form of e. It is the free-function
// form of e.Render(), kept for symmetry with the other free-function
// operations (Validate, Normalize, Decompose, DNF).
func Render(e Expr) string {
	return e.Render()
}

// precedenceOf returns the binding strength of e's top-level operator.
// Atomic nodes (LicenseId, LicenseRef) return a value higher than any
// operator so they are never parenthesized.
func precedenceOf(e Expr) int {
	switch v := e.(type) {
	case Compound:
		return v.Op.Precedence()
	case WithException:
		return 3
	default:
		return 4
	}
}

func renderChild(parentPrec int, child Expr) string {
	s := child.Render()
	if precedenceOf(child) < parentPrec {
		return "(" + s + ")"
	}
	return s
}

// renderCompound renders a Compound with parentheses added only where the
// child's precedence is strictly lower than this node's. Both AND and OR
// are associative, so a child at equal precedence never needs parens
// regardless of which side it occupies — this flattens same-operator
// chains no matter how the tree was originally shaped.
func renderCompound(c Compound) string {
	parentPrec := c.Op.Precedence()
	left := renderChild(parentPrec, c.Left)
	right := renderChild(parentPrec, c.Right)
	return left + " " + c.Op.String() + " " + right
}
