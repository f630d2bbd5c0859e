package expr

// DNF rewrites e into disjunctive normal form: an OR of AND-clauses, each
// clause an AND of literals (LicenseId, LicenseRef, or WithException).
// Distribution is right-biased — (a OR b) AND c becomes (a AND c) OR
// (b AND c), and a AND (b OR c) becomes (a AND b) OR (a AND c) — and
// performs no deduplication, absorption, or other simplification: A AND A
// stays A AND A.
func DNF(e Expr) Expr {
	c, ok := e.(Compound)
	if !ok {
		return e
	}
	left := DNF(c.Left)
	right := DNF(c.Right)
	if c.Op == OpOr {
		return Compound{Left: left, Op: OpOr, Right: right}
	}
	return distributeAnd(left, right)
}

// distributeAnd computes the DNF of (l AND r), given that l and r are
// already in DNF themselves. If either side is an OR, the AND distributes
// over it recursively; once neither side is an OR, the pair forms a single
// AND clause.
func distributeAnd(l, r Expr) Expr {
	if lc, ok := l.(Compound); ok && lc.Op == OpOr {
		return Compound{
			Left:  distributeAnd(lc.Left, r),
			Op:    OpOr,
			Right: distributeAnd(lc.Right, r),
		}
	}
	if rc, ok := r.(Compound); ok && rc.Op == OpOr {
		return Compound{
			Left:  distributeAnd(l, rc.Left),
			Op:    OpOr,
			Right: distributeAnd(l, rc.Right),
		}
	}
	return Compound{Left: l, Op: OpAnd, Right: r}
}
