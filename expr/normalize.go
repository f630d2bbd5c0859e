package expr

import "strings"

// Normalize returns a semantically equivalent tree with deprecated
// identifiers replaced by their current successors and casing corrected to
// the catalog's canonical spelling. It never fails: identifiers with no
// catalog entry, and deprecated identifiers with no known successor, pass
// through unchanged (only case-corrected when the catalog can say what the
// canonical case is).
func Normalize(e Expr, catalog Catalog) Expr {
	switch v := e.(type) {
	case LicenseId:
		return normalizeLicenseID(v, catalog)
	case LicenseRef:
		return v
	case WithException:
		return normalizeWithException(v, catalog)
	case Compound:
		return Compound{
			Left:  Normalize(v.Left, catalog),
			Op:    v.Op,
			Right: Normalize(v.Right, catalog),
		}
	default:
		return e
	}
}

// normalizeLicenseID resolves a single LicenseId. It can return a
// WithException when id is a deprecated combined "<license>-with-<exception>"
// identifier — that case splits one node into two fields, per §4.5 rule 3.
func normalizeLicenseID(l LicenseId, catalog Catalog) Expr {
	if comb, ok := catalog.LookupCombined(l.ID); ok {
		return WithException{
			License:     LicenseId{ID: comb.LicenseID},
			ExceptionID: comb.ExceptionID,
		}
	}

	lic, known := catalog.LookupLicense(l.ID)
	if !known {
		return l
	}
	if !lic.Deprecated || lic.SuccessorID == "" {
		return LicenseId{ID: lic.ID, OrLater: l.OrLater}
	}

	successor := lic.SuccessorID
	orLater := l.OrLater
	if l.OrLater && strings.HasSuffix(successor, "-only") {
		successor = strings.TrimSuffix(successor, "-only") + "-or-later"
		orLater = false
	}
	return LicenseId{ID: successor, OrLater: orLater}
}

func normalizeExceptionID(id string, catalog Catalog) string {
	exc, known := catalog.LookupException(id)
	if !known {
		return id
	}
	if exc.Deprecated && exc.SuccessorID != "" {
		return exc.SuccessorID
	}
	return exc.ID
}

// normalizeWithException normalizes the license and exception operands of a
// WITH independently: each is replaced by its own successor or canonical
// spelling. A deprecated exception's successor never changes the license
// operand.
func normalizeWithException(w WithException, catalog Catalog) Expr {
	exceptionID := normalizeExceptionID(w.ExceptionID, catalog)

	switch lv := normalizeLicenseID(w.License, catalog).(type) {
	case WithException:
		// w.License itself turned out to be a deprecated combined
		// identifier; its own exception mapping wins since the source
		// text never attached two WITH clauses to one license.
		return WithException{License: lv.License, ExceptionID: lv.ExceptionID}
	case LicenseId:
		return WithException{License: lv, ExceptionID: exceptionID}
	default:
		return w
	}
}
