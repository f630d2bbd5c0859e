package expr

// Validate walks e under strictness, checking every LicenseId and every
// WithException.ExceptionID against catalog. LicenseRef identifiers are
// always accepted without catalog lookup. Validate returns the first
// ValidationError encountered (depth-first, left before right), or nil if
// the whole tree passes.
func Validate(e Expr, strictness Strictness, catalog Catalog) error {
	switch v := e.(type) {
	case LicenseId:
		return checkLicenseID(v.ID, strictness, catalog)
	case LicenseRef:
		return nil
	case WithException:
		if err := checkLicenseID(v.License.ID, strictness, catalog); err != nil {
			return err
		}
		return checkExceptionID(v.ExceptionID, strictness, catalog)
	case Compound:
		if err := Validate(v.Left, strictness, catalog); err != nil {
			return err
		}
		return Validate(v.Right, strictness, catalog)
	default:
		return nil
	}
}

func checkLicenseID(id string, strictness Strictness, catalog Catalog) error {
	if IsLicenseRef(id) {
		return nil
	}
	lic, known := catalog.LookupLicense(id)
	switch {
	case !known:
		if strictness == AllowAny {
			return nil
		}
		return &ValidationError{ID: id, Policy: strictness, Reason: "unknown identifier"}
	case lic.Deprecated:
		if strictness == AllowCurrent {
			return &ValidationError{ID: id, Policy: strictness, Reason: "deprecated identifier"}
		}
		return nil
	default:
		return nil
	}
}

func checkExceptionID(id string, strictness Strictness, catalog Catalog) error {
	exc, known := catalog.LookupException(id)
	switch {
	case !known:
		if strictness == AllowAny {
			return nil
		}
		return &ValidationError{ID: id, Policy: strictness, Reason: "unknown exception identifier"}
	case exc.Deprecated:
		if strictness == AllowCurrent {
			return &ValidationError{ID: id, Policy: strictness, Reason: "deprecated exception identifier"}
		}
		return nil
	default:
		return nil
	}
}
