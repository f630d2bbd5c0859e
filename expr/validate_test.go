package expr_test

import (
	"testing"

	"github.com/gospdx/spdxexpr/expr"
	"github.com/gospdx/spdxexpr/internal/testutil"
)

func TestValidateStrictnessTable(t *testing.T) {
	catalog := expr.DefaultCatalog()

	cases := []struct {
		name       string
		id         expr.LicenseId
		strictness expr.Strictness
		wantErr    bool
	}{
		{"unknown/AllowAny", expr.LicenseId{ID: "Not-A-Real-License"}, expr.AllowAny, false},
		{"unknown/AllowDeprecated", expr.LicenseId{ID: "Not-A-Real-License"}, expr.AllowDeprecated, true},
		{"unknown/AllowCurrent", expr.LicenseId{ID: "Not-A-Real-License"}, expr.AllowCurrent, true},

		{"deprecated/AllowAny", expr.LicenseId{ID: "GPL-1.0", OrLater: true}, expr.AllowAny, false},
		{"deprecated/AllowDeprecated", expr.LicenseId{ID: "GPL-1.0", OrLater: true}, expr.AllowDeprecated, false},
		{"deprecated/AllowCurrent", expr.LicenseId{ID: "GPL-1.0", OrLater: true}, expr.AllowCurrent, true},

		{"current/AllowAny", expr.LicenseId{ID: "GPL-1.0-only"}, expr.AllowAny, false},
		{"current/AllowDeprecated", expr.LicenseId{ID: "GPL-1.0-only"}, expr.AllowDeprecated, false},
		{"current/AllowCurrent", expr.LicenseId{ID: "GPL-1.0-only"}, expr.AllowCurrent, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := expr.Validate(tc.id, tc.strictness, catalog)
			if tc.wantErr {
				testutil.NotNilErr(t, err, tc.name)
			} else {
				testutil.NilErr(t, err, tc.name)
			}
		})
	}
}

func TestValidateLicenseRefAlwaysAccepted(t *testing.T) {
	catalog := expr.DefaultCatalog()
	ref := expr.LicenseRef{ID: "LicenseRef-my-license"}
	testutil.NilErr(t, expr.Validate(ref, expr.AllowCurrent, catalog), "LicenseRef under AllowCurrent")
}

func TestValidateStrictnessMonotonicity(t *testing.T) {
	catalog := expr.DefaultCatalog()
	id := expr.LicenseId{ID: "GPL-1.0", OrLater: true}
	if expr.Validate(id, expr.AllowCurrent, catalog) == nil {
		t.Skip("GPL-1.0+ unexpectedly accepted under AllowCurrent")
	}
	testutil.NilErr(t, expr.Validate(id, expr.AllowDeprecated, catalog), "AllowDeprecated")
	testutil.NilErr(t, expr.Validate(id, expr.AllowAny, catalog), "AllowAny")
}
