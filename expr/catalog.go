package expr

import "strings"

// License is a catalog entry for an SPDX license identifier.
type License struct {
	ID          string
	Deprecated  bool
	SuccessorID string // "" if Deprecated is false, or if no successor is known
}

// Exception is a catalog entry for an SPDX license exception identifier.
type Exception struct {
	ID          string
	Deprecated  bool
	SuccessorID string
}

// CombinedSuccessor is the replacement for a deprecated combined identifier
// of the form "<license>-with-<exception>", e.g.
// "GPL-2.0-with-classpath-exception" -> LicenseID: "GPL-2.0-only",
// ExceptionID: "Classpath-exception-2.0".
type CombinedSuccessor struct {
	LicenseID   string
	ExceptionID string
}

// Catalog is a read-only, injectable table of known SPDX licenses,
// exceptions, and deprecated-combined identifiers. It is loaded once (by
// DefaultCatalog) and never mutated afterward, so it is safe to share
// across concurrent callers and to substitute with a synthetic instance
// in tests.
type Catalog struct {
	licenses   map[string]License
	exceptions map[string]Exception
	combined   map[string]CombinedSuccessor
}

// NewCatalog builds a Catalog from explicit entries. Lookup keys are
// lowercased internally; canonical casing is preserved on each entry's ID.
func NewCatalog(licenses []License, exceptions []Exception, combined map[string]CombinedSuccessor) Catalog {
	c := Catalog{
		licenses:   make(map[string]License, len(licenses)),
		exceptions: make(map[string]Exception, len(exceptions)),
		combined:   make(map[string]CombinedSuccessor, len(combined)),
	}
	for _, l := range licenses {
		c.licenses[strings.ToLower(l.ID)] = l
	}
	for _, e := range exceptions {
		c.exceptions[strings.ToLower(e.ID)] = e
	}
	for k, v := range combined {
		c.combined[strings.ToLower(k)] = v
	}
	return c
}

// LookupLicense looks up id case-insensitively.
func (c Catalog) LookupLicense(id string) (License, bool) {
	l, ok := c.licenses[strings.ToLower(id)]
	return l, ok
}

// LookupException looks up id case-insensitively.
func (c Catalog) LookupException(id string) (Exception, bool) {
	e, ok := c.exceptions[strings.ToLower(id)]
	return e, ok
}

// LookupCombined looks up a deprecated combined "<license>-with-<exception>"
// identifier case-insensitively.
func (c Catalog) LookupCombined(id string) (CombinedSuccessor, bool) {
	s, ok := c.combined[strings.ToLower(id)]
	return s, ok
}

// defaultCatalog is built once and shared by DefaultCatalog. It is a
// deliberately curated representative subset of the official SPDX License
// List and SPDX Exceptions List — enough to exercise every normalization
// and validation rule this engine implements, not a verbatim transcription
// of the ~600-entry official list. The lookup table shape (map keyed by
// lowercased id) accepts additional entries without any code change.
var defaultCatalog = NewCatalog(
	[]License{
		// Current, non-deprecated licenses.
		{ID: "MIT"},
		{ID: "Apache-2.0"},
		{ID: "BSD-2-Clause"},
		{ID: "BSD-3-Clause"},
		{ID: "MPL-2.0"},
		{ID: "ISC"},
		{ID: "CC0-1.0"},
		{ID: "CC-BY-4.0"},
		{ID: "CC-BY-SA-4.0"},
		{ID: "Unlicense"},
		{ID: "Zlib"},
		{ID: "WTFPL"},
		{ID: "BSL-1.0"},
		{ID: "EPL-1.0"},
		{ID: "EPL-2.0"},
		{ID: "CDDL-1.0"},
		{ID: "CDDL-1.1"},
		{ID: "Python-2.0"},
		{ID: "PSF-2.0"},
		{ID: "Artistic-2.0"},
		{ID: "OFL-1.1"},
		{ID: "NCSA"},
		{ID: "Vim"},
		{ID: "X11"},
		{ID: "0BSD"},
		{ID: "GPL-1.0-only"},
		{ID: "GPL-1.0-or-later"},
		{ID: "GPL-2.0-only"},
		{ID: "GPL-2.0-or-later"},
		{ID: "GPL-3.0-only"},
		{ID: "GPL-3.0-or-later"},
		{ID: "LGPL-2.1-only"},
		{ID: "LGPL-2.1-or-later"},
		{ID: "LGPL-3.0-only"},
		{ID: "LGPL-3.0-or-later"},
		{ID: "AGPL-1.0-only"},
		{ID: "AGPL-1.0-or-later"},
		{ID: "AGPL-3.0-only"},
		{ID: "AGPL-3.0-or-later"},

		// Deprecated bare identifiers: successor is the "-only" spelling.
		// A "+"-suffixed use of the same bare id is handled generically by
		// the normalizer, which swaps "-only" for "-or-later" when OrLater
		// was set (see normalize.go).
		{ID: "GPL-1.0", Deprecated: true, SuccessorID: "GPL-1.0-only"},
		{ID: "GPL-2.0", Deprecated: true, SuccessorID: "GPL-2.0-only"},
		{ID: "GPL-3.0", Deprecated: true, SuccessorID: "GPL-3.0-only"},
		{ID: "LGPL-2.1", Deprecated: true, SuccessorID: "LGPL-2.1-only"},
		{ID: "LGPL-3.0", Deprecated: true, SuccessorID: "LGPL-3.0-only"},
		{ID: "AGPL-1.0", Deprecated: true, SuccessorID: "AGPL-1.0-only"},
		{ID: "AGPL-3.0", Deprecated: true, SuccessorID: "AGPL-3.0-only"},

		// Deprecated identifiers with no known successor: kept verbatim.
		{ID: "eCos-2.0", Deprecated: true},
		{ID: "Nunit", Deprecated: true},
		{ID: "StandardML-NJ", Deprecated: true},
		{ID: "wxWindows", Deprecated: true},
	},
	[]Exception{
		{ID: "Classpath-exception-2.0"},
		{ID: "Autoconf-exception-2.0"},
		{ID: "Autoconf-exception-3.0"},
		{ID: "Bison-exception-2.2"},
		{ID: "Font-exception-2.0"},
		{ID: "GCC-exception-2.0"},
		{ID: "GCC-exception-3.1"},
		{ID: "LLVM-exception"},
		{ID: "OpenJDK-assembly-exception-1.0"},
		{ID: "LGPL-3.0-linking-exception"},

		// Deprecated exception with a current successor.
		{ID: "Bison-exception-2.0", Deprecated: true, SuccessorID: "Bison-exception-2.2"},
	},
	map[string]CombinedSuccessor{
		"gpl-2.0-with-classpath-exception": {LicenseID: "GPL-2.0-only", ExceptionID: "Classpath-exception-2.0"},
		"gpl-3.0-with-gcc-exception":       {LicenseID: "GPL-3.0-only", ExceptionID: "GCC-exception-3.1"},
		"gpl-2.0-with-autoconf-exception":  {LicenseID: "GPL-2.0-only", ExceptionID: "Autoconf-exception-2.0"},
		"gpl-2.0-with-bison-exception":     {LicenseID: "GPL-2.0-only", ExceptionID: "Bison-exception-2.2"},
		"gpl-2.0-with-font-exception":      {LicenseID: "GPL-2.0-only", ExceptionID: "Font-exception-2.0"},
	},
)

// DefaultCatalog returns the engine's bundled SPDX license/exception
// catalog. Callers that need a synthetic catalog for testing should build
// one with NewCatalog instead; the Catalog is never mutated after
// construction, so DefaultCatalog's result is safe to share.
func DefaultCatalog() Catalog {
	return defaultCatalog
}
