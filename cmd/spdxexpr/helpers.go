package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gospdx/spdxexpr"
)

func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// strictnessFromFlag maps the -s/--strictness CLI value onto
// spdxexpr.Strictness. Empty defaults to AllowAny.
func strictnessFromFlag(value string) (spdxexpr.Strictness, error) {
	switch value {
	case "", "any":
		return spdxexpr.AllowAny, nil
	case "deprecated":
		return spdxexpr.AllowDeprecated, nil
	case "current":
		return spdxexpr.AllowCurrent, nil
	default:
		return 0, fmt.Errorf("unknown strictness level %q (want any, deprecated, or current)", value)
	}
}
