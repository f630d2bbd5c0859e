package main

import (
	"fmt"

	"github.com/gospdx/spdxexpr"
)

func (c *cli) cmdValidate(args []string) int {
	strictness, err := strictnessFromFlag(c.strictness)
	if err != nil {
		printError("%v", err)
		return exitError
	}
	text, err := readExpression(args)
	if err != nil {
		printError("reading expression: %v", err)
		return exitError
	}

	if _, err := spdxexpr.Parse(text, strictness); err != nil {
		return reportParseError(err)
	}
	fmt.Printf("ok: %q is valid under %s\n", text, strictness)
	return exitOK
}
