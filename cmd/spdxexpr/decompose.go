package main

import (
	"fmt"

	"github.com/gospdx/spdxexpr"
)

func (c *cli) cmdDecompose(args []string) int {
	text, err := readExpression(args)
	if err != nil {
		printError("reading expression: %v", err)
		return exitError
	}

	e, err := spdxexpr.Parse(text, spdxexpr.AllowAny)
	if err != nil {
		return reportParseError(err)
	}
	for _, atom := range spdxexpr.Decompose(e) {
		fmt.Println(spdxexpr.Render(atom))
	}
	return exitOK
}
