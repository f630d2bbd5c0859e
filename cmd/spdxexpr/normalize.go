package main

import (
	"github.com/gospdx/spdxexpr"
)

func (c *cli) cmdNormalize(args []string) int {
	text, err := readExpression(args)
	if err != nil {
		printError("reading expression: %v", err)
		return exitError
	}

	e, err := spdxexpr.Parse(text, spdxexpr.AllowAny)
	if err != nil {
		return reportParseError(err)
	}
	normalized := spdxexpr.Normalize(e, spdxexpr.DefaultCatalog())
	if err := c.writeResult(spdxexpr.Render(normalized)); err != nil {
		printError("writing result: %v", err)
		return exitError
	}
	return exitOK
}
