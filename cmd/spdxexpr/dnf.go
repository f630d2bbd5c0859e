package main

import (
	"github.com/gospdx/spdxexpr"
)

func (c *cli) cmdDNF(args []string) int {
	text, err := readExpression(args)
	if err != nil {
		printError("reading expression: %v", err)
		return exitError
	}

	e, err := spdxexpr.Parse(text, spdxexpr.AllowAny)
	if err != nil {
		return reportParseError(err)
	}
	if err := c.writeResult(spdxexpr.Render(spdxexpr.DNF(e))); err != nil {
		printError("writing result: %v", err)
		return exitError
	}
	return exitOK
}
