package main

import (
	"github.com/gospdx/spdxexpr"
)

func (c *cli) cmdParse(args []string) int {
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

	var opts []spdxexpr.ParseOption
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, spdxexpr.WithLogger(logger))
	}

	e, err := spdxexpr.Parse(text, strictness, opts...)
	if err != nil {
		return reportParseError(err)
	}
	if err := c.writeResult(spdxexpr.Render(e)); err != nil {
		printError("writing result: %v", err)
		return exitError
	}
	return exitOK
}

// reportParseError classifies err and returns the matching exit code.
func reportParseError(err error) int {
	switch err.(type) {
	case *spdxexpr.ValidationError:
		printError("%v", err)
		return exitStrictViolation
	default:
		printError("%v", err)
		return exitError
	}
}
