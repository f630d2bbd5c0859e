// Command spdxexpr is a CLI tool for parsing, validating, and rewriting
// SPDX license expressions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gospdx/spdxexpr/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK              = 0 // success
	exitError           = 1 // user error or malformed expression
	exitStrictViolation = 2 // strictness rejected an identifier
)

const usage = `spdxexpr - SPDX license expression parser and rewriter

Usage:
  spdxexpr <command> [options] [expression]

Commands:
  parse      Parse and print the canonical render
  render     Alias of parse
  validate   Parse under a strictness level, report pass/fail
  normalize  Parse, normalize deprecated identifiers, render
  decompose  Parse, split on AND/OR, print each atom on its own line
  dnf        Parse, rewrite to disjunctive normal form, render
  repl       Interactive read-eval-print loop
  version    Show version

Options:
  -s, --strictness LEVEL   any | deprecated | current (default: any);
                           used by parse, render, validate, and repl
                           (normalize, decompose, and dnf always use any)
  -o, --output FILE        Write result to FILE instead of stdout
                           (parse, render, normalize, dnf)
  -v, --verbose             Enable debug logging (parse, render)
  -vv                       Enable trace logging (implies -v)
  -h, --help                Show help

If no expression is given on the command line, it is read from stdin.

Examples:
  spdxexpr parse "MIT AND (Apache-2.0 OR BSD-3-Clause)"
  spdxexpr validate -s current "GPL-1.0+"
  spdxexpr normalize "GPL-2.0-with-classpath-exception"
  spdxexpr decompose "GPL-2.0-or-later WITH Classpath-exception-2.0 AND MIT AND MIT"
  spdxexpr dnf "(a OR b) AND (c OR d)"
`

type cli struct {
	verbose    int
	strictness string
	output     string
	helpFlag   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case arg == "-s" || arg == "--strictness":
			if i+1 < len(args) {
				i++
				c.strictness = args[i]
			}
		case strings.HasPrefix(arg, "--strictness="):
			c.strictness = arg[len("--strictness="):]
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				i++
				c.output = args[i]
			}
		case strings.HasPrefix(arg, "--output="):
			c.output = arg[len("--output="):]
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}
	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "parse", "render":
		return c.cmdParse(cmdArgs)
	case "validate":
		return c.cmdValidate(cmdArgs)
	case "normalize":
		return c.cmdNormalize(cmdArgs)
	case "decompose":
		return c.cmdDecompose(cmdArgs)
	case "dnf":
		return c.cmdDNF(cmdArgs)
	case "repl":
		return c.cmdRepl(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = slog.Level(-8) // matches spdxexpr internal trace level
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("spdxexpr %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}

// writeResult writes text, followed by a newline, to c.output if set, or to
// stdout otherwise.
func (c *cli) writeResult(text string) error {
	f, closeFn, err := cliutil.GetOutput(c.output)
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = fmt.Fprintln(f, text)
	return err
}

// readExpression returns the expression text from args (joined by a single
// space) or, if args is empty, the trimmed contents of stdin.
func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := readAllStdin()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(data), nil
}
