package main

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gospdx/spdxexpr"
)

// cmdRepl runs an interactive read-eval-print loop: each line is parsed,
// normalized, and rendered. Prefix a line with "dnf " or "decompose " to
// run that transform instead of a plain parse+render.
func (c *cli) cmdRepl(args []string) int {
	strictness, err := strictnessFromFlag(c.strictness)
	if err != nil {
		printError("%v", err)
		return exitError
	}

	pterm.Info.Prefix = pterm.Prefix{Text: " spdxexpr ", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: " error ", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}

	rl, err := readline.New("spdxexpr> ")
	if err != nil {
		printError("starting repl: %v", err)
		return exitError
	}
	defer rl.Close()

	pterm.Info.Println("enter an SPDX expression, or 'dnf <expr>' / 'decompose <expr>'. Ctrl-D to quit.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return exitOK
		}
		if err != nil {
			printError("%v", err)
			return exitError
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.evalReplLine(line, strictness)
	}
}

func (c *cli) evalReplLine(line string, strictness spdxexpr.Strictness) {
	switch {
	case strings.HasPrefix(line, "dnf "):
		c.evalTransform(strings.TrimPrefix(line, "dnf "), strictness, func(e spdxexpr.Expr) spdxexpr.Expr {
			return spdxexpr.DNF(e)
		})
	case strings.HasPrefix(line, "decompose "):
		c.evalDecompose(strings.TrimPrefix(line, "decompose "), strictness)
	default:
		c.evalTransform(line, strictness, func(e spdxexpr.Expr) spdxexpr.Expr {
			return spdxexpr.Normalize(e, spdxexpr.DefaultCatalog())
		})
	}
}

func (c *cli) evalTransform(text string, strictness spdxexpr.Strictness, transform func(spdxexpr.Expr) spdxexpr.Expr) {
	e, err := spdxexpr.Parse(text, strictness)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(spdxexpr.Render(transform(e)))
}

func (c *cli) evalDecompose(text string, strictness spdxexpr.Strictness) {
	e, err := spdxexpr.Parse(text, strictness)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	atoms := spdxexpr.Decompose(e)
	leveled := make(pterm.LeveledList, 0, len(atoms))
	for _, atom := range atoms {
		leveled = append(leveled, pterm.LeveledListItem{Level: 0, Text: spdxexpr.Render(atom)})
	}
	root := pterm.NewTreeFromLeveledList(leveled)
	_ = pterm.DefaultTree.WithRoot(root).Render()
}
