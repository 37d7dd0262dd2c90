package main

import (
	"os"

	"minishell/internal/engine"
	"minishell/internal/lineedit"
	"minishell/internal/planner"
	"minishell/internal/token"
)

// runREPL is the top-level loop: acquire raw mode once, restore it on every
// exit path, and otherwise read-tokenize-plan-execute one line at a time
// until EOF or `exit`.
func runREPL() {
	raw := lineedit.Enter(int(os.Stdin.Fd()))
	defer raw.Restore()

	editor := lineedit.New(os.Stdin, os.Stdout, raw.Active())
	eng := engine.New()

	for {
		os.Stdout.WriteString(lineedit.Prompt)

		line, ok := editor.ReadLine()
		if !ok {
			return
		}

		pipeline := planner.Plan(token.Tokenize(line))
		if len(pipeline) == 0 {
			continue
		}

		if eng.Run(pipeline) {
			return
		}
	}
}
