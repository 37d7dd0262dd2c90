// Package shellio carries the shell's ambient I/O helpers: the handful of
// conditions fatal enough to abort the process before the REPL can even
// start.
package shellio

import (
	"fmt"
	"os"
)

// Fatal prints err to stderr and exits the process with status 1. It is
// reserved for startup failures — nothing that happens during a REPL
// iteration is fatal (spec.md §7: errors never unwind past one iteration).
func Fatal(err error) {
	fmt.Fprintln(os.Stderr, "minishell:", err)
	os.Exit(1)
}
