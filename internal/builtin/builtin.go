// Package builtin implements the shell's in-process commands: exit, echo,
// pwd, cd, and type.
package builtin

import (
	"fmt"
	"os"
	"strings"

	"minishell/internal/pathresolve"
)

// Result is what a builtin produces: buffered output so it can be
// redirected or fed into the next pipeline stage, plus whether the shell
// should terminate.
type Result struct {
	Stdout     []byte
	Stderr     []byte
	ShouldExit bool
}

// Names lists every recognized builtin, in the fixed order used by `type`.
var Names = []string{"echo", "exit", "type", "pwd", "cd"}

// CompletionNames lists the builtins exposed to tab completion (spec.md
// §4.2 step 2: only echo and exit participate).
var CompletionNames = []string{"echo", "exit"}

// IsBuiltin reports whether name is one of the recognized builtins.
func IsBuiltin(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Run dispatches name to its builtin implementation. allowExit gates
// whether `exit` may set ShouldExit; applyCd gates whether `cd` may mutate
// the process's current directory. Both are false when the builtin runs as
// a pipeline stage (spec.md §4.5, §9: builtins in pipelines never terminate
// the shell and never change cwd).
func Run(name string, args []string, allowExit, applyCd bool) Result {
	switch name {
	case "exit":
		return runExit(allowExit)
	case "echo":
		return runEcho(args)
	case "pwd":
		return runPwd()
	case "cd":
		return runCd(args, applyCd)
	case "type":
		return runType(args)
	default:
		return Result{}
	}
}

func runExit(allowExit bool) Result {
	if !allowExit {
		return Result{}
	}
	return Result{ShouldExit: true}
}

func runEcho(args []string) Result {
	return Result{Stdout: []byte(strings.Join(args, " ") + "\n")}
}

func runPwd() Result {
	dir, err := os.Getwd()
	if err != nil {
		return Result{}
	}
	return Result{Stdout: []byte(dir + "\n")}
}

func runCd(args []string, applyCd bool) Result {
	if !applyCd || len(args) == 0 {
		return Result{}
	}

	original := args[0]
	target := original
	if original == "~" {
		home := os.Getenv("HOME")
		if home == "" {
			return Result{Stderr: []byte(fmt.Sprintf("cd: %s: No such file or directory\n", original))}
		}
		target = home
	}

	if err := os.Chdir(target); err != nil {
		return Result{Stderr: []byte(fmt.Sprintf("cd: %s: No such file or directory\n", original))}
	}
	return Result{}
}

func runType(args []string) Result {
	if len(args) == 0 {
		return Result{}
	}
	name := args[0]
	if IsBuiltin(name) {
		return Result{Stdout: []byte(fmt.Sprintf("%s is a shell builtin\n", name))}
	}
	if resolved, ok := pathresolve.Resolve(name); ok {
		return Result{Stdout: []byte(fmt.Sprintf("%s is %s\n", name, resolved))}
	}
	return Result{Stdout: []byte(fmt.Sprintf("%s: not found\n", name))}
}
