package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"minishell/internal/shellio"
)

// appName is the single source of truth for the binary's name, the way
// every cmd/ entry point in this repo derives its identity from one
// constant.
const appName = "minishell"

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A POSIX-flavored interactive command shell",
	Long: appName + " is a single-user REPL: it reads one command line at a time, " +
		"tokenizes it with shell-style quoting, resolves builtins and external " +
		"programs, and wires up redirections and pipelines.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			fmt.Println(appName, version)
			return nil
		}
		runREPL()
		return nil
	},
}

var flagVersion bool

func init() {
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "print the version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		shellio.Fatal(err)
	}
}
