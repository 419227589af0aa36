// Command scheme is the CLI front end for the interpreter: run, lex, parse,
// repl, fmt, and version subcommands over a cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/amirkamil/cs61a-scheme-editor/cmd/scheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
