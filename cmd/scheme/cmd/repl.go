package cmd

import (
	"os"

	"github.com/amirkamil/cs61a-scheme-editor/internal/builtins"
	"github.com/amirkamil/cs61a-scheme-editor/internal/eval"
	"github.com/amirkamil/cs61a-scheme-editor/internal/repl"
	"github.com/amirkamil/cs61a-scheme-editor/internal/trace"
	"github.com/spf13/cobra"
)

var (
	replDotted  bool
	replFragile bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive Scheme session, reading expressions from
standard input and printing their values as they're evaluated.

Forms that span multiple lines (an unterminated list or vector) prompt
for continuation input instead of raising a parse error.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replDotted, "dotted", true, "accept dotted-pair and dotted parameter-list notation")
	replCmd.Flags().BoolVar(&replFragile, "fragile", false, "reject irreversible operations (pair/vector mutators, force, load)")
}

func runRepl(_ *cobra.Command, _ []string) error {
	ev := eval.New(builtins.Register,
		eval.WithDotted(replDotted),
		eval.WithFragile(replFragile),
		eval.WithHooks(trace.NewStdout(os.Stdout)),
	)

	r := repl.New(ev, os.Stdin, os.Stdout)
	return r.Run()
}
