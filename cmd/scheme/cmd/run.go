package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/amirkamil/cs61a-scheme-editor/internal/builtins"
	"github.com/amirkamil/cs61a-scheme-editor/internal/eval"
	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/trace"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
	"github.com/amirkamil/cs61a-scheme-editor/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	runEvalExpr   string
	runDumpAST    bool
	runTrace      bool
	runDotted     bool
	runFragile    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Scheme file or expression",
	Long: `Read and evaluate a Scheme program from a file, an inline
expression, or stdin.

Examples:
  scheme run program.scm
  scheme run -e "(+ 1 2)"
  scheme run --trace --dump-ast program.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "dump the parsed datum tree before evaluating")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "trace evaluation steps to stderr")
	runCmd.Flags().BoolVar(&runDotted, "dotted", true, "accept dotted-pair and dotted parameter-list notation")
	runCmd.Flags().BoolVar(&runFragile, "fragile", false, "reject irreversible operations (pair/vector mutators, force, load)")
}

func readInput(evalExpr string, args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), "<stdin>", nil
	}
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	lex := lexer.New(input)
	rdr := reader.New(lex, input, filename, reader.Config{Dotted: runDotted})
	datums, err := rdr.ReadProgram()
	if err != nil {
		return reportSchemeError(err)
	}

	if runDumpAST {
		tree := printer.TreePrinter()
		fmt.Println("AST:")
		fmt.Println(tree.FormatProgram(datums))
		fmt.Println()
	}

	hooks := trace.Hooks(trace.NewStdout(os.Stdout))
	if runTrace {
		hooks = &tracingHooks{Stdout: trace.NewStdout(os.Stdout), filename: filename}
	}

	ev := eval.New(builtins.Register,
		eval.WithDotted(runDotted),
		eval.WithFragile(runFragile),
		eval.WithHooks(hooks),
	)

	for _, datum := range datums {
		if _, err := ev.Eval(datum, ev.Global, false); err != nil {
			return reportSchemeError(err)
		}
	}
	return nil
}

func reportSchemeError(err error) error {
	if se, ok := err.(*schemeerr.SchemeError); ok {
		fmt.Fprintln(os.Stderr, se.Format(false))
		return fmt.Errorf("evaluation failed")
	}
	return err
}

// tracingHooks layers a per-step stderr trace of evaluated expressions on
// top of the normal stdout output sinks, for the --trace flag.
type tracingHooks struct {
	*trace.Stdout
	filename string
}

func (t *tracingHooks) OnEnter(expr value.Value, _ *value.Frame) {
	fmt.Fprintf(os.Stderr, "[%s] eval: %s\n", t.filename, value.Write(expr))
}
