package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite  bool
	fmtList   bool
	fmtDiff   bool
	fmtStyle  string
	fmtDotted bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format Scheme source files",
	Long: `Format Scheme source files using the structural formatter.

By default, fmt formats the files named on the command line and writes
the result to standard output. If no path is provided, it reads from
standard input.`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
	fmtCmd.Flags().StringVar(&fmtStyle, "style", "detailed", "formatting style: detailed or compact")
	fmtCmd.Flags().BoolVar(&fmtDotted, "dotted", true, "accept dotted-pair notation")
}

func runFmt(_ *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	var style printer.Style
	switch strings.ToLower(fmtStyle) {
	case "detailed":
		style = printer.StyleDetailed
	case "compact":
		style = printer.StyleCompact
	default:
		return fmt.Errorf("unknown style: %s (use detailed or compact)", fmtStyle)
	}
	opts := printer.Options{Format: printer.FormatScheme, Style: style}

	if len(args) == 0 {
		return formatStdin(opts)
	}

	hasErrors := false
	for _, path := range args {
		if err := formatFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatStdin(opts printer.Options) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	formatted, err := formatSource(string(src), "<stdin>", opts)
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(filename string, opts printer.Options) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	original := string(src)

	formatted, err := formatSource(original, filename, opts)
	if err != nil {
		return err
	}
	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", filename)
			fmt.Printf("+++ %s (formatted)\n", filename)
			showDiff(original, formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing file: %w", err)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func formatSource(source, filename string, opts printer.Options) (string, error) {
	lex := lexer.New(source)
	rdr := reader.New(lex, source, filename, reader.Config{Dotted: fmtDotted})
	datums, err := rdr.ReadProgram()
	if err != nil {
		return "", reportSchemeError(err)
	}
	pr := printer.New(opts)
	out := pr.FormatProgram(datums)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func showDiff(original, formatted string) {
	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")
	maxLines := len(origLines)
	if len(fmtLines) > maxLines {
		maxLines = len(fmtLines)
	}
	for i := 0; i < maxLines; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine != fmtLine {
			if origLine != "" {
				fmt.Printf("- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Printf("+ %s\n", fmtLine)
			}
		}
	}
}
