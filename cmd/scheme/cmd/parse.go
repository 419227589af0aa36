package cmd

import (
	"fmt"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseDotted   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Read Scheme source and print its datum tree",
	Long: `Read Scheme source code and display the resulting datum tree,
using the structural formatter's tree view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDotted, "dotted", true, "accept dotted-pair notation")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	lex := lexer.New(input)
	rdr := reader.New(lex, input, filename, reader.Config{Dotted: parseDotted})
	datums, err := rdr.ReadProgram()
	if err != nil {
		return reportSchemeError(err)
	}

	fmt.Println(printer.TreePrinter().FormatProgram(datums))
	return nil
}
