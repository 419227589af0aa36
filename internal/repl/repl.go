// Package repl implements a line-oriented read-eval-print loop over the
// shared lexer/reader and an internal/eval.Evaluator with a persistent
// global frame. Forms spanning multiple lines prompt for continuation
// input instead of raising a parse error.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/eval"
	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// incompleteMarkers are the reader's ParseError messages that mean "this
// datum isn't finished yet, read more input" rather than "this input is
// malformed" — an unterminated list or vector at end of input.
var incompleteMarkers = []string{"unterminated list", "unterminated vector", "unexpected end of input"}

// REPL reads expressions from In, evaluates each against a persistent
// global frame, and writes prompts and results to Out.
type REPL struct {
	Evaluator *eval.Evaluator
	In        *bufio.Reader
	Out       io.Writer
	Prompt    string
	Continue  string
}

// New builds a REPL over ev, reading from in and writing prompts/results to
// out.
func New(ev *eval.Evaluator, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		Evaluator: ev,
		In:        bufio.NewReader(in),
		Out:       out,
		Prompt:    "scheme> ",
		Continue:  "...... ",
	}
}

// Run drives the loop until In is exhausted.
func (r *REPL) Run() error {
	var buffer strings.Builder
	prompt := r.Prompt
	for {
		fmt.Fprint(r.Out, prompt)
		line, err := r.In.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		buffer.WriteString(line)

		source := buffer.String()
		lex := lexer.New(source)
		rdr := reader.New(lex, source, "<repl>", reader.Config{Dotted: r.Evaluator.Config.Dotted})
		datums, readErr := rdr.ReadProgram()

		if readErr != nil && incomplete(readErr) {
			prompt = r.Continue
			if err == io.EOF {
				fmt.Fprintln(r.Out, readErr)
				return nil
			}
			continue
		}

		buffer.Reset()
		prompt = r.Prompt

		if readErr != nil {
			fmt.Fprintln(r.Out, readErr)
		} else {
			for _, datum := range datums {
				result, evalErr := r.Evaluator.Eval(datum, r.Evaluator.Global, false)
				if evalErr != nil {
					fmt.Fprintln(r.Out, evalErr)
					continue
				}
				if value.IsUndefined(result) {
					continue
				}
				fmt.Fprintln(r.Out, value.Write(result))
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

func incomplete(err error) bool {
	se, ok := err.(*schemeerr.SchemeError)
	if !ok || se.Kind != schemeerr.KindParseError {
		return false
	}
	for _, marker := range incompleteMarkers {
		if strings.Contains(se.Message, marker) {
			return true
		}
	}
	return false
}
