package eval

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// loadForm implements load: 'name reads name.scm from the current directory
// and evaluates its forms under begin-noexcept semantics. The operand is
// evaluated normally — '<name> is sugar for (quote <name>) — so this is a
// special form only for fragile-mode access, not because its argument
// escapes evaluation.
func (e *Evaluator) loadForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 1 {
		return nil, schemeerr.ArityError("load", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	nameVal, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	sym, ok := nameVal.(*value.Symbol)
	if !ok {
		return nil, schemeerr.TypeMismatch("load expects a symbol naming a file, received %s", value.Write(nameVal))
	}
	if e.Config.Fragile {
		return nil, schemeerr.IrreversibleOperation("load")
	}
	return e.loadFile(sym.Name+".scm", frame)
}

func (e *Evaluator) loadFile(filename string, frame *value.Frame) (value.Value, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, schemeerr.LoadError("cannot open %q", filename).WithCause(err)
	}
	program, err := e.parseProgram(string(source), filename)
	if err != nil {
		return nil, err
	}
	return e.evalNoExcept(program, frame), nil
}

func (e *Evaluator) parseProgram(source, filename string) ([]value.Value, error) {
	lex := lexer.New(source)
	r := reader.New(lex, source, filename, reader.Config{Dotted: e.Config.Dotted})
	return r.ReadProgram()
}

// evalNoExcept evaluates each top-level expression, catching and reporting
// any error instead of propagating it, and returns the value of
// the last expression that evaluated successfully.
func (e *Evaluator) evalNoExcept(exprs []value.Value, frame *value.Frame) value.Value {
	result := value.Undefined
	for _, expr := range exprs {
		v, err := e.Eval(expr, frame, false)
		if err != nil {
			e.Hooks.RawOut(err.Error() + "\n")
			continue
		}
		result = v
	}
	return result
}

// loadAllForm implements load-all: "dir" sorts *.scm entries in dir
// lexicographically and loads each in turn.
func (e *Evaluator) loadAllForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 1 {
		return nil, schemeerr.ArityError("load-all", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	dirVal, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	dirStr, ok := dirVal.(*value.String)
	if !ok {
		return nil, schemeerr.TypeMismatch("load-all expects a string directory name, received %s", value.Write(dirVal))
	}
	if e.Config.Fragile {
		return nil, schemeerr.IrreversibleOperation("load-all")
	}
	return e.loadAllDir(dirStr.Go(), frame)
}

func (e *Evaluator) loadAllDir(dir string, frame *value.Frame) (value.Value, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, schemeerr.LoadError("cannot open directory %q", dir).WithCause(err)
	}
	var names []string
	for _, ent := range entries {
		if !ent.IsDir() && strings.HasSuffix(ent.Name(), ".scm") {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)

	// File reads are independent I/O and safe to parallelize; evaluation
	// itself stays strictly sequential in sorted order — the evaluator is
	// single-threaded and non-suspending.
	sources := make([]string, len(names))
	g := new(errgroup.Group)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return schemeerr.LoadError("cannot open %q", name).WithCause(err)
			}
			sources[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := value.Undefined
	for i, name := range names {
		program, err := e.parseProgram(sources[i], name)
		if err != nil {
			return nil, err
		}
		result = e.evalNoExcept(program, frame)
	}
	return result, nil
}
