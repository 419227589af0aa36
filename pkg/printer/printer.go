// Package printer is the structural formatter: it re-renders a parsed datum
// (or a whole program) back to source text, an indented tree dump, or a
// JSON projection.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// Style controls source-form layout; it has no effect on FormatTree or
// FormatJSON output.
type Style int

const (
	// StyleCompact emits minimal whitespace: one line per top-level datum,
	// everything below that inline.
	StyleCompact Style = iota
	// StyleDetailed breaks a combination onto one sub-form per line, with
	// canonical indentation, once it exceeds lineWidth.
	StyleDetailed
)

// Format selects the output representation.
type Format int

const (
	// FormatScheme re-emits Scheme source text (the default).
	FormatScheme Format = iota
	// FormatTree renders an indented s-expression tree, one node per line.
	FormatTree
	// FormatJSON renders a JSON projection of the datum tree.
	FormatJSON
)

// Options configures a Printer.
type Options struct {
	Style  Style
	Format Format
}

// lineWidth is the column beyond which StyleDetailed breaks a combination
// onto multiple lines.
const lineWidth = 60

// Printer formats data values. The zero value is a FormatScheme/StyleCompact
// printer; use the constructors below for the common configurations.
type Printer struct {
	Options Options
}

// New builds a Printer with explicit options.
func New(opts Options) *Printer { return &Printer{Options: opts} }

// CompactPrinter renders minimal-whitespace Scheme source.
func CompactPrinter() *Printer { return New(Options{Style: StyleCompact, Format: FormatScheme}) }

// DetailedPrinter renders canonically indented Scheme source.
func DetailedPrinter() *Printer { return New(Options{Style: StyleDetailed, Format: FormatScheme}) }

// TreePrinter renders an indented s-expression tree view.
func TreePrinter() *Printer { return New(Options{Format: FormatTree}) }

// JSONPrinter renders a JSON projection of the datum tree.
func JSONPrinter() *Printer { return New(Options{Format: FormatJSON}) }

// Format renders a single datum per the receiver's Options.
func (p *Printer) Format(datum value.Value) string {
	switch p.Options.Format {
	case FormatTree:
		var sb strings.Builder
		writeTree(&sb, datum, 0)
		return sb.String()
	case FormatJSON:
		var sb strings.Builder
		writeJSON(&sb, datum)
		return sb.String()
	default:
		var sb strings.Builder
		writeScheme(&sb, datum, p.Options.Style, 0)
		return sb.String()
	}
}

// FormatProgram renders a sequence of top-level datums, one per line for
// FormatScheme/FormatTree, or as a JSON array for FormatJSON.
func (p *Printer) FormatProgram(datums []value.Value) string {
	if p.Options.Format == FormatJSON {
		var sb strings.Builder
		sb.WriteByte('[')
		for i, d := range datums {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(&sb, d)
		}
		sb.WriteByte(']')
		return sb.String()
	}
	lines := make([]string, len(datums))
	for i, d := range datums {
		lines[i] = p.Format(d)
	}
	return strings.Join(lines, "\n")
}

func writeScheme(sb *strings.Builder, datum value.Value, style Style, indent int) {
	p, ok := datum.(*value.Pair)
	if !ok {
		sb.WriteString(value.Write(datum))
		return
	}
	items, tail := flattenPair(p)
	rendered := make([]string, len(items))
	for i, item := range items {
		var item1 strings.Builder
		writeScheme(&item1, item, style, indent+1)
		rendered[i] = item1.String()
	}
	inline := "(" + strings.Join(rendered, " ")
	if tail != nil {
		inline += " . " + value.Write(tail)
	}
	inline += ")"
	if style == StyleCompact || len(inline) <= lineWidth || indent == 0 && len(items) == 0 {
		sb.WriteString(inline)
		return
	}
	pad := strings.Repeat("  ", indent+1)
	sb.WriteString("(")
	for i, r := range rendered {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(pad)
		}
		sb.WriteString(r)
	}
	if tail != nil {
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString(". ")
		sb.WriteString(value.Write(tail))
	}
	sb.WriteString(")")
}

// flattenPair walks a (possibly improper) list into its elements and, if
// improper, the final non-nil tail.
func flattenPair(p *value.Pair) ([]value.Value, value.Value) {
	var items []value.Value
	var cur value.Value = p
	for {
		pair, ok := cur.(*value.Pair)
		if !ok {
			if value.IsNil(cur) {
				return items, nil
			}
			return items, cur
		}
		items = append(items, pair.First)
		cur = pair.Rest
	}
}

func writeTree(sb *strings.Builder, datum value.Value, depth int) {
	pad := strings.Repeat("  ", depth)
	p, ok := datum.(*value.Pair)
	if !ok {
		sb.WriteString(pad)
		sb.WriteString(datum.Type())
		sb.WriteString(": ")
		sb.WriteString(value.Write(datum))
		sb.WriteString("\n")
		return
	}
	sb.WriteString(pad)
	sb.WriteString("pair\n")
	items, tail := flattenPair(p)
	for _, item := range items {
		writeTree(sb, item, depth+1)
	}
	if tail != nil {
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString(". ")
		sb.WriteString(value.Write(tail))
		sb.WriteString("\n")
	}
}

func writeJSON(sb *strings.Builder, datum value.Value) {
	switch v := datum.(type) {
	case *value.Pair:
		items, tail := flattenPair(v)
		sb.WriteString(`{"type":"pair","items":[`)
		for i, item := range items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, item)
		}
		sb.WriteByte(']')
		if tail != nil {
			sb.WriteString(`,"tail":`)
			writeJSON(sb, tail)
		}
		sb.WriteByte('}')
	case *value.Number:
		fmt.Fprintf(sb, `{"type":"number","exact":%t,"value":%s}`, v.Exact, jsonNumber(v))
	case *value.Boolean:
		fmt.Fprintf(sb, `{"type":"boolean","value":%t}`, v.Value)
	case *value.Symbol:
		fmt.Fprintf(sb, `{"type":"symbol","name":%s}`, strconv.Quote(v.Name))
	case *value.String:
		fmt.Fprintf(sb, `{"type":"string","value":%s}`, strconv.Quote(v.Go()))
	case *value.Character:
		fmt.Fprintf(sb, `{"type":"character","value":%s}`, strconv.Quote(string(v.Rune)))
	case *value.Vector:
		sb.WriteString(`{"type":"vector","items":[`)
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, item)
		}
		sb.WriteString(`]}`)
	default:
		if value.IsNil(datum) {
			sb.WriteString(`{"type":"nil"}`)
			return
		}
		fmt.Fprintf(sb, `{"type":%s}`, strconv.Quote(datum.Type()))
	}
}

func jsonNumber(n *value.Number) string {
	if n.Exact {
		return strconv.FormatInt(n.Int, 10)
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}
