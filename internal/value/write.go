package value

import (
	"strconv"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
)

// charNames gives the canonical printed name for runes that have one,
// the printer's half of the named-character literal syntax the lexer
// recognizes.
var charNames = map[rune]string{
	' ':    "space",
	'\n':   "newline",
	'\t':   "tab",
	0:      "null",
	'\b':   "backspace",
	0x7f:   "delete",
	0x1b:   "escape",
	'\r':   "return",
}

// Write renders v the way the `write` primitive does: machine-readable,
// strings quoted and escaped, characters as #\<name-or-char>, symbols
// bracket-escaped when their raw text wouldn't otherwise round-trip through
// the lexer.
func Write(v Value) string {
	var sb strings.Builder
	write(&sb, v, true)
	return sb.String()
}

// Display renders v the way the `display` primitive does: strings and
// characters print their raw content with no read syntax.
func Display(v Value) string {
	var sb strings.Builder
	write(&sb, v, false)
	return sb.String()
}

func write(sb *strings.Builder, v Value, readable bool) {
	switch t := v.(type) {
	case nilType:
		sb.WriteString("()")
	case undefinedType:
		if readable {
			sb.WriteString("#!undefined")
		}
	case *Boolean:
		sb.WriteString(t.String())
	case *Number:
		sb.WriteString(t.String())
	case *Symbol:
		if readable {
			sb.WriteString(writeSymbol(t.Name))
		} else {
			sb.WriteString(t.Name)
		}
	case *String:
		if readable {
			sb.WriteString(quoteString(string(t.Runes)))
		} else {
			sb.WriteString(string(t.Runes))
		}
	case *Character:
		if readable {
			sb.WriteString(writeCharacter(t.Rune))
		} else {
			sb.WriteRune(t.Rune)
		}
	case *Pair:
		writePair(sb, t, readable)
	case *Vector:
		sb.WriteString("#(")
		for i, item := range t.Items {
			if i > 0 {
				sb.WriteString(" ")
			}
			write(sb, item, readable)
		}
		sb.WriteString(")")
	case *Promise:
		sb.WriteString("#[promise]")
	case Callable:
		sb.WriteString(t.String())
	default:
		sb.WriteString(v.String())
	}
}

func writePair(sb *strings.Builder, p *Pair, readable bool) {
	sb.WriteString("(")
	write(sb, p.First, readable)
	rest := p.Rest
	for {
		switch t := rest.(type) {
		case nilType:
			sb.WriteString(")")
			return
		case *Pair:
			sb.WriteString(" ")
			write(sb, t.First, readable)
			rest = t.Rest
		default:
			sb.WriteString(" . ")
			write(sb, rest, readable)
			sb.WriteString(")")
			return
		}
	}
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteString(`"`)
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

func writeCharacter(r rune) string {
	if name, ok := charNames[r]; ok {
		return `#\` + name
	}
	return `#\` + string(r)
}

// writeSymbol is the printer's half of the symbol round-trip: bracket-escape
// the name iff the lexer could not tokenize it back into the same symbol.
func writeSymbol(name string) string {
	if symbolNeedsEscape(name) {
		return "[" + name + "]"
	}
	return name
}

func symbolNeedsEscape(name string) bool {
	if name == "" {
		return true
	}
	for _, r := range name {
		if strings.ContainsRune(lexer.SPECIALS, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '#' {
			return true
		}
	}
	// A symbol whose text would itself lex as a number must be escaped so
	// the reader doesn't mistake it for one on re-read.
	if looksLikeNumber(name) {
		return true
	}
	return false
}

func looksLikeNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
