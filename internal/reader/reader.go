// Package reader converts a lexer.Token stream into Scheme expression
// trees via a hand-written recursive-descent parser: the Reader is the
// component the evaluator actually consumes.
package reader

import (
	"strconv"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// Config holds the reader options relevant to parsing.
type Config struct {
	// Dotted, when false, rejects the dotted tail and dotted
	// parameter-list notation. Default true.
	Dotted bool
}

func DefaultConfig() Config { return Config{Dotted: true} }

// Reader reads one Scheme datum at a time from a lexer.Lexer.
type Reader struct {
	lex    *lexer.Lexer
	cfg    Config
	source string
	file   string
}

func New(lex *lexer.Lexer, source, file string, cfg Config) *Reader {
	return &Reader{lex: lex, cfg: cfg, source: source, file: file}
}

func NewDefault(lex *lexer.Lexer, source, file string) *Reader {
	return New(lex, source, file, DefaultConfig())
}

func (r *Reader) errAt(pos lexer.Position, format string, args ...any) error {
	return schemeerr.ParseError(format, args...).WithPos(schemeerr.Position(pos)).WithSource(r.source, r.file)
}

// AtEOF reports whether the underlying token stream is exhausted.
func (r *Reader) AtEOF() bool {
	return r.lex.PeekToken(0).Type == lexer.EOF
}

// ReadProgram reads every top-level datum until EOF.
func (r *Reader) ReadProgram() ([]value.Value, error) {
	var out []value.Value
	for !r.AtEOF() {
		d, err := r.ReadDatum()
		if err != nil {
			return out, err
		}
		if d == nil {
			continue // a consumed datum comment with nothing left
		}
		out = append(out, d)
	}
	return out, nil
}

// ReadDatum reads and returns the next datum. At end of input it returns a
// ParseError ("unexpected end of input"); a datum comment followed only by
// end of input or ')' yields (nil, nil). Returns a ParseError of the
// appropriate sub-kind on malformed input.
func (r *Reader) ReadDatum() (value.Value, error) {
	tok := r.lex.NextToken()
	return r.readFrom(tok)
}

func (r *Reader) readFrom(tok lexer.Token) (value.Value, error) {
	switch tok.Type {
	case lexer.EOF:
		return nil, r.errAt(tok.Pos, "unexpected end of input")
	case lexer.LPAREN:
		return r.readList(tok.Pos)
	case lexer.VECOPEN:
		return r.readVector(tok.Pos)
	case lexer.RPAREN:
		return nil, r.errAt(tok.Pos, "unexpected close parenthesis")
	case lexer.QUOTE:
		return r.readWrapped(tok.Pos, "quote")
	case lexer.QUASIQUOTE:
		return r.readWrapped(tok.Pos, "quasiquote")
	case lexer.UNQUOTE:
		return r.readWrapped(tok.Pos, "unquote")
	case lexer.UNQUOTE_SPLICING:
		return r.readWrapped(tok.Pos, "unquote-splicing")
	case lexer.DATUM_COMMENT:
		if _, err := r.ReadDatum(); err != nil {
			return nil, err
		}
		if next := r.lex.PeekToken(0).Type; next == lexer.EOF || next == lexer.RPAREN {
			return nil, nil
		}
		return r.ReadDatum()
	case lexer.BOOLEAN:
		return readBoolean(tok)
	case lexer.CHARACTER:
		return r.readCharacter(tok)
	case lexer.STRING:
		return value.NewString(tok.Literal), nil
	case lexer.NUMBER:
		return r.readNumber(tok)
	case lexer.SYMBOL:
		return value.Intern(tok.Literal), nil
	case lexer.DOT:
		return nil, r.errAt(tok.Pos, "unexpected '.' outside a list")
	default:
		return nil, r.errAt(tok.Pos, "malformed token %q", tok.Literal)
	}
}

func (r *Reader) readWrapped(pos lexer.Position, sym string) (value.Value, error) {
	inner, err := r.ReadDatum()
	if err != nil {
		return nil, err
	}
	return value.Cons(value.Intern(sym), value.Cons(inner, value.Nil)), nil
}

func readBoolean(tok lexer.Token) (value.Value, error) {
	switch strings.ToLower(tok.Literal) {
	case "#t", "#true":
		return value.True, nil
	case "#f", "#false":
		return value.False, nil
	default:
		return nil, schemeerr.ParseError("malformed boolean literal %q", tok.Literal)
	}
}

func (r *Reader) readCharacter(tok lexer.Token) (value.Value, error) {
	rn, ok := lexer.CharLiteralRune(tok.Literal)
	if !ok {
		return nil, r.errAt(tok.Pos, "malformed character literal %q", tok.Literal)
	}
	return value.NewCharacter(rn), nil
}

func (r *Reader) readNumber(tok lexer.Token) (value.Value, error) {
	lit := tok.Literal
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return value.NewInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, r.errAt(tok.Pos, "malformed number literal %q", lit)
	}
	return value.NewFloat(f), nil
}

// readList implements: List → '(' datum* ['.' datum] ')'.
func (r *Reader) readList(openPos lexer.Position) (value.Value, error) {
	var items []value.Value
	var tail value.Value = value.Nil

	for {
		tok := r.lex.PeekToken(0)
		switch tok.Type {
		case lexer.EOF:
			return nil, r.errAt(openPos, "unterminated list")
		case lexer.RPAREN:
			r.lex.NextToken()
			return buildList(items, tail), nil
		case lexer.DOT:
			if !r.cfg.Dotted {
				return nil, r.errAt(tok.Pos, "dotted pair notation is disabled")
			}
			r.lex.NextToken()
			if len(items) == 0 {
				return nil, r.errAt(tok.Pos, "malformed dotted tail: missing head before '.'")
			}
			d, err := r.ReadDatum()
			if err != nil {
				return nil, err
			}
			tail = d
			closeTok := r.lex.NextToken()
			if closeTok.Type != lexer.RPAREN {
				return nil, r.errAt(closeTok.Pos, "malformed dotted tail: expected ')' after dotted element")
			}
			return buildList(items, tail), nil
		default:
			d, err := r.ReadDatum()
			if err != nil {
				return nil, err
			}
			if d != nil {
				items = append(items, d)
			}
		}
	}
}

func buildList(items []value.Value, tail value.Value) value.Value {
	out := tail
	for i := len(items) - 1; i >= 0; i-- {
		out = value.Cons(items[i], out)
	}
	return out
}

// readVector implements: Vector → '#(' datum* ')'.
func (r *Reader) readVector(openPos lexer.Position) (value.Value, error) {
	var items []value.Value
	for {
		tok := r.lex.PeekToken(0)
		switch tok.Type {
		case lexer.EOF:
			return nil, r.errAt(openPos, "unterminated vector")
		case lexer.RPAREN:
			r.lex.NextToken()
			return value.NewVector(items), nil
		default:
			d, err := r.ReadDatum()
			if err != nil {
				return nil, err
			}
			if d != nil {
				items = append(items, d)
			}
		}
	}
}
