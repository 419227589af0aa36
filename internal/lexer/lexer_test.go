package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTokenBasic(t *testing.T) {
	input := `(define (f x) (+ x 1))`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LPAREN, "("},
		{SYMBOL, "define"},
		{LPAREN, "("},
		{SYMBOL, "f"},
		{SYMBOL, "x"},
		{RPAREN, ")"},
		{LPAREN, "("},
		{SYMBOL, "+"},
		{SYMBOL, "x"},
		{NUMBER, "1"},
		{RPAREN, ")"},
		{RPAREN, ")"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "tests[%d]: type", i)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d]: literal", i)
	}
}

func TestQuoteFamily(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"'x", QUOTE},
		{"`x", QUASIQUOTE},
		{",x", UNQUOTE},
		{",@x", UNQUOTE_SPLICING},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		assert.Equal(t, tt.want, tok.Type, tt.input)
	}
}

func TestVectorOpen(t *testing.T) {
	l := New("#(1 2 3)")
	tok := l.NextToken()
	require.Equal(t, VECOPEN, tok.Type)
	assert.Equal(t, "#(", tok.Literal)
}

func TestBooleans(t *testing.T) {
	l := New("#t #f #true #false")
	for i := 0; i < 4; i++ {
		tok := l.NextToken()
		assert.Equal(t, BOOLEAN, tok.Type)
	}
}

func TestDatumComment(t *testing.T) {
	l := New("#; (ignored) kept")
	tok := l.NextToken()
	require.Equal(t, DATUM_COMMENT, tok.Type)
}

func TestDotToken(t *testing.T) {
	// A standalone dot between whitespace is DOT.
	l := New("(a . b)")
	var types []TokenType
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	assert.Contains(t, types, DOT)
}

func TestDotNotTokenWhenPartOfNumberOrSymbol(t *testing.T) {
	tests := []struct {
		input    string
		wantType TokenType
	}{
		{".5", NUMBER},
		{"...", SYMBOL},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		assert.Equalf(t, tt.wantType, tok.Type, "input=%q", tt.input)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok := l.NextToken()
	require.Equal(t, STRING, tok.Type)
	assert.Equal(t, "a\nb\t\"c\"", tok.Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Contains(t, tok.Literal, "unterminated string")
}

func TestBracketedSymbol(t *testing.T) {
	l := New(`[hello world]`)
	tok := l.NextToken()
	require.Equal(t, SYMBOL, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)
}

func TestUnterminatedBracketedSymbol(t *testing.T) {
	l := New(`[abc`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Contains(t, tok.Literal, "unterminated bracketed symbol")
}

func TestCharacterLiterals(t *testing.T) {
	tests := []struct {
		input    string
		wantRune rune
	}{
		{`#\a`, 'a'},
		{`#\space`, ' '},
		{`#\newline`, '\n'},
		{`#\(`, '('},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		require.Equalf(t, CHARACTER, tok.Type, "input=%q", tt.input)
		r, ok := CharLiteralRune(tok.Literal)
		require.True(t, ok, "input=%q", tt.input)
		assert.Equal(t, tt.wantRune, r, "input=%q", tt.input)
	}
}

func TestMalformedCharacter(t *testing.T) {
	l := New(`#\`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestNumbers(t *testing.T) {
	tests := []string{"123", "-4.5", ".5", "+1", "-1", "1e10", "1.5e-3"}
	for _, in := range tests {
		l := New(in)
		tok := l.NextToken()
		assert.Equalf(t, NUMBER, tok.Type, "input=%q", in)
		assert.Equal(t, in, tok.Literal)
	}
}

func TestNumberLikeSymbolFallsBackToSymbol(t *testing.T) {
	l := New("1abc")
	tok := l.NextToken()
	assert.Equal(t, SYMBOL, tok.Type)
	assert.Equal(t, "1abc", tok.Literal)
}

func TestComments(t *testing.T) {
	l := New("; a comment\n42")
	tok := l.NextToken()
	require.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, "42", tok.Literal)
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	l := New("a b c")
	first := l.PeekToken(0)
	assert.Equal(t, "a", first.Literal)
	second := l.PeekToken(1)
	assert.Equal(t, "b", second.Literal)

	tok := l.NextToken()
	assert.Equal(t, "a", tok.Literal)
	tok = l.NextToken()
	assert.Equal(t, "b", tok.Literal)
	tok = l.NextToken()
	assert.Equal(t, "c", tok.Literal)
}

func TestBOMStripped(t *testing.T) {
	l := New("\xEF\xBB\xBF(a)")
	tok := l.NextToken()
	assert.Equal(t, LPAREN, tok.Type)
	assert.Equal(t, 1, tok.Pos.Column)
}

func TestIllegalStraySpecial(t *testing.T) {
	l := New("]")
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	assert.Equal(t, 1, first.Pos.Line)
	second := l.NextToken()
	assert.Equal(t, 2, second.Pos.Line)
}

func TestTokenTypeStringUnknown(t *testing.T) {
	var tt TokenType = 999
	assert.Equal(t, "TokenType(999)", tt.String())
}
