/*
File    : loxgo/internal/scanner/scanner_test.go
*/
package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, errs := New("(){}*.,+-;/").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.STAR, token.DOT, token.COMMA, token.PLUS, token.MINUS,
		token.SEMICOLON, token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, errs := New("== != <= >= = ! < >").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.EQUAL_EQUAL, token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.EQUAL, token.BANG, token.LESS, token.GREATER, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, errs := New("1 // comment\n2").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	assert.Equal(t, "1.0", toks[0].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_String(t *testing.T) {
	toks, errs := New(`"hello world"`).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
	assert.Equal(t, `"hello world"`, toks[0].Lexeme)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	require.Len(t, errs, 1)
	assert.Equal(t, "[line 1] Error: Unterminated string.", errs[0].Error())
}

func TestScanTokens_NumberCanonicalization(t *testing.T) {
	cases := map[string]string{
		"123":      "123.0",
		"123.456":  "123.456",
		"123.450":  "123.45",
		"123.000":  "123.0",
		"0.1000":   "0.1",
	}
	for src, want := range cases {
		toks, errs := New(src).ScanTokens()
		require.Empty(t, errs)
		require.Len(t, toks, 2)
		assert.Equal(t, want, toks[0].Literal, "lexeme %s", src)
	}
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	toks, errs := New("and class foo_bar").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.AND, token.CLASS, token.IDENTIFIER, token.EOF}, kinds(toks))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, errs := New("@").ScanTokens()
	require.Len(t, errs, 1)
	assert.Equal(t, "[line 1] Error: Unexpected character: @", errs[0].Error())
}

func TestScanTokens_EmptyInput(t *testing.T) {
	toks, errs := New("").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, "EOF  null", toks[0].String())
}
