/*
File    : loxgo/internal/token/token_test.go
*/
package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/token"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "LEFT_PAREN", token.LEFT_PAREN.String())
	require.Equal(t, "EOF", token.EOF.String())
	require.Equal(t, "IDENTIFIER", token.IDENTIFIER.String())
}

func TestKind_String_OutOfRange(t *testing.T) {
	require.Equal(t, "UNKNOWN", token.Kind(-1).String())
	require.Equal(t, "UNKNOWN", token.Kind(9999).String())
}

func TestToken_String_NoLiteral(t *testing.T) {
	tok := token.New(token.LEFT_PAREN, "(", 1)
	require.Equal(t, "LEFT_PAREN ( null", tok.String())
}

func TestToken_String_WithLiteral(t *testing.T) {
	tok := token.NewLiteral(token.NUMBER, "123", "123.0", 1)
	require.Equal(t, "NUMBER 123 123.0", tok.String())
}

func TestToken_String_EOF(t *testing.T) {
	tok := token.New(token.EOF, "", 1)
	require.Equal(t, "EOF  null", tok.String())
}

func TestKeywords_AllSixteenPresent(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	require.Len(t, token.Keywords, len(want))
	for _, w := range want {
		_, ok := token.Keywords[w]
		require.True(t, ok, "missing keyword %q", w)
	}
}
