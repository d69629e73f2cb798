/*
File    : loxgo/internal/astprinter/astprinter_test.go
*/
package astprinter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/astprinter"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/scanner"
)

func printExpr(t *testing.T, src string) string {
	t.Helper()
	sc := scanner.New(src)
	tokens, lexErrs := sc.ScanTokens()
	require.Empty(t, lexErrs)

	p := parser.New(tokens)
	expr := p.ParseExpression()
	require.False(t, p.HasErrors())
	return astprinter.Print(expr)
}

func TestPrint_BinaryPrecedence(t *testing.T) {
	require.Equal(t, "(+ 1.0 (* 2.0 3.0))", printExpr(t, "1 + 2 * 3"))
}

func TestPrint_Grouping(t *testing.T) {
	require.Equal(t, "(group (+ 1.0 2.0))", printExpr(t, "(1 + 2)"))
}

func TestPrint_Unary(t *testing.T) {
	require.Equal(t, "(- 5.0)", printExpr(t, "-5"))
	require.Equal(t, "(! true)", printExpr(t, "!true"))
}

func TestPrint_StringLiteral(t *testing.T) {
	require.Equal(t, `hello`, printExpr(t, `"hello"`))
}

func TestPrint_NilLiteral(t *testing.T) {
	require.Equal(t, "nil", printExpr(t, "nil"))
}

func TestPrint_Variable(t *testing.T) {
	require.Equal(t, "x", printExpr(t, "x"))
}

func TestPrint_ClassicExample(t *testing.T) {
	require.Equal(t, "(* (- 123.0) (group 45.67))", printExpr(t, "-123 * (45.67)"))
}
