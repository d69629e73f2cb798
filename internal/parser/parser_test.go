/*
File    : loxgo/internal/parser/parser_test.go
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/scanner"
)

func scanAndParse(t *testing.T, src string) *parser.Parser {
	t.Helper()
	sc := scanner.New(src)
	tokens, lexErrs := sc.ScanTokens()
	require.Empty(t, lexErrs)
	return parser.New(tokens)
}

func TestParseExpression_Precedence(t *testing.T) {
	p := scanAndParse(t, "1 + 2 * 3")
	expr := p.ParseExpression()
	require.False(t, p.HasErrors())

	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op.Lexeme)

	_, ok = bin.Right.(*ast.Binary)
	require.True(t, ok, "right operand of + should be the * subexpression")
}

func TestParseProgram_VarDeclaration(t *testing.T) {
	p := scanAndParse(t, `var a = 1;`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	vs, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "a", vs.Name.Lexeme)
	require.NotNil(t, vs.Initializer)
}

func TestParseProgram_ForLoopDesugarsToWhile(t *testing.T) {
	p := scanAndParse(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "for loop should desugar to an outer block")
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok, "first statement should be the initializer")

	_, ok = block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")
}

func TestParseProgram_MissingSemicolonIsRuntimeStage(t *testing.T) {
	p := scanAndParse(t, `print 1 + 2`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), "a missing ';' must not be a Parse-stage error")
	require.Len(t, stmts, 1)
	require.Len(t, p.MissingTerminators(), 1)
}

func TestParseProgram_UnexpectedTokenRecordsParseError(t *testing.T) {
	p := scanAndParse(t, `var = 1;`)
	p.ParseProgram()
	require.True(t, p.HasErrors())
}

func TestParseProgram_InvalidAssignmentTarget(t *testing.T) {
	p := scanAndParse(t, `1 + 2 = 3;`)
	p.ParseProgram()
	require.True(t, p.HasErrors())
	require.Contains(t, p.Errors()[0].String(), "Invalid assignment target.")
}

func TestParseProgram_FunctionDeclaration(t *testing.T) {
	p := scanAndParse(t, `fun add(a, b) { return a + b; }`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
}

func TestParseProgram_PanicModeRecoversAtNextStatement(t *testing.T) {
	p := scanAndParse(t, "var = 1; var b = 2;")
	stmts := p.ParseProgram()
	require.True(t, p.HasErrors())
	require.Len(t, stmts, 1, "recovery should still parse the second declaration")

	vs, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "b", vs.Name.Lexeme)
}
