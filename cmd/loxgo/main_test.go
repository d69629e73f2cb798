/*
File    : loxgo/cmd/loxgo/main_test.go
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_TokenizeEmptyInput verifies the empty-input tokenize contract (§6).
func TestRun_TokenizeEmptyInput(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("tokenize", "", &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "EOF  null\n", out.String())
}

// TestRun_TokenizeUnexpectedCharacter covers scenario 6 of §8.
func TestRun_TokenizeUnexpectedCharacter(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("tokenize", "@", &out, &errOut)
	require.Equal(t, exitLexErr, code)
	require.Equal(t, "EOF  null\n", out.String())
	require.Contains(t, errOut.String(), "[line 1] Error: Unexpected character: @")
}

// TestRun_EvaluateArithmetic covers scenario 1 of §8.
func TestRun_EvaluateArithmetic(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("evaluate", "(1 + 2) * 3;", &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "9\n", out.String())
	require.Empty(t, errOut.String())
}

// TestRun_RunStringConcatenation covers scenario 2 of §8.
func TestRun_RunStringConcatenation(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("run", `var a = "foo"; var b = "bar"; print a + b;`, &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "foobar\n", out.String())
}

// TestRun_RunTypeMismatch covers scenario 3 of §8.
func TestRun_RunTypeMismatch(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("run", `print 1 + "x";`, &out, &errOut)
	require.Equal(t, exitDataErr, code)
	require.Contains(t, errOut.String(), "Operands must be two numbers or two strings.")
}

// TestRun_RunBlockScoping covers scenario 4 of §8.
func TestRun_RunBlockScoping(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("run", `var a = 1; { var a = 2; print a; } print a;`, &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "2\n1\n", out.String())
}

// TestRun_RunFibonacci covers scenario 5 of §8.
func TestRun_RunFibonacci(t *testing.T) {
	var out, errOut bytes.Buffer
	src := `fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(6);`
	code := run("run", src, &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "8\n", out.String())
}

// TestRun_ParsePrintsParenthesizedAST exercises the parse subcommand.
func TestRun_ParsePrintsParenthesizedAST(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("parse", `1 + 2 * 3`, &out, &errOut)
	require.Equal(t, exitOK, code)
	require.Equal(t, "(+ 1.0 (* 2.0 3.0))\n", out.String())
}

// TestRun_RunMissingSemicolonIsRuntimeStage exercises the §7/§9 special
// case: a missing ';' in run mode surfaces as a runtime-stage failure
// (exit 70), not a parse failure (exit 65).
func TestRun_RunMissingSemicolonIsRuntimeStage(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("run", `print 1 + 2`, &out, &errOut)
	require.Equal(t, exitDataErr, code)
	require.NotEmpty(t, errOut.String())
}

// TestRun_UnknownSubcommand exercises the default dispatch branch.
func TestRun_UnknownSubcommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("bogus", "1;", &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "Unknown subcommand")
}
