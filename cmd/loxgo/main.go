/*
File    : loxgo/cmd/loxgo/main.go
*/

// Package main is the entry point for the loxgo interpreter. It
// provides four file-driven subcommands (tokenize, parse, evaluate,
// run) plus an interactive repl mode. Grounded on main/main.go's
// argument dispatch (flag-less os.Args switch, --help/--version,
// colored stderr/stdout via fatih/color) generalized from go-mix's
// single-file/REPL split to this spec's four-subcommand contract (§6).
// Output goes straight to os.Stdout/os.Stderr rather than through a
// buffered writer, since §6 requires both streams unbuffered.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/loxgo/internal/astprinter"
	"github.com/akashmaji946/loxgo/internal/interpreter"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/replay"
	"github.com/akashmaji946/loxgo/internal/scanner"
)

const (
	exitOK      = 0
	exitLexErr  = 65
	exitDataErr = 70
)

// VERSION is the interpreter's release string.
var VERSION = "v1.0.0"

// BANNER is the ASCII banner shown at REPL startup.
var BANNER = `
  _
 | |
 | | _____  ____ _  ___
 | |/ _ \ \/ / _\ |/ _ \
 | | (_) >  <  (_) | (_) |
 |_|\___/_/\_\__, |\___/
              __/ |
             |___/
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) < 2 {
		showUsage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp(os.Stdout)
		return
	case "--version", "-v":
		showVersion(os.Stdout)
		return
	case "repl":
		r := replay.New(BANNER, VERSION, LINE, "loxgo >>> ")
		r.Start(os.Stdout)
		return
	}

	if len(os.Args) < 3 {
		showUsage(os.Stderr)
		os.Exit(1)
	}

	subcommand := os.Args[1]
	path := os.Args[2]

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	os.Exit(run(subcommand, string(source), os.Stdout, os.Stderr))
}

// run executes one subcommand over src and returns the process exit
// code (§6): 0 on success, 65 on a lexical/parse failure, 70 on a
// runtime failure.
func run(subcommand, src string, stdout, stderr io.Writer) int {
	sc := scanner.New(src)
	tokens, lexErrs := sc.ScanTokens()

	if subcommand == "tokenize" {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok.String())
		}
		if len(lexErrs) > 0 {
			printDiagnostics(stderr, lexErrs)
			return exitLexErr
		}
		return exitOK
	}

	hadLexErr := len(lexErrs) > 0
	if hadLexErr {
		printDiagnostics(stderr, lexErrs)
	}

	switch subcommand {
	case "parse":
		p := parser.New(tokens)
		expr := p.ParseExpression()
		if hadLexErr || p.HasErrors() {
			printDiagnostics(stderr, p.Errors())
			return exitLexErr
		}
		fmt.Fprintln(stdout, astprinter.Print(expr))
		return exitOK

	case "evaluate":
		p := parser.New(tokens)
		expr := p.ParseExpression()
		if hadLexErr || p.HasErrors() {
			printDiagnostics(stderr, p.Errors())
			return exitLexErr
		}
		interp := interpreter.New(stdout)
		value, err := interp.EvalExpression(expr)
		if err != nil {
			redColor.Fprintf(stderr, "%s\n", err.Error())
			return exitDataErr
		}
		fmt.Fprintln(stdout, value.String())
		return exitOK

	case "run":
		p := parser.New(tokens)
		stmts := p.ParseProgram()
		if hadLexErr || p.HasErrors() {
			printDiagnostics(stderr, p.Errors())
			return exitLexErr
		}
		if missing := p.MissingTerminators(); len(missing) > 0 {
			printDiagnostics(stderr, missing)
			return exitDataErr
		}
		interp := interpreter.New(stdout)
		if err := interp.Interpret(stmts); err != nil {
			redColor.Fprintf(stderr, "%s\n", err.Error())
			return exitDataErr
		}
		return exitOK

	default:
		redColor.Fprintf(stderr, "Unknown subcommand %q.\n", subcommand)
		return 1
	}
}

func printDiagnostics(w io.Writer, diags []*loxerr.Diagnostic) {
	for _, d := range diags {
		redColor.Fprintf(w, "%s\n", d.String())
	}
}

func showUsage(w io.Writer) {
	redColor.Fprintln(w, "Usage: loxgo <tokenize|parse|evaluate|run> <path> | loxgo repl | loxgo --help")
}

func showHelp(w io.Writer) {
	cyanColor.Fprintln(w, "loxgo - a tree-walking interpreter for a small Lox-family language")
	cyanColor.Fprintln(w, "")
	cyanColor.Fprintln(w, "USAGE:")
	yellowColor.Fprintln(w, "  loxgo tokenize <path>     Print the token stream for a source file")
	yellowColor.Fprintln(w, "  loxgo parse <path>        Print the parenthesized AST of a single expression")
	yellowColor.Fprintln(w, "  loxgo evaluate <path>     Evaluate a single expression and print its value")
	yellowColor.Fprintln(w, "  loxgo run <path>          Execute a full program")
	yellowColor.Fprintln(w, "  loxgo repl                Start an interactive session")
	yellowColor.Fprintln(w, "  loxgo --help              Display this help message")
	yellowColor.Fprintln(w, "  loxgo --version           Display version information")
}

func showVersion(w io.Writer) {
	cyanColor.Fprintf(w, "loxgo %s\n", VERSION)
}
