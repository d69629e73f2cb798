/*
File    : loxgo/internal/replay/replay.go
*/

// Package replay implements the interactive Read-Eval-Print Loop: a
// persistent Interpreter fed one line at a time, with colored output
// and command history. Grounded on repl/repl.go's Repl struct (banner
// fields, chzyer/readline + fatih/color line editing and feedback,
// panic-recovery-wrapped per-line execution), rewritten from go-mix's
// single-expression eval.Evaluator.Eval(rootNode) pipeline onto this
// spec's scan -> parse (program mode) -> interpret pipeline, and from
// panic-based runtime errors onto the typed loxerr.Diagnostic error
// values this spec threads through every stage.
package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/interpreter"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/scanner"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session: banner text plus the prompt shown
// on each line.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with the given display strings.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "Version: %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the main loop: read a line, evaluate it against a single
// Interpreter whose environment persists across lines (so `var`/`fun`
// declarations on one line are visible on the next), print the result
// or diagnostic, and repeat until '.exit' or EOF.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := interpreter.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good Bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good Bye!")
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, interp, line)
	}
}

// evalLine scans and parses line as a program, reporting lexical/parse
// diagnostics in red and continuing the loop on error (the REPL never
// exits on a bad line, unlike file/run mode). A line that is a single
// bare expression without a trailing ';' prints its value, mirroring
// the evaluate subcommand's single-expression convenience.
func (r *Repl) evalLine(w io.Writer, interp *interpreter.Interpreter, line string) {
	sc := scanner.New(line)
	tokens, lexErrs := sc.ScanTokens()
	if len(lexErrs) > 0 {
		for _, d := range lexErrs {
			redColor.Fprintf(w, "%s\n", d.String())
		}
		return
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, d := range p.Errors() {
			redColor.Fprintf(w, "%s\n", d.String())
		}
		return
	}

	// A line that is exactly one bare expression written without a
	// trailing ';' (like evaluate mode) prints its value instead of
	// silently discarding it, since that is the useful REPL behavior.
	// With the ';' it runs as an ordinary statement and prints nothing.
	if len(stmts) == 1 {
		if es, ok := stmts[0].(*ast.ExpressionStmt); ok && len(p.MissingTerminators()) > 0 {
			v, err := interp.EvalExpression(es.Expr)
			if err != nil {
				redColor.Fprintf(w, "%s\n", err.Error())
				return
			}
			yellowColor.Fprintln(w, v.String())
			return
		}
	}

	if err := interp.Interpret(stmts); err != nil {
		redColor.Fprintf(w, "%s\n", err.Error())
		return
	}
}
