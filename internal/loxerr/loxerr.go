/*
File    : loxgo/internal/loxerr/loxerr.go
*/

// Package loxerr collects the three diagnostic taxonomies of §7 of the
// spec — lexical, parse, and runtime errors — behind one small
// accumulate-and-report type, generalizing the teacher's
// Parser.Errors/Evaluator.CreateError convention into a shared shape
// the scanner, parser, and interpreter all report through.
package loxerr

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/token"
)

// Stage identifies which pipeline phase raised a diagnostic, which in
// turn decides the process exit code (§6/§7: lex/parse -> 65, runtime -> 70).
type Stage int

const (
	Lexical Stage = iota
	Parse
	Runtime
)

// Diagnostic is one reported error: its stage, source line, and message.
type Diagnostic struct {
	Stage Stage
	Line  int
	Msg   string
}

// Error implements the error interface so a Diagnostic can be returned
// and propagated like any other Go error (e.g. a Runtime-stage one aborts
// interpretation by being returned up the call stack).
func (d *Diagnostic) Error() string {
	return d.Msg
}

// String renders the diagnostic following the fixed templates of §6.
// Lexical errors use "[line N] Error: MESSAGE"; parse errors use the
// at-token form built by AtToken, and runtime errors the
// "MESSAGE\n[line N]" form built by AtRuntime below.
func (d *Diagnostic) String() string {
	return d.Msg
}

// NewLexical builds a lexical diagnostic ("[line N] Error: MESSAGE").
func NewLexical(line int, format string, args ...any) *Diagnostic {
	msg := fmt.Sprintf("[line %d] Error: %s", line, fmt.Sprintf(format, args...))
	return &Diagnostic{Stage: Lexical, Line: line, Msg: msg}
}

// AtToken builds a parse-stage diagnostic in the "[line N] Error at 'LEX':
// MESSAGE" form, substituting "at end" for an EOF token per §6.
func AtToken(tok token.Token, format string, args ...any) *Diagnostic {
	where := fmt.Sprintf("at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = "at end"
	}
	msg := fmt.Sprintf("[line %d] Error %s: %s", tok.Line, where, fmt.Sprintf(format, args...))
	return &Diagnostic{Stage: Parse, Line: tok.Line, Msg: msg}
}

// AtRuntime builds a runtime-stage diagnostic reported as "MESSAGE\n[line N]"
// per §7 ("printing the message and [line N]").
func AtRuntime(line int, format string, args ...any) *Diagnostic {
	msg := fmt.Sprintf("%s\n[line %d]", fmt.Sprintf(format, args...), line)
	return &Diagnostic{Stage: Runtime, Line: line, Msg: msg}
}

// Reporter accumulates diagnostics across a scan or parse pass instead
// of aborting on the first one, mirroring the teacher's Parser.Errors
// accumulation strategy (report many, then fail once at the end).
type Reporter struct {
	diagnostics []*Diagnostic
}

// Report records a diagnostic.
func (r *Reporter) Report(d *Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// HasErrors reports whether any diagnostic has been recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// All returns every diagnostic recorded so far, in report order.
func (r *Reporter) All() []*Diagnostic {
	return r.diagnostics
}

// HasStage reports whether any recorded diagnostic belongs to stage.
func (r *Reporter) HasStage(stage Stage) bool {
	for _, d := range r.diagnostics {
		if d.Stage == stage {
			return true
		}
	}
	return false
}
