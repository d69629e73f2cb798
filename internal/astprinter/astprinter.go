/*
File    : loxgo/internal/astprinter/astprinter.go
*/

// Package astprinter implements the parenthesized s-expression printer
// of §4.3, used by the parse subcommand. Grounded on main/print_visitor.go's
// PrintingVisitor (buffer-based recursive printing), trimmed from a
// general visitor down to expressions only, since the parse mode only
// ever prints expressions: the four rules §4.3 specifies plus forms for
// logical, variable, assignment and call expressions.
package astprinter

import (
	"strings"

	"github.com/akashmaji946/loxgo/internal/ast"
)

// Print renders expr in parenthesized form: "(group <e>)" for groupings,
// "(<op> <r>)" for unary, "(<op> <l> <r>)" for binary, and the literal
// text (or "nil") for literals.
func Print(expr ast.Expr) string {
	var b strings.Builder
	write(&b, expr)
	return b.String()
}

func write(b *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		writeLiteral(b, e)
	case *ast.Grouping:
		parenthesize(b, "group", e.Inner)
	case *ast.Unary:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *ast.Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *ast.Logical:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *ast.Variable:
		b.WriteString(e.Name.Lexeme)
	case *ast.Assign:
		parenthesize(b, "="+e.Name.Lexeme, e.Value)
	case *ast.Call:
		parenthesize(b, "call", append([]ast.Expr{e.Callee}, e.Arguments...)...)
	default:
		b.WriteString("<unknown-expr>")
	}
}

func writeLiteral(b *strings.Builder, lit *ast.Literal) {
	switch lit.Kind {
	case ast.LitNumber, ast.LitString:
		b.WriteString(lit.Payload)
	case ast.LitTrue:
		b.WriteString("true")
	case ast.LitFalse:
		b.WriteString("false")
	case ast.LitNil:
		b.WriteString("nil")
	default:
		b.WriteString("nil")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...ast.Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		write(b, e)
	}
	b.WriteByte(')')
}
