/*
File    : loxgo/internal/ast/ast.go
*/

// Package ast defines the expression and statement sum types of §3,
// built by the parser and consumed by the interpreter and ast printer
// via type switches rather than a visitor interface (per the REDESIGN
// note in spec.md §9: "no visitor indirection is required"). Grounded
// on the node shape of parser/node.go, simplified from go-mix's
// Node/Accept(visitor) pair down to plain marker-method sum types.
package ast

import "github.com/akashmaji946/loxgo/internal/token"

// Expr is implemented by every expression AST node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement AST node.
type Stmt interface {
	stmtNode()
}

// LiteralKind selects which literal an AST Literal node holds, since
// the payload is always carried as the scanner's textual form (§3).
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitTrue
	LitFalse
	LitNil
)

// Literal is a number/string/true/false/nil constant. Payload is the
// textual form produced by the scanner (the canonical NUMBER literal,
// or the unquoted STRING contents); empty for true/false/nil.
type Literal struct {
	Kind    LiteralKind
	Payload string
}

// Grouping is a parenthesized sub-expression: "(" expression ")".
type Grouping struct {
	Inner Expr
}

// Unary is a prefix operator application: op ∈ {MINUS, BANG}.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix arithmetic/relational/equality application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is a short-circuiting "and"/"or" application.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assign stores Value into the existing binding Name.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Call invokes Callee with Arguments; Paren is the closing ")" token,
// kept for runtime error line reporting on arity mismatches.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}

// ExpressionStmt evaluates Expr, discarding its result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and prints its stringification.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current environment, bound to the
// evaluated Initializer (nil Initializer means "bind to Nil").
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt executes Stmts in a fresh child environment.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt runs Then if Cond is truthy, else Else (which may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt runs Body repeatedly while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a named function; Params are parameter-name
// tokens, Body is the list of statements executed on each call.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt propagates Value (nil meaning Nil) to the enclosing call.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
