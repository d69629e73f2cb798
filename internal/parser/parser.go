/*
File    : loxgo/internal/parser/parser.go
*/

// Package parser implements the recursive-descent parser of §4.2: the
// full expression precedence ladder and statement grammar, with
// panic-mode error recovery. Grounded on the two-token-lookahead shape
// of parser/parser.go's Parser struct (CurrToken/NextToken,
// Errors []string accumulation) but rewritten from go-mix's Pratt
// operator-table dispatch to the literal grammar productions spec.md
// §4.2 pins (one method per rule: equality, comparison, term, factor,
// unary, call, primary).
package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

const maxArgs = 255

// Parser consumes a token slice and produces statements (program mode)
// or a single expression (evaluate mode), collecting diagnostics rather
// than aborting on the first syntax error.
type Parser struct {
	tokens  []token.Token
	current int
	report  loxerr.Reporter
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every syntax diagnostic recorded during the parse
// (Parse-stage only; a missing terminator is tracked separately, see
// MissingTerminators, per the §7/§9 note that it is a runtime-stage
// condition rather than a syntactic one).
func (p *Parser) Errors() []*loxerr.Diagnostic {
	var out []*loxerr.Diagnostic
	for _, d := range p.report.All() {
		if d.Stage == loxerr.Parse {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any Parse-stage diagnostic was recorded.
func (p *Parser) HasErrors() bool {
	return p.report.HasStage(loxerr.Parse)
}

// MissingTerminators returns the Runtime-stage diagnostics recorded for
// missing ';' terminators (§7: "classified as a runtime-stage condition").
func (p *Parser) MissingTerminators() []*loxerr.Diagnostic {
	var out []*loxerr.Diagnostic
	for _, d := range p.report.All() {
		if d.Stage == loxerr.Runtime {
			out = append(out, d)
		}
	}
	return out
}

// ParseProgram parses `program → declaration* EOF` and returns the
// resulting statement list. Parse errors are recorded and panic-mode
// recovery resumes at the next statement boundary so multiple errors
// can surface from one pass.
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseExpression parses a single expression for evaluate mode (§9 Open
// Question: "preserve first-expression semantics" — callers that need
// the full file evaluated should use ParseProgram and take statement 0).
// On a syntax error the diagnostic is recorded (see HasErrors/Errors)
// and nil is returned.
func (p *Parser) ParseExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			expr = nil
		}
	}()
	return p.expression()
}

// --- token stream helpers -------------------------------------------------

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true iff the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected kind, or raises panic-mode recovery
// (caught at the enclosing declaration(), or by ParseExpression) after
// recording a diagnostic.
// A missing ';' is special-cased: §7 classifies it as a runtime-stage
// condition rather than a syntax error, so it is recorded but does NOT
// unwind parsing (see MissingTerminators) — this is the one expect that
// tolerates a missing token and lets parsing continue.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	if kind == token.SEMICOLON {
		p.report.Report(loxerr.AtRuntime(p.peek().Line, "%s", message))
		return p.peek()
	}
	p.errorAt(p.peek(), message)
	panic(parseError{})
}

func (p *Parser) errorAt(tok token.Token, format string, args ...any) {
	p.report.Report(loxerr.AtToken(tok, format, args...))
}

// synchronize implements panic-mode recovery: discard tokens until the
// previous token is ';' or the next token begins a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- declarations ----------------------------------------------------------

// declaration → funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	if p.match(token.FUN) {
		return p.function("function")
	}
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// funDecl → "fun" function
// function → IDENTIFIER "(" parameters? ")" "{" block
func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than %d parameters.", maxArgs)
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl → "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// --- statements --------------------------------------------------------

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block → "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//
// Desugared into: { init; while (cond') { body; inc; } }
// with cond' defaulting to "true" and init omitted for a bare ';'.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Kind: ast.LitTrue}
	}
	body = &ast.WhileStmt{Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{initializer, body}}
	}
	return body
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// --- expressions ---------------------------------------------------------

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | logic_or
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison ( ("!="|"==") comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor ( ("-"|"+") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary ( ("/"|"*") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ( "!"|"-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

// arguments → expression ( "," expression )*  (cap at 255)
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than %d arguments.", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

// primary → "true"|"false"|"nil"|NUMBER|STRING|IDENTIFIER | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Kind: ast.LitFalse}
	case p.match(token.TRUE):
		return &ast.Literal{Kind: ast.LitTrue}
	case p.match(token.NIL):
		return &ast.Literal{Kind: ast.LitNil}
	case p.match(token.NUMBER):
		return &ast.Literal{Kind: ast.LitNumber, Payload: p.previous().Literal}
	case p.match(token.STRING):
		return &ast.Literal{Kind: ast.LitString, Payload: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	p.errorAt(p.peek(), "Expect expression.")
	panic(parseError{})
}

// parseError unwinds the current declaration() call so synchronize()
// can resume parsing at the next statement boundary (panic-mode
// recovery scoped to one declaration, per §4.2).
type parseError struct{}
