/*
File    : loxgo/internal/interpreter/interpreter.go
*/

// Package interpreter implements the tree-walking evaluator of §4.4:
// a statement executor and an expression evaluator sharing a single
// Interpreter that owns the current environment and a pointer to the
// globals, plus the Value/Callable protocols of §4.6/§4.7. Grounded on
// eval/evaluator.go's Evaluator struct (current scope + io.Writer sink)
// and eval/eval_expressions.go / eval/eval_statements.go / eval/eval_controls.go
// for the statement/expression dispatch shape, rewritten from go-mix's
// GoMixObject domain onto this spec's five-variant Value domain and
// from go-mix's panic/recover builtin error style onto typed error
// returns threaded through every Exec/Eval call, per spec.md §9's
// "explicit diagnostics... and an error-typed return channel" guidance.
package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

// Interpreter threads the current environment through statement
// execution and expression evaluation. Globals is bound once at
// construction and always carries the native `clock` binding (§3 invariant).
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Stdout  io.Writer
}

// New creates an Interpreter writing Print output to stdout, with the
// global environment pre-populated with the native clock function.
func New(stdout io.Writer) *Interpreter {
	globals := environment.New()
	globals.Define("clock", NativeClock{})
	return &Interpreter{Globals: globals, env: globals, Stdout: stdout}
}

// Interpret executes a full program (run mode, §4.4/§6).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

// EvalExpression evaluates a single top-level expression (evaluate
// mode, §6) and returns its value without stringifying it.
func (in *Interpreter) EvalExpression(expr ast.Expr) (Value, error) {
	return in.eval(expr)
}

// --- statement execution ---------------------------------------------

func (in *Interpreter) exec(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(st.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.eval(st.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var value Value = Nil{}
		if st.Initializer != nil {
			v, err := in.eval(st.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(st.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(st.Stmts, environment.NewChild(in.env))

	case *ast.IfStmt:
		cond, err := in.eval(st.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.exec(st.Then)
		} else if st.Else != nil {
			return in.exec(st.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(st.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.exec(st.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &UserFunction{Decl: st, Closure: in.env}
		in.env.Define(st.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = Nil{}
		if st.Value != nil {
			v, err := in.eval(st.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", s)
	}
}

// executeBlock runs stmts in env, restoring the previous environment
// when done — including along the non-local exit path of a return
// (§4.4 Block semantics), since the defer always runs.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

// --- expression evaluation ------------------------------------------

func (in *Interpreter) eval(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return evalLiteral(ex)

	case *ast.Grouping:
		return in.eval(ex.Inner)

	case *ast.Unary:
		return in.evalUnary(ex)

	case *ast.Binary:
		return in.evalBinary(ex)

	case *ast.Logical:
		return in.evalLogical(ex)

	case *ast.Variable:
		v, err := in.env.Get(ex.Name.Lexeme, ex.Name.Line)
		if err != nil {
			return nil, err
		}
		return v.(Value), nil

	case *ast.Assign:
		value, err := in.eval(ex.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(ex.Name.Lexeme, value, ex.Name.Line); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(ex)

	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", e)
	}
}

func evalLiteral(lit *ast.Literal) (Value, error) {
	switch lit.Kind {
	case ast.LitNumber:
		f, err := strconv.ParseFloat(lit.Payload, 64)
		if err != nil {
			return nil, fmt.Errorf("interpreter: malformed number literal %q", lit.Payload)
		}
		return Number(f), nil
	case ast.LitString:
		return Str(lit.Payload), nil
	case ast.LitTrue:
		return Bool(true), nil
	case ast.LitFalse:
		return Bool(false), nil
	case ast.LitNil:
		return Nil{}, nil
	default:
		return Nil{}, nil
	}
}

func (in *Interpreter) evalUnary(ex *ast.Unary) (Value, error) {
	right, err := in.eval(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Op.Kind {
	case token.MINUS:
		n, ok := isNumber(right)
		if !ok {
			return nil, loxerr.AtRuntime(ex.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Bool(!isTruthy(right)), nil
	default:
		return nil, fmt.Errorf("interpreter: unhandled unary operator %s", ex.Op.Kind)
	}
}

func (in *Interpreter) evalLogical(ex *ast.Logical) (Value, error) {
	left, err := in.eval(ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(ex.Right)
}

func (in *Interpreter) evalBinary(ex *ast.Binary) (Value, error) {
	left, err := in.eval(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.EQUAL_EQUAL:
		return Bool(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return Bool(!valuesEqual(left, right)), nil

	case token.PLUS:
		if ln, lok := isNumber(left); lok {
			if rn, rok := isNumber(right); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := isStr(left); lok {
			if rs, rok := isStr(right); rok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.AtRuntime(ex.Op.Line, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := isNumber(left)
		rn, rok := isNumber(right)
		if !lok || !rok {
			return nil, loxerr.AtRuntime(ex.Op.Line, "Operands must be numbers.")
		}
		switch ex.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.GREATER:
			return Bool(ln > rn), nil
		case token.GREATER_EQUAL:
			return Bool(ln >= rn), nil
		case token.LESS:
			return Bool(ln < rn), nil
		case token.LESS_EQUAL:
			return Bool(ln <= rn), nil
		}
	}
	return nil, fmt.Errorf("interpreter: unhandled binary operator %s", ex.Op.Kind)
}

func (in *Interpreter) evalCall(ex *ast.Call) (Value, error) {
	callee, err := in.eval(ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(ex.Arguments))
	for i, a := range ex.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.AtRuntime(ex.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, loxerr.AtRuntime(ex.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}
