/*
File    : loxgo/internal/interpreter/callable.go
*/
package interpreter

import (
	"fmt"
	"time"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
)

// Callable is the uniform protocol of §4.6: arity, call, and a
// human-readable representation (satisfied via Value.String()).
// Grounded on function/function.go's Function type and the native
// builtin shape in eval/evaluator.go's InvokeBuiltin, collapsed into
// one interface since this spec has exactly two implementers.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// UserFunction is a user-defined function value: it owns its Function
// AST node and the environment it closed over at definition time (true
// lexical closures, per the REDESIGN note in spec.md §9 — the call
// frame's parent is the *defining* environment, not the globals).
type UserFunction struct {
	Decl    *ast.FunctionStmt
	Closure *environment.Environment
}

func (f *UserFunction) Kind() string { return "function" }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

func (f *UserFunction) Arity() int {
	return len(f.Decl.Params)
}

// Call creates a fresh environment parented on the closure, binds
// parameters to args, and executes the body. A Return statement inside
// unwinds to here via the returnSignal carried on the error channel.
func (f *UserFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	callEnv := environment.NewChild(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Decl.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return Nil{}, nil
}

// NativeClock is the single built-in native function of §4.6: arity 0,
// returning the current wall-clock time as an integral number of
// seconds since the epoch.
type NativeClock struct{}

func (NativeClock) Kind() string     { return "function" }
func (NativeClock) String() string   { return "<native fn>" }
func (NativeClock) Arity() int       { return 0 }
func (NativeClock) Call(_ *Interpreter, _ []Value) (Value, error) {
	return Number(float64(time.Now().Unix())), nil
}
