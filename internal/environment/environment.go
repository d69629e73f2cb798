/*
File    : loxgo/internal/environment/environment.go
*/

// Package environment implements the lexically nested name→value maps
// of §4.5: define always writes to the innermost scope; get/assign walk
// the enclosing chain. Grounded on scope/scope.go's Scope struct
// (Variables map + Parent pointer, LookUp/Bind/Assign chain-walking),
// trimmed of go-mix's Consts/LetVars/LetTypes bookkeeping since this
// spec's declaration model has only `var` (§3/§4.2).
package environment

import "github.com/akashmaji946/loxgo/internal/loxerr"

// Value is the runtime value type environments hold. Declared as an
// interface alias here (rather than importing the interpreter package,
// which would create an import cycle) and satisfied by
// interpreter.Value.
type Value interface{}

// Environment is one lexical scope: a binding map plus an optional
// pointer to the enclosing scope. The root environment's Enclosing is nil.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// New creates a root environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewChild creates an environment enclosed by parent.
func NewChild(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: parent}
}

// Define unconditionally binds name to value in this environment,
// shadowing any binding of the same name in an enclosing scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get returns the value bound to name in the innermost enclosing scope
// that defines it, or a runtime error if no such binding exists.
func (e *Environment) Get(name string, line int) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line)
	}
	return nil, loxerr.AtRuntime(line, "Undefined variable '%s'.", name)
}

// Assign updates the nearest enclosing binding of name to value, or
// returns a runtime error if no such binding exists anywhere in the chain.
func (e *Environment) Assign(name string, value Value, line int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line)
	}
	return loxerr.AtRuntime(line, "Undefined variable '%s'.", name)
}
