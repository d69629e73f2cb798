/*
File    : loxgo/internal/interpreter/value.go
*/
package interpreter

import (
	"math"
	"strconv"
)

// Value is the runtime value domain of §3/§4.7: Number, String, Bool,
// Nil, or Callable. Grounded on objects/objects.go's GoMixObject
// interface (GetType/ToString), trimmed to the Kind/String pair this
// spec's five-variant domain needs.
type Value interface {
	Kind() string
	String() string
}

// Number is a double-precision float (§3).
type Number float64

func (Number) Kind() string { return "number" }

// String renders the shortest round-trip decimal per §4.7, with an
// integer-valued number printing without a fractional part.
func (n Number) String() string {
	f := float64(n)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Str is a UTF-8 text value (named Str to avoid colliding with the
// builtin `string` type).
type Str string

func (Str) Kind() string       { return "string" }
func (s Str) String() string   { return string(s) }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() string { return "bool" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the absence of a value.
type Nil struct{}

func (Nil) Kind() string   { return "nil" }
func (Nil) String() string { return "nil" }

// isTruthy implements §4.7: false and nil are falsy, everything else truthy.
func isTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// valuesEqual implements §4.7 equality: same-variant comparison, false
// across variants, numbers/strings/bools by value, nil equals nil.
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return false
	}
}

// isNumber/isStr are small type-switch helpers used by the binary
// operator type checks in interpreter.go.
func isNumber(v Value) (Number, bool) {
	n, ok := v.(Number)
	return n, ok
}

func isStr(v Value) (Str, bool) {
	s, ok := v.(Str)
	return s, ok
}
