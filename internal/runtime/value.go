// Package runtime implements the Language's primitive runtime values (nil,
// boolean, number, string), the Value interface that every runtime value
// implements, and the environment chain. Callables, classes and instances
// implement Value but live in package interp, because calling them needs
// the interpreter.
package runtime

import "strconv"

// Value is the interface every runtime value implements. The concrete types
// are Nil, Boolean, Number and String here, plus interp's *Function,
// *NativeFunction, *Class and *Instance, matching the Object sum of the
// language specification.
type Value interface {
	// Type returns a short type name used in diagnostics.
	Type() string
	// String returns the value's stringification, as produced by `print`.
	String() string
}

// Nil is the Language's `nil` literal value. There is exactly one value of
// this type; use the Null package-level constant.
type Nil struct{}

// Null is the single Nil value.
var Null = Nil{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Boolean is the Language's boolean value.
type Boolean bool

func (Boolean) Type() string      { return "bool" }
func (b Boolean) String() string  { return strconv.FormatBool(bool(b)) }
func (b Boolean) Bool() bool      { return bool(b) }

// Number is the Language's IEEE-754 double value.
type Number float64

func (Number) Type() string { return "number" }

// String formats the number using the host's default double-to-string
// conversion; a trailing ".0" is not required by the specification and is
// not produced here (mirrors Go's own %g-style shortest representation).
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String is the Language's string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Truthy implements the Language's truthiness rule: nil and false are
// false, everything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal implements the Language's equality rule: nil equals only nil;
// otherwise same-variant structural equality; cross-variant comparisons are
// false. Number equality follows IEEE-754 (NaN != NaN) because it delegates
// to Go's own float64 ==.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case Number:
		bn, ok := b.(Number)
		return ok && a == bn
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	default:
		return a == b
	}
}
