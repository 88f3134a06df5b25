package interp

import "github.com/golox-lang/golox/internal/runtime"

// Environment is an alias for runtime.Environment so the rest of this
// package can refer to frames without importing runtime everywhere a
// *runtime.Value also appears.
type Environment = runtime.Environment

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return runtime.NewEnvironment()
}

// NewEnclosedEnvironment creates an environment enclosed by outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return runtime.NewEnclosedEnvironment(outer)
}
