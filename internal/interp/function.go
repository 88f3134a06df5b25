package interp

import (
	"fmt"

	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/runtime"
)

// Value is the runtime value type every expression evaluates to.
type Value = runtime.Value

// Callable is implemented by every value that can appear as the callee of a
// Call expression: user functions, native functions, and classes
// (instantiation).
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// NativeFunction wraps a host-implemented primitive, e.g. clock. It can
// never be the result of bind (a static impossibility: bind only closes over
// user functions declared as class methods).
type NativeFunction struct {
	Name string
	Args int
	Fn   func(in *Interpreter, args []Value) (Value, error)
}

func (*NativeFunction) Type() string      { return "native-function" }
func (n *NativeFunction) String() string  { return "<native func>" }
func (n *NativeFunction) Arity() int      { return n.Args }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

// Function is a user-declared function, method, or bound method. Closure is
// the environment captured when the function was declared (for bound
// methods, a fresh environment over the method's original closure holding
// `this`). IsInitializer marks `init` methods, whose call result is always
// the instance rather than an explicit return value.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call invokes the function: a fresh environment is created as a child of
// the closure, parameters are bound to args, and the body runs as a block.
// A non-local return unwinds via returnSignal and supplies the call result;
// otherwise the result is Null. An initializer always yields `this` from its
// own closure, even for a bare `return;`, so that `init` invoked directly
// still produces the instance.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.Declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return runtime.Null, nil
}

// Bind produces a new Function whose closure is a fresh environment, a
// child of f's own closure, containing `this` bound to instance. The
// returned value is a plain callable and may be stored or invoked later
// independent of the instance's continued existence.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// returnSignal is the non-local exit produced by a return statement. It
// implements error purely so it can travel through the same Go error
// channel the evaluator already threads for runtime errors; it is never
// reported and is type-switched back out at the call boundary in
// Function.Call, never escaping past it.
type returnSignal struct {
	value Value
}

func (*returnSignal) Error() string { return "return" }
