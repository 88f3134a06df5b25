// Package interp implements the tree-walking evaluator: given a resolved
// AST it executes statements for effect and evaluates expressions to
// runtime Values, using the environment chain in package runtime for
// scoping and the resolver's side table to resolve local variable
// references in constant time.
package interp

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/golox-lang/golox/internal/resolver"
	"github.com/golox-lang/golox/internal/runtime"
	"github.com/golox-lang/golox/internal/scanner"
	"github.com/golox-lang/golox/internal/token"
)

// Interpreter executes a resolved program. globals is the outermost
// environment and never changes; environment is the frame currently in
// scope and is swapped out for the duration of each block, call and loop
// body.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      resolver.Locals
	out         io.Writer
}

// New creates an Interpreter that writes `print` output to out and
// registers the built-in globals (see builtins.go).
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{globals: globals, environment: globals, out: out}
	registerBuiltins(globals)
	return in
}

// Interpret runs a fully-resolved program, using locals as the side table
// produced by the resolver. A runtime error aborts the remainder of the
// program and is returned to the caller, which is responsible for
// reporting it (see Run, and cmd/golox).
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Run wires the scanner, parser, resolver and evaluator together with the
// Reporter-gating policy: a program with any scan, parse or resolve
// diagnostic is never executed. It returns the statements it parsed (for
// callers that also want to support a `--dump-ast` flag) plus whatever
// runtime error, if any, aborted execution.
func Run(in *Interpreter, source string, reporter *errdiag.Reporter) ([]ast.Stmt, error) {
	tokens := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	if reporter.HadError() {
		return stmts, nil
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError() {
		return stmts, nil
	}

	if err := in.Interpret(stmts, locals); err != nil {
		reporter.ReportRuntime(asRuntimeError(err))
		return stmts, err
	}
	return stmts, nil
}

func asRuntimeError(err error) *errdiag.RuntimeError {
	if re, ok := err.(*errdiag.RuntimeError); ok {
		return re
	}
	return errdiag.NewRuntimeError(token.Token{Line: 0}, "%s", err.Error())
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value = runtime.Null
		if s.Initializer != nil {
			var err error
			value, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		switch {
		case runtime.Truthy(cond):
			return in.execute(s.Then)
		case s.ElseBranch != nil:
			return in.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = runtime.Null
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// executeClass implements the two-phase class-declaration pattern: the
// name is defined up front (as nil) in the current environment, then the
// fully-built *Class is assigned over that binding once its methods and
// superclass are known, so a method body referring to the class by name
// finds the class itself.
func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return errdiag.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, runtime.Null)

	environment := in.environment
	if s.Superclass != nil {
		environment = NewEnclosedEnvironment(in.environment)
		environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       environment,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if s.Superclass != nil {
		environment = environment.Enclosing()
	}
	return environment.Assign(s.Name.Lexeme, class)
}

// executeBlock runs stmts in env, always restoring the interpreter's
// previous environment on every exit path (normal completion, error, or a
// non-local return signal), so a panic-free early return never leaks a
// callee's frame into the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Variable:
		return in.lookupVariable(e.Name, e.ID)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e.ID]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name.Lexeme, value); err != nil {
			return nil, errdiag.NewRuntimeError(e.Name, "%s", err.Error())
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable(e.Keyword, e.ID)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

// lookupVariable consults the resolver's side table first; a miss means
// the reference is global (resolved dynamically, looked up by name every
// time, which is also how forward references to top-level functions work).
func (in *Interpreter) lookupVariable(name token.Token, id ast.ID) (Value, error) {
	if distance, ok := in.locals[id]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	v, err := in.globals.Get(name.Lexeme)
	if err != nil {
		return nil, errdiag.NewRuntimeError(name, "%s", err.Error())
	}
	return v, nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(runtime.Number)
		if !ok {
			return nil, errdiag.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return runtime.Boolean(!runtime.Truthy(right)), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else if !runtime.Truthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, ok := left.(runtime.Number); ok {
			if rn, ok := right.(runtime.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(runtime.String); ok {
			if rs, ok := right.(runtime.String); ok {
				return ls + rs, nil
			}
		}
		return nil, errdiag.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.GREATER:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean(ln > rn), nil
	case token.GREATEREQUAL:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean(ln >= rn), nil
	case token.LESS:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean(ln < rn), nil
	case token.LESSEQUAL:
		ln, rn, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean(ln <= rn), nil
	case token.BANGEQUAL:
		return runtime.Boolean(!runtime.Equal(left, right)), nil
	case token.EQUALEQUAL:
		return runtime.Boolean(runtime.Equal(left, right)), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

func (in *Interpreter) numberOperands(op token.Token, left, right Value) (runtime.Number, runtime.Number, error) {
	ln, lok := left.(runtime.Number)
	rn, rok := right.(runtime.Number)
	if !lok || !rok {
		return 0, 0, errdiag.NewRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errdiag.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, errdiag.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, errdiag.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, errdiag.NewRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, errdiag.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := in.locals[e.ID]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, errdiag.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// literalValue converts a parser/scanner literal payload (nil, bool,
// float64, string) into its runtime.Value representation.
func literalValue(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return runtime.Null
	case bool:
		return runtime.Boolean(v)
	case float64:
		return runtime.Number(v)
	case string:
		return runtime.String(v)
	default:
		panic(fmt.Sprintf("interp: unhandled literal payload %T", v))
	}
}

// stringify renders v the way `print` does: nil is never passed here since
// every expression evaluates to a Value, and Value.String already matches
// the specification's stringification rules for booleans, numbers and
// strings.
func stringify(v Value) string {
	return v.String()
}
