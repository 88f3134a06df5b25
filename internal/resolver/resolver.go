// Package resolver implements the static pass that computes, for every
// variable-reference site, the lexical distance from its use to its
// binding scope, and diagnoses scope/return/this/super misuse before the
// evaluator ever runs.
//
// The resolver walks the AST once, maintaining a stack of block scopes (the
// global scope is never tracked: globals are resolved dynamically at
// runtime) plus current-function and current-class state for diagnosing
// misplaced `return`, `this` and `super`. Its single output is a side table
// keyed by the parser-assigned ast.ID of each Variable/Assign/This/Super
// use-site, mapping it to the number of environment hops from the use site
// to its defining scope. The evaluator consumes that table read-only.
package resolver

import (
	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Locals is the resolver's side table: ast.ID of a use-site to its
// environment-hop distance. A use-site absent from the table is global.
type Locals map[ast.ID]int

// Resolver performs the single static pass described in the package doc.
type Resolver struct {
	reporter *errdiag.Reporter
	locals   Locals
	scopes   []map[string]bool

	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver that reports diagnostics to reporter.
func New(reporter *errdiag.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(Locals)}
}

// Resolve walks stmts and returns the populated side table. Callers should
// check reporter.HadError() afterward; the pipeline refuses to execute if
// any diagnostic occurred.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		// Declared and defined eagerly so the body may refer to itself.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.reporter.ReportAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.reporter.ReportAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.ReportAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	seen := make(map[string]bool, len(s.Methods))
	for _, method := range s.Methods {
		if seen[method.Name.Lexeme] {
			r.reporter.ReportWarning(method.Name, "Method '"+method.Name.Lexeme+"' is already defined in this class; the later declaration wins.")
		}
		seen[method.Name.Lexeme] = true

		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
		return
	case *ast.Literal:
		return
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ReportAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.ReportAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.reporter.ReportAt(e.Keyword, "Can't use 'super' outside of a class.")
			return
		case classClass:
			r.reporter.ReportAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e.ID, e.Keyword)

	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveLocal walks scopes from innermost outward; on the first hit it
// records (id, hop-count) in the side table. A miss leaves id absent from
// the table, meaning it is resolved as a global at evaluation time.
func (r *Resolver) resolveLocal(id ast.ID, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the innermost
// scope. Redeclaring a name already bound in the same non-global scope is a
// diagnostic.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ReportAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
