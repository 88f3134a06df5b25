// Package ast defines the typed AST produced by the parser and consumed
// read-only by the resolver and evaluator.
//
// Following the Design Note in the language specification, nodes are plain
// structs matched with type switches in the resolver and evaluator rather
// than a classical Visitor hierarchy: adding a pass means adding a function,
// not implementing an interface method per node type.
package ast

import "github.com/golox-lang/golox/internal/token"

// Expr is any node that produces a value.
type Expr interface {
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	stmtNode()
}

// ID is a structural identity assigned by the parser to every resolver
// use-site (Variable, Assign, This, Super). A parser-assigned counter is
// used instead of the token itself so that two identical identifiers on the
// same source line never collide as resolver side-table keys.
type ID int64

// Binary is a binary operator expression, e.g. `a + b`.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is `and`/`or`, which short-circuits and therefore cannot share
// evaluation with Binary.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Unary is a prefix operator expression, e.g. `-a`, `!a`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (*Unary) exprNode() {}

// Grouping is a parenthesized expression, kept as its own node so the
// printer can round-trip parentheses even though precedence already forces
// evaluation order.
type Grouping struct {
	Expression Expr
}

func (*Grouping) exprNode() {}

// Literal is a compile-time constant: Boolean, Number, String, or nil (a nil
// Value field denotes the Language's `nil`).
type Literal struct {
	Value interface{}
}

func (*Literal) exprNode() {}

// Variable is a reference to a named binding. ID is the resolver side-table
// key for this particular use-site.
type Variable struct {
	Name token.Token
	ID   ID
}

func (*Variable) exprNode() {}

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
	ID    ID
}

func (*Assign) exprNode() {}

// Call is `callee(args...)`. Paren is the closing paren token, used to
// anchor arity-mismatch runtime errors to a source line.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Call) exprNode() {}

// Get is `object.name`, a field or method lookup (a method is returned bound
// to the instance).
type Get struct {
	Object Expr
	Name   token.Token
}

func (*Get) exprNode() {}

// Set is `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (*Set) exprNode() {}

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword token.Token
	ID      ID
}

func (*This) exprNode() {}

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
	ID      ID
}

func (*Super) exprNode() {}
