package ast

import "github.com/golox-lang/golox/internal/token"

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates its expression, stringifies it, and writes a line.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt is a variable declaration, optionally with an initializer.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (*VarStmt) stmtNode() {}

// BlockStmt is `{ ... }`; evaluated in a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Condition  Expr
	Then       Stmt
	ElseBranch Stmt // nil if absent
}

func (*IfStmt) stmtNode() {}

// WhileStmt is `while (cond) body`. `for` is desugared into this at parse
// time (see Parser.forStatement).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// FunctionStmt is a named function or method declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// ReturnStmt is `return [value];`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if bare `return;`
}

func (*ReturnStmt) stmtNode() {}

// ClassStmt is a class declaration with an optional superclass and a list
// of methods (each a FunctionStmt).
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if the class has no superclass
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode() {}
