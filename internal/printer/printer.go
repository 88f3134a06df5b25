// Package printer renders an AST back to a Lisp-style parenthesized text
// form. It exists purely for debugging (the CLI's --dump-ast flag) and is
// never consulted by the resolver or evaluator, mirroring the teacher's use
// of a pretty-printer as a debug-only external collaborator to the core
// pipeline.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golox-lang/golox/internal/ast"
)

// PrintExpr renders a single expression.
func PrintExpr(expr ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

// Print renders a statement list, one statement per line.
func Print(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		writeStmt(&b, s)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeExpr(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("nil")
	case *ast.Literal:
		b.WriteString(literalText(n.Value))
	case *ast.Grouping:
		parenthesize(b, "group", n.Expression)
	case *ast.Unary:
		parenthesize(b, n.Op.Lexeme, n.Right)
	case *ast.Binary:
		parenthesize(b, n.Op.Lexeme, n.Left, n.Right)
	case *ast.Logical:
		parenthesize(b, n.Op.Lexeme, n.Left, n.Right)
	case *ast.Variable:
		b.WriteString(n.Name.Lexeme)
	case *ast.Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *ast.Call:
		parenthesize(b, "call", append([]ast.Expr{n.Callee}, n.Args...)...)
	case *ast.Get:
		parenthesize(b, "get-"+n.Name.Lexeme, n.Object)
	case *ast.Set:
		parenthesize(b, "set-"+n.Name.Lexeme, n.Object, n.Value)
	case *ast.This:
		b.WriteString("this")
	case *ast.Super:
		b.WriteString("(super." + n.Method.Lexeme + ")")
	default:
		fmt.Fprintf(b, "<unknown expr %T>", n)
	}
}

func literalText(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...ast.Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}

func writeStmt(b *strings.Builder, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		writeExpr(b, n.Expression)
	case *ast.PrintStmt:
		parenthesize(b, "print", n.Expression)
	case *ast.VarStmt:
		if n.Initializer != nil {
			parenthesize(b, "var "+n.Name.Lexeme, n.Initializer)
		} else {
			fmt.Fprintf(b, "(var %s)", n.Name.Lexeme)
		}
	case *ast.BlockStmt:
		b.WriteString("(block")
		for _, s := range n.Statements {
			b.WriteByte(' ')
			writeStmt(b, s)
		}
		b.WriteByte(')')
	case *ast.IfStmt:
		b.WriteString("(if ")
		writeExpr(b, n.Condition)
		b.WriteByte(' ')
		writeStmt(b, n.Then)
		if n.ElseBranch != nil {
			b.WriteByte(' ')
			writeStmt(b, n.ElseBranch)
		}
		b.WriteByte(')')
	case *ast.WhileStmt:
		b.WriteString("(while ")
		writeExpr(b, n.Condition)
		b.WriteByte(' ')
		writeStmt(b, n.Body)
		b.WriteByte(')')
	case *ast.FunctionStmt:
		fmt.Fprintf(b, "(fun %s)", n.Name.Lexeme)
	case *ast.ReturnStmt:
		if n.Value != nil {
			parenthesize(b, "return", n.Value)
		} else {
			b.WriteString("(return)")
		}
	case *ast.ClassStmt:
		fmt.Fprintf(b, "(class %s)", n.Name.Lexeme)
	default:
		fmt.Fprintf(b, "<unknown stmt %T>", n)
	}
}
