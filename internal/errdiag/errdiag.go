// Package errdiag formats and accumulates the diagnostics produced by the
// scanner, parser, resolver and evaluator, and gates whether a program may
// execute.
//
// Scan, parse and resolve diagnostics are printed immediately as they are
// found and accumulate on a Reporter; the pipeline consults HadError after
// each stage and refuses to run the program if any diagnostic occurred.
// Runtime errors are not accumulated: they propagate as a single Go error
// value up the evaluator's call stack to the top-level driver, which prints
// it and sets HadRuntimeError.
package errdiag

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/internal/token"
)

// Reporter accumulates diagnostics for a single run and decides whether
// execution may proceed.
type Reporter struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates a Reporter that writes formatted diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// HadError reports whether any scan, parse or resolve diagnostic occurred.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error aborted the last execution.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears accumulated state so the Reporter can be reused, e.g. between
// REPL lines.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

// ReportScan reports a scanner diagnostic at the given source line.
func (r *Reporter) ReportScan(line int, message string) {
	r.report(line, "", message)
}

// ReportAt reports a parser or resolver diagnostic anchored to tok. When tok
// is the end-of-file token the location reads " at end"; otherwise it reads
// " at '<lexeme>'".
func (r *Reporter) ReportAt(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	r.report(tok.Line, where, message)
}

// ReportWarning prints a non-fatal diagnostic anchored to tok without
// gating execution: it never sets hadError, unlike ReportAt.
func (r *Reporter) ReportWarning(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	fmt.Fprintf(r.out, "[line %d] Warning%s: %s\n", tok.Line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// ReportRuntime prints a runtime error in the same "[line N] Error: message"
// shape used for static diagnostics and marks the run as having failed at
// runtime.
func (r *Reporter) ReportRuntime(err *RuntimeError) {
	fmt.Fprintf(r.out, "[line %d] Error: %s\n", err.Tok.Line, err.Message)
	r.hadRuntimeError = true
}

// RuntimeError is a fatal error raised while evaluating the AST. It carries
// the offending token so the driver can report its source line.
type RuntimeError struct {
	Tok     token.Token
	Message string
}

// NewRuntimeError creates a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string { return e.Message }
