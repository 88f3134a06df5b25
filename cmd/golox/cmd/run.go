package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/interp"
	"github.com/golox-lang/golox/internal/printer"
	"github.com/spf13/cobra"
)

func run(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}

func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	reporter := errdiag.NewReporter(os.Stderr)
	in := interp.New(os.Stdout)

	stmts, runErr := interp.Run(in, string(content), reporter)
	if dumpAST {
		fmt.Fprintln(os.Stderr, "AST:")
		fmt.Fprint(os.Stderr, printer.Print(stmts))
	}

	switch {
	case reporter.HadError():
		return &exitError{code: exitDataErr}
	case runErr != nil || reporter.HadRuntimeError():
		return &exitError{code: exitSoftErr}
	}
	return nil
}

// runPrompt is the REPL: one line of source at a time, against a single
// Interpreter whose global environment persists across lines so earlier
// declarations remain visible, printing "> " and looping until EOF (Ctrl-D).
// A line with a scan/parse/resolve error is reported but does not exit the
// REPL; the reporter is reset before the next line so the session continues.
func runPrompt() error {
	reporter := errdiag.NewReporter(os.Stderr)
	in := interp.New(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		reporter.Reset()
		stmts, _ := interp.Run(in, line, reporter)
		if dumpAST {
			fmt.Fprint(os.Stderr, printer.Print(stmts))
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return nil
}
