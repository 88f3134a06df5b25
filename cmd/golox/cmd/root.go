package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes, matching the language's own CLI convention: 0 success, 64 a
// usage error, 65 a scan/parse/resolve diagnostic, 70 a runtime error.
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	dumpAST bool
)

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "A tree-walking interpreter for the Language",
	Long: `golox is a tree-walking interpreter for a small, dynamically-typed,
class-based scripting language.

Run with no arguments to start an interactive REPL, or pass a single script
path to execute a file.`,
	Version:       Version,
	Args:          atMostOneScriptArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// atMostOneScriptArg enforces the CLI's exact positional-argument contract:
// more than one script path is a usage error (exit 64), not cobra's
// generic "unknown command" complaint.
func atMostOneScriptArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return &exitError{code: exitUsage}
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

// Execute runs the root command and returns the process exit code, so
// main.go can stay a one-line os.Exit(cmd.Execute()).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if ee, ok := err.(*exitError); ok {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return exitSoftErr
	}
	return exitOK
}

// exitError lets RunE report a specific process exit code without cobra
// printing its own generic error wrapper for cases (scan/parse/resolve or
// runtime failure) that already printed their own diagnostics.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit code %d", e.code) }
