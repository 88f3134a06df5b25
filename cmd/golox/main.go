// Command golox is a tree-walking interpreter for the Language: a script
// path runs that file; no arguments starts an interactive REPL.
package main

import (
	"os"

	"github.com/golox-lang/golox/cmd/golox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
