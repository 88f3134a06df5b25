package printer_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/golox-lang/golox/internal/printer"
	"github.com/golox-lang/golox/internal/scanner"
)

// TestPrintFixtures snapshot-tests the debug printer's rendering of a
// handful of representative programs, following the teacher's go-snaps
// fixture-testing idiom (internal/interp/fixture_test.go) scaled down to
// this package's much smaller surface.
func TestPrintFixtures(t *testing.T) {
	fixtures := map[string]string{
		"arithmetic_precedence": `print 1 + 2 * 3;`,
		"class_with_superclass": `class Dog < Animal { speak() { super.speak(); } }`,
		"for_loop_desugars":     `for (var i = 0; i < 3; i = i + 1) print i;`,
		"closure":               `fun outer() { var a = 1; fun inner() { return a; } return inner; }`,
	}

	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source := fixtures[name]
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := errdiag.NewReporter(&buf)
			toks := scanner.New(source, reporter).ScanTokens()
			stmts := parser.New(toks, reporter).Parse()
			if reporter.HadError() {
				t.Fatalf("unexpected parse error: %s", buf.String())
			}
			snaps.MatchSnapshot(t, printer.Print(stmts))
		})
	}
}
