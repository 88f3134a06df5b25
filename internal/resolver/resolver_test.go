package resolver_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/golox-lang/golox/internal/resolver"
	"github.com/golox-lang/golox/internal/scanner"
)

func resolve(t *testing.T, src string) (resolver.Locals, *errdiag.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := errdiag.NewReporter(&buf)
	toks := scanner.New(src, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse error: %s", buf.String())
	}
	locals := resolver.New(reporter).Resolve(stmts)
	return locals, reporter
}

// The canonical scope-fidelity scenario: a block-scoped shadow of a global
// must resolve to the environment in place when the closure was created,
// not the one in place when it is later called.
func TestResolveScopeFidelityAcrossClosureCreation(t *testing.T) {
	locals, reporter := resolve(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve error")
	}
	// The `a` inside showA is the first use-site the parser stamps (ID 1) and
	// must stay global, i.e. absent; the two showA() calls (IDs 2 and 3)
	// resolve to the enclosing block at distance 0.
	want := resolver.Locals{2: 0, 3: 0}
	if !reflect.DeepEqual(locals, want) {
		t.Fatalf("expected the reference to a to stay global, got %#v, want %#v", locals, want)
	}
}

func TestResolveDuplicateLocalInSameScopeIsAnError(t *testing.T) {
	_, reporter := resolve(t, `
		{
			var a = "first";
			var a = "second";
		}
	`)
	if !reporter.HadError() {
		t.Fatalf("expected duplicate local declaration to be reported")
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	_, reporter := resolve(t, `return 1;`)
	if !reporter.HadError() {
		t.Fatalf("expected top-level return to be reported")
	}
}

func TestResolveReturnValueFromInitializerIsAnError(t *testing.T) {
	_, reporter := resolve(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	if !reporter.HadError() {
		t.Fatalf("expected value-returning initializer to be reported")
	}
}

func TestResolveSelfInheritanceIsAnError(t *testing.T) {
	_, reporter := resolve(t, `class Oops < Oops {}`)
	if !reporter.HadError() {
		t.Fatalf("expected self-inheritance to be reported")
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, reporter := resolve(t, `print this;`)
	if !reporter.HadError() {
		t.Fatalf("expected bare 'this' to be reported")
	}
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, reporter := resolve(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`)
	if !reporter.HadError() {
		t.Fatalf("expected 'super' in a class with no superclass to be reported")
	}
}

func TestResolveReadOwnInitializerIsAnError(t *testing.T) {
	_, reporter := resolve(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	if !reporter.HadError() {
		t.Fatalf("expected reading a local in its own initializer to be reported")
	}
}

func TestResolveDuplicateMethodNameIsAWarningNotAnError(t *testing.T) {
	_, reporter := resolve(t, `
		class Foo {
			bar() { print 1; }
			bar() { print 2; }
		}
	`)
	if reporter.HadError() {
		t.Fatalf("duplicate method name must not gate execution")
	}
}
