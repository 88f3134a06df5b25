package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/interp"
)

func runSource(t *testing.T, src string) (stdout, diagnostics string) {
	t.Helper()
	var out, diag bytes.Buffer
	reporter := errdiag.NewReporter(&diag)
	in := interp.New(&out)
	interp.Run(in, src, reporter)
	return out.String(), diag.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	stdout, diag := runSource(t, `print 1 + 2 * 3 - 4 / 2;`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "5" {
		t.Fatalf("got %q", stdout)
	}
}

func TestStringConcatenation(t *testing.T) {
	stdout, diag := runSource(t, `print "foo" + "bar";`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "foobar" {
		t.Fatalf("got %q", stdout)
	}
}

func TestClosureCounter(t *testing.T) {
	stdout, diag := runSource(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "1\n2" {
		t.Fatalf("got %q", stdout)
	}
}

func TestMethodBinding(t *testing.T) {
	stdout, diag := runSource(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "Hello, " + this.name + "!";
			}
		}
		var g = Greeter("world");
		var greet = g.greet;
		greet();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "Hello, world!" {
		t.Fatalf("got %q", stdout)
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	stdout, diag := runSource(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof!";
			}
		}
		Dog().speak();
	`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "...\nWoof!" {
		t.Fatalf("got %q", stdout)
	}
}

// The canonical resolver-scope-fidelity scenario: a closure created over a
// global `a` must keep printing the global even after a later block-scoped
// shadow of the same name is declared.
func TestClosureKeepsTheScopeItWasCreatedIn(t *testing.T) {
	stdout, diag := runSource(t, `
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
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "global\nglobal" {
		t.Fatalf("got %q", stdout)
	}
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, diag := runSource(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	if !strings.Contains(diag, "Expected 2 arguments but got 1") {
		t.Fatalf("expected arity diagnostic, got %q", diag)
	}
}

func TestPropertyAccessOnNonInstanceIsARuntimeError(t *testing.T) {
	_, diag := runSource(t, `
		var n = 1;
		print n.foo;
	`)
	if !strings.Contains(diag, "Only instances have properties.") {
		t.Fatalf("expected property-access diagnostic, got %q", diag)
	}
}

func TestTopLevelReturnIsAStaticError(t *testing.T) {
	_, diag := runSource(t, `return 1;`)
	if !strings.Contains(diag, "Can't return from top-level code.") {
		t.Fatalf("expected static diagnostic, got %q", diag)
	}
}

func TestDuplicateLocalRedeclarationIsAStaticError(t *testing.T) {
	_, diag := runSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if !strings.Contains(diag, "Already a variable with this name in this scope.") {
		t.Fatalf("expected static diagnostic, got %q", diag)
	}
}

func TestSelfInheritingClassIsAStaticError(t *testing.T) {
	_, diag := runSource(t, `class Oops < Oops {}`)
	if !strings.Contains(diag, "A class can't inherit from itself.") {
		t.Fatalf("expected static diagnostic, got %q", diag)
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, diag := runSource(t, `print undefined;`)
	if !strings.Contains(diag, "Undefined variable 'undefined'.") {
		t.Fatalf("expected runtime diagnostic, got %q", diag)
	}
}

func TestClockIsANativeFunctionOfArityZero(t *testing.T) {
	stdout, diag := runSource(t, `print clock() > 0;`)
	if diag != "" {
		t.Fatalf("unexpected diagnostics: %s", diag)
	}
	if strings.TrimSpace(stdout) != "true" {
		t.Fatalf("got %q", stdout)
	}
}
