package scanner_test

import (
	"bytes"
	"testing"

	"github.com/golox-lang/golox/internal/errdiag"
	"github.com/golox-lang/golox/internal/scanner"
	"github.com/golox-lang/golox/internal/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *errdiag.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := errdiag.NewReporter(&buf)
	toks := scanner.New(src, reporter).ScanTokens()
	return toks, reporter
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, reporter := scanAll(t, "(){},.-+;*!!====<<=>>=/")
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}

	want := []token.Kind{
		token.LEFTPAREN, token.RIGHTPAREN, token.LEFTBRACE, token.RIGHTBRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANGEQUAL, token.EQUALEQUAL, token.EQUAL, token.LESS, token.LESSEQUAL,
		token.GREATER, token.GREATEREQUAL, token.SLASH, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanLineComment(t *testing.T) {
	toks, _ := scanAll(t, "1 // a comment\n2")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	if toks[0].Literal.(float64) != 1 || toks[1].Literal.(float64) != 2 {
		t.Fatalf("unexpected literals: %v", toks)
	}
	if toks[1].Line != 2 {
		t.Errorf("expected line 2 after comment, got %d", toks[1].Line)
	}
}

func TestScanString(t *testing.T) {
	toks, reporter := scanAll(t, `"hello world"`)
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}
	if toks[0].Kind != token.STRING || toks[0].Literal != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, reporter := scanAll(t, `"unterminated`)
	if !reporter.HadError() {
		t.Fatalf("expected unterminated string to be reported")
	}
}

func TestScanNumber(t *testing.T) {
	toks, _ := scanAll(t, "123 3.14")
	if toks[0].Literal.(float64) != 123 {
		t.Errorf("got %v", toks[0].Literal)
	}
	if toks[1].Literal.(float64) != 3.14 {
		t.Errorf("got %v", toks[1].Literal)
	}
}

func TestScanIdentifierAndKeywords(t *testing.T) {
	toks, _ := scanAll(t, "foo_bar and class fun while")
	wantKinds := []token.Kind{token.IDENT, token.AND, token.CLASS, token.FUN, token.WHILE, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanUnexpectedCharacterReported(t *testing.T) {
	_, reporter := scanAll(t, "@")
	if !reporter.HadError() {
		t.Fatalf("expected unexpected character to be reported")
	}
}

func TestScanMultilineTracksLine(t *testing.T) {
	toks, _ := scanAll(t, "var a = 1;\nvar b = 2;")
	var lineOfSecondVar int
	for _, tk := range toks {
		if tk.Kind == token.VAR && lineOfSecondVar == 0 && tk.Line == 2 {
			lineOfSecondVar = tk.Line
		}
	}
	if lineOfSecondVar != 2 {
		t.Fatalf("expected second var on line 2, got tokens: %v", toks)
	}
}
