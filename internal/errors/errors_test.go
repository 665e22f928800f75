package errors

import (
	"strings"
	"testing"

	"github.com/solidkit/simplex/internal/lexer"
)

func TestFormatWithCaret(t *testing.T) {
	err := At(Undefined, "undefined variable 'x'", lexer.Position{Line: 1, Column: 10}).
		WithSource("test.simplex", "let y = x + 5;")

	out := err.Format(false)
	for _, want := range []string{"Error in test.simplex:1:10", "[Undefined]", "y = x + 5", "^", "undefined variable 'x'"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWithPosDoesNotOverwrite(t *testing.T) {
	inner := At(TypeMismatch, "boom", lexer.Position{Line: 3, Column: 4})
	inner.WithPos(lexer.Position{Line: 99, Column: 99})
	if inner.Pos.Line != 3 {
		t.Fatalf("WithPos overwrote an existing position: %v", inner.Pos)
	}
}

func TestFormatAllMultiple(t *testing.T) {
	errs := []*SimplexError{
		New(Redefined, "x redefined"),
		New(Undefined, "y undefined"),
	}
	out := FormatAll(errs, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Fatalf("expected count header, got: %s", out)
	}
	if !strings.Contains(out, "[1/2]") || !strings.Contains(out, "[2/2]") {
		t.Fatalf("expected indexed markers, got: %s", out)
	}
}

func TestListAccumulates(t *testing.T) {
	var l List
	if !l.Empty() {
		t.Fatal("expected empty list")
	}
	l.Add(New(Analysis, "bad"))
	if l.Empty() {
		t.Fatal("expected non-empty list")
	}
}
