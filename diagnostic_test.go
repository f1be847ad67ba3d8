package jsonkit

import (
	"errors"
	"testing"
)

func TestDiagKindString(t *testing.T) {
	for _, test := range []struct {
		input    DiagKind
		expected string
	}{
		{KindIO, "I/O"},
		{KindEndOfInput, "end of input"},
		{KindSyntax, "syntax"},
		{KindExpectedFound, "expected/found"},
		{KindMissingField, "missing field"},
		{KindUnknownField, "unknown field"},
		{KindTypeError, "type error"},
		{KindCustom, "custom"},
		{DiagKind(100), "<unknown>"},
	} {
		if got := test.input.String(); got != test.expected {
			t.Errorf("expected %v got %v", test.expected, got)
		}
	}
}

func TestDiagnosticErrorsIs(t *testing.T) {
	d := MissingFieldErr("name")
	if !errors.Is(d, ErrDiagnostic) {
		t.Errorf("expected errors.Is(d, ErrDiagnostic) to succeed")
	}
}

func TestDiagnosticEqual(t *testing.T) {
	a := TypeErrorf("bad %s", "x")
	b := TypeErrorf("bad %s", "x")
	c := TypeErrorf("bad %s", "y")
	if !a.Equal(b) {
		t.Errorf("expected equal diagnostics with the same message to compare equal")
	}
	if a.Equal(c) {
		t.Errorf("expected diagnostics with different messages to compare unequal")
	}
	var nilDiag *Diagnostic
	if !nilDiag.Equal(nil) {
		t.Errorf("expected two nil diagnostics to compare equal")
	}
	if a.Equal(nil) {
		t.Errorf("expected a non-nil diagnostic to not equal nil")
	}
}

func TestDiagnosticErrorMessages(t *testing.T) {
	for _, test := range []struct {
		name string
		d    *Diagnostic
	}{
		{"missing field", MissingFieldErr("x")},
		{"unknown field", UnknownFieldErr("x")},
		{"type error", TypeErrorf("oops")},
		{"custom", Errorf("oops %d", 5)},
	} {
		t.Run(test.name, func(t *testing.T) {
			if test.d.Error() == "" {
				t.Errorf("expected a non-empty error message")
			}
		})
	}
}
