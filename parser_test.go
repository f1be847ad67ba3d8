package jsonkit

import (
	"fmt"
	"testing"
)

func TestUnmarshalScalars(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected Value
	}{
		{"null", Null},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"0", Number(0)},
		{"-17", Number(-17)},
		{"3.14", Number(3.14)},
		{"1e10", Number(1e10)},
		{"-1.5e-3", Number(-1.5e-3)},
		{`"hello"`, String("hello")},
		{`"line\nbreak"`, String("line\nbreak")},
		{`"A"`, String("A")},
		{`"\/"`, String("/")},
	} {
		t.Run(test.input, func(t *testing.T) {
			v, err := UnmarshalString(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !v.Equal(test.expected) {
				t.Errorf("expected %v got %v", test.expected, v)
			}
		})
	}
}

func TestUnmarshalSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as a surrogate pair.
	v, err := UnmarshalString("\"\\uD83D\\uDE00\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := v.String()
	if !ok || s != "\U0001F600" {
		t.Errorf("expected grinning face emoji got %q", s)
	}
}

func TestUnmarshalLoneSurrogateIsRejected(t *testing.T) {
	for _, in := range []string{`"\uD800"`, `"\uDC00"`, `"\uD800x"`} {
		_, err := UnmarshalString(in)
		if err == nil {
			t.Fatalf("expected an error for lone surrogate escape in %q", in)
		}
		if err.Kind != KindSyntax {
			t.Errorf("expected KindSyntax for %q, got %v", in, err.Kind)
		}
	}
}

func TestUnmarshalArrayAndObject(t *testing.T) {
	v, err := UnmarshalString(`{"a": [1, 2, 3], "b": {"c": true}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := ObjectOf(
		KV{Key: "a", Val: ArrayOf(Number(1), Number(2), Number(3))},
		KV{Key: "b", Val: ObjectOf(KV{Key: "c", Val: Bool(true)})},
	)
	if !v.Equal(expected) {
		t.Errorf("expected %v got %v", expected, v)
	}
}

func TestUnmarshalDuplicateKeyLastWins(t *testing.T) {
	v, err := UnmarshalString(`{"a": 1, "a": 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := v.Key("a").Number(); !ok || n != 2 {
		t.Errorf("expected last occurrence to win, got %v", n)
	}
}

func TestUnmarshalEmptyCollections(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected Value
	}{
		{"[]", ArrayOf()},
		{"{}", ObjectOf()},
		{"[ ]", ArrayOf()},
		{"{ }", ObjectOf()},
	} {
		t.Run(test.input, func(t *testing.T) {
			v, err := UnmarshalString(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !v.Equal(test.expected) {
				t.Errorf("expected %v got %v", test.expected, v)
			}
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for _, test := range []struct {
		input        string
		expectedKind DiagKind
	}{
		{"", KindEndOfInput},
		{"   ", KindEndOfInput},
		{"{", KindEndOfInput},
		{"[1, 2", KindEndOfInput},
		{"tru", KindSyntax},
		{"01", KindExpectedFound},
		{"-", KindSyntax},
		{"1.", KindSyntax},
		{"1e", KindSyntax},
		{"1e999999999999999999999999", KindSyntax},
		{`"unterminated`, KindEndOfInput},
		{"[1 2]", KindExpectedFound},
		{`{"a" 1}`, KindExpectedFound},
		{"null null", KindExpectedFound},
		{"nul", KindSyntax},
		{`"bad \x escape"`, KindSyntax},
		{"\"a\nb\"", KindSyntax},
	} {
		t.Run(test.input, func(t *testing.T) {
			_, err := UnmarshalString(test.input)
			if err == nil {
				t.Fatalf("expected an error for input %q", test.input)
			}
			if err.Kind != test.expectedKind {
				t.Errorf("expected kind %v got %v (%v)", test.expectedKind, err.Kind, err)
			}
		})
	}
}

func TestUnmarshalMaxDepth(t *testing.T) {
	var deep string
	for i := 0; i < maxDepth+1; i++ {
		deep += "["
	}
	_, err := UnmarshalString(deep)
	if err == nil {
		t.Fatalf("expected an error for input exceeding maximum nesting depth")
	}
	if err.Kind != KindSyntax {
		t.Errorf("expected KindSyntax got %v", err.Kind)
	}
}

func TestDescribeByte(t *testing.T) {
	for _, test := range []struct {
		input    byte
		expected string
	}{
		{0, "end of input"},
		{'a', fmt.Sprintf("%q", 'a')},
	} {
		if got := describeByte(test.input); got != test.expected {
			t.Errorf("expected %v got %v", test.expected, got)
		}
	}
}
