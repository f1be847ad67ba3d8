package jsonkit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalCompact(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    Value
		expected string
	}{
		{"null", Null, "null"},
		{"true", Bool(true), "true"},
		{"number", Number(42), "42"},
		{"string", String("hi"), `"hi"`},
		{"empty array", ArrayOf(), "[]"},
		{"empty object", ObjectOf(), "{}"},
		{"array", ArrayOf(Number(1), Number(2)), "[1, 2]"},
		{"object", ObjectOf(KV{Key: "a", Val: Number(1)}), `{"a": 1}`},
		{"escape", String("a\"b\\c\nd"), `"a\"b\\c\nd"`},
		{"slash not escaped", String("a/b"), `"a/b"`},
	} {
		t.Run(test.name, func(t *testing.T) {
			out, err := Marshal(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != test.expected {
				t.Errorf("expected %q got %q", test.expected, string(out))
			}
		})
	}
}

func TestMarshalObjectKeySortedOrder(t *testing.T) {
	v := ObjectOf(KV{Key: "b", Val: Number(2)}, KV{Key: "a", Val: Number(1)})
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"a": 1, "b": 2}`
	if string(out) != expected {
		t.Errorf("expected %q got %q", expected, string(out))
	}
}

func TestMarshalRejectsNonFiniteNumber(t *testing.T) {
	_, err := Marshal(Number(math.Inf(1)))
	if err == nil {
		t.Fatalf("expected an error encoding +Inf")
	}
}

func TestMarshalIndent(t *testing.T) {
	v := ObjectOf(KV{Key: "a", Val: ArrayOf(Number(1), Number(2))})
	out, err := MarshalIndent(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if string(out) != expected {
		t.Errorf("expected %q got %q", expected, string(out))
	}
}

func TestMarshalIndentEmptyCollections(t *testing.T) {
	v := ObjectOf(KV{Key: "a", Val: ArrayOf()}, KV{Key: "b", Val: ObjectOf()})
	out, err := MarshalIndent(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "{\n  \"a\": [],\n  \"b\": {}\n}"
	if string(out) != expected {
		t.Errorf("expected %q got %q", expected, string(out))
	}
}

func TestMarshalRoundTripsThroughUnmarshal(t *testing.T) {
	original := ObjectOf(
		KV{Key: "name", Val: String("Ada")},
		KV{Key: "tags", Val: ArrayOf(String("x"), String("y"))},
		KV{Key: "active", Val: Bool(true)},
		KV{Key: "score", Val: Number(3.5)},
		KV{Key: "meta", Val: Null},
	)
	compact, err := Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, derr := Unmarshal(compact)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if diff := cmp.Diff(original, decoded, valueComparer); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	pretty, err := MarshalIndent(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decodedPretty, derr := Unmarshal(pretty)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if diff := cmp.Diff(original, decodedPretty, valueComparer); diff != "" {
		t.Errorf("pretty round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteQuotedStringEscapesControlChars(t *testing.T) {
	out, err := Marshal(String("\x01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `"\u0001"`
	if string(out) != expected {
		t.Errorf("expected %q got %q", expected, string(out))
	}
}
