package jsonkit

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// valueComparer lets cmp.Diff compare Values structurally via Equal
// instead of panicking on their unexported fields.
var valueComparer = cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })

func TestKindString(t *testing.T) {
	for _, test := range []struct {
		input    Kind
		expected string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(100), "<unknown>"},
		{Kind(-1), "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestConstructorsAndAccessors(t *testing.T) {
	if k := Null.Kind(); k != KindNull {
		t.Errorf("expected KindNull got %v", k)
	}
	if !Null.IsNull() {
		t.Errorf("expected Null.IsNull() true")
	}

	b := Bool(true)
	if got, ok := b.Bool(); !ok || got != true {
		t.Errorf("expected (true, true) got (%v, %v)", got, ok)
	}
	if _, ok := b.Number(); ok {
		t.Errorf("expected Number() to fail on a Bool")
	}

	n := Number(3.5)
	if got, ok := n.Number(); !ok || got != 3.5 {
		t.Errorf("expected (3.5, true) got (%v, %v)", got, ok)
	}

	s := String("hi")
	if got, ok := s.String(); !ok || got != "hi" {
		t.Errorf("expected (hi, true) got (%v, %v)", got, ok)
	}
}

func TestArrayOf(t *testing.T) {
	a := ArrayOf(Number(1), Number(2), Number(3))
	if !a.IsArray() {
		t.Fatalf("expected array")
	}
	if a.Len() != 3 {
		t.Errorf("expected length 3 got %d", a.Len())
	}
	if n, ok := a.Index(1).Number(); !ok || n != 2 {
		t.Errorf("expected index 1 to be 2 got %v", n)
	}
	if got := a.Index(99); !got.IsNull() {
		t.Errorf("expected out-of-range index to yield Null, got %v", got)
	}
}

func TestObjectOfLastWriteWins(t *testing.T) {
	o := ObjectOf(KV{Key: "a", Val: Number(1)}, KV{Key: "a", Val: Number(2)})
	if o.Len() != 1 {
		t.Fatalf("expected one member after duplicate key, got %d", o.Len())
	}
	if n, ok := o.Key("a").Number(); !ok || n != 2 {
		t.Errorf("expected last write to win: got %v", n)
	}
}

func TestKeyOnNonObject(t *testing.T) {
	if got := Number(1).Key("x"); !got.IsNull() {
		t.Errorf("expected Key on a non-object to yield Null, got %v", got)
	}
}

func TestEqual(t *testing.T) {
	for _, test := range []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"null==null", Null, Null, true},
		{"bool match", Bool(true), Bool(true), true},
		{"bool mismatch", Bool(true), Bool(false), false},
		{"kind mismatch", Bool(true), Number(1), false},
		{"array order matters", ArrayOf(Number(1), Number(2)), ArrayOf(Number(2), Number(1)), false},
		{
			"object order doesn't matter",
			ObjectOf(KV{Key: "a", Val: Number(1)}, KV{Key: "b", Val: Number(2)}),
			ObjectOf(KV{Key: "b", Val: Number(2)}, KV{Key: "a", Val: Number(1)}),
			true,
		},
		{
			"nested mismatch",
			ObjectOf(KV{Key: "a", Val: ArrayOf(Number(1))}),
			ObjectOf(KV{Key: "a", Val: ArrayOf(Number(2))}),
			false,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.expected {
				t.Errorf("expected %v got %v", test.expected, got)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := ArrayOf(ObjectOf(KV{Key: "a", Val: Number(1)}))
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone, valueComparer); diff != "" {
		t.Fatalf("clone should be structurally equal to original (-want +got):\n%s", diff)
	}

	arr, _ := orig.Array()
	arr[0] = Null
	if diff := cmp.Diff(clone, orig, valueComparer); diff != "" {
		t.Errorf("mutating a copy returned by Array() should not affect the original (-want +got):\n%s", diff)
	}
}

func TestKeysAndObject(t *testing.T) {
	o := ObjectOf(KV{Key: "a", Val: Number(1)}, KV{Key: "b", Val: Number(2)})
	keys := o.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys got %d", len(keys))
	}
	m, ok := o.Object()
	if !ok {
		t.Fatalf("expected Object() to succeed")
	}
	if len(m) != 2 {
		t.Errorf("expected map of length 2 got %d", len(m))
	}
}
