package codec

import (
	"testing"

	"github.com/mcvoid/jsonkit"
)

func TestEncodeDecodeSlice(t *testing.T) {
	v, err := EncodeSlice([]int{1, 2, 3}, EncodeInt[int])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsArray() || v.Len() != 3 {
		t.Fatalf("expected a 3-element array, got %v", v)
	}

	got, err := DecodeSlice(v, DecodeInt[int])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("expected [1 2 3] got %v", got)
	}

	if _, err := DecodeSlice(jsonkit.Number(1), DecodeInt[int]); err == nil {
		t.Errorf("expected an error decoding a non-array as a slice")
	}
}

func TestEncodeDecodeMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	v, err := EncodeMap(m, EncodeInt[int])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsObject() {
		t.Fatalf("expected an object, got %v", v)
	}

	got, err := DecodeMap(v, DecodeInt[int])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got["a"] != 1 || got["b"] != 2 {
		t.Errorf("expected map[a:1 b:2] got %v", got)
	}

	if _, err := DecodeMap(jsonkit.Number(1), DecodeInt[int]); err == nil {
		t.Errorf("expected an error decoding a non-object as a map")
	}
}
