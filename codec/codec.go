// Package codec is the encoder/decoder protocol (§4.4): two capabilities
// over an arbitrary carrier T, plus library-supplied bodies for every
// primitive and standard composite carrier. Generated record and
// tagged-union code (package jsonkit/derive) calls into these functions
// instead of re-deriving range checks and shape checks itself.
package codec

import (
	"fmt"
	"math"

	"github.com/mcvoid/jsonkit"
	"golang.org/x/exp/constraints"
)

// Encoder is implemented by any carrier that knows how to turn itself
// into a jsonkit.Value. Generated record/union types implement this.
type Encoder interface {
	EncodeValue() (jsonkit.Value, error)
}

// Decoder is implemented by any carrier that knows how to populate itself
// from a jsonkit.Value. Generated record/union types implement this on a
// pointer receiver.
type Decoder interface {
	DecodeValue(jsonkit.Value) error
}

// EncodeBool encodes a bool as a Boolean Value.
func EncodeBool(b bool) (jsonkit.Value, error) { return jsonkit.Bool(b), nil }

// DecodeBool decodes a Boolean Value. Any other Kind is a TypeError —
// there is no silent bool/number coercion (§4.4).
func DecodeBool(v jsonkit.Value) (bool, error) {
	b, ok := v.Bool()
	if !ok {
		return false, jsonkit.TypeErrorf("expected bool, got %s", v.Kind())
	}
	return b, nil
}

// EncodeString encodes a string as a String Value.
func EncodeString(s string) (jsonkit.Value, error) { return jsonkit.String(s), nil }

// DecodeString decodes a String Value.
func DecodeString(v jsonkit.Value) (string, error) {
	s, ok := v.String()
	if !ok {
		return "", jsonkit.TypeErrorf("expected string, got %s", v.Kind())
	}
	return s, nil
}

// EncodeFloat encodes a 32- or 64-bit floating carrier as a Number. It
// fails if the value is not finite (§4.4): there is no wire
// representation for Infinity or NaN.
func EncodeFloat[T ~float32 | ~float64](f T) (jsonkit.Value, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return jsonkit.Null, jsonkit.TypeErrorf("cannot encode non-finite float %v", v)
	}
	return jsonkit.Number(v), nil
}

// DecodeFloat decodes any Number into a 32- or 64-bit floating carrier.
// Unlike the integer carriers, any finite Number is accepted (§4.4).
func DecodeFloat[T ~float32 | ~float64](v jsonkit.Value) (T, error) {
	n, ok := v.Number()
	if !ok {
		var zero T
		return zero, jsonkit.TypeErrorf("expected number, got %s", v.Kind())
	}
	return T(n), nil
}

// maxSafeInteger is 2^53-1, the largest integer double-precision floats
// represent exactly. §4.4 requires 64-bit integer carriers to additionally
// respect this bound, both on encode and decode.
const maxSafeInteger = 1<<53 - 1

// EncodeInt encodes a signed integer carrier of any width as a Number. A
// 64-bit value outside [-maxSafeInteger, maxSafeInteger] is a TypeError:
// it cannot round-trip through a float64 (§4.4, §8).
func EncodeInt[T constraints.Signed](n T) (jsonkit.Value, error) {
	v := int64(n)
	if v > maxSafeInteger || v < -maxSafeInteger {
		return jsonkit.Null, jsonkit.TypeErrorf("integer %d exceeds the 2^53-1 double-precision-exact range", v)
	}
	return jsonkit.Number(float64(v)), nil
}

// DecodeInt decodes a Number into a signed integer carrier of width T,
// requiring a zero fractional part and that the value fit in T's range
// (and, since every carrier here is represented as a float64 internally,
// in [-2^53+1, 2^53-1] regardless of T's own width) (§4.4, §8).
func DecodeInt[T constraints.Signed](v jsonkit.Value) (T, error) {
	var zero T
	n, ok := v.Number()
	if !ok {
		return zero, jsonkit.TypeErrorf("expected number, got %s", v.Kind())
	}
	if n != math.Trunc(n) {
		return zero, jsonkit.TypeErrorf("expected integer, got fractional number %v", n)
	}
	if n > maxSafeInteger || n < -maxSafeInteger {
		return zero, jsonkit.TypeErrorf("number %v exceeds the 2^53-1 double-precision-exact range", n)
	}
	i := int64(n)
	lo, hi := intRange[T]()
	if i < lo || i > hi {
		return zero, jsonkit.TypeErrorf("number %d is out of range for %T", i, zero)
	}
	return T(i), nil
}

// EncodeUint encodes an unsigned integer carrier of any width as a
// Number, subject to the same 2^53-1 bound as EncodeInt.
func EncodeUint[T constraints.Unsigned](n T) (jsonkit.Value, error) {
	v := uint64(n)
	if v > maxSafeInteger {
		return jsonkit.Null, jsonkit.TypeErrorf("integer %d exceeds the 2^53-1 double-precision-exact range", v)
	}
	return jsonkit.Number(float64(v)), nil
}

// DecodeUint decodes a Number into an unsigned integer carrier of width T.
func DecodeUint[T constraints.Unsigned](v jsonkit.Value) (T, error) {
	var zero T
	n, ok := v.Number()
	if !ok {
		return zero, jsonkit.TypeErrorf("expected number, got %s", v.Kind())
	}
	if n != math.Trunc(n) {
		return zero, jsonkit.TypeErrorf("expected integer, got fractional number %v", n)
	}
	if n < 0 || n > maxSafeInteger {
		return zero, jsonkit.TypeErrorf("number %v is out of range for %T", n, zero)
	}
	u := uint64(n)
	_, hi := uintRange[T]()
	if u > hi {
		return zero, jsonkit.TypeErrorf("number %d is out of range for %T", u, zero)
	}
	return T(u), nil
}

func intRange[T constraints.Signed]() (lo, hi int64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int64, int:
		return math.MinInt64, math.MaxInt64
	default:
		panic(fmt.Sprintf("codec: unsupported signed integer type %T", zero))
	}
}

func uintRange[T constraints.Unsigned]() (lo, hi uint64) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64, uint:
		return 0, math.MaxUint64
	default:
		panic(fmt.Sprintf("codec: unsupported unsigned integer type %T", zero))
	}
}

// EncodeValueIdentity encodes a jsonkit.Value as itself, the identity
// carrier named in §4.4.
func EncodeValueIdentity(v jsonkit.Value) (jsonkit.Value, error) { return v, nil }

// DecodeValueIdentity decodes a jsonkit.Value as itself.
func DecodeValueIdentity(v jsonkit.Value) (jsonkit.Value, error) { return v, nil }
