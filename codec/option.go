package codec

import "github.com/mcvoid/jsonkit"

// Option is the carrier realizing "optional of T" (§3, §4.4): a value
// space extended with a distinguished absent value. The generator's
// is_option detection (§4.7) matches this exact shape.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some constructs a present Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool { return o.Valid }

// Get returns o's value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// EncodeOption encodes an absent Option as Null and a present Option as
// encode(inner) (§4.4).
func EncodeOption[T any](o Option[T], encodeInner func(T) (jsonkit.Value, error)) (jsonkit.Value, error) {
	if !o.Valid {
		return jsonkit.Null, nil
	}
	return encodeInner(o.Value)
}

// DecodeOption decodes Null as absent and any other shape as
// present(decode(inner)) (§4.4).
func DecodeOption[T any](v jsonkit.Value, decodeInner func(jsonkit.Value) (T, error)) (Option[T], error) {
	if v.IsNull() {
		return None[T](), nil
	}
	inner, err := decodeInner(v)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(inner), nil
}
