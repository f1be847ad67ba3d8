package codec

import "github.com/mcvoid/jsonkit"

// EncodeSlice encodes a sequence of T as an Array of per-element
// encodes (§4.4).
func EncodeSlice[T any](elems []T, encodeElem func(T) (jsonkit.Value, error)) (jsonkit.Value, error) {
	out := make([]jsonkit.Value, len(elems))
	for i, e := range elems {
		v, err := encodeElem(e)
		if err != nil {
			return jsonkit.Null, err
		}
		out[i] = v
	}
	return jsonkit.ArrayOf(out...), nil
}

// DecodeSlice requires an Array and decodes each element (§4.4).
func DecodeSlice[T any](v jsonkit.Value, decodeElem func(jsonkit.Value) (T, error)) ([]T, error) {
	elems, ok := v.Array()
	if !ok {
		return nil, jsonkit.TypeErrorf("expected array, got %s", v.Kind())
	}
	out := make([]T, len(elems))
	for i, e := range elems {
		d, err := decodeElem(e)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// EncodeMap encodes a string-keyed mapping as an Object of per-value
// encodes. Built-in bodies only supply this for text-like keys (§4.4);
// jsonkit has no facility for a non-string key to serialize itself to
// text, so K is fixed at string here rather than generalized.
func EncodeMap[V any](m map[string]V, encodeVal func(V) (jsonkit.Value, error)) (jsonkit.Value, error) {
	pairs := make([]jsonkit.KV, 0, len(m))
	for k, val := range m {
		v, err := encodeVal(val)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: k, Val: v})
	}
	return jsonkit.ObjectOf(pairs...), nil
}

// DecodeMap requires an Object and decodes each value (§4.4).
func DecodeMap[V any](v jsonkit.Value, decodeVal func(jsonkit.Value) (V, error)) (map[string]V, error) {
	obj, ok := v.Object()
	if !ok {
		return nil, jsonkit.TypeErrorf("expected object, got %s", v.Kind())
	}
	out := make(map[string]V, len(obj))
	for k, val := range obj {
		d, err := decodeVal(val)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}
