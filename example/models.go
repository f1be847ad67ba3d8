// Package example holds a small record and tagged union written the way
// derive.Generate would emit them (see derive/generate_record.go and
// derive/generate_union.go), used to exercise the scenarios of spec §8
// end to end. In a real consumer these EncodeValue/DecodeValue/Encode*/
// Decode* bodies would never be hand-written; they would come out of
// derive's Generator.Generate run over the //jsonkit:record and
// //jsonkit:variant declarations below.
package example

import (
	"github.com/mcvoid/jsonkit"
	"github.com/mcvoid/jsonkit/codec"
)

// Person is spec §8 scenario 2/3: a record with a renamed optional field
// and a skipped field.
//
//jsonkit:record
type Person struct {
	Name       string                `wire:"name"`
	Age        uint32                `wire:"age"`
	IsActive   bool                  `wire:"is_active"`
	Email      codec.Option[string]  `wire:"emailAddress"`
	InternalID codec.Option[uint64]  `wire:"_internal_id,skip"`
}

func (v Person) EncodeValue() (jsonkit.Value, error) {
	pairs := make([]jsonkit.KV, 0, 4)
	{
		val, err := codec.EncodeString(v.Name)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: "name", Val: val})
	}
	{
		val, err := codec.EncodeUint[uint32](v.Age)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: "age", Val: val})
	}
	{
		val, err := codec.EncodeBool(v.IsActive)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: "is_active", Val: val})
	}
	{
		val, err := codec.EncodeOption(v.Email, codec.EncodeString)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: "emailAddress", Val: val})
	}
	// InternalID carries skip: it never reaches the wire.
	return jsonkit.ObjectOf(pairs...), nil
}

func (v *Person) DecodeValue(val jsonkit.Value) error {
	obj, ok := val.Object()
	if !ok {
		return jsonkit.TypeErrorf("expected object for Person, got %s", val.Kind())
	}
	if fv, present := obj["name"]; present {
		decoded, err := codec.DecodeString(fv)
		if err != nil {
			return err
		}
		v.Name = decoded
	} else {
		return jsonkit.MissingFieldErr("name")
	}
	if fv, present := obj["age"]; present {
		decoded, err := codec.DecodeUint[uint32](fv)
		if err != nil {
			return err
		}
		v.Age = decoded
	} else {
		return jsonkit.MissingFieldErr("age")
	}
	if fv, present := obj["is_active"]; present {
		decoded, err := codec.DecodeBool(fv)
		if err != nil {
			return err
		}
		v.IsActive = decoded
	} else {
		return jsonkit.MissingFieldErr("is_active")
	}
	{
		decoded, err := codec.DecodeOption(obj["emailAddress"], codec.DecodeString)
		if err != nil {
			return err
		}
		v.Email = decoded
	}
	// InternalID carries skip: always reset to its carrier's default.
	var internalIDDefault codec.Option[uint64]
	v.InternalID = internalIDDefault
	return nil
}

// Conditional is spec §8 scenario 6: a bare skip_if_none field with no
// rename, isolated from Person's other directives.
//
//jsonkit:record
type Conditional struct {
	Value codec.Option[uint32] `wire:"conditional,skip_if_none"`
}

func (v Conditional) EncodeValue() (jsonkit.Value, error) {
	pairs := make([]jsonkit.KV, 0, 1)
	if present, ok := v.Value.Get(); ok {
		val, err := codec.EncodeUint[uint32](present)
		if err != nil {
			return jsonkit.Null, err
		}
		pairs = append(pairs, jsonkit.KV{Key: "conditional", Val: val})
	}
	return jsonkit.ObjectOf(pairs...), nil
}

func (v *Conditional) DecodeValue(val jsonkit.Value) error {
	obj, ok := val.Object()
	if !ok {
		return jsonkit.TypeErrorf("expected object for Conditional, got %s", val.Kind())
	}
	// A missing key reads as the zero Value (Null), which DecodeOption
	// already maps to absent — the same body serves skip_if_none's
	// "key absent -> default" row without a separate branch.
	decoded, err := codec.DecodeOption(obj["conditional"], codec.DecodeUint[uint32])
	if err != nil {
		return err
	}
	v.Value = decoded
	return nil
}

// Status is spec §8 scenario 4: a tagged union with a unit variant, a
// positional variant, and a named variant.
type Status interface{ isStatus() }

//jsonkit:variant Status unit Active
type StatusActive struct{}

func (StatusActive) isStatus() {}

//jsonkit:variant Status unit Inactive
type StatusInactive struct{}

func (StatusInactive) isStatus() {}

//jsonkit:variant Status positional Pending
type StatusPending struct {
	Reason string
}

func (StatusPending) isStatus() {}

//jsonkit:variant Status named Custom
type StatusCustom struct {
	Code    uint32 `wire:"code"`
	Message string `wire:"message"`
}

func (StatusCustom) isStatus() {}

func EncodeStatus(v Status) (jsonkit.Value, error) {
	switch x := v.(type) {
	case StatusActive:
		_ = x
		return jsonkit.String("Active"), nil
	case StatusInactive:
		_ = x
		return jsonkit.String("Inactive"), nil
	case StatusPending:
		elems := make([]jsonkit.Value, 0)
		{
			val, err := codec.EncodeString(x.Reason)
			if err != nil {
				return jsonkit.Null, err
			}
			elems = append(elems, val)
		}
		return jsonkit.ObjectOf(
			jsonkit.KV{Key: "type", Val: jsonkit.String("Pending")},
			jsonkit.KV{Key: "data", Val: jsonkit.ArrayOf(elems...)},
		), nil
	case StatusCustom:
		pairs := make([]jsonkit.KV, 0, 3)
		pairs = append(pairs, jsonkit.KV{Key: "type", Val: jsonkit.String("Custom")})
		{
			val, err := codec.EncodeUint[uint32](x.Code)
			if err != nil {
				return jsonkit.Null, err
			}
			pairs = append(pairs, jsonkit.KV{Key: "code", Val: val})
		}
		{
			val, err := codec.EncodeString(x.Message)
			if err != nil {
				return jsonkit.Null, err
			}
			pairs = append(pairs, jsonkit.KV{Key: "message", Val: val})
		}
		return jsonkit.ObjectOf(pairs...), nil
	default:
		return jsonkit.Null, jsonkit.TypeErrorf("unknown variant %T for Status", v)
	}
}

func DecodeStatus(val jsonkit.Value) (Status, error) {
	var zero Status
	if s, ok := val.String(); ok {
		switch s {
		case "Active":
			return StatusActive{}, nil
		case "Inactive":
			return StatusInactive{}, nil
		default:
			return zero, jsonkit.TypeErrorf("unknown Status variant %q", s)
		}
	}
	obj, ok := val.Object()
	if !ok {
		return zero, jsonkit.TypeErrorf("expected string or object for Status, got %s", val.Kind())
	}
	typeVal, present := obj["type"]
	if !present {
		return zero, jsonkit.MissingFieldErr("type")
	}
	tag, ok := typeVal.String()
	if !ok {
		return zero, jsonkit.TypeErrorf("field \"type\" must be a string, got %s", typeVal.Kind())
	}
	switch tag {
	case "Pending":
		dataVal, present := obj["data"]
		if !present {
			return zero, jsonkit.MissingFieldErr("data")
		}
		dataElems, ok := dataVal.Array()
		if !ok {
			return zero, jsonkit.TypeErrorf("field \"data\" must be an array, got %s", dataVal.Kind())
		}
		if len(dataElems) != 1 {
			return zero, jsonkit.TypeErrorf("variant Pending expects 1 element(s), got %d", len(dataElems))
		}
		var out StatusPending
		{
			decoded, err := codec.DecodeString(dataElems[0])
			if err != nil {
				return zero, err
			}
			out.Reason = decoded
		}
		return out, nil
	case "Custom":
		var out StatusCustom
		if fv, present := obj["code"]; present {
			decoded, err := codec.DecodeUint[uint32](fv)
			if err != nil {
				return zero, err
			}
			out.Code = decoded
		} else {
			return zero, jsonkit.MissingFieldErr("code")
		}
		if fv, present := obj["message"]; present {
			decoded, err := codec.DecodeString(fv)
			if err != nil {
				return zero, err
			}
			out.Message = decoded
		} else {
			return zero, jsonkit.MissingFieldErr("message")
		}
		return out, nil
	default:
		return zero, jsonkit.TypeErrorf("unknown Status variant %q", tag)
	}
}
