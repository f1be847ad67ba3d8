package derive

import (
	"fmt"
	"strings"
)

// carrierKind classifies a field's Go type into one of the built-in
// encoder/decoder bodies of §4.4, or carrierRecord/carrierUnion for a
// nested generated type.
type carrierKind int

const (
	carrierBool carrierKind = iota
	carrierString
	carrierInt
	carrierUint
	carrierFloat
	carrierValue
	carrierSlice
	carrierMap
	carrierRecord
	carrierUnion
)

var signedInts = map[string]bool{"int": true, "int8": true, "int16": true, "int32": true, "int64": true}
var unsignedInts = map[string]bool{"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true}
var floats = map[string]bool{"float32": true, "float64": true}

// carrier is a classified Go type, recursively for slice/map elements.
type carrier struct {
	kind   carrierKind
	goType string
	elem   *carrier // for carrierSlice/carrierMap
}

// registry names the union and record types declared alongside the
// field being classified. classify consults only unions, so a nested
// union field resolves to carrierUnion; every other unrecognized
// identifier, registered record or not, is treated as carrierRecord.
type registry struct {
	records map[string]bool
	unions  map[string]bool
}

// classify inspects a Go type's literal source text and determines which
// built-in carrier it is. Prefixes are matched greedily ("[]" then
// "map[string]") so that e.g. "[]map[string]int64" recurses correctly.
func classify(goType string, reg registry) carrier {
	t := strings.TrimSpace(goType)
	switch {
	case t == "bool":
		return carrier{kind: carrierBool, goType: t}
	case t == "string":
		return carrier{kind: carrierString, goType: t}
	case signedInts[t]:
		return carrier{kind: carrierInt, goType: t}
	case unsignedInts[t]:
		return carrier{kind: carrierUint, goType: t}
	case floats[t]:
		return carrier{kind: carrierFloat, goType: t}
	case t == "jsonkit.Value":
		return carrier{kind: carrierValue, goType: t}
	case strings.HasPrefix(t, "[]"):
		inner := classify(t[2:], reg)
		return carrier{kind: carrierSlice, goType: t, elem: &inner}
	case strings.HasPrefix(t, "map[string]"):
		inner := classify(t[len("map[string]"):], reg)
		return carrier{kind: carrierMap, goType: t, elem: &inner}
	case reg.unions[t]:
		return carrier{kind: carrierUnion, goType: t}
	default:
		// Anything else is assumed to be another generated record type
		// (or a hand-written codec.Encoder/Decoder implementer), so the
		// nested call always resolves to a method expression rather
		// than failing generation outright.
		return carrier{kind: carrierRecord, goType: t}
	}
}

// isOptionType reports whether t is an instantiation of codec.Option[T],
// and if so returns T's literal source text. This is the is_option
// detection named in §4.7: it matches the declared carrier shape, not a
// directive.
func isOptionType(t string) (inner string, ok bool) {
	t = strings.TrimSpace(t)
	const prefix = "codec.Option["
	if !strings.HasPrefix(t, prefix) || !strings.HasSuffix(t, "]") {
		return "", false
	}
	return t[len(prefix) : len(t)-1], true
}

// encodeFuncExpr renders a Go expression evaluating to a
// func(T) (jsonkit.Value, error) for this carrier, suitable either as a
// direct call target or as an argument to codec.EncodeSlice/EncodeMap.
func (c carrier) encodeFuncExpr() string {
	switch c.kind {
	case carrierBool:
		return "codec.EncodeBool"
	case carrierString:
		return "codec.EncodeString"
	case carrierInt:
		return fmt.Sprintf("codec.EncodeInt[%s]", c.goType)
	case carrierUint:
		return fmt.Sprintf("codec.EncodeUint[%s]", c.goType)
	case carrierFloat:
		return fmt.Sprintf("codec.EncodeFloat[%s]", c.goType)
	case carrierValue:
		return "codec.EncodeValueIdentity"
	case carrierSlice:
		return fmt.Sprintf("func(x %s) (jsonkit.Value, error) { return codec.EncodeSlice(x, %s) }",
			c.goType, c.elem.encodeFuncExpr())
	case carrierMap:
		return fmt.Sprintf("func(x %s) (jsonkit.Value, error) { return codec.EncodeMap(x, %s) }",
			c.goType, c.elem.encodeFuncExpr())
	case carrierUnion:
		return fmt.Sprintf("Encode%s", c.goType)
	default: // carrierRecord
		return fmt.Sprintf("%s.EncodeValue", c.goType)
	}
}

// decodeFuncExpr renders a Go expression evaluating to a
// func(jsonkit.Value) (T, error) for this carrier.
func (c carrier) decodeFuncExpr() string {
	switch c.kind {
	case carrierBool:
		return "codec.DecodeBool"
	case carrierString:
		return "codec.DecodeString"
	case carrierInt:
		return fmt.Sprintf("codec.DecodeInt[%s]", c.goType)
	case carrierUint:
		return fmt.Sprintf("codec.DecodeUint[%s]", c.goType)
	case carrierFloat:
		return fmt.Sprintf("codec.DecodeFloat[%s]", c.goType)
	case carrierValue:
		return "codec.DecodeValueIdentity"
	case carrierSlice:
		return fmt.Sprintf("func(v jsonkit.Value) (%s, error) { return codec.DecodeSlice(v, %s) }",
			c.goType, c.elem.decodeFuncExpr())
	case carrierMap:
		return fmt.Sprintf("func(v jsonkit.Value) (%s, error) { return codec.DecodeMap(v, %s) }",
			c.goType, c.elem.decodeFuncExpr())
	case carrierUnion:
		return fmt.Sprintf("Decode%s", c.goType)
	default: // carrierRecord
		return fmt.Sprintf("func(v jsonkit.Value) (%s, error) {\n\t\tvar x %s\n\t\tif err := x.DecodeValue(v); err != nil {\n\t\t\tvar zero %s\n\t\t\treturn zero, err\n\t\t}\n\t\treturn x, nil\n\t}", c.goType, c.goType, c.goType)
	}
}
