package derive

import (
	"fmt"
	"strings"
)

// GenerateRecord renders the encoder and decoder for one record
// declaration, following the synthesis rules of §4.5 exactly: skip
// fields are omitted from encode and defaulted on decode, skip_if_none
// fields omit their key when the optional value is absent, and every
// other field round-trips through its carrier's built-in codec body.
func GenerateRecord(rec RecordSpec, reg registry) (string, error) {
	var b strings.Builder

	nonSkipped := 0
	for _, f := range rec.Fields {
		if !f.Skip {
			nonSkipped++
		}
	}

	fmt.Fprintf(&b, "func (v %s) EncodeValue() (jsonkit.Value, error) {\n", rec.Name)
	fmt.Fprintf(&b, "\tpairs := make([]jsonkit.KV, 0, %d)\n", nonSkipped)
	for _, f := range rec.Fields {
		if f.Skip {
			continue
		}
		writeFieldEncode(&b, f, reg)
	}
	b.WriteString("\treturn jsonkit.ObjectOf(pairs...), nil\n}\n\n")

	fmt.Fprintf(&b, "func (v *%s) DecodeValue(val jsonkit.Value) error {\n", rec.Name)
	b.WriteString("\tobj, ok := val.Object()\n")
	fmt.Fprintf(&b, "\tif !ok {\n\t\treturn jsonkit.TypeErrorf(\"expected object for %s, got %%s\", val.Kind())\n\t}\n", rec.Name)
	for _, f := range rec.Fields {
		writeFieldDecode(&b, f, reg)
	}
	b.WriteString("\treturn nil\n}\n")

	return b.String(), nil
}

func writeFieldEncode(b *strings.Builder, f FieldSpec, reg registry) {
	if f.IsOption {
		inner := classify(f.InnerType, reg)
		if f.SkipIfNone {
			fmt.Fprintf(b, "\tif present, ok := v.%s.Get(); ok {\n", f.HostName)
			fmt.Fprintf(b, "\t\tval, err := (%s)(present)\n", inner.encodeFuncExpr())
			b.WriteString("\t\tif err != nil {\n\t\t\treturn jsonkit.Null, err\n\t\t}\n")
			fmt.Fprintf(b, "\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n", f.WireName)
			b.WriteString("\t}\n")
			return
		}
		fmt.Fprintf(b, "\t{\n\t\tval, err := codec.EncodeOption(v.%s, %s)\n", f.HostName, inner.encodeFuncExpr())
		b.WriteString("\t\tif err != nil {\n\t\t\treturn jsonkit.Null, err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n\t}\n", f.WireName)
		return
	}

	c := classify(f.GoType, reg)
	fmt.Fprintf(b, "\t{\n\t\tval, err := (%s)(v.%s)\n", c.encodeFuncExpr(), f.HostName)
	b.WriteString("\t\tif err != nil {\n\t\t\treturn jsonkit.Null, err\n\t\t}\n")
	fmt.Fprintf(b, "\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n\t}\n", f.WireName)
}

func writeFieldDecode(b *strings.Builder, f FieldSpec, reg registry) {
	if f.Skip {
		fmt.Fprintf(b, "\tvar %sDefault %s\n\tv.%s = %sDefault\n", f.HostName, f.GoType, f.HostName, f.HostName)
		return
	}
	if f.IsOption {
		// Absence of the key and an explicit null both decode to the
		// absent Option value (§4.5 table); since a missing map key
		// yields the Value zero value (Null), a single DecodeOption call
		// over obj[wireName] covers every row of the is_option table,
		// skip_if_none included (Option's zero value already is absent).
		inner := classify(f.InnerType, reg)
		fmt.Fprintf(b, "\t{\n\t\tdecoded, err := codec.DecodeOption(obj[%q], %s)\n", f.WireName, inner.decodeFuncExpr())
		b.WriteString("\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tv.%s = decoded\n\t}\n", f.HostName)
		return
	}

	c := classify(f.GoType, reg)
	fmt.Fprintf(b, "\tif fv, present := obj[%q]; present {\n", f.WireName)
	fmt.Fprintf(b, "\t\tdecoded, err := (%s)(fv)\n", c.decodeFuncExpr())
	b.WriteString("\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
	fmt.Fprintf(b, "\t\tv.%s = decoded\n\t} else {\n\t\treturn jsonkit.MissingFieldErr(%q)\n\t}\n", f.HostName, f.WireName)
}
