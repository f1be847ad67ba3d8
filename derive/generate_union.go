package derive

import (
	"fmt"
	"strings"
)

// GenerateUnion renders the encoder and decoder for one tagged-union
// declaration, following the wire convention of §4.6/§6 exactly: a Unit
// variant is a bare string, a Positional variant is {"type","data":[...]},
// and a Named variant is {"type", <fields...>}.
//
// Because Go cannot attach methods to an interface type, the union's
// encode/decode surface is a pair of free functions (Encode<Name>,
// Decode<Name>) rather than methods satisfying codec.Encoder/Decoder —
// the dispatch switches on the variant's concrete Go type instead.
func GenerateUnion(u UnionSpec, reg registry) (string, error) {
	if err := checkDuplicateWireNames(u); err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "func Encode%s(v %s) (jsonkit.Value, error) {\n", u.Name, u.Name)
	b.WriteString("\tswitch x := v.(type) {\n")
	for _, variant := range u.Variants {
		fmt.Fprintf(&b, "\tcase %s:\n", variant.GoType)
		writeVariantEncode(&b, variant, reg)
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn jsonkit.Null, jsonkit.TypeErrorf(\"unknown variant %%T for %s\", v)\n", u.Name)
	b.WriteString("\t}\n}\n\n")

	fmt.Fprintf(&b, "func Decode%s(val jsonkit.Value) (%s, error) {\n", u.Name, u.Name)
	fmt.Fprintf(&b, "\tvar zero %s\n", u.Name)
	b.WriteString("\tif s, ok := val.String(); ok {\n")
	b.WriteString("\t\tswitch s {\n")
	for _, variant := range u.Variants {
		if variant.Kind != VariantUnit {
			continue
		}
		fmt.Fprintf(&b, "\t\tcase %q:\n\t\t\treturn %s{}, nil\n", variant.WireName, variant.GoType)
	}
	fmt.Fprintf(&b, "\t\tdefault:\n\t\t\treturn zero, jsonkit.TypeErrorf(\"unknown %s variant %%q\", s)\n", u.Name)
	b.WriteString("\t\t}\n\t}\n")

	b.WriteString("\tobj, ok := val.Object()\n")
	fmt.Fprintf(&b, "\tif !ok {\n\t\treturn zero, jsonkit.TypeErrorf(\"expected string or object for %s, got %%s\", val.Kind())\n\t}\n", u.Name)
	b.WriteString("\ttypeVal, present := obj[\"type\"]\n")
	b.WriteString("\tif !present {\n\t\treturn zero, jsonkit.MissingFieldErr(\"type\")\n\t}\n")
	b.WriteString("\ttag, ok := typeVal.String()\n")
	b.WriteString("\tif !ok {\n\t\treturn zero, jsonkit.TypeErrorf(\"field \\\"type\\\" must be a string, got %s\", typeVal.Kind())\n\t}\n")
	b.WriteString("\tswitch tag {\n")
	for _, variant := range u.Variants {
		if variant.Kind == VariantUnit {
			continue
		}
		fmt.Fprintf(&b, "\tcase %q:\n", variant.WireName)
		writeVariantDecode(&b, variant, reg)
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn zero, jsonkit.TypeErrorf(\"unknown %s variant %%q\", tag)\n", u.Name)
	b.WriteString("\t}\n}\n")

	return b.String(), nil
}

func checkDuplicateWireNames(u UnionSpec) error {
	seen := make(map[string]string, len(u.Variants))
	for _, variant := range u.Variants {
		if other, ok := seen[variant.WireName]; ok {
			return fmt.Errorf("derive: union %s: variants %s and %s both have wire name %q",
				u.Name, other, variant.HostName, variant.WireName)
		}
		seen[variant.WireName] = variant.HostName
	}
	return nil
}

func writeVariantEncode(b *strings.Builder, variant VariantSpec, reg registry) {
	switch variant.Kind {
	case VariantUnit:
		fmt.Fprintf(b, "\t\t_ = x\n\t\treturn jsonkit.String(%q), nil\n", variant.WireName)
	case VariantPositional:
		b.WriteString("\t\telems := make([]jsonkit.Value, 0)\n")
		for i, elemType := range variant.Elements {
			c := classify(elemType, reg)
			fmt.Fprintf(b, "\t\t{\n\t\t\tval, err := (%s)(x.%s)\n", c.encodeFuncExpr(), variant.Fields[i].HostName)
			b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn jsonkit.Null, err\n\t\t\t}\n")
			b.WriteString("\t\t\telems = append(elems, val)\n\t\t}\n")
		}
		fmt.Fprintf(b, "\t\treturn jsonkit.ObjectOf(jsonkit.KV{Key: \"type\", Val: jsonkit.String(%q)}, jsonkit.KV{Key: \"data\", Val: jsonkit.ArrayOf(elems...)}), nil\n", variant.WireName)
	case VariantNamed:
		nonSkipped := 0
		for _, f := range variant.Fields {
			if !f.Skip {
				nonSkipped++
			}
		}
		fmt.Fprintf(b, "\t\tpairs := make([]jsonkit.KV, 0, %d)\n", nonSkipped+1)
		fmt.Fprintf(b, "\t\tpairs = append(pairs, jsonkit.KV{Key: \"type\", Val: jsonkit.String(%q)})\n", variant.WireName)
		for _, f := range variant.Fields {
			if f.Skip {
				continue
			}
			writeVariantFieldEncode(b, f, reg)
		}
		b.WriteString("\t\treturn jsonkit.ObjectOf(pairs...), nil\n")
	}
}

// writeVariantFieldEncode mirrors writeFieldEncode but reads from the
// matched variant value x instead of the record receiver v. Each field
// is still wrapped in its own block so that val/err can be declared
// afresh per field within the one switch case.
func writeVariantFieldEncode(b *strings.Builder, f FieldSpec, reg registry) {
	if f.IsOption {
		inner := classify(f.InnerType, reg)
		if f.SkipIfNone {
			fmt.Fprintf(b, "\t\tif present, ok := x.%s.Get(); ok {\n", f.HostName)
			fmt.Fprintf(b, "\t\t\tval, err := (%s)(present)\n", inner.encodeFuncExpr())
			b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn jsonkit.Null, err\n\t\t\t}\n")
			fmt.Fprintf(b, "\t\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n\t\t}\n", f.WireName)
			return
		}
		fmt.Fprintf(b, "\t\t{\n\t\t\tval, err := codec.EncodeOption(x.%s, %s)\n", f.HostName, inner.encodeFuncExpr())
		b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn jsonkit.Null, err\n\t\t\t}\n")
		fmt.Fprintf(b, "\t\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n\t\t}\n", f.WireName)
		return
	}
	c := classify(f.GoType, reg)
	fmt.Fprintf(b, "\t\t{\n\t\t\tval, err := (%s)(x.%s)\n", c.encodeFuncExpr(), f.HostName)
	b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn jsonkit.Null, err\n\t\t\t}\n")
	fmt.Fprintf(b, "\t\t\tpairs = append(pairs, jsonkit.KV{Key: %q, Val: val})\n\t\t}\n", f.WireName)
}

func writeVariantDecode(b *strings.Builder, variant VariantSpec, reg registry) {
	switch variant.Kind {
	case VariantPositional:
		b.WriteString("\t\tdataVal, present := obj[\"data\"]\n")
		b.WriteString("\t\tif !present {\n\t\t\treturn zero, jsonkit.MissingFieldErr(\"data\")\n\t\t}\n")
		b.WriteString("\t\tdataElems, ok := dataVal.Array()\n")
		b.WriteString("\t\tif !ok {\n\t\t\treturn zero, jsonkit.TypeErrorf(\"field \\\"data\\\" must be an array, got %s\", dataVal.Kind())\n\t\t}\n")
		fmt.Fprintf(b, "\t\tif len(dataElems) != %d {\n\t\t\treturn zero, jsonkit.TypeErrorf(\"variant %s expects %d element(s), got %%d\", len(dataElems))\n\t\t}\n",
			len(variant.Elements), variant.WireName, len(variant.Elements))
		fmt.Fprintf(b, "\t\tvar out %s\n", variant.GoType)
		for i, elemType := range variant.Elements {
			c := classify(elemType, reg)
			fmt.Fprintf(b, "\t\t{\n\t\t\tdecoded, err := (%s)(dataElems[%d])\n", c.decodeFuncExpr(), i)
			b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn zero, err\n\t\t\t}\n")
			fmt.Fprintf(b, "\t\t\tout.%s = decoded\n\t\t}\n", variant.Fields[i].HostName)
		}
		fmt.Fprintf(b, "\t\treturn out, nil\n")
	case VariantNamed:
		fmt.Fprintf(b, "\t\tvar out %s\n", variant.GoType)
		for _, f := range variant.Fields {
			writeVariantFieldDecode(b, f, reg)
		}
		b.WriteString("\t\treturn out, nil\n")
	}
}

func writeVariantFieldDecode(b *strings.Builder, f FieldSpec, reg registry) {
	if f.Skip {
		fmt.Fprintf(b, "\t\tvar %sDefault %s\n\t\tout.%s = %sDefault\n", f.HostName, f.GoType, f.HostName, f.HostName)
		return
	}
	if f.IsOption {
		inner := classify(f.InnerType, reg)
		fmt.Fprintf(b, "\t\t{\n\t\t\tdecoded, err := codec.DecodeOption(obj[%q], %s)\n", f.WireName, inner.decodeFuncExpr())
		b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn zero, err\n\t\t\t}\n")
		fmt.Fprintf(b, "\t\t\tout.%s = decoded\n\t\t}\n", f.HostName)
		return
	}
	c := classify(f.GoType, reg)
	fmt.Fprintf(b, "\t\tif fv, present := obj[%q]; present {\n", f.WireName)
	fmt.Fprintf(b, "\t\t\tdecoded, err := (%s)(fv)\n", c.decodeFuncExpr())
	b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn zero, err\n\t\t\t}\n")
	fmt.Fprintf(b, "\t\t\tout.%s = decoded\n\t\t} else {\n\t\t\treturn zero, jsonkit.MissingFieldErr(%q)\n\t\t}\n", f.HostName, f.WireName)
}
