package derive

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

// markerPrefix is the comment directive prefix recognized on a type's
// doc comment. Everything after it is whitespace-tokenized.
const markerPrefix = "jsonkit:"

// ReadFile parses a Go source file and recovers every //jsonkit:record
// and //jsonkit:variant declaration in it (§4.7). It is token/AST-driven,
// per the spec's Design Notes: nested generic brackets (Option[[]T]) and
// struct tag literals are handled by go/ast's own grammar, not by a
// character scan that would mishandle them.
func ReadFile(filename string, src []byte) (*Declarations, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("derive: parse %s: %w", filename, err)
	}

	decls := &Declarations{}
	unionsByName := map[string]*UnionSpec{}
	var unionOrder []string

	for _, d := range file.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}
			if doc == nil {
				continue
			}
			// doc.Text() drops directive-shaped lines such as
			// "//jsonkit:record", so the raw comment lines are used.
			var lines []string
			for _, c := range doc.List {
				lines = append(lines, strings.TrimPrefix(c.Text, "//"))
			}
			directive, args := parseDirective(strings.Join(lines, "\n"))
			switch directive {
			case "record":
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					return nil, fmt.Errorf("derive: %s: //jsonkit:record must annotate a struct type", ts.Name.Name)
				}
				fields, err := readFields(fset, st)
				if err != nil {
					return nil, fmt.Errorf("derive: record %s: %w", ts.Name.Name, err)
				}
				decls.Records = append(decls.Records, RecordSpec{Name: ts.Name.Name, Fields: fields})
			case "variant":
				v, unionName, err := readVariant(fset, ts, args)
				if err != nil {
					return nil, err
				}
				u, ok := unionsByName[unionName]
				if !ok {
					u = &UnionSpec{Name: unionName}
					unionsByName[unionName] = u
					unionOrder = append(unionOrder, unionName)
				}
				u.Variants = append(u.Variants, v)
			}
		}
	}

	for _, name := range unionOrder {
		decls.Unions = append(decls.Unions, *unionsByName[name])
	}

	return decls, nil
}

// parseDirective finds the first doc comment line that starts with a
// "jsonkit:<directive>" token and splits it into that directive and its
// remaining whitespace-separated arguments. Lines that don't carry the
// marker are ignored.
func parseDirective(docText string) (directive string, args []string) {
	for _, line := range strings.Split(docText, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, markerPrefix) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, markerPrefix))
		if len(fields) == 0 {
			continue
		}
		return fields[0], fields[1:]
	}
	return "", nil
}

// readVariant builds a VariantSpec from a type declaration preceded by
// `//jsonkit:variant <unionName> <kind> <variantName> [rename=wireName]`.
func readVariant(fset *token.FileSet, ts *ast.TypeSpec, args []string) (VariantSpec, string, error) {
	if len(args) < 3 {
		return VariantSpec{}, "", fmt.Errorf(
			"derive: %s: //jsonkit:variant needs \"<union> <unit|positional|named> <name>\", got %q",
			ts.Name.Name, strings.Join(args, " "))
	}
	unionName, kindStr, variantName := args[0], args[1], args[2]
	wireName := variantName
	for _, extra := range args[3:] {
		if rn, ok := strings.CutPrefix(extra, "rename="); ok {
			wireName = strings.Trim(rn, `"`)
		}
	}

	var kind VariantKind
	switch kindStr {
	case "unit":
		kind = VariantUnit
	case "positional":
		kind = VariantPositional
	case "named":
		kind = VariantNamed
	default:
		return VariantSpec{}, "", fmt.Errorf("derive: %s: unknown variant kind %q", ts.Name.Name, kindStr)
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return VariantSpec{}, "", fmt.Errorf("derive: %s: //jsonkit:variant must annotate a struct type", ts.Name.Name)
	}

	v := VariantSpec{HostName: variantName, WireName: wireName, GoType: ts.Name.Name, Kind: kind}

	switch kind {
	case VariantUnit:
		if st.Fields != nil && len(st.Fields.List) != 0 {
			return VariantSpec{}, "", fmt.Errorf("derive: %s: a unit variant must have no fields", ts.Name.Name)
		}
	case VariantPositional:
		fields, err := readFields(fset, st)
		if err != nil {
			return VariantSpec{}, "", fmt.Errorf("derive: variant %s: %w", ts.Name.Name, err)
		}
		v.Fields = fields
		for _, f := range fields {
			v.Elements = append(v.Elements, f.GoType)
		}
	case VariantNamed:
		fields, err := readFields(fset, st)
		if err != nil {
			return VariantSpec{}, "", fmt.Errorf("derive: variant %s: %w", ts.Name.Name, err)
		}
		for _, f := range fields {
			if f.WireName == "type" {
				return VariantSpec{}, "", fmt.Errorf(
					"derive: variant %s: a named variant must not declare a field whose wire name is \"type\"", ts.Name.Name)
			}
		}
		v.Fields = fields
	}

	return v, unionName, nil
}

// readFields builds a FieldSpec per struct field, reading the `wire`
// struct tag for rename/skip/skip_if_none directives and detecting
// codec.Option[T] fields for is_option.
func readFields(fset *token.FileSet, st *ast.StructType) ([]FieldSpec, error) {
	if st.Fields == nil {
		return nil, nil
	}
	var out []FieldSpec
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded/anonymous fields are not supported")
		}
		goType := exprString(fset, field.Type)
		tag := ""
		if field.Tag != nil {
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid struct tag %s: %w", field.Tag.Value, err)
			}
			tag = reflect.StructTag(unquoted).Get("wire")
		}

		for _, name := range field.Names {
			spec := FieldSpec{HostName: name.Name, WireName: name.Name, GoType: goType}
			if inner, ok := isOptionType(goType); ok {
				spec.IsOption = true
				spec.InnerType = inner
			}
			applyTag(&spec, tag)
			out = append(out, spec)
		}
	}
	return out, nil
}

// applyTag parses the wire struct tag's encoding/json-style syntax:
// "-" skips the field; the leading comma-separated name component
// renames it (empty keeps the default); "skip_if_none" after a comma
// sets SkipIfNone.
func applyTag(spec *FieldSpec, tag string) {
	if tag == "" {
		return
	}
	if tag == "-" {
		spec.Skip = true
		return
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		spec.WireName = parts[0]
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "skip_if_none":
			spec.SkipIfNone = true
		case "skip":
			spec.Skip = true
		}
	}
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return fmt.Sprintf("%v", expr)
	}
	return buf.String()
}
