// Package derive is the compile-time code generator (§4.5-§4.7): given a
// record or tagged-union declaration, annotated with the directives
// skip, skip_if_none, and rename, it synthesizes Go source implementing
// the codec.Encoder/Decoder protocol.
//
// The declaration surface is ordinary Go source, read with go/parser
// (see read.go) rather than scanned character-by-character — per the
// spec's Design Notes, a naive text scan mishandles nested generic
// brackets and tag literals, so the front end is token/AST-driven.
package derive

// FieldSpec describes one record field or named-variant field (§3).
// HostName is the Go struct field identifier; WireName is the key used
// on the wire, defaulting to HostName unless overridden by rename.
type FieldSpec struct {
	HostName   string
	WireName   string
	GoType     string // the field's Go type, rendered as source text
	Skip       bool
	SkipIfNone bool
	IsOption   bool
	InnerType  string // GoType's Option[T] inner type, when IsOption
}

// VariantKind is one of the three shapes a tagged-union variant can take
// (§4.6, GLOSSARY).
type VariantKind int

const (
	// VariantUnit carries no payload; it encodes as a bare wire name string.
	VariantUnit VariantKind = iota
	// VariantPositional carries an ordered list of unnamed elements.
	VariantPositional
	// VariantNamed carries zero or more named fields.
	VariantNamed
)

func (k VariantKind) String() string {
	switch k {
	case VariantUnit:
		return "unit"
	case VariantPositional:
		return "positional"
	case VariantNamed:
		return "named"
	default:
		return "<unknown>"
	}
}

// VariantSpec describes one constructor of a tagged union (§3).
// HostName is the variant's logical name (independent of the Go type
// used to carry its payload); GoType is that carrying type's identifier.
type VariantSpec struct {
	HostName string
	WireName string
	GoType   string
	Kind     VariantKind
	Elements []string    // Positional: ordered element Go types
	Fields   []FieldSpec // Named: field specs; Positional: one per element, naming its struct field
}

// RecordSpec describes one record declaration (§4.7): a name and an
// ordered list of fields.
type RecordSpec struct {
	Name   string
	Fields []FieldSpec
}

// UnionSpec describes one tagged-union declaration (§4.7): a name and an
// ordered list of variants.
type UnionSpec struct {
	Name     string
	Variants []VariantSpec
}

// Declarations is everything ReadFile recovered from one source file.
type Declarations struct {
	Records []RecordSpec
	Unions  []UnionSpec
}
