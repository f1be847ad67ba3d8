package jsonkit

import (
	"errors"
	"fmt"
)

// DiagKind is the closed taxonomy of failure kinds (§7) surfaced
// uniformly by the parser, the encoders/decoders, and generated code.
type DiagKind int8

const (
	// KindIO is reserved for a textual-carrier error from a caller's
	// adapter (e.g. an io.Reader that failed); jsonkit never produces it
	// itself.
	KindIO DiagKind = iota
	// KindEndOfInput means the input was exhausted before a value was
	// complete.
	KindEndOfInput
	// KindSyntax means a malformed token or structure was found at Pos.
	KindSyntax
	// KindExpectedFound means a specific token class was expected but
	// another was found, at Pos.
	KindExpectedFound
	// KindMissingField means a required key was absent on decode.
	KindMissingField
	// KindUnknownField is reserved for strict-decode callers; the
	// built-in decoders never produce it.
	KindUnknownField
	// KindTypeError means a structural shape mismatch: wrong Value kind,
	// out-of-range integer, nonzero fractional part where an integer was
	// required, an unknown variant tag, or wrong positional arity.
	KindTypeError
	// KindCustom carries a caller-supplied message.
	KindCustom
)

var diagKindStrings = [...]string{
	KindIO:            "I/O",
	KindEndOfInput:    "end of input",
	KindSyntax:        "syntax",
	KindExpectedFound: "expected/found",
	KindMissingField:  "missing field",
	KindUnknownField:  "unknown field",
	KindTypeError:     "type error",
	KindCustom:        "custom",
}

func (k DiagKind) String() string {
	if k < 0 || int(k) >= len(diagKindStrings) {
		return "<unknown>"
	}
	return diagKindStrings[k]
}

// Diagnostic is the structured failure record returned by every fallible
// operation in jsonkit: the parser, the codec package's built-in bodies,
// and generated encoder/decoder methods. Diagnostic satisfies error, and
// two Diagnostics compare equal with Equal when their Kind and payload
// match, independent of any wrapping, so tests can assert exact kinds.
type Diagnostic struct {
	Kind DiagKind

	// Pos is a byte offset into the parsed input. Meaningful for
	// KindSyntax and KindExpectedFound; zero otherwise.
	Pos int

	// Expected/Found describe a KindExpectedFound mismatch.
	Expected string
	Found    string

	// Field names the wire_name for KindMissingField/KindUnknownField.
	Field string

	// Message carries free text for KindSyntax, KindTypeError,
	// KindCustom, and KindIO.
	Message string
}

// ErrDiagnostic is the sentinel every *Diagnostic wraps, so callers can
// write errors.Is(err, jsonkit.ErrDiagnostic) without inspecting Kind.
var ErrDiagnostic = errors.New("jsonkit: diagnostic")

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case KindEndOfInput:
		return "jsonkit: unexpected end of input"
	case KindSyntax:
		return fmt.Sprintf("jsonkit: syntax error at byte %d: %s", d.Pos, d.Message)
	case KindExpectedFound:
		return fmt.Sprintf("jsonkit: expected %s but found %s at byte %d", d.Expected, d.Found, d.Pos)
	case KindMissingField:
		return fmt.Sprintf("jsonkit: missing field %q", d.Field)
	case KindUnknownField:
		return fmt.Sprintf("jsonkit: unknown field %q", d.Field)
	case KindTypeError:
		return fmt.Sprintf("jsonkit: type error: %s", d.Message)
	case KindIO:
		return fmt.Sprintf("jsonkit: I/O error: %s", d.Message)
	default:
		return fmt.Sprintf("jsonkit: %s", d.Message)
	}
}

// Unwrap lets errors.Is(err, ErrDiagnostic) succeed for any *Diagnostic.
func (d *Diagnostic) Unwrap() error { return ErrDiagnostic }

// Equal reports whether d and e carry the same kind and payload. Unlike
// Error(), Equal ignores nothing: it is the structural comparison §7
// requires for tests to assert exact diagnostic kinds.
func (d *Diagnostic) Equal(e *Diagnostic) bool {
	if d == nil || e == nil {
		return d == e
	}
	return *d == *e
}

func syntaxErr(pos int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: KindSyntax, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func expectedFoundErr(expected, found string, pos int) *Diagnostic {
	return &Diagnostic{Kind: KindExpectedFound, Expected: expected, Found: found, Pos: pos}
}

func endOfInputErr() *Diagnostic {
	return &Diagnostic{Kind: KindEndOfInput}
}

// TypeErrorf constructs a KindTypeError Diagnostic, for use by hand-written
// Encoder/Decoder implementations and generated code alike.
func TypeErrorf(format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: KindTypeError, Message: fmt.Sprintf(format, args...)}
}

// MissingFieldErr constructs a KindMissingField Diagnostic naming the
// absent wire_name.
func MissingFieldErr(wireName string) *Diagnostic {
	return &Diagnostic{Kind: KindMissingField, Field: wireName}
}

// UnknownFieldErr constructs a KindUnknownField Diagnostic naming the
// unrecognized wire_name. Reserved for strict-decode callers (§7); the
// built-in decoders never produce it.
func UnknownFieldErr(wireName string) *Diagnostic {
	return &Diagnostic{Kind: KindUnknownField, Field: wireName}
}

// Errorf constructs a KindCustom Diagnostic from a caller-supplied
// message, mirroring fmt.Errorf.
func Errorf(format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: KindCustom, Message: fmt.Sprintf(format, args...)}
}
