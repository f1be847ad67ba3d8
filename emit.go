package jsonkit

import (
	"math"
	"strconv"
	"strings"
)

// Marshal renders v as compact JSON text: ", " between elements, ": "
// between a key and its value, shortest round-trippable decimal for
// numbers. Marshal fails only if v (or a value nested in it) holds a
// non-finite Number, which by the §3 invariant can only happen if the
// caller built it that way by hand rather than through the parser.
func Marshal(v Value) ([]byte, error) {
	var b strings.Builder
	if err := writeValue(&b, v, -1); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// MarshalIndent renders v as pretty-printed JSON text: two spaces per
// depth level, one element per line, with empty arrays/objects rendered
// compactly as "[]"/"{}". MarshalIndent and Marshal agree modulo
// whitespace (§4.2).
func MarshalIndent(v Value) ([]byte, error) {
	var b strings.Builder
	if err := writeValue(&b, v, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// writeValue renders v into b. depth < 0 means compact mode; depth >= 0
// is the current indentation level in pretty mode.
func writeValue(b *strings.Builder, v Value, depth int) error {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		if math.IsInf(v.number, 0) || math.IsNaN(v.number) {
			return TypeErrorf("cannot encode non-finite number %v", v.number)
		}
		b.WriteString(formatNumber(v.number))
	case KindString:
		writeQuotedString(b, v.text)
	case KindArray:
		return writeArray(b, v.array, depth)
	case KindObject:
		return writeObject(b, v.sortedMembers(), depth)
	}
	return nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func writeArray(b *strings.Builder, elems []Value, depth int) error {
	if len(elems) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
			if depth < 0 {
				b.WriteByte(' ')
			}
		}
		writeNewlineIndent(b, childDepth(depth))
		if err := writeValue(b, e, childDepth(depth)); err != nil {
			return err
		}
	}
	writeNewlineIndent(b, depth)
	b.WriteByte(']')
	return nil
}

func writeObject(b *strings.Builder, members []member, depth int) error {
	if len(members) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteByte('{')
	for i, p := range members {
		if i > 0 {
			b.WriteByte(',')
			if depth < 0 {
				b.WriteByte(' ')
			}
		}
		writeNewlineIndent(b, childDepth(depth))
		writeQuotedString(b, p.key)
		b.WriteString(": ")
		if err := writeValue(b, p.val, childDepth(depth)); err != nil {
			return err
		}
	}
	writeNewlineIndent(b, depth)
	b.WriteByte('}')
	return nil
}

// childDepth propagates compact mode (-1) unchanged, or descends one
// level in pretty mode.
func childDepth(depth int) int {
	if depth < 0 {
		return -1
	}
	return depth + 1
}

func writeNewlineIndent(b *strings.Builder, depth int) {
	if depth < 0 {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

var jsonEscapes = map[byte]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\b': `\b`,
	'\f': `\f`,
}

// writeQuotedString writes s as a double-quoted JSON string literal. '/'
// is never escaped on output (§6: the emitter writes it unescaped even
// though the parser accepts \/ on input).
func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := jsonEscapes[c]; ok {
			b.WriteString(esc)
			continue
		}
		if c < 0x20 {
			b.WriteString(`\u`)
			const hex = "0123456789abcdef"
			b.WriteByte('0')
			b.WriteByte('0')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}
