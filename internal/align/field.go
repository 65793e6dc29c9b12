// Package align provides fixed-width field centring for terminal output.
// A Field wraps a value's textual form; a Writer composes fields with a
// pending field width and fill character, mirroring the familiar
// setw-then-write stream idiom while keeping padding maths in one place.
package align

import (
	"fmt"
	"strconv"
)

// Field is an immutable wrapper around the textual form of a value,
// ready to be centred by a Writer. Construct one with Centred or
// CentredRune; the zero Field renders as the empty string.
type Field struct {
	s string
}

// Centred wraps a value for centred output.
//
// Text-like values (string, []byte, fmt.Stringer) are used as-is. Numeric
// values of any integer width, signedness, or floating-point precision are
// converted to their canonical decimal form, the same string strconv would
// produce: no thousands separators, shortest round-trip precision for
// floats. Anything else falls back to fmt.Sprint.
//
// Note that rune is int32 in Go, so Centred('w') renders "119". Use
// CentredRune when a value should be treated as a single character.
func Centred(v any) Field {
	switch val := v.(type) {
	case string:
		return Field{s: val}
	case []byte:
		return Field{s: string(val)}
	case fmt.Stringer:
		return Field{s: val.String()}
	case int:
		return Field{s: strconv.FormatInt(int64(val), 10)}
	case int8:
		return Field{s: strconv.FormatInt(int64(val), 10)}
	case int16:
		return Field{s: strconv.FormatInt(int64(val), 10)}
	case int32:
		return Field{s: strconv.FormatInt(int64(val), 10)}
	case int64:
		return Field{s: strconv.FormatInt(val, 10)}
	case uint:
		return Field{s: strconv.FormatUint(uint64(val), 10)}
	case uint8:
		return Field{s: strconv.FormatUint(uint64(val), 10)}
	case uint16:
		return Field{s: strconv.FormatUint(uint64(val), 10)}
	case uint32:
		return Field{s: strconv.FormatUint(uint64(val), 10)}
	case uint64:
		return Field{s: strconv.FormatUint(val, 10)}
	case uintptr:
		return Field{s: strconv.FormatUint(uint64(val), 10)}
	case float32:
		return Field{s: strconv.FormatFloat(float64(val), 'g', -1, 32)}
	case float64:
		return Field{s: strconv.FormatFloat(val, 'g', -1, 64)}
	default:
		return Field{s: fmt.Sprint(v)}
	}
}

// CentredRune wraps a single character for centred output.
func CentredRune(r rune) Field {
	return Field{s: string(r)}
}

// String returns the wrapped content without padding.
func (f Field) String() string {
	return f.s
}

// Len returns the content length in bytes. Widths throughout this package
// are measured in code units, not visual columns.
func (f Field) Len() int {
	return len(f.s)
}
