// Package jsonw implements a forward-only JSON token writer.
//
// The writer emits tokens (object/array delimiters, names, scalar values)
// directly onto a byte buffer, managing commas itself so callers never
// backtrack. Structural validation is optional: by default the writer trusts
// its caller and only tracks the minimal state needed for comma placement;
// strict mode verifies every token against the grammar and surfaces
// violations as errors instead of emitting malformed output.
package jsonw

import (
	"bytes"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hyp3rd/ewrap"
)

type scopeKind uint8

const (
	scopeObject scopeKind = iota
	scopeArray
)

type scope struct {
	kind  scopeKind
	count int
	named bool
}

// Writer writes JSON tokens onto a bytes.Buffer. It is single-use and not
// safe for concurrent use; the formatter allocates one per Format call.
type Writer struct {
	buf            *bytes.Buffer
	stack          []scope
	topValues      int
	escapeNonASCII bool
	strict         bool
	err            error
}

// NewWriter creates a writer over buf.
func NewWriter(buf *bytes.Buffer, escapeNonASCII, strict bool) *Writer {
	return &Writer{
		buf:            buf,
		escapeNonASCII: escapeNonASCII,
		strict:         strict,
	}
}

// Err returns the first structural violation encountered, if any.
func (w *Writer) Err() error { return w.err }

// Finish verifies that the document is complete. In lenient mode it only
// reports errors already recorded.
func (w *Writer) Finish() error {
	if w.err == nil && w.strict && len(w.stack) > 0 {
		w.err = ewrap.New("json document left unclosed")
	}

	return w.err
}

func (w *Writer) fail(msg string) {
	if w.err == nil {
		w.err = ewrap.New(msg)
	}
}

// beforeValue handles comma placement and, in strict mode, grammar checks
// that must precede any value token.
func (w *Writer) beforeValue() bool {
	if w.err != nil {
		return false
	}

	if len(w.stack) == 0 {
		if w.strict && w.topValues > 0 {
			w.fail("multiple top-level json values")

			return false
		}

		w.topValues++

		return true
	}

	top := &w.stack[len(w.stack)-1]

	switch top.kind {
	case scopeObject:
		if w.strict && !top.named {
			w.fail("json value emitted without a preceding name")

			return false
		}

		top.named = false
	case scopeArray:
		if top.count > 0 {
			w.buf.WriteByte(',')
		}

		top.count++
	}

	return true
}

// Name writes an object member name followed by a colon. The name is
// escaped here; casing transforms belong to the caller.
func (w *Writer) Name(name string) {
	if w.err != nil {
		return
	}

	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != scopeObject {
		if w.strict {
			w.fail("json name emitted outside an object")

			return
		}

		w.writeEscaped(name)
		w.buf.WriteByte(':')

		return
	}

	top := &w.stack[len(w.stack)-1]

	if w.strict && top.named {
		w.fail("json name emitted twice without a value")

		return
	}

	if top.count > 0 {
		w.buf.WriteByte(',')
	}

	top.count++
	top.named = true

	w.writeEscaped(name)
	w.buf.WriteByte(':')
}

// BeginObject opens a JSON object.
func (w *Writer) BeginObject() {
	if !w.beforeValue() {
		return
	}

	w.stack = append(w.stack, scope{kind: scopeObject})
	w.buf.WriteByte('{')
}

// EndObject closes the current JSON object.
func (w *Writer) EndObject() {
	if w.err != nil {
		return
	}

	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != scopeObject {
		w.fail("unbalanced json object close")

		return
	}

	if w.strict && w.stack[len(w.stack)-1].named {
		w.fail("json object closed with a dangling name")

		return
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.buf.WriteByte('}')
}

// BeginArray opens a JSON array.
func (w *Writer) BeginArray() {
	if !w.beforeValue() {
		return
	}

	w.stack = append(w.stack, scope{kind: scopeArray})
	w.buf.WriteByte('[')
}

// EndArray closes the current JSON array.
func (w *Writer) EndArray() {
	if w.err != nil {
		return
	}

	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != scopeArray {
		w.fail("unbalanced json array close")

		return
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.buf.WriteByte(']')
}

// Null writes a JSON null literal.
func (w *Writer) Null() {
	if w.beforeValue() {
		w.buf.WriteString("null")
	}
}

// Bool writes a JSON boolean literal.
func (w *Writer) Bool(v bool) {
	if !w.beforeValue() {
		return
	}

	if v {
		w.buf.WriteString("true")
	} else {
		w.buf.WriteString("false")
	}
}

// Int writes a signed integer as a JSON number.
func (w *Writer) Int(v int64) {
	if w.beforeValue() {
		w.buf.WriteString(strconv.FormatInt(v, 10))
	}
}

// Uint writes an unsigned integer as a JSON number.
func (w *Writer) Uint(v uint64) {
	if w.beforeValue() {
		w.buf.WriteString(strconv.FormatUint(v, 10))
	}
}

// Float writes a finite float as a JSON number, using the shortest
// representation that round-trips at the given bit size. Exponent notation
// kicks in outside [1e-6, 1e21), matching encoding/json. Non-finite values
// are a caller error; they are recorded, not emitted.
func (w *Writer) Float(v float64, bits int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		w.fail("non-finite float has no json number representation")

		return
	}

	if !w.beforeValue() {
		return
	}

	w.buf.Write(AppendFloat(nil, v, bits))
}

// AppendFloat appends the shortest JSON number representation of a finite
// float that round-trips at the given bit size. Exponent notation kicks in
// outside [1e-6, 1e21), matching encoding/json.
func AppendFloat(dst []byte, v float64, bits int) []byte {
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, v, format, -1, bits)

	if format == 'e' {
		// Clean up e-09 to e-9, as encoding/json does.
		if n := len(dst); n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}

// String writes a JSON string value.
func (w *Writer) String(v string) {
	if w.beforeValue() {
		w.writeEscaped(v)
	}
}

const hexDigits = "0123456789abcdef"

// writeEscaped writes v as a quoted, escaped JSON string. Control
// characters and the quote/backslash pair always escape; characters above
// U+007F escape only when the writer is configured conservatively.
func (w *Writer) writeEscaped(v string) {
	buf := w.buf

	buf.WriteByte('"')

	start := 0

	for i := 0; i < len(v); {
		char := v[i]

		if char < utf8.RuneSelf {
			if char >= 0x20 && char != '"' && char != '\\' {
				i++

				continue
			}

			if start < i {
				buf.WriteString(v[start:i])
			}

			w.writeEscapedByte(char)

			i++
			start = i

			continue
		}

		if !w.escapeNonASCII {
			_, size := utf8.DecodeRuneInString(v[i:])
			i += size

			continue
		}

		if start < i {
			buf.WriteString(v[start:i])
		}

		char32, size := utf8.DecodeRuneInString(v[i:])
		if char32 == utf8.RuneError && size == 1 {
			w.writeUnicodeEscape(utf8.RuneError)
		} else if char32 > 0xFFFF {
			high, low := utf16.EncodeRune(char32)
			w.writeUnicodeEscape(high)
			w.writeUnicodeEscape(low)
		} else {
			w.writeUnicodeEscape(char32)
		}

		i += size
		start = i
	}

	if start < len(v) {
		buf.WriteString(v[start:])
	}

	buf.WriteByte('"')
}

func (w *Writer) writeEscapedByte(char byte) {
	switch char {
	case '"':
		w.buf.WriteString(`\"`)
	case '\\':
		w.buf.WriteString(`\\`)
	case '\b':
		w.buf.WriteString(`\b`)
	case '\f':
		w.buf.WriteString(`\f`)
	case '\n':
		w.buf.WriteString(`\n`)
	case '\r':
		w.buf.WriteString(`\r`)
	case '\t':
		w.buf.WriteString(`\t`)
	default:
		w.writeUnicodeEscape(rune(char))
	}
}

func (w *Writer) writeUnicodeEscape(char rune) {
	w.buf.WriteString(`\u`)
	w.buf.WriteByte(hexDigits[char>>12&0xF])
	w.buf.WriteByte(hexDigits[char>>8&0xF])
	w.buf.WriteByte(hexDigits[char>>4&0xF])
	w.buf.WriteByte(hexDigits[char&0xF])
}
