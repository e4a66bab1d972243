package formatter

import (
	"bytes"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hyp3rd/eventfmt"
	"github.com/hyp3rd/eventfmt/internal/jsonw"
)

// literalFormatFlag requests un-quoted rendering of string values in the
// rendered message, e.g. {Name:l}.
const literalFormatFlag = "l"

// renderMessageText substitutes the bound property values into the message
// template, producing the plain-text rendered message. String values render
// quoted unless the token carries the literal format flag; unbound
// placeholders render as their own source text.
func (enc *encoder) renderMessageText(event *eventfmt.Event) (string, error) {
	if event.Template == nil {
		return "", nil
	}

	out := make([]byte, 0, len(event.Template.Raw)+enc.scratch)

	for _, token := range event.Template.Tokens {
		if !token.IsProperty() {
			out = append(out, token.Text...)

			continue
		}

		var err error

		out, err = enc.renderToken(out, token, event)
		if err != nil {
			return "", err
		}
	}

	return string(out), nil
}

// hasRenderings reports whether any template token carries an explicit
// format spec. Templates with only bare placeholders produce no renderings
// metadata at all.
func hasRenderings(event *eventfmt.Event) bool {
	if event.Template == nil {
		return false
	}

	for _, token := range event.Template.Tokens {
		if token.IsProperty() && token.Format != "" {
			return true
		}
	}

	return false
}

// writeRenderings emits the renderings metadata object: per property name,
// in first-appearance order, one {Format, Rendering} pair for each token of
// that property carrying a format spec.
func (enc *encoder) writeRenderings(event *eventfmt.Event) error {
	w := enc.w

	w.Name(enc.names.Renderings)
	w.BeginObject()

	var order []string

	groups := make(map[string][]eventfmt.Token)

	for _, token := range event.Template.Tokens {
		if !token.IsProperty() || token.Format == "" {
			continue
		}

		if _, seen := groups[token.PropertyName]; !seen {
			order = append(order, token.PropertyName)
		}

		groups[token.PropertyName] = append(groups[token.PropertyName], token)
	}

	for _, name := range order {
		w.Name(enc.policy.ConvertName(name))
		w.BeginArray()

		for _, token := range groups[name] {
			text, err := enc.renderToken(make([]byte, 0, enc.scratch), token, event)
			if err != nil {
				return err
			}

			w.BeginObject()
			w.Name(enc.names.Format)
			w.String(token.Format)
			w.Name(enc.names.Rendering)
			w.String(string(text))
			w.EndObject()
		}

		w.EndArray()
	}

	w.EndObject()

	return nil
}

// renderToken renders one property token as plain text, applying its format
// spec and alignment. The result is JSON-string-encoded exactly once, at the
// outer level, by the caller.
func (enc *encoder) renderToken(dst []byte, token eventfmt.Token, event *eventfmt.Event) ([]byte, error) {
	value, bound := event.Property(token.PropertyName)
	if !bound {
		return append(dst, token.Text...), nil
	}

	start := len(dst)

	switch val := value.(type) {
	case eventfmt.Scalar:
		if val.Kind() == eventfmt.KindString && token.Format != literalFormatFlag {
			dst = append(dst, '"')
			dst = enc.appendScalarText(dst, val, token.Format)
			dst = append(dst, '"')
		} else {
			dst = enc.appendScalarText(dst, val, token.Format)
		}
	default:
		var err error

		dst, err = enc.appendValueJSON(dst, value)
		if err != nil {
			return nil, err
		}
	}

	if token.Alignment != 0 {
		dst = alignText(dst, start, token.Alignment)
	}

	return dst, nil
}

// appendValueJSON renders a non-scalar value in its JSON form for use inside
// the rendered message. Non-ASCII escaping is left to the outer encoding
// pass so backslashes are not doubled.
func (enc *encoder) appendValueJSON(dst []byte, value eventfmt.Value) ([]byte, error) {
	var buf bytes.Buffer

	sub := *enc
	sub.w = jsonw.NewWriter(&buf, false, false)

	err := sub.visit(value)
	if err != nil {
		return nil, err
	}

	return append(dst, buf.Bytes()...), nil
}

// appendScalarText renders a scalar as plain text, without quoting. Shared
// by the rendered-message path and dictionary key stringification.
//
//nolint:cyclop // One case per scalar kind.
func (enc *encoder) appendScalarText(dst []byte, scalar eventfmt.Scalar, format string) []byte {
	switch scalar.Kind() {
	case eventfmt.KindNull:
		return append(dst, "null"...)
	case eventfmt.KindString:
		return append(dst, scalar.Native().(string)...)
	case eventfmt.KindBool:
		return strconv.AppendBool(dst, scalar.Native().(bool))
	case eventfmt.KindInt:
		return appendFormattedInt(dst, scalar.Native().(int64), format)
	case eventfmt.KindUint:
		return appendFormattedUint(dst, scalar.Native().(uint64), format)
	case eventfmt.KindFloat32:
		return jsonw.AppendFloat(dst, float64(scalar.Native().(float32)), 32)
	case eventfmt.KindFloat64:
		return jsonw.AppendFloat(dst, scalar.Native().(float64), 64)
	case eventfmt.KindRune:
		return utf8.AppendRune(dst, scalar.Native().(rune))
	case eventfmt.KindTime:
		return scalar.Native().(time.Time).AppendFormat(dst, timestampLayout)
	case eventfmt.KindDate:
		return scalar.Native().(time.Time).AppendFormat(dst, dateLayout)
	case eventfmt.KindTimeOfDay:
		return scalar.Native().(time.Time).AppendFormat(dst, timeOfDayLayout)
	case eventfmt.KindDuration:
		return appendDuration(dst, scalar.Native().(time.Duration))
	case eventfmt.KindUUID:
		return append(dst, scalar.Native().(uuid.UUID).String()...)
	case eventfmt.KindEnum:
		return append(dst, scalar.Native().(string)...)
	case eventfmt.KindFormattable:
		return scalar.Native().(eventfmt.Formattable).AppendFormat(dst, format, enc.printer)
	default:
		return append(dst, enc.printer.Sprintf("%v", scalar.Native())...)
	}
}

// appendFormattedInt honours zero-pad ("000") and hex ("x"/"X") format
// specs; any other spec falls back to plain base-10 rendering.
func appendFormattedInt(dst []byte, value int64, format string) []byte {
	switch {
	case isZeroPadFormat(format):
		return appendZeroPadded(dst, strconv.FormatInt(value, 10), len(format))
	case format == "x":
		return strconv.AppendInt(dst, value, 16)
	case format == "X":
		return append(dst, bytes.ToUpper(strconv.AppendInt(nil, value, 16))...)
	default:
		return strconv.AppendInt(dst, value, 10)
	}
}

func appendFormattedUint(dst []byte, value uint64, format string) []byte {
	switch {
	case isZeroPadFormat(format):
		return appendZeroPadded(dst, strconv.FormatUint(value, 10), len(format))
	case format == "x":
		return strconv.AppendUint(dst, value, 16)
	case format == "X":
		return append(dst, bytes.ToUpper(strconv.AppendUint(nil, value, 16))...)
	default:
		return strconv.AppendUint(dst, value, 10)
	}
}

func isZeroPadFormat(format string) bool {
	if format == "" {
		return false
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '0' {
			return false
		}
	}

	return true
}

// appendZeroPadded pads the digit string to width digits, keeping a leading
// sign in front of the padding.
func appendZeroPadded(dst []byte, digits string, width int) []byte {
	if digits != "" && digits[0] == '-' {
		dst = append(dst, '-')
		digits = digits[1:]
	}

	for pad := width - len(digits); pad > 0; pad-- {
		dst = append(dst, '0')
	}

	return append(dst, digits...)
}

// alignText pads the token text rendered since start to the requested
// width: positive alignment right-aligns, negative left-aligns.
func alignText(dst []byte, start, alignment int) []byte {
	width := alignment
	if width < 0 {
		width = -width
	}

	pad := width - utf8.RuneCount(dst[start:])
	if pad <= 0 {
		return dst
	}

	if alignment < 0 {
		for ; pad > 0; pad-- {
			dst = append(dst, ' ')
		}

		return dst
	}

	dst = append(dst, make([]byte, pad)...)
	copy(dst[start+pad:], dst[start:len(dst)-pad])

	for i := start; i < start+pad; i++ {
		dst[i] = ' '
	}

	return dst
}
