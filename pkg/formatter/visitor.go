package formatter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/eventfmt"
)

// visit writes exactly one JSON value for any node of the value model,
// recursing through sequences, structures and dictionaries. A shape outside
// the closed four-variant sum is a contract violation by the upstream
// producer and fails loudly instead of emitting malformed JSON.
func (enc *encoder) visit(value eventfmt.Value) error {
	switch val := value.(type) {
	case nil:
		enc.w.Null()

		return nil
	case eventfmt.Scalar:
		return enc.visitScalar(val)
	case eventfmt.Sequence:
		enc.w.BeginArray()

		for _, element := range val.Elements {
			err := enc.visit(element)
			if err != nil {
				return err
			}
		}

		enc.w.EndArray()

		return nil
	case eventfmt.Structure:
		enc.w.BeginObject()

		for _, member := range val.Members {
			enc.w.Name(enc.policy.ConvertName(member.Name))

			err := enc.visit(member.Value)
			if err != nil {
				return err
			}
		}

		if val.TypeTag != "" {
			enc.w.Name(enc.names.TypeTag)
			enc.w.String(val.TypeTag)
		}

		enc.w.EndObject()

		return nil
	case eventfmt.Dictionary:
		enc.w.BeginObject()

		for _, entry := range val.Entries {
			enc.w.Name(enc.dictionaryKey(entry.Key))

			err := enc.visit(entry.Value)
			if err != nil {
				return err
			}
		}

		enc.w.EndObject()

		return nil
	default:
		return ewrap.New("unsupported value shape").
			WithMetadata("type", fmt.Sprintf("%T", value))
	}
}

//nolint:cyclop,funlen // It's a long switch still readable.
func (enc *encoder) visitScalar(scalar eventfmt.Scalar) error {
	w := enc.w

	switch scalar.Kind() {
	case eventfmt.KindNull:
		w.Null()
	case eventfmt.KindString:
		w.String(scalar.Native().(string))
	case eventfmt.KindBool:
		w.Bool(scalar.Native().(bool))
	case eventfmt.KindInt:
		w.Int(scalar.Native().(int64))
	case eventfmt.KindUint:
		w.Uint(scalar.Native().(uint64))
	case eventfmt.KindFloat32:
		enc.writeFloat(float64(scalar.Native().(float32)), 32)
	case eventfmt.KindFloat64:
		enc.writeFloat(scalar.Native().(float64), 64)
	case eventfmt.KindRune:
		w.String(string(scalar.Native().(rune)))
	case eventfmt.KindTime:
		w.String(scalar.Native().(time.Time).Format(timestampLayout))
	case eventfmt.KindDate:
		w.String(scalar.Native().(time.Time).Format(dateLayout))
	case eventfmt.KindTimeOfDay:
		w.String(scalar.Native().(time.Time).Format(timeOfDayLayout))
	case eventfmt.KindDuration:
		w.String(string(appendDuration(nil, scalar.Native().(time.Duration))))
	case eventfmt.KindUUID:
		w.String(scalar.Native().(uuid.UUID).String())
	case eventfmt.KindEnum:
		w.String(scalar.Native().(string))
	case eventfmt.KindFormattable:
		formattable := scalar.Native().(eventfmt.Formattable)
		out := formattable.AppendFormat(make([]byte, 0, enc.scratch), "", enc.printer)
		w.String(string(out))
	case eventfmt.KindAny:
		w.String(enc.printer.Sprintf("%v", scalar.Native()))
	default:
		return ewrap.New("unsupported scalar kind").
			WithMetadata("kind", int(scalar.Kind()))
	}

	return nil
}

// writeFloat emits a float as a JSON number. Non-finite values have no JSON
// number representation and render as their conventional name strings.
func (enc *encoder) writeFloat(value float64, bits int) {
	switch {
	case math.IsNaN(value):
		enc.w.String("NaN")
	case math.IsInf(value, 1):
		enc.w.String("Infinity")
	case math.IsInf(value, -1):
		enc.w.String("-Infinity")
	default:
		enc.w.Float(value, bits)
	}
}

// dictionaryKey stringifies a scalar dictionary key and applies the naming
// policy. Null keys map to the "null" sentinel key rather than being
// dropped.
func (enc *encoder) dictionaryKey(key eventfmt.Scalar) string {
	if key.Kind() == eventfmt.KindNull {
		return enc.names.Null
	}

	text := enc.appendScalarText(make([]byte, 0, enc.scratch), key, "")

	return enc.policy.ConvertName(string(text))
}

// appendDuration appends a duration in constant-width style:
// [-][d.]hh:mm:ss[.fffffff], with the fractional part emitted only when the
// sub-second component is non-zero.
func appendDuration(dst []byte, duration time.Duration) []byte {
	if duration < 0 {
		dst = append(dst, '-')
		duration = -duration
	}

	totalSeconds := int64(duration / time.Second)
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if days > 0 {
		dst = strconv.AppendInt(dst, days, 10)
		dst = append(dst, '.')
	}

	dst = appendTwoDigits(dst, hours)
	dst = append(dst, ':')
	dst = appendTwoDigits(dst, minutes)
	dst = append(dst, ':')
	dst = appendTwoDigits(dst, seconds)

	// 100ns ticks, seven digits.
	ticks := int64(duration%time.Second) / 100
	if ticks > 0 {
		dst = append(dst, '.')

		for shift := int64(1_000_000); shift > 0; shift /= 10 {
			dst = append(dst, byte('0'+(ticks/shift)%10))
		}
	}

	return dst
}

func appendTwoDigits(dst []byte, value int64) []byte {
	return append(dst, byte('0'+value/10%10), byte('0'+value%10))
}
