package eventfmt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/message"
)

// Value is the closed sum type carrying all property data attached to an
// event. Exactly four variants exist: Scalar, Sequence, Structure and
// Dictionary. They compose to arbitrary depth.
//
// Values are constructed upstream, are immutable for the duration of one
// Format call, and are never retained by the formatter past that call.
type Value interface {
	isValue()
}

// Formattable is the capability implemented by values that can render
// themselves with a format spec and a culture-specific printer.
//
// The append-style signature lets the formatter pass a pre-sized scratch
// buffer as a fast path; implementations grow the buffer as needed, so the
// bound never truncates output.
type Formattable interface {
	AppendFormat(dst []byte, format string, printer *message.Printer) []byte
}

// ScalarKind tags the native representation held by a Scalar. The kind is
// fixed at construction so the encoding hot path is a plain switch, not a
// reflective type inspection.
type ScalarKind uint8

const (
	// KindNull is the null scalar.
	KindNull ScalarKind = iota
	// KindString holds a string.
	KindString
	// KindBool holds a bool.
	KindBool
	// KindInt holds an int64 (all signed widths funnel here).
	KindInt
	// KindUint holds a uint64 (all unsigned widths funnel here).
	KindUint
	// KindFloat32 holds a float32.
	KindFloat32
	// KindFloat64 holds a float64.
	KindFloat64
	// KindRune holds a single character.
	KindRune
	// KindTime holds a point in time, with or without a zone offset.
	KindTime
	// KindDate holds a calendar date without a time component.
	KindDate
	// KindTimeOfDay holds a wall-clock time without a date component.
	KindTimeOfDay
	// KindDuration holds an elapsed time.
	KindDuration
	// KindUUID holds a universally-unique identifier.
	KindUUID
	// KindEnum holds the symbolic name of an enumerated constant.
	KindEnum
	// KindFormattable holds a value implementing Formattable.
	KindFormattable
	// KindAny holds any other value; it renders through its default
	// textual representation as a last resort.
	KindAny
)

// Scalar wraps exactly one native value. The zero Scalar is the null scalar.
type Scalar struct {
	kind  ScalarKind
	value any
}

func (Scalar) isValue() {}

// Kind returns the kind tag assigned at construction.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Native returns the wrapped native value. It is nil for KindNull.
func (s Scalar) Native() any { return s.value }

// NullValue returns the null scalar.
func NullValue() Scalar { return Scalar{} }

// StringValue wraps a string.
func StringValue(v string) Scalar { return Scalar{kind: KindString, value: v} }

// BoolValue wraps a bool.
func BoolValue(v bool) Scalar { return Scalar{kind: KindBool, value: v} }

// IntValue wraps a signed integer of any width.
func IntValue(v int64) Scalar { return Scalar{kind: KindInt, value: v} }

// UintValue wraps an unsigned integer of any width.
func UintValue(v uint64) Scalar { return Scalar{kind: KindUint, value: v} }

// Float32Value wraps a float32.
func Float32Value(v float32) Scalar { return Scalar{kind: KindFloat32, value: v} }

// Float64Value wraps a float64.
func Float64Value(v float64) Scalar { return Scalar{kind: KindFloat64, value: v} }

// RuneValue wraps a single character. It renders as a one-character string.
func RuneValue(v rune) Scalar { return Scalar{kind: KindRune, value: v} }

// TimeValue wraps a point in time. The zone offset carried by v is preserved
// in the output.
func TimeValue(v time.Time) Scalar { return Scalar{kind: KindTime, value: v} }

// DateValue wraps a calendar date. The time-of-day portion of v is ignored.
func DateValue(v time.Time) Scalar { return Scalar{kind: KindDate, value: v} }

// TimeOfDayValue wraps a wall-clock time. The date portion of v is ignored.
func TimeOfDayValue(v time.Time) Scalar { return Scalar{kind: KindTimeOfDay, value: v} }

// DurationValue wraps an elapsed time.
func DurationValue(v time.Duration) Scalar { return Scalar{kind: KindDuration, value: v} }

// UUIDValue wraps a universally-unique identifier.
func UUIDValue(v uuid.UUID) Scalar { return Scalar{kind: KindUUID, value: v} }

// EnumValue captures the symbolic name of an enumerated constant at
// construction time, keeping name resolution off the encoding hot path.
func EnumValue(v fmt.Stringer) Scalar { return Scalar{kind: KindEnum, value: v.String()} }

// FormattableValue wraps a value that renders itself through the
// Formattable capability.
func FormattableValue(v Formattable) Scalar { return Scalar{kind: KindFormattable, value: v} }

// AnyValue wraps an arbitrary value, assigning the most specific kind it
// recognises. The inspection happens once, at construction.
func AnyValue(v any) Scalar {
	switch val := v.(type) {
	case nil:
		return NullValue()
	case Formattable:
		return FormattableValue(val)
	case string:
		return StringValue(val)
	case bool:
		return BoolValue(val)
	case int:
		return IntValue(int64(val))
	case int8:
		return IntValue(int64(val))
	case int16:
		return IntValue(int64(val))
	case int32:
		return IntValue(int64(val))
	case int64:
		return IntValue(val)
	case uint:
		return UintValue(uint64(val))
	case uint8:
		return UintValue(uint64(val))
	case uint16:
		return UintValue(uint64(val))
	case uint32:
		return UintValue(uint64(val))
	case uint64:
		return UintValue(val)
	case float32:
		return Float32Value(val)
	case float64:
		return Float64Value(val)
	case time.Time:
		return TimeValue(val)
	case time.Duration:
		return DurationValue(val)
	case uuid.UUID:
		return UUIDValue(val)
	case error:
		return StringValue(val.Error())
	default:
		return Scalar{kind: KindAny, value: v}
	}
}

// Sequence is an ordered list of Values. Elements may be heterogeneous and
// nested to arbitrary depth. It renders as a JSON array.
type Sequence struct {
	Elements []Value
}

func (Sequence) isValue() {}

// SequenceValue builds a Sequence from the given elements.
func SequenceValue(elements ...Value) Sequence {
	return Sequence{Elements: elements}
}

// Member is one named member of a Structure.
type Member struct {
	Name  string
	Value Value
}

// Structure is an ordered list of named members, optionally carrying a type
// tag discriminator. It renders as a JSON object; member names and the type
// tag key pass through the active naming policy.
type Structure struct {
	// TypeTag, when non-empty, is emitted as a sibling key after the members.
	TypeTag string
	Members []Member
}

func (Structure) isValue() {}

// DictionaryEntry is one key/value pair of a Dictionary. Keys are scalars,
// not limited to strings; they are stringified when emitted.
type DictionaryEntry struct {
	Key   Scalar
	Value Value
}

// Dictionary is an ordered mapping from Scalar key to Value. It renders as
// a JSON object whose keys are the stringified, policy-transformed keys. A
// null key renders under the "null" sentinel key.
type Dictionary struct {
	Entries []DictionaryEntry
}

func (Dictionary) isValue() {}
