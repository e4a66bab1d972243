package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hyp3rd/eventfmt"
	"github.com/hyp3rd/eventfmt/internal/jsonw"
)

func newTestEncoder(policy eventfmt.NamingPolicy) (*encoder, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	return &encoder{
		w:       jsonw.NewWriter(buf, true, false),
		names:   newFieldNameTable(policy),
		policy:  policy,
		printer: message.NewPrinter(language.Und),
		scratch: eventfmt.DefaultSpanBufferSize,
	}, buf
}

type spillFormattable struct{ text string }

func (f spillFormattable) AppendFormat(dst []byte, _ string, _ *message.Printer) []byte {
	return append(dst, f.text...)
}

func TestVisitScalarEncodings(t *testing.T) {
	sydney := time.FixedZone("", 10*3600)

	testCases := []struct {
		name     string
		value    eventfmt.Value
		expected string
	}{
		{"null", eventfmt.NullValue(), `null`},
		{"string", eventfmt.StringValue("world"), `"world"`},
		{"bool true", eventfmt.BoolValue(true), `true`},
		{"bool false", eventfmt.BoolValue(false), `false`},
		{"int", eventfmt.IntValue(-42), `-42`},
		{"uint", eventfmt.UintValue(18446744073709551615), `18446744073709551615`},
		{"float64", eventfmt.Float64Value(1.5), `1.5`},
		{"float64 exponent", eventfmt.Float64Value(1e21), `1e+21`},
		{"float32", eventfmt.Float32Value(1.2), `1.2`},
		{"nan", eventfmt.Float64Value(floatNaN()), `"NaN"`},
		{"rune", eventfmt.RuneValue('x'), `"x"`},
		{
			"time with offset",
			eventfmt.TimeValue(time.Date(2024, 3, 15, 10, 30, 0, 123456700, sydney)),
			`"2024-03-15T10:30:00.1234567+10:00"`,
		},
		{
			"time keeps trailing zeros",
			eventfmt.TimeValue(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)),
			`"2024-03-15T10:30:00.0000000+00:00"`,
		},
		{
			"date only",
			eventfmt.DateValue(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)),
			`"2024-03-15"`,
		},
		{
			"time of day",
			eventfmt.TimeOfDayValue(time.Date(2024, 3, 15, 10, 30, 5, 500000000, time.UTC)),
			`"10:30:05.5000000"`,
		},
		{"duration", eventfmt.DurationValue(90 * time.Second), `"00:01:30"`},
		{"duration negative", eventfmt.DurationValue(-90 * time.Second), `"-00:01:30"`},
		{
			"duration with days and fraction",
			eventfmt.DurationValue(26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond),
			`"1.02:03:04.5000000"`,
		},
		{
			"uuid lowercase",
			eventfmt.UUIDValue(uuid.MustParse("3653D3EC-94D0-45B9-8507-94A08A4B286F")),
			`"3653d3ec-94d0-45b9-8507-94a08a4b286f"`,
		},
		{"enum symbolic name", eventfmt.EnumValue(eventfmt.WarningLevel), `"Warning"`},
		{"formattable", eventfmt.FormattableValue(spillFormattable{text: "custom"}), `"custom"`},
		{"fallback stringification", eventfmt.AnyValue(struct{ X, Y int }{1, 2}), `"{1 2}"`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			enc, buf := newTestEncoder(eventfmt.IdentityNaming{})

			require.NoError(t, enc.visit(testCase.value))
			assert.Equal(t, testCase.expected, buf.String())
		})
	}
}

func TestVisitFormattableOverflowingScratchIsNotTruncated(t *testing.T) {
	long := strings.Repeat("x", eventfmt.DefaultSpanBufferSize*4)

	enc, buf := newTestEncoder(eventfmt.IdentityNaming{})

	require.NoError(t, enc.visit(eventfmt.FormattableValue(spillFormattable{text: long})))
	assert.Equal(t, `"`+long+`"`, buf.String())
}

func TestVisitStructureMemberNamesUsePolicy(t *testing.T) {
	enc, buf := newTestEncoder(eventfmt.SnakeCaseLowerNaming{})

	value := eventfmt.Structure{
		TypeTag: "OrderLine",
		Members: []eventfmt.Member{
			{Name: "ProductId", Value: eventfmt.IntValue(9)},
		},
	}

	require.NoError(t, enc.visit(value))
	assert.Equal(t, `{"product_id":9,"type_tag":"OrderLine"}`, buf.String())
}

func TestVisitDictionaryKeysAreStringified(t *testing.T) {
	enc, buf := newTestEncoder(eventfmt.IdentityNaming{})

	value := eventfmt.Dictionary{Entries: []eventfmt.DictionaryEntry{
		{Key: eventfmt.IntValue(1), Value: eventfmt.StringValue("one")},
		{Key: eventfmt.BoolValue(true), Value: eventfmt.StringValue("yes")},
		{Key: eventfmt.NullValue(), Value: eventfmt.StringValue("none")},
	}}

	require.NoError(t, enc.visit(value))
	assert.Equal(t, `{"1":"one","true":"yes","null":"none"}`, buf.String())
}

func TestVisitDeepNestingTerminates(t *testing.T) {
	var value eventfmt.Value = eventfmt.StringValue("leaf")

	for range 200 {
		value = eventfmt.SequenceValue(value)
	}

	enc, buf := newTestEncoder(eventfmt.IdentityNaming{})

	require.NoError(t, enc.visit(value))
	assert.Equal(t, strings.Repeat("[", 200)+`"leaf"`+strings.Repeat("]", 200), buf.String())
}

func TestVisitNilValueRendersNull(t *testing.T) {
	enc, buf := newTestEncoder(eventfmt.IdentityNaming{})

	require.NoError(t, enc.visit(nil))
	assert.Equal(t, `null`, buf.String())
}

func TestVisitUnsupportedShape(t *testing.T) {
	enc, _ := newTestEncoder(eventfmt.IdentityNaming{})

	err := enc.visit(&eventfmt.Dictionary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value shape")
}
