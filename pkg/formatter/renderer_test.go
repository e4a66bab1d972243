package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/eventfmt"
)

func renderMessage(t *testing.T, template string, properties ...eventfmt.Property) string {
	t.Helper()

	enc, _ := newTestEncoder(eventfmt.IdentityNaming{})

	event := eventfmt.NewEvent(time.Unix(0, 0).UTC(), eventfmt.InformationLevel, template, properties...)

	text, err := enc.renderMessageText(event)
	require.NoError(t, err)

	return text
}

func TestRenderMessageQuotesStrings(t *testing.T) {
	text := renderMessage(t, "hello {Name}",
		eventfmt.Prop("Name", eventfmt.StringValue("world")))

	assert.Equal(t, `hello "world"`, text)
}

func TestRenderMessageLiteralFlagSkipsQuotes(t *testing.T) {
	text := renderMessage(t, "hello {Name:l}",
		eventfmt.Prop("Name", eventfmt.StringValue("world")))

	assert.Equal(t, "hello world", text)
}

func TestRenderMessageUnboundPlaceholderKeepsSourceText(t *testing.T) {
	text := renderMessage(t, "hello {Missing:000}")

	assert.Equal(t, "hello {Missing:000}", text)
}

func TestRenderMessageNonStringScalarsAreBare(t *testing.T) {
	text := renderMessage(t, "{Count} items in {Elapsed}",
		eventfmt.Prop("Count", eventfmt.IntValue(3)),
		eventfmt.Prop("Elapsed", eventfmt.DurationValue(90*time.Second)))

	assert.Equal(t, "3 items in 00:01:30", text)
}

func TestRenderMessageZeroPadFormat(t *testing.T) {
	testCases := []struct {
		name     string
		value    int64
		format   string
		expected string
	}{
		{"pads short value", 12, "000", "012"},
		{"keeps long value", 12345, "000", "12345"},
		{"pads negative after sign", -12, "0000", "-0012"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			text := renderMessage(t, "{N:"+testCase.format+"}",
				eventfmt.Prop("N", eventfmt.IntValue(testCase.value)))

			assert.Equal(t, testCase.expected, text)
		})
	}
}

func TestRenderMessageHexFormats(t *testing.T) {
	text := renderMessage(t, "{A:x} {A:X}",
		eventfmt.Prop("A", eventfmt.IntValue(255)))

	assert.Equal(t, "ff FF", text)
}

func TestRenderMessageAlignment(t *testing.T) {
	right := renderMessage(t, "[{N,5}]", eventfmt.Prop("N", eventfmt.IntValue(42)))
	left := renderMessage(t, "[{N,-5}]", eventfmt.Prop("N", eventfmt.IntValue(42)))
	full := renderMessage(t, "[{N,2}]", eventfmt.Prop("N", eventfmt.IntValue(12345)))

	assert.Equal(t, "[   42]", right)
	assert.Equal(t, "[42   ]", left)
	assert.Equal(t, "[12345]", full)
}

func TestRenderMessageNonScalarRendersAsJSON(t *testing.T) {
	text := renderMessage(t, "batch {Ids}",
		eventfmt.Prop("Ids", eventfmt.SequenceValue(
			eventfmt.IntValue(1), eventfmt.IntValue(2), eventfmt.IntValue(3))))

	assert.Equal(t, "batch [1,2,3]", text)
}

func TestRenderMessageEscapedBraces(t *testing.T) {
	text := renderMessage(t, "{{not a property}}")

	assert.Equal(t, "{not a property}", text)
}

func TestHasRenderings(t *testing.T) {
	withFormat := eventfmt.NewEvent(time.Unix(0, 0).UTC(), eventfmt.InformationLevel,
		"{A} and {B:000}")
	bareOnly := eventfmt.NewEvent(time.Unix(0, 0).UTC(), eventfmt.InformationLevel,
		"{A} and {B}")

	assert.True(t, hasRenderings(withFormat))
	assert.False(t, hasRenderings(bareOnly))
	assert.False(t, hasRenderings(&eventfmt.Event{}))
}

func TestAppendDuration(t *testing.T) {
	testCases := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{90 * time.Second, "00:01:30"},
		{-90 * time.Second, "-00:01:30"},
		{24 * time.Hour, "1.00:00:00"},
		{100 * time.Nanosecond, "00:00:00.0000001"},
		{26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond, "1.02:03:04.5000000"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, string(appendDuration(nil, testCase.duration)))
	}
}
