package eventfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateLiteralOnly(t *testing.T) {
	template := ParseTemplate("hello world")

	require.Len(t, template.Tokens, 1)
	assert.Equal(t, "hello world", template.Raw)
	assert.Equal(t, "hello world", template.Tokens[0].Text)
	assert.False(t, template.Tokens[0].IsProperty())
}

func TestParseTemplateProperties(t *testing.T) {
	template := ParseTemplate("user {Name} logged in from {Address:l} in {Elapsed,8:000}ms")

	require.Len(t, template.Tokens, 7)

	assert.Equal(t, "user ", template.Tokens[0].Text)
	assert.Equal(t, "ms", template.Tokens[6].Text)

	name := template.Tokens[1]
	assert.Equal(t, "{Name}", name.Text)
	assert.Equal(t, "Name", name.PropertyName)
	assert.Empty(t, name.Format)
	assert.Zero(t, name.Alignment)

	address := template.Tokens[3]
	assert.Equal(t, "Address", address.PropertyName)
	assert.Equal(t, "l", address.Format)

	elapsed := template.Tokens[5]
	assert.Equal(t, "{Elapsed,8:000}", elapsed.Text)
	assert.Equal(t, "Elapsed", elapsed.PropertyName)
	assert.Equal(t, "000", elapsed.Format)
	assert.Equal(t, 8, elapsed.Alignment)
}

func TestParseTemplateNegativeAlignment(t *testing.T) {
	template := ParseTemplate("{Name,-10}")

	require.Len(t, template.Tokens, 1)
	assert.Equal(t, -10, template.Tokens[0].Alignment)
}

func TestParseTemplateDestructuringHints(t *testing.T) {
	template := ParseTemplate("{@User} and {$Raw}")

	require.Len(t, template.Tokens, 3)
	assert.Equal(t, "User", template.Tokens[0].PropertyName)
	assert.Equal(t, "Raw", template.Tokens[2].PropertyName)
}

func TestParseTemplateEscapedBraces(t *testing.T) {
	template := ParseTemplate("{{literal}} {Name}")

	require.Len(t, template.Tokens, 2)
	assert.Equal(t, "{literal} ", template.Tokens[0].Text)
	assert.Equal(t, "Name", template.Tokens[1].PropertyName)
}

func TestParseTemplateMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unclosed brace", "count: {Count"},
		{"empty placeholder", "count: {}"},
		{"invalid name", "count: {a b}"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			template := ParseTemplate(testCase.input)

			require.Len(t, template.Tokens, 1)
			assert.Equal(t, testCase.input, template.Tokens[0].Text)
			assert.False(t, template.Tokens[0].IsProperty())
		})
	}
}

func TestParseTemplateEmpty(t *testing.T) {
	template := ParseTemplate("")

	assert.Empty(t, template.Tokens)
	assert.Empty(t, template.Raw)
}
