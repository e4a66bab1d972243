package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/hyp3rd/eventfmt"
)

func TestFromYAMLFullDocument(t *testing.T) {
	document := []byte(`
delimiter: "\r\n"
render_message: true
culture: en-US
span_buffer_size: 128
strict_validation: true
escape_non_ascii: false
naming: camel
`)

	cfg, err := FromYAML(document)
	require.NoError(t, err)

	assert.Equal(t, "\r\n", cfg.Delimiter)
	assert.True(t, cfg.RenderMessage)
	assert.Equal(t, language.MustParse("en-US"), cfg.Culture)
	assert.Equal(t, 128, cfg.SpanBufferSize)
	assert.True(t, cfg.StrictValidation)
	assert.False(t, cfg.EscapeNonASCII)
	assert.Equal(t, eventfmt.CamelCaseNaming{}, cfg.Naming)
}

func TestFromYAMLPartialDocumentKeepsDefaults(t *testing.T) {
	cfg, err := FromYAML([]byte("naming: snake\n"))
	require.NoError(t, err)

	assert.Equal(t, eventfmt.SnakeCaseLowerNaming{}, cfg.Naming)
	assert.Equal(t, eventfmt.DefaultDelimiter, cfg.Delimiter)
	assert.Equal(t, eventfmt.DefaultSpanBufferSize, cfg.SpanBufferSize)
	assert.True(t, cfg.EscapeNonASCII)
	assert.Equal(t, language.Und, cfg.Culture)
}

func TestFromYAMLRejectsUnknownNaming(t *testing.T) {
	_, err := FromYAML([]byte("naming: pascal\n"))
	require.Error(t, err)
}

func TestFromYAMLRejectsInvalidCulture(t *testing.T) {
	_, err := FromYAML([]byte("culture: not-a-culture-tag-at-all!\n"))
	require.Error(t, err)
}

func TestFromYAMLRejectsNonPositiveBuffer(t *testing.T) {
	_, err := FromYAML([]byte("span_buffer_size: 0\n"))
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formatter.yaml")

	require.NoError(t, os.WriteFile(path, []byte("render_message: true\n"), 0o600))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.RenderMessage)

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("EVENTFMT_NAMING", "kebab")
	t.Setenv("EVENTFMT_RENDER_MESSAGE", "true")

	cfg, err := FromEnv("eventfmt")
	require.NoError(t, err)

	assert.Equal(t, eventfmt.KebabCaseLowerNaming{}, cfg.Naming)
	assert.True(t, cfg.RenderMessage)
}
