package eventfmt

import (
	"golang.org/x/text/language"
)

// ConfigBuilder provides a fluent API for constructing formatter
// configurations.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder with the default configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

// WithDelimiter sets the string appended after each event document.
// Example: builder.WithDelimiter("\r\n").
func (b *ConfigBuilder) WithDelimiter(delimiter string) *ConfigBuilder {
	b.config.Delimiter = delimiter

	return b
}

// WithRenderMessage enables or disables the rendered-message field.
func (b *ConfigBuilder) WithRenderMessage(enable bool) *ConfigBuilder {
	b.config.RenderMessage = enable

	return b
}

// WithCulture sets the format provider for culture-aware formatting.
func (b *ConfigBuilder) WithCulture(tag language.Tag) *ConfigBuilder {
	b.config.Culture = tag

	return b
}

// WithSpanBufferSize sets the scratch buffer capacity for the Formattable
// fast path. Non-positive values fall back to the default.
func (b *ConfigBuilder) WithSpanBufferSize(size int) *ConfigBuilder {
	if size <= 0 {
		size = DefaultSpanBufferSize
	}

	b.config.SpanBufferSize = size

	return b
}

// WithStrictValidation toggles structural validation in the JSON writer.
func (b *ConfigBuilder) WithStrictValidation(enable bool) *ConfigBuilder {
	b.config.StrictValidation = enable

	return b
}

// WithEscapeNonASCII toggles \uXXXX escaping of characters above U+007F.
func (b *ConfigBuilder) WithEscapeNonASCII(enable bool) *ConfigBuilder {
	b.config.EscapeNonASCII = enable

	return b
}

// WithNaming sets the key-casing policy. A nil policy resets to identity.
func (b *ConfigBuilder) WithNaming(policy NamingPolicy) *ConfigBuilder {
	if policy == nil {
		policy = IdentityNaming{}
	}

	b.config.Naming = policy

	return b
}

// Build returns the constructed configuration.
func (b *ConfigBuilder) Build() *Config {
	config := b.config

	return &config
}
