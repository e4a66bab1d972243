package eventfmt

import (
	"golang.org/x/text/language"
)

const (
	// DefaultDelimiter is appended after each serialized event, producing a
	// JSON-Lines stream.
	DefaultDelimiter = "\n"
	// DefaultSpanBufferSize is the scratch buffer capacity, in bytes, used
	// as a fast path for culture-aware scalar formatting.
	DefaultSpanBufferSize = 64
)

// Config holds configuration for the formatter. All fields are independent
// and optional; the zero-value semantics are documented per field, and
// DefaultConfig fills the remaining defaults.
type Config struct {
	// Delimiter is the string appended after each event document.
	Delimiter string
	// RenderMessage emits the rendered message alongside the template.
	RenderMessage bool
	// Culture selects the format provider used for culture-aware scalar
	// formatting. The undetermined tag is the invariant culture.
	Culture language.Tag
	// SpanBufferSize is the scratch buffer capacity for the Formattable
	// fast path. Output that does not fit grows the buffer; it is never
	// truncated.
	SpanBufferSize int
	// StrictValidation makes the JSON writer verify structural correctness
	// as it goes. Off by default for performance.
	StrictValidation bool
	// EscapeNonASCII escapes characters above U+007F as \uXXXX sequences.
	// On by default; callers with UTF-8-clean downstreams may relax it.
	EscapeNonASCII bool
	// Naming is the key-casing policy applied to every emitted object key.
	Naming NamingPolicy
}

// DefaultConfig returns the default formatter configuration.
func DefaultConfig() Config {
	return Config{
		Delimiter:        DefaultDelimiter,
		RenderMessage:    false,
		Culture:          language.Und,
		SpanBufferSize:   DefaultSpanBufferSize,
		StrictValidation: false,
		EscapeNonASCII:   true,
		Naming:           IdentityNaming{},
	}
}
