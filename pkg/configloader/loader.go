// Package configloader loads formatter configurations from YAML documents,
// files, and environment variables.
//
// Loaded values overlay the defaults: only keys present in the source are
// applied, so a partial document is always valid. Recognised keys:
//
//	delimiter:         string appended after each event document
//	render_message:    bool, emit the rendered message field
//	culture:           BCP 47 language tag, e.g. "en-US" ("" = invariant)
//	span_buffer_size:  scratch buffer capacity in bytes
//	strict_validation: bool, structural validation in the JSON writer
//	escape_non_ascii:  bool, \uXXXX-escape characters above U+007F
//	naming:            identity | camel | snake | snake_upper | kebab
package configloader

import (
	"golang.org/x/text/language"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/eventfmt"
)

type rawConfig struct {
	Delimiter        *string `mapstructure:"delimiter"         yaml:"delimiter"`
	RenderMessage    *bool   `mapstructure:"render_message"    yaml:"render_message"`
	Culture          string  `mapstructure:"culture"           yaml:"culture"`
	SpanBufferSize   *int    `mapstructure:"span_buffer_size"  yaml:"span_buffer_size"`
	StrictValidation *bool   `mapstructure:"strict_validation" yaml:"strict_validation"`
	EscapeNonASCII   *bool   `mapstructure:"escape_non_ascii"  yaml:"escape_non_ascii"`
	Naming           string  `mapstructure:"naming"            yaml:"naming"`
}

func applyRaw(raw rawConfig) (*eventfmt.Config, error) {
	cfg := eventfmt.DefaultConfig()

	if raw.Delimiter != nil {
		cfg.Delimiter = *raw.Delimiter
	}

	if raw.RenderMessage != nil {
		cfg.RenderMessage = *raw.RenderMessage
	}

	if raw.Culture != "" {
		tag, err := language.Parse(raw.Culture)
		if err != nil {
			return nil, ewrap.Wrapf(err, "invalid culture %q", raw.Culture)
		}

		cfg.Culture = tag
	}

	if raw.SpanBufferSize != nil {
		if *raw.SpanBufferSize <= 0 {
			return nil, ewrap.New("span_buffer_size must be positive").
				WithMetadata("value", *raw.SpanBufferSize)
		}

		cfg.SpanBufferSize = *raw.SpanBufferSize
	}

	if raw.StrictValidation != nil {
		cfg.StrictValidation = *raw.StrictValidation
	}

	if raw.EscapeNonASCII != nil {
		cfg.EscapeNonASCII = *raw.EscapeNonASCII
	}

	if raw.Naming != "" {
		policy, err := eventfmt.ParseNamingPolicy(raw.Naming)
		if err != nil {
			return nil, err
		}

		cfg.Naming = policy
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"delimiter",
		"render_message",
		"culture",
		"span_buffer_size",
		"strict_validation",
		"escape_non_ascii",
		"naming",
	}
}
