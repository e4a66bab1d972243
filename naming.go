package eventfmt

import (
	"strings"
	"unicode"

	"github.com/hyp3rd/ewrap"
)

// NamingPolicy transforms the casing of every JSON object key the formatter
// emits. Implementations must be pure, deterministic and total: defined for
// every input including the empty string, and never failing.
//
// A policy is a casing/separator transform only. JSON escaping happens in
// the writer layer, never here.
type NamingPolicy interface {
	ConvertName(name string) string
}

// IdentityNaming returns keys unchanged. It is the default policy.
type IdentityNaming struct{}

// ConvertName returns name unchanged.
func (IdentityNaming) ConvertName(name string) string { return name }

// CamelCaseNaming converts keys to camelCase.
type CamelCaseNaming struct{}

// ConvertName converts name to camelCase.
func (CamelCaseNaming) ConvertName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}

	var out strings.Builder

	out.WriteString(strings.ToLower(words[0]))

	for _, word := range words[1:] {
		runes := []rune(word)
		out.WriteRune(unicode.ToUpper(runes[0]))
		out.WriteString(string(runes[1:]))
	}

	return out.String()
}

// SnakeCaseLowerNaming converts keys to lower snake_case.
type SnakeCaseLowerNaming struct{}

// ConvertName converts name to lower snake_case.
func (SnakeCaseLowerNaming) ConvertName(name string) string {
	return joinWords(name, "_", strings.ToLower)
}

// SnakeCaseUpperNaming converts keys to UPPER_SNAKE_CASE.
type SnakeCaseUpperNaming struct{}

// ConvertName converts name to UPPER_SNAKE_CASE.
func (SnakeCaseUpperNaming) ConvertName(name string) string {
	return joinWords(name, "_", strings.ToUpper)
}

// KebabCaseLowerNaming converts keys to lower kebab-case.
type KebabCaseLowerNaming struct{}

// ConvertName converts name to lower kebab-case.
func (KebabCaseLowerNaming) ConvertName(name string) string {
	return joinWords(name, "-", strings.ToLower)
}

func joinWords(name, separator string, mapWord func(string) string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}

	for i, word := range words {
		words[i] = mapWord(word)
	}

	return strings.Join(words, separator)
}

// splitWords breaks a key into words. Boundaries are explicit separators
// ('_', '-', ' '), lowercase-to-uppercase transitions, and digit-to-letter
// transitions. Inputs without letters or digits yield no words.
func splitWords(name string) []string {
	var (
		words   []string
		current []rune
		prev    rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, char := range name {
		switch {
		case char == '_' || char == '-' || char == ' ':
			flush()

			prev = 0

			continue
		case prev != 0 && unicode.IsLower(prev) && unicode.IsUpper(char):
			flush()
		case prev != 0 && unicode.IsDigit(prev) && unicode.IsLetter(char):
			flush()
		}

		current = append(current, char)
		prev = char
	}

	flush()

	return words
}

// ParseNamingPolicy resolves a case-insensitive policy name into a policy
// instance. Recognised names: identity, camel, snake, snake_upper, kebab.
func ParseNamingPolicy(name string) (NamingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "identity":
		return IdentityNaming{}, nil
	case "camel", "camelcase", "camel_case":
		return CamelCaseNaming{}, nil
	case "snake", "snakecase", "snake_case", "snake_lower":
		return SnakeCaseLowerNaming{}, nil
	case "snake_upper", "upper_snake", "screaming_snake":
		return SnakeCaseUpperNaming{}, nil
	case "kebab", "kebabcase", "kebab_case", "kebab_lower":
		return KebabCaseLowerNaming{}, nil
	default:
		return nil, ewrap.New("unknown naming policy").WithMetadata("name", name)
	}
}
