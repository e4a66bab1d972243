package eventfmt

import (
	"strconv"
	"strings"
)

// Token is one parsed element of a message template: either a run of literal
// text or a named property placeholder with optional alignment and format
// spec, e.g. {Count,5:000}.
type Token struct {
	// Text is the raw source text of the token. For property tokens it
	// includes the braces; it is what renders when the property is unbound.
	Text string
	// PropertyName is empty for literal text tokens.
	PropertyName string
	// Alignment is the minimum rendered width; negative means left-aligned.
	// Zero means no alignment was specified.
	Alignment int
	// Format is the optional format spec following the colon.
	Format string
}

// IsProperty reports whether the token is a property placeholder.
func (t Token) IsProperty() bool { return t.PropertyName != "" }

// MessageTemplate is a message template together with its parsed tokens.
// The formatter only ever reads the token list; parsing happens once, at
// event construction.
type MessageTemplate struct {
	// Raw is the original template text.
	Raw string
	// Tokens is the parsed token list, in source order.
	Tokens []Token
}

// ParseTemplate parses a message template. Parsing never fails: malformed
// placeholders (unclosed or empty braces, invalid property names) are kept
// as literal text, and doubled braces escape to single braces.
func ParseTemplate(text string) *MessageTemplate {
	template := &MessageTemplate{Raw: text}

	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			template.Tokens = append(template.Tokens, Token{Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); {
		char := text[i]

		switch {
		case char == '{' && i+1 < len(text) && text[i+1] == '{':
			literal.WriteByte('{')

			i += 2
		case char == '}' && i+1 < len(text) && text[i+1] == '}':
			literal.WriteByte('}')

			i += 2
		case char == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				// Unclosed placeholder, keep the rest as literal text.
				literal.WriteString(text[i:])

				i = len(text)

				break
			}

			raw := text[i : i+end+1]

			token, ok := parsePropertyToken(raw)
			if !ok {
				literal.WriteString(raw)
			} else {
				flush()

				template.Tokens = append(template.Tokens, token)
			}

			i += end + 1
		default:
			literal.WriteByte(char)

			i++
		}
	}

	flush()

	return template
}

// parsePropertyToken parses the raw source of one placeholder, braces
// included. It returns false when the interior is not a valid placeholder.
func parsePropertyToken(raw string) (Token, bool) {
	token := Token{Text: raw}

	body := raw[1 : len(raw)-1]

	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		token.Format = body[colon+1:]
		body = body[:colon]
	}

	if comma := strings.IndexByte(body, ','); comma >= 0 {
		alignment, err := strconv.Atoi(strings.TrimSpace(body[comma+1:]))
		if err != nil {
			return Token{}, false
		}

		token.Alignment = alignment
		body = body[:comma]
	}

	// Destructuring hints are an upstream concern; the name is what matters.
	body = strings.TrimPrefix(body, "@")
	body = strings.TrimPrefix(body, "$")

	if !isValidPropertyName(body) {
		return Token{}, false
	}

	token.PropertyName = body

	return token, true
}

func isValidPropertyName(name string) bool {
	if name == "" {
		return false
	}

	for _, char := range name {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char >= '0' && char <= '9':
		case char == '_':
		default:
			return false
		}
	}

	return true
}
