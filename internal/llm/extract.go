package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed value after JSON extraction.
// Returns nil if valid, or a descriptive error if not.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls a JSON object of type T out of raw model output.
// Models wrap JSON in markdown fences, prepend chatter, and occasionally
// emit comments or bare ".5" numerals; all of that is tolerated here. If
// validator is non-nil, the decoded value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	cleaned := stripCodeFences(raw)
	jsonStr := firstBalancedObject(cleaned)
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	jsonStr = stripComments(jsonStr)
	jsonStr = padBareDecimals(jsonStr)

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstBalancedObject returns the first balanced { ... } block in s,
// honoring string literals and escapes.
func firstBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// stripComments removes // line comments and /* */ block comments outside
// string values. Models emit these despite instructions not to.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}
		if inString {
			b.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// padBareDecimals rewrites invalid numeric literals such as ".8" or "-.3"
// into "0.8" and "-0.3" outside string values. JSON forbids the bare form
// but models produce it for fractional effort hours.
func padBareDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}
		if inString {
			b.WriteByte(c)
			continue
		}

		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && isValueStart(prevNonSpace(s, i-1)) {
			b.WriteByte('0')
		}

		b.WriteByte(c)
	}

	return b.String()
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return s[i]
		}
	}
	return 0
}

func isValueStart(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
