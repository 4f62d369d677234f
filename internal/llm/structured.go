package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a decoded value after schema checks pass.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object or array found in raw model
// output into T. It tolerates markdown code fences, prose around the
// payload, C-style comments and numbers written as ".5". If validator is
// non-nil, the decoded value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	return decodeOutput[T](raw, nil, validator)
}

// CleanJSON returns the first valid JSON value embedded in raw, normalized.
func CleanJSON(raw string) (string, error) {
	for _, c := range candidates(raw) {
		if json.Valid([]byte(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
}

// candidates lists every balanced {...} or [...] value in raw, left to
// right, after sanitizing.
func candidates(raw string) []string {
	body := unfence(raw)
	var out []string
	for offset := 0; offset < len(body); {
		idx := strings.IndexAny(body[offset:], "{[")
		if idx == -1 {
			break
		}
		if block := balancedBlock(body[offset+idx:]); block != "" {
			out = append(out, sanitize(block))
		}
		offset += idx + 1
	}
	return out
}

// decodeOutput decodes the first candidate that satisfies schema and fits
// T, then applies validator to it. Prose such as "[3]" ahead of the real
// payload is skipped this way.
func decodeOutput[T any](raw string, schema *Schema, validator SchemaValidator[T]) (T, error) {
	var zero T

	var firstErr error
	for _, payload := range candidates(raw) {
		if !json.Valid([]byte(payload)) {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: malformed JSON in response", ErrInvalidOutput)
			}
			continue
		}
		if schema != nil {
			if err := schema.Validate([]byte(payload)); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		}
		var result T
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %v", ErrInvalidOutput, err)
			}
			continue
		}
		if validator != nil {
			if err := validator(result); err != nil {
				return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
			}
		}
		return result, nil
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}
	return zero, firstErr
}

// unfence returns the body of the first ``` fenced block, or s unchanged
// when there is no complete fence.
func unfence(s string) string {
	open := strings.Index(s, "```")
	if open == -1 {
		return s
	}
	body := s[open+3:]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:] // drop the language tag line
	}
	end := strings.Index(body, "```")
	if end == -1 {
		return s
	}
	return body[:end]
}

// balancedBlock returns the balanced {...} or [...] value that starts at
// the first bracket of s.
func balancedBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}

	var stack []byte
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			stack = append(stack, '}')
		case c == '[':
			stack = append(stack, ']')
		case c == '}' || c == ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return ""
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitize drops // and /* */ comments and rewrites ".8" / "-.3" as
// "0.8" / "-0.3". String contents are copied verbatim.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString, escaped := false, false
	var prev byte // last significant byte written outside strings
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				prev = c
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				return b.String()
			}
			i += end + 3
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prev):
			b.WriteByte('0')
		}

		b.WriteByte(c)
		if c != ' ' && c != '\n' && c != '\r' && c != '\t' {
			prev = c
		}
	}
	return b.String()
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
