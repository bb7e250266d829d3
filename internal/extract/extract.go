// Package extract recovers a JSON value embedded in free-form language-model
// output. Completions are not guaranteed to be pure JSON: models routinely
// wrap the value in markdown fences, prepend commentary or append trailing
// remarks. A naive first-brace-to-last-brace slice breaks as soon as the
// trailing prose contains a stray brace, so the scan here tracks nesting
// depth and string state to find exactly one balanced value.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when the text contains no object or array at all.
var ErrNoJSON = errors.New("no JSON found in response")

var (
	jsonFenceRe = regexp.MustCompile("(?i)```json\\s*")
	fenceRe     = regexp.MustCompile("```\\s*")
)

// JSON locates the first balanced JSON object or array in text and returns
// it. Markdown code fences are stripped first, and anything after the
// value's closing brace or bracket is ignored. Parse failures propagate so
// the caller can report the upstream response as malformed.
func JSON(text string) (json.RawMessage, error) {
	text = jsonFenceRe.ReplaceAllString(text, "")
	text = fenceRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	arrayStart := strings.IndexByte(text, '[')
	objectStart := strings.IndexByte(text, '{')

	var start int
	switch {
	case arrayStart == -1 && objectStart == -1:
		return nil, ErrNoJSON
	case arrayStart == -1:
		start = objectStart
	case objectStart == -1:
		start = arrayStart
	default:
		start = min(arrayStart, objectStart)
	}

	rest := text[start:]

	depth := 0
	inString := false
	escape := false
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		if escape {
			escape = false
			continue
		}
		switch ch {
		case '\\':
			escape = true
			continue
		case '"':
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		}
		if depth == 0 {
			return parse(rest[:i+1])
		}
	}

	// Depth never returned to zero, so the value is truncated or malformed.
	// Fall back to parsing everything from the start marker.
	return parse(rest)
}

// Unmarshal extracts the first balanced JSON value in text and decodes it
// into v.
func Unmarshal(text string, v any) error {
	raw, err := JSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding extracted JSON: %w", err)
	}
	return nil
}

func parse(candidate string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return nil, fmt.Errorf("parsing extracted JSON: %w", err)
	}
	return raw, nil
}
