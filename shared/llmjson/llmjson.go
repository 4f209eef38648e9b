// Package llmjson isolates and parses the JSON object embedded in a raw
// completion from a language model. Completions are not guaranteed to be pure
// JSON: models wrap objects in fenced code blocks, backticks, or surrounding
// prose, so callers must treat extraction as fallible and degrade to a
// default value when it fails.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object found in text")

var (
	fenceRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	braceRegex = regexp.MustCompile(`(?s)\{.*\}`)
)

// Extract returns the first brace-delimited JSON object found in raw,
// stripping code fences and backtick wrapping first.
func Extract(raw string) (map[string]any, error) {
	var out map[string]any
	if err := ExtractInto(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ExtractInto unmarshals the first embedded JSON object into v.
func ExtractInto(raw string, v any) error {
	span := Span(raw)
	if span == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("invalid JSON object in text: %w", err)
	}

	return nil
}

// Span returns the brace-delimited candidate span, or "" when none exists.
// The match is greedy and multiline, mirroring how models interleave prose
// and JSON: the outermost braces win.
func Span(raw string) string {
	text := strings.TrimSpace(raw)

	if m := fenceRegex.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	text = strings.Trim(text, "`")

	return braceRegex.FindString(text)
}
