package util

import (
	"fmt"
	"strings"
)

// FirstJSONObject returns the first balanced top-level JSON object in raw.
// The scan is string-aware: braces inside quoted strings are ignored and
// backslash escapes are respected, so model prose around the object or
// braces inside text fields never break the extraction.
func FirstJSONObject(raw string) (string, error) {
	return firstBalanced(raw, '{', '}')
}

// FirstJSONArray returns the first balanced top-level JSON array in raw.
func FirstJSONArray(raw string) (string, error) {
	return firstBalanced(raw, '[', ']')
}

func firstBalanced(raw string, open, close byte) (string, error) {
	start := strings.IndexByte(raw, open)
	if start < 0 {
		return "", fmt.Errorf("no %q found in text", string(open))
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]

		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced %q starting at offset %d", string(open), start)
}
