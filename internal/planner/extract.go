package planner

import (
	"errors"
	"strings"
)

// ExtractJSON recovers the outermost JSON object embedded in raw.
//
// Generator output is not guaranteed to be pure JSON: models wrap payloads in
// prose ("Here is your itinerary: ...") or markdown code fences. The scan
// starts at the first '{' and tracks brace depth, skipping braces that occur
// inside string literals (including escaped quotes), and returns the slice up
// to the matching close brace.
//
// Returns an error when raw contains no '{' or the braces never balance;
// callers map that to domain.ErrGenerationMalformed.
func ExtractJSON(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", errors.New("no JSON object found in output")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", errors.New("unbalanced JSON object in output")
}
