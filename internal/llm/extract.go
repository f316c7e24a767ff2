package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first balanced JSON object out of a noisy
// backend reply. Backends occasionally wrap JSON in markdown code
// fences or prepend commentary, so the reply is first stripped of
// fence markers and then scanned for the first `{...}` span, honoring
// string literals and escapes. A reply with no complete object (for
// example one truncated mid-generation) is an ErrInvalidResponse.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	stripped := stripCodeFences(text)

	start := strings.IndexByte(stripped, '{')
	if start < 0 {
		return nil, &ErrInvalidResponse{
			Content: text,
			Err:     fmt.Errorf("no JSON object in reply"),
		}
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(stripped); i++ {
		c := stripped[i]

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
				raw := json.RawMessage(stripped[start : i+1])
				if !json.Valid(raw) {
					return nil, &ErrInvalidResponse{
						Content: text,
						Err:     fmt.Errorf("extracted span is not valid JSON"),
					}
				}
				return raw, nil
			}
		}
	}

	return nil, &ErrInvalidResponse{
		Content: text,
		Err:     fmt.Errorf("unbalanced JSON object in reply"),
	}
}

// stripCodeFences removes markdown fence lines. When a fenced block is
// present only its body is kept, so commentary outside the fence cannot
// shadow the payload.
func stripCodeFences(text string) string {
	open := strings.Index(text, "```")
	if open < 0 {
		return text
	}

	body := text[open+3:]
	// Drop an optional language tag on the fence line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(body[:nl])
		if firstLine == "" || isFenceLanguage(firstLine) {
			body = body[nl+1:]
		}
	}

	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}

	return body
}

func isFenceLanguage(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
