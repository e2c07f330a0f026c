package utils

import (
	"context"
	"strings"
)

// AIClientInterface is the opaque generation capability. Implementations may
// fail, time out, or return malformed content; callers own the recovery.
type AIClientInterface interface {
	// GenerateText returns free-form prose for the given prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON returns a response expected to be a single JSON document.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// CleanJSONResponse strips markdown fences and leading prose that providers
// wrap around JSON bodies, then trims to the outermost object or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatchingDelim(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
