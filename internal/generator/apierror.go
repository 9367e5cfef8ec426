package generator

import (
	"fmt"
	"strings"
)

const maxAPIErrorChars = 200

// APIError represents a non-2xx response from the generation service. Body is
// scrubbed of key-like tokens and truncated.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

func newAPIError(statusCode int, body string, secrets ...string) *APIError {
	return &APIError{StatusCode: statusCode, Body: sanitize(body, secrets...)}
}

// sanitize redacts the given secrets and key-shaped tokens, collapses
// whitespace and truncates to maxAPIErrorChars runes.
func sanitize(input string, secrets ...string) string {
	out := input
	for _, secret := range secrets {
		if strings.TrimSpace(secret) != "" {
			out = strings.ReplaceAll(out, secret, "[REDACTED]")
		}
	}
	out = scrubKeyPrefixes(out)
	out = strings.Join(strings.Fields(out), " ")

	runes := []rune(out)
	if len(runes) <= maxAPIErrorChars {
		return out
	}
	return string(runes[:maxAPIErrorChars]) + "..."
}

func isKeyChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '_' || ch == '.'
}

// scrubKeyPrefixes redacts tokens that start with a well-known API key prefix.
func scrubKeyPrefixes(input string) string {
	out := input
	for _, prefix := range []string{"sk-", "AIza"} {
		searchFrom := 0
		for {
			idx := strings.Index(out[searchFrom:], prefix)
			if idx < 0 {
				break
			}
			start := searchFrom + idx
			end := start + len(prefix)
			for end < len(out) && isKeyChar(out[end]) {
				end++
			}
			if end == start+len(prefix) {
				searchFrom = end
				continue
			}
			out = out[:start] + "[REDACTED]" + out[end:]
			searchFrom = start + len("[REDACTED]")
		}
	}
	return out
}
