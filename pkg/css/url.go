package css

import "strings"

// ParseURLValue extracts the address of a url() value, dropping the
// optional quotes. It reports false for anything that is not a non-empty
// url() function.
func ParseURLValue(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len("url()") || !strings.EqualFold(value[:4], "url(") || !strings.HasSuffix(value, ")") {
		return "", false
	}
	inner := strings.TrimSpace(value[4 : len(value)-1])
	if n := len(inner); n >= 2 && (inner[0] == '"' || inner[0] == '\'') && inner[n-1] == inner[0] {
		inner = strings.TrimSpace(inner[1 : n-1])
	}
	if inner == "" {
		return "", false
	}
	return inner, true
}

// ExtractURL returns the address referenced by an image token. Bare
// values that are not wrapped in url() are returned trimmed.
func ExtractURL(value string) string {
	if url, ok := ParseURLValue(value); ok {
		return url
	}
	return strings.TrimSpace(value)
}
