// Package utils provides small string helpers shared by config parsing and
// list validation.
package utils

import (
	"strconv"
	"strings"
)

// SplitAndTrim splits s by sep and trims whitespace from each part.
// Empty parts are omitted.
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ParsePairs parses "key=value" items separated by commas, as used by
// ERRANDS_COLORS. Items without '=' are skipped.
func ParsePairs(s string) map[string]string {
	pairs := make(map[string]string)
	for _, item := range SplitAndTrim(s, ",") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" {
			continue
		}
		pairs[key] = value
	}
	return pairs
}

// ParseBool accepts the usual truthy spellings (1, true, yes, on).
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "y":
		return true
	default:
		return false
	}
}

// JSONPointerToPath converts a JSON Pointer (RFC 6901) into a readable path.
// For example "/Urgent/1" becomes "Urgent[1]".
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		// ~1 is '/', ~0 is '~'
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
