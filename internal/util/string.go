package util

import (
	"regexp"
	"strings"
)

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// ClampRunes cuts s to at most maxRunes runes without a marker.
func ClampRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// newline and tab survive; free-text concepts are multi-line.
var controlCharsPattern = regexp.MustCompile(`[\x00-\x08\x0B-\x1F\x7F]`)

// \s is ASCII only; names often carry U+3000 or NBSP.
var whitespaceRunPattern = regexp.MustCompile(`[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// SanitizeText strips control characters, trims and clamps to maxRunes.
func SanitizeText(s string, maxRunes int) string {
	cleaned := controlCharsPattern.ReplaceAllString(s, "")
	return ClampRunes(strings.TrimSpace(cleaned), maxRunes)
}

// JoinWhitespace replaces every whitespace run in s with sep.
func JoinWhitespace(s, sep string) string {
	return whitespaceRunPattern.ReplaceAllString(s, sep)
}
