package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// EscapeQuotes escapes every double quote that is not already escaped, so the
// result can sit inside a Rust string literal. Existing escape sequences are
// left as they are, and every other byte is copied unchanged.
func EscapeQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Hash computes a SHA-256 hex hash of a string.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
