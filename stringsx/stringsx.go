// Package stringsx provides string helpers not covered by the standard
// strings package.
package stringsx

import "strings"

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ToCamelCase converts snake_case to camelCase. Underscores are dropped and
// the following character is upper-cased; all other characters pass through
// unchanged.
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capitalize := false
	for _, c := range s {
		switch {
		case c == '_':
			capitalize = true
		case capitalize:
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			b.WriteRune(c)
			capitalize = false
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Chunks splits s into byte chunks of at most size bytes. The final chunk
// may be shorter. Chunking is byte-based, so a multi-byte rune on a chunk
// boundary is split across chunks. Chunks panics if size is not positive.
func Chunks(s string, size int) []string {
	if size <= 0 {
		panic("stringsx: chunk size must be greater than 0")
	}
	if s == "" {
		return nil
	}
	chunks := make([]string, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end])
	}
	return chunks
}
