package tree

import "strings"

// nameMarks are the punctuation characters permitted in key names in
// addition to ASCII letters and digits.
const nameMarks = "$-_@.&+/"

// ValidName reports whether s is a legal key name: non-empty and composed
// entirely of ASCII letters, digits, and the marks $ - _ @ . & + /.
// Whitespace, '=', '#', '*', and all non-ASCII bytes are rejected.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case strings.IndexByte(nameMarks, c) >= 0:
		default:
			return false
		}
	}
	return true
}
