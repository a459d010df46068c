package conftext

import "strings"

// DecodeValue decodes the raw text following the assignment token:
// trims surrounding whitespace, truncates at the first '#' outside any
// quoted run, and strips one matching pair of surrounding quotes.
//
// Quote tracking is a two-flag state machine: each quote character
// toggles its own state only while the other state is inactive, so an
// unterminated quote keeps its state on for the rest of the scan and a
// later '#' is treated as quoted content rather than a comment.
func DecodeValue(raw string) string {
	s := strings.Trim(raw, " \t\r\n")

	inSingle, inDouble := false, false
scan:
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case SingleQuote[0]:
			if !inDouble {
				inSingle = !inSingle
			}
		case DoubleQuote[0]:
			if !inSingle {
				inDouble = !inDouble
			}
		case CommentPrefix[0]:
			if !inSingle && !inDouble {
				s = strings.TrimRight(s[:i], " \t")
				break scan
			}
		}
	}

	// Strip exactly one outer pair of matching quotes; the content
	// between them is returned verbatim.
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == SingleQuote[0] || first == DoubleQuote[0]) {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
