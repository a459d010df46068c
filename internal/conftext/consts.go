// Package conftext implements the line-oriented, indentation-structured
// configuration text codec: input decoding, the indentation parser, the
// value decoder, and the text emitter.
package conftext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// CommentPrefix starts a full-line or trailing comment.
	CommentPrefix = "#"

	// Assignment separates a key from its value.
	Assignment = "="

	// SingleQuote delimits a literal value run.
	SingleQuote = "'"

	// DoubleQuote delimits a literal value run.
	DoubleQuote = "\""

	// RootName is the name of the synthetic node wrapping every parsed tree.
	RootName = "root"

	// ============================================================================
	// Indentation
	// ============================================================================

	// Indent is the space character; the only character that carries
	// indentation weight.
	Indent = " "

	// IndentUnit is the number of spaces per nesting level. Any indent
	// of 1..IndentUnit counts as the first nested level.
	IndentUnit = 4

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CR is the carriage return character, stripped per line.
	CR = "\r"

	// LF is the line feed character separating lines.
	LF = "\n"

	// ============================================================================
	// Encodings
	// ============================================================================

	// UTF16CodeUnitSize is the byte width of one UTF-16 code unit.
	UTF16CodeUnitSize = 2
)

// Byte-order marks recognized during input decoding.
var (
	// UTF8BOM is the UTF-8 byte-order mark.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the UTF-16 little-endian byte-order mark.
	UTF16LEBOM = []byte{0xFF, 0xFE}
)
