package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindName     ErrKind = iota // key name fails the character-set validator
	ErrKindNotFound                // missing child/path segment
	ErrKindLimit                   // structural limit exceeded (depth, fan-out, lengths)
	ErrKindIO                      // byte-source collaborator failed
	ErrKindEncoding                // input bytes not decodable with the requested encoding
)

// Error is the concrete error type returned across the module.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidName indicates a key name outside the allowed character set.
	ErrInvalidName = &Error{Kind: ErrKindName, Msg: "invalid key name"}
	// ErrNotFound indicates a missing child or unresolved path segment.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrDepthExceeded indicates the parser's nesting bound was hit.
	ErrDepthExceeded = &Error{Kind: ErrKindLimit, Msg: "nesting depth limit exceeded"}
	// ErrUnsupportedEncoding indicates an unrecognized input encoding name.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindEncoding, Msg: "unsupported input encoding"}
)

// IsKind reports whether err (or anything it wraps) is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// Input encodings accepted by ParseOptions.InputEncoding.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"
	EncodingLatin1  = "LATIN1"
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// InputEncoding names the encoding of the raw bytes.
	// Supported values: "" or "UTF-8" (default), "UTF-16LE", "LATIN1".
	// UTF-8 and UTF-16LE byte-order marks are detected regardless.
	InputEncoding string

	// Limits bounds tree construction during parsing.
	// If nil, DefaultLimits() is used.
	Limits *Limits
}

// SaveOptions controls text emission behavior.
type SaveOptions struct {
	// Indent is the number of spaces per nesting level.
	// Zero means the format default of 4.
	Indent int
}
