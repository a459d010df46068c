package types

const (
	// DefaultMaxDepth is the standard nesting bound for parsed trees.
	// Configuration files deeper than a few levels are almost always a
	// mistake; 64 leaves generous headroom.
	DefaultMaxDepth = 64

	// DeepMaxDepth allows unusually deep trees for generated input.
	DeepMaxDepth = 512

	// ShallowMaxDepth is a conservative bound for untrusted input.
	ShallowMaxDepth = 16

	// DefaultMaxNameLen is the standard bound on a single key name.
	DefaultMaxNameLen = 255

	// DefaultMaxValueLen is the standard bound on a single value.
	DefaultMaxValueLen = 1 << 20 // 1 MB

	// SmallMaxValueLen is a conservative value bound for untrusted input.
	SmallMaxValueLen = 64 << 10 // 64 KB

	// DefaultMaxChildren is the standard bound on direct children per node.
	DefaultMaxChildren = 16384
)

// Limits defines structural constraints used to validate trees and to
// bound the parser's ancestor stack. A zero field means "unlimited" for
// validation; the parser always enforces MaxDepth and substitutes
// DefaultMaxDepth when it is zero.
type Limits struct {
	// MaxDepth bounds nesting levels: top-level entries are level 0,
	// and any entry at level MaxDepth or deeper fails the parse.
	MaxDepth int

	// MaxNameLen is the maximum length of a key name in bytes.
	MaxNameLen int

	// MaxValueLen is the maximum length of a value in bytes.
	MaxValueLen int

	// MaxChildren is the maximum number of direct children per node.
	MaxChildren int
}

// DefaultLimits returns the standard limits. These are safe for all
// real-world configuration files.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:    DefaultMaxDepth,
		MaxNameLen:  DefaultMaxNameLen,
		MaxValueLen: DefaultMaxValueLen,
		MaxChildren: DefaultMaxChildren,
	}
}

// RelaxedLimits returns permissive limits for generated or machine-built
// trees. Use with caution on untrusted input.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:    DeepMaxDepth,
		MaxNameLen:  DefaultMaxNameLen,
		MaxValueLen: 10 << 20,
		MaxChildren: 65535,
	}
}

// StrictLimits returns conservative limits for resource-constrained
// environments or untrusted sources.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:    ShallowMaxDepth,
		MaxNameLen:  128,
		MaxValueLen: SmallMaxValueLen,
		MaxChildren: 1024,
	}
}
