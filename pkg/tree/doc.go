// Package tree provides the in-memory hierarchical representation of a
// parsed configuration: named nodes with optional values and ordered
// children.
//
// # Core Types
//
// Node is the only structural type. A node owns its children through an
// ordered slice; the Parent pointer is a weak back-reference used for
// upward navigation only. Sibling names may repeat — the format allows
// repeated keys (for example multiple "bind" entries) — so name lookups
// return the first match in insertion order and iteration visits every
// sibling.
//
// A node's value is optional: a key with no "=" on its line has no value
// at all, which is observably different from a key assigned the empty
// string. Value reports both states.
//
// # Mutation and Lifetime
//
// Nodes are created through New (roots) and AddChild (everything else),
// never assembled by hand. Detach unlinks a subtree from its parent and
// severs its links; the garbage collector reclaims storage once the
// caller drops its references. Trees are not safe for concurrent use:
// callers sharing a tree across goroutines must supply their own mutual
// exclusion, and no operation may interleave with AddChild, SetValue, or
// Detach on the same subtree.
//
// # Validation
//
// Key names are restricted to ASCII letters, digits, and the marks
// $ - _ @ . & + / (see ValidName). Validate checks a whole tree against
// a types.Limits preset and reports the offending path.
package tree
