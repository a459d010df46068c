package tree

import (
	"fmt"

	"github.com/confkit/confkit/pkg/types"
)

// PathSeparator is the forward slash used to separate segments in
// Locate paths.
const PathSeparator = "/"

// Node represents one configuration entry.
type Node struct {
	// Name is the key text. Immutable after creation.
	Name string

	// Parent is a weak back-reference for upward navigation.
	// Never treated as an ownership edge.
	Parent *Node

	// Children holds direct children in insertion order.
	Children []*Node

	value    string
	hasValue bool
}

// New creates a standalone root node. The programmatic entry point for
// building trees without parsing.
func New(name string) (*Node, error) {
	if !ValidName(name) {
		return nil, invalidName(name)
	}
	return &Node{Name: name}, nil
}

func invalidName(name string) error {
	return &types.Error{
		Kind: types.ErrKindName,
		Msg:  fmt.Sprintf("invalid key name %q", name),
		Err:  types.ErrInvalidName,
	}
}

// AddChild validates name, creates a new node, and appends it as the last
// child. Repeated names are allowed; each call appends a distinct node.
func (n *Node) AddChild(name string) (*Node, error) {
	if !ValidName(name) {
		return nil, invalidName(name)
	}
	child := &Node{Name: name, Parent: n}
	n.Children = append(n.Children, child)
	return child, nil
}

// AddChildValue composes AddChild and SetValue.
func (n *Node) AddChildValue(name, value string) (*Node, error) {
	child, err := n.AddChild(name)
	if err != nil {
		return nil, err
	}
	child.SetValue(value)
	return child, nil
}

// SetValue stores value on the node, replacing any previous value.
// The empty string is a present value, distinct from no value at all.
func (n *Node) SetValue(value string) {
	n.value = value
	n.hasValue = true
}

// ClearValue removes the node's value, returning it to the absent state.
func (n *Node) ClearValue() {
	n.value = ""
	n.hasValue = false
}

// Value returns the node's value and whether one is present.
func (n *Node) Value() (string, bool) {
	return n.value, n.hasValue
}

// HasValue reports whether the node carries a value, including the
// empty string.
func (n *Node) HasValue() bool {
	return n.hasValue
}

// FirstChild returns the first child in insertion order, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// NextSibling returns the node following n in its parent's child list,
// or nil when n is the last child or has no parent.
func (n *Node) NextSibling() *Node {
	if n.Parent == nil {
		return nil
	}
	siblings := n.Parent.Children
	for i, s := range siblings {
		if s == n {
			if i+1 < len(siblings) {
				return siblings[i+1]
			}
			return nil
		}
	}
	return nil
}

// ChildByName scans direct children only and returns the first node with
// the given name in insertion order, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Locate resolves a slash-separated path relative to n. Empty segments
// (leading, trailing, or doubled slashes) are skipped and do not consume
// a resolution step. Returns a not-found error naming the first
// unresolved segment.
func (n *Node) Locate(path string) (*Node, error) {
	current := n
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != PathSeparator[0] {
			continue
		}
		if i > start {
			segment := path[start:i]
			next := current.ChildByName(segment)
			if next == nil {
				return nil, &types.Error{
					Kind: types.ErrKindNotFound,
					Msg:  fmt.Sprintf("path %q: segment %q not found", path, segment),
					Err:  types.ErrNotFound,
				}
			}
			current = next
		}
		start = i + 1
	}
	return current, nil
}

// Resolve returns the value at path, or fallback when the path does not
// resolve or the located node has no value. The exploratory companion
// to Locate.
func (n *Node) Resolve(path, fallback string) string {
	node, err := n.Locate(path)
	if err != nil {
		return fallback
	}
	if v, ok := node.Value(); ok {
		return v
	}
	return fallback
}

// RemoveChild removes the first direct child with the given name.
// Reports whether a child was removed.
func (n *Node) RemoveChild(name string) bool {
	for i, child := range n.Children {
		if child.Name == name {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return true
		}
	}
	return false
}

// Detach unlinks n from its parent's child list and severs the back
// reference, releasing the subtree to the garbage collector once the
// caller drops its own references. Detaching a root is a no-op.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	for i, child := range p.Children {
		if child == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}
