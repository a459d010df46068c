package tree

// ChildIterator walks a node's direct children in insertion order.
// It is lazy, finite, and non-restartable: once exhausted, Next keeps
// returning (nil, false). Mutating the child list while iterating is
// undefined.
type ChildIterator struct {
	remaining []*Node
}

// Iterator returns a fresh iterator over n's direct children.
func (n *Node) Iterator() *ChildIterator {
	return &ChildIterator{remaining: n.Children}
}

// Next returns the next child and true, or (nil, false) when the
// sequence is exhausted.
func (it *ChildIterator) Next() (*Node, bool) {
	if len(it.remaining) == 0 {
		return nil, false
	}
	head := it.remaining[0]
	it.remaining = it.remaining[1:]
	return head, true
}
