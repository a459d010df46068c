package tree

// initialStackCapacity pre-sizes the traversal stack. Configuration
// trees are shallow, so 32 avoids reallocation in practice.
const initialStackCapacity = 32

// WalkFunc is invoked once per node with the node's depth relative to
// the walk root (the root itself is depth 0). Returning a non-nil error
// stops the walk and propagates the error.
type WalkFunc func(n *Node, depth int) error

// Walk traverses the subtree rooted at n depth-first in insertion
// order, iteratively, using an explicit stack.
func Walk(n *Node, fn WalkFunc) error {
	type entry struct {
		node  *Node
		depth int
	}
	stack := make([]entry, 0, initialStackCapacity)
	stack = append(stack, entry{n, 0})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(top.node, top.depth); err != nil {
			return err
		}

		// Push children in reverse so the first child is visited first.
		children := top.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, entry{children[i], top.depth + 1})
		}
	}
	return nil
}
