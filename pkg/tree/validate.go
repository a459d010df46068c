package tree

import (
	"fmt"

	"github.com/confkit/confkit/pkg/types"
)

// ValidationError reports a structural limit violation found by Validate.
type ValidationError struct {
	Limit    string // name of the limit that was exceeded
	Current  int    // observed value
	Maximum  int    // configured maximum
	NodePath string // path to the offending node
}

func (e *ValidationError) Error() string {
	if e.NodePath != "" {
		return fmt.Sprintf("limit exceeded at %q: %s is %d (max %d)",
			e.NodePath, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// Validate checks the subtree rooted at n against limits. A zero limit
// field disables that check. The first violation is returned as a
// *ValidationError wrapped in a limit-kinded types.Error.
func (n *Node) Validate(limits types.Limits) error {
	return n.validateRecursive(limits, "", 0)
}

func (n *Node) validateRecursive(limits types.Limits, parentPath string, depth int) error {
	path := parentPath
	if path != "" {
		path += PathSeparator
	}
	path += n.Name

	if limits.MaxDepth > 0 && depth > limits.MaxDepth {
		return limitViolation(&ValidationError{
			Limit: "MaxDepth", Current: depth, Maximum: limits.MaxDepth, NodePath: path,
		})
	}
	if limits.MaxNameLen > 0 && len(n.Name) > limits.MaxNameLen {
		return limitViolation(&ValidationError{
			Limit: "MaxNameLen", Current: len(n.Name), Maximum: limits.MaxNameLen, NodePath: path,
		})
	}
	if v, ok := n.Value(); ok && limits.MaxValueLen > 0 && len(v) > limits.MaxValueLen {
		return limitViolation(&ValidationError{
			Limit: "MaxValueLen", Current: len(v), Maximum: limits.MaxValueLen, NodePath: path,
		})
	}
	if limits.MaxChildren > 0 && len(n.Children) > limits.MaxChildren {
		return limitViolation(&ValidationError{
			Limit: "MaxChildren", Current: len(n.Children), Maximum: limits.MaxChildren, NodePath: path,
		})
	}

	for _, child := range n.Children {
		if err := child.validateRecursive(limits, path, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func limitViolation(ve *ValidationError) error {
	return &types.Error{
		Kind: types.ErrKindLimit,
		Msg:  ve.Error(),
		Err:  ve,
	}
}
