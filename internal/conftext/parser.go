package conftext

import (
	"fmt"
	"strings"

	"github.com/confkit/confkit/pkg/tree"
	"github.com/confkit/confkit/pkg/types"
)

// Parse converts configuration text into a tree wrapped in a synthetic
// root node named "root". On any failure the tree built so far is
// released and only the error is returned; no partial tree escapes.
//
// Nesting is bounded by limits.MaxDepth (DefaultMaxDepth when zero);
// a line at that level or deeper fails the parse with a limit-kinded
// error.
func Parse(text string, limits types.Limits) (*tree.Node, error) {
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = types.DefaultMaxDepth
	}

	root, err := tree.New(RootName)
	if err != nil {
		return nil, err
	}

	type frame struct {
		node  *tree.Node
		level int
	}
	stack := make([]frame, 1, 16)
	stack[0] = frame{root, 0}

	lineNo := 0
	for _, line := range strings.Split(text, LF) {
		lineNo++
		line = strings.TrimSuffix(line, CR)

		// Count leading spaces only; a tab ends the indent scan and is
		// trimmed away with the key text below.
		indent := 0
		for indent < len(line) && line[indent] == Indent[0] {
			indent++
		}

		// Skip blank lines and lines whose first non-space character
		// starts a comment.
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[indent] == CommentPrefix[0] {
			continue
		}

		// Indentation maps to nesting in IndentUnit-wide bands: any
		// indent of 1..IndentUnit is the first nested level.
		level := 0
		if indent > 0 {
			level = 1 + (indent-1)/IndentUnit
		}
		if level >= maxDepth {
			return nil, &types.Error{
				Kind: types.ErrKindLimit,
				Msg:  fmt.Sprintf("conftext: line %d: nesting depth exceeds %d", lineNo, maxDepth),
				Err:  types.ErrDepthExceeded,
			}
		}

		// Pop to the ancestor this line attaches beneath.
		for stack[len(stack)-1].level >= level+1 {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		content := line[indent:]
		key := content
		rawValue := ""
		hasValue := false
		if eq := strings.IndexByte(content, Assignment[0]); eq >= 0 {
			key = content[:eq]
			rawValue = content[eq+1:]
			hasValue = true
		}
		key = strings.Trim(key, " \t")

		node, err := parent.AddChild(key)
		if err != nil {
			return nil, &types.Error{
				Kind: types.ErrKindName,
				Msg:  fmt.Sprintf("conftext: line %d", lineNo),
				Err:  err,
			}
		}
		if hasValue {
			node.SetValue(DecodeValue(rawValue))
		}
		stack = append(stack, frame{node, level + 1})
	}
	return root, nil
}
