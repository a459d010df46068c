package conftext

import (
	"bytes"
	"strings"

	"github.com/confkit/confkit/pkg/tree"
	"github.com/confkit/confkit/pkg/types"
)

// Emit serializes a tree back to configuration text. The children of
// root are emitted at indentation zero; the synthetic root itself
// produces no line. Values that would change meaning if re-parsed bare
// are quoted.
func Emit(root *tree.Node, opts types.SaveOptions) []byte {
	indent := opts.Indent
	if indent <= 0 {
		indent = IndentUnit
	}
	var buf bytes.Buffer
	for _, child := range root.Children {
		emitNode(&buf, child, 0, indent)
	}
	return buf.Bytes()
}

func emitNode(buf *bytes.Buffer, n *tree.Node, level, indent int) {
	buf.WriteString(strings.Repeat(Indent, level*indent))
	buf.WriteString(n.Name)
	if v, ok := n.Value(); ok {
		buf.WriteString(" " + Assignment + " ")
		buf.WriteString(quoteValue(v))
	}
	buf.WriteString(LF)
	for _, child := range n.Children {
		emitNode(buf, child, level+1, indent)
	}
}

// quoteValue wraps v in quotes when emitting it bare would not decode
// back to v: empty values, values containing '#' or quote characters,
// and values with leading or trailing whitespace. The format has no
// escape sequences, so a value containing both quote characters cannot
// round-trip; double quotes win and the inner double quotes survive
// only until the next parse.
func quoteValue(v string) string {
	if v == "" {
		return DoubleQuote + DoubleQuote
	}
	needsQuoting := strings.ContainsAny(v, CommentPrefix+SingleQuote+DoubleQuote) ||
		v[0] == ' ' || v[0] == '\t' ||
		v[len(v)-1] == ' ' || v[len(v)-1] == '\t'
	if !needsQuoting {
		return v
	}
	if !strings.Contains(v, DoubleQuote) {
		return DoubleQuote + v + DoubleQuote
	}
	return SingleQuote + v + SingleQuote
}
