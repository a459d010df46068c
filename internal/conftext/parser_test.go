package conftext

import (
	"errors"
	"strings"
	"testing"

	"github.com/confkit/confkit/pkg/tree"
	"github.com/confkit/confkit/pkg/types"
)

func mustValue(t *testing.T, root *tree.Node, path string) string {
	t.Helper()
	n, err := root.Locate(path)
	if err != nil {
		t.Fatalf("Locate(%q) failed: %v", path, err)
	}
	v, ok := n.Value()
	if !ok {
		t.Fatalf("Locate(%q): no value present", path)
	}
	return v
}

func TestParseEndToEnd(t *testing.T) {
	input := `# Example broker configuration
context
    iothreads = 1
main
    type = zqueue
    frontend
        option
            hwm = 1000
            swap = 25000000
        bind = 'inproc://addr1'
        bind = 'ipc://addr2'
    backend
        bind = inproc://addr3
`
	root, err := Parse(input, types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Name != RootName {
		t.Errorf("Synthetic root should be named %q, got %q", RootName, root.Name)
	}

	if got := mustValue(t, root, "context/iothreads"); got != "1" {
		t.Errorf("context/iothreads = %q, want '1'", got)
	}
	if got := mustValue(t, root, "main/type"); got != "zqueue" {
		t.Errorf("main/type = %q, want 'zqueue'", got)
	}
	if got := mustValue(t, root, "main/frontend/option/hwm"); got != "1000" {
		t.Errorf("main/frontend/option/hwm = %q, want '1000'", got)
	}

	frontend, err := root.Locate("main/frontend")
	if err != nil {
		t.Fatalf("Locate frontend: %v", err)
	}
	bind := frontend.ChildByName("bind")
	if bind == nil {
		t.Fatal("frontend should have a bind child")
	}
	if v, _ := bind.Value(); v != "inproc://addr1" {
		t.Errorf("First bind = %q, want 'inproc://addr1'", v)
	}
	second := bind.NextSibling()
	if second == nil || second.Name != "bind" {
		t.Fatal("Second bind should follow the first")
	}
	if v, _ := second.Value(); v != "ipc://addr2" {
		t.Errorf("Second bind = %q, want 'ipc://addr2'", v)
	}
}

func TestParseIndentBanding(t *testing.T) {
	// Indentation counts in 4-space bands: 1..4 spaces is level one.
	root, err := Parse("k1\n    k2\n        k3\n    k4", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	k1 := root.ChildByName("k1")
	if k1 == nil || len(root.Children) != 1 {
		t.Fatal("k1 should be the only top-level entry")
	}
	if len(k1.Children) != 2 || k1.Children[0].Name != "k2" || k1.Children[1].Name != "k4" {
		t.Fatalf("k2 and k4 should be children of k1, got %d children", len(k1.Children))
	}
	k2 := k1.Children[0]
	if len(k2.Children) != 1 || k2.Children[0].Name != "k3" {
		t.Fatal("k3 should be the child of k2")
	}
}

func TestParseRaggedIndentSameBand(t *testing.T) {
	// 2 and 3 spaces both land in the first band; the nodes are siblings.
	root, err := Parse("a\n  b\n   c", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	a := root.ChildByName("a")
	if len(a.Children) != 2 || a.Children[0].Name != "b" || a.Children[1].Name != "c" {
		t.Fatalf("b and c should be same-level children of a")
	}
}

func TestParseSkippedLevel(t *testing.T) {
	// A line two bands deeper still attaches beneath the nearest ancestor.
	root, err := Parse("a\n        b", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	a := root.ChildByName("a")
	if len(a.Children) != 1 || a.Children[0].Name != "b" {
		t.Fatal("b should attach beneath a despite the skipped level")
	}
}

func TestParseCRLF(t *testing.T) {
	root, err := Parse("a = 1\r\n    b = 2\r\n", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := mustValue(t, root, "a/b"); got != "2" {
		t.Errorf("a/b = %q, want '2'", got)
	}
	if got := mustValue(t, root, "a"); got != "1" {
		t.Errorf("a = %q, want '1'", got)
	}
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	input := "\n# full comment\n   \n\t\na = 1\n    # indented comment\n    b = 2\n"
	root, err := Parse(input, types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("Only 'a' should survive, got %d top-level nodes", len(root.Children))
	}
	if got := mustValue(t, root, "a/b"); got != "2" {
		t.Errorf("a/b = %q, want '2'", got)
	}
}

func TestParseValueStates(t *testing.T) {
	root, err := Parse("bare\nempty =\nspaced = \nset = v", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if root.ChildByName("bare").HasValue() {
		t.Error("'bare' should have no value at all")
	}
	for _, name := range []string{"empty", "spaced"} {
		n := root.ChildByName(name)
		v, ok := n.Value()
		if !ok {
			t.Errorf("%q should have a present value", name)
		}
		if v != "" {
			t.Errorf("%q should be empty, got %q", name, v)
		}
	}
	if v, _ := root.ChildByName("set").Value(); v != "v" {
		t.Errorf("'set' = %q, want 'v'", v)
	}
}

func TestParseEqualsInValue(t *testing.T) {
	// Split happens on the first '=' only.
	root, err := Parse("k = a=b", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := mustValue(t, root, "k"); got != "a=b" {
		t.Errorf("k = %q, want 'a=b'", got)
	}
}

func TestParseTrailingComment(t *testing.T) {
	root, err := Parse("k = v # comment\nq = 'v # literal'", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := mustValue(t, root, "k"); got != "v" {
		t.Errorf("k = %q, want 'v'", got)
	}
	if got := mustValue(t, root, "q"); got != "v # literal" {
		t.Errorf("q = %q, want 'v # literal'", got)
	}
}

func TestParseTabsCarryNoIndent(t *testing.T) {
	// A tab ends the indent scan, so the line is measured at indent 0
	// and the tab is trimmed away with the key.
	root, err := Parse("a\n\tb = 1", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("Tab-indented line should be top-level, got %d children", len(root.Children))
	}
	if got := mustValue(t, root, "b"); got != "1" {
		t.Errorf("b = %q, want '1'", got)
	}
}

func TestParseInvalidName(t *testing.T) {
	for _, input := range []string{
		"bad key = 1",
		"k*ey = 1",
		"ok\n    sub\n    bad name = x",
		"= lonely",
	} {
		root, err := Parse(input, types.DefaultLimits())
		if root != nil {
			t.Errorf("Parse(%q) must not return a partial tree", input)
		}
		if !types.IsKind(err, types.ErrKindName) {
			t.Errorf("Parse(%q): expected name-kinded error, got %v", input, err)
		}
		if !errors.Is(err, types.ErrInvalidName) {
			t.Errorf("Parse(%q): expected ErrInvalidName in chain, got %v", input, err)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString(strings.Repeat("    ", i))
		sb.WriteString("n\n")
	}

	root, err := Parse(sb.String(), types.Limits{MaxDepth: 4})
	if root != nil {
		t.Error("Depth overflow must not return a partial tree")
	}
	if !types.IsKind(err, types.ErrKindLimit) {
		t.Errorf("Expected limit-kinded error, got %v", err)
	}
	if !errors.Is(err, types.ErrDepthExceeded) {
		t.Errorf("Expected ErrDepthExceeded in chain, got %v", err)
	}

	// The same input parses under the default bound.
	if _, err := Parse(sb.String(), types.DefaultLimits()); err != nil {
		t.Errorf("Default limits should accept depth 10: %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "# only a comment\n"} {
		root, err := Parse(input, types.DefaultLimits())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if len(root.Children) != 0 {
			t.Errorf("Parse(%q) should yield an empty root", input)
		}
	}
}

func TestParseKeyWhitespaceTrimmed(t *testing.T) {
	root, err := Parse("key   =   v", types.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.ChildByName("key") == nil {
		t.Error("Key should be trimmed of surrounding whitespace")
	}
}
