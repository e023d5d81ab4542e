package markfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tokmark/internal/config"
	"tokmark/internal/marker"
	"tokmark/internal/markfmt"
	"tokmark/internal/stream"
	"tokmark/internal/testkit"
	"tokmark/internal/tree"
)

func markedFixture(t *testing.T) (*tree.Tree, *stream.Stream) {
	t.Helper()
	s, err := testkit.StreamFor("fixture.py", "foo(bar)\n")
	if err != nil {
		t.Fatal(err)
	}
	b := testkit.NewTreeBuilder()
	foo := b.NamedAt(tree.Name, "foo", 1, 0)
	bar := b.NamedAt(tree.Name, "bar", 1, 4)
	call := b.At(tree.Call, 1, 0, foo, bar)
	stmt := b.At(tree.ExprStmt, 1, 0, call)
	tr := b.Build(b.Synth(tree.Module, stmt))
	if err := marker.New(s, tr, config.Dialect{}).Mark(tr.Root); err != nil {
		t.Fatal(err)
	}
	return tr, s
}

func TestPretty(t *testing.T) {
	tr, s := markedFixture(t)

	var buf bytes.Buffer
	if err := markfmt.Pretty(&buf, tr, s, markfmt.PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Pretty() wrote %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Module ") {
		t.Errorf("first line = %q, want Module first", lines[0])
	}
	if !strings.Contains(out, "Call [1..4]") {
		t.Errorf("output missing call range:\n%s", out)
	}
	if !strings.Contains(out, `"foo(bar)"`) {
		t.Errorf("output missing range text:\n%s", out)
	}
	// Children are indented one level deeper than their parent.
	if !strings.Contains(out, "      Name(foo)") {
		t.Errorf("output missing indented leaf:\n%s", out)
	}
}

func TestPretty_TruncatesLongText(t *testing.T) {
	tr, s := markedFixture(t)

	var buf bytes.Buffer
	if err := markfmt.Pretty(&buf, tr, s, markfmt.PrettyOpts{MaxText: 6}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"foo..."`) {
		t.Errorf("long text not truncated:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	tr, s := markedFixture(t)

	var buf bytes.Buffer
	if err := markfmt.JSON(&buf, tr, s); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var nodes []markfmt.NodeOutput
	if err := json.Unmarshal(buf.Bytes(), &nodes); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(nodes) != 5 {
		t.Fatalf("JSON() emitted %d nodes, want 5", len(nodes))
	}

	var call *markfmt.NodeOutput
	for i := range nodes {
		if nodes[i].Kind == "Call" {
			call = &nodes[i]
		}
	}
	if call == nil {
		t.Fatal("no Call node in output")
	}
	if call.First != 1 || call.Last != 4 || call.Text != "foo(bar)" {
		t.Errorf("call node = %+v", call)
	}
}
