// Package markfmt renders marked trees for the CLI: an indented pretty
// listing and a JSON form for tooling.
package markfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tokmark/internal/stream"
	"tokmark/internal/tree"
)

// PrettyOpts controls the human-readable listing.
type PrettyOpts struct {
	Color   bool
	MaxText int // widest rendered range text; 0 means the default
}

const defaultMaxText = 48

var (
	kindColor  = color.New(color.FgCyan, color.Bold)
	rangeColor = color.New(color.FgYellow)
	posColor   = color.New(color.FgHiBlack)
)

// Pretty writes one line per node, depth-indented, in pre-order:
// kind, token range, source positions and the (truncated) range text.
func Pretty(w io.Writer, t *tree.Tree, s *stream.Stream, opts PrettyOpts) error {
	if opts.MaxText == 0 {
		opts.MaxText = defaultMaxText
	}
	return prettyNode(w, t, s, t.Root, 0, opts)
}

func prettyNode(w io.Writer, t *tree.Tree, s *stream.Stream, id tree.NodeID, depth int, opts PrettyOpts) error {
	n := t.Get(id)
	if n == nil {
		return fmt.Errorf("node %d not found", id)
	}

	kind := n.Kind.String()
	rng := fmt.Sprintf("[%d..%d]", n.First, n.Last)
	pos := ""
	text := ""
	if n.Marked() {
		first, last := s.Get(n.First), s.Get(n.Last)
		endPos := s.File().Resolve(last.Span.End)
		pos = fmt.Sprintf("%d:%d-%d:%d", first.Pos.Line, first.Pos.Col, endPos.Line, endPos.Col)
		text = clip(s.Text(n.First, n.Last), opts.MaxText)
	}
	if opts.Color {
		kind = kindColor.Sprint(kind)
		rng = rangeColor.Sprint(rng)
		pos = posColor.Sprint(pos)
	}

	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	if n.Name != "" {
		fmt.Fprintf(w, "%s(%s) %s %s %q\n", kind, n.Name, rng, pos, text)
	} else {
		fmt.Fprintf(w, "%s %s %s %q\n", kind, rng, pos, text)
	}

	for _, child := range n.Children {
		if err := prettyNode(w, t, s, child, depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}

// clip truncates value to width terminal cells, ellipsis included.
func clip(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
