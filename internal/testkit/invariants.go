package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// CheckMarked runs the marking invariants on a fully marked tree:
// 1) every node has an ordered, in-bounds token range
// 2) every child range is contained in its parent's range
// 3) every range is bracket-balanced for (), [] and {}
// 4) no range ends on a newline, comment or end marker
// 5) the root's text reconstructs the exact source slice it covers
func CheckMarked(t *tree.Tree, s *stream.Stream) error {
	if t == nil || s == nil {
		return fmt.Errorf("nil tree or stream")
	}
	numToks, err := safecast.Conv[uint32](s.Len())
	if err != nil {
		return fmt.Errorf("token count overflow: %w", err)
	}
	lenToks := stream.TokenID(numToks)

	for id := tree.NodeID(1); id <= tree.NodeID(t.Len()); id++ {
		n := t.Get(id)
		if !n.Marked() {
			return fmt.Errorf("node %d (%s) was not marked", id, n.Kind)
		}
		if n.First > n.Last {
			return fmt.Errorf("node %d (%s): first token %d after last %d", id, n.Kind, n.First, n.Last)
		}
		if n.Last > lenToks {
			return fmt.Errorf("node %d (%s): last token %d out of stream (%d tokens)", id, n.Kind, n.Last, lenToks)
		}

		for _, childID := range n.Children {
			child := t.Get(childID)
			if child.First < n.First || child.Last > n.Last {
				return fmt.Errorf("node %d (%s) range [%d,%d] does not contain child %d (%s) range [%d,%d]",
					id, n.Kind, n.First, n.Last, childID, child.Kind, child.First, child.Last)
			}
		}

		if err := checkBalance(s, id, n); err != nil {
			return err
		}

		switch s.Get(n.Last).Kind {
		case token.Newline, token.NL, token.Comment, token.EndMarker:
			return fmt.Errorf("node %d (%s) ends on %s", id, n.Kind, s.Get(n.Last))
		}
	}

	if t.Root.IsValid() {
		root := t.Get(t.Root)
		text := s.Text(root.First, root.Last)
		want := s.File().Slice(s.Get(root.First).Span.Cover(s.Get(root.Last).Span))
		if text != want {
			return fmt.Errorf("root text mismatch:\n got %q\nwant %q", text, want)
		}
	}

	return nil
}

func checkBalance(s *stream.Stream, id tree.NodeID, n *tree.Node) error {
	counts := map[string]int{}
	for tok := n.First; tok <= n.Last; tok++ {
		t := s.Get(tok)
		switch {
		case t.IsOpener():
			counts[t.Text]++
		case t.IsCloser():
			switch t.Text {
			case ")":
				counts["("]--
			case "]":
				counts["["]--
			case "}":
				counts["{"]--
			}
		}
	}
	for open, c := range counts {
		if c != 0 {
			return fmt.Errorf("node %d (%s) range [%d,%d] unbalanced for %q (delta %d)",
				id, n.Kind, n.First, n.Last, open, c)
		}
	}
	return nil
}
