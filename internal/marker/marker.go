// Package marker assigns to every parse-tree node the first and last tokens
// of the source region it occupies. It combines children's ranges bottom-up,
// repairs bracket balance generically, and applies node-kind refinements so
// the resulting ranges are textually exact.
package marker

import (
	"errors"
	"fmt"

	"tokmark/internal/config"
	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// Marker computes token ranges for one tree over one token stream.
type Marker struct {
	stream  *stream.Stream
	tree    *tree.Tree
	dialect config.Dialect
}

// New binds a marker to a stream and a tree parsed from the same source.
func New(s *stream.Stream, t *tree.Tree, dialect config.Dialect) *Marker {
	return &Marker{
		stream:  s,
		tree:    t,
		dialect: dialect,
	}
}

// Mark walks the tree from root and stores the final token range on every
// node. Children are always finalized before their parent. The first
// inconsistency between stream and tree aborts the whole pass, since later
// ranges depend on earlier ones.
func (m *Marker) Mark(root tree.NodeID) error {
	return m.tree.Walk(root, m.beforeChildren, m.afterChildren)
}

// beforeChildren resolves the node's intrinsic position to its anchor token.
// Children inherit our anchor, or the parent's when we have none.
func (m *Marker) beforeChildren(id tree.NodeID, inherited stream.TokenID) (stream.TokenID, stream.TokenID, error) {
	n := m.tree.Get(id)
	if !n.HasPos {
		return inherited, stream.NoToken, nil
	}
	anchor, err := m.stream.TokenAt(n.Pos)
	if err != nil {
		return stream.NoToken, stream.NoToken, fmt.Errorf("anchor for %s: %w", n.Kind, err)
	}
	return anchor, anchor, nil
}

// afterChildren computes the node's preliminary range from its anchor and
// its children's final ranges, then repairs and refines it.
func (m *Marker) afterChildren(id tree.NodeID, inherited, self stream.TokenID) error {
	n := m.tree.Get(id)

	// Children may be enumerated out of source order (a return annotation
	// is visited before the parameter list it follows), so take a plain
	// min/max over their ranges.
	first := self
	last := stream.NoToken
	for _, childID := range n.Children {
		child := m.tree.Get(childID)
		if !first.IsValid() || child.First < first {
			first = child.First
		}
		if !last.IsValid() || child.Last > last {
			last = child.Last
		}
	}

	// Childless, position-less nodes fall back to the nearest ancestor's
	// anchor.
	if !first.IsValid() {
		first = inherited
	}
	if !first.IsValid() {
		return fmt.Errorf("%s: %w", n.Kind, ErrNoAnchor)
	}
	if !last.IsValid() {
		last = first
	}

	if n.Kind.IsStmt() {
		var err error
		last, err = m.lastInLine(last)
		if err != nil {
			return fmt.Errorf("extending %s to end of line: %w", n.Kind, err)
		}
	}

	first, last, err := m.expandToMatching(id, first, last)
	if err != nil {
		return err
	}

	refined, rerr := m.refine(id, pair{first, last})
	if rerr != nil {
		return rerr
	}
	if refined != (pair{first, last}) {
		// A refinement can newly expose an unmatched delimiter, e.g. after
		// extending into a call's closing paren.
		refined.first, refined.last, err = m.expandToMatching(id, refined.first, refined.last)
		if err != nil {
			return err
		}
	}

	n.First = refined.first
	n.Last = refined.last
	return nil
}

// lastInLine extends last forward to the final coding token before the
// logical line's Newline; at end of input the EndMarker takes its place.
func (m *Marker) lastInLine(last stream.TokenID) (stream.TokenID, error) {
	newline, err := m.stream.Find(last, stream.Forward, token.Newline, "")
	if errors.Is(err, stream.ErrNoMatch) {
		newline = m.stream.Last() // EndMarker
		err = nil
	}
	if err != nil {
		return stream.NoToken, err
	}
	return m.stream.Prev(newline)
}

type pair struct {
	first, last stream.TokenID
}
