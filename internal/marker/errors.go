package marker

import (
	"errors"
	"fmt"

	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// ErrNoAnchor reports a node with no intrinsic position, no children, and no
// inherited anchor. A rooted tree whose root carries a real position cannot
// produce this; it indicates the tree violates the traversal precondition.
var ErrNoAnchor = errors.New("node has no anchor token (no position, no children, no inherited anchor)")

// ExpectTokenError reports that the token stream disagrees with the tree: a
// token the marking invariants require at a given position is not there.
// This usually means the tokenizer and parser saw different source text, or
// a grammar construct the refinement table does not cover.
type ExpectTokenError struct {
	NodeKind tree.Kind
	WantKind token.Kind
	WantText string
	Got      token.Token
	GotID    stream.TokenID
}

func (e *ExpectTokenError) Error() string {
	if e.WantText != "" {
		return fmt.Sprintf("marking %s: expected %s %q at token %d, found %s",
			e.NodeKind, e.WantKind, e.WantText, e.GotID, e.Got)
	}
	return fmt.Sprintf("marking %s: expected %s at token %d, found %s",
		e.NodeKind, e.WantKind, e.GotID, e.Got)
}

// expect asserts that the token at id has the given kind and, when text is
// non-empty, that exact text.
func (m *Marker) expect(kind tree.Kind, id stream.TokenID, wantKind token.Kind, wantText string) error {
	got := m.stream.Get(id)
	if got.Match(wantKind, wantText) {
		return nil
	}
	return &ExpectTokenError{
		NodeKind: kind,
		WantKind: wantKind,
		WantText: wantText,
		Got:      got,
		GotID:    id,
	}
}
