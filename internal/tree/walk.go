package tree

import (
	"fmt"

	"tokmark/internal/stream"
)

// BeforeFunc is called on arrival at a node, before its children. inherited
// is the anchor token relayed from the parent (NoToken at the root until a
// node resolves one). It returns the anchor to relay to every direct child
// and the anchor representing the node itself.
type BeforeFunc func(id NodeID, inherited stream.TokenID) (forChildren, forSelf stream.TokenID, err error)

// AfterFunc is called on departure from a node, after every child has been
// visited and processed. self is the second value BeforeFunc returned for
// this node.
type AfterFunc func(id NodeID, inherited, self stream.TokenID) error

// Walk performs a depth-first traversal from root, visiting every node
// exactly once: before in pre-order, after in post-order. The anchor
// relayed to children never flows between siblings except through the
// parent. The first callback error aborts the walk.
func (t *Tree) Walk(root NodeID, before BeforeFunc, after AfterFunc) error {
	if !root.IsValid() {
		return fmt.Errorf("walk: invalid root node")
	}
	return t.walk(root, stream.NoToken, before, after)
}

func (t *Tree) walk(id NodeID, inherited stream.TokenID, before BeforeFunc, after AfterFunc) error {
	forChildren, forSelf, err := before(id, inherited)
	if err != nil {
		return err
	}
	for _, child := range t.Children(id) {
		if err := t.walk(child, forChildren, before, after); err != nil {
			return err
		}
	}
	return after(id, inherited, forSelf)
}
