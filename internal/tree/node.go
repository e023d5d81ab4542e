// Package tree holds the arena-backed parse tree the marker operates on.
// Nodes are produced by an external parser (typically imported from a parse
// bundle); the marker only fills in the derived First/Last token fields.
package tree

import (
	"tokmark/internal/source"
	"tokmark/internal/stream"
)

// NodeID identifies a node within a Tree's arena (1-based).
type NodeID uint32

// NoNode is the absent-node sentinel.
const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// Node is a single parse-tree node.
//
// Pos is the node's intrinsic position as reported by the parser; synthetic
// and derived nodes have HasPos == false. Children are in construction
// order, which is not guaranteed to be left-to-right source order.
//
// First and Last are derived by the marker: the inclusive token range the
// node occupies. Each is written exactly once per marking pass.
type Node struct {
	Kind     Kind
	Pos      source.Pos
	HasPos   bool
	Name     string // identifier text; for Keyword, the parameter name ("" when absent)
	Children []NodeID

	First stream.TokenID
	Last  stream.TokenID
}

// Marked reports whether the marker has assigned the node's token range.
func (n *Node) Marked() bool {
	return n.First.IsValid() && n.Last.IsValid()
}

// Tree owns the node arena and remembers the root.
type Tree struct {
	Nodes *Arena[Node]
	Root  NodeID
}

// New creates an empty tree with capacity for capHint nodes.
func New(capHint uint) *Tree {
	return &Tree{
		Nodes: NewArena[Node](capHint),
	}
}

// Add stores a node and returns its ID.
func (t *Tree) Add(n Node) NodeID {
	return NodeID(t.Nodes.Allocate(n))
}

// Get returns the node for id, or nil for NoNode.
func (t *Tree) Get(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// Children returns the child IDs of id in construction order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// Kind returns the kind of id, or Invalid for NoNode.
func (t *Tree) Kind(id NodeID) Kind {
	n := t.Get(id)
	if n == nil {
		return Invalid
	}
	return n.Kind
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() uint32 {
	return t.Nodes.Len()
}
