package bundle

import (
	"fmt"

	"fortio.org/safecast"

	"tokmark/internal/source"
	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// Build validates the bundle and materializes the stream and tree the
// marker operates on. Node order is preserved, so bundle node index i
// becomes tree.NodeID(i+1... the same 1-based index).
func (b *Bundle) Build() (*stream.Stream, *tree.Tree, error) {
	file := source.NewFile(b.Path, []byte(b.Source))

	toks := make([]token.Token, 0, len(b.Tokens))
	for i, bt := range b.Tokens {
		kind, err := token.KindFromString(bt.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("token %d: %w", i, err)
		}
		if bt.End > uint32(len(b.Source)) || bt.Start > bt.End {
			return nil, nil, fmt.Errorf("token %d: span %d-%d out of source bounds", i, bt.Start, bt.End)
		}
		toks = append(toks, token.Token{
			Kind: kind,
			Text: bt.Text,
			Span: source.Span{Start: bt.Start, End: bt.End},
			Pos:  source.Pos{Line: bt.Line, Col: bt.Col},
		})
	}
	s, err := stream.New(file, toks)
	if err != nil {
		return nil, nil, err
	}

	numNodes, err := safecast.Conv[uint32](len(b.Nodes))
	if err != nil {
		return nil, nil, fmt.Errorf("node count overflow: %w", err)
	}
	t := tree.New(uint(len(b.Nodes)))
	for i, bn := range b.Nodes {
		kind, err := tree.KindFromString(bn.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("node %d: %w", i, err)
		}
		children := make([]tree.NodeID, 0, len(bn.Children))
		for _, c := range bn.Children {
			if c == 0 || c > numNodes {
				return nil, nil, fmt.Errorf("node %d: child index %d out of range (1..%d)", i, c, numNodes)
			}
			children = append(children, tree.NodeID(c))
		}
		t.Add(tree.Node{
			Kind:     kind,
			Name:     bn.Name,
			Pos:      source.Pos{Line: bn.Line, Col: bn.Col},
			HasPos:   bn.HasPos,
			Children: children,
		})
	}
	if b.Root == 0 || b.Root > numNodes {
		return nil, nil, fmt.Errorf("root index %d out of range (1..%d)", b.Root, numNodes)
	}
	t.Root = tree.NodeID(b.Root)

	return s, t, nil
}

// CaptureRanges copies the marked First/Last fields back into the bundle's
// node list so a marked bundle can be re-encoded for downstream consumers.
func (b *Bundle) CaptureRanges(t *tree.Tree) error {
	if uint32(len(b.Nodes)) != t.Len() {
		return fmt.Errorf("tree has %d nodes, bundle has %d", t.Len(), len(b.Nodes))
	}
	for i := range b.Nodes {
		n := t.Get(tree.NodeID(i + 1))
		b.Nodes[i].First = uint32(n.First)
		b.Nodes[i].Last = uint32(n.Last)
	}
	return nil
}
