package markfmt

import (
	"encoding/json"
	"io"

	"tokmark/internal/source"
	"tokmark/internal/stream"
	"tokmark/internal/tree"
)

// NodeOutput is the JSON form of one marked node.
type NodeOutput struct {
	ID       uint32      `json:"id"`
	Kind     string      `json:"kind"`
	Name     string      `json:"name,omitempty"`
	First    uint32      `json:"first"`
	Last     uint32      `json:"last"`
	Span     source.Span `json:"span"`
	Children []uint32    `json:"children,omitempty"`
	Text     string      `json:"text"`
}

// JSON writes every node of the marked tree in arena order.
func JSON(w io.Writer, t *tree.Tree, s *stream.Stream) error {
	out := make([]NodeOutput, 0, t.Len())
	for id := tree.NodeID(1); id <= tree.NodeID(t.Len()); id++ {
		n := t.Get(id)
		node := NodeOutput{
			ID:    uint32(id),
			Kind:  n.Kind.String(),
			Name:  n.Name,
			First: uint32(n.First),
			Last:  uint32(n.Last),
		}
		for _, c := range n.Children {
			node.Children = append(node.Children, uint32(c))
		}
		if n.Marked() {
			node.Span = source.Span{
				Start: s.Get(n.First).Span.Start,
				End:   s.Get(n.Last).Span.End,
			}
			node.Text = s.Text(n.First, n.Last)
		}
		out = append(out, node)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
