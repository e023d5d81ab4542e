package marker

import (
	"fmt"
	"sort"

	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// Matching delimiter pairs, keyed by Op token text.
var (
	closerFor = map[string]string{"(": ")", "[": "]", "{": "}"}
	openerFor = map[string]string{")": "(", "]": "[", "}": "{"}
)

// expandToMatching scans the gap tokens of [first, last] — those covered by
// no child's finalized range — and extends the range outward until every
// delimiter seen in a gap is matched. A parenthesized expression whose
// children claim only the inner tokens leaves the parens unclaimed; this
// pass reclaims them without per-construct special cases.
func (m *Marker) expandToMatching(id tree.NodeID, first, last stream.TokenID) (stream.TokenID, stream.TokenID, error) {
	// needClose holds expected closer texts for openers still unmatched at
	// scan end (stack order); needOpen holds expected opener texts for
	// closers seen before any matching opener (encounter order).
	var needClose []string
	var needOpen []string

	m.scanGaps(id, first, last, func(t token.Token) {
		if t.Kind != token.Op {
			return
		}
		switch {
		case len(needClose) > 0 && t.Text == needClose[len(needClose)-1]:
			needClose = needClose[:len(needClose)-1]
		case closerFor[t.Text] != "":
			needClose = append(needClose, closerFor[t.Text])
		case openerFor[t.Text] != "":
			needOpen = append(needOpen, openerFor[t.Text])
		}
	})

	kind := m.tree.Kind(id)

	// Close the innermost unmatched opener first.
	for i := len(needClose) - 1; i >= 0; i-- {
		next, err := m.stream.Next(last)
		if err != nil {
			return stream.NoToken, stream.NoToken, fmt.Errorf("closing %s: %w", kind, err)
		}
		if err := m.expect(kind, next, token.Op, needClose[i]); err != nil {
			return stream.NoToken, stream.NoToken, err
		}
		last = next
	}

	for _, want := range needOpen {
		prev, err := m.stream.Prev(first)
		if err != nil {
			return stream.NoToken, stream.NoToken, fmt.Errorf("opening %s: %w", kind, err)
		}
		if err := m.expect(kind, prev, token.Op, want); err != nil {
			return stream.NoToken, stream.NoToken, err
		}
		first = prev
	}

	return first, last, nil
}

// scanGaps calls fn for every token in [first, last] not covered by any
// child's range: the lead-in before the first child, the gaps between
// consecutive children, and the tail after the last one. Child ranges are
// sorted by first token, since construction order need not be source order.
func (m *Marker) scanGaps(id tree.NodeID, first, last stream.TokenID, fn func(token.Token)) {
	children := m.tree.Children(id)
	ranges := make([]pair, 0, len(children))
	for _, childID := range children {
		child := m.tree.Get(childID)
		ranges = append(ranges, pair{child.First, child.Last})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].first < ranges[j].first })

	pos := first
	for _, r := range ranges {
		for t := pos; t < r.first && t <= last; t++ {
			fn(m.stream.Get(t))
		}
		if r.last >= last {
			return
		}
		if r.last+1 > pos {
			pos = r.last + 1
		}
	}
	for t := pos; t <= last; t++ {
		fn(m.stream.Get(t))
	}
}
