package marker

import (
	"errors"
	"fmt"

	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

// refine applies the node-kind-specific boundary correction to a repaired
// range. The dispatch is a closed switch over tree.Kind; kinds without a
// rule keep their range unchanged.
func (m *Marker) refine(id tree.NodeID, p pair) (pair, error) {
	n := m.tree.Get(id)
	switch n.Kind {
	case tree.ListComp:
		// The first child is the element expression, so the range misses
		// the opening bracket; the closing one is then matched by repair.
		return m.refineComp(n.Kind, "[", p)
	case tree.SetComp, tree.DictComp:
		// Modern grammars position set/dict comprehensions at the brace
		// themselves; only legacy dialects need the back-extension.
		if m.dialect.LegacyComprehensions {
			return m.refineComp(n.Kind, "{", p)
		}
		return p, nil
	case tree.Comprehension:
		return m.refineComprehensionClause(n.Kind, p)
	case tree.Attribute:
		return m.refineAttribute(n.Kind, p)
	case tree.Call:
		return m.refineTrailer(n.Kind, ")", p)
	case tree.Subscript:
		return m.refineTrailer(n.Kind, "]", p)
	case tree.Tuple:
		return m.refineTuple(p)
	case tree.Number:
		return m.refineNumber(p)
	case tree.Keyword:
		return m.refineKeyword(n, p)
	default:
		return p, nil
	}
}

// refineComp back-extends first by one token to the comprehension's opening
// delimiter, asserting it is there.
func (m *Marker) refineComp(kind tree.Kind, open string, p pair) (pair, error) {
	before, err := m.stream.Prev(p.first)
	if err != nil {
		return pair{}, fmt.Errorf("opening %s: %w", kind, err)
	}
	if err := m.expect(kind, before, token.Op, open); err != nil {
		return pair{}, err
	}
	return pair{before, p.last}, nil
}

// refineComprehensionClause adopts the `for` keyword the clause starts with;
// its children begin after the keyword.
func (m *Marker) refineComprehensionClause(kind tree.Kind, p pair) (pair, error) {
	first, err := m.stream.Find(p.first, stream.Backward, token.Name, "for")
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", kind, err)
	}
	return pair{first, p.last}, nil
}

// refineAttribute forward-extends last over the `.name` pair the parser
// attributes to no child.
func (m *Marker) refineAttribute(kind tree.Kind, p pair) (pair, error) {
	dot, err := m.stream.Find(p.last, stream.Forward, token.Op, ".")
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", kind, err)
	}
	name, err := m.stream.Next(dot)
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", kind, err)
	}
	if err := m.expect(kind, name, token.Name, ""); err != nil {
		return pair{}, err
	}
	return pair{p.first, name}, nil
}

// refineTrailer forward-extends last to the closing delimiter of a call or
// subscript. last is already past all children, so the delimiter found
// cannot belong to one of them.
func (m *Marker) refineTrailer(kind tree.Kind, closer string, p pair) (pair, error) {
	last, err := m.stream.Find(p.last, stream.Forward, token.Op, closer)
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", kind, err)
	}
	return pair{p.first, last}, nil
}

// refineTuple includes a bare trailing comma in the tuple's span.
func (m *Marker) refineTuple(p pair) (pair, error) {
	next, err := m.stream.Next(p.last)
	if err != nil {
		if errors.Is(err, stream.ErrStreamEnd) {
			return p, nil
		}
		return pair{}, err
	}
	if m.stream.Get(next).Match(token.Op, ",") {
		return pair{p.first, next}, nil
	}
	return p, nil
}

// refineNumber absorbs a leading sign the tokenizer splits from the literal:
// the anchor lands on the operator, so step last forward until it leaves the
// operator run.
func (m *Marker) refineNumber(p pair) (pair, error) {
	last := p.last
	for m.stream.Get(last).Kind == token.Op {
		next, err := m.stream.Next(last)
		if err != nil {
			return pair{}, fmt.Errorf("marking %s: %w", tree.Number, err)
		}
		last = next
	}
	return pair{p.first, last}, nil
}

// refineKeyword back-extends a named keyword argument over `name =`,
// asserting the name matches the one the parser recorded.
func (m *Marker) refineKeyword(n *tree.Node, p pair) (pair, error) {
	if n.Name == "" {
		return p, nil
	}
	equals, err := m.stream.Find(p.first, stream.Backward, token.Op, "=")
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", n.Kind, err)
	}
	name, err := m.stream.Prev(equals)
	if err != nil {
		return pair{}, fmt.Errorf("marking %s: %w", n.Kind, err)
	}
	if err := m.expect(n.Kind, name, token.Name, n.Name); err != nil {
		return pair{}, err
	}
	return pair{name, p.last}, nil
}
