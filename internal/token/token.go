package token

import (
	"fmt"

	"tokmark/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
	Pos  source.Pos // position of the first byte of Text
}

// Match reports whether the token has the given kind and, when text is
// non-empty, exactly that text.
func (t Token) Match(kind Kind, text string) bool {
	return t.Kind == kind && (text == "" || t.Text == text)
}

// IsNonCoding reports whether the token carries no syntactic weight:
// comments and non-logical newlines. Stepping operations skip these.
func (t Token) IsNonCoding() bool {
	return t.Kind == Comment || t.Kind == NL
}

// IsOpener reports whether the token opens one of the three delimiter pairs.
func (t Token) IsOpener() bool {
	if t.Kind != Op {
		return false
	}
	return t.Text == "(" || t.Text == "[" || t.Text == "{"
}

// IsCloser reports whether the token closes one of the three delimiter pairs.
func (t Token) IsCloser() bool {
	if t.Kind != Op {
		return false
	}
	return t.Text == ")" || t.Text == "]" || t.Text == "}"
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Pos.Line, t.Pos.Col)
	}
	return fmt.Sprintf("%s@%d:%d", t.Kind, t.Pos.Line, t.Pos.Col)
}
