// Package testkit provides deterministic fixtures and invariant checks for
// marker tests and the `check` command. The fixture scanner is test tooling
// for building small token streams in-process; the shipped pipeline only
// ever consumes externally produced parse bundles.
package testkit

import (
	"tokmark/internal/source"
	"tokmark/internal/stream"
	"tokmark/internal/token"
	"tokmark/internal/tree"
)

var twoByteOps = map[string]bool{
	"**": true, "//": true, "<<": true, ">>": true,
	"<=": true, ">=": true, "==": true, "!=": true,
	"->": true, ":=": true, "+=": true, "-=": true,
	"*=": true, "/=": true, "%=": true,
}

// Scan splits src into tokens the way a line-oriented tokenizer would:
// names, numbers, strings, operators, comments, logical newlines at bracket
// depth zero and NL otherwise, with an EndMarker at the end. Sources without
// a trailing newline get no synthesized Newline, which lets tests exercise
// the end-of-input fallback. Indentation blocks are not modeled.
func Scan(src string) []token.Token {
	var toks []token.Token

	line := uint32(1)
	lineStart := 0
	depth := 0
	lineHadCoding := false

	emit := func(kind token.Kind, start, end int) {
		toks = append(toks, token.Token{
			Kind: kind,
			Text: src[start:end],
			Span: source.Span{Start: uint32(start), End: uint32(end)},
			Pos:  source.Pos{Line: line, Col: uint32(start - lineStart)},
		})
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n':
			kind := token.NL
			if depth == 0 && lineHadCoding {
				kind = token.Newline
			}
			emit(kind, i, i+1)
			i++
			line++
			lineStart = i
			lineHadCoding = false
		case c == '#':
			j := i
			for j < len(src) && src[j] != '\n' {
				j++
			}
			emit(token.Comment, i, j)
			i = j
		case isNameStart(c):
			j := i
			for j < len(src) && isNameByte(src[j]) {
				j++
			}
			emit(token.Name, i, j)
			lineHadCoding = true
			i = j
		case isDigit(c):
			j := i
			for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			emit(token.Number, i, j)
			lineHadCoding = true
			i = j
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(src) && src[j] != c && src[j] != '\n' {
				j++
			}
			if j < len(src) && src[j] == c {
				j++
			}
			emit(token.String, i, j)
			lineHadCoding = true
			i = j
		default:
			j := i + 1
			if i+2 < len(src) && src[i:i+3] == "..." {
				j = i + 3
			} else if i+1 < len(src) && twoByteOps[src[i:i+2]] {
				j = i + 2
			}
			switch c {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			}
			emit(token.Op, i, j)
			lineHadCoding = true
			i = j
		}
	}

	emit(token.EndMarker, len(src), len(src))
	return toks
}

// StreamFor scans src and wraps it in a Stream.
func StreamFor(path, src string) (*stream.Stream, error) {
	file := source.NewFile(path, []byte(src))
	return stream.New(file, Scan(src))
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// TreeBuilder accumulates fixture nodes.
type TreeBuilder struct {
	tree *tree.Tree
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{tree: tree.New(16)}
}

// At adds a node with an intrinsic position (line 1-based, col 0-based).
func (b *TreeBuilder) At(kind tree.Kind, line, col uint32, children ...tree.NodeID) tree.NodeID {
	return b.tree.Add(tree.Node{
		Kind:     kind,
		Pos:      source.Pos{Line: line, Col: col},
		HasPos:   true,
		Children: children,
	})
}

// NamedAt adds a positioned node carrying a name (identifiers, keyword
// argument names).
func (b *TreeBuilder) NamedAt(kind tree.Kind, name string, line, col uint32, children ...tree.NodeID) tree.NodeID {
	return b.tree.Add(tree.Node{
		Kind:     kind,
		Name:     name,
		Pos:      source.Pos{Line: line, Col: col},
		HasPos:   true,
		Children: children,
	})
}

// Synth adds a position-less node, the shape synthetic and derived nodes
// arrive in.
func (b *TreeBuilder) Synth(kind tree.Kind, children ...tree.NodeID) tree.NodeID {
	return b.tree.Add(tree.Node{Kind: kind, Children: children})
}

// NamedSynth adds a position-less node carrying a name.
func (b *TreeBuilder) NamedSynth(kind tree.Kind, name string, children ...tree.NodeID) tree.NodeID {
	return b.tree.Add(tree.Node{Kind: kind, Name: name, Children: children})
}

// Build finalizes the tree with root as its entry point.
func (b *TreeBuilder) Build(root tree.NodeID) *tree.Tree {
	b.tree.Root = root
	return b.tree
}
