package source

import (
	"fmt"

	"fortio.org/safecast"
)

// File holds the exact source text a token stream was produced from,
// plus a line index for Pos <-> byte offset resolution.
// Content is authoritative: token spans are byte offsets into it, so it
// is never normalized or rewritten after construction.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of the start of each line, LineIdx[0] == 0
}

// NewFile builds a File over content and computes its line index.
func NewFile(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
	}
}

// Offset resolves a line/column position to a byte offset into Content.
func (f *File) Offset(pos Pos) (uint32, error) {
	if pos.Line == 0 || pos.Line > uint32(len(f.LineIdx)) {
		return 0, fmt.Errorf("line %d out of range (file has %d lines)", pos.Line, len(f.LineIdx))
	}
	lineStart := f.LineIdx[pos.Line-1]
	off := lineStart + pos.Col
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return 0, fmt.Errorf("content length overflow: %w", err)
	}
	if off > lenContent {
		return 0, fmt.Errorf("column %d past end of line %d", pos.Col, pos.Line)
	}
	return off, nil
}

// Resolve converts a byte offset back to a line/column position.
func (f *File) Resolve(off uint32) Pos {
	// Binary search for the last line start <= off.
	lo, hi := 0, len(f.LineIdx)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.LineIdx[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	lineStart := f.LineIdx[lo]
	return Pos{Line: uint32(lo + 1), Col: off - lineStart}
}

// Slice returns the exact source text covered by span.
func (f *File) Slice(span Span) string {
	if span.End > uint32(len(f.Content)) || span.Start > span.End {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 1, 16)
	idx[0] = 0
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i+1))
		}
	}
	return idx
}
