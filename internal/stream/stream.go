// Package stream provides ordered, indexable access to a token stream:
// position lookup, stepping to adjacent coding tokens, directional search,
// and exact text reconstruction for a token range.
package stream

import (
	"errors"
	"fmt"
	"sort"

	"tokmark/internal/source"
	"tokmark/internal/token"
)

// TokenID identifies a token within a Stream. IDs are 1-based and contiguous;
// their order is the source order of the tokens.
type TokenID uint32

// NoToken is the absent-token sentinel.
const NoToken TokenID = 0

func (id TokenID) IsValid() bool { return id != NoToken }

// Direction selects which way Find scans.
type Direction int8

const (
	// Forward scans toward the end of the stream.
	Forward Direction = 1
	// Backward scans toward the start of the stream.
	Backward Direction = -1
)

var (
	// ErrStreamStart is returned when stepping before the first token.
	ErrStreamStart = errors.New("stepped before start of token stream")
	// ErrStreamEnd is returned when stepping past the last token.
	ErrStreamEnd = errors.New("stepped past end of token stream")
	// ErrNoMatch is returned when a directional search exhausts the stream.
	ErrNoMatch = errors.New("no matching token")
)

// Stream is an immutable, ordered token sequence over a single source file.
type Stream struct {
	file *source.File
	toks []token.Token
}

// New wraps an already-tokenized file. The token slice must be ordered by
// source position and end with an EndMarker token; the stream takes ownership
// and the caller must not mutate it afterwards.
func New(file *source.File, toks []token.Token) (*Stream, error) {
	if len(toks) == 0 {
		return nil, errors.New("empty token stream")
	}
	if toks[len(toks)-1].Kind != token.EndMarker {
		return nil, fmt.Errorf("token stream must end with EndMarker, got %s", toks[len(toks)-1])
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].Span.Start < toks[i-1].Span.End {
			return nil, fmt.Errorf("token stream out of order at index %d: %s before %s", i, toks[i-1], toks[i])
		}
	}
	return &Stream{file: file, toks: toks}, nil
}

// File returns the source file the stream was built over.
func (s *Stream) File() *source.File { return s.file }

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int { return len(s.toks) }

// First returns the ID of the first token.
func (s *Stream) First() TokenID { return 1 }

// Last returns the ID of the final token (the EndMarker).
func (s *Stream) Last() TokenID { return TokenID(len(s.toks)) }

// Get returns the token for a valid ID. It panics on NoToken or an
// out-of-range ID; callers hold IDs previously produced by this stream.
func (s *Stream) Get(id TokenID) token.Token {
	if !id.IsValid() || int(id) > len(s.toks) {
		panic(fmt.Sprintf("invalid token id %d (stream has %d tokens)", id, len(s.toks)))
	}
	return s.toks[id-1]
}

// TokenAt returns the coding token containing pos, or the next coding token
// if pos falls between tokens. The EndMarker bounds the search, so a valid
// in-file position always resolves.
func (s *Stream) TokenAt(pos source.Pos) (TokenID, error) {
	off, err := s.file.Offset(pos)
	if err != nil {
		return NoToken, fmt.Errorf("resolve position %d:%d: %w", pos.Line, pos.Col, err)
	}
	// First token whose span ends after off: the token containing off, or
	// the nearest one after it.
	i := sort.Search(len(s.toks), func(i int) bool {
		return s.toks[i].Span.End > off
	})
	for ; i < len(s.toks); i++ {
		if !s.toks[i].IsNonCoding() {
			return TokenID(i + 1), nil
		}
	}
	return s.Last(), nil
}

// Next returns the closest coding token after id.
func (s *Stream) Next(id TokenID) (TokenID, error) {
	for i := int(id); i < len(s.toks); i++ {
		if !s.toks[i].IsNonCoding() {
			return TokenID(i + 1), nil
		}
	}
	return NoToken, fmt.Errorf("after %s: %w", s.Get(id), ErrStreamEnd)
}

// Prev returns the closest coding token before id.
func (s *Stream) Prev(id TokenID) (TokenID, error) {
	for i := int(id) - 2; i >= 0; i-- {
		if !s.toks[i].IsNonCoding() {
			return TokenID(i + 1), nil
		}
	}
	return NoToken, fmt.Errorf("before %s: %w", s.Get(id), ErrStreamStart)
}

// Find scans from (and including) the token at from for the first token
// matching kind and, when text is non-empty, that exact text. Every token is
// examined, coding or not. ErrNoMatch is returned when the scan runs off the
// stream without a match; a forward scan stops at the EndMarker.
func (s *Stream) Find(from TokenID, dir Direction, kind token.Kind, text string) (TokenID, error) {
	step := int(dir)
	for i := int(from); i >= 1 && i <= len(s.toks); i += step {
		t := s.toks[i-1]
		if t.Match(kind, text) {
			return TokenID(i), nil
		}
		if dir == Forward && t.Kind == token.EndMarker {
			break
		}
	}
	return NoToken, fmt.Errorf("%s %q from %s: %w", kind, text, s.Get(from), ErrNoMatch)
}

// Between returns the IDs of all tokens from a through b inclusive,
// empty when a > b.
func (s *Stream) Between(a, b TokenID) []TokenID {
	if a > b {
		return nil
	}
	ids := make([]TokenID, 0, b-a+1)
	for id := a; id <= b; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Text returns the exact source text from the start of token a through the
// end of token b, whitespace between tokens included.
func (s *Stream) Text(a, b TokenID) string {
	ta, tb := s.Get(a), s.Get(b)
	if tb.Span.End < ta.Span.Start {
		return ""
	}
	return s.file.Slice(source.Span{Start: ta.Span.Start, End: tb.Span.End})
}
