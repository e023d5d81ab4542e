// Package token defines the lexical token values consumed by the marker.
// Invariants:
//   - Token.Text is the exact source substring for the token (no copies of
//     surrounding whitespace).
//   - Token.Span matches Text exactly against the file content.
//   - Tokens are produced by an external tokenizer and never mutated here.
//   - Keywords are plain Name tokens; they are distinguished by Text, the
//     way line-oriented tokenizers report them.
package token
