package source

// Pos is a tokenizer-style position in a source file.
// Line is 1-based; Col is a 0-based byte column within the line,
// matching the positions external tokenizers report per token.
type Pos struct {
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
}

// Before reports whether p sorts strictly before other.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
