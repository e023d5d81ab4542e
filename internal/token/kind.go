package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous or unclassified token.
	Invalid Kind = iota
	// EndMarker terminates the token stream.
	EndMarker
	// Name represents an identifier or keyword token.
	Name
	// Number represents a numeric literal token.
	Number
	// String represents a string literal token.
	String
	// Op represents an operator or punctuation token.
	Op
	// Newline terminates a logical line (ends a statement).
	Newline
	// NL is a non-logical newline (inside brackets, or on a blank line).
	NL
	// Indent opens an indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent
	// Comment represents a comment token.
	Comment
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EndMarker: "EndMarker",
	Name:      "Name",
	Number:    "Number",
	String:    "String",
	Op:        "Op",
	Newline:   "Newline",
	NL:        "NL",
	Indent:    "Indent",
	Dedent:    "Dedent",
	Comment:   "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindFromString parses the name produced by Kind.String.
func KindFromString(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Invalid, fmt.Errorf("unknown token kind %q", s)
}
