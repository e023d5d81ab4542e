package tree

import "fmt"

// Kind represents the grammar variant of a parse-tree node.
type Kind uint8

const (
	// Invalid indicates an erroneous or unclassified node.
	Invalid Kind = iota

	// Module is the root node of a parsed file.
	Module

	// FunctionDef represents a function definition statement.
	FunctionDef
	// ClassDef represents a class definition statement.
	ClassDef
	// Return represents a return statement.
	Return
	// Assign represents an assignment statement.
	Assign
	// AugAssign represents an augmented assignment statement (+=, -=, ...).
	AugAssign
	// For represents a for-loop statement.
	For
	// While represents a while-loop statement.
	While
	// If represents a conditional statement.
	If
	// Import represents an import statement.
	Import
	// ExprStmt represents a bare expression used as a statement.
	ExprStmt
	// Pass represents a pass statement.
	Pass
	// Break represents a break statement.
	Break
	// Continue represents a continue statement.
	Continue

	// BinOp represents a binary operation expression.
	BinOp
	// UnaryOp represents a unary operation expression.
	UnaryOp
	// Lambda represents an anonymous function expression.
	Lambda
	// IfExp represents a conditional expression.
	IfExp
	// Compare represents a comparison chain expression.
	Compare
	// Call represents a call expression.
	Call
	// Subscript represents an indexing expression.
	Subscript
	// Attribute represents a member-access expression.
	Attribute
	// Name represents an identifier expression.
	Name
	// Number represents a numeric literal expression.
	Number
	// Str represents a string literal expression.
	Str
	// Tuple represents a tuple display (parens not part of the node).
	Tuple
	// List represents a list display.
	List
	// Set represents a set display.
	Set
	// Dict represents a dict display.
	Dict
	// ListComp represents a list comprehension expression.
	ListComp
	// SetComp represents a set comprehension expression.
	SetComp
	// DictComp represents a dict comprehension expression.
	DictComp
	// Comprehension represents a single `for ... in ...` clause of a
	// comprehension; it is not an expression on its own.
	Comprehension
	// Keyword represents a keyword argument in a call.
	Keyword
	// Starred represents a *expr unpacking expression.
	Starred
	// Slice represents a slice expression inside a subscript.
	Slice
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	Module:        "Module",
	FunctionDef:   "FunctionDef",
	ClassDef:      "ClassDef",
	Return:        "Return",
	Assign:        "Assign",
	AugAssign:     "AugAssign",
	For:           "For",
	While:         "While",
	If:            "If",
	Import:        "Import",
	ExprStmt:      "ExprStmt",
	Pass:          "Pass",
	Break:         "Break",
	Continue:      "Continue",
	BinOp:         "BinOp",
	UnaryOp:       "UnaryOp",
	Lambda:        "Lambda",
	IfExp:         "IfExp",
	Compare:       "Compare",
	Call:          "Call",
	Subscript:     "Subscript",
	Attribute:     "Attribute",
	Name:          "Name",
	Number:        "Number",
	Str:           "Str",
	Tuple:         "Tuple",
	List:          "List",
	Set:           "Set",
	Dict:          "Dict",
	ListComp:      "ListComp",
	SetComp:       "SetComp",
	DictComp:      "DictComp",
	Comprehension: "Comprehension",
	Keyword:       "Keyword",
	Starred:       "Starred",
	Slice:         "Slice",
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
	return Invalid, fmt.Errorf("unknown node kind %q", s)
}

// IsStmt reports whether the kind is a statement form. Statement ranges are
// extended to the end of their logical line; Module is the file root, not a
// statement.
func (k Kind) IsStmt() bool {
	switch k {
	case FunctionDef, ClassDef, Return, Assign, AugAssign, For, While, If,
		Import, ExprStmt, Pass, Break, Continue:
		return true
	default:
		return false
	}
}
