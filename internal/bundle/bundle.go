// Package bundle reads and writes parse bundles: the serialized token
// stream + parse tree an external frontend exports for marking. JSON is the
// interchange format; msgpack is the compact one.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion is incremented whenever the bundle layout changes.
const SchemaVersion uint16 = 1

// Token is one serialized token. Line/Col locate the token start
// (1-based line, 0-based byte column); Start/End are byte offsets into
// Source.
type Token struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// Node is one serialized parse-tree node. Children are 1-based indices into
// the bundle's node list, in the parser's construction order. First/Last are
// zero until a marked bundle is re-encoded.
type Node struct {
	Kind     string   `json:"kind" msgpack:"kind"`
	Name     string   `json:"name,omitempty" msgpack:"name"`
	Line     uint32   `json:"line,omitempty" msgpack:"line"`
	Col      uint32   `json:"col,omitempty" msgpack:"col"`
	HasPos   bool     `json:"has_pos" msgpack:"has_pos"`
	Children []uint32 `json:"children,omitempty" msgpack:"children"`
	First    uint32   `json:"first,omitempty" msgpack:"first"`
	Last     uint32   `json:"last,omitempty" msgpack:"last"`
}

// Bundle is a complete frontend export for one source file.
type Bundle struct {
	Schema uint16  `json:"schema" msgpack:"schema"`
	Path   string  `json:"path" msgpack:"path"`
	Source string  `json:"source" msgpack:"source"`
	Tokens []Token `json:"tokens" msgpack:"tokens"`
	Nodes  []Node  `json:"nodes" msgpack:"nodes"`
	Root   uint32  `json:"root" msgpack:"root"`
}

// Format selects the wire encoding.
type Format uint8

const (
	// FormatMsgpack is the compact default encoding.
	FormatMsgpack Format = iota
	// FormatJSON is the human-readable interchange encoding.
	FormatJSON
)

// FormatForPath picks the encoding from a file extension; anything but
// .json is treated as msgpack.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatMsgpack
}

// Unmarshal decodes a bundle and validates its schema version.
func Unmarshal(data []byte, format Format) (*Bundle, error) {
	var b Bundle
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &b)
	default:
		err = msgpack.Unmarshal(data, &b)
	}
	if err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if b.Schema != SchemaVersion {
		return nil, fmt.Errorf("bundle schema %d not supported (want %d)", b.Schema, SchemaVersion)
	}
	return &b, nil
}

// Marshal encodes the bundle, stamping the current schema version.
func (b *Bundle) Marshal(format Format) ([]byte, error) {
	b.Schema = SchemaVersion
	switch format {
	case FormatJSON:
		return json.MarshalIndent(b, "", "  ")
	default:
		return msgpack.Marshal(b)
	}
}

// Read loads a bundle file, picking the encoding from its extension.
func Read(path string) (*Bundle, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Unmarshal(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Write stores the bundle at path, picking the encoding from its extension.
func (b *Bundle) Write(path string) error {
	data, err := b.Marshal(FormatForPath(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
