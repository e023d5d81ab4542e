package bundle_test

import (
	"path/filepath"
	"testing"

	"tokmark/internal/bundle"
	"tokmark/internal/testkit"
	"tokmark/internal/token"
)

// fixtureBundle builds a bundle over `foo(bar)` with the matching tree:
// Module -> ExprStmt -> Call -> [Name foo, Name bar].
func fixtureBundle() *bundle.Bundle {
	const src = "foo(bar)"
	var toks []bundle.Token
	for _, t := range testkit.Scan(src) {
		toks = append(toks, bundle.Token{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Line:  t.Pos.Line,
			Col:   t.Pos.Col,
			Start: t.Span.Start,
			End:   t.Span.End,
		})
	}
	return &bundle.Bundle{
		Schema: bundle.SchemaVersion,
		Path:   "fixture.py",
		Source: src,
		Tokens: toks,
		Nodes: []bundle.Node{
			{Kind: "Name", Name: "foo", HasPos: true, Line: 1, Col: 0},
			{Kind: "Name", Name: "bar", HasPos: true, Line: 1, Col: 4},
			{Kind: "Call", HasPos: true, Line: 1, Col: 0, Children: []uint32{1, 2}},
			{Kind: "ExprStmt", HasPos: true, Line: 1, Col: 0, Children: []uint32{3}},
			{Kind: "Module", Children: []uint32{4}},
		},
		Root: 5,
	}
}

func TestBundle_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format bundle.Format
	}{
		{name: "msgpack", format: bundle.FormatMsgpack},
		{name: "json", format: bundle.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fixtureBundle()
			data, err := b.Marshal(tt.format)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got, err := bundle.Unmarshal(data, tt.format)
			if err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got.Source != b.Source || len(got.Tokens) != len(b.Tokens) || len(got.Nodes) != len(b.Nodes) || got.Root != b.Root {
				t.Errorf("round trip mismatch: %+v", got)
			}
		})
	}
}

func TestBundle_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fixture.json", "fixture.tmb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := fixtureBundle().Write(path); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			got, err := bundle.Read(path)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got.Source != "foo(bar)" {
				t.Errorf("Read() source = %q", got.Source)
			}
		})
	}
}

func TestBundle_SchemaMismatch(t *testing.T) {
	bad := []byte(`{"schema": 99, "path": "x", "source": "", "tokens": [], "nodes": [], "root": 0}`)
	if _, err := bundle.Unmarshal(bad, bundle.FormatJSON); err == nil {
		t.Error("Unmarshal() with schema 99 expected error")
	}
}

func TestBundle_Build(t *testing.T) {
	s, tr, err := fixtureBundle().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if s.Len() != 5 { // foo ( bar ) EndMarker
		t.Errorf("stream has %d tokens, want 5", s.Len())
	}
	if tr.Len() != 5 {
		t.Errorf("tree has %d nodes, want 5", tr.Len())
	}
	if got := tr.Kind(tr.Root); got.String() != "Module" {
		t.Errorf("root kind = %s, want Module", got)
	}
	if s.Get(s.First()).Kind != token.Name {
		t.Errorf("first token = %s, want Name", s.Get(s.First()))
	}
}

func TestBundle_BuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *bundle.Bundle)
	}{
		{
			name:   "unknown token kind",
			mutate: func(b *bundle.Bundle) { b.Tokens[0].Kind = "Wat" },
		},
		{
			name:   "token span out of bounds",
			mutate: func(b *bundle.Bundle) { b.Tokens[0].End = 999 },
		},
		{
			name:   "unknown node kind",
			mutate: func(b *bundle.Bundle) { b.Nodes[0].Kind = "Wat" },
		},
		{
			name:   "child index out of range",
			mutate: func(b *bundle.Bundle) { b.Nodes[2].Children = []uint32{42} },
		},
		{
			name:   "child index zero",
			mutate: func(b *bundle.Bundle) { b.Nodes[2].Children = []uint32{0} },
		},
		{
			name:   "root out of range",
			mutate: func(b *bundle.Bundle) { b.Root = 42 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fixtureBundle()
			tt.mutate(b)
			if _, _, err := b.Build(); err == nil {
				t.Error("Build() expected error")
			}
		})
	}
}
