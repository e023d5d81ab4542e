// Package driver wires the pipeline the CLI runs: load a parse bundle,
// mark it, and hand the result to formatting or verification.
package driver

import (
	"fmt"

	"tokmark/internal/bundle"
	"tokmark/internal/config"
	"tokmark/internal/marker"
	"tokmark/internal/stream"
	"tokmark/internal/testkit"
	"tokmark/internal/tree"
)

// Result holds everything produced by marking one bundle.
type Result struct {
	Path   string
	Bundle *bundle.Bundle
	Stream *stream.Stream
	Tree   *tree.Tree
}

// MarkBundle materializes and marks an already-decoded bundle.
func MarkBundle(b *bundle.Bundle, path string, cfg config.Config) (*Result, error) {
	s, t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := marker.New(s, t, cfg.Dialect).Mark(t.Root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := b.CaptureRanges(t); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Result{Path: path, Bundle: b, Stream: s, Tree: t}, nil
}

// MarkFile loads the bundle at path and marks it.
func MarkFile(path string, cfg config.Config) (*Result, error) {
	b, err := bundle.Read(path)
	if err != nil {
		return nil, err
	}
	return MarkBundle(b, path, cfg)
}

// Verify re-checks the marking invariants on a result.
func Verify(res *Result) error {
	if err := testkit.CheckMarked(res.Tree, res.Stream); err != nil {
		return fmt.Errorf("%s: %w", res.Path, err)
	}
	return nil
}
