package source

import (
	"testing"
)

func TestFile_Offset(t *testing.T) {
	f := NewFile("test.py", []byte("foo(bar)\nx = 1\n"))

	tests := []struct {
		name     string
		pos      Pos
		expected uint32
		wantErr  bool
	}{
		{
			name:     "start of file",
			pos:      Pos{Line: 1, Col: 0},
			expected: 0,
		},
		{
			name:     "middle of first line",
			pos:      Pos{Line: 1, Col: 4},
			expected: 4,
		},
		{
			name:     "start of second line",
			pos:      Pos{Line: 2, Col: 0},
			expected: 9,
		},
		{
			name:     "second line interior",
			pos:      Pos{Line: 2, Col: 4},
			expected: 13,
		},
		{
			name:    "line zero is invalid",
			pos:     Pos{Line: 0, Col: 0},
			wantErr: true,
		},
		{
			name:    "line past end of file",
			pos:     Pos{Line: 10, Col: 0},
			wantErr: true,
		},
		{
			name:    "column past end of content",
			pos:     Pos{Line: 3, Col: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, err := f.Offset(tt.pos)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Offset(%+v) expected error, got %d", tt.pos, off)
				}
				return
			}
			if err != nil {
				t.Fatalf("Offset(%+v) unexpected error: %v", tt.pos, err)
			}
			if off != tt.expected {
				t.Errorf("Offset(%+v) = %d, want %d", tt.pos, off, tt.expected)
			}
		})
	}
}

func TestFile_Resolve(t *testing.T) {
	f := NewFile("test.py", []byte("foo(bar)\nx = 1\n"))

	tests := []struct {
		name     string
		off      uint32
		expected Pos
	}{
		{name: "file start", off: 0, expected: Pos{Line: 1, Col: 0}},
		{name: "first line interior", off: 4, expected: Pos{Line: 1, Col: 4}},
		{name: "newline byte", off: 8, expected: Pos{Line: 1, Col: 8}},
		{name: "second line start", off: 9, expected: Pos{Line: 2, Col: 0}},
		{name: "second line interior", off: 13, expected: Pos{Line: 2, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := f.Resolve(tt.off)
			if pos != tt.expected {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, pos, tt.expected)
			}
		})
	}
}

func TestFile_Roundtrip(t *testing.T) {
	f := NewFile("test.py", []byte("a = [1, 2]\nb = a[0]\nprint(b)\n"))
	for off := uint32(0); off < uint32(len(f.Content)); off++ {
		pos := f.Resolve(off)
		back, err := f.Offset(pos)
		if err != nil {
			t.Fatalf("Offset(Resolve(%d)) error: %v", off, err)
		}
		if back != off {
			t.Errorf("Offset(Resolve(%d)) = %d", off, back)
		}
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{Start: 5, End: 10},
			b:        Span{Start: 20, End: 30},
			expected: Span{Start: 5, End: 30},
		},
		{
			name:     "contained span",
			a:        Span{Start: 0, End: 100},
			b:        Span{Start: 10, End: 20},
			expected: Span{Start: 0, End: 100},
		},
		{
			name:     "overlapping spans",
			a:        Span{Start: 10, End: 25},
			b:        Span{Start: 5, End: 15},
			expected: Span{Start: 5, End: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
