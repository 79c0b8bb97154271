package atlas

import (
	"image"
	"testing"
)

// --- UV Tests ---

func TestLayout_UV(t *testing.T) {
	l := FromGrid(image.Pt(16, 16), 2, 2)

	tests := []struct {
		name  string
		index int
		want  UVRect
	}{
		{"top-left", 0, UVRect{0, 0, 0.5, 0.5}},
		{"top-right", 1, UVRect{0.5, 0, 1, 0.5}},
		{"bottom-left", 2, UVRect{0, 0.5, 0.5, 1}},
		{"bottom-right", 3, UVRect{0.5, 0.5, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.UV(tt.index)
			if !ok {
				t.Fatalf("UV(%d) not found", tt.index)
			}
			if got != tt.want {
				t.Errorf("UV(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestLayout_UVOutOfRange(t *testing.T) {
	l := FromGrid(image.Pt(16, 16), 2, 2)
	if _, ok := l.UV(-1); ok {
		t.Error("UV(-1) should report not found")
	}
	if _, ok := l.UV(4); ok {
		t.Error("UV(4) should report not found")
	}
}

func TestLayout_UVPaddedGrid(t *testing.T) {
	// Padded cells map to non-contiguous UV ranges.
	l := FromGrid(image.Pt(10, 10), 2, 1, WithPadding(2, 0))

	uv0, _ := l.UV(0)
	if want := (UVRect{0, 0, 10.0 / 22, 1}); uv0 != want {
		t.Errorf("UV(0) = %v, want %v", uv0, want)
	}
	uv1, _ := l.UV(1)
	if want := (UVRect{12.0 / 22, 0, 1, 1}); uv1 != want {
		t.Errorf("UV(1) = %v, want %v", uv1, want)
	}
}
