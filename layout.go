package atlas

import (
	"image"
	"maps"
	"slices"
)

// Layout describes how a texture surface is divided into sections.
//
// The zero value is an empty layout with zero size. Layouts are built once
// by a single writer (grid construction, builder appends, handle attachment)
// and published to readers afterwards; the type itself holds no locks.
type Layout struct {
	// Size is the full extent of the atlas surface, in pixels.
	// Set at construction and recomputed by grid construction; the
	// package never mutates it otherwise.
	Size image.Point

	// Sections is the ordered list of sub-rectangles. A section's position
	// in this slice is its public index. The list grows only by appending;
	// there is no removal or reordering, so indices are stable for the
	// lifetime of the layout.
	Sections []image.Rectangle

	// Handles maps external texture identities to section indices.
	// A nil map means no identity data exists for this layout, which is
	// distinct from an empty map: grid-built layouts never carry one,
	// while builder-produced layouts attach one to record which source
	// texture became which section. Written directly by builders; this
	// package only reads it.
	Handles map[TextureID]int
}

// New returns an empty layout with the given surface extent.
// The extent is stored as given; negative or zero components are accepted.
func New(size image.Point) *Layout {
	return &Layout{Size: size}
}

// gridConfig holds the optional parameters of FromGrid.
type gridConfig struct {
	padding image.Point
	offset  image.Point
}

// GridOption configures grid construction.
type GridOption func(*gridConfig)

// WithPadding inserts a per-axis gap between adjacent cells. Padding is
// applied strictly between cells: never before the first row or column,
// never after the last.
func WithPadding(x, y int) GridOption {
	return func(c *gridConfig) { c.padding = image.Pt(x, y) }
}

// WithOffset translates the whole grid by the given amount.
func WithOffset(x, y int) GridOption {
	return func(c *gridConfig) { c.offset = image.Pt(x, y) }
}

// FromGrid returns a layout populated with a uniform grid of tile-sized
// sections, appended row-major: left-to-right, then top-to-bottom. Cell
// (x, y) lands at index y*columns + x, a contract animation code relies on.
//
// The resulting Size is the exact bounding extent of the grid including
// internal padding. Degenerate counts (columns or rows <= 0) produce no
// sections and a mechanically derived Size; inputs are not validated.
func FromGrid(tile image.Point, columns, rows int, opts ...GridOption) *Layout {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sections := make([]image.Rectangle, 0, max(columns*rows, 0))

	// Running per-axis padding. Stays zero for the first row and first
	// column so that gaps appear only between cells. The cell formula
	// multiplies the x component by x (zero in column 0) and the y
	// component by y (zero in row 0), so carrying the accumulator across
	// rows does not disturb leading cells.
	var pad image.Point
	for y := 0; y < rows; y++ {
		if y > 0 {
			pad.Y = cfg.padding.Y
		}
		for x := 0; x < columns; x++ {
			if x > 0 {
				pad.X = cfg.padding.X
			}
			min := image.Pt(
				(tile.X+pad.X)*x+cfg.offset.X,
				(tile.Y+pad.Y)*y+cfg.offset.Y,
			)
			sections = append(sections, image.Rectangle{Min: min, Max: min.Add(tile)})
		}
	}

	// Bounding extent: per axis, count cells plus the gaps between them.
	// The accumulator's final value is zero when an axis never advanced
	// past its first cell, which keeps single-row and single-column grids
	// free of trailing padding. With zero cells the formula may go
	// negative; stored as computed.
	size := image.Pt(
		(tile.X+pad.X)*columns-pad.X,
		(tile.Y+pad.Y)*rows-pad.Y,
	)

	return &Layout{Size: size, Sections: sections}
}

// AddTexture appends a section and returns its index, which equals Len()-1
// immediately after the call. The rectangle is stored as given; no
// containment check against Size is performed, so sections may exceed the
// nominal atlas bounds.
func (l *Layout) AddTexture(rect image.Rectangle) int {
	l.Sections = append(l.Sections, rect)
	return len(l.Sections) - 1
}

// Len returns the number of sections.
func (l *Layout) Len() int { return len(l.Sections) }

// IsEmpty reports whether the layout has no sections.
func (l *Layout) IsEmpty() bool { return len(l.Sections) == 0 }

// Section returns the rectangle at index i and whether i was in range.
func (l *Layout) Section(i int) (image.Rectangle, bool) {
	if i < 0 || i >= len(l.Sections) {
		return image.Rectangle{}, false
	}
	return l.Sections[i], true
}

// TextureIndex looks up the section index recorded for an external texture
// identity. It reports false both when no handle map is attached and when
// the map is attached but lacks the identity. Absence is a normal result,
// not an error; the method never mutates the layout.
func (l *Layout) TextureIndex(id TextureID) (int, bool) {
	i, ok := l.Handles[id]
	return i, ok
}

// Clone returns a deep copy. The copy preserves the distinction between an
// absent and an empty handle map.
func (l *Layout) Clone() *Layout {
	return &Layout{
		Size:     l.Size,
		Sections: slices.Clone(l.Sections),
		Handles:  maps.Clone(l.Handles),
	}
}
