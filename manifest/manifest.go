// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package manifest

import (
	"fmt"
	"image"
	"sort"

	"github.com/gogpu/atlas"
)

// Point is the serialized form of a 2D coordinate.
type Point struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// Pt converts to the stdlib image type.
func (p Point) Pt() image.Point { return image.Pt(p.X, p.Y) }

// Section is one explicit section entry. Name is an optional label for
// human-facing addressing; the layout itself only knows indices.
type Section struct {
	Name string `json:"name,omitempty" toml:"name,omitempty"`
	Min  Point  `json:"min" toml:"min"`
	Max  Point  `json:"max" toml:"max"`
}

// Grid holds the parameters of procedural grid construction.
type Grid struct {
	Tile    Point `json:"tile" toml:"tile"`
	Columns int   `json:"columns" toml:"columns"`
	Rows    int   `json:"rows" toml:"rows"`
	Padding Point `json:"padding" toml:"padding"`
	Offset  Point `json:"offset" toml:"offset"`
}

// Handle records that an externally owned texture became a given section.
type Handle struct {
	Texture atlas.TextureID `json:"texture" toml:"texture"`
	Section int             `json:"section" toml:"section"`
}

// Document is the serialized description of an atlas layout.
//
// Exactly one of Grid and Sections describes the sections. Optional fields
// use pointers so that presence survives a round trip: a nil Handles is a
// layout without identity data, while a pointer to an empty list attaches
// an empty handle map.
type Document struct {
	// Size is the atlas surface extent. Required for the explicit form;
	// ignored in favor of the derived extent for the grid form.
	Size *Point `json:"size,omitempty" toml:"size,omitempty"`

	// Grid describes procedural construction.
	Grid *Grid `json:"grid,omitempty" toml:"grid,omitempty"`

	// Sections lists explicit rectangles in index order.
	Sections []Section `json:"sections,omitempty" toml:"sections,omitempty"`

	// Handles records texture identity assignments against the built
	// section list.
	Handles *[]Handle `json:"handles,omitempty" toml:"handles,omitempty"`
}

// FieldError represents a document validation error.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "manifest: invalid document." + e.Field + ": " + e.Reason
}

// Validate checks the document for coherence without building anything.
func (d *Document) Validate() error {
	if d.Grid != nil && len(d.Sections) > 0 {
		return &FieldError{Field: "grid", Reason: "mutually exclusive with sections"}
	}
	if d.Grid == nil {
		if d.Size == nil {
			return &FieldError{Field: "size", Reason: "required for explicit sections"}
		}
		seen := make(map[string]int, len(d.Sections))
		for i, s := range d.Sections {
			if s.Min.X > s.Max.X || s.Min.Y > s.Max.Y {
				return &FieldError{
					Field:  fmt.Sprintf("sections[%d]", i),
					Reason: "min must not exceed max",
				}
			}
			if s.Name == "" {
				continue
			}
			if prev, ok := seen[s.Name]; ok {
				return &FieldError{
					Field:  fmt.Sprintf("sections[%d].name", i),
					Reason: fmt.Sprintf("duplicate of sections[%d]", prev),
				}
			}
			seen[s.Name] = i
		}
	}
	if d.Handles != nil {
		n := d.sectionCount()
		ids := make(map[atlas.TextureID]int, len(*d.Handles))
		for i, h := range *d.Handles {
			if h.Section < 0 || h.Section >= n {
				return &FieldError{
					Field:  fmt.Sprintf("handles[%d].section", i),
					Reason: fmt.Sprintf("index %d out of range [0, %d)", h.Section, n),
				}
			}
			if prev, ok := ids[h.Texture]; ok {
				return &FieldError{
					Field:  fmt.Sprintf("handles[%d].texture", i),
					Reason: fmt.Sprintf("duplicate of handles[%d]", prev),
				}
			}
			ids[h.Texture] = i
		}
	}
	return nil
}

// sectionCount returns the number of sections the built layout will have.
func (d *Document) sectionCount() int {
	if d.Grid != nil {
		return max(d.Grid.Columns, 0) * max(d.Grid.Rows, 0)
	}
	return len(d.Sections)
}

// Build validates the document and compiles it into a layout.
func (d *Document) Build() (*atlas.Layout, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var l *atlas.Layout
	if d.Grid != nil {
		g := d.Grid
		l = atlas.FromGrid(g.Tile.Pt(), g.Columns, g.Rows,
			atlas.WithPadding(g.Padding.X, g.Padding.Y),
			atlas.WithOffset(g.Offset.X, g.Offset.Y),
		)
	} else {
		l = atlas.New(d.Size.Pt())
		for _, s := range d.Sections {
			l.AddTexture(image.Rectangle{Min: s.Min.Pt(), Max: s.Max.Pt()})
		}
	}

	if d.Handles != nil {
		m := make(map[atlas.TextureID]int, len(*d.Handles))
		for _, h := range *d.Handles {
			m[h.Texture] = h.Section
		}
		l.Handles = m
	}
	return l, nil
}

// FromLayout captures a layout as an explicit-form document. Section names
// are left empty; the layout does not store them. Handle entries are sorted
// by section index, then texture identity, so output is deterministic.
func FromLayout(l *atlas.Layout) *Document {
	size := Point{X: l.Size.X, Y: l.Size.Y}
	d := &Document{Size: &size}

	if len(l.Sections) > 0 {
		d.Sections = make([]Section, len(l.Sections))
		for i, r := range l.Sections {
			d.Sections[i] = Section{
				Min: Point{X: r.Min.X, Y: r.Min.Y},
				Max: Point{X: r.Max.X, Y: r.Max.Y},
			}
		}
	}

	if l.Handles != nil {
		hs := make([]Handle, 0, len(l.Handles))
		for id, idx := range l.Handles {
			hs = append(hs, Handle{Texture: id, Section: idx})
		}
		sort.Slice(hs, func(i, j int) bool {
			if hs[i].Section != hs[j].Section {
				return hs[i].Section < hs[j].Section
			}
			if hs[i].Texture.Index != hs[j].Texture.Index {
				return hs[i].Texture.Index < hs[j].Texture.Index
			}
			return hs[i].Texture.Generation < hs[j].Texture.Generation
		})
		d.Handles = &hs
	}
	return d
}

// SectionIndex returns the index of the named section, if any. Only
// explicit-form documents carry names.
func (d *Document) SectionIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i, s := range d.Sections {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}
