// Package atlas provides texture-atlas layout descriptors for Go.
//
// # Overview
//
// atlas describes how a single texture surface is partitioned into
// addressable rectangular sections. It is the descriptor half of a sprite
// pipeline: renderers read section rectangles to emit UVs, animation systems
// address sections by index, and asset builders record which source texture
// produced which section. The package never loads, decodes, or owns pixel
// data and never talks to a GPU.
//
// # Quick Start
//
//	import "github.com/gogpu/atlas"
//
//	// Describe a 2x2 sheet of 16x16 tiles.
//	l := atlas.FromGrid(image.Pt(16, 16), 2, 2)
//
//	// Section 3 is the bottom-right cell (row-major order).
//	r, _ := l.Section(3)
//
//	// Normalized coordinates for sampling.
//	uv, _ := l.UV(3)
//	_ = r
//	_ = uv
//
// # Indexing Contract
//
// A section's position in the ordered list is its public index. The list
// grows only by appending: indices are assigned monotonically, never reused,
// and never shift. FromGrid appends row-major, left-to-right then
// top-to-bottom, so animation code can compute a cell index as
// y*columns + x without inspecting geometry.
//
// # Trusting Container
//
// Layout performs no validation. Negative extents, zero tile sizes, and
// out-of-bounds sections are stored as given and produce mechanically
// derived output. Validation belongs to builder collaborators; see the
// manifest package for the validating document layer.
//
// # Subpackages
//
//   - manifest: human-authored JSON/TOML atlas documents with named sections
//   - anim: frame-sequence clips addressing sections by index
//   - snapshot: deterministic binary encoding for caching and hot-reload
//   - upload: WebGPU copy-geometry helpers for render integrations
package atlas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
