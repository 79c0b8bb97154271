// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/atlas"
)

// RowAlignment is the WebGPU alignment requirement for BytesPerRow in
// buffer-to-texture copies (wgpu's COPY_BYTES_PER_ROW_ALIGNMENT).
const RowAlignment = 256

// AlignBytesPerRow rounds a row byte width up to RowAlignment.
func AlignBytesPerRow(bytes uint32) uint32 {
	return (bytes + RowAlignment - 1) &^ (RowAlignment - 1)
}

// TextureDescriptor describes the GPU texture backing an atlas page.
// It mirrors the WebGPU GPUTextureDescriptor fields used for 2D sampled
// textures.
type TextureDescriptor struct {
	Label         string
	Size          gputypes.Extent3D
	MipLevelCount uint32
	SampleCount   uint32
	Dimension     gputypes.TextureDimension
	Format        gputypes.TextureFormat
	Usage         gputypes.TextureUsage
}

// Describe builds the descriptor for a layout's backing texture. The
// texture is sized to the layout's Size with negative dimensions
// clamped to zero. An empty label defaults to "atlas".
func Describe(l *atlas.Layout, label string, format gputypes.TextureFormat) TextureDescriptor {
	if label == "" {
		label = "atlas"
	}
	return TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              clampUint32(l.Size.X),
			Height:             clampUint32(l.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// SectionCopy is one planned transfer from a staging buffer into the
// backing texture.
type SectionCopy struct {
	// Index is the section the copy fills.
	Index int

	// Origin is the destination texel within the texture.
	Origin gputypes.Origin3D

	// Size is the copied extent.
	Size gputypes.Extent3D

	// Layout locates the source pixels inside the staging buffer.
	// BytesPerRow is already rounded up to RowAlignment.
	Layout gputypes.TextureDataLayout
}

// PlanSection computes the copy for one section with its staging data
// at offset zero.
func PlanSection(l *atlas.Layout, i int, format gputypes.TextureFormat) (SectionCopy, error) {
	rect, ok := l.Section(i)
	if !ok {
		return SectionCopy{}, fmt.Errorf("upload: section %d out of range [0, %d)", i, l.Len())
	}
	bpp, err := BytesPerPixel(format)
	if err != nil {
		return SectionCopy{}, err
	}
	return sectionCopy(i, rect, bpp, 0), nil
}

// Plan lays every section out in a single staging buffer, front to back
// in section order. Offsets stay RowAlignment aligned because each
// section's staging footprint is a whole number of aligned rows.
func Plan(l *atlas.Layout, format gputypes.TextureFormat) ([]SectionCopy, error) {
	bpp, err := BytesPerPixel(format)
	if err != nil {
		return nil, err
	}
	copies := make([]SectionCopy, 0, l.Len())
	var offset uint64
	for i, rect := range l.Sections {
		c := sectionCopy(i, rect, bpp, offset)
		copies = append(copies, c)
		offset += uint64(c.Layout.BytesPerRow) * uint64(c.Layout.RowsPerImage)
	}
	return copies, nil
}

// StagingSize returns the byte length of the staging buffer a plan
// needs.
func StagingSize(copies []SectionCopy) uint64 {
	if len(copies) == 0 {
		return 0
	}
	last := copies[len(copies)-1]
	return last.Layout.Offset + uint64(last.Layout.BytesPerRow)*uint64(last.Layout.RowsPerImage)
}

func sectionCopy(i int, rect image.Rectangle, bpp uint32, offset uint64) SectionCopy {
	width := clampUint32(rect.Dx())
	height := clampUint32(rect.Dy())
	return SectionCopy{
		Index:  i,
		Origin: gputypes.Origin3D{X: clampUint32(rect.Min.X), Y: clampUint32(rect.Min.Y), Z: 0},
		Size:   gputypes.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		Layout: gputypes.TextureDataLayout{
			Offset:       offset,
			BytesPerRow:  AlignBytesPerRow(width * bpp),
			RowsPerImage: height,
		},
	}
}

// clampUint32 converts a pixel count to uint32, clamping negatives to
// zero.
func clampUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
