// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// UnknownFormatError is returned for texture formats the planner cannot
// size. Depth and compressed formats have no per-pixel byte width.
type UnknownFormatError struct {
	Format gputypes.TextureFormat
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("upload: no byte width for texture format %v", e.Format)
}

// BytesPerPixel returns the byte width of one texel in the given format.
func BytesPerPixel(format gputypes.TextureFormat) (uint32, error) {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return 1, nil
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4, nil
	default:
		return 0, &UnknownFormatError{Format: format}
	}
}

// PreferredFormat picks the pixel format for an atlas page. When the
// provider reports a usable surface format the atlas matches it so
// sprite draws avoid a conversion pass; otherwise RGBA8 is the portable
// default.
func PreferredFormat(provider gpucontext.DeviceProvider) gputypes.TextureFormat {
	if provider == nil {
		return gputypes.TextureFormatRGBA8Unorm
	}
	if format := provider.SurfaceFormat(); format != gputypes.TextureFormatUndefined {
		return format
	}
	return gputypes.TextureFormatRGBA8Unorm
}
