// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package anim describes frame-sequence animations over an atlas layout.
//
// A Clip is an ordered run of section indices played at a fixed rate. Clips
// rely on the layout's index contract: grid construction appends cells
// row-major, so a sheet row becomes a clip with simple arithmetic
// (RowFrames) and no geometry inspection.
//
// A Set is a named collection of clips, loadable from YAML:
//
//	clips:
//	  - name: idle
//	    frames: [0, 1, 2, 3]
//	    fps: 8
//	    loop: true
//	  - name: jump
//	    frames: [8, 9]
//	    fps: 12
//
// Sets validate against a layout's section count before use; a clip frame
// pointing outside the section list is a typed error naming the clip and
// position.
package anim
