// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package anim

// Clip is an ordered run of atlas section indices played as animation
// frames. Frames may repeat and may appear in any order; they address
// sections, not geometry.
type Clip struct {
	Name   string  `yaml:"name"`
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop,omitempty"`
}

// Len returns the number of frames.
func (c Clip) Len() int { return len(c.Frames) }

// Duration returns the clip length in seconds, zero when FPS is not
// positive.
func (c Clip) Duration() float64 {
	if c.FPS <= 0 {
		return 0
	}
	return float64(len(c.Frames)) / c.FPS
}

// FrameAt returns the section index to display after elapsed seconds and
// whether the clip is still playing. Looping clips wrap and always report
// playing; one-shot clips hold their last frame and report finished once
// elapsed passes the end. A clip with no frames reports (0, false).
func (c Clip) FrameAt(elapsed float64) (int, bool) {
	n := len(c.Frames)
	if n == 0 || c.FPS <= 0 {
		return 0, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	pos := int(elapsed * c.FPS)
	if c.Loop {
		return c.Frames[pos%n], true
	}
	if pos >= n {
		return c.Frames[n-1], false
	}
	return c.Frames[pos], true
}

// RowFrames returns the section indices of count consecutive cells in one
// row of a grid layout, beginning at column start. It encodes the row-major
// append order of grid construction: cell (x, y) has index y*columns + x.
func RowFrames(columns, row, start, count int) []int {
	frames := make([]int, 0, max(count, 0))
	for i := 0; i < count; i++ {
		frames = append(frames, row*columns+start+i)
	}
	return frames
}
