// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package anim

import (
	"testing"
)

// --- RowFrames Tests ---

func TestRowFrames(t *testing.T) {
	tests := []struct {
		name                       string
		columns, row, start, count int
		want                       []int
	}{
		{"second row", 4, 1, 0, 3, []int{4, 5, 6}},
		{"first row", 4, 0, 0, 4, []int{0, 1, 2, 3}},
		{"column offset", 4, 2, 1, 2, []int{9, 10}},
		{"single frame", 8, 3, 5, 1, []int{29}},
		{"zero count", 4, 1, 0, 0, []int{}},
		{"negative count", 4, 1, 0, -2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowFrames(tt.columns, tt.row, tt.start, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("frame %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --- Clip Tests ---

func TestClip_FrameAt(t *testing.T) {
	oneShot := Clip{Name: "swing", Frames: []int{4, 5, 6}, FPS: 2}
	looping := Clip{Name: "walk", Frames: []int{4, 5, 6}, FPS: 2, Loop: true}

	tests := []struct {
		name        string
		clip        Clip
		elapsed     float64
		wantFrame   int
		wantPlaying bool
	}{
		{"start", oneShot, 0, 4, true},
		{"mid", oneShot, 0.5, 5, true},
		{"last frame", oneShot, 1.4, 6, true},
		{"finished holds last", oneShot, 1.5, 6, false},
		{"well past end", oneShot, 100, 6, false},
		{"negative clamps", oneShot, -3, 4, true},
		{"loop wraps", looping, 1.5, 4, true},
		{"loop second cycle", looping, 2.4, 5, true},
		{"loop never finishes", looping, 1000, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, playing := tt.clip.FrameAt(tt.elapsed)
			if frame != tt.wantFrame || playing != tt.wantPlaying {
				t.Errorf("FrameAt(%v) = %d, %v, want %d, %v",
					tt.elapsed, frame, playing, tt.wantFrame, tt.wantPlaying)
			}
		})
	}
}

func TestClip_FrameAtDegenerate(t *testing.T) {
	t.Run("no frames", func(t *testing.T) {
		c := Clip{Name: "empty", FPS: 10}
		if frame, playing := c.FrameAt(1); frame != 0 || playing {
			t.Errorf("FrameAt = %d, %v, want 0, false", frame, playing)
		}
	})

	t.Run("zero fps", func(t *testing.T) {
		c := Clip{Name: "static", Frames: []int{3}}
		if frame, playing := c.FrameAt(1); frame != 0 || playing {
			t.Errorf("FrameAt = %d, %v, want 0, false", frame, playing)
		}
	})
}

func TestClip_Duration(t *testing.T) {
	tests := []struct {
		name string
		clip Clip
		want float64
	}{
		{"normal", Clip{Frames: []int{0, 1, 2, 3}, FPS: 8}, 0.5},
		{"single frame", Clip{Frames: []int{0}, FPS: 4}, 0.25},
		{"zero fps", Clip{Frames: []int{0, 1}}, 0},
		{"no frames", Clip{FPS: 8}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clip.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClip_Len(t *testing.T) {
	if got := (Clip{Frames: []int{1, 2, 3}}).Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := (Clip{}).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

// --- Row-major Integration Tests ---

func TestRowFrames_MatchGridOrder(t *testing.T) {
	// A clip over row 1 of a 4-column grid must address exactly the cells
	// of that row, relying on the append-order contract.
	const columns, rows = 4, 3
	frames := RowFrames(columns, 1, 0, columns)
	for x := 0; x < columns; x++ {
		want := 1*columns + x
		if frames[x] != want {
			t.Errorf("frames[%d] = %d, want %d", x, frames[x], want)
		}
	}
}
