// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// parsePoint parses a "WIDTHxHEIGHT" pair such as "16x16" into a point.
// Negative components are accepted; the layout types do not validate.
func parsePoint(s string) (image.Point, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid pair %q: want WIDTHxHEIGHT", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid pair %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid pair %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

// formatPoint renders a point back in flag syntax, e.g. "16x16".
func formatPoint(p image.Point) string {
	return strconv.Itoa(p.X) + "x" + strconv.Itoa(p.Y)
}

// formatRect renders a rectangle as "(x0,y0)-(x1,y1)" matching the
// image.Rectangle string form without the embedded spaces.
func formatRect(r image.Rectangle) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
