// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"image"
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    image.Point
		wantErr bool
	}{
		{"simple", "16x16", image.Pt(16, 16), false},
		{"asymmetric", "128x64", image.Pt(128, 64), false},
		{"zero", "0x0", image.Pt(0, 0), false},
		{"negative", "-4x7", image.Pt(-4, 7), false},
		{"spaces", " 8 x 12 ", image.Pt(8, 12), false},
		{"missing separator", "16", image.Point{}, true},
		{"empty", "", image.Point{}, true},
		{"non numeric", "axb", image.Point{}, true},
		{"trailing junk", "16x16x16", image.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestFormatPoint(t *testing.T) {
	if got := formatPoint(image.Pt(128, 64)); got != "128x64" {
		t.Errorf("formatPoint() = %q, want %q", got, "128x64")
	}
	if got := formatPoint(image.Pt(-4, 0)); got != "-4x0" {
		t.Errorf("formatPoint() = %q, want %q", got, "-4x0")
	}
}

func TestFormatRect(t *testing.T) {
	if got := formatRect(image.Rect(2, 3, 18, 19)); got != "(2,3)-(18,19)" {
		t.Errorf("formatRect() = %q, want %q", got, "(2,3)-(18,19)")
	}
}

func TestParsePoint_RoundTrip(t *testing.T) {
	want := image.Pt(33, 7)
	got, err := parsePoint(formatPoint(want))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}
