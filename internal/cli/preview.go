// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// sectionPalette cycles across sections so adjacent rectangles stay
// distinguishable in the preview.
var sectionPalette = []color.NRGBA{
	{R: 0x4e, G: 0xc9, B: 0xb0, A: 0xff}, // teal
	{R: 0xdc, G: 0xdc, B: 0x6a, A: 0xff}, // yellow
	{R: 0xc5, G: 0x86, B: 0xc0, A: 0xff}, // purple
	{R: 0x9c, G: 0xdc, B: 0xfe, A: 0xff}, // blue
	{R: 0xce, G: 0x91, B: 0x78, A: 0xff}, // orange
	{R: 0x6a, G: 0x99, B: 0x55, A: 0xff}, // green
}

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output string // output PNG path; derived from input when empty
	sheet  string // optional sprite sheet drawn under the wireframe
	scale  int    // integer upscale factor
	labels bool   // draw section indices
}

// newPreviewCmd creates the preview command for rendering section
// geometry as a wireframe PNG.
func newPreviewCmd() *cobra.Command {
	opts := previewOpts{scale: 1, labels: true}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a wireframe PNG of the section geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG (default: input name + _preview.png)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "sprite sheet PNG to draw under the wireframe")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "integer upscale factor")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw section indices")

	return cmd
}

func runPreview(cmd *cobra.Command, input string, opts *previewOpts) error {
	logger := loggerFromContext(cmd.Context())

	l, err := loadLayout(input)
	if err != nil {
		return err
	}
	if l.Size.X <= 0 || l.Size.Y <= 0 {
		return fmt.Errorf("layout surface %s has nothing to draw", formatPoint(l.Size))
	}
	scale := max(opts.scale, 1)

	img := image.NewNRGBA(image.Rect(0, 0, l.Size.X*scale, l.Size.Y*scale))
	drawCheckerboard(img, 8*scale)

	if opts.sheet != "" {
		sheet, err := loadPNG(opts.sheet)
		if err != nil {
			return err
		}
		b := sheet.Bounds()
		dst := image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale)
		// Nearest neighbor keeps texel edges crisp, which is the point
		// of looking at a pixel atlas up close.
		xdraw.NearestNeighbor.Scale(img, dst, sheet, b, xdraw.Over, nil)
	}

	for i, sec := range l.Sections {
		c := sectionPalette[i%len(sectionPalette)]
		r := image.Rect(sec.Min.X*scale, sec.Min.Y*scale, sec.Max.X*scale, sec.Max.Y*scale)
		drawRectOutline(img, r, c, scale)
		if opts.labels {
			drawLabel(img, strconv.Itoa(i), r.Min.Add(image.Pt(scale+2, scale+11)), c)
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "_preview.png"
	}
	if err := savePNG(output, img); err != nil {
		return err
	}
	logger.Infof("Wrote %s (%d sections at %dx scale)", output, l.Len(), scale)
	return nil
}

// drawCheckerboard fills the image with the alternating gray squares
// conventionally used behind transparent textures.
func drawCheckerboard(img *image.NRGBA, square int) {
	light := color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	dark := color.NRGBA{R: 0x2e, G: 0x2e, B: 0x2e, A: 0xff}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += square {
		for x := b.Min.X; x < b.Max.X; x += square {
			c := light
			if (x/square+y/square)%2 == 1 {
				c = dark
			}
			fillRect(img, image.Rect(x, y, x+square, y+square), c)
		}
	}
}

// drawRectOutline strokes the rectangle border with the given edge
// thickness. Drawing clips to the image bounds, so sections that poke
// outside the surface render partially rather than failing.
func drawRectOutline(img draw.Image, r image.Rectangle, c color.Color, thickness int) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawLabel renders text at the given baseline origin using the fixed
// 7x13 bitmap face.
func drawLabel(img draw.Image, text string, at image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// savePNG writes the image to a PNG file.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
