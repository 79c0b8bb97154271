// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// sliceOpts holds the command-line flags for the slice command.
type sliceOpts struct {
	sheet  string // sprite sheet image path
	outDir string // directory for the per-section images
}

// newSliceCmd creates the slice command for cutting a sprite sheet into
// per-section images.
func newSliceCmd() *cobra.Command {
	var opts sliceOpts

	cmd := &cobra.Command{
		Use:   "slice [file]",
		Short: "Cut a sprite sheet into per-section PNGs",
		Long: `Cut a sprite sheet into one PNG per layout section.

Files are named after the section names in the manifest when present,
falling back to the section index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "sprite sheet PNG to cut")
	cmd.Flags().StringVarP(&opts.outDir, "output", "o", "", "output directory")

	_ = cmd.MarkFlagRequired("sheet")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSlice(cmd *cobra.Command, input string, opts *sliceOpts) error {
	logger := loggerFromContext(cmd.Context())

	doc, err := loadDocument(input)
	if err != nil {
		return err
	}
	l, err := doc.Build()
	if err != nil {
		return err
	}

	sheet, err := loadPNG(opts.sheet)
	if err != nil {
		return err
	}
	if b := sheet.Bounds(); b.Dx() < l.Size.X || b.Dy() < l.Size.Y {
		logger.Warnf("Sheet %dx%d is smaller than the layout surface %s",
			b.Dx(), b.Dy(), formatPoint(l.Size))
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	written := 0
	for i, sec := range l.Sections {
		if sec.Dx() <= 0 || sec.Dy() <= 0 {
			logger.Warnf("Skipping section %d: degenerate bounds %s", i, formatRect(sec))
			continue
		}

		cut := image.NewNRGBA(image.Rect(0, 0, sec.Dx(), sec.Dy()))
		draw.Draw(cut, cut.Bounds(), sheet, sec.Min, draw.Src)

		name := ""
		if doc.Grid == nil && i < len(doc.Sections) {
			name = doc.Sections[i].Name
		}
		if name == "" {
			name = fmt.Sprintf("section_%03d", i)
		}

		path := filepath.Join(opts.outDir, name+".png")
		if err := savePNG(path, cut); err != nil {
			return err
		}
		logger.Debugf("Wrote %s (%dx%d)", path, sec.Dx(), sec.Dy())
		written++
	}

	logger.Infof("Sliced %d of %d sections into %s", written, l.Len(), opts.outDir)
	return nil
}

// loadPNG reads a PNG image from a file.
func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
