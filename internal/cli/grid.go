// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/atlas/manifest"
	"github.com/gogpu/atlas/snapshot"
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	tile        string // tile size as WIDTHxHEIGHT
	columns     int    // cells per row
	rows        int    // number of rows
	padding     string // gap between cells as XxY
	offset      string // position of the first cell as XxY
	output      string // output file path; stdout when empty
	bake        bool   // expand the grid into explicit sections
	compression string // snapshot compression: none, lz4, zstd
}

// newGridCmd creates the grid command for generating uniform layouts.
func newGridCmd() *cobra.Command {
	opts := gridOpts{
		tile:        "16x16",
		padding:     "0x0",
		offset:      "0x0",
		compression: "zstd",
	}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Generate a uniform grid layout",
		Long: `Generate a texture atlas layout from uniform grid parameters.

The result is written as a grid-form manifest by default, preserving
the generation parameters. Use --bake to expand it into explicit
sections, or a .ggat output path for a binary snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tile, "tile", "t", opts.tile, "tile size as WIDTHxHEIGHT")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", 0, "number of columns")
	cmd.Flags().IntVarP(&opts.rows, "rows", "r", 0, "number of rows")
	cmd.Flags().StringVar(&opts.padding, "padding", opts.padding, "gap between cells as XxY")
	cmd.Flags().StringVar(&opts.offset, "offset", opts.offset, "position of the first cell as XxY")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.json, .toml, or .ggat); stdout when empty")
	cmd.Flags().BoolVar(&opts.bake, "bake", false, "expand the grid into explicit sections")
	cmd.Flags().StringVar(&opts.compression, "compression", opts.compression, "snapshot compression: none, lz4, zstd")

	_ = cmd.MarkFlagRequired("columns")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func runGrid(cmd *cobra.Command, opts *gridOpts) error {
	logger := loggerFromContext(cmd.Context())

	tile, err := parsePoint(opts.tile)
	if err != nil {
		return fmt.Errorf("--tile: %w", err)
	}
	padding, err := parsePoint(opts.padding)
	if err != nil {
		return fmt.Errorf("--padding: %w", err)
	}
	offset, err := parsePoint(opts.offset)
	if err != nil {
		return fmt.Errorf("--offset: %w", err)
	}
	compression, err := snapshot.ParseCompressionTag(opts.compression)
	if err != nil {
		return err
	}

	doc := &manifest.Document{
		Grid: &manifest.Grid{
			Tile:    manifest.Point{X: tile.X, Y: tile.Y},
			Columns: opts.columns,
			Rows:    opts.rows,
			Padding: manifest.Point{X: padding.X, Y: padding.Y},
			Offset:  manifest.Point{X: offset.X, Y: offset.Y},
		},
	}

	l, err := doc.Build()
	if err != nil {
		return err
	}
	logger.Debugf("Grid %dx%d of %s tiles: %d sections, surface %s",
		opts.columns, opts.rows, formatPoint(tile), l.Len(), formatPoint(l.Size))

	if opts.bake {
		doc = manifest.FromLayout(l)
	}

	if opts.output == "" {
		return manifest.Encode(cmd.OutOrStdout(), doc, manifest.FormatJSON)
	}
	if err := saveDocument(opts.output, doc, compression); err != nil {
		return err
	}
	info, err := os.Stat(opts.output)
	if err == nil {
		logger.Infof("Wrote %s (%d sections, %d bytes)", opts.output, l.Len(), info.Size())
	} else {
		logger.Infof("Wrote %s (%d sections)", opts.output, l.Len())
	}
	return nil
}
