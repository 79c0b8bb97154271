// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/atlas/manifest"
	"github.com/gogpu/atlas/snapshot"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output      string // output file path
	bake        bool   // expand grid-form manifests into explicit sections
	compression string // snapshot compression: none, lz4, zstd
}

// newConvertCmd creates the convert command for translating between the
// manifest and snapshot encodings.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{compression: "zstd"}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert between manifest and snapshot encodings",
		Long: `Convert a layout file between encodings selected by extension:
.json and .toml are manifest documents, .ggat is a binary snapshot.

Manifest-to-manifest conversion keeps the document as written (grid
form and section names survive). Converting through a snapshot bakes
the layout: snapshots store only the built sections.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.json, .toml, or .ggat)")
	cmd.Flags().BoolVar(&opts.bake, "bake", false, "expand a grid-form manifest into explicit sections")
	cmd.Flags().StringVar(&opts.compression, "compression", opts.compression, "snapshot compression: none, lz4, zstd")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOpts) error {
	logger := loggerFromContext(cmd.Context())

	if input == opts.output {
		return fmt.Errorf("input and output are the same file: %s", input)
	}
	compression, err := snapshot.ParseCompressionTag(opts.compression)
	if err != nil {
		return err
	}

	doc, err := loadDocument(input)
	if err != nil {
		return err
	}

	if opts.bake && doc.Grid != nil {
		l, err := doc.Build()
		if err != nil {
			return err
		}
		doc = manifest.FromLayout(l)
		logger.Debugf("Baked grid into %d explicit sections", len(doc.Sections))
	}

	if err := saveDocument(opts.output, doc, compression); err != nil {
		return err
	}
	logger.Infof("Converted %s to %s", input, opts.output)
	return nil
}
