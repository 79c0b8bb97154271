// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/atlas"
	"github.com/gogpu/atlas/manifest"
	"github.com/gogpu/atlas/snapshot"
)

// snapshotExt is the extension that selects the binary snapshot codec.
// Everything else goes through the manifest codec, which sniffs JSON
// and TOML by extension itself.
const snapshotExt = ".ggat"

// isSnapshotPath reports whether path names a snapshot file.
func isSnapshotPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), snapshotExt)
}

// loadLayout reads a layout from a manifest or snapshot file, selected
// by extension. Manifest documents are validated and built.
func loadLayout(path string) (*atlas.Layout, error) {
	if isSnapshotPath(path) {
		return snapshot.Load(path)
	}
	doc, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// loadDocument reads a manifest document from path, synthesizing one
// for snapshot inputs. Snapshot layouts come back in explicit form with
// no section names.
func loadDocument(path string) (*manifest.Document, error) {
	if isSnapshotPath(path) {
		l, err := snapshot.Load(path)
		if err != nil {
			return nil, err
		}
		return manifest.FromLayout(l), nil
	}
	doc, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// saveDocument writes a document to path, selecting the codec by
// extension. Snapshot outputs are built first and encoded with the
// given compression.
func saveDocument(path string, doc *manifest.Document, compression snapshot.CompressionTag) error {
	if isSnapshotPath(path) {
		l, err := doc.Build()
		if err != nil {
			return err
		}
		return snapshot.Save(path, l, snapshot.EncodeOptions{Compression: compression})
	}
	return manifest.Save(path, doc)
}
