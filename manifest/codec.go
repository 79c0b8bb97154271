// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/atlas"
)

// ErrUnknownFormat reports a file extension or format value this package
// does not handle.
var ErrUnknownFormat = errors.New("manifest: unknown format")

// Format selects a document serialization.
type Format uint8

const (
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = iota

	// FormatTOML is TOML.
	FormatTOML
)

// String returns the canonical lowercase name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// FormatForPath picks the format implied by a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a document from r in the given format. The document is not
// validated; call [Document.Validate] or [Document.Build].
func Decode(r io.Reader, f Format) (*Document, error) {
	var d Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return &d, nil
}

// Encode writes a document to w in the given format.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return nil
}

// Load reads the document at path, picking the format from the extension.
func Load(path string) (*Document, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	d, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	atlas.Logger().Debug("manifest: loaded document",
		"path", path, "format", f.String(), "sections", d.sectionCount())
	return d, nil
}

// Save writes the document to path, picking the format from the extension.
func Save(path string, d *Document) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, d, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	atlas.Logger().Debug("manifest: saved document",
		"path", path, "format", f.String(), "sections", d.sectionCount())
	return nil
}
