// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package manifest reads and writes atlas layout documents.
//
// # Overview
//
// A Document is the human-authored and tool-emitted description of an atlas
// layout. It comes in two interchangeable forms: a grid form that names the
// parameters of procedural construction, and an explicit form that lists
// section rectangles in index order, optionally naming them and recording
// which external texture produced which section.
//
// Documents serialize as JSON or TOML. Build compiles a validated document
// into an atlas.Layout; FromLayout goes the other way for tooling.
//
// # Validation
//
// The core atlas package is a trusting container with no fallible
// operations. This package is the validating layer in front of it: Build
// rejects incoherent documents (grid and sections together, malformed
// rectangles, duplicate names, handle entries pointing outside the section
// list) with typed errors before any layout is constructed.
//
// # Grid Form
//
//	{
//	  "grid": {
//	    "tile": {"x": 16, "y": 16},
//	    "columns": 4,
//	    "rows": 2,
//	    "padding": {"x": 2, "y": 2}
//	  }
//	}
//
// # Explicit Form
//
//	{
//	  "size": {"x": 64, "y": 32},
//	  "sections": [
//	    {"name": "idle", "min": {"x": 0, "y": 0}, "max": {"x": 32, "y": 32}},
//	    {"name": "run", "min": {"x": 32, "y": 0}, "max": {"x": 64, "y": 32}}
//	  ],
//	  "handles": [
//	    {"texture": "7v1", "section": 0}
//	  ]
//	}
package manifest
