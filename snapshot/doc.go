// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snapshot encodes atlas layouts in a deterministic binary form
// for caching and hot-reload.
//
// # Format
//
// A snapshot is a fixed header followed by a CBOR body:
//
//	offset  size  field
//	     0     4  magic "GGAT"
//	     4     1  format version
//	     5     1  compression tag (none, lz4, zstd)
//	     6    16  layout type UUID
//	    22    32  BLAKE3-256 keyed digest of the uncompressed body
//	    54     4  uncompressed body length, little-endian
//	    58     -  body, compressed per the tag
//
// The body uses CBOR Core Deterministic Encoding (RFC 8949 §4.2): the same
// layout always produces identical body bytes, so digests are stable and
// snapshots diff cleanly in content-addressed stores. The digest covers the
// uncompressed body, making it independent of the compression choice.
//
// Index order is load-bearing for atlas layouts, and the body preserves the
// section list exactly as ordered. The handle map's presence is preserved
// too: an absent map encodes as CBOR null, distinct from an empty map.
//
// # Verification
//
// Decode rejects snapshots with a wrong magic, an unsupported version, a
// foreign type UUID, an unknown compression tag, or a body whose digest
// does not match the header.
package snapshot
