// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package upload translates atlas layouts into GPU upload geometry.
//
// The package computes the texture descriptor for an atlas page and a
// copy plan for filling its sections from a staging buffer. All values
// follow WebGPU conventions: copy rows are padded to the 256 byte
// alignment required for buffer-to-texture transfers, and extents carry
// an explicit depth of 1.
//
// Nothing here touches a device. The caller hands the returned
// descriptor and copies to whatever queue implementation it uses.
package upload
