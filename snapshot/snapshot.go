// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/gogpu/atlas"
)

// Format constants. The magic and version are the first bytes of every
// snapshot; bumping the version invalidates older readers.
const (
	formatVersion = 1
	headerSize    = 58
)

var magic = [4]byte{'G', 'G', 'A', 'T'}

// LayoutTypeID is the stable type identity of atlas layout snapshots,
// stored in every header. Readers reject snapshots carrying any other
// UUID, so unrelated GGAT-framed assets cannot be misread as layouts.
var LayoutTypeID = uuid.MustParse("7233c597-ccfa-411f-bd59-9af349432ada")

var (
	// ErrBadMagic reports a stream that is not a snapshot at all.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrWrongType reports a snapshot of some other asset type.
	ErrWrongType = errors.New("snapshot: not an atlas layout snapshot")

	// ErrDigestMismatch reports a body that does not hash to the digest
	// recorded in the header.
	ErrDigestMismatch = errors.New("snapshot: digest mismatch")

	// ErrUnknownCompression reports a compression tag this version does
	// not implement.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

// UnsupportedVersionError reports a snapshot written by an incompatible
// format version.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("snapshot: unsupported format version %d (reader supports %d)",
		e.Version, formatVersion)
}

// EncodeOptions configures snapshot writing. The zero value stores the
// body uncompressed.
type EncodeOptions struct {
	// Compression selects the body compression. When the body does not
	// shrink under the chosen algorithm, Encode silently falls back to
	// CompressionNone; the header records what was actually used.
	Compression CompressionTag
}

// Encode writes a snapshot of the layout to w.
func Encode(w io.Writer, l *atlas.Layout, opts EncodeOptions) error {
	raw, err := marshalBody(l)
	if err != nil {
		return fmt.Errorf("snapshot: encode body: %w", err)
	}
	if len(raw) > math.MaxUint32 {
		return fmt.Errorf("snapshot: body too large: %d bytes", len(raw))
	}
	digest := digestBytes(raw)

	tag := opts.Compression
	payload, err := compress(raw, tag)
	if errors.Is(err, errIncompressible) {
		tag = CompressionNone
		payload = raw
	} else if err != nil {
		return err
	}

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	header[4] = formatVersion
	header[5] = byte(tag)
	copy(header[6:22], LayoutTypeID[:])
	copy(header[22:54], digest[:])
	binary.LittleEndian.PutUint32(header[54:58], uint32(len(raw)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("snapshot: write body: %w", err)
	}

	atlas.Logger().Debug("snapshot: encoded layout",
		"sections", l.Len(), "body", len(raw), "payload", len(payload), "compression", tag.String())
	return nil
}

// Decode reads a snapshot from r and rebuilds the layout. The header is
// fully verified: magic, version, type UUID, compression tag, and the
// body digest.
func Decode(r io.Reader) (*atlas.Layout, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if !bytes.Equal(header[0:4], magic[:]) {
		return nil, ErrBadMagic
	}
	if header[4] != formatVersion {
		return nil, &UnsupportedVersionError{Version: header[4]}
	}
	tag := CompressionTag(header[5])
	if !bytes.Equal(header[6:22], LayoutTypeID[:]) {
		return nil, fmt.Errorf("%w: type %s", ErrWrongType, uuid.UUID(header[6:22]))
	}
	var want Hash
	copy(want[:], header[22:54])
	bodyLen := binary.LittleEndian.Uint32(header[54:58])

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read body: %w", err)
	}
	raw, err := decompress(payload, tag, int(bodyLen))
	if err != nil {
		return nil, err
	}
	if digestBytes(raw) != want {
		return nil, ErrDigestMismatch
	}

	l, err := unmarshalBody(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode body: %w", err)
	}
	return l, nil
}

// Marshal returns the snapshot bytes for a layout.
func Marshal(l *atlas.Layout, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, l, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal rebuilds a layout from snapshot bytes.
func Unmarshal(data []byte) (*atlas.Layout, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads the snapshot file at path.
func Load(path string) (*atlas.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Save writes a snapshot of the layout to path.
func Save(path string, l *atlas.Layout, opts EncodeOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := Encode(f, l, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
