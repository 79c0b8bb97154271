// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"encoding/hex"
	"image"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/gogpu/atlas"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding,
// no indefinite-length items. Same logical data always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// TextureID implements encoding.TextMarshaler; handle-map keys
	// serialize as CBOR text strings via MarshalText. Without this the
	// struct would serialize field-wise and map-key sorting would depend
	// on field layout instead of the canonical text form.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Mirrors the TextMarshaler setting above for round-trip
		// correctness of handle-map keys.
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

// point is the canonical body form of a 2D coordinate.
type point struct {
	X int `cbor:"x"`
	Y int `cbor:"y"`
}

// rect is the canonical body form of a section rectangle.
type rect struct {
	Min point `cbor:"min"`
	Max point `cbor:"max"`
}

// body is the canonical CBOR form of a layout. A nil Handles encodes as
// CBOR null; an attached-but-empty map encodes as an empty CBOR map. The
// distinction survives the round trip.
type body struct {
	Size     point                   `cbor:"size"`
	Sections []rect                  `cbor:"sections"`
	Handles  map[atlas.TextureID]int `cbor:"handles"`
}

// marshalBody produces the canonical body bytes for a layout.
func marshalBody(l *atlas.Layout) ([]byte, error) {
	b := body{
		Size:     point{X: l.Size.X, Y: l.Size.Y},
		Sections: make([]rect, len(l.Sections)),
		Handles:  l.Handles,
	}
	for i, r := range l.Sections {
		b.Sections[i] = rect{
			Min: point{X: r.Min.X, Y: r.Min.Y},
			Max: point{X: r.Max.X, Y: r.Max.Y},
		}
	}
	return encMode.Marshal(b)
}

// unmarshalBody rebuilds a layout from canonical body bytes.
func unmarshalBody(data []byte) (*atlas.Layout, error) {
	var b body
	if err := decMode.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	l := &atlas.Layout{
		Size:    image.Pt(b.Size.X, b.Size.Y),
		Handles: b.Handles,
	}
	if len(b.Sections) > 0 {
		l.Sections = make([]image.Rectangle, len(b.Sections))
		for i, r := range b.Sections {
			l.Sections[i] = image.Rectangle{
				Min: image.Pt(r.Min.X, r.Min.Y),
				Max: image.Pt(r.Max.X, r.Max.Y),
			}
		}
	}
	return l, nil
}

// Hash is a 32-byte BLAKE3 digest of a canonical snapshot body.
type Hash [32]byte

// String returns the lowercase hex form.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// digestDomainKey is the BLAKE3 key for snapshot digests. Domain
// separation keeps these digests from colliding with hashes of the same
// bytes computed elsewhere. The value is the ASCII domain name,
// zero-padded to 32 bytes; changing it invalidates existing snapshots.
var digestDomainKey = [32]byte{
	'g', 'o', 'g', 'p', 'u', '.', 'a', 't', 'l', 'a', 's', '.',
	's', 'n', 'a', 'p', 's', 'h', 'o', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// digestBytes computes the keyed digest of canonical body bytes.
func digestBytes(data []byte) Hash {
	hasher, err := blake3.NewKeyed(digestDomainKey[:])
	if err != nil {
		panic("snapshot: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h
}

// Digest returns the content digest of a layout: the keyed BLAKE3 hash of
// its canonical body. Equal layouts (same size, same ordered sections,
// same handle map and presence) digest equal, independent of any
// compression applied when the snapshot is written.
func Digest(l *atlas.Layout) (Hash, error) {
	data, err := marshalBody(l)
	if err != nil {
		return Hash{}, err
	}
	return digestBytes(data), nil
}
