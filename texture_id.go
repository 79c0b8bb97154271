package atlas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTextureID reports a texture identity that failed to parse.
var ErrInvalidTextureID = errors.New("atlas: invalid texture id")

// TextureID is an opaque identity token for an externally owned texture
// resource. The asset system that owns the resource hands these out; this
// package uses them only as comparable lookup keys and assumes nothing
// about their meaning.
//
// The token pairs a resource-table slot with a generation counter so a
// recycled slot never aliases a stale reference.
type TextureID struct {
	Index      uint32
	Generation uint32
}

// String returns the canonical text form, "<index>v<generation>".
func (id TextureID) String() string {
	return strconv.FormatUint(uint64(id.Index), 10) + "v" + strconv.FormatUint(uint64(id.Generation), 10)
}

// MarshalText implements encoding.TextMarshaler. The text form lets maps
// keyed by TextureID serialize as string-keyed objects in JSON, TOML,
// and CBOR.
func (id TextureID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the form
// produced by MarshalText.
func (id *TextureID) UnmarshalText(text []byte) error {
	s := string(text)
	idx, gen, ok := strings.Cut(s, "v")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTextureID, s)
	}
	i, err := strconv.ParseUint(idx, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTextureID, s)
	}
	g, err := strconv.ParseUint(gen, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTextureID, s)
	}
	id.Index = uint32(i)
	id.Generation = uint32(g)
	return nil
}
