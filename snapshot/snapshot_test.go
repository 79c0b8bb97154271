// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"bytes"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/gogpu/atlas"
)

func builderLayout() *atlas.Layout {
	l := atlas.New(image.Pt(128, 64))
	l.AddTexture(image.Rect(0, 0, 64, 64))
	l.AddTexture(image.Rect(64, 0, 96, 32))
	l.AddTexture(image.Rect(64, 32, 128, 64))
	l.Handles = map[atlas.TextureID]int{
		{Index: 2, Generation: 1}: 0,
		{Index: 9, Generation: 4}: 2,
	}
	return l
}

func layoutsEqual(t *testing.T, got, want *atlas.Layout) {
	t.Helper()
	if got.Size != want.Size {
		t.Errorf("Size = %v, want %v", got.Size, want.Size)
	}
	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}
	for i := range want.Sections {
		if got.Sections[i] != want.Sections[i] {
			t.Errorf("Sections[%d] = %v, want %v", i, got.Sections[i], want.Sections[i])
		}
	}
	if (got.Handles == nil) != (want.Handles == nil) {
		t.Fatalf("handle presence = %v, want %v", got.Handles != nil, want.Handles != nil)
	}
	if len(got.Handles) != len(want.Handles) {
		t.Fatalf("handle count = %d, want %d", len(got.Handles), len(want.Handles))
	}
	for id, idx := range want.Handles {
		if got.Handles[id] != idx {
			t.Errorf("Handles[%v] = %d, want %d", id, got.Handles[id], idx)
		}
	}
}

// --- Round Trip Tests ---

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		layout *atlas.Layout
	}{
		{"grid", atlas.FromGrid(image.Pt(16, 16), 4, 2, atlas.WithPadding(2, 2))},
		{"builder with handles", builderLayout()},
		{"empty", atlas.New(image.Pt(256, 256))},
		{"negative size quirk", atlas.New(image.Pt(-4, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.layout, EncodeOptions{})
			if err != nil {
				t.Fatalf("Marshal() = %v", err)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal() = %v", err)
			}
			layoutsEqual(t, got, tt.layout)
		})
	}
}

func TestRoundTrip_HandlePresence(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		data, err := Marshal(atlas.FromGrid(image.Pt(16, 16), 2, 2), EncodeOptions{})
		if err != nil {
			t.Fatal(err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}
		if got.Handles != nil {
			t.Error("absent handle map should decode as absent")
		}
	})

	t.Run("present empty", func(t *testing.T) {
		l := atlas.New(image.Pt(8, 8))
		l.Handles = map[atlas.TextureID]int{}
		data, err := Marshal(l, EncodeOptions{})
		if err != nil {
			t.Fatal(err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}
		if got.Handles == nil {
			t.Error("attached empty handle map should decode as present")
		}
		if len(got.Handles) != 0 {
			t.Errorf("handle count = %d, want 0", len(got.Handles))
		}
	})
}

func TestRoundTrip_Compressed(t *testing.T) {
	// A large grid gives the codec something compressible.
	l := atlas.FromGrid(image.Pt(32, 32), 16, 16)

	for _, tag := range []CompressionTag{CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			data, err := Marshal(l, EncodeOptions{Compression: tag})
			if err != nil {
				t.Fatalf("Marshal() = %v", err)
			}
			if got := CompressionTag(data[5]); got != tag {
				t.Errorf("header compression = %v, want %v", got, tag)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal() = %v", err)
			}
			layoutsEqual(t, got, l)
		})
	}
}

func TestEncode_IncompressibleFallsBack(t *testing.T) {
	// A one-section layout with all-distinct coordinates gives the block
	// codecs nothing to match; the header must record what was actually
	// stored.
	l := atlas.New(image.Pt(3, 7))
	l.AddTexture(image.Rect(11, 23, 101, 997))

	data, err := Marshal(l, EncodeOptions{Compression: CompressionLZ4})
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	if got := CompressionTag(data[5]); got != CompressionNone {
		t.Errorf("header compression = %v, want none fallback", got)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	layoutsEqual(t, got, l)
}

// --- Determinism Tests ---

func TestMarshal_Deterministic(t *testing.T) {
	l := builderLayout()

	first, err := Marshal(l, EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(l, EncodeOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d: snapshot bytes differ", i)
		}
	}
}

func TestDigest_Stable(t *testing.T) {
	l := builderLayout()

	d1, err := Digest(l)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Digest(l.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Error("equal layouts should digest equal")
	}

	changed := l.Clone()
	changed.AddTexture(image.Rect(0, 0, 1, 1))
	d3, err := Digest(changed)
	if err != nil {
		t.Fatal(err)
	}
	if d3 == d1 {
		t.Error("different layouts should digest differently")
	}
}

func TestDigest_IndependentOfCompression(t *testing.T) {
	l := atlas.FromGrid(image.Pt(32, 32), 16, 16)
	want, err := Digest(l)
	if err != nil {
		t.Fatal(err)
	}

	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		data, err := Marshal(l, EncodeOptions{Compression: tag})
		if err != nil {
			t.Fatal(err)
		}
		var got Hash
		copy(got[:], data[22:54])
		if got != want {
			t.Errorf("%v: header digest %v, want %v", tag, got, want)
		}
	}
}

func TestDigest_HandlePresenceDistinct(t *testing.T) {
	bare := atlas.New(image.Pt(8, 8))
	attached := atlas.New(image.Pt(8, 8))
	attached.Handles = map[atlas.TextureID]int{}

	d1, err := Digest(bare)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Digest(attached)
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Error("absent and empty handle maps should digest differently")
	}
}

func TestHash_String(t *testing.T) {
	h, err := Digest(atlas.New(image.Pt(1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(h.String()) != 64 {
		t.Errorf("hex digest length = %d, want 64", len(h.String()))
	}
}

// --- Verification Tests ---

func TestDecode_BadMagic(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 'X'
	if _, err := Unmarshal(data); !errors.Is(err, ErrBadMagic) {
		t.Errorf("error = %v, want ErrBadMagic", err)
	}
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data[4] = 99
	_, err = Unmarshal(data)
	var ve *UnsupportedVersionError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *UnsupportedVersionError", err)
	}
	if ve.Version != 99 {
		t.Errorf("Version = %d, want 99", ve.Version)
	}
}

func TestDecode_WrongType(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data[6] ^= 0xFF
	if _, err := Unmarshal(data); !errors.Is(err, ErrWrongType) {
		t.Errorf("error = %v, want ErrWrongType", err)
	}
}

func TestDecode_UnknownCompression(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data[5] = 7
	if _, err := Unmarshal(data); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("error = %v, want ErrUnknownCompression", err)
	}
}

func TestDecode_CorruptBody(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-1] ^= 0xFF
	if _, err := Unmarshal(data); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("error = %v, want ErrDigestMismatch", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	data, err := Marshal(builderLayout(), EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(data[:20]); err == nil {
		t.Error("truncated header should fail")
	}
	if _, err := Unmarshal(data[:headerSize+2]); err == nil {
		t.Error("truncated body should fail")
	}
}

func TestLayoutTypeID(t *testing.T) {
	if got := LayoutTypeID.String(); got != "7233c597-ccfa-411f-bd59-9af349432ada" {
		t.Errorf("LayoutTypeID = %s", got)
	}
}

// --- File Tests ---

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.ggat")
	want := builderLayout()

	if err := Save(path, want, EncodeOptions{Compression: CompressionZstd}); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	layoutsEqual(t, got, want)
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.ggat")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

// --- Benchmarks ---

func BenchmarkMarshal(b *testing.B) {
	l := atlas.FromGrid(image.Pt(16, 16), 16, 16)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Marshal(l, EncodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := Marshal(atlas.FromGrid(image.Pt(16, 16), 16, 16), EncodeOptions{})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Unmarshal(data); err != nil {
			b.Fatal(err)
		}
	}
}
