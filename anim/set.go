// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package anim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/atlas"
)

// ErrClipExists reports a Register call with an already-registered name.
var ErrClipExists = errors.New("anim: clip already registered")

// ErrUnnamedClip reports a Register call with an empty clip name.
var ErrUnnamedClip = errors.New("anim: clip must have a name")

// FrameError reports a clip frame that points outside a layout's section
// list.
type FrameError struct {
	Clip     string
	Frame    int
	Index    int
	Sections int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("anim: clip %q frame %d: index %d out of range [0, %d)",
		e.Clip, e.Frame, e.Index, e.Sections)
}

// Set is a named collection of clips for one atlas. Clips keep their
// registration order, which is also the file order after a load.
type Set struct {
	clips  []Clip
	byName map[string]int
}

// NewSet returns an empty clip collection.
func NewSet() *Set {
	return &Set{byName: make(map[string]int)}
}

// Register adds a clip. The name must be non-empty and unused.
func (s *Set) Register(c Clip) error {
	if c.Name == "" {
		return ErrUnnamedClip
	}
	if _, ok := s.byName[c.Name]; ok {
		return fmt.Errorf("%w: %q", ErrClipExists, c.Name)
	}
	s.byName[c.Name] = len(s.clips)
	s.clips = append(s.clips, c)
	return nil
}

// Get returns the named clip, if registered.
func (s *Set) Get(name string) (Clip, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Clip{}, false
	}
	return s.clips[i], true
}

// Len returns the number of registered clips.
func (s *Set) Len() int { return len(s.clips) }

// Names returns clip names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.clips))
	for i, c := range s.clips {
		names[i] = c.Name
	}
	return names
}

// Clips returns the clips in registration order. The slice is shared;
// callers must not modify it.
func (s *Set) Clips() []Clip { return s.clips }

// Validate checks every frame of every clip against a layout's section
// count. The first violation is returned as a *FrameError.
func (s *Set) Validate(sections int) error {
	for _, c := range s.clips {
		for f, idx := range c.Frames {
			if idx < 0 || idx >= sections {
				return &FrameError{Clip: c.Name, Frame: f, Index: idx, Sections: sections}
			}
		}
	}
	return nil
}

// setFile is the YAML document shape.
type setFile struct {
	Clips []Clip `yaml:"clips"`
}

// Decode reads a clip set from YAML.
func Decode(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var file setFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	s := NewSet()
	for _, c := range file.Clips {
		if err := s.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Encode writes the clip set as YAML in registration order.
func Encode(w io.Writer, s *Set) error {
	data, err := yaml.Marshal(setFile{Clips: s.clips})
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Load reads the clip set at path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	atlas.Logger().Debug("anim: loaded clip set", "path", path, "clips", s.Len())
	return s, nil
}

// Save writes the clip set to path.
func Save(path string, s *Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := Encode(f, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
