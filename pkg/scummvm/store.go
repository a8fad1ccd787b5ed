// scummvm-helper
// Copyright (C) 2022 Gemba @ github
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of scummvm-helper.
//
// scummvm-helper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// scummvm-helper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with scummvm-helper.  If not, see <http://www.gnu.org/licenses/>.

package scummvm

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

func init() {
	// The native ScummVM parser rejects padded delimiters, so sections are
	// always written as key=value.
	ini.PrettyFormat = false
}

// PathKey marks a section as a game target. Sections without it are engine
// or launcher configuration and are passed through untouched.
const PathKey = "path"

// GameIDKey holds the internal ScummVM identifier of a target, which may
// differ from the section name (e.g. gameid=bladerunner-final).
const GameIDKey = "gameid"

// Store is an ordered view of one scummvm.ini file. Section order and key
// order within a section survive a load/save round trip.
type Store struct {
	fs   afero.Fs
	file *ini.File
	path string
}

// Load reads the scummvm.ini at path into a Store. A missing file is
// reported as ErrMissingFile; it is never created implicitly.
func Load(fs afero.Fs, path string) (*Store, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Store{fs: fs, file: file, path: path}, nil
}

// NewStore returns an empty Store that will serialize to path on Save.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, file: ini.Empty(), path: path}
}

// Path returns the file the store was loaded from or will be saved to.
func (s *Store) Path() string {
	return s.path
}

// SectionsInOrder returns all section names in file order, excluding the
// parser's implicit default section.
func (s *Store) SectionsInOrder() []string {
	var names []string
	for _, name := range s.file.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// HasSection reports whether a section with the given name exists.
func (s *Store) HasSection(name string) bool {
	if name == ini.DefaultSection {
		return false
	}
	_, err := s.file.GetSection(name)
	return err == nil
}

// Targets returns the names of all sections holding a path key, in file
// order. These are the playable titles; everything else is configuration.
func (s *Store) Targets() []string {
	var targets []string
	for _, name := range s.SectionsInOrder() {
		sec, err := s.file.GetSection(name)
		if err != nil {
			continue
		}
		if sec.HasKey(PathKey) {
			targets = append(targets, name)
		}
	}
	return targets
}

// Value returns the raw value of key in section, and whether it is set.
func (s *Store) Value(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).Value(), true
}

// SetValue sets key in section to value, creating the section on demand.
func (s *Store) SetValue(section, key, value string) error {
	sec, err := s.file.GetSection(section)
	if err != nil {
		sec, err = s.file.NewSection(section)
		if err != nil {
			return fmt.Errorf("failed to create section [%s]: %w", section, err)
		}
	}
	if _, err := sec.NewKey(key, value); err != nil {
		return fmt.Errorf("failed to set %s in [%s]: %w", key, section, err)
	}
	return nil
}

// CopySectionFrom copies sourceName of src into this store under name,
// preserving key order. The first writer wins: if name already exists the
// call is a no-op. An empty sourceName defaults to name (plain
// pass-through). The gameid key, when present, is rewritten to name so the
// internal identifier matches the merged section.
func (s *Store) CopySectionFrom(src *Store, name, sourceName string) error {
	if s.HasSection(name) {
		return nil
	}
	if sourceName == "" {
		sourceName = name
	}

	srcSec, err := src.file.GetSection(sourceName)
	if err != nil {
		return fmt.Errorf("%w: [%s] in %s", ErrNotFound, sourceName, src.path)
	}

	dstSec, err := s.file.NewSection(name)
	if err != nil {
		return fmt.Errorf("failed to create section [%s]: %w", name, err)
	}

	for _, key := range srcSec.Keys() {
		value := key.Value()
		if key.Name() == GameIDKey {
			value = name
		}
		if _, err := dstSec.NewKey(key.Name(), value); err != nil {
			return fmt.Errorf("failed to copy key %s to [%s]: %w", key.Name(), name, err)
		}
	}
	return nil
}

// ReplaceSectionFrom overwrites name in this store with a verbatim copy of
// the same section in src, dropping any previous content. Unlike
// CopySectionFrom no key is rewritten.
func (s *Store) ReplaceSectionFrom(src *Store, name string) error {
	srcSec, err := src.file.GetSection(name)
	if err != nil {
		return fmt.Errorf("%w: [%s] in %s", ErrNotFound, name, src.path)
	}

	s.file.DeleteSection(name)
	dstSec, err := s.file.NewSection(name)
	if err != nil {
		return fmt.Errorf("failed to create section [%s]: %w", name, err)
	}

	for _, key := range srcSec.Keys() {
		if _, err := dstSec.NewKey(key.Name(), key.Value()); err != nil {
			return fmt.Errorf("failed to copy key %s to [%s]: %w", key.Name(), name, err)
		}
	}
	return nil
}

// Serialize renders the store to its on-disk form.
func (s *Store) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", s.path, err)
	}
	return buf.Bytes(), nil
}

// Save writes the store back to its path. The content goes to a temporary
// sibling first and is moved into place with a rename, so a crash mid-write
// cannot leave a truncated scummvm.ini behind.
func (s *Store) Save() error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
