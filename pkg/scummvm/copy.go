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
	"fmt"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
)

// CopySection transplants one target section from src into dst, for moving
// a game configuration between the native and libretro scummvm.ini files.
// The section must be a target in src (ErrNotFound otherwise) and must not
// already exist in dst unless force is set (ErrConflict). When the
// destination belongs to the libretro core a relative path value is
// rewritten to an absolute one under romDir; lr-scummvm cannot resolve
// relative game paths. The caller owns saving dst.
func CopySection(logger zerolog.Logger, src, dst *Store, name string, force, toLibretro bool, romDir string) error {
	if !slices.Contains(src.Targets(), name) {
		return fmt.Errorf("%w: source [%s] in %s", ErrNotFound, name, src.Path())
	}

	if dst.HasSection(name) && !force {
		return fmt.Errorf("%w: [%s] in %s, use force to update", ErrConflict, name, dst.Path())
	}

	if err := dst.ReplaceSectionFrom(src, name); err != nil {
		return err
	}

	if path, ok := dst.Value(name, PathKey); ok && toLibretro && !filepath.IsAbs(path) {
		if err := dst.SetValue(name, PathKey, filepath.Join(romDir, path)); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("section", name).
		Str("file", dst.Path()).
		Msg("section copied")
	return nil
}
