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
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const romDir = "/home/pi/RetroPie/roms/scummvm"

func copyFixture(t *testing.T) (*Store, *Store) {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/configs/native.ini", `[scummvm]
gfx_mode=opengl

[tentacle]
path=tentacle
gameid=tentacle

[loom]
path=/games/loom
gameid=loom
`)
	writeINI(t, fs, "/bios/libretro.ini", `[loom]
path=/old/loom
gameid=loom
`)

	src, err := Load(fs, "/configs/native.ini")
	require.NoError(t, err)
	dst, err := Load(fs, "/bios/libretro.ini")
	require.NoError(t, err)
	return src, dst
}

func TestCopySection_UnknownSection(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)

	err := CopySection(zerolog.Nop(), src, dst, "monkey", false, true, romDir)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestCopySection_NonTargetSection(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)

	// [scummvm] exists but holds no path key, so it is not copyable.
	err := CopySection(zerolog.Nop(), src, dst, "scummvm", false, true, romDir)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestCopySection_ConflictWithoutForce(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)
	before, err := dst.Serialize()
	require.NoError(t, err)

	err = CopySection(zerolog.Nop(), src, dst, "loom", false, true, romDir)
	require.ErrorIs(t, err, ErrConflict)

	after, serErr := dst.Serialize()
	require.NoError(t, serErr)
	assert.Equal(t, string(before), string(after))
}

func TestCopySection_ForceReplaces(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)

	err := CopySection(zerolog.Nop(), src, dst, "loom", true, true, romDir)
	require.NoError(t, err)

	path, ok := dst.Value("loom", "path")
	require.True(t, ok)
	assert.Equal(t, "/games/loom", path)
}

func TestCopySection_RelativePathMadeAbsoluteForLibretro(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)

	err := CopySection(zerolog.Nop(), src, dst, "tentacle", false, true, romDir)
	require.NoError(t, err)

	path, ok := dst.Value("tentacle", "path")
	require.True(t, ok)
	assert.Equal(t, romDir+"/tentacle", path)
}

func TestCopySection_RelativePathKeptForNative(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/bios/libretro.ini", `[tentacle]
path=tentacle
gameid=tentacle
`)
	writeINI(t, fs, "/configs/native.ini", "[scummvm]\ngfx_mode=opengl\n")

	src, err := Load(fs, "/bios/libretro.ini")
	require.NoError(t, err)
	dst, err := Load(fs, "/configs/native.ini")
	require.NoError(t, err)

	err = CopySection(zerolog.Nop(), src, dst, "tentacle", false, false, romDir)
	require.NoError(t, err)

	path, ok := dst.Value("tentacle", "path")
	require.True(t, ok)
	assert.Equal(t, "tentacle", path)
}

func TestCopySection_AbsolutePathUnchangedForLibretro(t *testing.T) {
	t.Parallel()

	src, dst := copyFixture(t)

	err := CopySection(zerolog.Nop(), src, dst, "loom", true, true, romDir)
	require.NoError(t, err)

	path, ok := dst.Value("loom", "path")
	require.True(t, ok)
	assert.Equal(t, "/games/loom", path)
}
