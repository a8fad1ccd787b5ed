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

func TestGenerateMarkers_OnePerGame(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/configs/scummvm.ini", `[scummvm]
gfx_mode=opengl

[tentacle]
path=/games/tentacle

[loom]
path=/games/loom
`)
	store, err := Load(fs, "/configs/scummvm.ini")
	require.NoError(t, err)

	count, err := GenerateMarkers(zerolog.Nop(), fs, store, "/roms", false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := afero.ReadFile(fs, "/roms/tentacle.svm")
	require.NoError(t, err)
	assert.Equal(t, "tentacle\n", string(data))

	data, err = afero.ReadFile(fs, "/roms/loom.svm")
	require.NoError(t, err)
	assert.Equal(t, "loom\n", string(data))
}

func TestGenerateMarkers_VariantsShareOneMarker(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/configs/scummvm.ini", `[lba-gb]
path=/games/lba

[lba-fr]
path=/games/lba
`)
	store, err := Load(fs, "/configs/scummvm.ini")
	require.NoError(t, err)

	count, err := GenerateMarkers(zerolog.Nop(), fs, store, "/roms", false)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The first section associated with the path wins.
	data, err := afero.ReadFile(fs, "/roms/lba.svm")
	require.NoError(t, err)
	assert.Equal(t, "lba-gb\n", string(data))
}

func TestGenerateMarkers_ExistingMarkerKept(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/configs/scummvm.ini", "[tentacle]\npath=/games/tentacle\n")
	require.NoError(t, afero.WriteFile(fs, "/roms/tentacle.svm", []byte("old\n"), 0o644))

	store, err := Load(fs, "/configs/scummvm.ini")
	require.NoError(t, err)

	count, err := GenerateMarkers(zerolog.Nop(), fs, store, "/roms", false)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	data, err := afero.ReadFile(fs, "/roms/tentacle.svm")
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))
}

func TestGenerateMarkers_OverwriteReplaces(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeINI(t, fs, "/configs/scummvm.ini", "[tentacle]\npath=/games/tentacle\n")
	require.NoError(t, afero.WriteFile(fs, "/roms/tentacle.svm", []byte("old\n"), 0o644))

	store, err := Load(fs, "/configs/scummvm.ini")
	require.NoError(t, err)

	count, err := GenerateMarkers(zerolog.Nop(), fs, store, "/roms", true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := afero.ReadFile(fs, "/roms/tentacle.svm")
	require.NoError(t, err)
	assert.Equal(t, "tentacle\n", string(data))
}
