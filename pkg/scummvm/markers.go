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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// MarkerExt is the extension of the per-game marker files EmulationStation
// lists as launchable "roms".
const MarkerExt = ".svm"

// GenerateMarkers writes one marker file per distinct game install path
// found among the target sections of store, named after the last path
// component and containing the section name. Existing markers are kept
// unless overwrite is set. Further sections sharing an already seen path
// are language or platform variants and produce no second marker. Returns
// the number of files newly written.
func GenerateMarkers(logger zerolog.Logger, fs afero.Fs, store *Store, outDir string, overwrite bool) (int, error) {
	logger.Info().Msg("checking if new *.svm files need to be created")

	seen := make(map[string]bool)
	count := 0

	for _, name := range store.Targets() {
		gamePath, _ := store.Value(name, PathKey)
		markerPath := filepath.Join(outDir, filepath.Base(gamePath)+MarkerExt)

		if seen[gamePath] {
			logger.Debug().
				Str("section", name).
				Str("marker", filepath.Base(markerPath)).
				Str("content", readMarker(fs, markerPath)).
				Msg("game variant detected, marker already present")
			continue
		}
		seen[gamePath] = true

		exists, err := afero.Exists(fs, markerPath)
		if err != nil {
			return count, fmt.Errorf("failed to stat %s: %w", markerPath, err)
		}
		if exists && !overwrite {
			logger.Debug().
				Str("marker", filepath.Base(markerPath)).
				Str("content", readMarker(fs, markerPath)).
				Msg("marker exists, skipping")
			continue
		}

		if err := afero.WriteFile(fs, markerPath, []byte(name+"\n"), 0o644); err != nil {
			return count, fmt.Errorf("failed to write %s: %w", markerPath, err)
		}
		logger.Debug().
			Str("marker", filepath.Base(markerPath)).
			Str("content", name).
			Msg("marker created")
		count++
	}

	logger.Info().Int("count", count).Msg("created *.svm files")
	return count, nil
}

// readMarker returns the first line of an existing marker, for logging
// only. Errors degrade to an empty string.
func readMarker(fs afero.Fs, path string) string {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}
