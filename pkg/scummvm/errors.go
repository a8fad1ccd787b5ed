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

import "errors"

// Error kinds surfaced by this package. The CLI layer translates them to
// process exit codes; nothing here ever exits.
var (
	// ErrMissingFile means a required scummvm.ini file does not exist.
	ErrMissingFile = errors.New("ini file does not exist")
	// ErrInvalidArgument means the caller supplied a malformed identifier,
	// e.g. a game short name containing a dash.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound means a requested section is absent from the store.
	ErrNotFound = errors.New("section not found")
	// ErrConflict means the destination already holds the section and no
	// force flag was given.
	ErrConflict = errors.New("section already present")
)
