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

package helpers

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the logger owned by the invocation entry point. In
// debug mode everything goes verbose to the terminal; otherwise info and
// up is appended to the shared launcher log so it shows up alongside the
// runcommand output.
func NewLogger(debug bool, logFile string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if debug {
		writer := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(writer).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    1,
		MaxBackups: 2,
	}
	return zerolog.New(writer).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}
