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

package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/gemba/scummvm-helper/pkg/cli"
)

// appVersion is set at build time via -ldflags.
var appVersion = "dev"

func main() {
	rootCmd := cli.NewRootCommand(afero.NewOsFs(), appVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
