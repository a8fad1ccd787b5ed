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

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/gemba/scummvm-helper/pkg/scummvm"
)

const (
	// CfgEnv overrides the settings file location, mainly for testing a
	// non-RetroPie layout.
	CfgEnv = "SCUMMVM_HELPER_CFG"

	// CfgFile is the default settings file, next to the native ini.
	CfgFile = "/opt/retropie/configs/scummvm/scummvm-helper.toml"
)

// INI file selectors accepted by the --ini and --to flags.
const (
	SelectorNative   = "native"
	SelectorLibretro = "libretro"
)

// Values holds the file locations this tool works on. All of them have
// RetroPie defaults; a settings file is only needed for custom layouts.
type Values struct {
	NativeINI   string `toml:"native_ini"   validate:"required"`
	LibretroINI string `toml:"libretro_ini" validate:"required"`
	RomDir      string `toml:"rom_dir"      validate:"required"`
	LogFile     string `toml:"log_file"     validate:"required"`
}

// BaseDefaults are the stock RetroPie locations. The log file is shared
// with runcommand so launch problems end up in one place.
var BaseDefaults = Values{
	NativeINI:   "/opt/retropie/configs/scummvm/scummvm.ini",
	LibretroINI: "/home/pi/RetroPie/BIOS/scummvm.ini",
	RomDir:      "/home/pi/RetroPie/roms/scummvm",
	LogFile:     "/dev/shm/runcommand.log",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load returns the defaults merged with the settings file, if one exists.
// A missing settings file is not an error; a malformed one is.
func Load(fs afero.Fs) (Values, error) {
	path := os.Getenv(CfgEnv)
	if path == "" {
		path = CfgFile
	}

	vals := BaseDefaults

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Values{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}
	if exists {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return Values{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &vals); err != nil {
			return Values{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := validate.Struct(&vals); err != nil {
		return Values{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return vals, nil
}

// ResolveINI maps an ini selector to a scummvm.ini path.
func (v Values) ResolveINI(selector string) (string, error) {
	if err := validate.Var(selector, "oneof=native libretro"); err != nil {
		return "", fmt.Errorf("%w: got %q, was expecting one of: %s, %s",
			scummvm.ErrInvalidArgument, selector, SelectorNative, SelectorLibretro)
	}
	if selector == SelectorNative {
		return v.NativeINI, nil
	}
	return v.LibretroINI, nil
}
