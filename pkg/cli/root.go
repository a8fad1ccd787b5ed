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

package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gemba/scummvm-helper/pkg/config"
	"github.com/gemba/scummvm-helper/pkg/helpers"
	"github.com/gemba/scummvm-helper/pkg/scummvm"
)

// Exit codes as the launcher scripts check them. The negative values wrap
// to 255 and 254 on exit, which is what shell callers of the original
// helper already test for.
const (
	ExitOK       = 0
	ExitNotFound = -1
	ExitInvalid  = -2
	ExitFailure  = 1
)

// ExitCode translates an error from a subcommand into a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, scummvm.ErrNotFound), errors.Is(err, scummvm.ErrConflict):
		return ExitNotFound
	case errors.Is(err, scummvm.ErrInvalidArgument), errors.Is(err, scummvm.ErrMissingFile):
		return ExitInvalid
	default:
		return ExitFailure
	}
}

// appEnv carries the per-invocation dependencies into the subcommands.
// It is populated once by the root command before any RunE fires.
type appEnv struct {
	fs     afero.Fs
	cfg    config.Values
	logger zerolog.Logger
}

// runE wraps a subcommand handler so failed operations are also recorded
// in the launcher log, not only on stderr.
func (a *appEnv) runE(handler func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := handler(cmd, args); err != nil {
			a.logger.Warn().Err(err).Str("command", cmd.Name()).Msg("command failed")
			return err
		}
		return nil
	}
}

// NewRootCommand builds the scummvm-helper command tree. All filesystem
// access of the subcommands goes through fs.
func NewRootCommand(fs afero.Fs, version string) *cobra.Command {
	app := &appEnv{fs: fs}
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "scummvm-helper",
		Short: "Utility to maintain scummvm.ini entries",
		Long: `Utility to modify scummvm.ini files. Used as part of '+Start ScummVM.sh'
and 'romdir-launcher.sh' (libretro core of ScummVM) but can also be run
standalone.`,
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(fs)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.logger = helpers.NewLogger(debug, cfg.LogFile)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"verbose log to terminal, disables log to the launcher log file")

	rootCmd.AddCommand(
		newCreateSVMCommand(app),
		newUniqCommand(app),
		newCopyEntryCommand(app),
		newCheckEntryCommand(app),
		newFindSectionCommand(app),
	)

	return rootCmd
}
