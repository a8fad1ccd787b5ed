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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gemba/scummvm-helper/pkg/config"
	"github.com/gemba/scummvm-helper/pkg/scummvm"
)

func newCreateSVMCommand(app *appEnv) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "createsvm",
		Short: "create a *.svm marker file for each game section of the native scummvm.ini",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(_ *cobra.Command, _ []string) error {
			store, err := scummvm.Load(app.fs, app.cfg.NativeINI)
			if err != nil {
				return err
			}
			_, err = scummvm.GenerateMarkers(app.logger, app.fs, store, app.cfg.RomDir, overwrite)
			return err
		}),
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false,
		"overwrite existing *.svm files")
	return cmd
}

func newUniqCommand(app *appEnv) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "uniq <game_id>",
		Short: "keep only one section when a game has multiple variant sections",
		Long: `Keep only the first target entry when multiple variant entries exist,
e.g. [lba-gb], [lba-fr], [lba-de] are reduced to [lba]. Use _all_ as game
id to unify every game section at once, useful after a 'Mass Add...' in
the ScummVM UI.`,
		Args: cobra.ExactArgs(1),
		RunE: app.runE(func(_ *cobra.Command, args []string) error {
			path, err := app.cfg.ResolveINI(selector)
			if err != nil {
				return err
			}

			store, err := scummvm.Load(app.fs, path)
			if err != nil {
				return err
			}

			merged, changed, err := scummvm.Uniq(app.logger, store, args[0])
			if err != nil {
				return err
			}
			if !changed {
				return nil
			}
			return merged.Save()
		}),
	}

	cmd.Flags().StringVarP(&selector, "ini", "i", config.SelectorNative,
		"scummvm.ini file to unify (native/libretro)")
	return cmd
}

func newCopyEntryCommand(app *appEnv) *cobra.Command {
	var (
		force    bool
		selector string
	)

	cmd := &cobra.Command{
		Use:   "copyentry <section>",
		Short: "copy one game section to the other scummvm.ini file",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(_ *cobra.Command, args []string) error {
			if _, err := app.cfg.ResolveINI(selector); err != nil {
				return err
			}
			toLibretro := selector == config.SelectorLibretro

			srcPath, dstPath := app.cfg.LibretroINI, app.cfg.NativeINI
			if toLibretro {
				srcPath, dstPath = app.cfg.NativeINI, app.cfg.LibretroINI
			}

			src, err := scummvm.Load(app.fs, srcPath)
			if err != nil {
				return err
			}
			dst, err := scummvm.Load(app.fs, dstPath)
			if err != nil {
				return err
			}

			err = scummvm.CopySection(app.logger, src, dst, args[0], force, toLibretro, app.cfg.RomDir)
			if err != nil {
				return err
			}
			return dst.Save()
		}),
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"force update of an existing section")
	cmd.Flags().StringVarP(&selector, "to", "t", config.SelectorLibretro,
		"destination ini to copy the section to (native/libretro)")
	return cmd
}

func newCheckEntryCommand(app *appEnv) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "checkentry <section>",
		Short: "test if a game section exists in a scummvm.ini file",
		Long: `Test if a target section exists in a scummvm.ini file. The check only
succeeds on an exact match; a variant section like tlj-win does not match
the game id tlj.`,
		Args: cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			path, err := app.cfg.ResolveINI(selector)
			if err != nil {
				return err
			}

			store, err := scummvm.Load(app.fs, path)
			if err != nil {
				return err
			}

			if store.HasSection(args[0]) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "present")
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "absent")
			}
			return err
		}),
	}

	cmd.Flags().StringVarP(&selector, "ini", "i", config.SelectorNative,
		"scummvm.ini to test (native/libretro)")
	return cmd
}

func newFindSectionCommand(app *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "findsection <folder>",
		Short: "print game sections whose path ends with the given folder",
		Long: `Search the native scummvm.ini for game sections whose path value ends
with the given folder and print every match, semicolon separated.`,
		Args: cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			store, err := scummvm.Load(app.fs, app.cfg.NativeINI)
			if err != nil {
				return err
			}

			matches := scummvm.FindSectionsByFolder(store, args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matches, ";"))
			return err
		}),
	}
}
