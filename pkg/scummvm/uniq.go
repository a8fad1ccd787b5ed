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
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// PinnedSection is the global engine settings section. It always sorts
// first in a written scummvm.ini, the way the ScummVM UI itself writes it.
const PinnedSection = "scummvm"

// AllTargets is the sentinel game id selecting every variant group at
// once, useful after a "Mass Add..." in the ScummVM UI.
const AllTargets = "_all_"

// variantSeparator splits a section name into stem and variant suffix,
// e.g. lba-gb, lba-fr are variants of the stem lba.
const variantSeparator = "-"

// Stem returns the portion of a section name before the first variant
// separator, or the whole name if it has none.
func Stem(name string) string {
	stem, _, _ := strings.Cut(name, variantSeparator)
	return stem
}

// defaultVariant picks the section whose entries survive a merge. English
// variants (suffix -en or -gb) take precedence over file order; some
// titles, e.g. Little Big Adventure, enumerate one section per language
// and English is the conventional default.
func defaultVariant(members []string) string {
	for _, name := range members {
		if strings.HasSuffix(name, variantSeparator+"en") ||
			strings.HasSuffix(name, variantSeparator+"gb") {
			return name
		}
	}
	return members[0]
}

// groupMembers returns the targets belonging to the variant group of stem:
// an exact match on stem, or stem immediately followed by the separator.
// Order follows the targets slice.
func groupMembers(targets []string, stem string) []string {
	var members []string
	for _, name := range targets {
		if name == stem || strings.HasPrefix(name, stem+variantSeparator) {
			members = append(members, name)
		}
	}
	return members
}

// mergeOp records that the output store gets section dest, sourced from
// section source of the input (empty source means same name).
type mergeOp struct {
	dest   string
	source string
}

// Uniq collapses variant target sections down to one section per stem and
// returns the rewritten store. gameID selects a single stem, or every stem
// with AllTargets. The second return value is false when the store needs
// no rewrite (the group is already the lone unsuffixed section); callers
// skip the save in that case so an untouched file stays byte identical.
func Uniq(logger zerolog.Logger, store *Store, gameID string) (*Store, bool, error) {
	targets := store.Targets()

	var ops []mergeOp
	if gameID == AllTargets {
		ops = uniqAllOps(logger, targets)
	} else {
		stemOps, err := uniqStemOps(logger, store, targets, gameID)
		if err != nil {
			return nil, false, err
		}
		if stemOps == nil {
			logger.Info().
				Str("section", gameID).
				Str("file", store.Path()).
				Msg("section already unique")
			return store, false, nil
		}
		ops = stemOps
	}

	// Non-target sections (engine config etc.) ride along untouched.
	for _, name := range store.SectionsInOrder() {
		if !slices.Contains(targets, name) {
			ops = append(ops, mergeOp{dest: name, source: ""})
		}
	}

	merged := NewStore(store.fs, store.path)
	for _, op := range ops {
		if err := merged.CopySectionFrom(store, op.dest, op.source); err != nil {
			return nil, false, err
		}
	}

	return orderSections(merged), true, nil
}

// uniqAllOps builds merge operations for every stem occurring among
// suffixed target names. Dash-free targets not claimed by a group carry
// through as their own singleton.
func uniqAllOps(logger zerolog.Logger, targets []string) []mergeOp {
	var ops []mergeOp
	claimed := make(map[string]bool)

	for _, name := range targets {
		if !strings.Contains(name, variantSeparator) {
			continue
		}
		stem := Stem(name)
		if claimed[stem] {
			continue
		}
		claimed[stem] = true

		members := groupMembers(targets, stem)
		source := defaultVariant(members)
		for _, member := range members {
			claimed[member] = true
		}
		ops = append(ops, mergeOp{dest: stem, source: source})
		logger.Debug().
			Str("source", source).
			Str("section", stem).
			Msg("source ini section renamed")
	}

	for _, name := range targets {
		if !claimed[name] {
			ops = append(ops, mergeOp{dest: name})
		}
	}
	return ops
}

// uniqStemOps builds merge operations for one stem. A nil, error-free
// result signals the no-op case: the group already consists solely of the
// unsuffixed section.
func uniqStemOps(logger zerolog.Logger, store *Store, targets []string, gameID string) ([]mergeOp, error) {
	if strings.Contains(gameID, variantSeparator) {
		return nil, fmt.Errorf("%w: game short name %q may not contain dashes", ErrInvalidArgument, gameID)
	}

	members := groupMembers(targets, gameID)
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: [%s] in %s", ErrNotFound, gameID, store.Path())
	}
	if len(members) == 1 && members[0] == gameID {
		return nil, nil
	}

	source := defaultVariant(members)
	ops := []mergeOp{{dest: gameID, source: source}}
	logger.Debug().
		Str("source", source).
		Str("section", gameID).
		Msg("source ini section renamed")

	for _, name := range targets {
		if !slices.Contains(members, name) {
			ops = append(ops, mergeOp{dest: name})
		}
	}
	return ops, nil
}

// orderSections rebuilds the store with the pinned engine section first
// and the rest in ascending lexical order. The two-tier sort key keeps the
// comparator total without special cases inside it.
func orderSections(store *Store) *Store {
	type sortKey struct {
		tier int
		name string
	}
	keyOf := func(name string) sortKey {
		if name == PinnedSection {
			return sortKey{tier: 0}
		}
		return sortKey{tier: 1, name: name}
	}

	names := store.SectionsInOrder()
	slices.SortFunc(names, func(a, b string) int {
		ka, kb := keyOf(a), keyOf(b)
		if ka.tier != kb.tier {
			return ka.tier - kb.tier
		}
		return strings.Compare(ka.name, kb.name)
	})

	ordered := NewStore(store.fs, store.path)
	for _, name := range names {
		// Sections are unique, so this copy cannot hit the
		// first-writer-wins path or the gameid rewrite.
		_ = ordered.ReplaceSectionFrom(store, name)
	}
	return ordered
}
