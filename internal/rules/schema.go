// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules

import "github.com/stratecide/tactics-core/internal/tagbag"

// Well-known tag and flag ids every package that reads or writes unit
// state agrees on. TagId/FlagId meaning is config-owned (see
// tagbag.TagId's doc comment); this is that ownership made concrete
// for the handful of keys the engine itself depends on rather than
// leaving to a match's CSV tables, since combat, fog, events and the
// game loop all need to find a unit's hp, owner and facing the same
// way regardless of which config is loaded.
const (
	TagHP tagbag.TagId = iota + 1
	TagOwner
	TagFacing
	TagHeroID
	TagHeroCharge
)

const (
	// FlagHasActed marks a unit that has already spent its action this
	// turn (attacked, captured, or otherwise finished its command).
	FlagHasActed tagbag.FlagId = iota + 1
	// FlagHasMoved is reserved for a unit that has left its starting
	// tile this turn; nothing in this module sets or reads it.
	FlagHasMoved
	// FlagChargeDisabled suppresses commander/hero charge gain for a
	// unit for the remainder of combat resolution (spec.md §4.3.7).
	FlagChargeDisabled
	// FlagUndisplaceable marks a unit immune to push/pull displacement
	// (spec.md §4.3.5), e.g. a structure anchored to its tile.
	FlagUndisplaceable
)
