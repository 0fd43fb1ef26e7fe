// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/events"
	"github.com/stratecide/tactics-core/internal/movement"
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// movementTypeOf looks up a unit's movement type row, for the
// displacement walk to consult the same terrain legality movement
// uses. Displacement never changes an amphibious sub-mode mid-walk:
// it always evaluates from Land, since a knockback/pull is a single
// instantaneous event rather than a multi-turn transit.
func movementTypeOf(cfg *rules.Config, u board.Unit) (rules.MovementType, bool) {
	ut, ok := cfg.UnitTypes[u.TypeID]
	if !ok {
		return rules.MovementType{}, false
	}
	mt, ok := cfg.MovementTypes[ut.MovementTypeID]
	return mt, ok
}

// Displace implements spec.md §4.3.5's push/pull walk: |distance|
// steps away from the attacker's facing if distance is positive
// (push), or toward it if negative (pull) — the sign convention
// spec.md §9's Open Question (a) settles on. It stops early and
// reports blocked=true the moment a step is illegal (off-edge,
// illegal terrain, or occupied by another unit). It mutates via h,
// logging a UnitPath event for whatever distance was actually covered
// (a 1-step path — i.e. no movement at all — emits nothing).
func Displace(h *events.Handler, cfg *rules.Config, from topology.Point, facing topology.Direction_e, distance int) (landed topology.Point, blocked bool) {
	view := h.Board()
	u, ok := view.Unit(from)
	if !ok {
		return from, true
	}
	mt, ok := movementTypeOf(cfg, u)
	if !ok {
		return from, true
	}

	dir := facing
	if distance < 0 {
		dir = facing.Opposite(view.Wrapping().Points.Kind)
		distance = -distance
	}

	path := []topology.Point{from}
	cur, curDir := from, dir
	for i := 0; i < distance; i++ {
		next, nextDir, _, _, err := movement.Step(view, mt, cur, curDir, movement.Land, false)
		if err != nil {
			blocked = true
			break
		}
		cur, curDir = next, nextDir
		path = append(path, cur)
	}
	if len(path) > 1 {
		h.MoveUnit(path)
	}
	return cur, blocked
}

// DisplacementDistance folds the attacker's configured
// "displacement_distance" UnitPowerConfig stack starting from base,
// the config-declared magnitude and sign (negative = pull, per
// spec.md §9's Open Question (a)) for the acting unit's Displacement_e.
func DisplacementDistance(cfg *rules.Config, attacker Combatant, base int, isCounter bool) int {
	args := rules.UnitPowerFilterArgs{UnitTypeID: attacker.Unit.TypeID, OwnerID: ownerOf(attacker.Unit.Tags), IsCounter: isCounter}
	mods := cfg.UnitPowerConfigs("displacement_distance", attacker.ActiveCommanderID, attacker.ActivePowerIndex, args)
	f := numbermod.FoldFraction(numbermod.Int(int64(base)), toNumberModF(mods))
	return int(f.Ceil())
}

// Undisplaceable reports whether u is immune to displacement: it
// carries flag (e.g. a structure anchored to its tile).
func Undisplaceable(u board.Unit, flag tagbag.FlagId) bool {
	return u.Tags.HasFlag(flag)
}
