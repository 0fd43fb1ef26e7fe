// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/movement"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// AllowedFacings implements spec.md §4.3.2: which directions the
// attacker may face when declaring an attack. AllDirections offers
// every direction of kind; FromMovement restricts to the heading the
// mover's path left it facing (its last step, or — once the path has
// turned — the diagonal direction the turn produced); FromUnitTag
// restricts to a single direction read off one of the attacker's own
// tags (a turret facing, a bound orientation).
func AllowedFacings(kind topology.Kind_e, source rules.AttackInputDirectionSource, unit board.Unit, ballast movement.Ballast) []topology.Direction_e {
	switch source.Kind {
	case rules.FromMovement:
		if ballast.HasDiagonal {
			return []topology.Direction_e{ballast.DiagonalDirection}
		}
		if ballast.HasDirection {
			return []topology.Direction_e{ballast.LastDirection}
		}
		return nil
	case rules.FromUnitTag:
		v, ok := unit.Tags.Get(tagbag.TagId(source.TagID))
		if !ok {
			return nil
		}
		d, ok := v.(tagbag.DirectionTag)
		if !ok {
			return nil
		}
		return []topology.Direction_e{d.D}
	default:
		return topology.Directions(kind)
	}
}

// FacingAllowed reports whether facing is one of source's legal
// choices for unit, given ballast.
func FacingAllowed(kind topology.Kind_e, source rules.AttackInputDirectionSource, unit board.Unit, ballast movement.Ballast, facing topology.Direction_e) bool {
	for _, d := range AllowedFacings(kind, source, unit, ballast) {
		if d == facing {
			return true
		}
	}
	return false
}
