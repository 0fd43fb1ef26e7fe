// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import "github.com/stratecide/tactics-core/internal/topology"

// ReplaceUnit overlays BoardView with one substituted unit (or its
// removal), without mutating the underlying board. Command validation
// uses it to ask "what would vision/attack range look like if this
// unit stood here instead" before committing to a move.
type ReplaceUnit struct {
	BoardView
	At          topology.Point
	Replacement Unit
	Remove      bool
}

// Unit overrides the embedded BoardView's Unit at r.At only.
func (r ReplaceUnit) Unit(p topology.Point) (Unit, bool) {
	if p == r.At {
		if r.Remove {
			return Unit{}, false
		}
		return r.Replacement, true
	}
	return r.BoardView.Unit(p)
}

// IgnoreUnits overlays BoardView so every point reports no unit
// present; movement's pathfinding uses it to probe terrain cost
// without a unit's own footprint blocking its path.
type IgnoreUnits struct {
	BoardView
}

func (v IgnoreUnits) Unit(p topology.Point) (Unit, bool) { return Unit{}, false }

// UnitPath overlays BoardView with a single unit moved through a
// sequence of points with no occupant left behind at the points it
// passed through, and present only at the path's final point. It
// models "as if this unit had already finished moving here" for
// chained command validation (e.g. move-then-attack).
type UnitPath struct {
	BoardView
	Moving Unit
	Path   []topology.Point
}

func (v UnitPath) Unit(p topology.Point) (Unit, bool) {
	if len(v.Path) == 0 {
		return v.BoardView.Unit(p)
	}
	origin := v.Path[0]
	dest := v.Path[len(v.Path)-1]
	if p == dest {
		return v.Moving, true
	}
	if p == origin {
		return Unit{}, false
	}
	for _, mid := range v.Path[1 : len(v.Path)-1] {
		if p == mid {
			return Unit{}, false
		}
	}
	return v.BoardView.Unit(p)
}
