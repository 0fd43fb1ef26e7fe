// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// BoardView is the read-only contract every layer that inspects board
// state programs against: the concrete Map, a decorator wrapping it
// for a hypothetical move. Nothing outside this package may assume
// it is looking at a *Map.
type BoardView interface {
	Wrapping() *topology.WrappingMap
	Points() []topology.Point

	Terrain(p topology.Point) (Terrain, bool)
	Unit(p topology.Point) (Unit, bool)
	Tokens(p topology.Point) []Token
	Details(p topology.Point) []Detail
}

// ViewPipeLookup adapts a BoardView into topology.PipeLookup, for
// packages outside board (combat, fog, game) that need to hand a
// BoardView straight to a topology function expecting a PipeLookup.
type ViewPipeLookup struct{ View BoardView }

func (v ViewPipeLookup) PipeAt(p topology.Point) (topology.Pipe, bool) {
	return PipeAt(v.View, p)
}

// PipeAt adapts a BoardView into a topology.PipeLookup by scanning a
// tile's details for the first surviving pipe. Normalize can leave
// several pipes with disjoint direction pairs on one tile; only the
// first one in the stack is returned.
func PipeAt(view BoardView, p topology.Point) (topology.Pipe, bool) {
	for _, d := range view.Details(p) {
		if d.Kind == rules.DetailPipe {
			return d.Directions, true
		}
	}
	return topology.Pipe{}, false
}
