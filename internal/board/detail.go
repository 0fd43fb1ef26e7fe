// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"github.com/stratecide/tactics-core/internal/environment"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// maxDetailStack is the hard cap on a tile's detail stack, regardless
// of how many were added before normalization.
const maxDetailStack = 31

// Detail is one entry of a terrain tile's additive stack. Kind
// selects which of the payload fields are meaningful; only one kind's
// fields are ever populated for a given Detail.
type Detail struct {
	Kind rules.DetailKind_e

	// Pipe
	Directions topology.Pipe
	Ends       [2]bool

	// Bubble
	Owner         int
	TerrainTypeID int

	// Skull
	UnitTypeID int
	SkullTags  tagbag.TagBag

	// SludgeToken (Owner is shared with Bubble above)
	Counter int
}

// PipeOf returns a topology.Pipe view of d, for use as the board
// layer's topology.PipeLookup implementation. Only valid when
// d.Kind == rules.DetailPipe.
func (d Detail) PipeOf() topology.Pipe {
	return d.Directions
}

// RemainingTurns computes how many turns a SludgeToken detail has
// left, per spec.md's per-player staggered countdown: a token owned
// by the player at position i with counter c expires after
// i + MaxPlayers*c ticks of the global schedule. Returns false if no
// settings are attached yet or the owner is out of range.
func (d Detail) RemainingTurns(env *environment.Environment) (int, bool) {
	settings := env.Settings()
	if settings == nil || settings.MaxPlayers <= 0 {
		return 0, false
	}
	if d.Owner < 0 || d.Owner >= settings.MaxPlayers {
		return 0, false
	}
	return d.Owner + settings.MaxPlayers*d.Counter, true
}

// Normalize walks details back to front so the most recently added
// entry wins any conflict, drops whichever entries lose, and
// truncates to maxDetailStack. The result is ordered newest-first
// (the same order the walk produced it in), matching the stacking
// rule: a bubble, a coin and a skull are each singletons; none of the
// three may share a tile with a pipe; a pipe may not duplicate a
// direction already claimed by a surviving pipe, nor connect a
// direction to itself; a sludge token only survives if its
// remaining-turn count matches the longest one on the tile.
func Normalize(details []Detail, env *environment.Environment) []Detail {
	maxSludge := 0
	for _, d := range details {
		if d.Kind != rules.DetailSludge {
			continue
		}
		if turns, ok := d.RemainingTurns(env); ok && turns > maxSludge {
			maxSludge = turns
		}
	}

	var bubble, coin, skull bool
	pipeDirections := map[topology.Direction_e]bool{}
	kept := make([]Detail, 0, len(details))
	for i := len(details) - 1; i >= 0; i-- {
		d := details[i]
		var remove bool
		switch d.Kind {
		case rules.DetailPipe:
			remove = bubble || coin || skull ||
				d.Directions.A == d.Directions.B ||
				pipeDirections[d.Directions.A] || pipeDirections[d.Directions.B]
			if !remove {
				pipeDirections[d.Directions.A] = true
				pipeDirections[d.Directions.B] = true
			}
		case rules.DetailBubble:
			remove = bubble || len(pipeDirections) > 0
			if !remove {
				bubble = true
			}
		case rules.DetailCoins:
			remove = coin || len(pipeDirections) > 0
			if !remove {
				coin = true
			}
		case rules.DetailSkull:
			remove = skull || len(pipeDirections) > 0
			if !remove {
				skull = true
			}
		case rules.DetailSludge:
			turns, ok := d.RemainingTurns(env)
			remove = !ok || turns != maxSludge || len(pipeDirections) > 0
		}
		if !remove {
			kept = append(kept, d)
		}
	}

	if len(kept) > maxDetailStack {
		kept = kept[:maxDetailStack]
	}
	return kept
}
