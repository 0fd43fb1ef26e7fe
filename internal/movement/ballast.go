// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package movement

import "github.com/stratecide/tactics-core/internal/topology"

// AmphibiousMode is the water/land sub-mode an amphibious movement
// type carries across a path (spec.md §4.2).
type AmphibiousMode int

const (
	Land AmphibiousMode = iota
	Water
)

// Ballast is the set of side effects a path accumulates as it's
// walked. It is attached to the terminal position of the winning path
// and consulted later by combat / action filters (spec.md §4.2) — for
// example a "Movement" attack-input-direction-source reads
// LastDirection and DiagonalDirection straight off the mover's
// ballast. Ballast is part of the search's state key alongside
// (point, mode): a transition can be legal or not depending on it
// (the forbidden-opposite-direction rule below), but it never affects
// path cost, so two states sharing a point and mode but differing
// ballast are still compared on cost alone when the search
// reconciles entries after the fact.
type Ballast struct {
	HasDirection      bool
	LastDirection     topology.Direction_e
	HasDiagonal       bool
	DiagonalDirection topology.Direction_e
	MovedThroughHazard bool
}

// forbidsOpposite reports whether stepping in d from this ballast's
// state would double back along the immediately preceding step — the
// "forbidden-opposite-direction" rule chess-like pieces enforce so a
// multi-step move can't reverse on itself mid-path.
func (b Ballast) forbidsOpposite(kind topology.Kind_e, d topology.Direction_e) bool {
	return b.HasDirection && d == b.LastDirection.Opposite(kind)
}

// step folds one more hop in direction d (already corrected for any
// wrap distortion picked up reaching the new tile) into b.
func (b Ballast) step(d topology.Direction_e, hazard bool) Ballast {
	next := b
	// a diagonal move is recorded when two consecutive steps turn
	// rather than continue straight.
	if b.HasDirection && b.LastDirection != d {
		next.HasDiagonal = true
		next.DiagonalDirection = d
	}
	next.HasDirection = true
	next.LastDirection = d
	next.MovedThroughHazard = b.MovedThroughHazard || hazard
	return next
}
