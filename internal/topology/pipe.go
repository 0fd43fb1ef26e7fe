// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// Pipe is a through-map teleport detail: a pair of distinct
// directions on a single tile. Arriving at the tile while traveling
// direction d enters the end opposite d; the pipe redirects travel
// out the other end, with a distortion applied so direction tags
// and further line-tracing stay consistent.
type Pipe struct {
	A, B Direction_e
}

// Follow computes the direction to continue in (from the same tile)
// and the distortion that redirection applies, given the direction d
// a traveler was moving in when they reached this tile. ok is false
// if d's entry end isn't one of the pipe's two directions.
func (p Pipe) Follow(kind Kind_e, d Direction_e) (exit Direction_e, dist Distortion, ok bool) {
	entry := d.Opposite(kind)
	var otherEnd Direction_e
	switch entry {
	case p.A:
		otherEnd = p.B
	case p.B:
		otherEnd = p.A
	default:
		return 0, Identity, false
	}
	rotation := otherEnd.RotateCW(kind, index(kind, d.MirrorVertical(kind)))
	return otherEnd, Distortion{Mirrored: false, Rotation: rotation}, true
}

// PipeLookup is implemented by whatever layer tracks which tiles
// carry pipe details (terrain details, in the board package); it
// keeps topology decoupled from the board's entity model.
type PipeLookup interface {
	PipeAt(p Point) (Pipe, bool)
}

// maxPipeChain bounds pipe-chain following so a self-looping
// configuration (spec.md's ErrSelfLoopingPipe) can't hang.
const maxPipeChain = 64

// GetNeighborWithPipes is GetNeighbor extended with spec.md §4.1's
// pipe step: after resolving the direct/wrapped neighbor, it consults
// lookup at the destination; if a pipe accepts the arrival direction,
// it walks the chain (composing distortion at each hop, redirecting
// from the same tile) until a tile with no matching pipe is reached.
func GetNeighborWithPipes(wm *WrappingMap, lookup PipeLookup, p Point, d Direction_e) (Point, Distortion, bool, error) {
	next, dist, ok := wm.GetNeighbor(p, d)
	if !ok {
		return Point{}, Identity, false, nil
	}
	accum := dist
	curPoint, curDir := next, dist.UpdateDirection(wm.Points.Kind, d)
	visited := map[Point]bool{}
	for i := 0; i < maxPipeChain; i++ {
		if lookup == nil {
			break
		}
		pipe, found := lookup.PipeAt(curPoint)
		if !found {
			break
		}
		exitDir, pdist, pok := pipe.Follow(wm.Points.Kind, curDir)
		if !pok {
			break
		}
		if visited[curPoint] {
			return Point{}, Identity, false, ErrSelfLoopingPipe
		}
		visited[curPoint] = true
		accum = Compose(wm.Points.Kind, accum, pdist)
		hop, hopDist, hopOK := wm.GetNeighbor(curPoint, exitDir)
		if !hopOK {
			return Point{}, Identity, false, nil
		}
		accum = Compose(wm.Points.Kind, accum, hopDist)
		curPoint = hop
		curDir = hopDist.UpdateDirection(wm.Points.Kind, exitDir)
	}
	return curPoint, accum, true, nil
}
