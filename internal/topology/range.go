// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// RangeInLayers performs a wrap-aware breadth-first search outward
// from c, returning every point reached within r layers mapped to the
// layer (shortest number of steps) it was first reached at. Unlike a
// naive global-coordinate distance check, the BFS walks the wrap
// table at every step, so it stays correct across a seam or pipe.
func RangeInLayers(wm *WrappingMap, c Point, r int) map[Point]int {
	layers := map[Point]int{c: 0}
	if r <= 0 {
		return layers
	}
	type frontierEntry struct {
		p     Point
		layer int
	}
	frontier := []frontierEntry{{c, 0}}
	kind := wm.Points.Kind
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.layer >= r {
			continue
		}
		for _, d := range Directions(kind) {
			n, _, ok := wm.GetNeighbor(cur.p, d)
			if !ok {
				continue
			}
			if _, seen := layers[n]; seen {
				continue
			}
			layers[n] = cur.layer + 1
			frontier = append(frontier, frontierEntry{n, cur.layer + 1})
		}
	}
	return layers
}

// straightAxis holds, per Kind, the directions a cannon-style attack
// may travel along: the cardinal axes for Square, the three long
// diagonals for Hex. Layers built by restricting to these directions
// form straight lines radiating from the center rather than a filled
// area, matching the TriangleStraight attack pattern.
func straightAxis(kind Kind_e) []Direction_e {
	switch kind {
	case Hex:
		return []Direction_e{North, South, NorthEast, SouthWest, SouthEast, NorthWest}
	default:
		return []Direction_e{North, South, East, West}
	}
}

// CannonRangeInLayers restricts RangeInLayers to travel along the
// straight axes only, producing the ray-shaped reach of a
// TriangleStraight attack pattern instead of a filled area.
func CannonRangeInLayers(wm *WrappingMap, c Point, r int) map[Point]int {
	layers := map[Point]int{c: 0}
	if r <= 0 {
		return layers
	}
	type frontierEntry struct {
		p     Point
		layer int
		axis  Direction_e
	}
	var frontier []frontierEntry
	kind := wm.Points.Kind
	for _, d := range straightAxis(kind) {
		frontier = append(frontier, frontierEntry{c, 0, d})
	}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.layer >= r {
			continue
		}
		n, dist, ok := wm.GetNeighbor(cur.p, cur.axis)
		if !ok {
			continue
		}
		if existing, seen := layers[n]; !seen || cur.layer+1 < existing {
			layers[n] = cur.layer + 1
		}
		nextAxis := dist.UpdateDirection(kind, cur.axis)
		frontier = append(frontier, frontierEntry{n, cur.layer + 1, nextAxis})
	}
	return layers
}
