// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// LineMode selects whether GetLine walks through pipes it encounters
// or treats them as ordinary tiles.
type LineMode int

const (
	Direct LineMode = iota
	FollowPipes
)

// OrientedPoint is one step of a traced line: the point reached, and
// the direction a traveler would continue in from there.
type OrientedPoint struct {
	Point Point
	Dir   Direction_e
}

// GetLine traces up to n points starting at start and heading d,
// applying the distortion accumulated at each wrap (and, in
// FollowPipes mode, at each pipe chain) to the direction carried into
// the next step. It stops early if a step runs off the edge of the
// map with no wrap to resolve it (a wall). lookup may be nil, which
// behaves like Direct mode regardless of the mode argument.
func GetLine(wm *WrappingMap, lookup PipeLookup, start Point, d Direction_e, n int, mode LineMode) []OrientedPoint {
	if n <= 0 {
		return nil
	}
	kind := wm.Points.Kind
	line := make([]OrientedPoint, 0, n)
	line = append(line, OrientedPoint{Point: start, Dir: d})

	cur, curDir := start, d
	for len(line) < n {
		var next Point
		var dist Distortion
		var ok bool
		if mode == FollowPipes && lookup != nil {
			p, d2, stepOK, err := GetNeighborWithPipes(wm, lookup, cur, curDir)
			if err != nil {
				break
			}
			next, dist, ok = p, d2, stepOK
		} else {
			next, dist, ok = wm.GetNeighbor(cur, curDir)
		}
		if !ok {
			break
		}
		nextDir := dist.UpdateDirection(kind, curDir)
		line = append(line, OrientedPoint{Point: next, Dir: nextDir})
		cur, curDir = next, nextDir
	}
	return line
}
