// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

import "fmt"

// Point is a board coordinate; x and y are always non-negative and
// bounded by the map's width and height.
type Point struct {
	X, Y int
}

// String implements the fmt.Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ToGlobal embeds p into the signed coordinate space used for topology
// math.
func (p Point) ToGlobal() GlobalPoint {
	return GlobalPoint{X: p.X, Y: p.Y}
}

// GlobalPoint is the signed-coordinate embedding of a Point used while
// composing translations and distortions; it may carry negative or
// out-of-range coordinates mid-computation, before being canonicalised
// back to an in-map Point by a WrappingMap.
type GlobalPoint struct {
	X, Y int
}

// String implements the fmt.Stringer interface.
func (g GlobalPoint) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// Add returns g translated by t.
func (g GlobalPoint) Add(t Translation) GlobalPoint {
	return GlobalPoint{X: g.X + t.A, Y: g.Y + t.B}
}

// Sub returns the translation from o to g.
func (g GlobalPoint) Sub(o GlobalPoint) Translation {
	return Translation{A: g.X - o.X, B: g.Y - o.Y}
}

// InBounds reports whether g falls within a width x height board.
func (g GlobalPoint) InBounds(width, height int) bool {
	return 0 <= g.X && g.X < width && 0 <= g.Y && g.Y < height
}

// ToPoint drops the global embedding back to a Point; callers must
// first confirm InBounds.
func (g GlobalPoint) ToPoint() Point {
	return Point{X: g.X, Y: g.Y}
}
