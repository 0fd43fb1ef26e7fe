// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// Translation is a vector in direction space: (dx, dy) on a square grid,
// axial (d0, d60) on a hex grid. Which interpretation applies depends on
// the Kind_e passed to each method — the zero value is the identity
// translation for either kind.
type Translation struct {
	A, B int
}

// unitVectors gives the translation that takes one step in each of
// kind's directions, indexed the same way Directions(kind) is.
func unitVectors(kind Kind_e) map[Direction_e]Translation {
	if kind == Hex {
		return map[Direction_e]Translation{
			North:     {0, -1},
			NorthEast: {1, -1},
			SouthEast: {1, 0},
			South:     {0, 1},
			SouthWest: {-1, 1},
			NorthWest: {-1, 0},
		}
	}
	return map[Direction_e]Translation{
		North: {0, -1},
		East:  {1, 0},
		South: {0, 1},
		West:  {-1, 0},
	}
}

// UnitTranslation returns the translation for a single step in direction d.
func UnitTranslation(kind Kind_e, d Direction_e) Translation {
	return unitVectors(kind)[d]
}

// Add returns t + o.
func (t Translation) Add(o Translation) Translation {
	return Translation{A: t.A + o.A, B: t.B + o.B}
}

// Negate returns -t.
func (t Translation) Negate() Translation {
	return Translation{A: -t.A, B: -t.B}
}

// Scale returns t scaled by n.
func (t Translation) Scale(n int) Translation {
	return Translation{A: t.A * n, B: t.B * n}
}

// IsZero reports whether t is the identity translation.
func (t Translation) IsZero() bool {
	return t.A == 0 && t.B == 0
}

// rotateCW90Square rotates a square-grid translation clockwise by one
// quarter turn.
func rotateCW90Square(t Translation) Translation {
	return Translation{A: -t.B, B: t.A}
}

// rotateCW60Hex rotates a hex-grid axial translation clockwise by one
// sixth turn.
func rotateCW60Hex(t Translation) Translation {
	return Translation{A: -t.B, B: t.A + t.B}
}

// RotateCW rotates t clockwise by steps sectors of kind's direction set.
func (t Translation) RotateCW(kind Kind_e, steps int) Translation {
	n := kind.NumDirections()
	steps = ((steps % n) + n) % n
	rotate := rotateCW90Square
	if kind == Hex {
		rotate = rotateCW60Hex
	}
	for i := 0; i < steps; i++ {
		t = rotate(t)
	}
	return t
}

// RotateBy rotates t by the number of sectors d is clockwise from North.
func (t Translation) RotateBy(kind Kind_e, d Direction_e) Translation {
	return t.RotateCW(kind, index(kind, d))
}

// MirrorHorizontal reflects t across the vertical (North-South) axis,
// swapping east-west components while fixing North/South.
func (t Translation) MirrorHorizontal(kind Kind_e) Translation {
	if kind == Hex {
		return Translation{A: -t.A, B: t.A + t.B}
	}
	return Translation{A: -t.A, B: t.B}
}

// MirrorVertical reflects t across the horizontal (East-West) axis,
// swapping north-south components while fixing East/West.
func (t Translation) MirrorVertical(kind Kind_e) Translation {
	if kind == Hex {
		return Translation{A: t.A, B: -t.A - t.B}
	}
	return Translation{A: t.A, B: -t.B}
}

// Length returns the grid distance a translation covers: hex distance
// for Hex, Chebyshev distance for Square.
func (t Translation) Length(kind Kind_e) int {
	if kind == Hex {
		s := -t.A - t.B
		return maxInt(absInt(t.A), maxInt(absInt(t.B), absInt(s)))
	}
	return maxInt(absInt(t.A), absInt(t.B))
}

// Mod reduces t modulo a wrap vector w: it subtracts the largest
// multiple of w such that the result's Length is not increased further,
// used to canonicalise a translation against a WrappingMap's wrap
// vectors. w with IsZero() is the identity (no reduction).
func (t Translation) Mod(kind Kind_e, w Translation) Translation {
	if w.IsZero() {
		return t
	}
	best := t
	// wrap vectors are short (lattice generators); a small symmetric
	// search window is sufficient to find the minimal representative.
	for k := -8; k <= 8; k++ {
		cand := t.Add(w.Scale(k))
		if cand.Length(kind) < best.Length(kind) {
			best = cand
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
