// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// WrappingMap derives, from a PointMap plus at most three generator
// Transformations, the wrap vectors and distortion table needed to
// canonicalise any global point crossing the edge of the valid area
// back to its in-map representative.
type WrappingMap struct {
	Points     *PointMap
	Generators []Transformation
	WrapVectors []Transformation
}

// Build validates the generators and closes the group they generate,
// as described in spec.md §4.1: reject a transformation that overlaps
// the base area or leaves it disconnected, discover at most two wrap
// vectors (replacing one with a shorter equivalent when found), and
// reject a third linearly independent vector.
func Build(points *PointMap, generators []Transformation) (*WrappingMap, error) {
	if !points.Connected() {
		return nil, ErrGeneratorDisconnects
	}
	for _, g := range generators {
		if overlapsBase(points, g) {
			return nil, ErrGeneratorOverlapsBase
		}
	}

	wm := &WrappingMap{Points: points, Generators: generators}

	// close the group under composition with inverses, bounded so a
	// misconfigured generator set can't loop forever.
	seen := map[Transformation]bool{Identity1(): true}
	frontier := append([]Transformation{}, generators...)
	for _, g := range generators {
		frontier = append(frontier, g.Inverse(points.Kind))
	}
	var all []Transformation
	for i := 0; i < 256 && len(frontier) > 0; i++ {
		next := frontier[0]
		frontier = frontier[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		all = append(all, next)
		for _, g := range generators {
			frontier = append(frontier, next.Compose(points.Kind, g))
		}
	}

	// keep the pure-translation (non-distorting) elements as wrap
	// vector candidates; pick up to two shortest, independent ones.
	var wraps []Transformation
	for _, t := range all {
		if !t.Distortion.IsIdentity() {
			continue
		}
		if t.TranslateBy.IsZero() {
			continue
		}
		wraps = addWrapVector(points.Kind, wraps, t)
	}
	if len(wraps) > 2 {
		return nil, ErrTooManyWrapVectors
	}
	// any distorting (mirror/rotation) elements are kept as generators
	// for non-orientable wraps (e.g. a Klein-bottle-style seam); they
	// participate in neighbor lookup the same way translation wraps do.
	for _, t := range all {
		if !t.Distortion.IsIdentity() {
			wm.WrapVectors = append(wm.WrapVectors, t)
		}
	}
	wm.WrapVectors = append(wm.WrapVectors, wraps...)
	return wm, nil
}

// Identity1 returns the identity Transformation.
func Identity1() Transformation {
	return Transformation{Distortion: Identity}
}

func overlapsBase(points *PointMap, g Transformation) bool {
	for _, p := range points.Points() {
		img := g.Apply(points.Kind, p.ToGlobal())
		if img.InBounds(points.Width, points.Height) && points.IsValidGlobal(img) {
			return true
		}
	}
	return false
}

// addWrapVector inserts candidate into wraps, keeping at most two
// independent directions and preferring the shortest representative
// of each.
func addWrapVector(kind Kind_e, wraps []Transformation, candidate Transformation) []Transformation {
	for i, w := range wraps {
		if parallel(kind, w.TranslateBy, candidate.TranslateBy) {
			if candidate.TranslateBy.Length(kind) < w.TranslateBy.Length(kind) {
				wraps[i] = candidate
			}
			return wraps
		}
	}
	if len(wraps) == 2 {
		// any further vector is a combination of the two kept ones; it
		// adds nothing when that combination is an integer one.
		a, b, c := wraps[0].TranslateBy, wraps[1].TranslateBy, candidate.TranslateBy
		det := a.A*b.B - a.B*b.A
		if (c.A*b.B-c.B*b.A)%det == 0 && (a.A*c.B-a.B*c.A)%det == 0 {
			return wraps
		}
	}
	return append(wraps, candidate)
}

// parallel reports whether two translations are scalar multiples of
// one another (same or opposite wrap direction).
func parallel(kind Kind_e, a, b Translation) bool {
	// cross product in the two independent components is zero for
	// collinear vectors.
	return a.A*b.B-a.B*b.A == 0
}

// GetNeighbor returns the destination of stepping from p in direction
// d, plus the distortion accumulated by the step. If the direct
// neighbor is valid it is returned with the identity distortion;
// otherwise the wrap table is consulted.
func (wm *WrappingMap) GetNeighbor(p Point, d Direction_e) (Point, Distortion, bool) {
	kind := wm.Points.Kind
	direct := p.ToGlobal().Add(UnitTranslation(kind, d))
	if wm.Points.IsValidGlobal(direct) {
		return direct.ToPoint(), Identity, true
	}
	for _, w := range wm.WrapVectors {
		inv := w.Inverse(kind)
		for _, sign := range []Transformation{w, inv} {
			img := sign.Apply(kind, direct)
			if wm.Points.IsValidGlobal(img) {
				return img.ToPoint(), sign.Distortion, true
			}
		}
	}
	// a step out of a corner can cross two edges at once.
	for _, w1 := range wm.WrapVectors {
		for _, s1 := range []Transformation{w1, w1.Inverse(kind)} {
			for _, w2 := range wm.WrapVectors {
				for _, s2 := range []Transformation{w2, w2.Inverse(kind)} {
					t := s1.Compose(kind, s2)
					if img := t.Apply(kind, direct); wm.Points.IsValidGlobal(img) {
						return img.ToPoint(), t.Distortion, true
					}
				}
			}
		}
	}
	return Point{}, Identity, false
}
