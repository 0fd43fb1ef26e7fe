// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// Transformation is a rigid-ish map of global points: a Distortion
// composed with a translation. WrappingMap's wrap generators are
// Transformations; composing generators is how the builder discovers
// the map's wrap vectors.
type Transformation struct {
	Distortion Distortion
	TranslateBy Translation
}

// Apply maps g through the transformation: distort first, then
// translate.
func (tr Transformation) Apply(kind Kind_e, g GlobalPoint) GlobalPoint {
	v := Translation{A: g.X, B: g.Y}
	v = tr.Distortion.ApplyToTranslation(kind, v)
	v = v.Add(tr.TranslateBy)
	return GlobalPoint{X: v.A, Y: v.B}
}

// Compose returns the transformation equivalent to applying tr first,
// then other.
func (tr Transformation) Compose(kind Kind_e, other Transformation) Transformation {
	return Transformation{
		Distortion:  Compose(kind, tr.Distortion, other.Distortion),
		TranslateBy: other.Distortion.ApplyToTranslation(kind, tr.TranslateBy).Add(other.TranslateBy),
	}
}

// Inverse returns the transformation that undoes tr.
func (tr Transformation) Inverse(kind Kind_e) Transformation {
	invDist := tr.Distortion.Inverse(kind)
	return Transformation{
		Distortion:  invDist,
		TranslateBy: invDist.ApplyToTranslation(kind, tr.TranslateBy.Negate()),
	}
}
