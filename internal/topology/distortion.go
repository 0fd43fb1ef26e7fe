// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

// Distortion is an element of the dihedral group on a Kind's
// directions: a mirror flag plus a rotation. It's what a neighbor
// lookup across a wrap edge hands back so that the caller can keep
// walking a consistent heading, and what a pipe hop or a unit
// displacement threads through to keep facing/tag directions correct.
type Distortion struct {
	Mirrored bool
	Rotation Direction_e
}

// Identity is the no-op distortion.
var Identity = Distortion{Mirrored: false, Rotation: North}

// IsIdentity reports whether d has no effect.
func (d Distortion) IsIdentity() bool {
	return !d.Mirrored && d.Rotation == North
}

// Compose returns a + b: apply a first, then b. If a mirrors, b's
// rotation is pre-mirrored (applied in the opposite chirality) because
// a already flipped orientation.
func Compose(kind Kind_e, a, b Distortion) Distortion {
	mirrored := a.Mirrored != b.Mirrored
	var steps int
	if a.Mirrored {
		steps = index(kind, a.Rotation) - index(kind, b.Rotation)
	} else {
		steps = index(kind, a.Rotation) + index(kind, b.Rotation)
	}
	return Distortion{Mirrored: mirrored, Rotation: fromIndex(kind, steps)}
}

// Inverse returns -d such that Compose(kind, d, d.Inverse(kind)) is
// the identity distortion.
func (d Distortion) Inverse(kind Kind_e) Distortion {
	if d.Mirrored {
		return d
	}
	return Distortion{Mirrored: false, Rotation: fromIndex(kind, -index(kind, d.Rotation))}
}

// UpdateDirection applies d to direction dir: mirror first, then
// rotate.
func (d Distortion) UpdateDirection(kind Kind_e, dir Direction_e) Direction_e {
	if d.Mirrored {
		dir = dir.MirrorHorizontal(kind)
	}
	return dir.RotateCW(kind, index(kind, d.Rotation))
}

// UpdateDiagonalDirection is UpdateDirection, except when mirrored it
// first rotates dir one step clockwise so a diagonal-moving unit's
// heading survives reflection across a wrap edge.
func (d Distortion) UpdateDiagonalDirection(kind Kind_e, dir Direction_e) Direction_e {
	if d.Mirrored {
		dir = dir.RotateCW(kind, 1)
	}
	return d.UpdateDirection(kind, dir)
}

// ApplyToTranslation applies d to a translation vector: mirror first,
// then rotate — the same order as UpdateDirection.
func (d Distortion) ApplyToTranslation(kind Kind_e, t Translation) Translation {
	if d.Mirrored {
		t = t.MirrorHorizontal(kind)
	}
	return t.RotateCW(kind, index(kind, d.Rotation))
}
