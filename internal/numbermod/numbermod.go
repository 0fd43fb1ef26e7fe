// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package numbermod

import "encoding/json"

// Kind_e selects how a NumberMod combines with the running value.
type Kind_e int

const (
	Keep Kind_e = iota
	Replace
	Add
	Mul
)

var (
	kindToString = map[Kind_e]string{
		Keep:    "Keep",
		Replace: "Replace",
		Add:     "Add",
		Mul:     "Mul",
	}
	stringToKind = map[string]Kind_e{
		"Keep":    Keep,
		"Replace": Replace,
		"Add":     Add,
		"Mul":     Mul,
	}
)

// String implements the fmt.Stringer interface.
func (k Kind_e) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "Unknown"
}

// Number is the set of built-in numeric kinds a NumberMod can carry.
// The engine's config-driven metrics (damage, movement cost, splash
// ratio, displacement distance) fold through Fraction instead (see
// NumberModF in fraction.go).
type Number interface {
	~int | ~int64
}

// NumberMod[T] is one layer of a scalar modifier stack: Keep leaves
// the running value unchanged, Replace overrides it, Add/Mul combine
// with it. Folding a sequence from a base value is how every
// per-unit scalar query in the engine (cost, vision, damage
// multiplier, range, displacement distance) is computed.
type NumberMod[T Number] struct {
	Kind  Kind_e
	Value T
}

// MarshalJSON implements the json.Marshaler interface.
func (m NumberMod[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value T      `json:"value"`
	}{Kind: m.Kind.String(), Value: m.Value})
}

// Fold applies mods, in order, starting from base.
func Fold[T Number](base T, mods []NumberMod[T]) T {
	v := base
	for _, m := range mods {
		switch m.Kind {
		case Keep:
			// no-op
		case Replace:
			v = m.Value
		case Add:
			v += m.Value
		case Mul:
			v *= m.Value
		}
	}
	return v
}
