// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"github.com/stratecide/tactics-core/internal/environment"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Map is the concrete, mutable board: terrain and details cover every
// point; units and tokens are sparse. Map carries no notion of
// players or turns; this module has no layer that adds
// player/fog/command state over it.
type Map struct {
	env *environment.Environment
	wm  *topology.WrappingMap

	terrain map[topology.Point]Terrain
	details map[topology.Point][]Detail
	units   map[topology.Point]Unit
	tokens  map[topology.Point][]Token
}

// NewMap builds an empty Map over wm. Every point of wm.Points starts
// with no terrain entry; callers must set terrain for every point
// before treating the map as playable (spec.md's boards have no
// "void" tile kind).
func NewMap(env *environment.Environment, wm *topology.WrappingMap) *Map {
	return &Map{
		env:     env,
		wm:      wm,
		terrain: make(map[topology.Point]Terrain),
		details: make(map[topology.Point][]Detail),
		units:   make(map[topology.Point]Unit),
		tokens:  make(map[topology.Point][]Token),
	}
}

func (m *Map) Wrapping() *topology.WrappingMap { return m.wm }

func (m *Map) Points() []topology.Point { return m.wm.Points.Points() }

func (m *Map) Terrain(p topology.Point) (Terrain, bool) {
	t, ok := m.terrain[p]
	return t, ok
}

func (m *Map) Unit(p topology.Point) (Unit, bool) {
	u, ok := m.units[p]
	return u, ok
}

func (m *Map) Tokens(p topology.Point) []Token {
	return append([]Token(nil), m.tokens[p]...)
}

func (m *Map) Details(p topology.Point) []Detail {
	return append([]Detail(nil), m.details[p]...)
}

// SetTerrain replaces the terrain entity (and its detail stack) at p.
func (m *Map) SetTerrain(p topology.Point, t Terrain) {
	m.terrain[p] = t
	m.details[p] = t.Details
}

// SetDetails normalizes details and stores them at p, keeping the
// terrain entry's own Details field in sync.
func (m *Map) SetDetails(p topology.Point, details []Detail) {
	normalized := Normalize(details, m.env)
	m.details[p] = normalized
	if t, ok := m.terrain[p]; ok {
		t.Details = normalized
		m.terrain[p] = t
	}
}

// PlaceUnit sets (or replaces) the unit at p.
func (m *Map) PlaceUnit(p topology.Point, u Unit) {
	m.units[p] = u
}

// RemoveUnit clears the unit at p, if any.
func (m *Map) RemoveUnit(p topology.Point) {
	delete(m.units, p)
}

// AddToken appends a token at p.
func (m *Map) AddToken(p topology.Point, tok Token) {
	m.tokens[p] = append(m.tokens[p], tok)
}

// Clone returns a deep copy of m over the same WrappingMap and
// Environment, used by the replay contract (spec.md §8) to re-derive
// a game's state from its initial snapshot plus its event log without
// disturbing the live board.
func (m *Map) Clone() *Map {
	out := NewMap(m.env, m.wm)
	for p, t := range m.terrain {
		out.terrain[p] = t
	}
	for p, ds := range m.details {
		out.details[p] = append([]Detail(nil), ds...)
	}
	for p, u := range m.units {
		out.units[p] = u
	}
	for p, toks := range m.tokens {
		out.tokens[p] = append([]Token(nil), toks...)
	}
	return out
}

// PipeAt implements topology.PipeLookup directly against the Map's
// own detail stacks, so get_neighbor/get_line can be called as
// topology.GetNeighborWithPipes(m.Wrapping(), m, p, d).
func (m *Map) PipeAt(p topology.Point) (topology.Pipe, bool) {
	for _, d := range m.details[p] {
		if d.Kind == rules.DetailPipe {
			return d.Directions, true
		}
	}
	return topology.Pipe{}, false
}
