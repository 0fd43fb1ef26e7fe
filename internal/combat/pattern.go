// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package combat implements spec.md §4.3: attack-pattern target
// enumeration, splash, damage, displacement, counter-attacks and the
// commander/hero charge accounting a resolved attack produces. It
// reads board.BoardView and rules.Config and mutates exclusively
// through an *events.Handler, so it never holds a board reference of
// its own.
package combat

import (
	"sort"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Error implements the cerrs constant-error idiom.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoTarget        = Error("combat: no target at the chosen point")
	ErrTargetNotInRange = Error("combat: chosen point is outside the attacker's pattern")
	ErrTargetPolicy    = Error("combat: target fails the attacker's target policy")
)

// PatternScripter evaluates a PatternScripted attack or splash shape.
// Combat never imports the scripting bridge directly (to keep the
// import graph acyclic the way rules/combat already is); the caller
// supplies the implementation. This module contains none.
type PatternScripter interface {
	EnumeratePattern(ref string, view board.BoardView, origin topology.Point, facing topology.Direction_e, max int) (map[int][]topology.OrientedPoint, error)
}

// EnumeratePattern resolves pattern into the set of oriented points it
// reaches from origin facing facing, keyed by distance layer: layer 1
// is the nearest ring a pattern of Min<=1 can hit, up to pattern's
// clamped Max. Adjacent patterns return a single-entry layer-1 map.
func EnumeratePattern(view board.BoardView, pattern rules.AttackPattern, origin topology.Point, facing topology.Direction_e, scripts PatternScripter) (map[int][]topology.OrientedPoint, error) {
	min, max := pattern.Clamped()
	if pattern.Kind != rules.PatternAdjacent && min > max {
		return nil, nil
	}

	switch pattern.Kind {
	case rules.PatternNone:
		return nil, nil

	case rules.PatternAdjacent:
		dest, dist, ok, err := topology.GetNeighborWithPipes(view.Wrapping(), board.ViewPipeLookup{View: view}, origin, facing)
		if err != nil || !ok {
			return nil, nil
		}
		return map[int][]topology.OrientedPoint{1: {{Point: dest, Dir: dist.UpdateDirection(view.Wrapping().Points.Kind, facing)}}}, nil

	case rules.PatternStraight:
		return straightTargets(view, origin, facing, min, max), nil

	case rules.PatternTriangleDiagonal:
		return layeredTargets(view.Wrapping(), origin, facing, min, max, topology.RangeInLayers), nil

	case rules.PatternTriangleStraight:
		return layeredTargets(view.Wrapping(), origin, facing, min, max, topology.CannonRangeInLayers), nil

	case rules.PatternScripted:
		if scripts == nil {
			return nil, nil
		}
		return scripts.EnumeratePattern(pattern.Script, view, origin, facing, max)

	default:
		return nil, nil
	}
}

// straightTargets walks topology.GetLine out to max steps. A unit
// occupying a tile within [1,min-1] (before the window even opens)
// cancels the whole pattern: nothing beyond it can be a legal target.
// A unit occupying a tile within [min,max] is itself included, then
// blocks everything past it.
func straightTargets(view board.BoardView, origin topology.Point, facing topology.Direction_e, min, max int) map[int][]topology.OrientedPoint {
	line := topology.GetLine(view.Wrapping(), board.ViewPipeLookup{View: view}, origin, facing, max+1, topology.FollowPipes)
	for i := 1; i < min && i < len(line); i++ {
		if _, ok := view.Unit(line[i].Point); ok {
			return nil
		}
	}
	out := map[int][]topology.OrientedPoint{}
	for i := min; i <= max && i < len(line); i++ {
		out[i] = []topology.OrientedPoint{line[i]}
		if _, ok := view.Unit(line[i].Point); ok {
			break
		}
	}
	return out
}

// rangeFunc is the shape shared by topology.RangeInLayers and
// topology.CannonRangeInLayers, letting layeredTargets drive either.
type rangeFunc func(wm *topology.WrappingMap, c topology.Point, r int) map[topology.Point]int

// layeredTargets converts a BFS layer map into the distance-keyed,
// deterministically ordered oriented-point layers EnumeratePattern
// returns, skipping the center and anything below min.
func layeredTargets(wm *topology.WrappingMap, origin topology.Point, facing topology.Direction_e, min, max int, rf rangeFunc) map[int][]topology.OrientedPoint {
	layers := rf(wm, origin, max)
	byLayer := map[int][]topology.Point{}
	for p, l := range layers {
		if l < min || l == 0 {
			continue
		}
		byLayer[l] = append(byLayer[l], p)
	}
	out := map[int][]topology.OrientedPoint{}
	for l, pts := range byLayer {
		sort.Slice(pts, func(i, j int) bool {
			if pts[i].X != pts[j].X {
				return pts[i].X < pts[j].X
			}
			return pts[i].Y < pts[j].Y
		})
		ops := make([]topology.OrientedPoint, len(pts))
		for i, p := range pts {
			ops[i] = topology.OrientedPoint{Point: p, Dir: facing}
		}
		out[l] = ops
	}
	return out
}

// InRange reports whether target appears anywhere in layers, the
// check a command validator runs before accepting an attack's
// declared target point.
func InRange(layers map[int][]topology.OrientedPoint, target topology.Point) bool {
	for _, ops := range layers {
		for _, op := range ops {
			if op.Point == target {
				return true
			}
		}
	}
	return false
}
