// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Splash resolves pattern into the set of points it spreads to from
// center, each mapped to the splash layer (distance from center) it
// was first reached at — the R+1 layers of spec.md §4.3.3, layer 0
// being center itself. When a point is reachable via more than one
// spreading direction its shortest layer wins, matching the BFS
// dedup RangeInLayers already performs for the attack pattern itself.
func Splash(view board.BoardView, pattern rules.SplashPattern, center topology.Point, attackerFacing topology.Direction_e, attacker board.Unit, scripts PatternScripter) map[topology.Point]int {
	out := map[topology.Point]int{center: 0}
	if pattern.Points == rules.SplashInheritPattern {
		return out
	}
	min, max := pattern.Min, pattern.Max
	if max <= 0 {
		return out
	}

	switch pattern.Points {
	case rules.SplashStraight:
		for _, d := range splashDirections(view.Wrapping().Points.Kind, pattern, attackerFacing, attacker) {
			mergeLayers(out, straightTargets(view, center, d, min, max))
		}
	case rules.SplashTriangleDiagonal:
		mergePointLayers(out, topology.RangeInLayers(view.Wrapping(), center, max), min)
	case rules.SplashTriangleStraight:
		mergePointLayers(out, topology.CannonRangeInLayers(view.Wrapping(), center, max), min)
	case rules.SplashScripted:
		if scripts == nil {
			return out
		}
		res, err := scripts.EnumeratePattern(pattern.Script, view, center, attackerFacing, max)
		if err != nil {
			return out
		}
		mergeLayers(out, res)
	}
	return out
}

// splashDirections resolves SplashDirectionsKind_e into the concrete
// headings a SplashStraight pattern spreads along: the attacker's own
// attack-input facing, every direction of the grid, or a single
// direction read off one of the attacker's tags (AttributeTagID).
func splashDirections(kind topology.Kind_e, pattern rules.SplashPattern, facing topology.Direction_e, attacker board.Unit) []topology.Direction_e {
	switch pattern.Directions {
	case rules.SplashAllDirections:
		return topology.Directions(kind)
	case rules.SplashUnitAttribute:
		v, ok := attacker.Tags.Get(tagbag.TagId(pattern.AttributeTagID))
		if !ok {
			return nil
		}
		d, ok := v.(tagbag.DirectionTag)
		if !ok {
			return nil
		}
		return []topology.Direction_e{d.D}
	default:
		return []topology.Direction_e{facing}
	}
}

func mergeLayers(out map[topology.Point]int, layers map[int][]topology.OrientedPoint) {
	for layer, ops := range layers {
		for _, op := range ops {
			if existing, seen := out[op.Point]; !seen || layer < existing {
				out[op.Point] = layer
			}
		}
	}
}

func mergePointLayers(out map[topology.Point]int, layers map[topology.Point]int, min int) {
	for p, l := range layers {
		if l < min || l == 0 {
			continue
		}
		if existing, seen := out[p]; !seen || l < existing {
			out[p] = l
		}
	}
}
