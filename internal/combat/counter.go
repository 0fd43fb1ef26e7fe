// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/movement"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// PolicyAllows applies a TargetPolicy_e against an actor/target owner
// pair. Friendly and Owned both resolve to "same owner" in the absence
// of a multi-player-team concept further up the stack; a game with
// teams narrows Friendly at the command-validation layer instead of
// here.
func PolicyAllows(policy rules.TargetPolicy_e, actorOwner, targetOwner int) bool {
	switch policy {
	case rules.Enemy:
		return targetOwner != actorOwner
	case rules.Friendly, rules.Owned:
		return targetOwner == actorOwner
	case rules.All:
		return true
	default:
		return false
	}
}

// RealCounter implements spec.md §4.3.6: a defender counters back only
// if it survived the primary attack, its own unit type actually has an
// attack pattern, that pattern can reach attackerAt from defenderAt in
// at least one of the defender's allowed facings, and the attacker
// satisfies the defender's own TargetPolicy. There is never a
// re-counter: callers resolve a counter exactly once and never call
// RealCounter against its result.
func RealCounter(cfg *rules.Config, view board.BoardView, defender Combatant, defenderAt, attackerAt topology.Point, scripts PatternScripter) bool {
	if hpOf(defender.Unit.Tags) <= 0 {
		return false
	}
	ut, ok := cfg.UnitTypes[defender.Unit.TypeID]
	if !ok || ut.AttackPattern.Kind == rules.PatternNone {
		return false
	}
	attacker, ok := view.Unit(attackerAt)
	if !ok || !PolicyAllows(ut.TargetPolicy, ownerOf(defender.Unit.Tags), ownerOf(attacker.Tags)) {
		return false
	}

	kind := view.Wrapping().Points.Kind
	for _, facing := range AllowedFacings(kind, ut.InputDirections, defender.Unit, movement.Ballast{}) {
		layers, err := EnumeratePattern(view, ut.AttackPattern, defenderAt, facing, scripts)
		if err != nil {
			continue
		}
		if InRange(layers, attackerAt) {
			return true
		}
	}
	return false
}
