// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/events"
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Combatant snapshots the unit side of an attack or counter: where it
// stands, what it is, and which commander/power context its
// UnitPowerConfig lookups should run under.
type Combatant struct {
	Point             topology.Point
	Unit              board.Unit
	ActiveCommanderID int
	ActivePowerIndex  int
}

// AttackResult reports what an attack actually did, for the caller to
// react to without re-deriving it from the event log.
type AttackResult struct {
	PrimaryDamage  int
	SplashDamage   map[topology.Point]int
	CounterDamage  int
	DefenderKilled bool
	AttackerKilled bool
	Displaced      topology.Point
	DidDisplace    bool
	Countered      bool
}

// Resolve implements spec.md §4.3's full attack pipeline: target
// validation against the attacker's pattern and TargetPolicy,
// displacement at whichever point in the sequence the unit type
// declares, primary and splash damage, a single non-recursive counter,
// and commander/hero charge accounting. It mutates exclusively through
// h and never holds onto view beyond the call; view should be backed
// by h.Board() itself so that mid-resolution reads (splash, counter,
// aura) see each prior step's mutations.
func Resolve(h *events.Handler, cfg *rules.Config, view board.BoardView, attacker, defender Combatant, facing topology.Direction_e, maxChargeByOwner map[int]int, scripts PatternScripter) (AttackResult, error) {
	var result AttackResult

	ut, ok := cfg.UnitTypes[attacker.Unit.TypeID]
	if !ok || ut.AttackPattern.Kind == rules.PatternNone {
		return result, ErrNoTarget
	}
	layers, err := EnumeratePattern(view, ut.AttackPattern, attacker.Point, facing, scripts)
	if err != nil {
		return result, err
	}
	if !InRange(layers, defender.Point) {
		return result, ErrTargetNotInRange
	}
	if !PolicyAllows(ut.TargetPolicy, ownerOf(attacker.Unit.Tags), ownerOf(defender.Unit.Tags)) {
		return result, ErrTargetPolicy
	}

	attackerTile, _ := view.Terrain(attacker.Point)
	defenderTile, _ := view.Terrain(defender.Point)
	attackerTerrain := cfg.TerrainTypes[attackerTile.TypeID]
	defenderTerrain := cfg.TerrainTypes[defenderTile.TypeID]
	distance := DisplacementDistance(cfg, attacker, 1, false)

	displace := func() {
		if ut.Displacement == rules.DisplaceNone || Undisplaceable(defender.Unit, rules.FlagUndisplaceable) {
			return
		}
		landed, blocked := Displace(h, cfg, defender.Point, facing, distance)
		result.DidDisplace = !blocked && landed != defender.Point
		result.Displaced = landed
		defender.Point = landed
	}

	if ut.Displacement == rules.DisplaceInsteadOfAttack {
		displace()
		return result, nil
	}
	if ut.Displacement == rules.DisplaceBeforeAttack {
		displace()
	}

	defenderHP := hpOf(defender.Unit.Tags)
	dmg := Damage(cfg, attacker, defender, attackerTerrain, defenderTerrain, false)
	if dmg > 0 {
		h.MassDamage(map[topology.Point]int{defender.Point: dmg}, rules.TagHP)
	}
	result.PrimaryDamage = dmg
	result.DefenderKilled = dmg >= defenderHP
	if u, ok := view.Unit(defender.Point); ok {
		defender.Unit = u
	}

	if splashHits := Splash(view, ut.Splash, defender.Point, facing, attacker.Unit, scripts); len(splashHits) > 1 {
		result.SplashDamage = map[topology.Point]int{}
		hits := map[topology.Point]int{}
		for p, layer := range splashHits {
			if p == defender.Point {
				continue
			}
			victim, ok := view.Unit(p)
			if !ok {
				continue
			}
			ratio := SplashRatio(cfg, attacker, layer, false)
			sd := int(ratio.Mul(numbermod.Int(int64(dmg))).Ceil())
			if sd <= 0 {
				continue
			}
			if victimHP := hpOf(victim.Tags); sd > victimHP {
				sd = victimHP
			}
			hits[p] = sd
			result.SplashDamage[p] = sd
		}
		if len(hits) > 0 {
			h.MassDamage(hits, rules.TagHP)
		}
	}

	if ut.Displacement == rules.DisplaceBetweenAttacks {
		displace()
	}

	if !result.DefenderKilled && RealCounter(cfg, view, defender, defender.Point, attacker.Point, scripts) {
		attackerHP := hpOf(attacker.Unit.Tags)
		counterDmg := Damage(cfg, defender, attacker, defenderTerrain, attackerTerrain, true)
		if counterDmg > 0 {
			h.MassDamage(map[topology.Point]int{attacker.Point: counterDmg}, rules.TagHP)
		}
		result.Countered = true
		result.CounterDamage = counterDmg
		result.AttackerKilled = counterDmg >= attackerHP
		if u, ok := view.Unit(attacker.Point); ok {
			attacker.Unit = u
		}
		ApplyCommanderCharge(h, cfg, defender, attacker, counterDmg, true, maxChargeByOwner)
		ApplyHeroCharge(h, cfg, view, defender.Point, counterDmg)
		ApplyHeroCharge(h, cfg, view, attacker.Point, counterDmg)
	}

	if ut.Displacement == rules.DisplaceAfterCounter {
		displace()
	}

	ApplyCommanderCharge(h, cfg, attacker, defender, dmg, false, maxChargeByOwner)
	ApplyHeroCharge(h, cfg, view, attacker.Point, dmg)
	ApplyHeroCharge(h, cfg, view, defender.Point, dmg)

	return result, nil
}
