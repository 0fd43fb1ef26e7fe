// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
)

// hpOf reads the current value of the hp BoundedInt tag.
func hpOf(tags tagbag.TagBag) int {
	v, ok := tags.Get(rules.TagHP)
	if !ok {
		return 0
	}
	hp, ok := v.(tagbag.BoundedInt)
	if !ok {
		return 0
	}
	return hp.Value
}

// hpMaxOf reads the configured ceiling of the hp BoundedInt tag (its
// Max bound), which doubles as the unit's maximum hp.
func hpMaxOf(tags tagbag.TagBag) int {
	v, ok := tags.Get(rules.TagHP)
	if !ok {
		return 0
	}
	hp, ok := v.(tagbag.BoundedInt)
	if !ok {
		return 0
	}
	return hp.Max
}

func ownerOf(tags tagbag.TagBag) int {
	v, ok := tags.Get(rules.TagOwner)
	if !ok {
		return -1
	}
	o, ok := v.(tagbag.BoundedInt)
	if !ok {
		return -1
	}
	return o.Value
}

func toNumberModF(rows []rules.UnitPowerConfig) []numbermod.NumberModF {
	out := make([]numbermod.NumberModF, len(rows))
	for i, r := range rows {
		out[i] = r.Mod
	}
	return out
}

// Damage computes spec.md §4.3.4's formula: ceil(base * attack *
// hp_factor / defense), clamped to [0, defender's current hp]. attack
// and defense each fold a UnitPowerConfig "attack"/"defense" stack
// starting from 1, then add the acting unit's terrain attack/defense
// bonus; hp_factor is the attacker's current hp over its maximum.
func Damage(cfg *rules.Config, attacker, defender Combatant, attackerTerrain, defenderTerrain rules.TerrainType, isCounter bool) int {
	base := cfg.BaseDamage(attacker.Unit.TypeID, defender.Unit.TypeID)
	if base.Cmp(numbermod.Int(0)) == 0 {
		return 0
	}

	hp := hpOf(attacker.Unit.Tags)
	maxHP := hpMaxOf(attacker.Unit.Tags)
	if maxHP <= 0 {
		return 0
	}
	hpFactor := numbermod.NewFraction(int64(hp), int64(maxHP))

	attackArgs := rules.UnitPowerFilterArgs{UnitTypeID: attacker.Unit.TypeID, OwnerID: ownerOf(attacker.Unit.Tags), IsCounter: isCounter}
	attackMods := cfg.UnitPowerConfigs("attack", attacker.ActiveCommanderID, attacker.ActivePowerIndex, attackArgs)
	attack := numbermod.FoldFraction(numbermod.Int(1), toNumberModF(attackMods)).Add(attackerTerrain.AttackBonus)

	defenseArgs := rules.UnitPowerFilterArgs{UnitTypeID: defender.Unit.TypeID, OwnerID: ownerOf(defender.Unit.Tags), IsCounter: isCounter}
	defenseMods := cfg.UnitPowerConfigs("defense", defender.ActiveCommanderID, defender.ActivePowerIndex, defenseArgs)
	defense := numbermod.FoldFraction(numbermod.Int(1), toNumberModF(defenseMods)).Add(defenderTerrain.DefenseBonus)
	if defense.Cmp(numbermod.Int(0)) <= 0 {
		defense = numbermod.Int(1)
	}

	raw := base.Mul(attack).Mul(hpFactor).Div(defense)
	dmg := int(raw.Ceil())
	if dmg < 0 {
		dmg = 0
	}
	if defHP := hpOf(defender.Unit.Tags); dmg > defHP {
		dmg = defHP
	}
	return dmg
}

// SplashRatio folds a SplashPattern's configured "splash_ratio"
// UnitPowerConfig stack against layer, the BFS/line distance a splash
// target sits at from the primary impact point. The base the stack
// folds onto is 1 (full damage) at layer 0 and 1/(layer+1) beyond it.
func SplashRatio(cfg *rules.Config, attacker Combatant, layer int, isCounter bool) numbermod.Fraction {
	args := rules.UnitPowerFilterArgs{UnitTypeID: attacker.Unit.TypeID, OwnerID: ownerOf(attacker.Unit.Tags), IsCounter: isCounter}
	mods := cfg.UnitPowerConfigs("splash_ratio", attacker.ActiveCommanderID, attacker.ActivePowerIndex, args)
	base := numbermod.Int(1)
	if layer > 0 {
		base = numbermod.NewFraction(1, int64(layer+1))
	}
	return numbermod.FoldFraction(base, toNumberModF(mods))
}
