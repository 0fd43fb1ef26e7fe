// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package combat

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/events"
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

const (
	// heroParticipantCharge is granted to a hero's own unit when it
	// deals or receives nonzero damage during combat (spec.md §4.3.7's
	// "hero aura +3").
	heroParticipantCharge = 3
	// heroAllyCharge is granted to every other allied unit standing
	// within the hero's configured aura range (the "+1" half of the
	// same rule).
	heroAllyCharge = 1
)

// chargeValue folds a combatant's "charge_value" UnitPowerConfig
// stack starting from a base of 100 (percent), the config-declared
// rate spec.md §4.3.7 describes as "proportional to damage * value /
// 100".
func chargeValue(cfg *rules.Config, c Combatant, isCounter bool) numbermod.Fraction {
	args := rules.UnitPowerFilterArgs{UnitTypeID: c.Unit.TypeID, OwnerID: ownerOf(c.Unit.Tags), IsCounter: isCounter}
	mods := cfg.UnitPowerConfigs("charge_value", c.ActiveCommanderID, c.ActivePowerIndex, args)
	return numbermod.FoldFraction(numbermod.Int(100), toNumberModF(mods))
}

func commanderChargeFromDamage(damage int, value numbermod.Fraction) int {
	f := numbermod.Int(int64(damage)).Mul(value).Div(numbermod.Int(100))
	n := int(f.Ceil())
	if n < 0 {
		n = 0
	}
	return n
}

// ApplyCommanderCharge grants attacker and defender commander charge
// proportional to damage dealt, halved for the attacker (spec.md
// §4.3.7), unless a combatant's FlagChargeDisabled is set. maxByOwner
// supplies each owner's commander's MaxCharge ceiling.
func ApplyCommanderCharge(h *events.Handler, cfg *rules.Config, attacker, defender Combatant, damage int, isCounter bool, maxByOwner map[int]int) {
	if damage <= 0 {
		return
	}
	if !attacker.Unit.Tags.HasFlag(rules.FlagChargeDisabled) {
		gain := commanderChargeFromDamage(damage, chargeValue(cfg, attacker, isCounter)) / 2
		h.AddCommanderCharge(ownerOf(attacker.Unit.Tags), gain, maxByOwner[ownerOf(attacker.Unit.Tags)])
	}
	if !defender.Unit.Tags.HasFlag(rules.FlagChargeDisabled) {
		gain := commanderChargeFromDamage(damage, chargeValue(cfg, defender, isCounter))
		h.AddCommanderCharge(ownerOf(defender.Unit.Tags), gain, maxByOwner[ownerOf(defender.Unit.Tags)])
	}
}

// heroTypeOf resolves the HeroType a unit embodies, if its
// rules.TagHeroID tag (a BoundedInt carrying the hero type's config
// id) is present.
func heroTypeOf(cfg *rules.Config, u tagbag.TagBag) (rules.HeroType, bool) {
	v, ok := u.Get(rules.TagHeroID)
	if !ok {
		return rules.HeroType{}, false
	}
	id, ok := v.(tagbag.BoundedInt)
	if !ok {
		return rules.HeroType{}, false
	}
	ht, ok := cfg.Heroes[id.Value]
	return ht, ok
}

// addHeroCharge adds delta to a unit's TagHeroCharge, clamped to that
// tag's own configured bounds (set when the unit was created).
func addHeroCharge(h *events.Handler, p topology.Point, delta int) {
	h.AddHeroCharge(p, rules.TagHeroCharge, delta)
}

// ApplyHeroCharge grants a participating hero's own unit
// heroParticipantCharge, and every other allied unit within its aura
// range heroAllyCharge, whenever the hero dealt or received nonzero
// damage this attack.
func ApplyHeroCharge(h *events.Handler, cfg *rules.Config, view board.BoardView, at topology.Point, damage int) {
	if damage <= 0 {
		return
	}
	u, ok := view.Unit(at)
	if !ok {
		return
	}
	ht, ok := heroTypeOf(cfg, u.Tags)
	if !ok {
		return
	}
	addHeroCharge(h, at, heroParticipantCharge)

	owner := ownerOf(u.Tags)
	layers := topology.RangeInLayers(view.Wrapping(), at, ht.AuraRange)
	for p, layer := range layers {
		if p == at || layer == 0 {
			continue
		}
		ally, ok := view.Unit(p)
		if !ok || ownerOf(ally.Tags) != owner {
			continue
		}
		addHeroCharge(h, p, heroAllyCharge)
	}
}
