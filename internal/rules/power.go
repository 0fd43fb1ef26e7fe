// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules

import "github.com/stratecide/tactics-core/internal/numbermod"

// Power is one entry in a CommanderType's or HeroType's ordered power
// list, per spec.md §4.7.
type Power struct {
	Name               string
	UsableFromPowerSet []int
	AutoNextPower      bool
	RequiredCharge     int
	OptionalScript     string
	PreventsCharging   bool
}

// CanActivate reports whether the activation predicate holds:
// charge >= required, current power is in the usable set, and — for
// an automatic power — the candidate index is the designated next
// power.
func (p Power) CanActivate(charge, currentPower, candidateIndex, nextPower int) bool {
	if charge < p.RequiredCharge {
		return false
	}
	if !p.usableFrom(currentPower) {
		return false
	}
	if p.AutoNextPower && candidateIndex != nextPower {
		return false
	}
	return true
}

func (p Power) usableFrom(current int) bool {
	if len(p.UsableFromPowerSet) == 0 {
		return true
	}
	for _, v := range p.UsableFromPowerSet {
		if v == current {
			return true
		}
	}
	return false
}

// CommanderType is a row of the commander config table.
type CommanderType struct {
	ID       int
	Name     string
	MaxCharge int
	Powers   []Power
}

// HeroType is a row of the hero config table.
type HeroType struct {
	ID        int
	Name      string
	MaxCharge int
	AuraRange int
	Powers    []Power
}

// UnitPowerLayer_e names which of the three stable layers a
// UnitPowerConfig entry belongs to, per spec.md §4.7: global default,
// commander-neutral (applies regardless of active power), or a
// specific commander power.
type UnitPowerLayer_e int

const (
	LayerDefault UnitPowerLayer_e = iota
	LayerCommanderNeutral
	LayerCommanderPower
)

// UnitPowerFilterArgs is the context a UnitPowerConfig's filter is
// evaluated against, per spec.md §4.7.
type UnitPowerFilterArgs struct {
	UnitTypeID    int
	OwnerID       int
	IsCounter     bool
	HasAnyTag     map[int]bool
}

// UnitPowerFilter is a native (non-scripted) predicate over
// UnitPowerFilterArgs. Match checks UnitTypeIDs and IsCounter, and
// both must match when set; the CommanderID and PowerIndex fields are
// not consulted. A zero value (all fields empty) matches everything.
type UnitPowerFilter struct {
	UnitTypeIDs []int
	CommanderID int
	PowerIndex  int
	IsCounter   *bool
}

// Match reports whether args satisfies f.
func (f UnitPowerFilter) Match(args UnitPowerFilterArgs) bool {
	if len(f.UnitTypeIDs) > 0 {
		found := false
		for _, id := range f.UnitTypeIDs {
			if id == args.UnitTypeID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.IsCounter != nil && *f.IsCounter != args.IsCounter {
		return false
	}
	return true
}

// UnitPowerConfig is one row contributing a NumberMod to a named
// scalar query (cost, vision, damage multiplier, range, displacement
// distance, splash ratio), per spec.md §4.8. Every metric folds
// through Fraction so the same row shape serves integer- and
// rational-valued queries alike.
type UnitPowerConfig struct {
	Layer       UnitPowerLayer_e
	CommanderID int
	PowerIndex  int
	Metric      string
	Filter      UnitPowerFilter
	Mod         numbermod.NumberModF
}
