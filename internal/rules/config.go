// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules

import (
	"fmt"
	"sort"

	"github.com/stratecide/tactics-core/internal/numbermod"
)

// Config is the immutable bundle of type tables an Environment holds:
// unit/terrain/movement types, commander/hero definitions, base
// damage, and the unit_power_configs stack.
type Config struct {
	UnitTypes     map[int]UnitType
	TerrainTypes  map[int]TerrainType
	MovementTypes map[int]MovementType
	Commanders    map[int]CommanderType
	Heroes        map[int]HeroType

	baseDamage map[[2]int]numbermod.Fraction
	powerConfigs []UnitPowerConfig
}

// New returns an empty Config; loaders populate it via the CSV table
// readers in csv.go.
func New() *Config {
	return &Config{
		UnitTypes:     map[int]UnitType{},
		TerrainTypes:  map[int]TerrainType{},
		MovementTypes: map[int]MovementType{},
		Commanders:    map[int]CommanderType{},
		Heroes:        map[int]HeroType{},
		baseDamage:    map[[2]int]numbermod.Fraction{},
	}
}

// SetBaseDamage records the base damage attacker type deals to
// defender type before any modifiers.
func (c *Config) SetBaseDamage(attackerType, defenderType int, dmg numbermod.Fraction) {
	c.baseDamage[[2]int{attackerType, defenderType}] = dmg
}

// BaseDamage returns the configured base damage, or zero if
// unconfigured (an attacker with no table entry against a defender
// type deals no damage).
func (c *Config) BaseDamage(attackerType, defenderType int) numbermod.Fraction {
	return c.baseDamage[[2]int{attackerType, defenderType}]
}

// MovementCost returns the cost for movementType to enter terrainType,
// and whether that terrain is legal for the movement type at all.
func (c *Config) MovementCost(movementType, terrainType int) (numbermod.Fraction, bool) {
	mt, ok := c.MovementTypes[movementType]
	if !ok {
		return numbermod.Fraction{}, false
	}
	cost, ok := mt.CostByTerrain[terrainType]
	return cost, ok
}

// AddUnitPowerConfig appends a row to the unit_power_configs table.
// Rows keep insertion order within a layer; UnitPowerConfigs sorts by
// layer only, so authoring order inside a layer is preserved — this
// is the stable order spec.md §4.7 requires.
func (c *Config) AddUnitPowerConfig(row UnitPowerConfig) {
	c.powerConfigs = append(c.powerConfigs, row)
}

// UnitPowerConfigs returns, in stable order (global defaults, then
// commander-neutral, then commander-power), every row matching args
// and metric for the given active commander/power.
func (c *Config) UnitPowerConfigs(metric string, activeCommanderID, activePowerIndex int, args UnitPowerFilterArgs) []UnitPowerConfig {
	var out []UnitPowerConfig
	for _, layer := range []UnitPowerLayer_e{LayerDefault, LayerCommanderNeutral, LayerCommanderPower} {
		for _, row := range c.powerConfigs {
			if row.Layer != layer || row.Metric != metric {
				continue
			}
			switch layer {
			case LayerCommanderNeutral:
				if row.CommanderID != activeCommanderID {
					continue
				}
			case LayerCommanderPower:
				if row.CommanderID != activeCommanderID || row.PowerIndex != activePowerIndex {
					continue
				}
			}
			if !row.Filter.Match(args) {
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

// sortedUnitTypeIDs returns every configured unit type id in order,
// used by deterministic config dumps and tests.
func (c *Config) sortedUnitTypeIDs() []int {
	ids := make([]int, 0, len(c.UnitTypes))
	for id := range c.UnitTypes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks that the movement type id declared by each unit row
// actually exists, per spec.md §7's "unknown enum member" config
// error class. No other cross-reference is checked.
func (c *Config) Validate() error {
	for _, id := range c.sortedUnitTypeIDs() {
		ut := c.UnitTypes[id]
		if _, ok := c.MovementTypes[ut.MovementTypeID]; !ok {
			return fmt.Errorf("unit type %d (%s): unknown movement type %d", ut.ID, ut.Name, ut.MovementTypeID)
		}
	}
	return nil
}
