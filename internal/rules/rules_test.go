// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules_test

import (
	"strings"
	"testing"

	"github.com/stratecide/tactics-core/internal/rules"
)

func TestLoadUnitTypes(t *testing.T) {
	csv := "Id,Name,MovementType,MovementPoints,AttackPattern,AttackMin,AttackMax,Displacement,TargetPolicy\n" +
		"1,Bazooka,1,+6,Straight,1,1,None,Enemy\n" +
		"2,Sniper,1,+5,Adjacent,,,,Enemy\n"
	cfg := rules.New()
	if err := cfg.LoadUnitTypes(strings.NewReader(csv)); err != nil {
		t.Fatalf("LoadUnitTypes: %v", err)
	}
	bazooka := cfg.UnitTypes[1]
	if bazooka.Name != "Bazooka" {
		t.Fatalf("got name %q", bazooka.Name)
	}
	if bazooka.BaseMovementPoints.Ceil() != 6 {
		t.Fatalf("got movement points %v, want 6", bazooka.BaseMovementPoints)
	}
	if bazooka.AttackPattern.Kind != rules.PatternStraight {
		t.Fatalf("got pattern %v", bazooka.AttackPattern.Kind)
	}
}

func TestLoadMovementCosts(t *testing.T) {
	csv := "MovementType,1,2\n1,+1,+3\n"
	cfg := rules.New()
	if err := cfg.LoadMovementCosts(strings.NewReader(csv)); err != nil {
		t.Fatalf("LoadMovementCosts: %v", err)
	}
	cost, ok := cfg.MovementCost(1, 1)
	if !ok {
		t.Fatalf("expected terrain 1 to be legal for movement type 1")
	}
	if cost.Ceil() != 1 {
		t.Fatalf("got cost %v, want 1", cost)
	}
	if _, ok := cfg.MovementCost(1, 3); ok {
		t.Fatalf("expected terrain 3 to be unconfigured for movement type 1")
	}
}

func TestUnitPowerConfigsStableOrder(t *testing.T) {
	cfg := rules.New()
	cfg.AddUnitPowerConfig(rules.UnitPowerConfig{Layer: rules.LayerCommanderPower, CommanderID: 1, PowerIndex: 0, Metric: "damage"})
	cfg.AddUnitPowerConfig(rules.UnitPowerConfig{Layer: rules.LayerDefault, Metric: "damage"})
	cfg.AddUnitPowerConfig(rules.UnitPowerConfig{Layer: rules.LayerCommanderNeutral, CommanderID: 1, Metric: "damage"})

	got := cfg.UnitPowerConfigs("damage", 1, 0, rules.UnitPowerFilterArgs{})
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	if got[0].Layer != rules.LayerDefault || got[1].Layer != rules.LayerCommanderNeutral || got[2].Layer != rules.LayerCommanderPower {
		t.Fatalf("unexpected layer order: %v %v %v", got[0].Layer, got[1].Layer, got[2].Layer)
	}
}
