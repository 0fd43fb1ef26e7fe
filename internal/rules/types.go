// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules

import (
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/tagbag"
)

// UnitType is a row of the unit config table: id, display name,
// movement behavior, combat patterns and the tag keys this type
// carries.
type UnitType struct {
	ID                 int
	Name               string
	MovementTypeID     int
	BaseMovementPoints numbermod.Fraction
	AttackPattern      AttackPattern
	Splash             SplashPattern
	InputDirections    AttackInputDirectionSource
	Displacement       Displacement_e
	TargetPolicy       TargetPolicy_e
	CanMoveThroughUnits bool
	RequiredTags       []tagbag.TagId
	HiddenTags         []tagbag.TagId
}

// Surface_e classifies a terrain type for the movement engine's
// amphibious transition rule (spec.md §4.2): a step between Beach and
// Water flips an amphibious unit's sub-mode; every other adjacency
// leaves it as-is.
type Surface_e int

const (
	SurfaceLand Surface_e = iota
	SurfaceBeach
	SurfaceWater
)

// TerrainType is a row of the terrain config table.
type TerrainType struct {
	ID             int
	Name           string
	Surface        Surface_e
	DefenseBonus   numbermod.Fraction
	AttackBonus    numbermod.Fraction
	AllowedDetails []DetailKind_e
}

// MovementType is a row of the movement-type config table: which
// terrain types it may enter and at what cost, whether it is
// amphibious (carries a water/land sub-mode). WaterCostByTerrain is
// consulted instead of CostByTerrain once an amphibious unit's
// sub-mode has flipped to Water; a terrain type absent from whichever
// table applies is illegal in that sub-mode.
type MovementType struct {
	ID                 int
	Name               string
	Amphibious         bool
	CostByTerrain      map[int]numbermod.Fraction // terrain type id -> cost; absent = illegal
	WaterCostByTerrain map[int]numbermod.Fraction
}

// TargetPolicy_e filters which defenders an attack may select.
type TargetPolicy_e int

const (
	Enemy TargetPolicy_e = iota
	Friendly
	Owned
	All
)

// DetailKind_e enumerates the terrain detail kinds from spec.md §3:
// pipes, coins, bubbles, a dead-unit skull memorial, sludge.
type DetailKind_e int

const (
	DetailPipe DetailKind_e = iota
	DetailCoins
	DetailBubble
	DetailSkull
	DetailSludge
)
