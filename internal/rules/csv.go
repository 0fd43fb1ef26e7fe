// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rules

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stratecide/tactics-core/internal/numbermod"
)

// row is a header-indexed CSV record, the shape every table loader in
// this file consumes.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r row) mustInt(col string) (int, error) {
	s := r.get(col)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return n, nil
}

func readRows(rd io.Reader) ([]row, error) {
	cr := csv.NewReader(rd)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := map[string]int{}
	for i, h := range records[0] {
		if _, dup := header[h]; dup {
			return nil, fmt.Errorf("duplicate header column %q", h)
		}
		header[h] = i
	}
	rows := make([]row, 0, len(records)-1)
	for _, fields := range records[1:] {
		rows = append(rows, row{header: header, fields: fields})
	}
	return rows, nil
}

// LoadUnitTypes parses a unit config table: Id,Name,MovementType,
// MovementPoints,AttackPattern,AttackMin,AttackMax,Displacement,
// TargetPolicy columns; MovementPoints accepts NumberMod cell syntax
// applied against a base of 0.
func (c *Config) LoadUnitTypes(rd io.Reader) error {
	rows, err := readRows(rd)
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.mustInt("Id")
		if err != nil {
			return err
		}
		mtID, err := r.mustInt("MovementType")
		if err != nil {
			return fmt.Errorf("unit %d: %w", id, err)
		}
		mod, err := numbermod.ParseCell(r.get("MovementPoints"))
		if err != nil {
			return fmt.Errorf("unit %d: %w", id, err)
		}
		pattern, err := parseAttackPattern(r.get("AttackPattern"), r.get("AttackMin"), r.get("AttackMax"))
		if err != nil {
			return fmt.Errorf("unit %d: %w", id, err)
		}
		c.UnitTypes[id] = UnitType{
			ID:                 id,
			Name:               r.get("Name"),
			MovementTypeID:     mtID,
			BaseMovementPoints: numbermod.FoldFraction(numbermod.Int(0), []numbermod.NumberModF{mod}),
			AttackPattern:      pattern,
			TargetPolicy:       parseTargetPolicy(r.get("TargetPolicy")),
			Displacement:       parseDisplacement(r.get("Displacement")),
		}
	}
	return nil
}

func parseAttackPattern(kind, minCell, maxCell string) (AttackPattern, error) {
	var k AttackPatternKind_e
	switch kind {
	case "", "None":
		k = PatternNone
	case "Adjacent":
		k = PatternAdjacent
	case "Straight":
		k = PatternStraight
	case "TriangleDiagonal":
		k = PatternTriangleDiagonal
	case "TriangleStraight":
		k = PatternTriangleStraight
	case "Scripted":
		k = PatternScripted
		return AttackPattern{Kind: k, Script: minCell}, nil
	default:
		return AttackPattern{}, fmt.Errorf("unknown attack pattern %q", kind)
	}
	min, _ := strconv.Atoi(minCell)
	max, _ := strconv.Atoi(maxCell)
	return AttackPattern{Kind: k, Min: min, Max: max}, nil
}

func parseTargetPolicy(s string) TargetPolicy_e {
	switch s {
	case "Friendly":
		return Friendly
	case "Owned":
		return Owned
	case "All":
		return All
	default:
		return Enemy
	}
}

func parseDisplacement(s string) Displacement_e {
	switch s {
	case "InsteadOfAttack":
		return DisplaceInsteadOfAttack
	case "BeforeAttack":
		return DisplaceBeforeAttack
	case "BetweenAttacks":
		return DisplaceBetweenAttacks
	case "AfterCounter":
		return DisplaceAfterCounter
	default:
		return DisplaceNone
	}
}

// LoadTerrainTypes parses Id,Name,DefenseBonus,AttackBonus columns;
// bonus cells accept NumberMod syntax applied against a base of 0.
func (c *Config) LoadTerrainTypes(rd io.Reader) error {
	rows, err := readRows(rd)
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.mustInt("Id")
		if err != nil {
			return err
		}
		def, err := numbermod.ParseCell(r.get("DefenseBonus"))
		if err != nil {
			return fmt.Errorf("terrain %d: %w", id, err)
		}
		atk, err := numbermod.ParseCell(r.get("AttackBonus"))
		if err != nil {
			return fmt.Errorf("terrain %d: %w", id, err)
		}
		c.TerrainTypes[id] = TerrainType{
			ID:           id,
			Name:         r.get("Name"),
			Surface:      parseSurface(r.get("Surface")),
			DefenseBonus: numbermod.FoldFraction(numbermod.Int(0), []numbermod.NumberModF{def}),
			AttackBonus:  numbermod.FoldFraction(numbermod.Int(0), []numbermod.NumberModF{atk}),
		}
	}
	return nil
}

func parseSurface(s string) Surface_e {
	switch s {
	case "Beach":
		return SurfaceBeach
	case "Water":
		return SurfaceWater
	default:
		return SurfaceLand
	}
}

// LoadMovementCosts parses a matrix table: header row is MovementType,
// <TerrainId1>, <TerrainId2>, ...; each data row's first column is
// the movement type id, remaining cells are NumberMod cost cells
// against a base of 0, with "" meaning illegal terrain.
func (c *Config) LoadMovementCosts(rd io.Reader) error {
	return c.loadMovementCostTable(rd, func(mt *MovementType) *map[int]numbermod.Fraction { return &mt.CostByTerrain })
}

// LoadAmphibiousMovementCosts parses the same matrix shape as
// LoadMovementCosts but fills WaterCostByTerrain, the table consulted
// once an amphibious unit's sub-mode has flipped to Water (spec.md
// §4.2).
func (c *Config) LoadAmphibiousMovementCosts(rd io.Reader) error {
	return c.loadMovementCostTable(rd, func(mt *MovementType) *map[int]numbermod.Fraction { return &mt.WaterCostByTerrain })
}

func (c *Config) loadMovementCostTable(rd io.Reader, table func(*MovementType) *map[int]numbermod.Fraction) error {
	cr := csv.NewReader(rd)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	terrainCols := records[0][1:]
	for _, rec := range records[1:] {
		mtID, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("movement cost row %q: %w", rec[0], err)
		}
		mt := c.MovementTypes[mtID]
		mt.ID = mtID
		dst := table(&mt)
		if *dst == nil {
			*dst = map[int]numbermod.Fraction{}
		}
		for i, cell := range rec[1:] {
			if cell == "" {
				continue
			}
			terrainID, err := strconv.Atoi(terrainCols[i])
			if err != nil {
				return fmt.Errorf("movement cost column %q: %w", terrainCols[i], err)
			}
			mod, err := numbermod.ParseCell(cell)
			if err != nil {
				return fmt.Errorf("movement type %d, terrain %d: %w", mtID, terrainID, err)
			}
			(*dst)[terrainID] = numbermod.FoldFraction(numbermod.Int(0), []numbermod.NumberModF{mod})
		}
		c.MovementTypes[mtID] = mt
	}
	return nil
}
