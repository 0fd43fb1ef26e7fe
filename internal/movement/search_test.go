// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package movement_test

import (
	"testing"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/config"
	"github.com/stratecide/tactics-core/internal/environment"
	"github.com/stratecide/tactics-core/internal/movement"
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

const (
	terrainPlain = 1
	terrainHill  = 2
	terrainBeach = 3
	terrainWater = 4
	terrainReef  = 5 // enterable only in Water sub-mode

	mtFoot = 1
	mtBoat = 2
)

func testConfig() *rules.Config {
	c := rules.New()
	c.TerrainTypes[terrainPlain] = rules.TerrainType{ID: terrainPlain, Surface: rules.SurfaceLand}
	c.TerrainTypes[terrainHill] = rules.TerrainType{ID: terrainHill, Surface: rules.SurfaceLand}
	c.TerrainTypes[terrainBeach] = rules.TerrainType{ID: terrainBeach, Surface: rules.SurfaceBeach}
	c.TerrainTypes[terrainWater] = rules.TerrainType{ID: terrainWater, Surface: rules.SurfaceWater}
	c.TerrainTypes[terrainReef] = rules.TerrainType{ID: terrainReef, Surface: rules.SurfaceWater}

	c.MovementTypes[mtFoot] = rules.MovementType{
		ID: mtFoot,
		CostByTerrain: map[int]numbermod.Fraction{
			terrainPlain: numbermod.Int(1),
			terrainHill:  numbermod.Int(2),
		},
	}
	c.MovementTypes[mtBoat] = rules.MovementType{
		ID:         mtBoat,
		Amphibious: true,
		CostByTerrain: map[int]numbermod.Fraction{
			terrainPlain: numbermod.Int(1),
			terrainBeach: numbermod.Int(1),
		},
		WaterCostByTerrain: map[int]numbermod.Fraction{
			terrainBeach: numbermod.Int(1),
			terrainWater: numbermod.Int(1),
			terrainReef:  numbermod.Int(1),
		},
	}
	return c
}

func testEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env := environment.New(testConfig(), environment.MapSize{Kind: topology.Square, Width: 8, Height: 1}, func() float32 { return 0.5 })
	env.SetSettings(config.Default())
	return env
}

// line builds a 1xN strip with one terrain type per point, in
// ascending X order starting at (0,0), and returns its map plus the
// environment backing it (so callers can pull movement types from the
// same Config the map's terrain was built against).
func line(t *testing.T, terrainTypes ...int) (*board.Map, *environment.Environment) {
	t.Helper()
	env := testEnv(t)
	pm := topology.NewPointMap(topology.Square, len(terrainTypes), 1)
	wm, err := topology.Build(pm, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := board.NewMap(env, wm)
	for x, tt := range terrainTypes {
		m.SetTerrain(topology.Point{X: x, Y: 0}, board.Terrain{TypeID: tt, Env: env, Tags: tagbag.New()})
	}
	return m, env
}

// movementType fetches a movement type by id from env's config,
// failing the test if it's missing.
func movementType(t *testing.T, env *environment.Environment, id int) rules.MovementType {
	t.Helper()
	mt, ok := env.Config.MovementTypes[id]
	if !ok {
		t.Fatalf("movement type %d not configured", id)
	}
	return mt
}

func TestSearchFindsCheapestPathAcrossPlains(t *testing.T) {
	m, env := line(t, terrainPlain, terrainPlain, terrainPlain, terrainPlain)
	mt := movementType(t, env, mtFoot)

	reachable := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(2), false)
	r, ok := reachable[topology.Point{X: 2, Y: 0}]
	if !ok {
		t.Fatalf("expected (2,0) reachable within budget 2")
	}
	if r.Cost.Cmp(numbermod.Int(2)) != 0 {
		t.Fatalf("got cost %v, want 2", r.Cost)
	}
	if _, ok := reachable[topology.Point{X: 3, Y: 0}]; ok {
		t.Fatalf("(3,0) should be unreachable, budget exhausted at distance 3")
	}
}

func TestSearchHillsCostMore(t *testing.T) {
	m, env := line(t, terrainPlain, terrainHill, terrainPlain)
	mt := movementType(t, env, mtFoot)

	reachable := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(2), false)
	if _, ok := reachable[topology.Point{X: 2, Y: 0}]; ok {
		t.Fatalf("crossing the hill should cost 2+1=3, exceeding budget 2")
	}
	r, ok := reachable[topology.Point{X: 1, Y: 0}]
	if !ok || r.Cost.Cmp(numbermod.Int(2)) != 0 {
		t.Fatalf("got %+v, ok=%v, want cost 2 at the hill", r, ok)
	}
}

func TestSearchBlockedByUnitExcludesTileUnlessPassable(t *testing.T) {
	m, env := line(t, terrainPlain, terrainPlain, terrainPlain)
	mt := movementType(t, env, mtFoot)
	m.PlaceUnit(topology.Point{X: 1, Y: 0}, board.Unit{TypeID: 99, Tags: tagbag.New()})

	blocked := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(5), false)
	if _, ok := blocked[topology.Point{X: 2, Y: 0}]; ok {
		t.Fatalf("(2,0) should be unreachable: the unit at (1,0) blocks the only path")
	}

	through := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(5), true)
	if _, ok := through[topology.Point{X: 2, Y: 0}]; !ok {
		t.Fatalf("(2,0) should be reachable when the mover can move through units")
	}
	if _, ok := through[topology.Point{X: 1, Y: 0}]; ok {
		t.Fatalf("(1,0) itself must stay excluded: a unit can never end its move stacked on another")
	}
}

func TestSearchAmphibiousFlipsModeAtBeach(t *testing.T) {
	m, env := line(t, terrainPlain, terrainBeach, terrainWater, terrainReef)
	mt := movementType(t, env, mtBoat)

	reachable := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(3), false)
	r, ok := reachable[topology.Point{X: 3, Y: 0}]
	if !ok {
		t.Fatalf("a boat should reach the reef by crossing plain -> beach -> water -> reef at cost 3")
	}
	if r.Mode != movement.Water {
		t.Fatalf("got mode %v at the reef, want Water", r.Mode)
	}
}

func TestSearchNonAmphibiousCannotEnterWater(t *testing.T) {
	m, env := line(t, terrainPlain, terrainBeach, terrainWater)
	mt := movementType(t, env, mtFoot)

	reachable := movement.Search(m, mt, topology.Point{X: 0, Y: 0}, numbermod.Int(5), false)
	if _, ok := reachable[topology.Point{X: 2, Y: 0}]; ok {
		t.Fatalf("foot movement should never reach open water")
	}
}

func TestPathToReturnsErrPathTooLongWhenUnreachable(t *testing.T) {
	m, env := line(t, terrainPlain, terrainPlain, terrainPlain)
	mt := movementType(t, env, mtFoot)

	_, err := movement.PathTo(m, mt, topology.Point{X: 0, Y: 0}, topology.Point{X: 2, Y: 0}, numbermod.Int(1), false)
	if err != movement.ErrPathTooLong {
		t.Fatalf("got err %v, want ErrPathTooLong", err)
	}
}

func TestPathToReturnsCanonicalPath(t *testing.T) {
	m, env := line(t, terrainPlain, terrainPlain, terrainPlain)
	mt := movementType(t, env, mtFoot)

	path, err := movement.PathTo(m, mt, topology.Point{X: 0, Y: 0}, topology.Point{X: 2, Y: 0}, numbermod.Int(2), false)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	want := []topology.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("got path %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("got path %v, want %v", path, want)
		}
	}
}
