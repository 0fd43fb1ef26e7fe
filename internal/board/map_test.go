// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board_test

import (
	"testing"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

func testMap(t *testing.T) (*board.Map, *topology.WrappingMap) {
	t.Helper()
	env := testEnv(t)
	pm := topology.NewPointMap(topology.Square, 5, 5)
	wm, err := topology.Build(pm, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return board.NewMap(env, wm), wm
}

func TestMapPlaceAndRemoveUnit(t *testing.T) {
	m, _ := testMap(t)
	p := topology.Point{X: 2, Y: 2}
	u := board.Unit{TypeID: 7, Tags: tagbag.New()}
	m.PlaceUnit(p, u)

	got, ok := m.Unit(p)
	if !ok || got.TypeID != 7 {
		t.Fatalf("got (%+v, %v), want the placed unit", got, ok)
	}

	m.RemoveUnit(p)
	if _, ok := m.Unit(p); ok {
		t.Fatalf("expected no unit after RemoveUnit")
	}
}

func TestMapSetDetailsNormalizesAndSyncsTerrain(t *testing.T) {
	m, _ := testMap(t)
	p := topology.Point{X: 1, Y: 1}
	m.SetTerrain(p, board.Terrain{TypeID: 3, Tags: tagbag.New()})

	m.SetDetails(p, []board.Detail{
		{Kind: rules.DetailCoins},
		{Kind: rules.DetailCoins},
	})

	if got := m.Details(p); len(got) != 1 {
		t.Fatalf("got %d details, want 1 after normalization", len(got))
	}
	terr, _ := m.Terrain(p)
	if len(terr.Details) != 1 {
		t.Fatalf("terrain.Details out of sync: %+v", terr.Details)
	}
}

func TestMapPipeAtFindsDetailPipe(t *testing.T) {
	m, _ := testMap(t)
	p := topology.Point{X: 0, Y: 0}
	m.SetTerrain(p, board.Terrain{TypeID: 1, Tags: tagbag.New()})
	m.SetDetails(p, []board.Detail{
		{Kind: rules.DetailPipe, Directions: topology.Pipe{A: topology.North, B: topology.East}},
	})

	pipe, ok := m.PipeAt(p)
	if !ok {
		t.Fatalf("expected a pipe at %v", p)
	}
	if pipe.A != topology.North || pipe.B != topology.East {
		t.Fatalf("got %+v, want {North, East}", pipe)
	}

	if _, ok := m.PipeAt(topology.Point{X: 4, Y: 4}); ok {
		t.Fatalf("expected no pipe on an untouched tile")
	}
}

func TestMapPointsMatchesPointMap(t *testing.T) {
	m, wm := testMap(t)
	if len(m.Points()) != len(wm.Points.Points()) {
		t.Fatalf("Map.Points() disagrees with the underlying PointMap")
	}
}
