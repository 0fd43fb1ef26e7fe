// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package events_test

import (
	"testing"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/config"
	"github.com/stratecide/tactics-core/internal/environment"
	"github.com/stratecide/tactics-core/internal/events"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

func testEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env := environment.New(rules.New(), environment.MapSize{Kind: topology.Square, Width: 4, Height: 1}, func() float32 { return 0.5 })
	env.SetSettings(config.Default())
	return env
}

func testMap(t *testing.T) (*board.Map, *environment.Environment) {
	t.Helper()
	env := testEnv(t)
	pm := topology.NewPointMap(topology.Square, 4, 1)
	wm, err := topology.Build(pm, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := board.NewMap(env, wm)
	for x := 0; x < 4; x++ {
		m.SetTerrain(topology.Point{X: x, Y: 0}, board.Terrain{TypeID: 1, Env: env, Tags: tagbag.New()})
	}
	return m, env
}

func unitWithHP(env *environment.Environment, hp, max int) board.Unit {
	tags := tagbag.New()
	tags, _ = tags.Set(rules.TagHP, tagbag.NewBoundedInt(hp, 0, max), tagbag.BoundedIntKind)
	return board.Unit{TypeID: 10, Env: env, Tags: tags}
}

func TestMassDamageRemovesUnitAtZeroHP(t *testing.T) {
	m, env := testMap(t)
	h := events.NewHandler(m)
	p := topology.Point{X: 1, Y: 0}
	h.PlaceUnit(p, unitWithHP(env, 3, 10))

	h.MassDamage(map[topology.Point]int{p: 3}, rules.TagHP)

	if _, ok := m.Unit(p); ok {
		t.Fatalf("unit should have been removed once hp reached 0")
	}
}

func TestMassDamageClampsAboveFloor(t *testing.T) {
	m, env := testMap(t)
	h := events.NewHandler(m)
	p := topology.Point{X: 1, Y: 0}
	h.PlaceUnit(p, unitWithHP(env, 5, 10))

	h.MassDamage(map[topology.Point]int{p: 2}, rules.TagHP)

	u, ok := m.Unit(p)
	if !ok {
		t.Fatalf("unit should survive 2 damage out of 5 hp")
	}
	v, _ := u.Tags.Get(rules.TagHP)
	if v.(tagbag.BoundedInt).Value != 3 {
		t.Fatalf("got hp %+v, want 3", v)
	}
}

func TestObserveTracksUnitAcrossMove(t *testing.T) {
	m, env := testMap(t)
	h := events.NewHandler(m)
	origin := topology.Point{X: 0, Y: 0}
	dest := topology.Point{X: 2, Y: 0}
	h.PlaceUnit(origin, unitWithHP(env, 10, 10))

	id := h.Observe(origin)
	h.MoveUnit([]topology.Point{origin, topology.Point{X: 1, Y: 0}, dest})

	got, ok := h.Locate(id)
	if !ok || got != dest {
		t.Fatalf("got (%v,%v), want (%v,true)", got, ok, dest)
	}
}

func TestObserveForgottenOnRemove(t *testing.T) {
	m, env := testMap(t)
	h := events.NewHandler(m)
	p := topology.Point{X: 0, Y: 0}
	h.PlaceUnit(p, unitWithHP(env, 1, 10))
	id := h.Observe(p)

	h.RemoveUnit(p)

	if _, ok := h.Locate(id); ok {
		t.Fatalf("observation should be dropped once its entity is removed")
	}
}

func TestReplayReproducesMutatedBoard(t *testing.T) {
	m, env := testMap(t)
	h := events.NewHandler(m)
	a := topology.Point{X: 0, Y: 0}
	b := topology.Point{X: 3, Y: 0}
	h.PlaceUnit(a, unitWithHP(env, 10, 10))
	h.MoveUnit([]topology.Point{a, topology.Point{X: 1, Y: 0}, topology.Point{X: 2, Y: 0}, b})
	h.MassDamage(map[topology.Point]int{b: 4}, rules.TagHP)
	h.AddCommanderCharge(7, 30, 100)

	// a fresh snapshot taken before any of the above, replayed through
	// the logged events, must land on the same state as the live board.
	initial, _ := testMap(t)
	replayed, charges := events.Replay(initial, h.Log())

	ru, ok := replayed.Unit(b)
	if !ok {
		t.Fatalf("replayed board missing unit at %v", b)
	}
	v, _ := ru.Tags.Get(rules.TagHP)
	if v.(tagbag.BoundedInt).Value != 6 {
		t.Fatalf("replayed hp = %+v, want 6", v)
	}
	if charges[7] != 30 {
		t.Fatalf("replayed commander charge = %d, want 30", charges[7])
	}
}
