// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package events implements the engine's sole mutator (spec.md §4.5):
// every change to a Map, a unit's tags, or a player's commander charge
// goes through a Handler, which both applies the change and appends
// an Event describing it. The resulting append-only log is the
// replay contract of spec.md §8: replaying it against the same
// initial snapshot reproduces the same final state bit-for-bit.
package events

import (
	"github.com/google/uuid"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Kind_e enumerates the append-only event vocabulary.
type Kind_e int

const (
	KindTerrainReplace Kind_e = iota
	KindUnitPlace
	KindUnitRemove
	KindUnitMassDamage
	KindUnitPath
	KindUnitFlagSet
	KindUnitTagSet
	KindHeroChargeAdd
	KindCommanderChargeAdd
	KindFogRecompute
	KindEffect
)

var kindToString = map[Kind_e]string{
	KindTerrainReplace:    "TerrainReplace",
	KindUnitPlace:         "UnitPlace",
	KindUnitRemove:        "UnitRemove",
	KindUnitMassDamage:    "UnitMassDamage",
	KindUnitPath:          "UnitPath",
	KindUnitFlagSet:       "UnitFlagSet",
	KindUnitTagSet:        "UnitTagSet",
	KindHeroChargeAdd:     "HeroChargeAdd",
	KindCommanderChargeAdd: "CommanderChargeAdd",
	KindFogRecompute:      "FogRecompute",
	KindEffect:            "Effect",
}

// String implements the fmt.Stringer interface.
func (k Kind_e) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "Unknown"
}

// Event is one append-only entry of a Handler's mutation log. Which
// fields are meaningful depends on Kind; this mirrors the way
// board.Detail uses one struct for several payload shapes.
type Event struct {
	Kind Kind_e

	Point topology.Point
	Path  []topology.Point

	Terrain board.Terrain
	Unit    board.Unit

	Hits map[topology.Point]int // point -> damage dealt, for KindUnitMassDamage

	FlagID tagbag.FlagId
	TagID  tagbag.TagId
	Value  tagbag.Value
	On     bool

	OwnerID int
	Amount  int

	Name string
	Args map[string]any
}

// observation is the state a Handler tracks for one Observe call: the
// point an entity stood at the moment it was observed, updated as
// later events move, displace or teleport it.
type observation struct {
	point topology.Point
}

// Handler owns a Map and the commander-charge pool, and is the only
// component in the engine permitted to change either. Every mutating
// method both applies the change and appends the Event describing it.
type Handler struct {
	board           *board.Map
	commanderCharge map[int]int
	log             []Event
	obs             map[uuid.UUID]observation
}

// NewHandler wraps m; m is mutated in place by every Handler method
// from this point on.
func NewHandler(m *board.Map) *Handler {
	return &Handler{
		board:           m,
		commanderCharge: map[int]int{},
		obs:             map[uuid.UUID]observation{},
	}
}

// Board returns the handler's board for read access. Nothing outside
// this package may mutate it directly.
func (h *Handler) Board() *board.Map { return h.board }

// CommanderCharge returns ownerID's current commander charge.
func (h *Handler) CommanderCharge(ownerID int) int { return h.commanderCharge[ownerID] }

// Log returns a copy of the event log accumulated so far.
func (h *Handler) Log() []Event { return append([]Event(nil), h.log...) }

func (h *Handler) emit(e Event) { h.log = append(h.log, e) }

// ReplaceTerrain sets the terrain entity at p.
func (h *Handler) ReplaceTerrain(p topology.Point, t board.Terrain) {
	h.board.SetTerrain(p, t)
	h.emit(Event{Kind: KindTerrainReplace, Point: p, Terrain: t})
}

// PlaceUnit sets (or replaces) the unit at p.
func (h *Handler) PlaceUnit(p topology.Point, u board.Unit) {
	h.board.PlaceUnit(p, u)
	h.emit(Event{Kind: KindUnitPlace, Point: p, Unit: u})
}

// RemoveUnit clears the unit at p, if any, and forgets any
// observation still tracking it there.
func (h *Handler) RemoveUnit(p topology.Point) {
	h.board.RemoveUnit(p)
	h.emit(Event{Kind: KindUnitRemove, Point: p})
	for id, o := range h.obs {
		if o.point == p {
			delete(h.obs, id)
		}
	}
}

// MoveUnit relocates the unit currently at path[0] along path,
// leaving no occupant behind at intermediate or origin points. It is
// the mutation behind both ordinary movement and combat's
// displacement walk. A no-op if path has fewer than two points.
func (h *Handler) MoveUnit(path []topology.Point) {
	if len(path) < 2 {
		return
	}
	origin, dest := path[0], path[len(path)-1]
	u, ok := h.board.Unit(origin)
	if !ok {
		return
	}
	h.board.RemoveUnit(origin)
	h.board.PlaceUnit(dest, u)
	h.emit(Event{Kind: KindUnitPath, Path: append([]topology.Point(nil), path...), Unit: u})
	h.retarget(origin, dest)
}

// MassDamage applies damage to the hp tag (rules.TagHP, a
// tagbag.BoundedInt) of the unit at each point in hits, removing any
// unit whose hp reaches its floor. hits maps point -> damage amount.
func (h *Handler) MassDamage(hits map[topology.Point]int, hpTagID tagbag.TagId) {
	if len(hits) == 0 {
		return
	}
	applied := map[topology.Point]int{}
	for p, dmg := range hits {
		u, ok := h.board.Unit(p)
		if !ok || dmg == 0 {
			continue
		}
		v, ok := u.Tags.Get(hpTagID)
		if !ok {
			continue
		}
		hp, ok := v.(tagbag.BoundedInt)
		if !ok {
			continue
		}
		next := hp.Add(-dmg)
		applied[p] = dmg
		if next.Value <= next.Min {
			h.board.RemoveUnit(p)
			for id, o := range h.obs {
				if o.point == p {
					delete(h.obs, id)
				}
			}
			continue
		}
		tags, err := u.Tags.Set(hpTagID, next, tagbag.BoundedIntKind)
		if err != nil {
			continue
		}
		h.board.PlaceUnit(p, u.WithTags(tags))
	}
	if len(applied) > 0 {
		h.emit(Event{Kind: KindUnitMassDamage, Hits: applied, TagID: hpTagID})
	}
}

// SetUnitFlag sets or clears a flag on the unit at p.
func (h *Handler) SetUnitFlag(p topology.Point, flag tagbag.FlagId, on bool) {
	u, ok := h.board.Unit(p)
	if !ok {
		return
	}
	u = u.WithTags(u.Tags.SetFlag(flag, on))
	h.board.PlaceUnit(p, u)
	h.emit(Event{Kind: KindUnitFlagSet, Point: p, FlagID: flag, On: on})
}

// SetUnitTag sets a tag on the unit at p, checking v's kind against
// want.
func (h *Handler) SetUnitTag(p topology.Point, id tagbag.TagId, v tagbag.Value, want tagbag.ValueKind_e) error {
	u, ok := h.board.Unit(p)
	if !ok {
		return nil
	}
	tags, err := u.Tags.Set(id, v, want)
	if err != nil {
		return err
	}
	h.board.PlaceUnit(p, u.WithTags(tags))
	h.emit(Event{Kind: KindUnitTagSet, Point: p, TagID: id, Value: v})
	return nil
}

// AddHeroCharge adds delta to the BoundedInt stored under tagID on the
// unit at p (rules.TagHeroCharge), clamping at its configured bounds.
func (h *Handler) AddHeroCharge(p topology.Point, tagID tagbag.TagId, delta int) {
	u, ok := h.board.Unit(p)
	if !ok {
		return
	}
	v, ok := u.Tags.Get(tagID)
	if !ok {
		return
	}
	charge, ok := v.(tagbag.BoundedInt)
	if !ok {
		return
	}
	next := charge.Add(delta)
	tags, err := u.Tags.Set(tagID, next, tagbag.BoundedIntKind)
	if err != nil {
		return
	}
	h.board.PlaceUnit(p, u.WithTags(tags))
	h.emit(Event{Kind: KindHeroChargeAdd, Point: p, Amount: delta, TagID: tagID})
}

// AddCommanderCharge adds delta to ownerID's commander charge pool,
// clamping at 0 and max. The logged Amount is the change actually
// applied after clamping.
func (h *Handler) AddCommanderCharge(ownerID, delta, max int) {
	prev := h.commanderCharge[ownerID]
	next := prev + delta
	if next < 0 {
		next = 0
	}
	if max > 0 && next > max {
		next = max
	}
	h.commanderCharge[ownerID] = next
	h.emit(Event{Kind: KindCommanderChargeAdd, OwnerID: ownerID, Amount: next - prev})
}

// RecomputeFog logs a marker event; fog itself is derived state,
// recomputed by the caller from the board this event sits after in
// the log, not mutated here. This module has no fog package.
func (h *Handler) RecomputeFog() {
	h.emit(Event{Kind: KindFogRecompute})
}

// Effect logs a named, argument-carrying marker with no board
// mutation, for script hooks (spec.md §4.3.8) and client-side
// presentation (a hit spark, a capture jingle) to key off of.
func (h *Handler) Effect(name string, args map[string]any) {
	h.emit(Event{Kind: KindEffect, Name: name, Args: args})
}

// Observe mints a stable id for whatever occupies p right now, so a
// caller can keep asking where that entity ended up across subsequent
// displacement, movement or pipe-teleport events.
func (h *Handler) Observe(p topology.Point) uuid.UUID {
	id := uuid.New()
	h.obs[id] = observation{point: p}
	return id
}

// Locate returns the current point tracked under id, if it is still
// being observed (it stops being tracked once the entity at its point
// is removed).
func (h *Handler) Locate(id uuid.UUID) (topology.Point, bool) {
	o, ok := h.obs[id]
	return o.point, ok
}

// retarget updates every observation pinned to from so it now points
// at to, called whenever a mutation relocates an entity.
func (h *Handler) retarget(from, to topology.Point) {
	for id, o := range h.obs {
		if o.point == from {
			h.obs[id] = observation{point: to}
		}
	}
}
