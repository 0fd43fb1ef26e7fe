// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package events

import (
	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Replay re-applies log against a fresh Clone of initial and returns
// the resulting board plus the commander-charge pool the log
// produces. It never touches initial itself, so a caller can compare
// Replay(initial, log)'s board against a live game's current board to
// confirm the replay contract of spec.md §8 holds: replaying the
// event log from the same starting snapshot reproduces the same
// state bit-for-bit.
func Replay(initial *board.Map, log []Event) (*board.Map, map[int]int) {
	h := NewHandler(initial.Clone())
	for _, e := range log {
		apply(h, e)
	}
	return h.board, h.commanderCharge
}

// apply re-runs a single logged event's mutation directly against
// h.board, bypassing Handler's own emit (Replay keeps the caller's
// original log, not a re-derived one).
func apply(h *Handler, e Event) {
	switch e.Kind {
	case KindTerrainReplace:
		h.board.SetTerrain(e.Point, e.Terrain)
	case KindUnitPlace:
		h.board.PlaceUnit(e.Point, e.Unit)
	case KindUnitRemove:
		h.board.RemoveUnit(e.Point)
		for id, o := range h.obs {
			if o.point == e.Point {
				delete(h.obs, id)
			}
		}
	case KindUnitMassDamage:
		for p, dmg := range e.Hits {
			applyDamage(h.board, p, dmg, e.TagID)
		}
	case KindUnitPath:
		if len(e.Path) >= 2 {
			origin, dest := e.Path[0], e.Path[len(e.Path)-1]
			if u, ok := h.board.Unit(origin); ok {
				h.board.RemoveUnit(origin)
				h.board.PlaceUnit(dest, u)
				h.retarget(origin, dest)
			}
		}
	case KindUnitFlagSet:
		if u, ok := h.board.Unit(e.Point); ok {
			h.board.PlaceUnit(e.Point, u.WithTags(u.Tags.SetFlag(e.FlagID, e.On)))
		}
	case KindUnitTagSet:
		if u, ok := h.board.Unit(e.Point); ok {
			if tags, err := u.Tags.Set(e.TagID, e.Value, e.Value.Kind()); err == nil {
				h.board.PlaceUnit(e.Point, u.WithTags(tags))
			}
		}
	case KindHeroChargeAdd:
		applyHeroCharge(h.board, e.Point, e.Amount, e.TagID)
	case KindCommanderChargeAdd:
		h.commanderCharge[e.OwnerID] += e.Amount
	case KindFogRecompute, KindEffect:
		// no board mutation to replay.
	}
}

// applyDamage mirrors Handler.MassDamage's per-point effect for the
// hp tag the original mutation logged.
func applyDamage(m *board.Map, p topology.Point, dmg int, hpTagID tagbag.TagId) {
	u, ok := m.Unit(p)
	if !ok {
		return
	}
	v, ok := u.Tags.Get(hpTagID)
	if !ok {
		return
	}
	hp, ok := v.(tagbag.BoundedInt)
	if !ok {
		return
	}
	next := hp.Add(-dmg)
	if next.Value <= next.Min {
		m.RemoveUnit(p)
		return
	}
	tags, err := u.Tags.Set(hpTagID, next, tagbag.BoundedIntKind)
	if err != nil {
		return
	}
	m.PlaceUnit(p, u.WithTags(tags))
}

func applyHeroCharge(m *board.Map, p topology.Point, delta int, tagID tagbag.TagId) {
	u, ok := m.Unit(p)
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
	m.PlaceUnit(p, u.WithTags(tags))
}
