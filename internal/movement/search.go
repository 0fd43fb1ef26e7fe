// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package movement

import (
	"container/heap"

	"github.com/stratecide/tactics-core/internal/board"
	"github.com/stratecide/tactics-core/internal/numbermod"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Error implements the cerrs constant-error idiom.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrPathTooLong      = Error("movement: no path reaches the destination within budget")
	ErrIllegalTerrain   = Error("movement: terrain not enterable by this movement type")
	ErrBlockedByUnit    = Error("movement: tile occupied by a unit that cannot be moved through")
	ErrWrapInconsistent = Error("movement: wrap crossing left chirality-sensitive ballast undefined")

	errNoNeighbor = Error("movement: no neighbor in that direction")
)

// Reachable is one entry of a Search result: the minimal cost to
// reach Point, the canonical path that achieves it, and the ballast
// that path leaves the mover carrying.
type Reachable struct {
	Point   topology.Point
	Cost    numbermod.Fraction
	Path    []topology.Point
	Mode    AmphibiousMode
	Ballast Ballast
}

// state is the search's expanded node: a point alone isn't enough to
// determine which further moves are legal once amphibious sub-modes
// and the forbidden-opposite-direction ballast rule are in play.
type state struct {
	Point   topology.Point
	Mode    AmphibiousMode
	Ballast Ballast
}

type entry struct {
	state state
	cost  numbermod.Fraction
	path  []topology.Point
	index int
}

type entryHeap []*entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].cost.Cmp(h[j].cost) < 0 }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Step computes the result of moving one tile from p in direction d
// for movement type mt, currently in sub-mode mode. It is the single
// source of truth for what makes a hop legal, shared by Search's
// inner loop and by anything outside this package that needs to
// validate or apply one displacement step (combat's push/pull/
// knockback, say) without re-deriving these rules.
func Step(view board.BoardView, mt rules.MovementType, p topology.Point, d topology.Direction_e, mode AmphibiousMode, canMoveThroughUnits bool) (next topology.Point, nextDir topology.Direction_e, nextMode AmphibiousMode, cost numbermod.Fraction, err error) {
	kind := view.Wrapping().Points.Kind
	dest, dist, ok, werr := topology.GetNeighborWithPipes(view.Wrapping(), pipeLookup{view}, p, d)
	if werr != nil {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrWrapInconsistent
	}
	if !ok {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, errNoNeighbor
	}
	if dist.Mirrored {
		// a mirror flips the sense "opposite"/"one step clockwise"
		// carries, which the forbidden-opposite-direction rule and
		// diagonal-direction bookkeeping both assume stays fixed.
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrWrapInconsistent
	}

	toTerrain, ok := view.Terrain(dest)
	if !ok {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrIllegalTerrain
	}
	terrainType, ok := terrainTypeOf(toTerrain)
	if !ok {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrIllegalTerrain
	}

	newMode := amphibiousMode(mt, mode, currentSurface(view, p, terrainType), terrainType.Surface)
	stepCost, legal := costFor(mt, newMode, terrainType.ID)
	if !legal {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrIllegalTerrain
	}

	if _, occupied := view.Unit(dest); occupied && !canMoveThroughUnits {
		return topology.Point{}, 0, mode, numbermod.Fraction{}, ErrBlockedByUnit
	}

	return dest, dist.UpdateDirection(kind, d), newMode, stepCost, nil
}

// Search runs Dijkstra from start out to budget movement points for a
// unit of movement type mt, over view. canMoveThroughUnits lets the
// search continue past (but never stop on) an occupied tile, per
// spec.md §4.2's blocked_by_unit exception. It returns, per reachable
// point, the lowest-cost path and the search state (sub-mode,
// ballast) that path leaves behind.
func Search(view board.BoardView, mt rules.MovementType, start topology.Point, budget numbermod.Fraction, canMoveThroughUnits bool) map[topology.Point]Reachable {
	kind := view.Wrapping().Points.Kind
	startState := state{Point: start, Mode: Land}
	best := map[state]numbermod.Fraction{startState: numbermod.Int(0)}
	results := map[topology.Point]Reachable{
		start: {Point: start, Cost: numbermod.Int(0), Path: []topology.Point{start}, Mode: Land},
	}

	pq := &entryHeap{}
	heap.Init(pq)
	heap.Push(pq, &entry{state: startState, cost: numbermod.Int(0), path: []topology.Point{start}})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*entry)
		if known, ok := best[cur.state]; ok && known.Cmp(cur.cost) < 0 {
			continue
		}

		for _, d := range topology.Directions(kind) {
			if cur.state.Ballast.forbidsOpposite(kind, d) {
				continue
			}
			next, nextDir, nextMode, cost, err := Step(view, mt, cur.state.Point, d, cur.state.Mode, canMoveThroughUnits)
			if err != nil {
				continue
			}
			newCost := cur.cost.Add(cost)
			if newCost.Cmp(budget) > 0 {
				continue
			}

			nextBallast := cur.state.Ballast.step(nextDir, false)
			nextState := state{Point: next, Mode: nextMode, Ballast: nextBallast}

			if known, ok := best[nextState]; ok && known.Cmp(newCost) <= 0 {
				continue
			}
			best[nextState] = newCost
			nextPath := append(append([]topology.Point(nil), cur.path...), next)
			heap.Push(pq, &entry{state: nextState, cost: newCost, path: nextPath})

			if _, occupied := view.Unit(next); occupied {
				// passable, per canMoveThroughUnits above, but a unit
				// may never end its move stacked on another.
				continue
			}
			if r, ok := results[next]; !ok || newCost.Cmp(r.Cost) < 0 {
				results[next] = Reachable{Point: next, Cost: newCost, Path: nextPath, Mode: nextMode, Ballast: nextBallast}
			}
		}
	}
	return results
}

// PathTo returns the canonical minimal-cost path from start to dest
// within budget, or ErrPathTooLong if dest isn't reachable.
func PathTo(view board.BoardView, mt rules.MovementType, start, dest topology.Point, budget numbermod.Fraction, canMoveThroughUnits bool) ([]topology.Point, error) {
	reachable := Search(view, mt, start, budget, canMoveThroughUnits)
	r, ok := reachable[dest]
	if !ok {
		return nil, ErrPathTooLong
	}
	return r.Path, nil
}

// pipeLookup adapts a board.BoardView into topology.PipeLookup.
type pipeLookup struct{ view board.BoardView }

func (p pipeLookup) PipeAt(pt topology.Point) (topology.Pipe, bool) {
	return board.PipeAt(p.view, pt)
}

func terrainTypeOf(t board.Terrain) (rules.TerrainType, bool) {
	tt, ok := t.Env.Config.TerrainTypes[t.TypeID]
	return tt, ok
}

// currentSurface looks up the surface of whatever terrain the mover
// currently stands on, falling back to the destination's own surface
// if the origin has no terrain recorded.
func currentSurface(view board.BoardView, at topology.Point, fallback rules.TerrainType) rules.Surface_e {
	if t, ok := view.Terrain(at); ok {
		if tt, ok := terrainTypeOf(t); ok {
			return tt.Surface
		}
	}
	return fallback.Surface
}

// amphibiousMode applies spec.md §4.2's flip rule: a step between
// Beach and Water toggles an amphibious unit's sub-mode; every other
// adjacency leaves it unchanged, and a non-amphibious movement type
// never leaves Land.
func amphibiousMode(mt rules.MovementType, cur AmphibiousMode, from, to rules.Surface_e) AmphibiousMode {
	if !mt.Amphibious {
		return Land
	}
	flips := (from == rules.SurfaceBeach && to == rules.SurfaceWater) ||
		(from == rules.SurfaceWater && to == rules.SurfaceBeach)
	if !flips {
		return cur
	}
	if cur == Land {
		return Water
	}
	return Land
}

// costFor looks up the cost of entering a terrain type under mode,
// reporting false if that movement type can't legally occupy it in
// that sub-mode.
func costFor(mt rules.MovementType, mode AmphibiousMode, terrainTypeID int) (numbermod.Fraction, bool) {
	table := mt.CostByTerrain
	if mode == Water {
		table = mt.WaterCostByTerrain
	}
	cost, ok := table[terrainTypeID]
	return cost, ok
}
