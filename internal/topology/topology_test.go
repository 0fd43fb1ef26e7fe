// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology_test

import (
	"testing"

	"github.com/go-test/deep"
	"pgregory.net/rapid"

	"github.com/stratecide/tactics-core/internal/topology"
)

func genDirection(kind topology.Kind_e) *rapid.Generator[topology.Direction_e] {
	return rapid.SampledFrom(topology.Directions(kind))
}

func genDistortion(kind topology.Kind_e) *rapid.Generator[topology.Distortion] {
	return rapid.Custom(func(t *rapid.T) topology.Distortion {
		return topology.Distortion{
			Mirrored: rapid.Bool().Draw(t, "mirrored"),
			Rotation: genDirection(kind).Draw(t, "rotation"),
		}
	})
}

// TestDistortionComposeAssociative checks that Compose is associative
// for both grid kinds, the property the wrap-closure search in
// WrappingMap.Build depends on.
func TestDistortionComposeAssociative(t *testing.T) {
	for _, kind := range []topology.Kind_e{topology.Square, topology.Hex} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				a := genDistortion(kind).Draw(t, "a")
				b := genDistortion(kind).Draw(t, "b")
				c := genDistortion(kind).Draw(t, "c")

				left := topology.Compose(kind, topology.Compose(kind, a, b), c)
				right := topology.Compose(kind, a, topology.Compose(kind, b, c))
				if diff := deep.Equal(left, right); diff != nil {
					t.Fatalf("compose not associative: %v", diff)
				}
			})
		})
	}
}

// TestDistortionInverse checks that composing a distortion with its
// inverse always yields the identity.
func TestDistortionInverse(t *testing.T) {
	for _, kind := range []topology.Kind_e{topology.Square, topology.Hex} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				d := genDistortion(kind).Draw(t, "d")
				got := topology.Compose(kind, d, d.Inverse(kind))
				if !got.IsIdentity() {
					t.Fatalf("d=%+v inverse=%+v compose=%+v, want identity", d, d.Inverse(kind), got)
				}
			})
		})
	}
}

// flatMap builds a borderless rectangular PointMap with a single
// horizontal and vertical wrap, the simplest closed topology.
func flatMap(kind topology.Kind_e, w, h int) *topology.WrappingMap {
	pm := topology.NewPointMap(kind, w, h)
	generators := []topology.Transformation{
		{TranslateBy: topology.Translation{A: w, B: 0}},
		{TranslateBy: topology.Translation{A: 0, B: h}},
	}
	wm, err := topology.Build(pm, generators)
	if err != nil {
		panic(err)
	}
	return wm
}

// TestNeighborRoundTrip checks spec.md's wrap-consistency invariant:
// stepping from a neighbor back in the opposite (distorted) direction
// returns to the origin.
func TestNeighborRoundTrip(t *testing.T) {
	for _, kind := range []topology.Kind_e{topology.Square, topology.Hex} {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			wm := flatMap(kind, 5, 5)
			rapid.Check(t, func(t *rapid.T) {
				x := rapid.IntRange(0, 4).Draw(t, "x")
				y := rapid.IntRange(0, 4).Draw(t, "y")
				p := topology.Point{X: x, Y: y}
				d := genDirection(kind).Draw(t, "d")

				n, dist, ok := wm.GetNeighbor(p, d)
				if !ok {
					t.Fatalf("no neighbor for %v %v on a fully wrapped map", p, d)
				}
				back := dist.UpdateDirection(kind, d).Opposite(kind)
				origin, _, ok := wm.GetNeighbor(n, back)
				if !ok {
					t.Fatalf("no return neighbor from %v heading %v", n, back)
				}
				if origin != p {
					t.Fatalf("round trip from %v via %v landed on %v, not back at origin", p, d, origin)
				}
			})
		})
	}
}

type pipeTable map[topology.Point]topology.Pipe

func (pt pipeTable) PipeAt(p topology.Point) (topology.Pipe, bool) {
	pipe, ok := pt[p]
	return pipe, ok
}

// TestGetLineFollowsPipeChain traces a line through a pipe at (3,0)
// whose two ends (South, East) redirect northbound travel eastward:
// arriving from the south exits east, picking up a distortion that
// turns the traced heading from North to West.
func TestGetLineFollowsPipeChain(t *testing.T) {
	pm := topology.NewPointMap(topology.Square, 10, 10)
	wm, err := topology.Build(pm, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pipes := pipeTable{
		topology.Point{X: 3, Y: 0}: {A: topology.South, B: topology.East},
	}

	got := topology.GetLine(wm, pipes, topology.Point{X: 3, Y: 1}, topology.North, 3, topology.FollowPipes)
	want := []topology.OrientedPoint{
		{Point: topology.Point{X: 3, Y: 1}, Dir: topology.North},
		{Point: topology.Point{X: 4, Y: 0}, Dir: topology.West},
		{Point: topology.Point{X: 3, Y: 1}, Dir: topology.North},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("get_line mismatch: %v", diff)
	}
}

// TestGetNeighborWithPipesDetectsSelfLoop constructs two pipes that
// hand travel back and forth between (3,0) and (4,0) without ever
// reaching a tile with no matching pipe, and checks the chain walk
// gives up with ErrSelfLoopingPipe instead of spinning forever.
func TestGetNeighborWithPipesDetectsSelfLoop(t *testing.T) {
	pm := topology.NewPointMap(topology.Square, 10, 10)
	wm, err := topology.Build(pm, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pipes := pipeTable{
		topology.Point{X: 3, Y: 0}: {A: topology.South, B: topology.East},
		topology.Point{X: 4, Y: 0}: {A: topology.West, B: topology.West},
	}

	_, _, _, err = topology.GetNeighborWithPipes(wm, pipes, topology.Point{X: 3, Y: 1}, topology.North)
	if err != topology.ErrSelfLoopingPipe {
		t.Fatalf("got err %v, want ErrSelfLoopingPipe", err)
	}
}

// TestWrappingMapRejectsOverlappingGenerator checks that a generator
// whose image overlaps the base area is rejected outright.
func TestWrappingMapRejectsOverlappingGenerator(t *testing.T) {
	pm := topology.NewPointMap(topology.Square, 4, 4)
	_, err := topology.Build(pm, []topology.Transformation{
		{TranslateBy: topology.Translation{A: 1, B: 0}},
	})
	if err != topology.ErrGeneratorDisconnects && err != topology.ErrGeneratorOverlapsBase {
		t.Fatalf("expected an overlap or disconnect error, got %v", err)
	}
}

// TestRangeInLayersStaysWithinRadius checks that RangeInLayers never
// reports a layer greater than the requested radius.
func TestRangeInLayersStaysWithinRadius(t *testing.T) {
	wm := flatMap(topology.Hex, 6, 6)
	layers := topology.RangeInLayers(wm, topology.Point{X: 3, Y: 3}, 2)
	for p, layer := range layers {
		if layer < 0 || layer > 2 {
			t.Fatalf("point %v reported at layer %d, outside [0,2]", p, layer)
		}
	}
	if layers[topology.Point{X: 3, Y: 3}] != 0 {
		t.Fatalf("center should be layer 0")
	}
}
