// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tagbag_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/stratecide/tactics-core/internal/tagbag"
	"github.com/stratecide/tactics-core/internal/topology"
)

const (
	tagHP  tagbag.TagId = 1
	tagDir tagbag.TagId = 2

	flagCaptured tagbag.FlagId = 1
)

func TestSetGetRoundTrip(t *testing.T) {
	b := tagbag.New()
	b, err := b.Set(tagHP, tagbag.NewBoundedInt(75, 0, 100), tagbag.BoundedIntKind)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := b.Get(tagHP)
	if !ok {
		t.Fatalf("expected tagHP to be present")
	}
	if v.(tagbag.BoundedInt).Value != 75 {
		t.Fatalf("got %v, want 75", v)
	}
}

func TestSetRejectsWrongKind(t *testing.T) {
	b := tagbag.New()
	_, err := b.Set(tagHP, tagbag.DirectionTag{D: topology.North}, tagbag.BoundedIntKind)
	if err == nil {
		t.Fatalf("expected an error setting a Direction value under a BoundedInt key")
	}
}

func TestFlagsAreImmutable(t *testing.T) {
	b := tagbag.New()
	b2 := b.SetFlag(flagCaptured, true)
	if b.HasFlag(flagCaptured) {
		t.Fatalf("original bag should be unaffected by SetFlag on the copy")
	}
	if !b2.HasFlag(flagCaptured) {
		t.Fatalf("copy should have the flag set")
	}
}

func TestDistortRotatesDirectionTagOnly(t *testing.T) {
	b := tagbag.New()
	b, _ = b.Set(tagDir, tagbag.DirectionTag{D: topology.North}, tagbag.DirectionKind)
	b, _ = b.Set(tagHP, tagbag.NewBoundedInt(50, 0, 100), tagbag.BoundedIntKind)

	d := topology.Distortion{Rotation: topology.East}
	distorted := b.Distort(topology.Square, d)

	got, _ := distorted.Get(tagDir)
	want := tagbag.DirectionTag{D: topology.East}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("direction tag mismatch: %v", diff)
	}

	hpGot, _ := distorted.Get(tagHP)
	hpWant, _ := b.Get(tagHP)
	if diff := deep.Equal(hpGot, hpWant); diff != nil {
		t.Fatalf("bounded int tag should be unaffected by Distort: %v", diff)
	}
}
