// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tagbag

import (
	"fmt"
	"sort"

	"github.com/stratecide/tactics-core/internal/topology"
)

// FlagId and TagId are config-declared keys; their meaning (which
// entity type carries which key, and at what Value kind) is owned by
// the config tables in internal/rules, not by this package.
type FlagId int
type TagId int

// Error implements the cerrs constant-error idiom.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrWrongValueKind = Error("tag value kind does not match the declared type")
)

// TagBag is a typed flag/tag set attached to a player, unit, terrain
// or token. The zero value is an empty bag.
type TagBag struct {
	flags map[FlagId]struct{}
	tags  map[TagId]Value
}

// New returns an empty TagBag.
func New() TagBag {
	return TagBag{}
}

// HasFlag reports whether f is set.
func (b TagBag) HasFlag(f FlagId) bool {
	_, ok := b.flags[f]
	return ok
}

// SetFlag returns a copy of b with f set (or cleared).
func (b TagBag) SetFlag(f FlagId, on bool) TagBag {
	next := b.clone()
	if on {
		if next.flags == nil {
			next.flags = map[FlagId]struct{}{}
		}
		next.flags[f] = struct{}{}
	} else {
		delete(next.flags, f)
	}
	return next
}

// Flags returns the set bits, sorted for deterministic iteration
// (event replay and serialization both depend on stable ordering).
func (b TagBag) Flags() []FlagId {
	out := make([]FlagId, 0, len(b.flags))
	for f := range b.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Get returns the value stored under id, if any.
func (b TagBag) Get(id TagId) (Value, bool) {
	v, ok := b.tags[id]
	return v, ok
}

// MustGet returns the value stored under id, panicking if absent —
// use only where config guarantees the key's presence for this
// entity's type_id (spec.md §7: a missing required tag is an
// invariant violation, not a recoverable error).
func (b TagBag) MustGet(id TagId) Value {
	v, ok := b.tags[id]
	if !ok {
		panic(fmt.Sprintf("tagbag: required tag %d missing", id))
	}
	return v
}

// Set returns a copy of b with id set to v, checking v's kind against
// want.
func (b TagBag) Set(id TagId, v Value, want ValueKind_e) (TagBag, error) {
	if v.Kind() != want {
		return b, fmt.Errorf("tag %d: %w (got %s, want %s)", id, ErrWrongValueKind, v.Kind(), want)
	}
	next := b.clone()
	if next.tags == nil {
		next.tags = map[TagId]Value{}
	}
	next.tags[id] = v
	return next, nil
}

// Remove returns a copy of b with id absent.
func (b TagBag) Remove(id TagId) TagBag {
	next := b.clone()
	delete(next.tags, id)
	return next
}

// Keys returns every tag id present, sorted for deterministic
// iteration.
func (b TagBag) Keys() []TagId {
	out := make([]TagId, 0, len(b.tags))
	for k := range b.tags {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Distort returns a copy of b with every tag value distorted, used
// when an entity crosses a mirroring/rotating wrap edge or a pipe.
func (b TagBag) Distort(kind topology.Kind_e, d topology.Distortion) TagBag {
	if d.IsIdentity() {
		return b
	}
	next := b.clone()
	for id, v := range next.tags {
		next.tags[id] = v.Distort(kind, d)
	}
	return next
}

// Translate returns a copy of b with every tag value translated, used
// when the board's point numbering changes under the entity (a
// shrink-to-fit remap, or a map edit that renumbers coordinates).
func (b TagBag) Translate(t topology.Translation) TagBag {
	if t.IsZero() {
		return b
	}
	next := b.clone()
	for id, v := range next.tags {
		next.tags[id] = v.Translate(t)
	}
	return next
}

func (b TagBag) clone() TagBag {
	next := TagBag{}
	if b.flags != nil {
		next.flags = make(map[FlagId]struct{}, len(b.flags))
		for f := range b.flags {
			next.flags[f] = struct{}{}
		}
	}
	if b.tags != nil {
		next.tags = make(map[TagId]Value, len(b.tags))
		for k, v := range b.tags {
			next.tags[k] = v
		}
	}
	return next
}
