// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package tagbag implements TagBag, the typed flag/tag set attached
// to players, units, terrain and tokens. All variable entity state
// (hp, owner, facing, cargo, capture progress, ...) lives in a tag
// bag rather than in bespoke struct fields, so config can declare
// which keys a given type carries without the engine needing a case
// per entity kind.
package tagbag
