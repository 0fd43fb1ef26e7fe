// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package board

import (
	"github.com/stratecide/tactics-core/internal/environment"
	"github.com/stratecide/tactics-core/internal/tagbag"
)

// Unit is a (type_id, environment, tags) entity; all variable state —
// hp, owner, hero, action status, facing, transported cargo — lives
// in Tags. Config (reached through Env) dictates which tag keys a
// unit of this TypeID carries.
type Unit struct {
	TypeID int
	Env    *environment.Environment
	Tags   tagbag.TagBag
}

// WithTags returns a copy of u with Tags replaced.
func (u Unit) WithTags(tags tagbag.TagBag) Unit {
	u.Tags = tags
	return u
}

// Terrain is a (type_id, environment, tags) entity, carrying owner,
// capture progress, anger and built-this-turn counters in Tags, plus
// an additive stack of Details (pipes, coins, bubbles, a skull
// memorial, sludge).
type Terrain struct {
	TypeID  int
	Env     *environment.Environment
	Tags    tagbag.TagBag
	Details []Detail
}

// WithTags returns a copy of t with Tags replaced.
func (t Terrain) WithTags(tags tagbag.TagBag) Terrain {
	t.Tags = tags
	return t
}

// WithDetails returns a copy of t with Details replaced by a
// normalized stack (see Normalize).
func (t Terrain) WithDetails(details []Detail) Terrain {
	t.Details = Normalize(details, t.Env)
	return t
}

// Token is a (type_id, environment, tags) entity for placeable
// objects distinct from units and terrain (e.g. flags, supply
// crates).
type Token struct {
	TypeID int
	Env    *environment.Environment
	Tags   tagbag.TagBag
}

// WithTags returns a copy of tok with Tags replaced.
func (tok Token) WithTags(tags tagbag.TagBag) Token {
	tok.Tags = tags
	return tok
}
