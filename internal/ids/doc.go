// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ids implements the Environment's pool of in-use unique
// identifiers. Ids are minted by drawing from a caller-supplied
// randomness source until a free slot is found — the engine never
// reads a clock or a global RNG (spec.md §5).
package ids
