// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package board implements the domain entities (Unit, Terrain,
// Token) and the read-only BoardView contract that Map and the
// decorators satisfy. Layered decorators (UnitPath, ReplaceUnit,
// IgnoreUnits) let command validation "try" a hypothetical board
// state without mutating anything.
package board
