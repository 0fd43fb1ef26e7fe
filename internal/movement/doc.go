// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package movement implements spec.md §4.2's path search: plain
// Dijkstra over (point, amphibious sub-mode, ballast), costed in
// exact rationals off the rules.MovementType table, stopping a path
// extension at the unit's movement budget, illegal terrain, a
// blocking unit, or an amphibious transition onto terrain the new
// sub-mode can't occupy.
package movement
