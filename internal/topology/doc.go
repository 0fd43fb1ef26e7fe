// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package topology implements the grid model: points, directions,
// translations, distortions, and the wrap/mirror/rotate topology layer
// that sits on top of a finite board. It supports both square (4
// directions) and hex (6 directions) grids from one generalized
// direction type, plus through-map pipes that act as teleports.
package topology
