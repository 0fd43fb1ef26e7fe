// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package rules holds the Config type tables: unit/terrain/movement
// type definitions, commander and hero configuration, the attack- and
// splash-pattern descriptors a unit type is configured with, and the
// unit_power_configs layering the combat and movement engines fold
// through numbermod. Tables are loaded from CSV, matching the
// teacher's enum/config-table idiom (terrain.StringToEnum,
// units.StringToEnum) generalized to config-driven ids instead of a
// fixed enum.
package rules
