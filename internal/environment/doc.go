// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package environment implements Environment, the immutable-after-
// construction bundle every entity holds a handle to: the type-table
// Config, the map size, a one-shot settings slot, a mutex-guarded LRU
// of compiled scripts, and a mutex-guarded pool of in-use unique ids.
package environment
