// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package numbermod implements the NumberMod<T> idiom used everywhere
// a scalar is built up from a base value plus a layered stack of
// config modifiers: movement cost, vision range, damage multipliers,
// displacement distance, splash ratios.
package numbermod
