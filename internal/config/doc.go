// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads GameSettings, the JSON-encoded, one-shot
// settings bundle an Environment holds alongside its type-table
// Config: grid size and wrap mode, max players, and the script
// sandbox's recursion limits.
package config
