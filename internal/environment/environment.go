// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package environment

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/stratecide/tactics-core/internal/config"
	"github.com/stratecide/tactics-core/internal/ids"
	"github.com/stratecide/tactics-core/internal/rules"
	"github.com/stratecide/tactics-core/internal/topology"
)

// Error implements the cerrs constant-error idiom.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrSettingsAlreadySet = Error("environment: settings already set")
)

// MapSize is the board's extent and grid shape, fixed for the
// Environment's lifetime.
type MapSize struct {
	Kind   topology.Kind_e
	Width  int
	Height int
}

// scriptCacheSize bounds the compiled-script LRU; scripts are small
// and compiled once per (filename, function, arity), so a modest
// cache comfortably covers a match's whole config.
const scriptCacheSize = 256

// Environment is the shared Config + MapSize + optional GameSettings
// bundle from spec.md §3, plus the mutex-guarded script cache and
// unique-id pool from spec.md §5.
type Environment struct {
	Config  *rules.Config
	MapSize MapSize

	settingsMu sync.Mutex
	settings   *config.GameSettings

	scriptCache *lru.Cache[string, any]
	ids         *ids.Pool
}

// New builds an Environment around cfg, size and an id-pool
// randomness source.
func New(cfg *rules.Config, size MapSize, rng ids.Source) *Environment {
	cache, err := lru.New[string, any](scriptCacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size, which
		// scriptCacheSize never is.
		panic(err)
	}
	return &Environment{
		Config:      cfg,
		MapSize:     size,
		scriptCache: cache,
		ids:         ids.New(rng),
	}
}

// SetSettings performs the one-shot None -> Some transition at game
// start. A second call panics, per spec.md §5.
func (e *Environment) SetSettings(s *config.GameSettings) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	if e.settings != nil {
		panic(ErrSettingsAlreadySet)
	}
	e.settings = s
}

// Settings returns the game settings, or nil before SetSettings has
// been called.
func (e *Environment) Settings() *config.GameSettings {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	return e.settings
}

// CachedScript returns the compiled script stored under key, if any.
func (e *Environment) CachedScript(key string) (any, bool) {
	return e.scriptCache.Get(key)
}

// StoreScript caches a compiled script under key.
func (e *Environment) StoreScript(key string, compiled any) {
	e.scriptCache.Add(key, compiled)
}

// AcquireID mints a new unique id from the environment's pool.
func (e *Environment) AcquireID() uint64 {
	return e.ids.Acquire()
}

// ReleaseID frees id for reuse.
func (e *Environment) ReleaseID(id uint64) {
	e.ids.Release(id)
}
