// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/stratecide/tactics-core/cerrs"
	"github.com/stratecide/tactics-core/internal/topology"
)

// GameSettings is the JSON-encoded settings bundle an Environment
// holds in its one-shot settings slot: grid shape and size, wrap
// generators, player count, and the script sandbox's recursion
// limits.
type GameSettings struct {
	Grid   Grid_t   `json:"Grid"`
	Script Script_t `json:"Script"`
	MaxPlayers int   `json:"MaxPlayers,omitempty"`
}

// Grid_t describes the board shape handed to topology.Build.
type Grid_t struct {
	Kind      topology.Kind_e `json:"Kind"`
	Width     int             `json:"Width,omitempty"`
	Height    int             `json:"Height,omitempty"`
	HexParity bool            `json:"HexParity,omitempty"`
	Wraps     []Wrap_t        `json:"Wraps,omitempty"`
}

// Wrap_t is one generator transformation, JSON-friendly.
type Wrap_t struct {
	Mirrored  bool                 `json:"Mirrored,omitempty"`
	Rotation  topology.Direction_e `json:"Rotation"`
	TranslateA int                 `json:"TranslateA,omitempty"`
	TranslateB int                 `json:"TranslateB,omitempty"`
}

// Transformation converts w into the topology.Transformation form
// topology.Build consumes.
func (w Wrap_t) Transformation() topology.Transformation {
	return topology.Transformation{
		Distortion:  topology.Distortion{Mirrored: w.Mirrored, Rotation: w.Rotation},
		TranslateBy: topology.Translation{A: w.TranslateA, B: w.TranslateB},
	}
}

// Script_t bounds the scripting bridge's recursion, per spec.md §5:
// max call depth 8, max expression depth 64 for the outer form and 32
// for nested forms.
type Script_t struct {
	MaxCallDepth       int `json:"MaxCallDepth,omitempty"`
	MaxExpressionDepth int `json:"MaxExpressionDepth,omitempty"`
	MaxNestedDepth     int `json:"MaxNestedDepth,omitempty"`
}

// Default returns the settings used when no config file is present.
func Default() *GameSettings {
	return &GameSettings{
		Grid: Grid_t{
			Kind:   topology.Square,
			Width:  20,
			Height: 20,
		},
		Script: Script_t{
			MaxCallDepth:       8,
			MaxExpressionDepth: 64,
			MaxNestedDepth:     32,
		},
		MaxPlayers: 4,
	}
}

// Load reads name, merging non-zero fields over Default(), matching
// the teacher's internal/config.Load shape. A missing file is not an
// error: Default() is returned as-is.
func Load(name string, debug bool) (*GameSettings, error) {
	if debug {
		log.Printf("[config] %q: loading settings...\n", name)
	}
	cfg := Default()
	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.IsDir() {
		return cfg, cerrs.ErrNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	var tmp GameSettings
	if err = json.Unmarshal(data, &tmp); err != nil {
		return cfg, err
	}
	if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}
	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src onto
// dst, the same reflection-driven overlay the teacher's config loader
// uses so a partial JSON file only overrides what it mentions.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)
		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}
		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
