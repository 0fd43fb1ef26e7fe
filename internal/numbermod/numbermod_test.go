// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package numbermod_test

import (
	"testing"

	"github.com/stratecide/tactics-core/internal/numbermod"
)

func TestFoldInt(t *testing.T) {
	mods := []numbermod.NumberMod[int]{
		{Kind: numbermod.Add, Value: 2},
		{Kind: numbermod.Mul, Value: 3},
		{Kind: numbermod.Replace, Value: 10},
		{Kind: numbermod.Add, Value: 1},
	}
	got := numbermod.Fold(1, mods)
	if got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestFoldFraction(t *testing.T) {
	base := numbermod.Int(1)
	mods := []numbermod.NumberModF{
		{Kind: numbermod.Add, Value: numbermod.NewFraction(1, 2)},
		{Kind: numbermod.Mul, Value: numbermod.Int(2)},
	}
	got := numbermod.FoldFraction(base, mods)
	want := numbermod.NewFraction(3, 1)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCell(t *testing.T) {
	cases := map[string]numbermod.Fraction{
		"":    numbermod.Int(0),
		"+1":  numbermod.Int(1),
		"-1":  numbermod.Int(-1),
		"*2":  numbermod.Int(2),
		"1.5": numbermod.NewFraction(3, 2),
	}
	for cell, want := range cases {
		mod, err := numbermod.ParseCell(cell)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", cell, err)
		}
		if mod.Value.Cmp(want) != 0 {
			t.Fatalf("ParseCell(%q).Value = %v, want %v", cell, mod.Value, want)
		}
	}
}

func TestCeil(t *testing.T) {
	if got := numbermod.NewFraction(7, 2).Ceil(); got != 4 {
		t.Fatalf("Ceil(7/2) = %d, want 4", got)
	}
	if got := numbermod.NewFraction(6, 2).Ceil(); got != 3 {
		t.Fatalf("Ceil(6/2) = %d, want 3", got)
	}
}
