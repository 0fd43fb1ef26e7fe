// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

import (
	"encoding/json"
	"fmt"
)

// Direction_e is an enum for a direction out of a cell. The same type
// serves both square (4-direction) and hex (6-direction) grids; every
// method that depends on the size of the set takes a Kind_e so the
// modulus is correct. Values are the eight compass points listed
// clockwise starting at North; each kind uses a subset of them (see
// SquareDirections and HexDirections below for the canonical
// ordering of each).
type Direction_e int

const (
	North Direction_e = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// SquareDirections is the canonical, total-ordered direction set for a
// Square-kind grid.
var SquareDirections = []Direction_e{North, East, South, West}

// HexDirections is the canonical, total-ordered direction set for a
// Hex-kind grid (flat-top, clockwise from North).
var HexDirections = []Direction_e{North, NorthEast, SouthEast, South, SouthWest, NorthWest}

// Directions returns the closed, totally ordered direction set for kind.
func Directions(kind Kind_e) []Direction_e {
	if kind == Hex {
		return HexDirections
	}
	return SquareDirections
}

// index returns d's position within kind's direction set, or -1 if d
// does not belong to that set.
func index(kind Kind_e, d Direction_e) int {
	for i, v := range Directions(kind) {
		if v == d {
			return i
		}
	}
	return -1
}

// fromIndex maps a position back into kind's direction set, wrapping
// modulo the set's size — this is how rotation by n steps is computed.
func fromIndex(kind Kind_e, i int) Direction_e {
	ds := Directions(kind)
	n := len(ds)
	return ds[((i%n)+n)%n]
}

// RotateCW rotates d clockwise by steps sectors (steps may be negative
// for counter-clockwise) within kind's direction set.
func (d Direction_e) RotateCW(kind Kind_e, steps int) Direction_e {
	i := index(kind, d)
	if i < 0 {
		return d
	}
	return fromIndex(kind, i+steps)
}

// Opposite returns the direction 180 degrees from d.
func (d Direction_e) Opposite(kind Kind_e) Direction_e {
	return d.RotateCW(kind, kind.NumDirections()/2)
}

// MirrorHorizontal reflects d across the vertical (north-south) axis,
// swapping east and west while fixing North and South.
func (d Direction_e) MirrorHorizontal(kind Kind_e) Direction_e {
	i := index(kind, d)
	if i < 0 {
		return d
	}
	n := kind.NumDirections()
	return fromIndex(kind, (n-i)%n)
}

// MirrorVertical reflects d across the horizontal (east-west) axis,
// swapping north and south.
func (d Direction_e) MirrorVertical(kind Kind_e) Direction_e {
	i := index(kind, d)
	if i < 0 {
		return d
	}
	n := kind.NumDirections()
	return fromIndex(kind, (n/2-i+n)%n)
}

// Less gives the total order over a kind's direction set (position in
// the canonical clockwise-from-North listing).
func (d Direction_e) Less(kind Kind_e, other Direction_e) bool {
	return index(kind, d) < index(kind, other)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Direction_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(directionToString[d])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Direction_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *d, ok = stringToDirection[s]; !ok {
		return fmt.Errorf("invalid Direction %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (d Direction_e) String() string {
	if str, ok := directionToString[d]; ok {
		return str
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

var (
	directionToString = map[Direction_e]string{
		North:     "N",
		NorthEast: "NE",
		East:      "E",
		SouthEast: "SE",
		South:     "S",
		SouthWest: "SW",
		West:      "W",
		NorthWest: "NW",
	}
	stringToDirection = map[string]Direction_e{
		"N":  North,
		"NE": NorthEast,
		"E":  East,
		"SE": SouthEast,
		"S":  South,
		"SW": SouthWest,
		"W":  West,
		"NW": NorthWest,
	}
)
