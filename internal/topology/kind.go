// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package topology

import (
	"encoding/json"
	"fmt"
)

// Kind_e is an enum for the shape of a grid's cells.
type Kind_e int

const (
	Square Kind_e = iota
	Hex
)

// MarshalJSON implements the json.Marshaler interface.
func (k Kind_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(kindToString[k])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (k *Kind_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *k, ok = stringToKind[s]; !ok {
		return fmt.Errorf("invalid Kind %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (k Kind_e) String() string {
	if str, ok := kindToString[k]; ok {
		return str
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NumDirections returns the size of the closed direction set for this kind:
// 4 for a square grid, 6 for a hex grid.
func (k Kind_e) NumDirections() int {
	switch k {
	case Hex:
		return 6
	default:
		return 4
	}
}

var (
	kindToString = map[Kind_e]string{
		Square: "Square",
		Hex:    "Hex",
	}
	stringToKind = map[string]Kind_e{
		"Square": Square,
		"Hex":    Hex,
	}
)
