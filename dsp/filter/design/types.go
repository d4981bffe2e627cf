package design

import (
	"fmt"
	"strings"
)

// FilterType selects the response family produced by a [Table] entry.
type FilterType int

const (
	Peak FilterType = iota
	LowShelf
	HighShelf
	TiltShelf
	LowPass
	HighPass
	BandPass
	Notch

	numFilterTypes
)

var filterTypeNames = [numFilterTypes]string{
	Peak:      "peak",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
	TiltShelf: "tilt",
	LowPass:   "lowpass",
	HighPass:  "highpass",
	BandPass:  "bandpass",
	Notch:     "notch",
}

// Valid reports whether t is one of the defined filter types.
func (t FilterType) Valid() bool {
	return t >= 0 && t < numFilterTypes
}

// String returns the lower-case name used by [ParseFilterType].
func (t FilterType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}
	return filterTypeNames[t]
}

// FilterTypes returns every defined filter type in declaration order.
func FilterTypes() []FilterType {
	out := make([]FilterType, numFilterTypes)
	for i := range out {
		out[i] = FilterType(i)
	}
	return out
}

// ParseFilterType maps a name to its FilterType. Matching is
// case-insensitive and accepts a few common aliases.
func ParseFilterType(s string) (FilterType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "bell", "peaking":
		return Peak, nil
	case "ls", "low-shelf":
		return LowShelf, nil
	case "hs", "high-shelf":
		return HighShelf, nil
	case "tiltshelf":
		return TiltShelf, nil
	case "lp", "low-pass":
		return LowPass, nil
	case "hp", "high-pass":
		return HighPass, nil
	case "bp", "band-pass":
		return BandPass, nil
	}

	for i, n := range filterTypeNames {
		if n == name {
			return FilterType(i), nil
		}
	}

	return Peak, fmt.Errorf("design: unknown filter type %q", s)
}
