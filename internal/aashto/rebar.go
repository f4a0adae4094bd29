package aashto

import (
	"errors"
	"fmt"
)

// Rebar describes an ASTM standard reinforcing bar size.
type Rebar struct {
	Size     int     // bar designation, e.g. 8 for a #8 bar
	Area     float64 // nominal cross-sectional area (in²)
	Diameter float64 // nominal diameter (in)
}

// ErrUnsupportedBarSize is returned when a bar size has no table entry.
var ErrUnsupportedBarSize = errors.New("aashto: unsupported bar size")

// barTable lists the ASTM standard sizes #3 through #11.
var barTable = []Rebar{
	{Size: 3, Area: 0.11, Diameter: 0.375},
	{Size: 4, Area: 0.20, Diameter: 0.500},
	{Size: 5, Area: 0.31, Diameter: 0.625},
	{Size: 6, Area: 0.44, Diameter: 0.750},
	{Size: 7, Area: 0.60, Diameter: 0.875},
	{Size: 8, Area: 0.79, Diameter: 1.000},
	{Size: 9, Area: 1.00, Diameter: 1.128},
	{Size: 10, Area: 1.27, Diameter: 1.270},
	{Size: 11, Area: 1.56, Diameter: 1.410},
}

// BarForSize looks up the ASTM bar with the given designation.
func BarForSize(size int) (Rebar, error) {
	for _, b := range barTable {
		if b.Size == size {
			return b, nil
		}
	}
	return Rebar{}, fmt.Errorf("%w: #%d", ErrUnsupportedBarSize, size)
}

// BarSizes returns the supported bar designations in ascending order.
func BarSizes() []int {
	sizes := make([]int, len(barTable))
	for i, b := range barTable {
		sizes[i] = b.Size
	}
	return sizes
}
