// Package cmmn has common definitions for coordinates and
// the pdb readers.
package cmmn

import (
	"math"
)

// BlankChain is used as the chain ID when the chain column is empty.
const BlankChain = "_"

type Xyz struct{ X, Y, Z float32 }

// Dist2 is the squared distance between two points.
func (xyz Xyz) Dist2(o Xyz) float32 {
	dx := xyz.X - o.X
	dy := xyz.Y - o.Y
	dz := xyz.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Dist is the distance between two points.
func (xyz Xyz) Dist(o Xyz) float32 {
	return float32(math.Sqrt(float64(xyz.Dist2(o))))
}

// ChainID turns the byte from column 22 into a chain name. Blanks
// become BlankChain.
func ChainID(c byte) string {
	if c == ' ' || c == 0 {
		return BlankChain
	}
	return string(c)
}
