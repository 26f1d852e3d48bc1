// Package moments computes central geometric moments M_pqr of a component,
// the building block for every higher-order shape descriptor. Grounded
// on computeGeometricMoment in ConnectedComponentDescriptor.java.
package moments

import (
	"math"

	"github.com/adufour/connectedcomponents/pkg/component"
)

// Compute returns the central geometric moment M_pqr = sum over member
// voxels of x^p * y^q * z^r, taken relative to the component's mass
// center. For a 2D component the z term is omitted (r is ignored).
func Compute(c *component.Component, p, q, r int) float64 {
	if c.Is2D() {
		r = 0
	}
	center := c.MassCenter()
	var m float64
	for _, pt := range c.Points {
		x, y, z := float64(pt.X)-center.X, float64(pt.Y)-center.Y, float64(pt.Z)-center.Z
		m += math.Pow(x, float64(p)) * math.Pow(y, float64(q)) * math.Pow(z, float64(r))
	}
	return m
}

// ComputeAll evaluates every moment M_pqr with p,q,r in [0,maxOrder],
// keyed by [p][q][r], matching the Excel export's M100..M222 column set
// when maxOrder == 2.
func ComputeAll(c *component.Component, maxOrder int) map[[3]int]float64 {
	out := make(map[[3]int]float64, (maxOrder+1)*(maxOrder+1)*(maxOrder+1))
	for p := 0; p <= maxOrder; p++ {
		for q := 0; q <= maxOrder; q++ {
			for r := 0; r <= maxOrder; r++ {
				out[[3]int{p, q, r}] = Compute(c, p, q, r)
			}
		}
	}
	return out
}
