// Package perimeter estimates the perimeter (2D) or surface area (3D)
// of a digitized component via a marching border-face count plus an
// empirical correction. Grounded on computePerimeter in
// ConnectedComponentDescriptor.java.
package perimeter

import (
	"math"

	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

// Estimate returns the digitized perimeter (2D components) or surface
// area (3D components) of c, given its already-fitted ellipse/ellipsoid
// semi-axes a >= b (>= cz, unused in the correction). The correction term
// counteracts the systematic overestimate of counting exposed voxel
// faces directly.
func Estimate(c *component.Component, a, b float64) float64 {
	present := make(map[voxel.Coord]struct{}, len(c.Points))
	for _, p := range c.Points {
		present[p] = struct{}{}
	}

	is2D := c.Is2D()

	var raw float64
	if is2D {
		for _, p := range c.Points {
			exposed := 0
			for _, off := range offsets2D {
				n := voxel.Coord{X: p.X + off.X, Y: p.Y + off.Y, Z: p.Z}
				if _, ok := present[n]; !ok {
					exposed++
				}
			}
			raw += float64(exposed)
		}
	} else {
		for _, p := range c.Points {
			exposed := 0
			for _, off := range offsets3D {
				n := voxel.Coord{X: p.X + off.X, Y: p.Y + off.Y, Z: p.Z + off.Z}
				if _, ok := present[n]; !ok {
					exposed++
				}
			}
			raw += float64(exposed)
		}
	}

	size := float64(c.Size())
	if size == 0 {
		return 0
	}

	correction := math.Round(raw/size) - math.Min(a/10, b)
	return raw + correction
}

var offsets2D = []voxel.Coord{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
}

var offsets3D = []voxel.Coord{
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
}
