// Package geometry provides the bounding-box, bounding-sphere and
// distance primitives shared by the shape descriptors. Grounded on the
// computeBoundingBox/computeBoundingSphere helpers in
// ConnectedComponentDescriptor.java.
package geometry

import (
	"math"

	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

// BoundingBox is the axis-aligned extent of a component, in voxel units.
type BoundingBox struct {
	Min, Max voxel.Coord
}

// Size returns the per-axis extent, inclusive of both endpoints.
func (b BoundingBox) Size() voxel.Coord {
	return voxel.Coord{
		X: b.Max.X - b.Min.X + 1,
		Y: b.Max.Y - b.Min.Y + 1,
		Z: b.Max.Z - b.Min.Z + 1,
	}
}

// ComputeBoundingBox delegates to the component's memoized bounding box.
func ComputeBoundingBox(c *component.Component) BoundingBox {
	min, max := c.BoundingBox()
	return BoundingBox{Min: min, Max: max}
}

// BoundingSphere is the smallest sphere (by simple two-pass estimate,
// not a true minimal enclosing sphere) centered on the component's mass
// center and covering all its voxels.
type BoundingSphere struct {
	Center voxel.FCoord
	Radius float64
}

// ComputeBoundingSphere returns the sphere centered at c's mass center
// whose radius is the distance to the farthest member voxel.
func ComputeBoundingSphere(c *component.Component) BoundingSphere {
	center := c.MassCenter()
	var maxDistSq float64
	for _, p := range c.Points {
		fp := p.ToFCoord()
		dx, dy, dz := fp.X-center.X, fp.Y-center.Y, fp.Z-center.Z
		d2 := dx*dx + dy*dy + dz*dz
		if d2 > maxDistSq {
			maxDistSq = d2
		}
	}
	return BoundingSphere{Center: center, Radius: math.Sqrt(maxDistSq)}
}

// Distance returns the Euclidean distance between two float coordinates.
func Distance(a, b voxel.FCoord) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
