// Package component holds the materialized connected region the Labeler
// emits: an ordered list of voxel coordinates plus the aggregate stats
// descriptor modules read from it. Grounded on ConnectedComponent.java.
package component

import "github.com/adufour/connectedcomponents/pkg/voxel"

// Component is a single connected region extracted from one frame. Labels
// are created during the raster scan, Components are created and
// populated during the labeler's finalization passes, and are read-only
// to every descriptor module thereafter.
type Component struct {
	// Points holds the member voxel coordinates in raster-scan order. This
	// ordering is part of the external contract (relied upon by HullEngine
	// for deterministic output).
	Points []voxel.Coord

	// T is the time index this component belongs to.
	T int

	OnEdgeX, OnEdgeY, OnEdgeZ bool

	massCenter    voxel.FCoord
	massCenterSet bool

	bboxMin, bboxMax voxel.Coord
	bboxSet          bool
}

// New creates an empty Component for `sizeHint` voxels (an allocation hint),
// carrying the aggregated edge flags computed during finalization.
func New(t int, sizeHint uint64, onEdgeX, onEdgeY, onEdgeZ bool) *Component {
	return &Component{
		Points:    make([]voxel.Coord, 0, sizeHint),
		T:         t,
		OnEdgeX:   onEdgeX,
		OnEdgeY:   onEdgeY,
		OnEdgeZ:   onEdgeZ,
	}
}

// AddPoint appends a member voxel. Only called during the labeler's
// rewrite pass; Components are read-only afterwards.
func (c *Component) AddPoint(p voxel.Coord) {
	c.Points = append(c.Points, p)
	c.massCenterSet = false
	c.bboxSet = false
}

// Size returns the voxel count, which equals len(Points).
func (c *Component) Size() uint64 { return uint64(len(c.Points)) }

// MassCenter returns the mean of Points in floating coordinates, computed
// once and memoized.
func (c *Component) MassCenter() voxel.FCoord {
	if c.massCenterSet {
		return c.massCenter
	}
	var sx, sy, sz float64
	for _, p := range c.Points {
		sx += float64(p.X)
		sy += float64(p.Y)
		sz += float64(p.Z)
	}
	n := float64(len(c.Points))
	if n > 0 {
		c.massCenter = voxel.FCoord{X: sx / n, Y: sy / n, Z: sz / n}
	}
	c.massCenterSet = true
	return c.massCenter
}

// BoundingBox returns the min/max corner of the component's voxels,
// computed once and memoized.
func (c *Component) BoundingBox() (min, max voxel.Coord) {
	if c.bboxSet {
		return c.bboxMin, c.bboxMax
	}
	if len(c.Points) == 0 {
		return voxel.Coord{}, voxel.Coord{}
	}
	min, max = c.Points[0], c.Points[0]
	for _, p := range c.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	c.bboxMin, c.bboxMax = min, max
	c.bboxSet = true
	return min, max
}

// Is2D reports whether the component's bounding box is flat along z; this
// flag gates dimensional branches in every descriptor.
func (c *Component) Is2D() bool {
	min, max := c.BoundingBox()
	return min.Z == max.Z
}

// Comparator orders two components, used by Pipeline to remap dense ids
// before emission (depth ascending/descending, or nil for arbitrary
// raster-arrival order).
type Comparator func(a, b *Component) int

// ByDepthAsc orders components by ascending mass-center Z.
func ByDepthAsc(a, b *Component) int {
	za, zb := a.MassCenter().Z, b.MassCenter().Z
	switch {
	case za < zb:
		return -1
	case za > zb:
		return 1
	default:
		return 0
	}
}

// ByDepthDesc orders components by descending mass-center Z.
func ByDepthDesc(a, b *Component) int {
	return -ByDepthAsc(a, b)
}
