// Package descriptor assembles the per-component shape statistics
// (sphericity, eccentricity, ellipse dimensions, hull fill ratio,
// geometric moments) into a single FeatureRow, the module's output
// contract. Grounded on ConnectedComponentDescriptor.java's public
// compute* methods and the Excel export column schema in
// ConnectedComponents.execute().
package descriptor

import (
	"math"

	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/ellipse"
	"github.com/adufour/connectedcomponents/pkg/geometry"
	"github.com/adufour/connectedcomponents/pkg/hull"
	"github.com/adufour/connectedcomponents/pkg/moments"
	"github.com/adufour/connectedcomponents/pkg/perimeter"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

// EllipseDimensions holds the sorted semi-axes of the best-fit
// ellipse/ellipsoid, with MinorZ only populated for 3D components.
type EllipseDimensions struct {
	Major, Minor, MinorZ float64
}

// ComputeEllipseDimensions fits an ellipse or ellipsoid to c and
// returns its semi-axes sorted major >= minor (>= minorZ in 3D).
// Mirrors computeEllipseDimensions, which sorts the 2D radii but
// leaves the 3D ones in fitted order; here both are sorted, which also
// resolves the eccentricity ordering question below.
func ComputeEllipseDimensions(c *component.Component) (EllipseDimensions, error) {
	if c.Is2D() {
		fit, err := ellipse.Fit2DComponent(c)
		if err != nil {
			return EllipseDimensions{}, err
		}
		return EllipseDimensions{Major: fit.SemiMajor, Minor: fit.SemiMinor}, nil
	}
	fit, err := ellipse.Fit3DComponent(c)
	if err != nil {
		return EllipseDimensions{}, err
	}
	radii := []float64{fit.RadiusX, fit.RadiusY, fit.RadiusZ}
	if radii[0] < radii[1] {
		radii[0], radii[1] = radii[1], radii[0]
	}
	if radii[1] < radii[2] {
		radii[1], radii[2] = radii[2], radii[1]
	}
	if radii[0] < radii[1] {
		radii[0], radii[1] = radii[1], radii[0]
	}
	return EllipseDimensions{Major: radii[0], Minor: radii[1], MinorZ: radii[2]}, nil
}

// ComputePerimeter estimates the perimeter (2D) or surface area (3D)
// of c given its fitted ellipse dimensions.
func ComputePerimeter(c *component.Component, dim EllipseDimensions) float64 {
	return perimeter.Estimate(c, dim.Major, dim.Minor)
}

// ComputeSphericity returns a value in [0, 1] comparing c's area/volume
// against that of a perfect circle/sphere of the same perimeter, per
// the isoperimetric-style formula in computeSphericity, clamped at 1 to
// absorb the digitization error that would otherwise push it slightly
// over.
func ComputeSphericity(c *component.Component, peri, area float64) float64 {
	if peri == 0 {
		return 0
	}
	dim := 2.0
	if !c.Is2D() {
		dim = 3.0
	}
	sph := (math.Pow(math.Pi, 1/dim) / peri) * math.Pow(area*dim*2, (dim-1)/dim)
	return math.Min(1, sph)
}

// ComputeEccentricity returns the ratio of the second-largest to the
// largest semi-axis of the best-fit ellipse/ellipsoid, minor/major, in
// [0, 1] (1 for a circle). Unlike the literal Java source (which divides
// the raw, unsorted fitted radii and can thus exceed 1 depending on fit
// orientation), this always receives pre-sorted EllipseDimensions so the
// ratio is stable; see the resolved ordering question in the design
// notes. A zero Major yields 0.
func ComputeEccentricity(dim EllipseDimensions) float64 {
	if dim.Major == 0 {
		return 0
	}
	return dim.Minor / dim.Major
}

// HullResult bundles the convex hull computation with the fill ratio
// derived from it.
type HullResult struct {
	Area, Volume float64
	FillRatio    float64
}

// ComputeHull runs the convex hull of c and returns its area/volume
// alongside the fill ratio (component measure / hull measure, clamped
// at 1).
func ComputeHull(c *component.Component, area float64) HullResult {
	if c.Is2D() {
		h := hull.Convex2D(c.Points)
		var ratio float64
		if h.Area > 0 {
			ratio = math.Min(1, area/h.Area)
		}
		return HullResult{Area: h.Area, FillRatio: ratio}
	}
	h := hull.Convex3D(c.Points)
	var ratio float64
	if h.Volume > 0 {
		ratio = math.Min(1, area/h.Volume)
	}
	return HullResult{Area: h.Area, Volume: h.Volume, FillRatio: ratio}
}

// FeatureRow is the flattened per-component output record, mirroring
// the Excel export column schema of ConnectedComponents.execute().
type FeatureRow struct {
	Index int
	T     int

	MassCenter voxel.FCoord

	Perimeter    float64
	Area         float64 // voxel count of the component, in 2D and 3D
	Sphericity   float64
	MajorAxis    float64
	MinorAxis    float64
	MinorAxisZ   float64
	Eccentricity float64
	HullFillRatio float64

	Moments map[[3]int]float64

	ConvexPerimeter float64
	ConvexVolume    float64

	FitError error
}

// Build computes every descriptor for c and assembles the row. A
// failed ellipse/ellipsoid fit (too few points, degenerate shape) is
// recorded in FitError; the row's shape-dependent fields are left at
// their zero value in that case, but size/position fields are still
// populated, matching the module's "still emit something for
// unfittable shapes" policy.
func Build(c *component.Component, index int) FeatureRow {
	row := FeatureRow{
		Index:      index,
		T:          c.T,
		MassCenter: c.MassCenter(),
		Area:       float64(c.Size()),
		Moments:    moments.ComputeAll(c, 2),
	}

	dim, err := ComputeEllipseDimensions(c)
	if err != nil {
		row.FitError = err
		_ = geometry.ComputeBoundingBox(c)
		return row
	}

	row.MajorAxis = dim.Major
	row.MinorAxis = dim.Minor
	row.MinorAxisZ = dim.MinorZ
	row.Eccentricity = ComputeEccentricity(dim)
	row.Perimeter = ComputePerimeter(c, dim)
	row.Sphericity = ComputeSphericity(c, row.Perimeter, row.Area)

	h := ComputeHull(c, row.Area)
	row.HullFillRatio = h.FillRatio
	row.ConvexPerimeter = h.Area
	row.ConvexVolume = h.Volume

	return row
}
