// Package hull computes the 2D and 3D convex hull of a component's
// member voxels and derives the enclosed area/volume from it. No
// suitable third-party convex-hull library was available to wire in
// (see DESIGN.md); this is a hand-rolled monotone-chain (2D) and
// incremental visible-face/horizon (3D) implementation, grounded on the
// QuickHull2D/QuickHull3D call sites in computeConvexAreaAndVolume in
// ConnectedComponentDescriptor.java, reproducing its fallbacks for
// degenerate point sets.
package hull

import (
	"math"
	"sort"

	"github.com/adufour/connectedcomponents/pkg/voxel"
)

// Result2D is a convex hull in the XY plane plus its enclosed area.
type Result2D struct {
	Vertices []voxel.FCoord
	Area     float64
}

// Convex2D computes the convex hull of a set of (x, y) points (z
// ignored) via Andrew's monotone chain, then the shoelace area. With
// fewer than 3 distinct points the hull degenerates to the points
// themselves and area is reported as len(points), matching the
// source's n==1 -> (0,1) and coplanar/<4-point 3D fallbacks carried
// through to the 2D case for symmetry.
func Convex2D(points []voxel.Coord) Result2D {
	pts := dedupe2D(points)
	if len(pts) < 3 {
		return Result2D{Vertices: toF2D(pts), Area: float64(len(pts))}
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	cross := func(o, a, b voxel.Coord) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	n := len(pts)
	hull := make([]voxel.Coord, 0, 2*n)

	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	var area float64
	for i := 0; i < len(hull); i++ {
		j := (i + 1) % len(hull)
		area += float64(hull[i].X)*float64(hull[j].Y) - float64(hull[j].X)*float64(hull[i].Y)
	}
	area = area / 2
	if area < 0 {
		area = -area
	}

	return Result2D{Vertices: toF2D(hull), Area: area}
}

// Result3D is a convex hull in 3D plus its enclosed surface area and
// volume.
type Result3D struct {
	Faces  [][3]int
	Points []voxel.FCoord
	Area   float64
	Volume float64
}

// Convex3D computes the convex hull of a set of 3D points incrementally:
// starting from a tetrahedron, each remaining point (in input order)
// replaces the faces it can see with faces fanned from the horizon. With
// a single point, (0, 1) is returned; with fewer than 4 or coplanar points the
// hull cannot enclose a volume and (n, n) is returned for (area,
// volume), matching the source's fallback for that case.
func Convex3D(points []voxel.Coord) Result3D {
	pts := dedupe3D(points)
	if len(pts) == 1 {
		return Result3D{Points: toF3D(pts), Area: 0, Volume: 1}
	}
	if len(pts) < 4 || coplanar(pts) {
		n := float64(len(pts))
		return Result3D{Points: toF3D(pts), Area: n, Volume: n}
	}

	faces := initialTetrahedron(pts)
	for i, p := range pts {
		if isTetraVertex(i, faces) {
			continue
		}
		addPoint(&faces, pts, p, i)
	}

	var area, volume float64
	for _, f := range faces {
		a, b, c := pts[f[0]].ToFCoord(), pts[f[1]].ToFCoord(), pts[f[2]].ToFCoord()
		cross := crossF(sub(b, a), sub(c, a))
		contour := 0.5 * normF(cross)
		area += contour
		volume += (cross.X*(a.X+b.X+c.X) + cross.Y*(a.Y+b.Y+c.Y) + cross.Z*(a.Z+b.Z+c.Z)) / 18
	}
	if volume < 0 {
		volume = -volume
	}

	return Result3D{Faces: faces, Points: toF3D(pts), Area: area, Volume: volume}
}

func isTetraVertex(i int, faces [][3]int) bool {
	for _, f := range faces {
		if f[0] == i || f[1] == i || f[2] == i {
			return true
		}
	}
	return false
}

// initialTetrahedron picks 4 affinely independent points and returns
// the 4 outward-oriented triangular faces of their tetrahedron.
func initialTetrahedron(pts []voxel.Coord) [][3]int {
	p0, p1 := 0, 1
	var p2 int
	for i := 2; i < len(pts); i++ {
		if crossF(sub(pts[p1].ToFCoord(), pts[p0].ToFCoord()), sub(pts[i].ToFCoord(), pts[p0].ToFCoord())) != (voxel.FCoord{}) {
			p2 = i
			break
		}
	}
	n := crossF(sub(pts[p1].ToFCoord(), pts[p0].ToFCoord()), sub(pts[p2].ToFCoord(), pts[p0].ToFCoord()))
	var p3 int
	for i := 0; i < len(pts); i++ {
		if i == p0 || i == p1 || i == p2 {
			continue
		}
		if dot(n, sub(pts[i].ToFCoord(), pts[p0].ToFCoord())) != 0 {
			p3 = i
			break
		}
	}

	faces := [][3]int{{p0, p1, p2}, {p0, p1, p3}, {p0, p2, p3}, {p1, p2, p3}}
	centroid := voxel.FCoord{
		X: (pts[p0].ToFCoord().X + pts[p1].ToFCoord().X + pts[p2].ToFCoord().X + pts[p3].ToFCoord().X) / 4,
		Y: (pts[p0].ToFCoord().Y + pts[p1].ToFCoord().Y + pts[p2].ToFCoord().Y + pts[p3].ToFCoord().Y) / 4,
		Z: (pts[p0].ToFCoord().Z + pts[p1].ToFCoord().Z + pts[p2].ToFCoord().Z + pts[p3].ToFCoord().Z) / 4,
	}
	for i, f := range faces {
		orientOutward(&faces[i], pts, centroid)
		_ = f
	}
	return faces
}

func orientOutward(f *[3]int, pts []voxel.Coord, centroid voxel.FCoord) {
	a, b, c := pts[f[0]].ToFCoord(), pts[f[1]].ToFCoord(), pts[f[2]].ToFCoord()
	n := crossF(sub(b, a), sub(c, a))
	if dot(n, sub(centroid, a)) > 0 {
		f[1], f[2] = f[2], f[1]
	}
}

// addPoint incorporates pts[idx] into the hull by removing faces it is
// in front of and stitching new faces from the exposed edge horizon to
// the new point.
func addPoint(faces *[][3]int, pts []voxel.Coord, p voxel.Coord, idx int) {
	pf := p.ToFCoord()
	visible := make([]bool, len(*faces))
	anyVisible := false
	for i, f := range *faces {
		a := pts[f[0]].ToFCoord()
		n := faceNormal(pts, f)
		if dot(n, sub(pf, a)) > 1e-9 {
			visible[i] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return
	}

	edgeCount := map[[2]int]int{}
	edgeKey := func(a, b int) [2]int {
		if a < b {
			return [2]int{a, b}
		}
		return [2]int{b, a}
	}
	for i, f := range *faces {
		if !visible[i] {
			continue
		}
		edgeCount[edgeKey(f[0], f[1])]++
		edgeCount[edgeKey(f[1], f[2])]++
		edgeCount[edgeKey(f[2], f[0])]++
	}

	var horizon [][2]int
	for i, f := range *faces {
		if !visible[i] {
			continue
		}
		edges := [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
		for _, e := range edges {
			if edgeCount[edgeKey(e[0], e[1])] == 1 {
				horizon = append(horizon, e)
			}
		}
	}

	kept := make([][3]int, 0, len(*faces))
	for i, f := range *faces {
		if !visible[i] {
			kept = append(kept, f)
		}
	}
	for _, e := range horizon {
		kept = append(kept, [3]int{e[0], e[1], idx})
	}
	*faces = kept
}

func faceNormal(pts []voxel.Coord, f [3]int) voxel.FCoord {
	a, b, c := pts[f[0]].ToFCoord(), pts[f[1]].ToFCoord(), pts[f[2]].ToFCoord()
	return crossF(sub(b, a), sub(c, a))
}

func coplanar(pts []voxel.Coord) bool {
	if len(pts) < 4 {
		return true
	}
	p0 := pts[0].ToFCoord()
	var n voxel.FCoord
	for i := 1; i < len(pts)-1; i++ {
		cand := crossF(sub(pts[i].ToFCoord(), p0), sub(pts[i+1].ToFCoord(), p0))
		if normF(cand) > 1e-9 {
			n = cand
			break
		}
	}
	if n == (voxel.FCoord{}) {
		return true
	}
	for _, p := range pts {
		if absf(dot(n, sub(p.ToFCoord(), p0))) > 1e-6*normF(n) {
			return false
		}
	}
	return true
}

func sub(a, b voxel.FCoord) voxel.FCoord { return voxel.FCoord{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
func dot(a, b voxel.FCoord) float64      { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func crossF(a, b voxel.FCoord) voxel.FCoord {
	return voxel.FCoord{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
func normF(a voxel.FCoord) float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}
func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func dedupe2D(points []voxel.Coord) []voxel.Coord {
	seen := map[[2]int]bool{}
	out := make([]voxel.Coord, 0, len(points))
	for _, p := range points {
		k := [2]int{p.X, p.Y}
		if !seen[k] {
			seen[k] = true
			out = append(out, p)
		}
	}
	return out
}

func dedupe3D(points []voxel.Coord) []voxel.Coord {
	seen := map[voxel.Coord]bool{}
	out := make([]voxel.Coord, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func toF2D(pts []voxel.Coord) []voxel.FCoord {
	out := make([]voxel.FCoord, len(pts))
	for i, p := range pts {
		out[i] = p.ToFCoord()
	}
	return out
}

func toF3D(pts []voxel.Coord) []voxel.FCoord { return toF2D(pts) }
