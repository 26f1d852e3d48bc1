package hull

import (
	"testing"

	"github.com/adufour/connectedcomponents/pkg/voxel"
)

func TestConvex2DUnitSquare(t *testing.T) {
	pts := []voxel.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	res := Convex2D(pts)
	if len(res.Vertices) != 4 {
		t.Fatalf("got %d hull vertices, want 4", len(res.Vertices))
	}
	if res.Area != 1 {
		t.Fatalf("area = %v, want 1", res.Area)
	}
}

func TestConvex2DSinglePointFallback(t *testing.T) {
	res := Convex2D([]voxel.Coord{{X: 3, Y: 4}})
	if res.Area != 1 {
		t.Fatalf("area = %v, want 1 for a single point", res.Area)
	}
}

func TestConvex2DInteriorPointsDiscarded(t *testing.T) {
	// A 3x3 block of points: the interior point and the collinear edge
	// midpoints are dropped, leaving the 4 corners, and the area is the
	// full square (2x2).
	var pts []voxel.Coord
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 2; x++ {
			pts = append(pts, voxel.Coord{X: x, Y: y})
		}
	}
	res := Convex2D(pts)
	if res.Area != 4 {
		t.Fatalf("area = %v, want 4", res.Area)
	}
}

func TestConvex3DTooFewPointsFallback(t *testing.T) {
	pts := []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	res := Convex3D(pts)
	if res.Area != 3 || res.Volume != 3 {
		t.Fatalf("got area=%v volume=%v, want 3, 3", res.Area, res.Volume)
	}
}

func TestConvex3DCoplanarFallback(t *testing.T) {
	pts := []voxel.Coord{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	}
	res := Convex3D(pts)
	if res.Area != 4 || res.Volume != 4 {
		t.Fatalf("got area=%v volume=%v, want 4, 4 for coplanar points", res.Area, res.Volume)
	}
}

func TestConvex3DUnitCube(t *testing.T) {
	var pts []voxel.Coord
	for x := 0; x <= 1; x++ {
		for y := 0; y <= 1; y++ {
			for z := 0; z <= 1; z++ {
				pts = append(pts, voxel.Coord{X: x, Y: y, Z: z})
			}
		}
	}
	res := Convex3D(pts)
	if res.Volume <= 0 {
		t.Fatalf("volume = %v, want a positive volume for a cube hull", res.Volume)
	}
	if res.Area <= 0 {
		t.Fatalf("area = %v, want a positive surface area for a cube hull", res.Area)
	}
}
