// Package voxel defines the coordinate types shared by every downstream
// package (labeler, component, geometry, descriptors). Centralizing them
// here avoids an import cycle between component and geometry.
package voxel

// Coord is an integer voxel coordinate.
type Coord struct {
	X, Y, Z int
}

// FCoord is a coordinate in double precision, used for mass centers,
// fitted shape parameters and other derived floating quantities.
type FCoord struct {
	X, Y, Z float64
}

// Sub returns a-b.
func (a Coord) Sub(b Coord) Coord {
	return Coord{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// ToFCoord widens c to double precision.
func (c Coord) ToFCoord() FCoord {
	return FCoord{float64(c.X), float64(c.Y), float64(c.Z)}
}
