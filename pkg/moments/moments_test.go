package moments

import (
	"testing"

	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

func TestM000EqualsSize(t *testing.T) {
	c := component.New(0, 3, false, false, false)
	c.AddPoint(voxel.Coord{X: 0, Y: 0, Z: 0})
	c.AddPoint(voxel.Coord{X: 1, Y: 0, Z: 0})
	c.AddPoint(voxel.Coord{X: 2, Y: 0, Z: 0})

	if got := Compute(c, 0, 0, 0); got != 3 {
		t.Fatalf("M000 = %v, want 3", got)
	}
}

func TestFirstOrderMomentIsZeroAboutMassCenter(t *testing.T) {
	c := component.New(0, 3, false, false, false)
	c.AddPoint(voxel.Coord{X: 0, Y: 0, Z: 0})
	c.AddPoint(voxel.Coord{X: 1, Y: 0, Z: 0})
	c.AddPoint(voxel.Coord{X: 2, Y: 0, Z: 0})

	if got := Compute(c, 1, 0, 0); got < -1e-9 || got > 1e-9 {
		t.Fatalf("M100 about mass center = %v, want ~0", got)
	}
}

func TestComputeAllHasExpectedKeyCount(t *testing.T) {
	c := component.New(0, 1, false, false, false)
	c.AddPoint(voxel.Coord{X: 0, Y: 0, Z: 0})

	all := ComputeAll(c, 2)
	if len(all) != 27 {
		t.Fatalf("got %d moments, want 27 (3^3)", len(all))
	}
}
