package perimeter

import (
	"testing"

	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

func square(n int) *component.Component {
	c := component.New(0, uint64(n*n), false, false, false)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c.AddPoint(voxel.Coord{X: x, Y: y, Z: 0})
		}
	}
	return c
}

func TestEstimatePositiveForSquare(t *testing.T) {
	c := square(4)
	p := Estimate(c, 2, 2)
	if p <= 0 {
		t.Fatalf("Estimate() = %v, want > 0", p)
	}
}

func TestEstimateZeroSizeComponent(t *testing.T) {
	c := component.New(0, 0, false, false, false)
	if got := Estimate(c, 1, 1); got != 0 {
		t.Fatalf("Estimate() on empty component = %v, want 0", got)
	}
}

func TestEstimate3DCube(t *testing.T) {
	c := component.New(0, 8, false, false, false)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				c.AddPoint(voxel.Coord{X: x, Y: y, Z: z})
			}
		}
	}
	p := Estimate(c, 1, 1)
	if p <= 0 {
		t.Fatalf("Estimate() for cube = %v, want > 0", p)
	}
}
