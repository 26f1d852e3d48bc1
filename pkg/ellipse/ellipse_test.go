package ellipse

import (
	"math"
	"testing"

	"github.com/adufour/connectedcomponents/pkg/ccerr"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

func circlePoints(cx, cy, r float64, n int) []voxel.Coord {
	pts := make([]voxel.Coord, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, voxel.Coord{
			X: int(math.Round(cx + r*math.Cos(theta))),
			Y: int(math.Round(cy + r*math.Sin(theta))),
		})
	}
	return pts
}

func TestFit2DTooFewPoints(t *testing.T) {
	_, err := Fit2DPoints([]voxel.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err != ccerr.ErrTooFewPoints {
		t.Fatalf("got error %v, want ErrTooFewPoints", err)
	}
}

func TestFit2DApproximatesCircle(t *testing.T) {
	pts := circlePoints(10, 10, 5, 24)
	fit, err := Fit2DPoints(pts)
	if err != nil {
		t.Fatalf("Fit2DPoints returned error: %v", err)
	}
	if math.Abs(fit.SemiMajor-fit.SemiMinor) > 1.5 {
		t.Fatalf("expected near-equal axes for a circle, got major=%v minor=%v", fit.SemiMajor, fit.SemiMinor)
	}
	if math.Abs(fit.Center.X-10) > 1.5 || math.Abs(fit.Center.Y-10) > 1.5 {
		t.Fatalf("fitted center %+v far from expected (10, 10)", fit.Center)
	}
}

func TestFit3DTooFewPoints(t *testing.T) {
	_, err := Fit3DPoints([]voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	if err != ccerr.ErrTooFewPoints {
		t.Fatalf("got error %v, want ErrTooFewPoints", err)
	}
}
