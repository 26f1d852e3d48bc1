package labeler

import (
	"testing"

	"github.com/adufour/connectedcomponents/pkg/ccerr"
	"github.com/adufour/connectedcomponents/pkg/voxel"
	"github.com/adufour/connectedcomponents/pkg/voxelstore"
)

func TestSingleComponentInAllForegroundGrid(t *testing.T) {
	// 3x3x1 grid, all foreground (background value 0, every voxel 1):
	// exactly one component of size 9.
	data := make([]uint8, 9)
	for i := range data {
		data[i] = 1
	}
	frame := voxelstore.NewDense(3, 3, 1, data)

	comps, err := Label(frame, 0, Options{Mode: BackgroundAll, Value: 0})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if comps[0].Size() != 9 {
		t.Fatalf("component size = %d, want 9", comps[0].Size())
	}
	if !comps[0].OnEdgeX || !comps[0].OnEdgeY {
		t.Fatalf("expected component to be flagged on both x and y edges")
	}
}

func TestExactValueSingleVoxel(t *testing.T) {
	// 5x5x5 grid, every voxel 0 except one voxel with value 7; ExactValue
	// mode with Value=7 should yield exactly one size-1 component.
	data := make([]uint8, 5*5*5)
	frame := voxelstore.NewDense(5, 5, 5, data)
	frame.Set(2, 2, 2, 7)

	comps, err := Label(frame, 0, Options{Mode: ExactValue, Value: 7})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if comps[0].Size() != 1 {
		t.Fatalf("component size = %d, want 1", comps[0].Size())
	}
	if comps[0].OnEdgeX || comps[0].OnEdgeY || comps[0].OnEdgeZ {
		t.Fatalf("center voxel should not be flagged on any edge")
	}
	got := comps[0].Points[0]
	if got != (voxel.Coord{X: 2, Y: 2, Z: 2}) {
		t.Fatalf("component point = %+v, want {2 2 2}", got)
	}
}

func TestTwoSquaresWithEdgeDiscard(t *testing.T) {
	// 10x10x1 grid with two disjoint 2x2 foreground squares: one touching
	// the x=0 edge, one fully interior. NoEdgeX should discard only the
	// edge-touching one.
	w, h := 10, 10
	data := make([]uint8, w*h)
	set := func(x, y int) { data[y*w+x] = 1 }

	// square A: touches x == 0
	set(0, 0)
	set(1, 0)
	set(0, 1)
	set(1, 1)

	// square B: fully interior
	set(5, 5)
	set(6, 5)
	set(5, 6)
	set(6, 6)

	frame := voxelstore.NewDense(w, h, 1, data)

	comps, err := Label(frame, 0, Options{Mode: BackgroundAll, Value: 0, NoEdgeX: true})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1 (edge square discarded)", len(comps))
	}
	if comps[0].Size() != 4 {
		t.Fatalf("surviving component size = %d, want 4", comps[0].Size())
	}
	if comps[0].OnEdgeX {
		t.Fatalf("surviving component should not be edge-flagged on x")
	}
}

func TestBackgroundLabeledSplitsByIntensity(t *testing.T) {
	// 2x2x1 grid, all four voxels foreground but two distinct intensities
	// diagonally placed so they are 8-connected to each other; in
	// BackgroundLabeled mode distinct intensities must not fuse.
	w, h := 2, 2
	data := []uint8{
		5, 9,
		9, 5,
	}
	frame := voxelstore.NewDense(w, h, 1, data)

	comps, err := Label(frame, 0, Options{Mode: BackgroundLabeled, Value: 0})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2 (one per intensity)", len(comps))
	}
	for _, c := range comps {
		if c.Size() != 2 {
			t.Fatalf("component size = %d, want 2", c.Size())
		}
	}
}

func TestMinSizeFiltersSmallComponents(t *testing.T) {
	w, h := 6, 1
	data := []uint8{1, 0, 1, 1, 1, 0}
	frame := voxelstore.NewDense(w, h, 1, data)

	comps, err := Label(frame, 0, Options{Mode: BackgroundAll, Value: 0, MinSize: 2})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if comps[0].Size() != 3 {
		t.Fatalf("surviving component size = %d, want 3", comps[0].Size())
	}
}

func TestInvalidBoundsRejected(t *testing.T) {
	frame := voxelstore.NewDense(2, 2, 1, make([]uint8, 4))
	_, err := Label(frame, 0, Options{Mode: BackgroundAll, MinSize: 10, MaxSize: 5})
	if err != ccerr.ErrInvalidBounds {
		t.Fatalf("got error %v, want ErrInvalidBounds", err)
	}
}

func TestEmptyFrameRejected(t *testing.T) {
	frame := voxelstore.NewDense[uint8](0, 0, 0, nil)
	_, err := Label(frame, 0, Options{Mode: BackgroundAll})
	if err != ccerr.ErrEmptyInput {
		t.Fatalf("got error %v, want ErrEmptyInput", err)
	}
}

func Test3DConnectivityAcrossSlices(t *testing.T) {
	// A single foreground voxel at z=0 diagonally touching a single
	// foreground voxel at z=1 must fuse into one component under
	// 26-connectivity.
	w, h, d := 3, 3, 2
	data := make([]uint8, w*h*d)
	idx := func(x, y, z int) int { return (z*h+y)*w + x }
	data[idx(0, 0, 0)] = 1
	data[idx(1, 1, 1)] = 1

	frame := voxelstore.NewDense(w, h, d, data)
	comps, err := Label(frame, 0, Options{Mode: BackgroundAll, Value: 0})
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if comps[0].Size() != 2 {
		t.Fatalf("component size = %d, want 2", comps[0].Size())
	}
}
