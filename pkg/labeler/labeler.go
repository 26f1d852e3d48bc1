// Package labeler implements the single-pass raster-scan connected
// component extraction at the core of the module: a backward-looking
// 13-neighbor stencil feeding a union-find arena, followed by a
// backward fusion pass and a forward rewrite pass. Grounded on
// ConnectedComponents.extractConnectedComponents in the Java source.
package labeler

import (
	"math"

	"github.com/adufour/connectedcomponents/pkg/ccerr"
	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/labelarena"
	"github.com/adufour/connectedcomponents/pkg/voxel"
	"github.com/adufour/connectedcomponents/pkg/voxelstore"
)

// ExtractionMode selects which voxels start a new component and how
// neighbors are allowed to fuse with them.
type ExtractionMode int

const (
	// BackgroundAll treats every voxel not equal to Options.Value as
	// foreground, regardless of intensity; all such voxels may fuse with
	// each other irrespective of their individual values.
	BackgroundAll ExtractionMode = iota

	// BackgroundLabeled treats every voxel not equal to Options.Value as
	// foreground, but two foreground voxels only fuse if they carry the
	// same intensity; this is the mode that produces one component per
	// (intensity, connected-region) pair.
	BackgroundLabeled

	// ExactValue treats only voxels equal to Options.Value as foreground.
	ExactValue

	// RegionOfInterest is an alias for BackgroundLabeled with Value fixed
	// at 0, kept as a distinct mode so callers can express intent without
	// hardcoding the sentinel value themselves.
	RegionOfInterest
)

// Options configures one labeling run over a single frame.
type Options struct {
	Mode  ExtractionMode
	Value float64

	// MinSize and MaxSize bound the accepted component voxel count,
	// inclusive. MaxSize == 0 means "no upper bound".
	MinSize, MaxSize uint64

	// NoEdgeX/Y/Z discard any component touching the corresponding frame
	// boundary. NoEdgeZ is ignored for 2D frames (Depth() == 1).
	NoEdgeX, NoEdgeY, NoEdgeZ bool
}

func (o Options) validate() error {
	if o.MaxSize != 0 && o.MinSize > o.MaxSize {
		return ccerr.ErrInvalidBounds
	}
	return nil
}

// isForeground reports whether the voxel at value v starts or extends a
// component under mode/value.
func isForeground(mode ExtractionMode, value, v float64) bool {
	switch mode {
	case ExactValue:
		return v == value
	default: // BackgroundAll, BackgroundLabeled, RegionOfInterest
		return v != value
	}
}

// sameClass reports whether a foreground voxel of intensity v may fuse
// with a neighbor label carrying intensity neighborValue.
func sameClass(mode ExtractionMode, v, neighborValue float64) bool {
	switch mode {
	case BackgroundLabeled, RegionOfInterest:
		return v == neighborValue
	default:
		return true
	}
}

// Label runs the full three-pass extraction over one frame and returns
// the materialized components, in raster-arrival order of their final
// (post-fusion) canonical label. frame must have Depth() >= 1; a 2D
// frame is Depth() == 1.
func Label(frame voxelstore.VoxelStore, t int, opts Options) ([]*component.Component, error) {
	w, h, d := frame.Width(), frame.Height(), frame.Depth()
	if w == 0 || h == 0 || d == 0 {
		return nil, ccerr.ErrEmptyInput
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	is2D := d == 1
	noEdgeZ := opts.NoEdgeZ && !is2D

	arena := labelarena.New((w*h*d)/2 + 1)

	// currentSlice and upperSlice hold the raw (pre-fusion) label ids
	// assigned so far, z-major within the slice, addressed (y*w+x).
	// upperSlice is the slice at z-1, nil when z == 0.
	currentSlice := make([]uint32, w*h)
	var upperSlice []uint32

	var neighbors [13]uint32

	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := frame.At(x, y, z)
				idx := y*w + x
				if !isForeground(opts.Mode, opts.Value, v) {
					currentSlice[idx] = 0
					continue
				}

				n := collectNeighbors(neighbors[:], currentSlice, upperSlice, w, h, x, y, z)

				var min uint32
				have := false
				for i := 0; i < n; i++ {
					id := neighbors[i]
					if id == 0 {
						continue
					}
					if !sameClass(opts.Mode, v, arena.Get(arena.Resolve(id)).ImageValue) {
						continue
					}
					if !have || id < min {
						min = id
						have = true
					}
				}

				if !have {
					if uint64(arena.Len()) >= math.MaxUint32 {
						return nil, ccerr.ErrOverflow
					}
					min = arena.Alloc(v)
				} else {
					for i := 0; i < n; i++ {
						id := neighbors[i]
						if id == 0 || id == min {
							continue
						}
						if !sameClass(opts.Mode, v, arena.Get(arena.Resolve(id)).ImageValue) {
							continue
						}
						if id > min {
							arena.Union(min, id)
						}
					}
				}

				lbl := arena.Get(min)
				lbl.Size++
				if x == 0 || x == w-1 {
					lbl.OnEdgeX = true
				}
				if y == 0 || y == h-1 {
					lbl.OnEdgeY = true
				}
				if !is2D && (z == 0 || z == d-1) {
					lbl.OnEdgeZ = true
				}

				currentSlice[idx] = min
			}
		}
		upperSlice, currentSlice = currentSlice, upperSlice
		if currentSlice == nil {
			currentSlice = make([]uint32, w*h)
		}
	}

	// Pass 2: backward fusion (H -> 1) and constraint filtering. Produces
	// a dense remap from canonical arena id -> final Component (or nil if
	// discarded).
	highest := arena.Len()
	finals := make([]*component.Component, highest+1)
	for id := highest; id >= 1; id-- {
		lbl := arena.Get(uint32(id))
		if lbl.TargetRef != 0 {
			target := arena.Get(arena.Resolve(lbl.TargetRef))
			target.Size += lbl.Size
			target.OnEdgeX = target.OnEdgeX || lbl.OnEdgeX
			target.OnEdgeY = target.OnEdgeY || lbl.OnEdgeY
			target.OnEdgeZ = target.OnEdgeZ || lbl.OnEdgeZ
			continue
		}
		if opts.MinSize != 0 && lbl.Size < opts.MinSize {
			continue
		}
		if opts.MaxSize != 0 && lbl.Size > opts.MaxSize {
			continue
		}
		if opts.NoEdgeX && lbl.OnEdgeX {
			continue
		}
		if opts.NoEdgeY && lbl.OnEdgeY {
			continue
		}
		if noEdgeZ && lbl.OnEdgeZ {
			continue
		}
		finals[id] = component.New(t, lbl.Size, lbl.OnEdgeX, lbl.OnEdgeY, lbl.OnEdgeZ)
	}

	// Pass 3: forward rewrite. Re-derives each voxel's raw label (the
	// assignment is deterministic given the same scan order and arena
	// state) and appends it to its Component if it survived pass 2.
	return materialize(frame, t, opts, arena, finals)
}

// collectNeighbors fills dst with the up-to-13 backward neighbor label ids
// for voxel (x,y,z) per the 9-way switch in the original implementation,
// and returns how many slots were filled. A filled slot may still be 0
// (background); callers filter those out.
func collectNeighbors(dst []uint32, current, upper []uint32, w, h, x, y, z int) int {
	n := 0
	add := func(v uint32) {
		dst[n] = v
		n++
	}

	if z == 0 {
		if y == 0 {
			if x == 0 {
				return 0
			}
			add(current[y*w+x-1])
			return n
		}
		if x == 0 {
			add(current[(y-1)*w+x])
			if x+1 < w {
				add(current[(y-1)*w+x+1])
			}
			return n
		}
		if x == w-1 {
			add(current[y*w+x-1])
			add(current[(y-1)*w+x-1])
			add(current[(y-1)*w+x])
			return n
		}
		add(current[y*w+x-1])
		add(current[(y-1)*w+x-1])
		add(current[(y-1)*w+x])
		add(current[(y-1)*w+x+1])
		return n
	}

	// z > 0: upper slice contributes a full 3x3 neighborhood (9 cells,
	// clipped at borders), current slice contributes the same backward
	// neighbors as the z==0 case.
	ylo, yhi := y-1, y+1
	xlo, xhi := x-1, x+1
	for yy := ylo; yy <= yhi; yy++ {
		if yy < 0 || yy >= h {
			continue
		}
		for xx := xlo; xx <= xhi; xx++ {
			if xx < 0 || xx >= w {
				continue
			}
			add(upper[yy*w+xx])
		}
	}

	if y == 0 {
		if x > 0 {
			add(current[y*w+x-1])
		}
		return n
	}
	if x == 0 {
		add(current[(y-1)*w+x])
		if x+1 < w {
			add(current[(y-1)*w+x+1])
		}
		return n
	}
	if x == w-1 {
		add(current[y*w+x-1])
		add(current[(y-1)*w+x-1])
		add(current[(y-1)*w+x])
		return n
	}
	add(current[y*w+x-1])
	add(current[(y-1)*w+x-1])
	add(current[(y-1)*w+x])
	add(current[(y-1)*w+x+1])
	return n
}

// materialize performs the forward rewrite pass: rescans the frame in
// raster order, re-derives each voxel's raw label by replaying the same
// neighbor-driven min-selection pass 1 used (deterministic, since the
// arena's allocation and union history is already fixed), resolves it
// to its canonical id, and appends the voxel to the surviving Component.
func materialize(frame voxelstore.VoxelStore, t int, opts Options, arena *labelarena.Arena, finals []*component.Component) ([]*component.Component, error) {
	w, h, d := frame.Width(), frame.Height(), frame.Depth()

	currentSlice := make([]uint32, w*h)
	var upperSlice []uint32
	var neighbors [13]uint32

	nextAlloc := uint32(1)

	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := frame.At(x, y, z)
				idx := y*w + x
				if !isForeground(opts.Mode, opts.Value, v) {
					currentSlice[idx] = 0
					continue
				}

				n := collectNeighbors(neighbors[:], currentSlice, upperSlice, w, h, x, y, z)

				var min uint32
				have := false
				for i := 0; i < n; i++ {
					id := neighbors[i]
					if id == 0 {
						continue
					}
					if !sameClass(opts.Mode, v, arena.Get(arena.Resolve(id)).ImageValue) {
						continue
					}
					if !have || id < min {
						min = id
						have = true
					}
				}

				if !have {
					min = nextAlloc
					nextAlloc++
				}

				currentSlice[idx] = min

				canon := arena.Resolve(min)
				if c := finals[canon]; c != nil {
					c.AddPoint(voxel.Coord{X: x, Y: y, Z: z})
				}
			}
		}
		upperSlice, currentSlice = currentSlice, upperSlice
		if currentSlice == nil {
			currentSlice = make([]uint32, w*h)
		}
	}

	out := make([]*component.Component, 0, len(finals))
	for _, c := range finals {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}
