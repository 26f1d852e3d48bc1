// Package voxelstore provides a read-only accessor over a 3D grid of
// scalar voxel intensities, the substrate the Labeler scans. It mirrors the
// flat row-major storage the teacher module uses for its Volume type
// (internal/models.Volume), generalized over the element type so a single
// accessor serves binary masks, labeled gray levels and raw intensities
// alike.
package voxelstore

// Numeric is the set of scalar element types a VoxelStore may be backed by.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~int16 | ~int32 | ~float32 | ~float64
}

// VoxelStore is a read-only 3D grid of scalar voxel intensities.
type VoxelStore interface {
	Width() int
	Height() int
	Depth() int
	At(x, y, z int) float64
}

// Dense is a VoxelStore backed by a flat, z-major slice of type T.
type Dense[T Numeric] struct {
	width, height, depth int
	data                  []T
}

// NewDense wraps data as a width x height x depth grid. data must have
// exactly width*height*depth elements, stored z-major (slice index =
// (z*height+y)*width+x).
func NewDense[T Numeric](width, height, depth int, data []T) *Dense[T] {
	if len(data) != width*height*depth {
		panic("voxelstore: data length does not match width*height*depth")
	}
	return &Dense[T]{width: width, height: height, depth: depth, data: data}
}

// NewDenseZero allocates a zero-filled width x height x depth grid.
func NewDenseZero[T Numeric](width, height, depth int) *Dense[T] {
	return &Dense[T]{width: width, height: height, depth: depth, data: make([]T, width*height*depth)}
}

func (d *Dense[T]) Width() int  { return d.width }
func (d *Dense[T]) Height() int { return d.height }
func (d *Dense[T]) Depth() int  { return d.depth }

// Offset returns the flat index of voxel (x, y, z).
func (d *Dense[T]) Offset(x, y, z int) int {
	return (z*d.height+y)*d.width + x
}

// At returns the voxel intensity at (x, y, z), widened to float64.
func (d *Dense[T]) At(x, y, z int) float64 {
	return float64(d.data[d.Offset(x, y, z)])
}

// Set assigns the voxel at (x, y, z).
func (d *Dense[T]) Set(x, y, z int, v T) {
	d.data[d.Offset(x, y, z)] = v
}

// Raw returns the underlying flat z-major slice.
func (d *Dense[T]) Raw() []T { return d.data }

// Image5D is the ambient, ingestion-facing view over a time series of
// volumes; it is not part of the labeling core, but is the type the CLI and
// Pipeline use to iterate frames.
type Image5D interface {
	T() int
	Frame(t int) VoxelStore
}

// DenseSeries is an Image5D backed by one Dense[T] per time point.
type DenseSeries[T Numeric] struct {
	Frames []*Dense[T]
}

func (s *DenseSeries[T]) T() int { return len(s.Frames) }

func (s *DenseSeries[T]) Frame(t int) VoxelStore { return s.Frames[t] }
