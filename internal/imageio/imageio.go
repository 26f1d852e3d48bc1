// Package imageio decodes a directory of per-slice images into a
// voxelstore.Image5D. Grounded on the teacher's slice-loading step in
// pkg/reconstruction/reconstructor.go, generalized from a flat
// directory of z-slices to a t<NNNN>/z<NNNN>.{png,jpg} layout so a full
// time series can be ingested.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/adufour/connectedcomponents/pkg/voxelstore"
)

// LoadSeries reads dir/t<NNNN>/z<NNNN>.{png,jpg} for every t and z it
// finds, decodes each slice, takes the 16-bit red channel of each pixel
// as its intensity (the gray level for grayscale sources) and assembles a
// voxelstore.DenseSeries[uint16]. All frames must share the same width,
// height and depth.
func LoadSeries(dir string) (*voxelstore.DenseSeries[uint16], error) {
	tDirs, err := listSorted(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list time directories: %w", err)
	}
	if len(tDirs) == 0 {
		return nil, fmt.Errorf("no time directories found in %s", dir)
	}

	series := &voxelstore.DenseSeries[uint16]{Frames: make([]*voxelstore.Dense[uint16], len(tDirs))}

	for ti, tDir := range tDirs {
		frame, err := loadFrame(filepath.Join(dir, tDir))
		if err != nil {
			return nil, fmt.Errorf("failed to load frame %d: %w", ti, err)
		}
		series.Frames[ti] = frame
	}

	return series, nil
}

func loadFrame(dir string) (*voxelstore.Dense[uint16], error) {
	files, err := listSorted(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no slices found in %s", dir)
	}

	var width, height int
	var data []uint16

	for zi, name := range files {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to open slice %s: %w", name, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode slice %s: %w", name, err)
		}

		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		if zi == 0 {
			width, height = w, h
			data = make([]uint16, width*height*len(files))
		} else if w != width || h != height {
			return nil, fmt.Errorf("slice %s has mismatched dimensions %dx%d, expected %dx%d", name, w, h, width, height)
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				gr, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				data[(zi*height+y)*width+x] = uint16(gr)
			}
		}
	}

	return voxelstore.NewDense(width, height, len(files), data), nil
}

func listSorted(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
