// Package pipeline orchestrates labeling and descriptor extraction
// across every frame of a time series, one goroutine per frame funneled
// through a result channel, with cooperative cancellation via
// context.Context. Grounded on Reconstructor.Process and
// processSubVolumesInParallel in pkg/reconstruction/reconstructor.go.
package pipeline

import (
	"context"
	"fmt"

	"github.com/adufour/connectedcomponents/pkg/ccerr"
	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/descriptor"
	"github.com/adufour/connectedcomponents/pkg/labeler"
	"github.com/adufour/connectedcomponents/pkg/voxelstore"
)

// Params configures a full run over an Image5D.
type Params struct {
	Options    labeler.Options
	Comparator component.Comparator // nil means arbitrary raster-arrival order
}

// FrameResult is one frame's output: its materialized components plus
// the feature rows descriptor.Build derived from them, in the same
// order. Err is set if labeling that frame failed; Rows is nil in that
// case.
type FrameResult struct {
	T          int
	Components []*component.Component
	Rows       []descriptor.FeatureRow
	Err        error
}

type frameTask struct {
	t     int
	frame voxelstore.VoxelStore
}

// Run labels and describes every frame of img concurrently, one
// goroutine per frame, and returns results ordered by T regardless of
// completion order. Every frame's goroutine is started up front; each
// one checks the context before labeling and again before building
// descriptors, and reports ctx.Err() in its FrameResult if it is
// cancelled at either check. A frame already building descriptors runs
// to completion.
func Run(ctx context.Context, img voxelstore.Image5D, params Params) ([]FrameResult, error) {
	n := img.T()
	if n == 0 {
		return nil, fmt.Errorf("pipeline: image has no frames: %w", ccerr.ErrEmptyInput)
	}

	results := make(chan FrameResult, n)

	for t := 0; t < n; t++ {
		task := frameTask{t: t, frame: img.Frame(t)}
		go func(task frameTask) {
			results <- processFrame(ctx, task, params)
		}(task)
	}

	out := make([]FrameResult, n)
	for i := 0; i < n; i++ {
		r := <-results
		out[r.T] = r
	}
	return out, nil
}

func processFrame(ctx context.Context, task frameTask, params Params) FrameResult {
	if err := ctx.Err(); err != nil {
		return FrameResult{T: task.t, Err: err}
	}

	comps, err := labeler.Label(task.frame, task.t, params.Options)
	if err != nil {
		return FrameResult{T: task.t, Err: fmt.Errorf("frame %d: label: %w", task.t, err)}
	}

	if params.Comparator != nil {
		sortComponents(comps, params.Comparator)
	}

	if err := ctx.Err(); err != nil {
		return FrameResult{T: task.t, Components: comps, Err: err}
	}

	rows := make([]descriptor.FeatureRow, len(comps))
	for i, c := range comps {
		rows[i] = descriptor.Build(c, i+1)
	}

	return FrameResult{T: task.t, Components: comps, Rows: rows}
}

func sortComponents(comps []*component.Component, cmp component.Comparator) {
	// insertion sort: component counts per frame are small (bounded by
	// MinSize/arena capacity), and this avoids importing sort for a
	// single comparator-driven pass.
	for i := 1; i < len(comps); i++ {
		for j := i; j > 0 && cmp(comps[j-1], comps[j]) > 0; j-- {
			comps[j-1], comps[j] = comps[j], comps[j-1]
		}
	}
}
