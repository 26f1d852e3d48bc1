// Package labelarena implements the union-find backing store for the
// Labeler: a contiguous slice of Label records addressed by integer id,
// with back-pointers stored as ids rather than pointers (cache-friendly,
// no pointer cycles). Grounded on the private Label class in
// ConnectedComponents.java.
package labelarena

// Label is a single entry in the arena, addressed by a dense 1-based id.
// Id 0 is reserved and means "no label" / background.
type Label struct {
	// ImageValue is the voxel intensity this label was first created with.
	// Only meaningful in intensity-preserving (BackgroundLabeled) mode.
	ImageValue float64

	// TargetID is the id this label currently resolves to. Initially self.
	TargetID uint32

	// TargetRef is a back-link to another label used for path compression,
	// stored as an id; 0 means absent (this label's TargetID is final).
	TargetRef uint32

	// Size is the accumulated voxel count.
	Size uint64

	OnEdgeX, OnEdgeY, OnEdgeZ bool
}

// Arena is the contiguous, 1-indexed store of Label records for one frame.
// It exclusively owns its records; a frame's Arena is discarded once its
// Components have been materialized.
type Arena struct {
	labels []Label
}

// New allocates an arena. capacityHint sizes the backing slice up front
// (the labeler passes width*height*depth/2 + 1, the spec's stated upper
// bound plus one);
// the slice still grows past that via ordinary append semantics if needed.
func New(capacityHint int) *Arena {
	if capacityHint < 1 {
		capacityHint = 1
	}
	a := &Arena{labels: make([]Label, 1, capacityHint+1)}
	return a
}

// Len returns the number of labels allocated so far (the "highest known
// label" H of the raster pass).
func (a *Arena) Len() int { return len(a.labels) - 1 }

// Alloc creates a fresh, self-resolving label and returns its id.
func (a *Arena) Alloc(imageValue float64) uint32 {
	id := uint32(len(a.labels))
	a.labels = append(a.labels, Label{ImageValue: imageValue, TargetID: id})
	return id
}

// Get returns a pointer to the label record for id, allowing in-place
// mutation (size accumulation, edge flags, union bookkeeping).
func (a *Arena) Get(id uint32) *Label {
	return &a.labels[id]
}

// Resolve walks the TargetRef chain to the canonical representative and
// returns its arena id. resolve(resolve(id)) == resolve(id) always holds
// since a canonical label (TargetRef == 0) resolves to itself.
func (a *Arena) Resolve(id uint32) uint32 {
	for a.labels[id].TargetRef != 0 {
		id = a.labels[id].TargetRef
	}
	return id
}

// Union merges the equivalence class of `other` into that of `min`,
// preserving the invariant that a label's TargetID is always <= its own
// id. `other` is a raw neighbor label id known to be > min; `min` is the
// label id already assigned to the current voxel. Both are resolved to
// their canonical labels and the higher canonical is attached under the
// lower one, so if `other`'s canonical is already < min's, min's chain is
// attached upward instead and the monotone-decreasing invariant never
// breaks regardless of call order.
//
// Grounded on the fusion step inside
// ConnectedComponents.extractConnectedComponents.
func (a *Arena) Union(min, other uint32) {
	finalOther := a.Resolve(other)
	finalMin := a.Resolve(min)

	if finalMin == finalOther {
		// already in the same class -- nothing to do.
		return
	}

	if finalMin < finalOther {
		finalLabel := a.Get(finalOther)
		finalLabel.TargetRef = finalMin
		finalLabel.TargetID = finalMin
	} else {
		minLabel := a.Get(finalMin)
		minLabel.TargetRef = finalOther
		minLabel.TargetID = finalOther
	}
}
