// Package ccerr defines the sentinel error values shared across the
// labeler and the shape-descriptor modules (see SPEC_FULL.md §7).
package ccerr

import "errors"

var (
	// ErrEmptyInput is returned when a sequence has zero time points or a
	// frame has zero volume. Fatal at the call boundary.
	ErrEmptyInput = errors.New("connectedcomponents: empty input")

	// ErrInvalidBounds is returned when maxSize is non-zero and minSize >
	// maxSize. A maxSize of 0 means "no upper bound" and is not rejected.
	// Fatal at the call boundary.
	ErrInvalidBounds = errors.New("connectedcomponents: invalid size bounds")

	// ErrOverflow is returned when the label population would exceed the
	// arena's index type. Fatal; callers are expected to split the volume.
	ErrOverflow = errors.New("connectedcomponents: label population exceeds arena capacity")

	// ErrTooFewPoints is returned by an ellipse/ellipsoid fit when the
	// component has too few points to determine a unique fit. Not fatal;
	// the fit result returned alongside this error is zero-valued (zero
	// radii, not NaN).
	ErrTooFewPoints = errors.New("connectedcomponents: too few points for ellipse fit")

	// ErrDegenerateShape is returned by an ellipse/ellipsoid fit when the
	// underlying linear system is singular (e.g. a flat point cloud). Not
	// fatal; the fit result returned alongside this error is zero-valued
	// (zero radii, not NaN).
	ErrDegenerateShape = errors.New("connectedcomponents: degenerate shape in fit")
)
