// Package ellipse fits a best-approximating ellipse (2D) or ellipsoid
// (3D) to a component's member voxels. The 2D fit is the Fitzgibbon
// direct least-squares algebraic fit; the 3D fit is the Petrov/BoneJ
// normal-equations ellipsoid fit. Grounded on the two computeEllipse
// overloads in ConnectedComponentDescriptor.java, implemented against
// gonum.org/v1/gonum/mat in place of the source's Jama dependency.
package ellipse

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/adufour/connectedcomponents/pkg/ccerr"
	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/voxel"
)

// Fit2D is the result of fitting an ellipse to a 2D component.
type Fit2D struct {
	Center     voxel.FCoord
	SemiMajor  float64 // a, sorted so SemiMajor >= SemiMinor
	SemiMinor  float64 // b
	PhiRadians float64 // rotation of the major axis from the x axis
}

// Fit3D is the result of fitting an ellipsoid to a 3D component.
type Fit3D struct {
	Center voxel.FCoord
	RadiusX, RadiusY, RadiusZ float64 // unsorted, axis-aligned in the fitted frame
}

// Fit2DPoints fits an ellipse to the given 2D points (z ignored) using
// the Fitzgibbon/Halir-Flusser direct algebraic method.
func Fit2DPoints(points []voxel.Coord) (Fit2D, error) {
	n := len(points)
	if n < 6 {
		return Fit2D{}, ccerr.ErrTooFewPoints
	}

	var mx, my float64
	for _, p := range points {
		mx += float64(p.X)
		my += float64(p.Y)
	}
	mx /= float64(n)
	my /= float64(n)

	d1 := mat.NewDense(n, 3, nil)
	d2 := mat.NewDense(n, 3, nil)
	for i, p := range points {
		x, y := float64(p.X)-mx, float64(p.Y)-my
		d1.SetRow(i, []float64{x * x, x * y, y * y})
		d2.SetRow(i, []float64{x, y, 1})
	}

	var s1, s2, s3 mat.Dense
	s1.Mul(d1.T(), d1)
	s2.Mul(d1.T(), d2)
	s3.Mul(d2.T(), d2)

	var s3inv mat.Dense
	if err := s3inv.Inverse(&s3); err != nil {
		return Fit2D{}, ccerr.ErrDegenerateShape
	}

	var t mat.Dense
	t.Mul(&s3inv, s2.T())
	t.Scale(-1, &t)

	var s2t mat.Dense
	s2t.Mul(&s2, &t)

	var mM mat.Dense
	mM.Add(&s1, &s2t)

	// C1^-1 * M, where C1 = [[0,0,2],[0,-1,0],[2,0,0]].
	c1inv := mat.NewDense(3, 3, []float64{
		0, 0, 0.5,
		0, -1, 0,
		0.5, 0, 0,
	})
	var reduced mat.Dense
	reduced.Mul(c1inv, &mM)

	var eig mat.Eigen
	if ok := eig.Factorize(&reduced, mat.EigenRight); !ok {
		return Fit2D{}, ccerr.ErrDegenerateShape
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	var a0 []float64
	for j := 0; j < 3; j++ {
		if values[j] == 0 {
			continue
		}
		col := []float64{
			real(vectors.At(0, j)),
			real(vectors.At(1, j)),
			real(vectors.At(2, j)),
		}
		disc := 4*col[0]*col[2] - col[1]*col[1]
		if disc > 0 {
			a0 = col
			break
		}
	}
	if a0 == nil {
		return Fit2D{}, ccerr.ErrDegenerateShape
	}

	a1Vec := mat.NewVecDense(3, a0)
	var a2Vec mat.VecDense
	a2Vec.MulVec(&t, a1Vec)

	A, B, C := a0[0], a0[1], a0[2]
	D, E, F := a2Vec.AtVec(0), a2Vec.AtVec(1), a2Vec.AtVec(2)

	// Un-center: F' accounts for the translation by (mx, my).
	F += A*mx*mx + B*mx*my + C*my*my - D*mx - E*my
	D -= 2*A*mx + B*my
	E -= 2*C*my + B*mx

	denom := B*B - 4*A*C
	if denom == 0 {
		return Fit2D{}, ccerr.ErrDegenerateShape
	}
	cx := (2*C*D - B*E) / denom
	cy := (2*A*E - B*D) / denom

	num := 2 * (A*E*E + C*D*D - B*D*E + denom*F)
	common := math.Sqrt((A-C)*(A-C) + B*B)
	axis1 := -math.Sqrt(2*num*(A+C+common)) / denom
	axis2 := -math.Sqrt(2*num*(A+C-common)) / denom

	axis1, axis2 = math.Abs(axis1), math.Abs(axis2)
	a, b := axis1, axis2
	if a < b {
		a, b = b, a
	}

	var phi float64
	if B == 0 {
		if A < C {
			phi = 0
		} else {
			phi = math.Pi / 2
		}
	} else {
		phi = math.Atan2(C-A-common, B)
	}

	if math.IsNaN(a) || math.IsNaN(b) {
		return Fit2D{}, ccerr.ErrDegenerateShape
	}

	return Fit2D{
		Center:     voxel.FCoord{X: cx, Y: cy},
		SemiMajor:  a,
		SemiMinor:  b,
		PhiRadians: phi,
	}, nil
}

// Fit2DComponent fits an ellipse to a 2D component's member points.
func Fit2DComponent(c *component.Component) (Fit2D, error) {
	return Fit2DPoints(c.Points)
}

// Fit3DPoints fits an ellipsoid to the given 3D points via the
// normal-equations method: solve the over-determined system
// [x^2 y^2 z^2 2xy 2xz 2yz 2x 2y 2z] * v = 1, assemble the implicit
// quadric, translate to its center and eigendecompose the translated
// quadratic form to recover axis-aligned radii.
func Fit3DPoints(points []voxel.Coord) (Fit3D, error) {
	n := len(points)
	if n < 9 {
		return Fit3D{}, ccerr.ErrTooFewPoints
	}

	design := mat.NewDense(n, 9, nil)
	ones := mat.NewVecDense(n, nil)
	for i, p := range points {
		x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
		design.SetRow(i, []float64{x * x, y * y, z * z, 2 * x * y, 2 * x * z, 2 * y * z, 2 * x, 2 * y, 2 * z})
		ones.SetVec(i, 1)
	}

	var dtd mat.Dense
	dtd.Mul(design.T(), design)
	var dtdInv mat.Dense
	if err := dtdInv.Inverse(&dtd); err != nil {
		return Fit3D{}, ccerr.ErrDegenerateShape
	}

	var dty mat.VecDense
	dty.MulVec(design.T(), ones)

	var v mat.VecDense
	v.MulVec(&dtdInv, &dty)

	a := mat.NewSymDense(4, []float64{
		v.AtVec(0), v.AtVec(3), v.AtVec(4), v.AtVec(6),
		0, v.AtVec(1), v.AtVec(5), v.AtVec(7),
		0, 0, v.AtVec(2), v.AtVec(8),
		0, 0, 0, -1,
	})

	a3 := mat.NewDense(3, 3, []float64{
		a.At(0, 0), a.At(0, 1), a.At(0, 2),
		a.At(1, 0), a.At(1, 1), a.At(1, 2),
		a.At(2, 0), a.At(2, 1), a.At(2, 2),
	})
	var a3inv mat.Dense
	if err := a3inv.Inverse(a3); err != nil {
		return Fit3D{}, ccerr.ErrDegenerateShape
	}
	rhs := mat.NewVecDense(3, []float64{v.AtVec(6), v.AtVec(7), v.AtVec(8)})
	var center mat.VecDense
	center.MulVec(&a3inv, rhs)
	center.ScaleVec(-1, &center)

	cx, cy, cz := center.AtVec(0), center.AtVec(1), center.AtVec(2)

	// R = T * A * T^T where T translates by (cx, cy, cz); this only
	// changes the constant term of the quadratic form, which we recompute
	// directly rather than building the 4x4 product.
	constTerm := a.At(0, 0)*cx*cx + a.At(1, 1)*cy*cy + a.At(2, 2)*cz*cz +
		2*a.At(0, 1)*cx*cy + 2*a.At(0, 2)*cx*cz + 2*a.At(1, 2)*cy*cz +
		2*v.AtVec(6)*cx + 2*v.AtVec(7)*cy + 2*v.AtVec(8)*cz + a.At(3, 3)

	if constTerm == 0 {
		return Fit3D{}, ccerr.ErrDegenerateShape
	}

	r3 := mat.NewSymDense(3, []float64{
		a.At(0, 0), a.At(0, 1), a.At(0, 2),
		0, a.At(1, 1), a.At(1, 2),
		0, 0, a.At(2, 2),
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(r3, false); !ok {
		return Fit3D{}, ccerr.ErrDegenerateShape
	}
	values := eig.Values(nil)

	radii := make([]float64, 3)
	for i, lambda := range values {
		ratio := -lambda / constTerm
		if ratio <= 0 {
			return Fit3D{}, ccerr.ErrDegenerateShape
		}
		radii[i] = math.Sqrt(1 / ratio)
	}

	return Fit3D{
		Center:  voxel.FCoord{X: cx, Y: cy, Z: cz},
		RadiusX: radii[0], RadiusY: radii[1], RadiusZ: radii[2],
	}, nil
}

// Fit3DComponent fits an ellipsoid to a 3D component's member points.
func Fit3DComponent(c *component.Component) (Fit3D, error) {
	return Fit3DPoints(c.Points)
}
