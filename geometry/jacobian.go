package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrDegenerateGeometry reports triangle geometry for which the surface
// Jacobian is undefined, e.g. a surface point at the coordinate origin or
// coincident corner points. It signals bad input mesh geometry rather than
// a numerical failure.
var ErrDegenerateGeometry = errors.New("degenerate triangle geometry")

// degenerateNorm2 is the squared-norm threshold below which a surface point
// is treated as sitting at the origin.
const degenerateNorm2 = 1e-24

// SphericalTensorJacobian evaluates the local area element of the spherical
// patch spanned by the triangle (p1,p2,p3) at the tensor-parameterized
// quadrature point (a,b) in the unit square. The corner points must lie on
// the unit sphere.
//
// The bilinear surface point is F(a,b) = (1-b)·[(1-a)·p1 + a·p2] + b·p3;
// its partials are projected onto the sphere's tangent plane at F (the
// derivative of F/‖F‖) and the Jacobian is the norm of their cross product.
func SphericalTensorJacobian(p1, p2, p3 r3.Vector, a, b float64) (float64, error) {
	f := p1.Mul((1 - b) * (1 - a)).Add(p2.Mul((1 - b) * a)).Add(p3.Mul(b))
	da := p2.Sub(p1).Mul(1 - b)
	db := p3.Sub(p1.Mul(1 - a)).Sub(p2.Mul(a))
	return sphericalPatchElement(f, da, db)
}

// SphericalBarycentricJacobian evaluates the local area element of the
// spherical patch at the barycentric quadrature point (a,b), with
// F(a,b) = a·p1 + b·p2 + (1-a-b)·p3. The result is half the tensor-style
// cross-product norm: the barycentric parameterization covers the triangle
// directly rather than through a unit square.
func SphericalBarycentricJacobian(p1, p2, p3 r3.Vector, a, b float64) (float64, error) {
	f := p1.Mul(a).Add(p2.Mul(b)).Add(p3.Mul(1 - a - b))
	da := p1.Sub(p3)
	db := p2.Sub(p3)
	j, err := sphericalPatchElement(f, da, db)
	return 0.5 * j, err
}

// sphericalPatchElement projects the partials (da, db) of the surface point
// f onto the tangent plane of the unit sphere at f/‖f‖ and returns the norm
// of their cross product. Component-wise this is the classical
// d·(f·f) - f·(d·f) correction scaled by 1/‖f‖³.
func sphericalPatchElement(f, da, db r3.Vector) (float64, error) {
	n2 := f.Norm2()
	if n2 < degenerateNorm2 {
		return 0, errors.Wrap(ErrDegenerateGeometry, "surface point at origin")
	}
	invR := 1 / math.Sqrt(n2)
	scale := invR * invR * invR
	ga := da.Mul(n2).Sub(f.Mul(da.Dot(f))).Mul(scale)
	gb := db.Mul(n2).Sub(f.Mul(db.Dot(f))).Mul(scale)
	return ga.Cross(gb).Norm(), nil
}

// PlanarTensorJacobian is the flat-patch counterpart of
// SphericalTensorJacobian: no projection onto the sphere, the area element
// is ‖∂F/∂a × ∂F/∂b‖ of the bilinear map from the unit square onto the
// triangle.
func PlanarTensorJacobian(p1, p2, p3 r3.Vector, a, b float64) float64 {
	da := p2.Sub(p1).Mul(1 - b)
	db := p3.Sub(p1.Mul(1 - a)).Sub(p2.Mul(a))
	return da.Cross(db).Norm()
}

// PlanarBarycentricJacobian is the flat-patch area element under the
// barycentric parameterization. The partials are constant, so the quadrature
// point does not appear; the halving mirrors the spherical variant.
func PlanarBarycentricJacobian(p1, p2, p3 r3.Vector) float64 {
	return 0.5 * p1.Sub(p3).Cross(p2.Sub(p3)).Norm()
}
