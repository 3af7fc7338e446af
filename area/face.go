// Package area implements the face-area computation engine: triangulated
// numerical quadrature over the faces of an unstructured mesh, on the unit
// sphere for geographic input or in the plane for cartesian input.
package area

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/uxmesh/uxmesh/geometry"
	"github.com/uxmesh/uxmesh/quadrature"
)

// ErrInvalidFaceDegree reports a face with fewer than 3 real nodes, for
// which no triangulation exists.
var ErrInvalidFaceDegree = errors.New("face has fewer than 3 nodes")

// coincidentNorm2 is the squared distance below which two triangle corners
// are treated as the same point.
const coincidentNorm2 = 1e-24

// FaceArea computes the area of a single face whose node coordinates are
// given in order, already trimmed of fill entries. For Spherical input, x
// holds longitude degrees and y latitude degrees and the area is measured
// on the unit sphere; for Cartesian input, (x,y,z) are ambient coordinates
// and the face is integrated as a flat patch.
//
// The face is fan-triangulated from its first node: triangles
// (node[0], node[j+1], node[j+2]) for j = 0..N-3. The fan is valid for
// convex and near-convex cells; concave self-intersecting faces are not
// corrected.
func FaceArea(x, y, z []float64, rule quadrature.Rule, order int, coords geometry.CoordsType) (float64, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return 0, errors.Errorf("coordinate lengths differ: x=%d y=%d z=%d", n, len(y), len(z))
	}
	if n < 3 {
		return 0, errors.Wrapf(ErrInvalidFaceDegree, "%d nodes", n)
	}

	var (
		gNodes, gWeights []float64
		tPoints          [][2]float64
		tWeights         []float64
		err              error
	)
	switch rule {
	case quadrature.Gaussian:
		gNodes, gWeights, err = quadrature.Gauss(order)
	case quadrature.Triangular:
		tPoints, tWeights, err = quadrature.Triangle(order)
	default:
		err = errors.Wrapf(quadrature.ErrUnsupportedRule, "rule %d", uint8(rule))
	}
	if err != nil {
		return 0, err
	}

	corner := func(i int) r3.Vector {
		if coords == geometry.Spherical {
			return geometry.ToUnitSphere(x[i], y[i])
		}
		return r3.Vector{X: x[i], Y: y[i], Z: z[i]}
	}

	var sum float64
	p1 := corner(0)
	for j := 0; j < n-2; j++ {
		p2 := corner(j + 1)
		p3 := corner(j + 2)
		if coincident(p1, p2) || coincident(p2, p3) || coincident(p1, p3) {
			return 0, errors.Wrapf(geometry.ErrDegenerateGeometry,
				"triangle %d has coincident corners", j)
		}

		switch rule {
		case quadrature.Gaussian:
			for p := range gWeights {
				for q := range gWeights {
					dA, dB := gNodes[p], gNodes[q]
					var jac float64
					if coords == geometry.Spherical {
						jac, err = geometry.SphericalTensorJacobian(p1, p2, p3, dA, dB)
						if err != nil {
							return 0, errors.Wrapf(err, "triangle %d", j)
						}
					} else {
						jac = geometry.PlanarTensorJacobian(p1, p2, p3, dA, dB)
					}
					sum += gWeights[p] * gWeights[q] * jac
				}
			}
		case quadrature.Triangular:
			for p := range tWeights {
				dA, dB := tPoints[p][0], tPoints[p][1]
				var jac float64
				if coords == geometry.Spherical {
					jac, err = geometry.SphericalBarycentricJacobian(p1, p2, p3, dA, dB)
					if err != nil {
						return 0, errors.Wrapf(err, "triangle %d", j)
					}
				} else {
					jac = geometry.PlanarBarycentricJacobian(p1, p2, p3)
				}
				sum += tWeights[p] * jac
			}
		}
	}
	return sum, nil
}

func coincident(a, b r3.Vector) bool {
	return a.Sub(b).Norm2() < coincidentNorm2
}
