package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxmesh/uxmesh/quadrature"
)

// integrateBarycentric sums the weighted barycentric Jacobian over one
// triangle, mirroring the integrator's triangular-rule loop.
func integrateBarycentric(t *testing.T, p1, p2, p3 r3.Vector, order int) float64 {
	t.Helper()
	points, weights, err := quadrature.Triangle(order)
	require.NoError(t, err)

	var sum float64
	for i, w := range weights {
		j, err := SphericalBarycentricJacobian(p1, p2, p3, points[i][0], points[i][1])
		require.NoError(t, err)
		sum += w * j
	}
	return sum
}

// integrateTensor sums the weighted tensor Jacobian over the unit square,
// mirroring the integrator's Gaussian double loop.
func integrateTensor(t *testing.T, p1, p2, p3 r3.Vector, order int) float64 {
	t.Helper()
	nodes, weights, err := quadrature.Gauss(order)
	require.NoError(t, err)

	var sum float64
	for p := range weights {
		for q := range weights {
			j, err := SphericalTensorJacobian(p1, p2, p3, nodes[p], nodes[q])
			require.NoError(t, err)
			sum += weights[p] * weights[q] * j
		}
	}
	return sum
}

func TestSphericalJacobianMatchesS2TriangleArea(t *testing.T) {
	// A small geodesic triangle near the equator; s2 computes its exact area.
	p1 := ToUnitSphere(0, 0)
	p2 := ToUnitSphere(10, 0)
	p3 := ToUnitSphere(0, 10)
	want := s2.PointArea(s2.Point{Vector: p1}, s2.Point{Vector: p2}, s2.Point{Vector: p3})

	assert.InDelta(t, want, integrateBarycentric(t, p1, p2, p3, 12), 1e-9)
	assert.InDelta(t, want, integrateTensor(t, p1, p2, p3, 8), 1e-9)
}

func TestTensorAndBarycentricAgree(t *testing.T) {
	p1 := ToUnitSphere(-5, 42)
	p2 := ToUnitSphere(7, 47)
	p3 := ToUnitSphere(1, 52)

	a := integrateTensor(t, p1, p2, p3, 8)
	b := integrateBarycentric(t, p1, p2, p3, 12)
	assert.InDelta(t, a, b, 1e-10)
}

func TestSphericalJacobianDegenerate(t *testing.T) {
	// Three points 120° apart on the equator: the barycentric surface point
	// at the centroid is the coordinate origin.
	p1 := r3.Vector{X: 1}
	p2 := r3.Vector{X: -0.5, Y: math.Sqrt(3) / 2}
	p3 := r3.Vector{X: -0.5, Y: -math.Sqrt(3) / 2}

	_, err := SphericalBarycentricJacobian(p1, p2, p3, 1.0/3.0, 1.0/3.0)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	// Antipodal corners hit the origin at the tensor midpoint with b=0.
	_, err = SphericalTensorJacobian(r3.Vector{X: 1}, r3.Vector{X: -1}, r3.Vector{Z: 1}, 0.5, 0)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestPlanarBarycentricJacobian(t *testing.T) {
	p1 := r3.Vector{}
	p2 := r3.Vector{X: 1}
	p3 := r3.Vector{Y: 1}

	// Constant area element equals the triangle area.
	assert.InDelta(t, 0.5, PlanarBarycentricJacobian(p1, p2, p3), 1e-15)
}

func TestPlanarTensorJacobianIntegratesTriangleArea(t *testing.T) {
	p1 := r3.Vector{}
	p2 := r3.Vector{X: 2}
	p3 := r3.Vector{X: 0.5, Y: 3}
	want := 3.0 // |(p2-p1)×(p3-p1)|/2

	nodes, weights, err := quadrature.Gauss(4)
	require.NoError(t, err)
	var sum float64
	for p := range weights {
		for q := range weights {
			sum += weights[p] * weights[q] * PlanarTensorJacobian(p1, p2, p3, nodes[p], nodes[q])
		}
	}
	assert.InDelta(t, want, sum, 1e-12)
}
