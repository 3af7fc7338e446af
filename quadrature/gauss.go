package quadrature

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// maxGaussOrder bounds the supported tensor-product orders.
const maxGaussOrder = 10

type gauss1D struct {
	nodes   []float64
	weights []float64
}

// gaussTables holds the order-1 through order-10 Gauss-Legendre rules on
// [0,1], built once at init by the Golub-Welsch eigenvalue method. Never
// mutated afterwards.
var gaussTables = buildGaussTables()

// Gauss returns the 1D Gauss-Legendre abscissae and weights of the given
// order on the interval [0,1]. The weights of each order sum to 1. The face
// integrator draws all order×order tensor-product combinations from these.
//
// The returned slices are shared immutable tables; callers must not modify
// them.
func Gauss(order int) (nodes, weights []float64, err error) {
	if order < 1 || order > maxGaussOrder {
		return nil, nil, errors.Wrapf(ErrUnsupportedOrder,
			"gaussian order %d (supported 1 through %d)", order, maxGaussOrder)
	}
	t := gaussTables[order]
	return t.nodes, t.weights, nil
}

func buildGaussTables() [maxGaussOrder + 1]gauss1D {
	var tables [maxGaussOrder + 1]gauss1D
	for order := 1; order <= maxGaussOrder; order++ {
		x, w := jacobiGQ(0, 0, order-1)
		nodes := make([]float64, order)
		weights := make([]float64, order)
		for i := range x {
			// Map from the Legendre reference interval [-1,1] to [0,1].
			nodes[i] = 0.5 * (x[i] + 1)
			weights[i] = 0.5 * w[i]
		}
		tables[order] = gauss1D{nodes: nodes, weights: weights}
	}
	return tables
}

// jacobiGQ computes the N+1 point Gauss quadrature rule for the Jacobi
// polynomial P_N^{alpha,beta} on [-1,1]: the points are the eigenvalues of
// the symmetric tridiagonal Jacobi matrix, the weights come from the first
// component of each eigenvector (Golub-Welsch).
func jacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2)}, []float64{2}
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal: -(β²-α²)/((2i+α+β)(2i+α+β+2)), zero for Legendre.
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2))
	}
	if alpha+beta < 10*1e-16 {
		d0[0] = 0
	}

	// First superdiagonal.
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		d1[i] = 2.0 / (h1[i] + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(symTriDiagonal(d0, d1), true); !ok {
		panic("quadrature: eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	vecs := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(vecs)
	mu0 := gamma0(alpha, beta)
	w = make([]float64, len(x))
	for i := range w {
		v0 := vecs.At(0, i)
		w[i] = v0 * v0 * mu0
	}
	return x, w
}

// gamma0 is the total weight ∫(1-x)^α(1+x)^β dx over [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	return math.Gamma(alpha+1) * math.Gamma(beta+1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func symTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, d0[i])
		if i < n-1 {
			m.SetSym(i, i+1, d1[i])
		}
	}
	return m
}
