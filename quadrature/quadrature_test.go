package quadrature

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Rule
		wantErr bool
	}{
		{"gaussian", "gaussian", Gaussian, false},
		{"triangular", "triangular", Triangular, false},
		{"unknown", "simpson", 0, true},
		{"empty", "", 0, true},
		{"case sensitive", "Gaussian", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRule(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "gaussian", Gaussian.String())
	assert.Equal(t, "triangular", Triangular.String())
}

func TestGaussWeightsAndNodes(t *testing.T) {
	for order := 1; order <= 10; order++ {
		nodes, weights, err := Gauss(order)
		require.NoError(t, err)
		require.Len(t, nodes, order)
		require.Len(t, weights, order)

		// Weights on [0,1] sum to the interval length.
		assert.InDelta(t, 1.0, floats.Sum(weights), 1e-13, "order %d", order)

		for i, x := range nodes {
			assert.Greater(t, x, 0.0, "order %d node %d", order, i)
			assert.Less(t, x, 1.0, "order %d node %d", order, i)
			if i > 0 {
				assert.Greater(t, x, nodes[i-1], "order %d nodes not ascending", order)
			}
		}
	}
}

// The order-4 rule is checked against the published Gauss-Legendre values
// mapped onto [0,1], pinning down the eigenvalue construction.
func TestGaussOrderFourReference(t *testing.T) {
	nodes, weights, err := Gauss(4)
	require.NoError(t, err)

	wantNodes := []float64{
		0.069431844202974, 0.330009478207572, 0.669990521792428, 0.930568155797026,
	}
	wantWeights := []float64{
		0.173927422568727, 0.326072577431273, 0.326072577431273, 0.173927422568727,
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	assert.Empty(t, cmp.Diff(wantNodes, nodes, approx))
	assert.Empty(t, cmp.Diff(wantWeights, weights, approx))
}

func TestGaussSymmetry(t *testing.T) {
	nodes, weights, err := Gauss(7)
	require.NoError(t, err)
	for i := range nodes {
		j := len(nodes) - 1 - i
		assert.InDelta(t, 1.0, nodes[i]+nodes[j], 1e-14)
		assert.InDelta(t, weights[i], weights[j], 1e-14)
	}
}

func TestGaussUnsupportedOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 11, 100} {
		_, _, err := Gauss(order)
		assert.ErrorIs(t, err, ErrUnsupportedOrder, "order %d", order)
	}
}

func TestTriangleRules(t *testing.T) {
	wantPoints := map[int]int{1: 1, 4: 6, 8: 16, 10: 25, 12: 33}
	for order, n := range wantPoints {
		points, weights, err := Triangle(order)
		require.NoError(t, err)
		require.Len(t, points, n, "order %d", order)
		require.Len(t, weights, n, "order %d", order)

		assert.InDelta(t, 1.0, floats.Sum(weights), 1e-12, "order %d", order)

		// Every point is a valid interior barycentric pair.
		for i, p := range points {
			a, b := p[0], p[1]
			assert.Greater(t, a, 0.0, "order %d point %d", order, i)
			assert.Greater(t, b, 0.0, "order %d point %d", order, i)
			assert.Less(t, a+b, 1.0, "order %d point %d", order, i)
		}
	}
}

func TestTriangleUnsupportedOrder(t *testing.T) {
	for _, order := range []int{0, 2, 3, 5, 7, 9, 11, 13} {
		_, _, err := Triangle(order)
		assert.ErrorIs(t, err, ErrUnsupportedOrder, "order %d", order)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Gaussian, 4))
	assert.NoError(t, Validate(Triangular, 12))
	assert.ErrorIs(t, Validate(Gaussian, 11), ErrUnsupportedOrder)
	assert.ErrorIs(t, Validate(Triangular, 7), ErrUnsupportedOrder)
	assert.ErrorIs(t, Validate(Rule(7), 4), ErrUnsupportedRule)
}

// Wrapped errors keep their sentinel identity through pkg/errors.
func TestErrorWrapping(t *testing.T) {
	_, _, err := Triangle(7)
	wrapped := errors.Wrap(err, "while integrating")
	assert.ErrorIs(t, wrapped, ErrUnsupportedOrder)
}
