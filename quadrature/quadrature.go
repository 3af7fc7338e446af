// Package quadrature supplies the numerical integration rules used by the
// face-area engine: 1D Gauss-Legendre abscissae on [0,1] for tensor-product
// integration, and symmetric barycentric rules on the reference triangle.
// All tables are immutable after package initialization.
package quadrature

import (
	"fmt"

	"github.com/pkg/errors"
)

// Rule identifies a quadrature family.
type Rule uint8

const (
	// Gaussian is a tensor product of 1D Gauss-Legendre points, order×order
	// points per triangle. Supported orders: 1 through 10.
	Gaussian Rule = iota
	// Triangular is a symmetric barycentric rule evaluated directly on the
	// triangle. Supported orders: 1, 4, 8, 10 and 12.
	Triangular
)

var (
	// ErrUnsupportedRule reports a quadrature rule outside {Gaussian, Triangular}.
	ErrUnsupportedRule = errors.New("unsupported quadrature rule")
	// ErrUnsupportedOrder reports an order with no table entry for the rule.
	ErrUnsupportedOrder = errors.New("unsupported quadrature order")
)

func (r Rule) String() string {
	switch r {
	case Gaussian:
		return "gaussian"
	case Triangular:
		return "triangular"
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// ParseRule maps the mesh-metadata rule names onto the closed Rule set.
func ParseRule(name string) (Rule, error) {
	switch name {
	case "gaussian":
		return Gaussian, nil
	case "triangular":
		return Triangular, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedRule, "%q (want \"gaussian\" or \"triangular\")", name)
}

// Validate reports whether the (rule, order) pair has a table entry, without
// returning the tables themselves.
func Validate(rule Rule, order int) error {
	switch rule {
	case Gaussian:
		_, _, err := Gauss(order)
		return err
	case Triangular:
		_, _, err := Triangle(order)
		return err
	}
	return errors.Wrapf(ErrUnsupportedRule, "rule %d", uint8(rule))
}
