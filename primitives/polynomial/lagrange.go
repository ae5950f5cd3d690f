package polynomial

import (
	"fmt"

	"github.com/eliseuv/algebra/primitives/ring"
)

// Point is an (x, y) pair an interpolated polynomial passes through.
type Point[E ring.Element[E]] struct {
	X E
	Y E
}

func checkDistinct[E ring.Element[E]](xs []E) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return fmt.Errorf("%w: x = %v at positions %d and %d",
					ErrDuplicatePoint, xs[i], i, j)
			}
		}
	}
	return nil
}

// Interpolate returns the unique polynomial of degree < len(points) passing
// through every point, as the linear combination of the Lagrange basis
// polynomials
//
//	l_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
//
// weighted by the y_i. All abscissas must be distinct; a collision fails
// with ErrDuplicatePoint. A single point yields the constant polynomial y_0.
func Interpolate[E ring.FieldElement[E]](points []Point[E]) (Polynomial[E], error) {
	if len(points) == 0 {
		return Polynomial[E]{}, ErrNoPoints
	}
	xs := make([]E, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}
	if err := checkDistinct(xs); err != nil {
		return Polynomial[E]{}, err
	}

	result := Polynomial[E]{coefficients: []E{points[0].Y.Zero()}}
	for i, pt := range points {
		basis := Polynomial[E]{coefficients: []E{pt.Y.One()}}
		denom := pt.Y.One()
		for j, other := range points {
			if j == i {
				continue
			}
			var err error
			basis, err = basis.Mul(singleRoot(other.X))
			if err != nil {
				return Polynomial[E]{}, err
			}
			diff, err := pt.X.Sub(other.X)
			if err != nil {
				return Polynomial[E]{}, err
			}
			denom, err = denom.Mul(diff)
			if err != nil {
				return Polynomial[E]{}, err
			}
		}
		inv, err := denom.Inverse()
		if err != nil {
			return Polynomial[E]{}, err
		}
		weight, err := pt.Y.Mul(inv)
		if err != nil {
			return Polynomial[E]{}, err
		}
		term, err := basis.scale(weight)
		if err != nil {
			return Polynomial[E]{}, err
		}
		result, err = result.Add(term)
		if err != nil {
			return Polynomial[E]{}, err
		}
	}
	return result, nil
}

// Weights returns the Lagrange coefficients lambda_i for evaluating, at x,
// the polynomial interpolated through the abscissas xs:
//
//	lambda_i = prod_{j != i} (x - x_j) / (x_i - x_j)
func Weights[E ring.FieldElement[E]](xs []E, x E) ([]E, error) {
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}
	if err := checkDistinct(xs); err != nil {
		return nil, err
	}
	lambdas := make([]E, len(xs))
	for i, xi := range xs {
		lambda := x.One()
		for j, xj := range xs {
			if i == j {
				continue
			}
			num, err := x.Sub(xj)
			if err != nil {
				return nil, err
			}
			den, err := xi.Sub(xj)
			if err != nil {
				return nil, err
			}
			inv, err := den.Inverse()
			if err != nil {
				return nil, err
			}
			term, err := num.Mul(inv)
			if err != nil {
				return nil, err
			}
			lambda, err = lambda.Mul(term)
			if err != nil {
				return nil, err
			}
		}
		lambdas[i] = lambda
	}
	return lambdas, nil
}

// EvaluateAt computes, at x, the value of the unique polynomial
// interpolated through the points, without materializing its coefficients.
// It agrees with Interpolate followed by Evaluate and costs O(n^2) field
// operations with no polynomial arithmetic.
func EvaluateAt[E ring.FieldElement[E]](points []Point[E], x E) (E, error) {
	var zero E
	if len(points) == 0 {
		return zero, ErrNoPoints
	}
	xs := make([]E, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}
	lambdas, err := Weights(xs, x)
	if err != nil {
		return zero, err
	}
	sum := points[0].Y.Zero()
	for i, pt := range points {
		term, err := pt.Y.Mul(lambdas[i])
		if err != nil {
			return zero, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return zero, err
		}
	}
	return sum, nil
}
