// Package polynomial implements dense single-variable polynomials over a
// ring, with Lagrange interpolation over fields.
package polynomial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eliseuv/algebra/primitives/ring"
)

var (
	// ErrNoCoefficients is returned when a polynomial is constructed from an
	// empty coefficient sequence.
	ErrNoCoefficients = errors.New("polynomial needs at least one coefficient")

	// ErrNoPoints is returned when interpolation receives no points.
	ErrNoPoints = errors.New("interpolation needs at least one point")

	// ErrDuplicatePoint is returned when two interpolation points share the
	// same abscissa.
	ErrDuplicatePoint = errors.New("duplicate interpolation point")
)

// Polynomial is a dense polynomial with coefficients in a ring, stored
// lowest degree first. The canonical form carries no trailing zero
// coefficient; the zero polynomial is a single zero coefficient. Values are
// immutable and operations return new polynomials. The zero value of the
// type is not usable; polynomials are created through New or Interpolate.
type Polynomial[E ring.Element[E]] struct {
	coefficients []E
}

// New returns the canonical polynomial with the given coefficients, lowest
// degree first, trimming trailing zero coefficients. The input slice is
// copied.
func New[E ring.Element[E]](coefficients []E) (Polynomial[E], error) {
	if len(coefficients) == 0 {
		return Polynomial[E]{}, ErrNoCoefficients
	}
	last := len(coefficients) - 1
	for last > 0 && coefficients[last].IsZero() {
		last--
	}
	coeffs := make([]E, last+1)
	copy(coeffs, coefficients[:last+1])
	return Polynomial[E]{coefficients: coeffs}, nil
}

// singleRoot returns the monic polynomial (x - x0).
func singleRoot[E ring.Element[E]](x0 E) Polynomial[E] {
	return Polynomial[E]{coefficients: []E{x0.Neg(), x0.One()}}
}

// Degree returns the degree of the polynomial, with -1 for the zero
// polynomial.
func (p Polynomial[E]) Degree() int {
	if p.IsZero() {
		return -1
	}
	return len(p.coefficients) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[E]) IsZero() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsZero()
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p Polynomial[E]) Coefficients() []E {
	out := make([]E, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Constant returns the coefficient of degree zero.
func (p Polynomial[E]) Constant() E {
	return p.coefficients[0]
}

// Evaluate computes p(x) with Horner's rule, a single pass over the
// coefficients.
func (p Polynomial[E]) Evaluate(x E) (E, error) {
	var zero E
	acc := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		prod, err := acc.Mul(x)
		if err != nil {
			return zero, err
		}
		acc, err = prod.Add(p.coefficients[i])
		if err != nil {
			return zero, err
		}
	}
	return acc, nil
}

// Add returns p + q.
func (p Polynomial[E]) Add(q Polynomial[E]) (Polynomial[E], error) {
	long, short := p.coefficients, q.coefficients
	if len(short) > len(long) {
		long, short = short, long
	}
	sum := make([]E, len(long))
	copy(sum, long)
	for i, c := range short {
		s, err := sum[i].Add(c)
		if err != nil {
			return Polynomial[E]{}, err
		}
		sum[i] = s
	}
	return New(sum)
}

// Neg returns -p.
func (p Polynomial[E]) Neg() Polynomial[E] {
	out := make([]E, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Neg()
	}
	return Polynomial[E]{coefficients: out}
}

// Sub returns p - q.
func (p Polynomial[E]) Sub(q Polynomial[E]) (Polynomial[E], error) {
	return p.Add(q.Neg())
}

// Mul returns p * q by coefficient convolution, O(deg p * deg q)
// multiplications.
func (p Polynomial[E]) Mul(q Polynomial[E]) (Polynomial[E], error) {
	prod := make([]E, len(p.coefficients)+len(q.coefficients)-1)
	zero := p.coefficients[0].Zero()
	for i := range prod {
		prod[i] = zero
	}
	for i, a := range p.coefficients {
		for j, b := range q.coefficients {
			t, err := a.Mul(b)
			if err != nil {
				return Polynomial[E]{}, err
			}
			s, err := prod[i+j].Add(t)
			if err != nil {
				return Polynomial[E]{}, err
			}
			prod[i+j] = s
		}
	}
	return New(prod)
}

// scale multiplies every coefficient by c.
func (p Polynomial[E]) scale(c E) (Polynomial[E], error) {
	out := make([]E, len(p.coefficients))
	for i, a := range p.coefficients {
		v, err := a.Mul(c)
		if err != nil {
			return Polynomial[E]{}, err
		}
		out[i] = v
	}
	return New(out)
}

// Equal reports whether p and q are the same canonical polynomial.
func (p Polynomial[E]) Equal(q Polynomial[E]) bool {
	if len(p.coefficients) != len(q.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(q.coefficients[i]) {
			return false
		}
	}
	return true
}

// String formats the polynomial lowest degree first, skipping zero terms,
// e.g. "F17(2) + F17(3) x^2". The zero polynomial formats as "0".
func (p Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for deg, c := range p.coefficients {
		if c.IsZero() {
			continue
		}
		switch deg {
		case 0:
			terms = append(terms, fmt.Sprintf("%v", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%v x", c))
		default:
			terms = append(terms, fmt.Sprintf("%v x^%d", c, deg))
		}
	}
	return strings.Join(terms, " + ")
}
