// Package shamir implements Shamir's t-of-n secret sharing over a prime
// field: any t shares reconstruct the secret, fewer reveal nothing about
// it.
package shamir

import (
	"errors"
	"fmt"
	"io"

	"github.com/eliseuv/algebra/primitives/field"
	"github.com/eliseuv/algebra/primitives/polynomial"
)

var (
	// ErrInvalidThreshold is returned when split parameters violate
	// 1 <= t <= n.
	ErrInvalidThreshold = errors.New("invalid sharing threshold")

	// ErrFieldTooSmall is returned when the field has fewer than n nonzero
	// evaluation points.
	ErrFieldTooSmall = errors.New("field too small for share count")

	// ErrInsufficientShares is returned when reconstruction receives fewer
	// than 2 shares.
	ErrInsufficientShares = errors.New("not enough shares")
)

// Share is one evaluation point (x, f(x)) of the dealing polynomial. X is
// never zero: x = 0 holds the secret itself. Shares are plain values with
// no tie to the session that produced them.
type Share struct {
	X field.Element
	Y field.Element
}

// Split shares secret among n shares with reconstruction threshold t. The
// dealing polynomial has the secret as constant term and t-1 coefficients
// drawn uniformly from rand, which must be a cryptographically secure
// source for the secrecy property to hold. Shares are the evaluations at
// x = 1..n; the polynomial itself is not retained.
func Split(secret field.Element, t, n int, rand io.Reader) ([]Share, error) {
	if t < 1 || t > n {
		return nil, fmt.Errorf("%w: t=%d, n=%d", ErrInvalidThreshold, t, n)
	}
	f, err := field.NewField(secret.Modulus())
	if err != nil {
		return nil, err
	}
	if uint64(n) >= f.Modulus() {
		return nil, fmt.Errorf("%w: n=%d needs n < modulus %d",
			ErrFieldTooSmall, n, f.Modulus())
	}

	coeffs := make([]field.Element, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		coeffs[i], err = f.RandomElement(rand)
		if err != nil {
			return nil, fmt.Errorf("drawing coefficient %d failed: %w", i, err)
		}
	}
	// Redraw the leading coefficient while zero so the dealing polynomial
	// has exact degree t-1.
	for t > 1 && coeffs[t-1].IsZero() {
		coeffs[t-1], err = f.RandomElement(rand)
		if err != nil {
			return nil, fmt.Errorf("drawing coefficient %d failed: %w", t-1, err)
		}
	}

	poly, err := polynomial.New(coeffs)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	for i := 1; i <= n; i++ {
		x := f.NewElement(uint64(i))
		y, err := poly.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("evaluating share %d failed: %w", i, err)
		}
		shares[i-1] = Share{X: x, Y: y}
	}
	return shares, nil
}

// Reconstruct recovers the secret as the Lagrange evaluation of the shares
// at x = 0. At least 2 shares are required, and the result equals the
// original secret only when at least the dealing threshold t of them are
// supplied; share data does not carry t, so that part of the contract stays
// with the caller. Two shares with the same x fail with
// polynomial.ErrDuplicatePoint.
func Reconstruct(shares []Share) (field.Element, error) {
	if len(shares) < 2 {
		return field.Element{}, fmt.Errorf("%w: got %d, need at least 2",
			ErrInsufficientShares, len(shares))
	}
	points := make([]polynomial.Point[field.Element], len(shares))
	for i, s := range shares {
		points[i] = polynomial.Point[field.Element]{X: s.X, Y: s.Y}
	}
	secret, err := polynomial.EvaluateAt(points, shares[0].X.Zero())
	if err != nil {
		return field.Element{}, fmt.Errorf("reconstruction failed: %w", err)
	}
	return secret, nil
}
