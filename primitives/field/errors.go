package field

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus cannot define a prime
	// field: it is at most 1, even and not 2, or fails the primality check
	// of NewVerifiedField.
	ErrInvalidModulus = errors.New("invalid field modulus")

	// ErrModulusMismatch is returned when an operation receives elements
	// tied to different moduli.
	ErrModulusMismatch = errors.New("field modulus mismatch")

	// ErrNotInvertible is returned when the multiplicative inverse of the
	// zero element is requested.
	ErrNotInvertible = errors.New("element is not invertible")
)
