// Package ring defines the capability sets shared by ring and field element
// types, so that polynomial code is written once and works over any element
// type providing them.
package ring

// Element is the minimal ring capability set: addition, multiplication,
// negation, the two identities, and equality. Implementations are immutable
// value types whose operations return new values.
//
// Binary operations return an error when the operands do not belong to the
// same ring instance, e.g. prime fields with different moduli.
type Element[E any] interface {
	// Add returns the sum of the receiver and b.
	Add(b E) (E, error)

	// Mul returns the product of the receiver and b.
	Mul(b E) (E, error)

	// Neg returns the additive inverse of the receiver.
	Neg() E

	// Zero returns the additive identity of the receiver's ring.
	Zero() E

	// One returns the multiplicative identity of the receiver's ring.
	One() E

	// Equal reports whether the receiver and b are the same element of the
	// same ring.
	Equal(b E) bool

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
}

// FieldElement extends Element with subtraction and multiplicative
// inverses, the capabilities Lagrange interpolation needs. A future
// big-integer-backed field plugs in here without touching polynomial code.
type FieldElement[E any] interface {
	Element[E]

	// Sub returns the difference of the receiver and b.
	Sub(b E) (E, error)

	// Inverse returns the multiplicative inverse of the receiver. It fails
	// for the zero element.
	Inverse() (E, error)
}
