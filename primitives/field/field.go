// Package field implements arithmetic over prime fields whose modulus fits
// in a 64-bit word. Elements are immutable values kept in canonical reduced
// form [0, modulus) after every operation.
package field

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/eliseuv/algebra/primitives/ring"
)

// Field is the prime field of order p, p < 2^64. It is the factory for
// elements of that field and the only way to obtain usable elements.
type Field struct {
	p uint64
}

// NewField returns the prime field of order p. It rejects p <= 1 and even
// p > 2 with ErrInvalidModulus. Full primality verification is left to
// NewVerifiedField, so callers that already know p is prime do not pay for
// a probabilistic test on every construction.
func NewField(p uint64) (Field, error) {
	if p <= 1 {
		return Field{}, fmt.Errorf("%w: %d is too small", ErrInvalidModulus, p)
	}
	if p != 2 && p%2 == 0 {
		return Field{}, fmt.Errorf("%w: %d is even", ErrInvalidModulus, p)
	}
	return Field{p: p}, nil
}

// NewVerifiedField is NewField plus a Miller-Rabin primality check on p.
func NewVerifiedField(p uint64) (Field, error) {
	f, err := NewField(p)
	if err != nil {
		return Field{}, err
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return Field{}, fmt.Errorf("%w: %d is not prime", ErrInvalidModulus, p)
	}
	return f, nil
}

// Modulus returns the order of the field.
func (f Field) Modulus() uint64 {
	return f.p
}

// NewElement returns the field element v mod p.
func (f Field) NewElement(v uint64) Element {
	return Element{value: v % f.p, modulus: f.p}
}

// Zero returns the additive identity of the field.
func (f Field) Zero() Element {
	return Element{modulus: f.p}
}

// One returns the multiplicative identity of the field.
func (f Field) One() Element {
	return f.NewElement(1)
}

// Element is a value of a prime field, carrying the modulus it was created
// under. The zero value of the type belongs to no field and is not usable;
// elements are created through a Field.
type Element struct {
	value   uint64
	modulus uint64
}

var _ ring.FieldElement[Element] = Element{}

// Uint64 returns the canonical representative of the element in [0, p).
func (a Element) Uint64() uint64 {
	return a.value
}

// Modulus returns the order of the element's field.
func (a Element) Modulus() uint64 {
	return a.modulus
}

func (a Element) sameField(b Element) error {
	if a.modulus != b.modulus {
		return fmt.Errorf("%w: %d != %d", ErrModulusMismatch, a.modulus, b.modulus)
	}
	if a.modulus == 0 {
		return fmt.Errorf("%w: element belongs to no field", ErrInvalidModulus)
	}
	return nil
}

// Add returns a + b.
func (a Element) Add(b Element) (Element, error) {
	if err := a.sameField(b); err != nil {
		return Element{}, err
	}
	sum := a.value + b.value
	// A wrapped sum is detected by sum < a.value; the subtraction of p then
	// lands on the right representative because the wraparound is modular.
	if sum >= a.modulus || sum < a.value {
		sum -= a.modulus
	}
	return Element{value: sum, modulus: a.modulus}, nil
}

// Sub returns a - b without leaving the canonical range on the way.
func (a Element) Sub(b Element) (Element, error) {
	if err := a.sameField(b); err != nil {
		return Element{}, err
	}
	if a.value >= b.value {
		return Element{value: a.value - b.value, modulus: a.modulus}, nil
	}
	return Element{value: a.modulus - (b.value - a.value), modulus: a.modulus}, nil
}

// Mul returns a * b. The product is computed in 128 bits and reduced with a
// 128-by-64 division, so moduli up to 2^64 - 1 never overflow.
func (a Element) Mul(b Element) (Element, error) {
	if err := a.sameField(b); err != nil {
		return Element{}, err
	}
	return Element{value: mulMod(a.value, b.value, a.modulus), modulus: a.modulus}, nil
}

// mulMod computes a * b mod p for a, b in [0, p). bits.Div64 requires
// hi < p, which holds because (p-1)^2 < p * 2^64 for every p < 2^64.
func mulMod(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}

// Neg returns the additive inverse of a.
func (a Element) Neg() Element {
	if a.value == 0 {
		return a
	}
	return Element{value: a.modulus - a.value, modulus: a.modulus}
}

// Pow returns a^e by square-and-multiply, O(log e) multiplications, with
// the convention a^0 = 1 for every a including zero.
func (a Element) Pow(e uint64) Element {
	result := Element{value: 1 % a.modulus, modulus: a.modulus}
	base := a.value
	for e > 0 {
		if e&1 == 1 {
			result.value = mulMod(result.value, base, a.modulus)
		}
		e >>= 1
		if e > 0 {
			base = mulMod(base, base, a.modulus)
		}
	}
	return result
}

// Inverse returns the multiplicative inverse via Fermat's little theorem,
// a^(p-2) mod p. It fails with ErrNotInvertible for the zero element.
func (a Element) Inverse() (Element, error) {
	if a.value == 0 {
		return Element{}, fmt.Errorf("%w: zero element of F_%d", ErrNotInvertible, a.modulus)
	}
	return a.Pow(a.modulus - 2), nil
}

// Zero returns the additive identity of the element's field.
func (a Element) Zero() Element {
	return Element{modulus: a.modulus}
}

// One returns the multiplicative identity of the element's field.
func (a Element) One() Element {
	return Element{value: 1 % a.modulus, modulus: a.modulus}
}

// Equal reports whether a and b are the same element of the same field.
func (a Element) Equal(b Element) bool {
	return a.modulus == b.modulus && a.value == b.value
}

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool {
	return a.value == 0
}

// String implements fmt.Stringer, e.g. "F17(13)".
func (a Element) String() string {
	return fmt.Sprintf("F%d(%d)", a.modulus, a.value)
}
