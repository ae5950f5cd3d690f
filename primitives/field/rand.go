package field

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/crypto/hkdf"
)

// RandomElement draws a uniform element of the field from rand. Candidates
// are masked down to the bit length of p-1 and rejected until one lands in
// [0, p), so the distribution carries no modular bias. rand should be a
// cryptographically secure source (e.g. crypto/rand.Reader) when the
// element protects a secret.
func (f Field) RandomElement(rand io.Reader) (Element, error) {
	if f.p == 0 {
		return Element{}, fmt.Errorf("%w: field is not initialized", ErrInvalidModulus)
	}
	mask := uint64(1)<<bits.Len64(f.p-1) - 1

	var buf [8]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return Element{}, fmt.Errorf("reading randomness failed: %w", err)
		}
		v := binary.LittleEndian.Uint64(buf[:]) & mask
		if v < f.p {
			return Element{value: v, modulus: f.p}, nil
		}
	}
}

// NewSeedReader returns a deterministic randomness stream expanding seed
// with HKDF-SHA256, separated by domain. Two readers with the same seed and
// domain produce the same bytes, which makes coefficient draws replayable
// in tests and across resumed sessions.
func NewSeedReader(seed, domain []byte) io.Reader {
	return hkdf.New(sha256.New, seed, nil, domain)
}
