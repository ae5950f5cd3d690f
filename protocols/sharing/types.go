package sharing

import (
	"fmt"

	"github.com/eliseuv/algebra/primitives/field"
)

// PublicInput is the session description every participant knows before the
// first round.
type PublicInput struct {
	// Modulus is the order of the prime field the secret lives in.
	Modulus uint64
	// T is the reconstruction threshold, N the number of shareholders.
	T, N int
	// Quorum lists the shareholder ids (1-based) that reveal their share in
	// the reconstruction round. It must hold at least T distinct ids.
	Quorum []int
}

func (pub *PublicInput) check() error {
	if _, err := field.NewField(pub.Modulus); err != nil {
		return err
	}
	if pub.T < 1 || pub.T > pub.N {
		return fmt.Errorf("invalid session thresholds: t=%d, n=%d", pub.T, pub.N)
	}
	if len(pub.Quorum) < pub.T {
		return fmt.Errorf("quorum of %d cannot reach threshold %d", len(pub.Quorum), pub.T)
	}
	seen := make(map[int]bool, len(pub.Quorum))
	for _, id := range pub.Quorum {
		if id < 1 || id > pub.N {
			return fmt.Errorf("quorum member %d out of range 1..%d", id, pub.N)
		}
		if seen[id] {
			return fmt.Errorf("quorum member %d listed twice", id)
		}
		seen[id] = true
	}
	return nil
}

// DealingMessage is broadcast by the dealer in the dealing round.
// Shares[i] is the encoded share destined to shareholder i+1.
type DealingMessage struct {
	Shares [][]byte `codec:"shares"`
}

// RevealMessage is broadcast by quorum members in the reconstruction round.
type RevealMessage struct {
	Share []byte `codec:"share"`
}
