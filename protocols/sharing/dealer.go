// Package sharing runs a t-of-n Shamir sharing session between a dealer and
// n shareholders over a broadcast channel. The session has two rounds:
// the dealer deals one share per shareholder, then a quorum of shareholders
// reveals their shares and everyone reconstructs the secret.
//
// The broadcast channel delivers every message to every participant; a
// deployment that must keep shares private in transit wraps the payloads in
// an encrypting channel, which is outside this package.
package sharing

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/eliseuv/algebra/communication"
	"github.com/eliseuv/algebra/msgpack"
	"github.com/eliseuv/algebra/primitives/field"
	"github.com/eliseuv/algebra/primitives/shamir"
)

// DealerID is the channel id the dealer occupies; shareholders use 1..N.
const DealerID = 0

// StartDealer runs the dealer's side of a session: split the secret with
// the session parameters, deal the shares, and sit out the reconstruction
// round. The dealing polynomial is dropped as soon as the shares exist.
func StartDealer(
	bc communication.BroadcastChannel,
	pub *PublicInput,
	secret field.Element,
	rand io.Reader,
) error {
	myLog := log.WithFields(log.Fields{
		"role": "dealer",
		"t":    pub.T,
		"n":    pub.N,
	})

	if err := pub.check(); err != nil {
		return err
	}
	if secret.Modulus() != pub.Modulus {
		return fmt.Errorf("%w: secret has modulus %d, session uses %d",
			field.ErrModulusMismatch, secret.Modulus(), pub.Modulus)
	}

	shares, err := shamir.Split(secret, pub.T, pub.N, rand)
	if err != nil {
		return fmt.Errorf("dealer failed to split the secret: %w", err)
	}

	msg := DealingMessage{Shares: make([][]byte, len(shares))}
	for i, share := range shares {
		msg.Shares[i] = share.Encode()
	}

	bc.Send(msgpack.Encode(msg))
	bc.ReceiveRound()
	myLog.Infof("dealt %d shares", len(shares))

	// The dealer has nothing to reveal in the reconstruction round.
	bc.Send([]byte{})
	bc.ReceiveRound()

	return nil
}
