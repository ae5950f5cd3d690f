package sharing

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/eliseuv/algebra/communication"
	"github.com/eliseuv/algebra/msgpack"
	"github.com/eliseuv/algebra/primitives/field"
	"github.com/eliseuv/algebra/primitives/shamir"
)

// StartShareholder runs shareholder id (1-based) through a session: receive
// the dealt share, reveal it if the shareholder is a quorum member, and
// reconstruct the secret from the quorum's reveals. It returns the
// shareholder's own share and the reconstructed secret.
func StartShareholder(
	bc communication.BroadcastChannel,
	pub *PublicInput,
	id int,
) (shamir.Share, field.Element, error) {
	myLog := log.WithFields(log.Fields{
		"id": id,
		"t":  pub.T,
		"n":  pub.N,
	})

	if err := pub.check(); err != nil {
		return shamir.Share{}, field.Element{}, err
	}
	if id < 1 || id > pub.N {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("shareholder id %d out of range 1..%d", id, pub.N)
	}

	// Dealing round: only the dealer talks.
	bc.Send([]byte{})
	_, roundMsgs := bc.ReceiveRound()

	var dealing DealingMessage
	if err := msgpack.Decode(roundMsgs[DealerID].Payload, &dealing); err != nil {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("shareholder %d failed to decode the dealing message: %w", id, err)
	}
	if len(dealing.Shares) != pub.N {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("dealer sent %d shares, expected %d", len(dealing.Shares), pub.N)
	}

	own, err := shamir.DecodeShare(dealing.Shares[id-1])
	if err != nil {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("shareholder %d received a bad share: %w", id, err)
	}
	if own.X.Modulus() != pub.Modulus {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("%w: share has modulus %d, session uses %d",
				field.ErrModulusMismatch, own.X.Modulus(), pub.Modulus)
	}
	myLog.Debugf("holding share at x = %v", own.X)

	// Reconstruction round: quorum members reveal their share.
	if intIndexOf(pub.Quorum, id) >= 0 {
		bc.Send(msgpack.Encode(RevealMessage{Share: own.Encode()}))
	} else {
		bc.Send([]byte{})
	}
	_, roundMsgs = bc.ReceiveRound()

	reveals := make([]shamir.Share, 0, len(pub.Quorum))
	for _, member := range pub.Quorum {
		var reveal RevealMessage
		if err := msgpack.Decode(roundMsgs[member].Payload, &reveal); err != nil {
			return shamir.Share{}, field.Element{},
				fmt.Errorf("decoding reveal from shareholder %d failed: %w", member, err)
		}
		share, err := shamir.DecodeShare(reveal.Share)
		if err != nil {
			return shamir.Share{}, field.Element{},
				fmt.Errorf("shareholder %d revealed a bad share: %w", member, err)
		}
		reveals = append(reveals, share)
	}

	secret, err := shamir.Reconstruct(reveals)
	if err != nil {
		return shamir.Share{}, field.Element{},
			fmt.Errorf("shareholder %d failed to reconstruct: %w", id, err)
	}
	myLog.Infof("reconstructed secret from %d reveals", len(reveals))

	return own, secret, nil
}

// intIndexOf returns the first position of val in list, or -1.
func intIndexOf(list []int, val int) int {
	for i, v := range list {
		if v == val {
			return i
		}
	}
	return -1
}
