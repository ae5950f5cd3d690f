package shamir

import (
	"fmt"

	"github.com/eliseuv/algebra/msgpack"
	"github.com/eliseuv/algebra/primitives/field"
)

// shareWire is the msgpack form of a Share: the canonical values of x and y
// plus the field modulus, so the receiving side rebuilds the elements in
// the right field.
type shareWire struct {
	X uint64 `codec:"x"`
	Y uint64 `codec:"y"`
	P uint64 `codec:"p"`
}

// Encode serializes the share to msgpack.
func (s Share) Encode() []byte {
	return msgpack.Encode(shareWire{X: s.X.Uint64(), Y: s.Y.Uint64(), P: s.X.Modulus()})
}

// DecodeShare parses a share produced by Share.Encode, validating the
// carried modulus.
func DecodeShare(b []byte) (Share, error) {
	var w shareWire
	if err := msgpack.Decode(b, &w); err != nil {
		return Share{}, fmt.Errorf("decoding share failed: %w", err)
	}
	f, err := field.NewField(w.P)
	if err != nil {
		return Share{}, fmt.Errorf("decoding share failed: %w", err)
	}
	return Share{X: f.NewElement(w.X), Y: f.NewElement(w.Y)}, nil
}
