// Package msgpack provides the msgpack encoding helpers used across the
// module for share and protocol message payloads.
package msgpack

import "github.com/ugorji/go/codec"

var handle = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.Canonical = true
	return h
}()

// Encode serializes v to msgpack. Encoding the in-memory message types used
// in this module cannot fail, so a failure is a programming error and
// panics.
func Encode(v interface{}) []byte {
	var b []byte
	if err := codec.NewEncoderBytes(&b, handle).Encode(v); err != nil {
		panic(err)
	}
	return b
}

// Decode parses msgpack bytes into the value pointed to by out.
func Decode(b []byte, out interface{}) error {
	return codec.NewDecoderBytes(b, handle).Decode(out)
}
