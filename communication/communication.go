// Package communication defines the broadcast-channel abstraction sharing
// sessions run over. The arithmetic core below it is pure computation; this
// layer is the in-process front end that moves encoded shares around.
package communication

// BroadcastMessage is a wrapper for a message broadcast by one participant
// of a sharing session in a given round.
type BroadcastMessage struct {
	Payload  []byte `codec:"payload"`
	SenderID int    `codec:"sender_id"`
}

// RoundMessages is a wrapper for all the messages sent in a round.
type RoundMessages struct {
	Messages []BroadcastMessage `codec:"messages"`
	Round    int                `codec:"round"`
}

// BroadcastChannel is the channel a participant uses to perform send and
// receive operations during a session. Send queues the participant's
// message for the current round; ReceiveRound blocks until the round
// completes and returns every message of that round.
type BroadcastChannel interface {
	Send(msg []byte)
	ReceiveRound() (int, []BroadcastMessage)
}
