// Package fake provides an in-memory broadcast channel for running sharing
// sessions where every participant lives in the same process, e.g. in tests.
package fake

import (
	"fmt"
	"sync"

	"github.com/eliseuv/algebra/communication"
)

// Orchestrator simulates a synchronous broadcast channel between the
// participants of a sharing session. Each round it collects one message per
// participant and then broadcasts the full round to everyone.
type Orchestrator struct {
	Channels  map[int]PartyBroadcastChannel
	RoundMsgs map[int]communication.BroadcastMessage
	Round     int
}

// NewOrchestrator creates a new orchestrator with no participants.
func NewOrchestrator() Orchestrator {
	return Orchestrator{
		Channels:  make(map[int]PartyBroadcastChannel),
		RoundMsgs: make(map[int]communication.BroadcastMessage),
		Round:     0,
	}
}

// AddChannel connects a participant's channel to the orchestrator.
func (o Orchestrator) AddChannel(pbc PartyBroadcastChannel) {
	o.Channels[pbc.ID] = pbc
}

// BroadcastChannel gets the channel of the participant with the given id.
func (o Orchestrator) BroadcastChannel(id int) (*PartyBroadcastChannel, error) {
	pbc, ok := o.Channels[id]
	if !ok {
		return nil, fmt.Errorf("channel not found for id: %d", id)
	}
	return &pbc, nil
}

// ReceiveMessages collects the message of every participant for the current
// round, listening to all channels simultaneously.
func (o Orchestrator) ReceiveMessages() error {
	agg := make(chan communication.BroadcastMessage, len(o.Channels))
	var wg sync.WaitGroup
	for _, pbc := range o.Channels {
		wg.Add(1)
		go func(c chan communication.BroadcastMessage, wg *sync.WaitGroup) {
			defer wg.Done()
			agg <- <-c
		}(pbc.SendChannel, &wg)
	}

	wg.Wait()

	for i := 0; i < len(o.Channels); i++ {
		bcastMsg := <-agg
		o.RoundMsgs[bcastMsg.SenderID] = bcastMsg
	}

	return nil
}

func (o Orchestrator) collectRoundMessages() communication.RoundMessages {
	msgs := make([]communication.BroadcastMessage, len(o.Channels))
	for i := 0; i < len(o.Channels); i++ {
		msgs[i] = o.RoundMsgs[i]
	}
	return communication.RoundMessages{
		Messages: msgs,
		Round:    o.Round,
	}
}

// Broadcast sends the collected round messages to every participant.
func (o Orchestrator) Broadcast() error {
	roundMsgs := o.collectRoundMessages()

	for _, bc := range o.Channels {
		bc.ReceiveChannel <- roundMsgs
	}

	return nil
}

// PartyBroadcastChannel implements communication.BroadcastChannel and is
// the channel a session participant uses to talk to the orchestrator.
type PartyBroadcastChannel struct {
	ID             int
	SendChannel    chan communication.BroadcastMessage
	ReceiveChannel chan communication.RoundMessages
}

// NewPartyBroadcastChannel creates a channel for the participant with the
// given id, ready to connect to an orchestrator.
func NewPartyBroadcastChannel(id int) PartyBroadcastChannel {
	return PartyBroadcastChannel{
		ID:             id,
		SendChannel:    make(chan communication.BroadcastMessage, 1),
		ReceiveChannel: make(chan communication.RoundMessages, 1),
	}
}

// Send gives the orchestrator a message to be broadcast during the round.
func (pbc PartyBroadcastChannel) Send(msg []byte) {
	pbc.SendChannel <- communication.BroadcastMessage{
		Payload:  msg,
		SenderID: pbc.ID,
	}
}

// ReceiveRound returns the round number and the messages broadcast by all
// participants in that round, blocking until the orchestrator broadcasts.
func (pbc PartyBroadcastChannel) ReceiveRound() (int, []communication.BroadcastMessage) {
	roundMsgs := <-pbc.ReceiveChannel
	return roundMsgs.Round, roundMsgs.Messages
}
