package editor

import (
	"time"
)

type (
	// Broker is the message broker between the model goroutine and everything
	// else: timers, MIDI drivers and the front-end window loop. The model
	// itself is never touched from other goroutines; they send MsgToModel
	// values to ToModel instead, and the owner of the model drains the channel
	// and calls Model.ProcessMsg. The model answers with MsgToGUI values on
	// ToGUI when the front-end has to react to something it did not cause.
	//
	// For closing the front-end, the broker has two channels: CloseGUI and
	// FinishedGUI. CloseGUI has a capacity of 1, so you can always send an
	// empty message (struct{}{}) to it without blocking. If the channel is
	// already full, someone else has already requested the closure, so
	// dropping the message is fine. FinishedGUI is closed when the front-end
	// has shut down. You can wait for it with a timeout:
	//    select {
	//      case <-FinishedGUI:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToModel chan MsgToModel
		ToGUI   chan MsgToGUI

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data can be a func() to be
	// executed on the model goroutine, a ControlChange from a MIDI driver, an
	// Alert, or one of the model's own timer messages.
	MsgToModel struct {
		Data any
	}

	// MsgToGUI is a message sent from the model to whichever front-end owns
	// it.
	MsgToGUI struct {
		Kind  GUIMessageKind
		Param string
	}

	GUIMessageKind int
)

const (
	GUIMessageKindNone GUIMessageKind = iota
	// GUIMessageShowControl asks the front-end to bring the control with path
	// Param into view, e.g. after a MIDI controller moved it.
	GUIMessageShowControl
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 1024),
		ToGUI:       make(chan MsgToGUI, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
