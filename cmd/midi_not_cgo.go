//go:build !cgo

package cmd

import "github.com/raveland/raveland/editor"

// rtmidi needs cgo; the MIDI input choice then reads "Not compiled".
func newMIDIContext(*editor.Broker) editor.MIDIContext {
	return editor.NullMIDIContext{}
}
