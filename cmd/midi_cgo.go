//go:build cgo

package cmd

import (
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/editor/gomidi"
)

func newMIDIContext(broker *editor.Broker) editor.MIDIContext {
	return gomidi.NewContext(broker)
}
