// Package cmd holds the start-up code shared by the front-end binaries.
package cmd

import (
	"log"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
)

// NewModel creates a model with a fresh broker, the builtin and user presets
// and the MIDI driver of this build, and applies preset presetIndex. Problems
// with the user presets are shown as a warning; they do not stop start-up.
func NewModel(presetIndex int) (*editor.Model, error) {
	presets, presetErr := raveland.LoadAllPresets()
	broker := editor.NewBroker()
	model := editor.NewModel(broker, presets, newMIDIContext(broker))
	if presetErr != nil {
		model.Alerts().Add("user presets: "+presetErr.Error(), editor.Warning)
	}
	if err := model.ApplyPreset(presetIndex); err != nil {
		model.MIDI().Close()
		return nil, err
	}
	return model, nil
}

// OpenMIDIInput opens the first MIDI input whose name starts with prefix. An
// empty prefix opens nothing.
func OpenMIDIInput(model *editor.Model, prefix string) {
	if prefix == "" {
		return
	}
	if !model.MIDI().OpenByPrefix(prefix) {
		log.Printf("no MIDI input device found with prefix '%s'", prefix)
	}
}
