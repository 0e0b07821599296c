package editor

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

type MIDIModel Model

func (m *Model) MIDI() *MIDIModel { return (*MIDIModel)(m) }

type (
	midiState struct {
		currentInput MIDIInputDevice
		context      MIDIContext
		inputs       []MIDIInputDevice
		ccMap        map[uint8]string
	}

	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int

	// ControlChange is a MIDI control change message forwarded by a driver.
	ControlChange struct {
		Channel    uint8
		Controller uint8
		Value      uint8 // 0-127
	}

	NullMIDIContext struct{}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

// DefaultCCMap maps the common controller numbers to the front panel: mod
// wheel, volume, resonance, brightness, reverb and chorus send.
func DefaultCCMap() map[uint8]string {
	return map[uint8]string{
		1:  "mod.amount",
		7:  "master.volume",
		71: "fx.filter.reso",
		74: "fx.filter.cutoff",
		91: "fx.reverb.mix",
		93: "fx.chorus.mix",
	}
}

func (m *MIDIModel) CCMap() map[uint8]string { return maps.Clone(m.midi.ccMap) }

// SetCCMap replaces the controller map. Every target must be a knob or a
// slider; on error the old map is kept.
func (m *MIDIModel) SetCCMap(ccMap map[uint8]string) error {
	for _, cc := range slices.Sorted(maps.Keys(ccMap)) {
		if cc > 127 {
			return fmt.Errorf("controller %d out of range", cc)
		}
		if _, err := (*Model)(m).control(ccMap[cc], Knob, Slider); err != nil {
			return fmt.Errorf("controller %d: %w", cc, err)
		}
	}
	m.midi.ccMap = maps.Clone(ccMap)
	return nil
}

// CCValue scales a 7-bit controller value to the range of c, before
// snapping.
func CCValue(c Control, value uint8) float64 {
	return c.Min + float64(min(value, 127))/127*(c.Max-c.Min)
}

func (m *MIDIModel) handle(cc ControlChange) {
	path, ok := m.midi.ccMap[cc.Controller]
	if !ok {
		return
	}
	c, ok := (*Model)(m).Control(path)
	if !ok {
		return
	}
	if _, err := (*Model)(m).Update(ContinuousChanged{Path: path, Value: CCValue(c, cc.Value)}); err != nil {
		return
	}
	if m.broker != nil {
		TrySend(m.broker.ToGUI, MsgToGUI{Kind: GUIMessageShowControl, Param: path})
	}
}

// Refresh
func (m *MIDIModel) Refresh() Action { return MakeAction((*midiRefresh)(m)) }

type midiRefresh MIDIModel

func (m *midiRefresh) Do() {
	if m.midi.context == nil {
		return
	}
	m.midi.inputs = m.midi.inputs[:0]
	for i := range m.midi.context.Inputs {
		m.midi.inputs = append(m.midi.inputs, i)
		if m.midi.currentInput != nil && i.String() == m.midi.currentInput.String() {
			m.midi.currentInput.Close()
			m.midi.currentInput = nil
			if err := i.Open(); err != nil {
				(*Model)(m).Alerts().Add(fmt.Sprintf("Failed to reopen MIDI input port: %s", err.Error()), Error)
				continue
			}
			m.midi.currentInput = i
		}
	}
}

// Input is the open MIDI input port as a Choice. The first option means no
// input; it is labelled with the reason when MIDI is unavailable.
func (m *MIDIModel) Input() Choice { return MakeChoice((*midiInput)(m)) }

type midiInput MIDIModel

func (m *midiInput) noneOption() string {
	if m.midi.context == nil {
		return "Not compiled"
	}
	switch m.midi.context.Support() {
	case MIDISupportNotCompiled:
		return "Not compiled"
	case MIDISupportNoDriver:
		return "No driver"
	}
	return "None"
}

func (m *midiInput) Options() []string {
	ret := []string{m.noneOption()}
	for _, d := range m.midi.inputs {
		ret = append(ret, d.String())
	}
	return ret
}

func (m *midiInput) Value() string {
	if m.midi.currentInput == nil {
		return m.noneOption()
	}
	return m.midi.currentInput.String()
}

func (m *midiInput) SetValue(val string) bool {
	i := slices.Index(m.Options(), val)
	if i < 0 {
		return false
	}
	if m.midi.currentInput != nil {
		if err := m.midi.currentInput.Close(); err != nil {
			(*Model)(m).Alerts().Add(fmt.Sprintf("Failed to close current MIDI input port: %s", err.Error()), Error)
		}
		m.midi.currentInput = nil
	}
	if i == 0 {
		return true
	}
	newInput := m.midi.inputs[i-1]
	if err := newInput.Open(); err != nil {
		(*Model)(m).Alerts().Add(fmt.Sprintf("Failed to open MIDI input port: %s", err.Error()), Error)
		return false
	}
	m.midi.currentInput = newInput
	(*Model)(m).Alerts().Add(fmt.Sprintf("Opened MIDI input port: %s", newInput.String()), Info)
	return true
}

// OpenByPrefix opens the first input whose name starts with prefix, or the
// first input at all if prefix is empty. It reports whether an input was
// opened.
func (m *MIDIModel) OpenByPrefix(prefix string) bool {
	for _, d := range m.midi.inputs {
		if strings.HasPrefix(d.String(), prefix) {
			return m.Input().SetValue(d.String())
		}
	}
	return false
}

func (m *MIDIModel) Close() {
	if m.midi.context != nil {
		m.midi.context.Close()
	}
}

func (NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (NullMIDIContext) Close()                                        {}
func (NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }

func (c ControlChange) String() string {
	return "cc" + strconv.Itoa(int(c.Controller)) + "=" + strconv.Itoa(int(c.Value))
}
