package editor

import (
	"math/rand/v2"
	"time"

	"github.com/raveland/raveland"
)

// Model implements the front panel. It holds the live patch and all the
// transient editor state; the front-ends only draw what the Model tells them
// and report user input back to it.
type (
	Model struct {
		d modelData

		presets      raveland.Presets
		sections     []Section
		controls     []Control
		controlIndex map[string]int

		browser       browserState
		chainSelected int
		pulse         pulseState
		midi          midiState
		alerts        Alerts

		broker *Broker
		now    func() time.Time
		rand   *rand.Rand
	}

	// modelData is the part of the model that a reset or a preset replaces.
	modelData struct {
		Patch       raveland.Patch
		PresetIndex int // -1 when the patch no longer comes from a preset
		PresetName  string
	}

	// ControlView is the rendered state of one control.
	ControlView struct {
		Path    string
		Kind    ControlKind
		Value   raveland.Value
		Display string
		Angle   float64 // knob indicator angle in degrees; 0 for other kinds
	}
)

const RandomizedPresetName = "Randomized (demo)"

// NewModel creates a model showing the INIT patch. presets is the catalog
// for the browser; if it is empty, the builtin presets are used. midiContext
// can be nil when MIDI input is not wanted.
func NewModel(broker *Broker, presets raveland.Presets, midiContext MIDIContext) *Model {
	if len(presets) == 0 {
		presets = raveland.BuiltinPresets()
	}
	m := &Model{
		presets: presets,
		broker:  broker,
		now:     time.Now,
		rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	m.setControls(DefaultControls())
	m.midi.context = midiContext
	m.midi.ccMap = DefaultCCMap()
	m.reset()
	if midiContext != nil {
		m.MIDI().Refresh().Do()
	}
	return m
}

func (m *Model) setControls(sections []Section) {
	m.sections = sections
	m.controls = m.controls[:0]
	m.controlIndex = map[string]int{}
	for _, s := range sections {
		for _, c := range s.Controls {
			m.controlIndex[c.Path] = len(m.controls)
			m.controls = append(m.controls, c)
		}
	}
}

func (m *Model) Broker() *Broker { return m.broker }

// SetClock replaces the wall clock the model uses for the modulation pulse.
func (m *Model) SetClock(now func() time.Time) { m.now = now }

// SetRandSource replaces the source the randomize action draws from.
func (m *Model) SetRandSource(src rand.Source) { m.rand = rand.New(src) }

// Patch returns a copy of the live patch.
func (m *Model) Patch() raveland.Patch { return m.d.Patch.Copy() }

// Get reads a leaf of the live patch by path.
func (m *Model) Get(path string) raveland.Value { return m.d.Patch.Get(path) }

func (m *Model) PresetIndex() int   { return m.d.PresetIndex }
func (m *Model) PresetName() string { return m.d.PresetName }

func (m *Model) Sections() []Section { return m.sections }

// Controls returns every control in layout order.
func (m *Model) Controls() []Control { return m.controls }

func (m *Model) Control(path string) (Control, bool) {
	i, ok := m.controlIndex[path]
	if !ok {
		return Control{}, false
	}
	return m.controls[i], true
}

// Render returns the display state of every control, in layout order.
func (m *Model) Render() []ControlView {
	ret := make([]ControlView, len(m.controls))
	for i, c := range m.controls {
		v := c.field.Get(&m.d.Patch)
		view := ControlView{Path: c.Path, Kind: c.Kind, Value: v}
		switch c.Kind {
		case Toggle:
			if b, _ := v.Bool(); b {
				view.Display = "on"
			} else {
				view.Display = "off"
			}
		case Select:
			view.Display, _ = v.Text()
		case Knob, Slider:
			n, _ := v.Number()
			view.Display = c.Readout(n)
			if c.Kind == Knob {
				view.Angle = c.Angle(n)
			}
		}
		ret[i] = view
	}
	return ret
}

// ProcessMsg handles a message that arrived through Broker.ToModel. It must
// be called on the goroutine that owns the model.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch e := msg.Data.(type) {
	case func():
		e()
	case pulseRevert:
		m.revertPulse(e.gen)
	case ControlChange:
		m.MIDI().handle(e)
	case Alert:
		m.alerts.AddAlert(e)
	case Event:
		if _, err := m.Update(e); err != nil {
			m.alerts.Add(err.Error(), Error)
		}
	}
}

// Reset restores the INIT patch and selects the first preset.
func (m *Model) Reset() Action { return MakeAction((*resetPatch)(m)) }

type resetPatch Model

func (m *resetPatch) Do() { (*Model)(m).reset() }

func (m *Model) reset() {
	m.cancelPulse()
	m.d = modelData{Patch: raveland.DefaultPatch(), PresetIndex: 0, PresetName: m.presets[0].Name}
	m.chainSelected = 0
}

// Float returns the continuous control bound to path. Writes go through
// Update, so they are snapped and clamped like any other edit.
func (m *Model) Float(path string) Float {
	c, ok := m.Control(path)
	if !ok || !c.Kind.Continuous() {
		return Float{}
	}
	return MakeFloat(&floatBinding{m: m, c: c})
}

func (m *Model) Bool(path string) Bool {
	c, ok := m.Control(path)
	if !ok || c.Kind != Toggle {
		return Bool{}
	}
	return MakeBool(&boolBinding{m: m, c: c})
}

func (m *Model) Choice(path string) Choice {
	c, ok := m.Control(path)
	if !ok || c.Kind != Select {
		return Choice{}
	}
	return MakeChoice(&choiceBinding{m: m, c: c})
}

type (
	floatBinding struct {
		m *Model
		c Control
	}
	boolBinding struct {
		m *Model
		c Control
	}
	choiceBinding struct {
		m *Model
		c Control
	}
)

func (b *floatBinding) Value() float64                { return *b.c.field.Number(&b.m.d.Patch) }
func (b *floatBinding) Range() raveland.Range         { return b.c.Range() }
func (b *floatBinding) StringOf(value float64) string { return b.c.Readout(value) }

func (b *floatBinding) SetValue(value float64) bool {
	_, err := b.m.Update(ContinuousChanged{Path: b.c.Path, Value: value})
	return err == nil
}

func (b *boolBinding) Value() bool { return *b.c.field.Flag(&b.m.d.Patch) }

func (b *boolBinding) SetValue(value bool) {
	b.m.Update(ToggleChanged{Path: b.c.Path, Value: value})
}

func (b *choiceBinding) Value() string     { return *b.c.field.Text(&b.m.d.Patch) }
func (b *choiceBinding) Options() []string { return b.c.Options.List }

func (b *choiceBinding) SetValue(value string) bool {
	_, err := b.m.Update(ChoiceChanged{Path: b.c.Path, Value: value})
	return err == nil
}
