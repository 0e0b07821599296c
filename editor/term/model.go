// Package term is a terminal front-end for the editor model, built on
// bubbletea. It shows the same controls as the desktop front-end as text and
// edits them from the keyboard.
package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/visual"
)

const frameInterval = visual.ScopeInterval

type (
	Model struct {
		ed       *editor.Model
		defaults raveland.Patch
		cursor   int
		meter    *visual.Meter
		start    time.Time
		now      time.Time
		level    float64
		quitting bool
		width    int
		height   int
	}

	// BrokerMsg carries a message that arrived on Broker.ToModel.
	BrokerMsg editor.MsgToModel

	// GUIMsg carries a message that arrived on Broker.ToGUI.
	GUIMsg editor.MsgToGUI

	TickMsg time.Time
)

func New(ed *editor.Model) Model {
	now := time.Now()
	return Model{
		ed:       ed,
		defaults: raveland.DefaultPatch(),
		meter:    visual.NewMeter(),
		start:    now,
		now:      now,
		width:    80,
		height:   40,
	}
}

// ListenForBroker waits for the next message to the model. The message is
// processed in Update, on the program goroutine that owns the editor model.
func ListenForBroker(b *editor.Broker) tea.Cmd {
	return func() tea.Msg {
		return BrokerMsg(<-b.ToModel)
	}
}

// ListenForGUI waits for the next message from the model to the front-end.
func ListenForGUI(b *editor.Broker) tea.Cmd {
	return func() tea.Msg {
		return GUIMsg(<-b.ToGUI)
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(ListenForBroker(m.ed.Broker()), ListenForGUI(m.ed.Broker()), tick())
}

// Cursor is the index of the selected control in editor.Model.Controls.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ed.Presets().IsOpen() {
			m.browserKey(msg)
			return m, nil
		}
		return m.key(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case BrokerMsg:
		m.ed.ProcessMsg(editor.MsgToModel(msg))
		return m, ListenForBroker(m.ed.Broker())
	case GUIMsg:
		if msg.Kind == editor.GUIMessageShowControl {
			for i, c := range m.ed.Controls() {
				if c.Path == msg.Param {
					m.cursor = i
				}
			}
		}
		return m, ListenForGUI(m.ed.Broker())
	case TickMsg:
		now := time.Time(msg)
		m.ed.Alerts().Update(now.Sub(m.now))
		m.ed.Mod().Tick(now)
		m.level = m.meter.Update(now, m.ed.Patch().Master.Volume)
		m.now = now
		return m, tick()
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := m.ed.Controls()
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case "j", "down":
		m.cursor = min(m.cursor+1, len(controls)-1)
	case "h", "left":
		m.adjust(-1)
	case "l", "right":
		m.adjust(1)
	case "H", "shift+left":
		m.adjust(-10)
	case "L", "shift+right":
		m.adjust(10)
	case " ", "enter":
		m.adjust(1)
	case "d":
		m.setDefault()
	case "/", "p":
		m.ed.Presets().Open().Do()
	case "r":
		m.ed.Randomize().Do()
	case "R":
		m.ed.Reset().Do()
	case "s":
		m.ed.Mod().CycleShape().Do()
	case "t":
		m.ed.Mod().Trigger().Do()
	case "c":
		l := m.ed.Chain().List()
		l.SetSelected((l.Selected() + 1) % l.Count())
	case "[":
		l := m.ed.Chain().List()
		l.MoveElements(-1)
	case "]":
		l := m.ed.Chain().List()
		l.MoveElements(1)
	}
	return m, nil
}

// adjust steps the selected control: knobs and sliders by steps, choices to
// the next or previous option, toggles flip whatever the direction.
func (m *Model) adjust(steps int) {
	c, ok := m.selected()
	if !ok {
		return
	}
	switch c.Kind {
	case editor.Knob, editor.Slider:
		m.ed.Float(c.Path).Add(steps)
	case editor.Toggle:
		m.ed.Bool(c.Path).Toggle()
	case editor.Select:
		if steps < 0 {
			steps = -1
		} else {
			steps = 1
		}
		m.ed.Choice(c.Path).Cycle(steps)
	}
}

func (m *Model) setDefault() {
	c, ok := m.selected()
	if !ok {
		return
	}
	v := m.defaults.Get(c.Path)
	switch c.Kind {
	case editor.Knob, editor.Slider:
		n, _ := v.Number()
		m.ed.Update(editor.ContinuousChanged{Path: c.Path, Value: n})
	case editor.Toggle:
		b, _ := v.Bool()
		m.ed.Update(editor.ToggleChanged{Path: c.Path, Value: b})
	case editor.Select:
		s, _ := v.Text()
		m.ed.Update(editor.ChoiceChanged{Path: c.Path, Value: s})
	}
}

func (m Model) selected() (editor.Control, bool) {
	controls := m.ed.Controls()
	if m.cursor < 0 || m.cursor >= len(controls) {
		return editor.Control{}, false
	}
	return controls[m.cursor], true
}

func (m Model) browserKey(msg tea.KeyMsg) {
	p := m.ed.Presets()
	switch msg.Type {
	case tea.KeyEsc:
		p.HandleKey(editor.KeyEscape)
	case tea.KeyEnter:
		p.HandleKey(editor.KeyEnter)
	case tea.KeyBackspace:
		q := []rune(p.Query().Value())
		if len(q) > 0 {
			p.Query().SetValue(string(q[:len(q)-1]))
		}
	case tea.KeyCtrlC:
		p.HandleKey(editor.KeyEscape)
	case tea.KeySpace:
		p.Query().SetValue(p.Query().Value() + " ")
	case tea.KeyRunes:
		p.Query().SetValue(p.Query().Value() + string(msg.Runes))
	}
}
