package term_test

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/editor/term"
)

func newModel() (term.Model, *editor.Model) {
	ed := editor.NewModel(editor.NewBroker(), nil, nil)
	return term.New(ed), ed
}

func press(m term.Model, keys ...string) term.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(term.Model)
	}
	return m
}

func moveTo(t *testing.T, m term.Model, ed *editor.Model, path string) term.Model {
	t.Helper()
	i := slices.IndexFunc(ed.Controls(), func(c editor.Control) bool { return c.Path == path })
	if i < 0 {
		t.Fatalf("no control %q", path)
	}
	for m.Cursor() < i {
		m = press(m, "j")
	}
	return m
}

func TestCursorStaysOnControls(t *testing.T) {
	m, ed := newModel()
	m = press(m, "k", "k")
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor())
	}
	for range len(ed.Controls()) + 3 {
		m = press(m, "j")
	}
	if want := len(ed.Controls()) - 1; m.Cursor() != want {
		t.Errorf("cursor = %d, want %d", m.Cursor(), want)
	}
}

func TestAdjustKnob(t *testing.T) {
	m, ed := newModel()
	m = moveTo(t, m, ed, "fx.filter.cutoff")
	c, _ := ed.Control("fx.filter.cutoff")
	before, _ := ed.Get("fx.filter.cutoff").Number()
	m = press(m, "h")
	if got, _ := ed.Get("fx.filter.cutoff").Number(); got != c.Range().Apply(before-c.Step) {
		t.Errorf("after h: cutoff = %v, want %v", got, c.Range().Apply(before-c.Step))
	}
	before, _ = ed.Get("fx.filter.cutoff").Number()
	press(m, "L")
	if got, _ := ed.Get("fx.filter.cutoff").Number(); got != c.Range().Apply(before+10*c.Step) {
		t.Errorf("after L: cutoff = %v, want %v", got, c.Range().Apply(before+10*c.Step))
	}
}

func TestToggleAndDefault(t *testing.T) {
	m, ed := newModel()
	m = moveTo(t, m, ed, "fx.filter.enabled")
	before, _ := ed.Get("fx.filter.enabled").Bool()
	m = press(m, "l")
	if got, _ := ed.Get("fx.filter.enabled").Bool(); got == before {
		t.Errorf("toggle did not flip")
	}
	press(m, "d")
	defaults := raveland.DefaultPatch()
	def, _ := defaults.Get("fx.filter.enabled").Bool()
	if got, _ := ed.Get("fx.filter.enabled").Bool(); got != def {
		t.Errorf("default: got %v, want %v", got, def)
	}
}

func TestChoiceCycles(t *testing.T) {
	m, ed := newModel()
	m = moveTo(t, m, ed, "fx.filter.type")
	c, _ := ed.Control("fx.filter.type")
	before, _ := ed.Get("fx.filter.type").Text()
	i := slices.Index(c.Options.List, before)
	m = press(m, "l")
	want := c.Options.List[(i+1)%len(c.Options.List)]
	if got, _ := ed.Get("fx.filter.type").Text(); got != want {
		t.Errorf("after l: %q, want %q", got, want)
	}
	press(m, "h")
	if got, _ := ed.Get("fx.filter.type").Text(); got != before {
		t.Errorf("after h: %q, want %q", got, before)
	}
}

func TestPresetSearch(t *testing.T) {
	m, ed := newModel()
	m = press(m, "/")
	if !ed.Presets().IsOpen() {
		t.Fatal("browser did not open")
	}
	m = press(m, "z", "z", "z")
	if !strings.Contains(m.View(), editor.NoMatchesText) {
		t.Errorf("view does not show the no matches text")
	}
	m = press(m, "backspace", "backspace", "backspace", "r", "a", "v", "e", "enter")
	if ed.Presets().IsOpen() {
		t.Error("browser still open after enter")
	}
	if got, want := ed.PresetName(), "Rave — Wide SuperSaw Stack"; got != want {
		t.Errorf("preset = %q, want %q", got, want)
	}
	m = press(m, "/", "esc")
	if ed.Presets().IsOpen() {
		t.Error("escape did not close the browser")
	}
	if !strings.Contains(m.View(), "Rave — Wide SuperSaw Stack") {
		t.Error("header does not show the preset name")
	}
}

func TestBrokerMessages(t *testing.T) {
	m, ed := newModel()
	next, cmd := m.Update(term.BrokerMsg{Data: editor.ControlChange{Controller: 74, Value: 127}})
	if cmd == nil {
		t.Error("no command to keep listening on the broker")
	}
	_ = next.(term.Model)
	if got, _ := ed.Get("fx.filter.cutoff").Number(); got != 20000 {
		t.Errorf("cutoff = %v, want 20000", got)
	}
}

func TestShowControlMovesCursor(t *testing.T) {
	m, ed := newModel()
	next, cmd := m.Update(term.GUIMsg{Kind: editor.GUIMessageShowControl, Param: "fx.filter.cutoff"})
	if cmd == nil {
		t.Error("no command to keep listening for front-end messages")
	}
	got := next.(term.Model).Cursor()
	if ed.Controls()[got].Path != "fx.filter.cutoff" {
		t.Errorf("cursor on %s, want fx.filter.cutoff", ed.Controls()[got].Path)
	}
}

func TestChainKeys(t *testing.T) {
	m, ed := newModel()
	first := ed.Chain().Items()[0]
	m = press(m, "]")
	if got := ed.Chain().Items()[1]; got != first {
		t.Errorf("chain[1] = %v, want %v", got, first)
	}
	if got := ed.Chain().List().Selected(); got != 1 {
		t.Errorf("selection did not follow the effect: %d", got)
	}
	press(m, "[")
	if got := ed.Chain().Items()[0]; got != first {
		t.Errorf("chain[0] = %v, want %v", got, first)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}
