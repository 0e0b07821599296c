package editor_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
)

type fakeInput struct {
	name string
	open bool
	fail bool
}

func (f *fakeInput) Open() error {
	if f.fail {
		return errors.New("device busy")
	}
	f.open = true
	return nil
}
func (f *fakeInput) Close() error   { f.open = false; return nil }
func (f *fakeInput) IsOpen() bool   { return f.open }
func (f *fakeInput) String() string { return f.name }

type fakeMIDI struct {
	inputs []*fakeInput
	closed bool
}

func (f *fakeMIDI) Inputs(yield func(editor.MIDIInputDevice) bool) {
	for _, i := range f.inputs {
		if !yield(i) {
			return
		}
	}
}
func (f *fakeMIDI) Close()                      { f.closed = true }
func (f *fakeMIDI) Support() editor.MIDISupport { return editor.MIDISupported }

func TestControlChangeScaling(t *testing.T) {
	cases := []struct {
		cc, value uint8
		path      string
		want      float64
	}{
		{7, 127, "master.volume", 100},
		{7, 0, "master.volume", 0},
		{1, 64, "mod.amount", 50},
		{74, 64, "fx.filter.cutoff", 10090},
		{74, 0, "fx.filter.cutoff", 20},
		{93, 127, "fx.chorus.mix", 100},
	}
	for _, tc := range cases {
		m := editor.NewModel(editor.NewBroker(), nil, nil)
		m.ProcessMsg(editor.MsgToModel{Data: editor.ControlChange{Controller: tc.cc, Value: tc.value}})
		if n, _ := m.Get(tc.path).Number(); n != tc.want {
			t.Errorf("cc%d=%d: %s = %v, want %v", tc.cc, tc.value, tc.path, n, tc.want)
		}
	}
}

func TestCCValueBeforeSnapping(t *testing.T) {
	c := editor.Control{Min: 0.05, Max: 10, Step: 0.05}
	if got := c.Range().Apply(editor.CCValue(c, 100)); math.Abs(got-7.9) > 1e-9 {
		t.Errorf("cc 100 on mod rate = %v, want 7.9", got)
	}
}

func TestUnmappedControlChangeIsIgnored(t *testing.T) {
	b := editor.NewBroker()
	m := editor.NewModel(b, nil, nil)
	before := m.Patch()
	m.ProcessMsg(editor.MsgToModel{Data: editor.ControlChange{Controller: 20, Value: 127}})
	if after := m.Patch(); after.Master != before.Master || after.Mod != before.Mod {
		t.Error("unmapped controller changed the patch")
	}
	if len(b.ToGUI) != 0 {
		t.Error("unmapped controller notified the front-end")
	}
}

func TestControlChangeShowsControl(t *testing.T) {
	b := editor.NewBroker()
	m := editor.NewModel(b, nil, nil)
	m.ProcessMsg(editor.MsgToModel{Data: editor.ControlChange{Controller: 71, Value: 10}})
	msg, ok := editor.TimeoutReceive(b.ToGUI, time.Second)
	if !ok {
		t.Fatal("no message to the front-end")
	}
	want := editor.MsgToGUI{Kind: editor.GUIMessageShowControl, Param: "fx.filter.reso"}
	if msg != want {
		t.Errorf("got %+v, want %+v", msg, want)
	}
}

func TestSetCCMap(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	if err := m.MIDI().SetCCMap(map[uint8]string{20: "osc.1.wave"}); !errors.Is(err, editor.ErrControlKind) {
		t.Errorf("choice target: got %v, want ErrControlKind", err)
	}
	if err := m.MIDI().SetCCMap(map[uint8]string{20: "osc.9.level"}); !errors.Is(err, raveland.ErrInvalidPath) {
		t.Errorf("unknown target: got %v, want ErrInvalidPath", err)
	}
	if err := m.MIDI().SetCCMap(map[uint8]string{200: "osc.1.level"}); err == nil {
		t.Error("controller 200 accepted")
	}
	if _, ok := m.MIDI().CCMap()[74]; !ok {
		t.Error("failed SetCCMap replaced the map")
	}
	if err := m.MIDI().SetCCMap(map[uint8]string{20: "osc.1.level"}); err != nil {
		t.Fatal(err)
	}
	m.ProcessMsg(editor.MsgToModel{Data: editor.ControlChange{Controller: 20, Value: 0}})
	if n, _ := m.Get("osc.1.level").Number(); n != 0 {
		t.Errorf("osc.1.level = %v, want 0", n)
	}
}

func TestMIDIInput(t *testing.T) {
	ctx := &fakeMIDI{inputs: []*fakeInput{{name: "Keystep"}, {name: "nanoKONTROL2"}, {name: "Broken", fail: true}}}
	m := editor.NewModel(editor.NewBroker(), nil, ctx)
	in := m.MIDI().Input()
	want := []string{"None", "Keystep", "nanoKONTROL2", "Broken"}
	if got := in.Options(); len(got) != len(want) || got[1] != want[1] || got[3] != want[3] {
		t.Errorf("options = %v, want %v", got, want)
	}
	if !m.MIDI().OpenByPrefix("nano") {
		t.Fatal("OpenByPrefix failed")
	}
	if in.Value() != "nanoKONTROL2" || !ctx.inputs[1].open {
		t.Errorf("input = %q", in.Value())
	}
	if in.SetValue("Broken") {
		t.Error("opening a broken device succeeded")
	}
	if in.Value() != "None" || ctx.inputs[1].open {
		t.Errorf("after failed open: input = %q", in.Value())
	}
	var errs int
	for _, a := range m.Alerts().Iterate {
		if a.Priority == editor.Error {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("got %d error alerts, want 1", errs)
	}
	m.MIDI().Close()
	if !ctx.closed {
		t.Error("context not closed")
	}
}

func TestNullMIDIContext(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, editor.NullMIDIContext{})
	if got := m.MIDI().Input().Options(); len(got) != 1 || got[0] != "Not compiled" {
		t.Errorf("options = %v", got)
	}
}
