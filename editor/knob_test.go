package editor_test

import (
	"testing"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
)

func TestKnobDrag(t *testing.T) {
	cutoff := raveland.Range{Min: 20, Max: 20000, Step: 10}
	percent := raveland.Range{Min: 0, Max: 100, Step: 1}
	cases := []struct {
		name string
		drag editor.KnobDrag
		y    float64
		want float64
	}{
		{"up increases", editor.StartKnobDrag(cutoff, 100, 9800), 90, 10500},
		{"no movement", editor.StartKnobDrag(cutoff, 100, 9800), 100, 9800},
		{"down decreases", editor.StartKnobDrag(percent, 100, 45), 120, 38},
		{"up", editor.StartKnobDrag(percent, 100, 45), 80, 52},
		{"clamps high", editor.StartKnobDrag(percent, 100, 45), -1000, 100},
		{"clamps low", editor.StartKnobDrag(percent, 100, 45), 1000, 0},
		{"sensitivity", editor.KnobDrag{Range: percent, StartY: 100, StartValue: 45, Sensitivity: 1}, 90, 55},
	}
	for _, tc := range cases {
		if got := tc.drag.Update(tc.y); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFloatBindingSnapsThroughModel(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	f := m.Float("fx.filter.cutoff")
	if !f.SetValue(1234.5) {
		t.Fatal("SetValue reported no change")
	}
	if f.Value() != 1230 {
		t.Errorf("value = %v, want 1230", f.Value())
	}
	if f.String() != "1,230 Hz" {
		t.Errorf("readout = %q", f.String())
	}
	if f.SetValue(1231) {
		t.Error("SetValue reported a change for a value that snaps to the current one")
	}
	f.Add(3)
	if f.Value() != 1260 {
		t.Errorf("value after Add(3) = %v, want 1260", f.Value())
	}
	if (editor.Float{}).SetValue(1) {
		t.Error("zero Float accepted a value")
	}
	if m.Float("osc.1.wave") != (editor.Float{}) {
		t.Error("Float for a choice control is not the zero Float")
	}
}
