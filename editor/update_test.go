package editor_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
)

func TestContinuousSnapsAndClamps(t *testing.T) {
	cases := []struct {
		path     string
		in, want float64
	}{
		{"fx.filter.cutoff", 9804.7, 9800},
		{"fx.filter.cutoff", 25000, 20000},
		{"fx.filter.cutoff", -5, 20},
		{"mod.amount", 45.4, 45},
		{"mod.amount", 45.5, 46},
		{"osc.1.fine", -250, -100},
		{"mod.rate", 0.7, 0.7},
		{"mod.rate", 0, 0.05},
		{"mod.amount", math.Inf(1), 100},
		{"fx.filter.cutoff", math.Inf(-1), 20},
	}
	for _, tc := range cases {
		m := editor.NewModel(editor.NewBroker(), nil, nil)
		v, err := m.Update(editor.ContinuousChanged{Path: tc.path, Value: tc.in})
		if err != nil {
			t.Fatalf("%s = %v: %v", tc.path, tc.in, err)
		}
		if n, _ := v.Number(); n != tc.want {
			t.Errorf("%s = %v: returned %v, want %v", tc.path, tc.in, n, tc.want)
		}
		if n, _ := m.Get(tc.path).Number(); n != tc.want {
			t.Errorf("%s = %v: stored %v, want %v", tc.path, tc.in, n, tc.want)
		}
	}
}

func TestContinuousRejectsNaN(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	before, _ := m.Get("mod.amount").Number()
	v, err := m.Update(editor.ContinuousChanged{Path: "mod.amount", Value: math.NaN()})
	if !errors.Is(err, editor.ErrNotANumber) {
		t.Fatalf("err = %v, want ErrNotANumber", err)
	}
	if n, _ := v.Number(); n != before {
		t.Errorf("returned %v, want %v", n, before)
	}
	if n, _ := m.Get("mod.amount").Number(); n != before {
		t.Errorf("stored %v, want %v", n, before)
	}
	if m.Float("mod.amount").SetValue(math.NaN()) {
		t.Error("binding accepted NaN")
	}
	for _, view := range m.Render() {
		if view.Path == "mod.amount" && (math.IsNaN(view.Angle) || strings.Contains(view.Display, "NaN")) {
			t.Errorf("render = %+v", view)
		}
	}
}

func TestToggleChanged(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	if _, err := m.Update(editor.ToggleChanged{Path: "layers.C.enabled", Value: true}); err != nil {
		t.Fatal(err)
	}
	if b, _ := m.Get("layers.C.enabled").Bool(); !b {
		t.Error("layer C still disabled")
	}
	if !m.Bool("layers.C.enabled").Value() {
		t.Error("Bool binding does not see the write")
	}
	m.Bool("layers.C.enabled").Toggle()
	if b, _ := m.Get("layers.C.enabled").Bool(); b {
		t.Error("toggle through the binding did not write")
	}
}

func TestChoiceRejectsUnknownOption(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	before := m.Patch()
	v, err := m.Update(editor.ChoiceChanged{Path: "osc.1.wave", Value: "wavetable"})
	if !errors.Is(err, editor.ErrInvalidChoice) {
		t.Fatalf("got %v, want ErrInvalidChoice", err)
	}
	if s, _ := v.Text(); s != "saw" {
		t.Errorf("returned %q, want the unchanged value", s)
	}
	if !reflect.DeepEqual(before, m.Patch()) {
		t.Error("rejected choice changed the patch")
	}
	if m.Choice("osc.1.wave").SetValue("wavetable") {
		t.Error("Choice accepted an unknown option")
	}
	if !m.Choice("osc.1.wave").SetValue("virus") {
		t.Error("Choice rejected a known option")
	}
	if s, _ := m.Get("osc.1.wave").Text(); s != "virus" {
		t.Errorf("wave = %q, want virus", s)
	}
}

func TestUpdateErrors(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	before := m.Patch()
	cases := []struct {
		ev  editor.Event
		err error
	}{
		{editor.ContinuousChanged{Path: "osc.5.level", Value: 1}, raveland.ErrInvalidPath},
		{editor.ToggleChanged{Path: "fx.nope.enabled", Value: true}, raveland.ErrInvalidPath},
		{editor.ToggleChanged{Path: "osc.1.level", Value: true}, editor.ErrControlKind},
		{editor.ContinuousChanged{Path: "osc.1.wave", Value: 1}, editor.ErrControlKind},
		{editor.PresetSelected{Index: 99}, raveland.ErrPresetIndex},
		{editor.PresetSelected{Index: -1}, raveland.ErrPresetIndex},
		{editor.ChainReordered{From: 0, To: 2}, editor.ErrNonAdjacentMove},
		{editor.ChainReordered{From: 1, To: 1}, editor.ErrNonAdjacentMove},
		{editor.ChainReordered{From: 0, To: -1}, raveland.ErrChainIndex},
		{editor.ChainReordered{From: 4, To: 5}, raveland.ErrChainIndex},
	}
	for _, tc := range cases {
		if _, err := m.Update(tc.ev); !errors.Is(err, tc.err) {
			t.Errorf("%#v: got %v, want %v", tc.ev, err, tc.err)
		}
	}
	if !reflect.DeepEqual(before, m.Patch()) {
		t.Error("rejected events changed the patch")
	}
}

func TestChainReordered(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	v, err := m.Update(editor.ChainReordered{From: 1, To: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := raveland.Chain{raveland.EffectChorus, raveland.EffectFilter, raveland.EffectDelay, raveland.EffectReverb, raveland.EffectDist}
	if c, _ := v.Chain(); !reflect.DeepEqual(c, want) {
		t.Errorf("returned %v, want %v", c, want)
	}
	if got := m.Chain().Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("chain %v, want %v", got, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	a, b := m.Render(), m.Render()
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders without writes differ")
	}
	m.Update(editor.ContinuousChanged{Path: "fx.filter.cutoff", Value: 1234})
	c := m.Render()
	if reflect.DeepEqual(a, c) {
		t.Error("render did not pick up a write")
	}
}

func TestRenderDisplay(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	want := map[string]editor.ControlView{
		"fx.filter.cutoff": {Path: "fx.filter.cutoff", Kind: editor.Knob, Value: raveland.NumberValue(9800), Display: "9,800 Hz", Angle: -2.8378378378378386},
		"fx.chorus.rate":   {Path: "fx.chorus.rate", Kind: editor.Knob, Value: raveland.NumberValue(0.35), Display: "0.35 Hz", Angle: -126.85929648241206},
		"layers.C.enabled": {Path: "layers.C.enabled", Kind: editor.Toggle, Value: raveland.BoolValue(false), Display: "off"},
		"osc.3.wave":       {Path: "osc.3.wave", Kind: editor.Select, Value: raveland.StringValue("pulse"), Display: "pulse"},
		"master.volume":    {Path: "master.volume", Kind: editor.Slider, Value: raveland.NumberValue(78), Display: "78 %"},
		"osc.2.fine":       {Path: "osc.2.fine", Kind: editor.Knob, Value: raveland.NumberValue(-7), Display: "-7 ct", Angle: -9.449999999999989},
		"fx.delay.enabled": {Path: "fx.delay.enabled", Kind: editor.Toggle, Value: raveland.BoolValue(true), Display: "on"},
	}
	found := 0
	for _, v := range m.Render() {
		w, ok := want[v.Path]
		if !ok {
			continue
		}
		found++
		if math.Abs(v.Angle-w.Angle) > 1e-9 {
			t.Errorf("render %s angle = %v, want %v", v.Path, v.Angle, w.Angle)
		}
		v.Angle = w.Angle
		if !reflect.DeepEqual(v, w) {
			t.Errorf("render %s = %+v, want %+v", v.Path, v, w)
		}
	}
	if found != len(want) {
		t.Errorf("found %d of %d controls", found, len(want))
	}
}
