package editor_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
)

func TestEveryLeafHasAControl(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	for _, path := range raveland.Paths() {
		if path == "fx.chain" {
			continue // edited by the chain editor
		}
		if _, ok := m.Control(path); !ok {
			t.Errorf("no control for %q", path)
		}
	}
	if got, want := len(m.Controls()), len(raveland.Paths())-1; got != want {
		t.Errorf("got %d controls, want %d", got, want)
	}
}

func TestSectionsExpandEach(t *testing.T) {
	sections := editor.DefaultControls()
	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	for _, want := range []string{"Layer A", "Layer C", "Osc 1", "Osc 4", "Modulation", "Master"} {
		if !slices.Contains(titles, want) {
			t.Errorf("missing section %q in %v", want, titles)
		}
	}
	for _, s := range sections {
		for _, c := range s.Controls {
			if c.Section != s.Title {
				t.Errorf("control %q has section %q, want %q", c.Path, c.Section, s.Title)
			}
		}
	}
}

func TestStackOptionsComeFromCatalog(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	c, ok := m.Control("layers.B.stack")
	if !ok {
		t.Fatal("no stack control")
	}
	if !slices.Equal(c.Options.List, raveland.LayerStacks) {
		t.Errorf("stack options %v, want %v", c.Options.List, raveland.LayerStacks)
	}
}

func checkPatchInRange(t *testing.T, name string, m *editor.Model, p raveland.Patch) {
	t.Helper()
	for _, c := range m.Controls() {
		v := c.Field().Get(&p)
		switch c.Kind {
		case editor.Knob, editor.Slider:
			n, _ := v.Number()
			if n < c.Min || n > c.Max {
				t.Errorf("%s: %s = %v outside [%v,%v]", name, c.Path, n, c.Min, c.Max)
			}
			if got := c.Range().Apply(n); got != n {
				t.Errorf("%s: %s = %v not on step %v (snaps to %v)", name, c.Path, n, c.Step, got)
			}
		case editor.Select:
			s, _ := v.Text()
			if !slices.Contains(c.Options.List, s) {
				t.Errorf("%s: %s = %q not in %v", name, c.Path, s, c.Options.List)
			}
		}
	}
	if !p.FX.Chain.Valid() {
		t.Errorf("%s: invalid chain %v", name, p.FX.Chain)
	}
}

func TestDefaultsAndPresetsInRange(t *testing.T) {
	m := editor.NewModel(editor.NewBroker(), nil, nil)
	checkPatchInRange(t, "default", m, raveland.DefaultPatch())
	for i, p := range raveland.BuiltinPresets() {
		patch, err := raveland.BuiltinPresets().Patch(i)
		if err != nil {
			t.Fatal(err)
		}
		checkPatchInRange(t, p.Name, m, patch)
	}
}

func TestParseControlsErrors(t *testing.T) {
	cases := []struct {
		name string
		yml  string
		err  error
	}{
		{"unknown path", `[{section: X, controls: [{path: osc.9.level, kind: knob, min: 0, max: 1, step: 1}]}]`, raveland.ErrInvalidPath},
		{"wrong kind", `[{section: X, controls: [{path: osc.1.level, kind: toggle}]}]`, raveland.ErrValueKind},
		{"empty range", `[{section: X, controls: [{path: osc.1.level, kind: knob, min: 1, max: 1, step: 1}]}]`, nil},
		{"no options", `[{section: X, controls: [{path: osc.1.wave, kind: choice}]}]`, nil},
		{"unknown catalog", `[{section: X, controls: [{path: osc.1.wave, kind: choice, options: waves}]}]`, nil},
		{"unknown kind", `[{section: X, controls: [{path: osc.1.wave, kind: dial}]}]`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := editor.ParseControls([]byte(tc.yml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestKnobAngle(t *testing.T) {
	c := editor.Control{Kind: editor.Knob, Min: 0, Max: 100, Step: 1}
	for _, tc := range []struct{ v, angle float64 }{{0, -135}, {50, 0}, {100, 135}, {150, 135}} {
		if got := c.Angle(tc.v); got != tc.angle {
			t.Errorf("Angle(%v) = %v, want %v", tc.v, got, tc.angle)
		}
	}
}
