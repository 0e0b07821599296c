package gioui_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gioui.org/unit"
	"github.com/raveland/raveland/editor/gioui"
	"github.com/raveland/raveland/visual"
)

// userConfig points the user config directory to a fresh temporary directory
// and writes the given files under raveland/.
func userConfig(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "raveland"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, "raveland", name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDefaultTheme(t *testing.T) {
	userConfig(t, nil)
	th, err := gioui.NewTheme()
	if err != nil {
		t.Fatalf("default theme: %v", err)
	}
	if th.Material == nil || th.Material.Shaper == nil {
		t.Fatal("material theme not initialized")
	}
	if th.Knob.Diameter <= 0 || th.Scope.Height <= 0 {
		t.Errorf("sizes missing: knob %v, scope %v", th.Knob.Diameter, th.Scope.Height)
	}
	if th.Alert.Error.Bg.A != 255 {
		t.Errorf("error alert background is not opaque: %v", th.Alert.Error.Bg)
	}
	if th.Material.Palette != th.Palette {
		t.Error("material palette differs from the theme palette")
	}
}

func TestUserTheme(t *testing.T) {
	userConfig(t, map[string]string{"theme.yml": "knob: {diameter: 60}\n"})
	th, err := gioui.NewTheme()
	if err != nil {
		t.Fatalf("user theme: %v", err)
	}
	if th.Knob.Diameter != 60 {
		t.Errorf("diameter = %v, want 60", th.Knob.Diameter)
	}
	if th.Knob.StrokeWidth == 0 {
		t.Error("override cleared the other knob settings")
	}
}

func TestBrokenUserTheme(t *testing.T) {
	userConfig(t, map[string]string{"theme.yml": "knob: {diamter: 60}\n"})
	th, err := gioui.NewTheme()
	if err == nil {
		t.Error("unknown key accepted")
	}
	if th == nil || th.Knob.Diameter <= 0 {
		t.Error("no usable theme returned with the warning")
	}
}

func TestPreferences(t *testing.T) {
	userConfig(t, nil)
	p := gioui.MakePreferences()
	if p.YmlError != nil {
		t.Fatalf("default preferences: %v", p.YmlError)
	}
	if w, h := p.WindowSize(); w <= 0 || h <= 0 {
		t.Errorf("window size = %v×%v", w, h)
	}
	if got := p.ScopeInterval(); got != time.Second/30 {
		t.Errorf("scope interval = %v", got)
	}
	if p.KnobSensitivity != 0.35 {
		t.Errorf("knob sensitivity = %v", p.KnobSensitivity)
	}
}

func TestUserPreferences(t *testing.T) {
	userConfig(t, map[string]string{"preferences.yml": "scopefps: 50\nwindow: {width: 800, height: 600}\nccmap: {74: fx.filter.reso}\n"})
	p := gioui.MakePreferences()
	if p.YmlError != nil {
		t.Fatalf("user preferences: %v", p.YmlError)
	}
	if got := p.ScopeInterval(); got != 20*time.Millisecond {
		t.Errorf("scope interval = %v, want 20ms", got)
	}
	if w, h := p.WindowSize(); w != unit.Dp(800) || h != unit.Dp(600) {
		t.Errorf("window size = %v×%v", w, h)
	}
	if p.CCMap[74] != "fx.filter.reso" {
		t.Errorf("cc map = %v", p.CCMap)
	}
	if got := (gioui.Preferences{}).ScopeInterval(); got != visual.ScopeInterval {
		t.Errorf("unset scope fps: %v", got)
	}
}

func TestBrokenUserPreferences(t *testing.T) {
	userConfig(t, map[string]string{"preferences.yml": "scopefsp: 50\n"})
	p := gioui.MakePreferences()
	if p.YmlError == nil {
		t.Error("unknown key accepted")
	}
}
