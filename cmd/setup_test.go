package cmd_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/cmd"
	"github.com/raveland/raveland/editor"
)

func TestNewModelAppliesPreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	model, err := cmd.NewModel(2)
	if err != nil {
		t.Fatal(err)
	}
	defer model.MIDI().Close()
	if model.PresetIndex() != 2 || !strings.HasPrefix(model.PresetName(), "Trance") {
		t.Errorf("preset = %d %q", model.PresetIndex(), model.PresetName())
	}
	if model.Broker() == nil {
		t.Error("model has no broker")
	}
}

func TestNewModelBadPreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := cmd.NewModel(99)
	if !errors.Is(err, raveland.ErrPresetIndex) {
		t.Errorf("err = %v, want ErrPresetIndex", err)
	}
}

func TestNewModelWarnsAboutUserPresets(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	presets := filepath.Join(dir, "raveland", "presets")
	if err := os.MkdirAll(presets, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(presets, "broken.yml"), []byte("name: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	model, err := cmd.NewModel(0)
	if err != nil {
		t.Fatal(err)
	}
	defer model.MIDI().Close()
	warned := false
	for _, a := range model.Alerts().Iterate {
		if a.Priority == editor.Warning && strings.HasPrefix(a.Message, "user presets:") {
			warned = true
		}
	}
	if !warned {
		t.Error("no warning about the broken user preset")
	}
}
