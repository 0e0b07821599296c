package gioui

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gioui.org/unit"
	"github.com/raveland/raveland/visual"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window          WindowPreferences
		ScopeFPS        int
		MIDIInput       string `yaml:"midiinput"`
		KnobSensitivity float64
		CCMap           map[uint8]string `yaml:"ccmap"`
		YmlError        error            `yaml:"-"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

func readUserConfig(filename string) ([]byte, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(configDir, "raveland", filename))
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	bytes, err := readUserConfig(filename)
	if err != nil {
		return false, err
	}
	return true, yaml.UnmarshalStrict(bytes, target)
}

func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// ScopeInterval is the redraw interval of the scopes.
func (p Preferences) ScopeInterval() time.Duration {
	if p.ScopeFPS <= 0 {
		return visual.ScopeInterval
	}
	return time.Second / time.Duration(p.ScopeFPS)
}
