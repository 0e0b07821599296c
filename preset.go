package raveland

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yml
var presetFS embed.FS

type (
	// Preset is a named, read-only snapshot of a full Patch. Applying a preset
	// deep-copies its patch, so the catalog itself is never mutated.
	Preset struct {
		Name  string `yaml:"name"`
		Patch Patch  `yaml:"patch"`
		User  bool   `yaml:"-"`
	}

	Presets []Preset
)

var ErrPresetIndex = errors.New("preset index out of range")

// BuiltinPresets returns the presets shipped with the application, in
// catalog order.
func BuiltinPresets() Presets {
	p, err := LoadPresets(presetFS, "presets", false)
	if err != nil {
		panic(fmt.Errorf("builtin presets: %w", err))
	}
	return p
}

// LoadAllPresets returns the builtin presets followed by the user's own
// presets from the config directory. Broken user files are skipped; their
// errors are joined into err.
func LoadAllPresets() (Presets, error) {
	ret := BuiltinPresets()
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ret, nil
	}
	dir := filepath.Join(configDir, "raveland")
	if _, err := os.Stat(filepath.Join(dir, "presets")); err != nil {
		return ret, nil
	}
	user, err := LoadPresets(os.DirFS(dir), "presets", true)
	return append(ret, user...), err
}

// LoadPresets reads every .yml file under root in fsys. Files are visited in
// lexical order. A preset without a name is named after its file.
func LoadPresets(fsys fs.FS, root string, user bool) (Presets, error) {
	var ret Presets
	var errs []error
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		p, err := ParsePreset(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		if p.Name == "" {
			p.Name = strings.ReplaceAll(strings.TrimSuffix(filepath.Base(path), ".yml"), "_", " ")
		}
		p.User = user
		ret = append(ret, p)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return ret, errors.Join(errs...)
}

// ParsePreset decodes a preset from yaml. Unknown keys and broken effect
// chains are rejected.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, err
	}
	if !p.Patch.FX.Chain.Valid() {
		return Preset{}, fmt.Errorf("invalid effect chain %v", p.Patch.FX.Chain)
	}
	return p, nil
}

// Patch returns a deep copy of the patch of preset i.
func (p Presets) Patch(i int) (Patch, error) {
	if i < 0 || i >= len(p) {
		return Patch{}, fmt.Errorf("preset %d: %w", i, ErrPresetIndex)
	}
	return p[i].Patch.Copy(), nil
}

// Categorize derives the browser group and tag of a preset from the part of
// its name before the em dash.
func Categorize(name string) (group, tag string) {
	prefix, _, _ := strings.Cut(name, "—")
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	switch {
	case strings.HasPrefix(prefix, "init"):
		return "Init", "Base"
	case strings.HasPrefix(prefix, "rave"):
		return "Rave", "Hard Dance"
	case strings.HasPrefix(prefix, "trance"):
		return "Trance", "Pluck"
	}
	return "Other", "User"
}
