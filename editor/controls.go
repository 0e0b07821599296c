package editor

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/visual"
	"gopkg.in/yaml.v3"
)

type (
	ControlKind string

	// Control describes one control on the front panel and the leaf of the
	// parameter tree it is bound to.
	Control struct {
		Path    string      `yaml:"path"`
		Kind    ControlKind `yaml:"kind"`
		Label   string      `yaml:"label"`
		Section string      `yaml:"-"`
		Min     float64     `yaml:"min"`
		Max     float64     `yaml:"max"`
		Step    float64     `yaml:"step"`
		Unit    string      `yaml:"unit"`
		Options Options     `yaml:"options"`

		field raveland.Field
	}

	// Options are the allowed values of a choice control: either a fixed list,
	// or the name of a catalog that is resolved when the controls are loaded.
	Options struct {
		List    []string
		Catalog string
	}

	Section struct {
		Title    string
		Controls []Control
	}

	controlGroup struct {
		Section  string    `yaml:"section"`
		Each     []string  `yaml:"each"`
		Controls []Control `yaml:"controls"`
	}
)

const (
	Toggle ControlKind = "toggle"
	Select ControlKind = "choice"
	Knob   ControlKind = "knob"
	Slider ControlKind = "slider"
)

// Continuous reports whether the control edits a number.
func (k ControlKind) Continuous() bool { return k == Knob || k == Slider }

//go:embed controls.yml
var controlsYml []byte

var optionCatalogs = map[string]func() []string{
	"stacks":    func() []string { return slices.Clone(raveland.LayerStacks) },
	"modshapes": func() []string { return slices.Clone(visual.ModShapes) },
}

func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&o.Catalog)
	case yaml.SequenceNode:
		return value.Decode(&o.List)
	}
	return fmt.Errorf("line %d: options must be a list or a catalog name", value.Line)
}

func (c Control) Range() raveland.Range {
	return raveland.Range{Min: c.Min, Max: c.Max, Step: c.Step}
}

func (c Control) Field() raveland.Field { return c.field }

// Readout formats v the way the control displays it.
func (c Control) Readout(v float64) string { return raveland.FormatReadout(v, c.Unit) }

// Angle maps v to the knob indicator angle in degrees, from -135 at the
// minimum to 135 at the maximum.
func (c Control) Angle(v float64) float64 {
	return -135 + c.Range().Normalize(v)*270
}

// DefaultControls returns the embedded front panel layout.
func DefaultControls() []Section {
	s, err := ParseControls(controlsYml)
	if err != nil {
		panic(fmt.Errorf("embedded controls: %w", err))
	}
	return s
}

// ParseControls reads a control layout and binds every control to its leaf
// in the parameter tree. A control with an unknown path, a path of the wrong
// kind, an empty range or no options is an error.
func ParseControls(data []byte) ([]Section, error) {
	var groups []controlGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, err
	}
	var ret []Section
	var errs []error
	for _, g := range groups {
		ids := g.Each
		if len(ids) == 0 {
			ids = []string{""}
		}
		for _, id := range ids {
			s := Section{Title: strings.ReplaceAll(g.Section, "{id}", id)}
			for _, c := range g.Controls {
				c.Path = strings.ReplaceAll(c.Path, "{id}", id)
				c.Section = s.Title
				if err := c.bind(); err != nil {
					errs = append(errs, err)
					continue
				}
				s.Controls = append(s.Controls, c)
			}
			ret = append(ret, s)
		}
	}
	return ret, errors.Join(errs...)
}

func (c *Control) bind() error {
	f, ok := raveland.LookupField(c.Path)
	if !ok {
		return fmt.Errorf("control %q: %w", c.Path, raveland.ErrInvalidPath)
	}
	var want raveland.ValueKind
	switch c.Kind {
	case Toggle:
		want = raveland.BoolKind
	case Select:
		want = raveland.StringKind
		if c.Options.Catalog != "" {
			catalog, ok := optionCatalogs[c.Options.Catalog]
			if !ok {
				return fmt.Errorf("control %q: unknown option catalog %q", c.Path, c.Options.Catalog)
			}
			c.Options.List = catalog()
		}
		if len(c.Options.List) == 0 {
			return fmt.Errorf("control %q: no options", c.Path)
		}
	case Knob, Slider:
		want = raveland.NumberKind
		if c.Max <= c.Min || c.Step <= 0 {
			return fmt.Errorf("control %q: bad range [%v,%v] step %v", c.Path, c.Min, c.Max, c.Step)
		}
	default:
		return fmt.Errorf("control %q: unknown kind %q", c.Path, c.Kind)
	}
	if f.Kind != want {
		return fmt.Errorf("control %q: %w: %s control on %s leaf", c.Path, raveland.ErrValueKind, c.Kind, f.Kind)
	}
	c.field = f
	return nil
}
