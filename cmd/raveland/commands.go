package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/visual"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a79678"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2bb6ff"))
)

// newModel loads the preset catalog and applies presetIndex. Broken user
// presets are reported on stderr and skipped.
func newModel(cmd *cobra.Command) (*editor.Model, error) {
	presets, err := raveland.LoadAllPresets()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: user presets: %v\n", err)
	}
	m := editor.NewModel(nil, presets, nil)
	if err := m.ApplyPreset(presetIndex); err != nil {
		return nil, err
	}
	return m, nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	presetIndex = 0
	m, err := newModel(cmd)
	if err != nil {
		return err
	}
	p := m.Presets()
	if len(args) > 0 {
		p.Query().SetValue(args[0])
	}
	out := cmd.OutOrStdout()
	if p.NoMatches() {
		fmt.Fprintln(out, editor.NoMatchesText)
		return nil
	}
	for _, g := range p.Groups() {
		fmt.Fprintln(out, groupStyle.Render(g.Name))
		for _, it := range g.Items {
			fmt.Fprintf(out, "  %2d  %s  %s\n", it.Index, it.Name, tagStyle.Render(it.Tag))
		}
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	m, err := newModel(cmd)
	if err != nil {
		return err
	}
	v := m.Get(args[0])
	if !v.Defined() {
		return fmt.Errorf("%q: %w", args[0], raveland.ErrInvalidPath)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	m, err := newModel(cmd)
	if err != nil {
		return err
	}
	ev, err := parseEvent(m, args[0], args[1])
	if err != nil {
		return err
	}
	v, err := m.Update(ev)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

// parseEvent turns a command line value into the event its control would
// send.
func parseEvent(m *editor.Model, path, value string) (editor.Event, error) {
	c, ok := m.Control(path)
	if !ok {
		return nil, fmt.Errorf("%q has no control: %w", path, raveland.ErrInvalidPath)
	}
	switch c.Kind {
	case editor.Toggle:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return editor.ToggleChanged{Path: path, Value: b}, nil
	case editor.Select:
		return editor.ChoiceChanged{Path: path, Value: value}, nil
	default:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return editor.ContinuousChanged{Path: path, Value: n}, nil
	}
}

func runPaths(cmd *cobra.Command, args []string) error {
	m := editor.NewModel(nil, nil, nil)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("PATH", "KIND", "CONTROL")
	for _, path := range raveland.Paths() {
		c, ok := m.Control(path)
		if !ok {
			f, _ := raveland.LookupField(path)
			t.Row(path, f.Kind.String(), "-")
			continue
		}
		t.Row(path, string(c.Kind), describe(c))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func describe(c editor.Control) string {
	switch c.Kind {
	case editor.Select:
		return strings.Join(c.Options.List, " | ")
	case editor.Toggle:
		return c.Label
	}
	s := fmt.Sprintf("%s .. %s step %s", raveland.FormatNumber(c.Min), raveland.FormatNumber(c.Max), strconv.FormatFloat(c.Step, 'f', -1, 64))
	if c.Unit != "" {
		s += " " + c.Unit
	}
	return s
}

func runDump(cmd *cobra.Command, args []string) error {
	m, err := newModel(cmd)
	if err != nil {
		return err
	}
	p := m.Patch()
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(&p); err != nil {
		return err
	}
	return enc.Close()
}

func runStars(cmd *cobra.Command, args []string) error {
	if starCount < 0 {
		return fmt.Errorf("count must not be negative")
	}
	f := visual.NewStarfield(starSeed, starCount)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "    x       y       r       a       tw      colour")
	for _, s := range f.Stars {
		c := s.Color
		fmt.Fprintf(out, "%.4f  %.4f  %.4f  %.4f  %.4f  #%02x%02x%02x\n", s.X, s.Y, s.R, s.A, s.Twinkle, c.R, c.G, c.B)
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	if curveWidth < 2 || curveHeight < 2 {
		return fmt.Errorf("plot must be at least 2x2")
	}
	fmt.Fprint(cmd.OutOrStdout(), plotCurve(curveShape, curveAmount, curveWidth, curveHeight))
	return nil
}

// plotCurve rasterizes the modulation curve into w columns and h rows of
// text, with the caption on the last line.
func plotCurve(shape string, amount float64, w, h int) string {
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}
	for _, p := range visual.ModCurve(shape, amount, float64(w-1), float64(h-1)) {
		x := int(float64(p.X) + 0.5)
		y := int(float64(p.Y) + 0.5)
		grid[max(min(y, h-1), 0)][max(min(x, w-1), 0)] = '•'
	}
	var b strings.Builder
	for _, row := range grid {
		b.WriteString("│")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	b.WriteString("└" + strings.Repeat("─", w) + "\n")
	mod := raveland.DefaultPatch().Mod
	mod.Shape = shape
	mod.Amount = amount
	b.WriteString(visual.ModCaption(mod) + "\n")
	return b.String()
}
