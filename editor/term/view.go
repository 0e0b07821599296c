package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/version"
	"github.com/raveland/raveland/visual"
)

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(hex(visual.Pink))
	sectionStyle = lipgloss.NewStyle().Foreground(hex(visual.Ice))
	labelStyle   = lipgloss.NewStyle().Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ddd"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	cursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#333"))
	barStyle     = lipgloss.NewStyle().Foreground(hex(visual.Blue))
	groupStyle   = lipgloss.NewStyle().Foreground(hex(visual.Tan))
	meterStyle   = lipgloss.NewStyle().Foreground(hex(visual.Blue))
	alertStyles  = map[editor.AlertPriority]lipgloss.Style{
		editor.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#fff")).Background(lipgloss.Color("#32405f")).Padding(0, 1),
		editor.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#000")).Background(lipgloss.Color("#fbc02d")).Padding(0, 1),
		editor.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#000")).Background(lipgloss.Color("#cf6679")).Padding(0, 1),
	}
)

const (
	barWidth   = 16
	curveWidth = 48
	sparks     = "▁▂▃▄▅▆▇█"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var out strings.Builder
	out.WriteString(m.header())
	out.WriteString("\n\n")
	var body []string
	var focus int
	if m.ed.Presets().IsOpen() {
		body = m.browserLines()
	} else {
		body, focus = m.controlLines()
	}
	for _, l := range window(body, focus, max(m.height-8, 5)) {
		out.WriteString(l)
		out.WriteString("\n")
	}
	out.WriteString("\n")
	for _, a := range m.ed.Alerts().Iterate {
		out.WriteString(alertStyles[a.Priority].Render(a.Message))
		out.WriteString("\n")
	}
	out.WriteString(dimStyle.Render(m.help()))
	return out.String()
}

func (m Model) header() string {
	n := int(m.level*barWidth + 0.5)
	meter := meterStyle.Render(strings.Repeat("█", n)) + dimStyle.Render(strings.Repeat("·", barWidth-n))
	return titleStyle.Render(version.Title()) + "  " + valueStyle.Render(m.ed.PresetName()) + "  " + meter
}

func (m Model) help() string {
	if m.ed.Presets().IsOpen() {
		return "type to search  enter:first match  esc:close"
	}
	return "j/k:select  h/l:adjust  H/L:x10  d:default  /:presets  r:random  R:reset  s:shape  t:trigger  c,[,]:chain  q:quit"
}

// controlLines renders every section and returns the index of the line with
// the cursor.
func (m Model) controlLines() (lines []string, focus int) {
	views := m.ed.Render()
	i := 0
	for _, s := range m.ed.Sections() {
		lines = append(lines, sectionStyle.Render(s.Title))
		if len(s.Controls) > 0 && s.Controls[0].Path == "fx.filter.enabled" {
			lines = append(lines, "  "+m.chainLine())
		}
		if len(s.Controls) > 0 && strings.HasPrefix(s.Controls[0].Path, "mod.") {
			lines = append(lines, "  "+dimStyle.Render(m.ed.Mod().Caption()))
			lines = append(lines, "  "+barStyle.Render(m.curveLine()))
		}
		for _, c := range s.Controls {
			v := views[i]
			line := "  " + labelStyle.Render(c.Label) + " "
			if c.Kind.Continuous() {
				line += barStyle.Render(bar(c.Range().Normalize(number(v)))) + " "
			}
			line += valueStyle.Render(v.Display)
			if i == m.cursor {
				focus = len(lines)
				line = cursorStyle.Render("▸" + line[1:])
			}
			lines = append(lines, line)
			i++
		}
	}
	return lines, focus
}

func number(v editor.ControlView) float64 {
	n, _ := v.Value.Number()
	return n
}

func bar(amount float64) string {
	n := int(math.Round(amount * barWidth))
	return strings.Repeat("━", n) + strings.Repeat("─", barWidth-n)
}

func (m Model) chainLine() string {
	l := m.ed.Chain().List()
	var parts []string
	for i, e := range m.ed.Chain().Items() {
		if i == l.Selected() {
			parts = append(parts, groupStyle.Render("["+e.Label()+"]"))
		} else {
			parts = append(parts, e.Label())
		}
	}
	return strings.Join(parts, " › ")
}

// curveLine draws the modulation curve as a row of block characters.
func (m Model) curveLine() string {
	const h = 1.0
	pts := m.ed.Mod().Curve(curveWidth, h)
	levels := []rune(sparks)
	var b strings.Builder
	for _, p := range pts[:len(pts)-1] {
		v := (h - float64(p.Y)) / h
		i := int(math.Round(v * float64(len(levels)-1)))
		b.WriteRune(levels[max(min(i, len(levels)-1), 0)])
	}
	return b.String()
}

func (m Model) browserLines() []string {
	p := m.ed.Presets()
	lines := []string{"Search: " + p.Query().Value() + "▌", ""}
	if p.NoMatches() {
		return append(lines, dimStyle.Render(editor.NoMatchesText))
	}
	for _, g := range p.Groups() {
		lines = append(lines, groupStyle.Render(g.Name))
		for _, it := range g.Items {
			lines = append(lines, "  "+labelStyle.Width(36).Render(it.Name)+dimStyle.Render(it.Tag))
		}
	}
	return lines
}

// window returns at most height lines of lines, scrolled so that the focus
// line is visible.
func window(lines []string, focus, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := max(min(focus-height/2, len(lines)-height), 0)
	return lines[start : start+height]
}
