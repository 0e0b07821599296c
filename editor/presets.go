package editor

import (
	"strings"

	"github.com/raveland/raveland"
)

type (
	PresetModel Model

	browserState struct {
		open         bool
		query        string
		focusPending bool
	}

	// PresetGroup is one heading of the preset browser and the presets
	// listed under it.
	PresetGroup struct {
		Name  string
		Items []PresetItem
	}

	PresetItem struct {
		Index int // index into the catalog, for Select
		Name  string
		Tag   string
		User  bool
	}
)

// NoMatchesText is shown in place of the groups when the search matches
// nothing.
const NoMatchesText = "No presets match your search."

func (m *Model) Presets() *PresetModel { return (*PresetModel)(m) }

// ApplyPreset replaces the live patch with a deep copy of preset i.
func (m *Model) ApplyPreset(i int) error {
	p, err := m.presets.Patch(i)
	if err != nil {
		return err
	}
	m.cancelPulse()
	m.d = modelData{Patch: p, PresetIndex: i, PresetName: m.presets[i].Name}
	m.chainSelected = 0
	return nil
}

func (m *PresetModel) Count() int { return len(m.presets) }

func (m *PresetModel) Name(i int) string {
	if i < 0 || i >= len(m.presets) {
		return ""
	}
	return m.presets[i].Name
}

// Open

func (m *PresetModel) Open() Action { return MakeAction((*openBrowser)(m)) }

type openBrowser PresetModel

func (m *openBrowser) Do() {
	m.browser = browserState{open: true, focusPending: true}
}

// Close

func (m *PresetModel) Close() Action { return MakeAction((*closeBrowser)(m)) }

type closeBrowser PresetModel

func (m *closeBrowser) Enabled() bool { return m.browser.open }

func (m *closeBrowser) Do() {
	m.browser.open = false
	m.browser.focusPending = false
}

// Visible is the open state of the browser as a Bool, for the preset button.
// Opening it this way resets the search like Open does.
func (m *PresetModel) Visible() Bool { return MakeBool((*browserVisible)(m)) }

type browserVisible PresetModel

func (m *browserVisible) Value() bool { return m.browser.open }

func (m *browserVisible) SetValue(value bool) {
	if value {
		(*PresetModel)(m).Open().Do()
	} else {
		(*PresetModel)(m).Close().Do()
	}
}

func (m *PresetModel) IsOpen() bool { return m.browser.open }

// Query is the search string of the browser.
func (m *PresetModel) Query() String { return MakeString((*browserQuery)(m)) }

type browserQuery PresetModel

func (m *browserQuery) Value() string { return m.browser.query }

func (m *browserQuery) SetValue(value string) bool {
	m.browser.query = value
	return true
}

// TakeFocusRequest reports whether the search field should grab the keyboard
// focus. The request is cleared by reading it.
func (m *PresetModel) TakeFocusRequest() bool {
	ret := m.browser.focusPending
	m.browser.focusPending = false
	return ret
}

// Groups lists the presets matching the query, grouped by category. Groups
// appear in the order their first preset appears in the catalog.
func (m *PresetModel) Groups() []PresetGroup {
	q := strings.ToLower(strings.TrimSpace(m.browser.query))
	var ret []PresetGroup
	index := map[string]int{}
	for i, p := range m.presets {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		group, tag := raveland.Categorize(p.Name)
		g, ok := index[group]
		if !ok {
			g = len(ret)
			index[group] = g
			ret = append(ret, PresetGroup{Name: group})
		}
		ret[g].Items = append(ret[g].Items, PresetItem{Index: i, Name: p.Name, Tag: tag, User: p.User})
	}
	return ret
}

func (m *PresetModel) NoMatches() bool { return len(m.Groups()) == 0 }

// Select applies preset i and closes the browser.
func (m *PresetModel) Select(i int) error {
	if _, err := (*Model)(m).Update(PresetSelected{Index: i}); err != nil {
		return err
	}
	m.Close().Do()
	return nil
}

// BrowserKey is a key the preset browser reacts to. Front-ends translate
// their own key events to these.
type BrowserKey int

const (
	KeyEscape BrowserKey = iota
	KeyEnter
)

// HandleKey handles a key pressed while the browser is open and reports
// whether it was consumed. Escape closes the browser; Enter selects the
// first match.
func (m *PresetModel) HandleKey(k BrowserKey) bool {
	if !m.browser.open {
		return false
	}
	switch k {
	case KeyEscape:
		m.Close().Do()
		return true
	case KeyEnter:
		groups := m.Groups()
		if len(groups) == 0 {
			return false
		}
		return m.Select(groups[0].Items[0].Index) == nil
	}
	return false
}
