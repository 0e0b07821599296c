package gioui

import (
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/raveland/raveland/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type PresetBrowserState struct {
	search  widget.Editor
	list    widget.List
	items    map[int]*widget.Clickable
	closeBtn widget.Clickable
	visible  bool
}

func NewPresetBrowserState() *PresetBrowserState {
	s := &PresetBrowserState{items: map[int]*widget.Clickable{}}
	s.search.SingleLine = true
	s.search.Submit = true
	s.list.Axis = layout.Vertical
	return s
}

func (s *PresetBrowserState) item(i int) *widget.Clickable {
	c, ok := s.items[i]
	if !ok {
		c = new(widget.Clickable)
		s.items[i] = c
	}
	return c
}

// update feeds the search field and keys to the model.
func (s *PresetBrowserState) update(gtx C, m *editor.PresetModel) {
	if m.TakeFocusRequest() {
		s.search.SetText("")
		gtx.Execute(key.FocusCmd{Tag: &s.search})
	}
	for {
		e, ok := s.search.Update(gtx)
		if !ok {
			break
		}
		switch e.(type) {
		case widget.ChangeEvent:
			m.Query().SetValue(s.search.Text())
		case widget.SubmitEvent:
			m.HandleKey(editor.KeyEnter)
		}
	}
	for {
		e, ok := gtx.Event(key.Filter{Focus: &s.search, Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := e.(key.Event); ok && e.State == key.Press {
			m.HandleKey(editor.KeyEscape)
		}
	}
	for i, c := range s.items {
		for c.Clicked(gtx) {
			m.Select(i)
		}
	}
}

// PresetButton shows the name of the live preset. Clicking it opens the
// browser, or closes it when it is already open.
func PresetButton(gtx C, th *Theme, btn *widget.Clickable, m *editor.Model) D {
	for btn.Clicked(gtx) {
		m.Presets().Visible().Toggle()
	}
	b := material.Button(th.Material, btn, m.PresetName())
	b.Background = th.Choice.Bg
	b.Color = th.Choice.Fg
	return b.Layout(gtx)
}

func (s *PresetBrowserState) Layout(gtx C, th *Theme, m *editor.PresetModel) D {
	if !m.IsOpen() {
		return D{}
	}
	s.update(gtx, m)
	if !m.IsOpen() {
		return D{}
	}
	s.visible = true
	dims := layout.Inset{Top: unit.Dp(56)}.Layout(gtx, func(gtx C) D {
		return layout.N.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(420))
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			gtx.Constraints.Max.Y = min(gtx.Constraints.Max.Y, gtx.Dp(unit.Dp(480)))
			return Popup(th, &s.visible).Layout(gtx, func(gtx C) D {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
					return s.layoutContents(gtx, th, m)
				})
			})
		})
	})
	if !s.visible {
		m.Close().Do()
	}
	return dims
}

func (s *PresetBrowserState) layoutContents(gtx C, th *Theme, m *editor.PresetModel) D {
	type row struct {
		group string
		item  editor.PresetItem
	}
	var rows []row
	for _, g := range m.Groups() {
		rows = append(rows, row{group: g.Name})
		for _, it := range g.Items {
			rows = append(rows, row{item: it})
		}
	}
	searchRow := func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(20))
				return th.Icon(icons.ActionSearch).Layout(gtx, th.Palette.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, material.Editor(th.Material, &s.search, "Search presets").Layout),
			layout.Rigid(func(gtx C) D {
				return ActionButton(gtx, th, &s.closeBtn, icons.NavigationClose, "Close", m.Close())
			}),
		)
	}
	results := func(gtx C) D {
		if len(rows) == 0 {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, material.Body2(th.Material, editor.NoMatchesText).Layout)
		}
		return material.List(th.Material, &s.list).Layout(gtx, len(rows), func(gtx C, i int) D {
			r := rows[i]
			if r.group != "" {
				return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(2)}.Layout(gtx, Label(th, &th.Popup.Group, r.group).Layout)
			}
			return material.Clickable(gtx, s.item(r.item.Index), func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
					return layout.Flex{Spacing: layout.SpaceBetween}.Layout(gtx,
						layout.Rigid(material.Body2(th.Material, r.item.Name).Layout),
						layout.Rigid(Label(th, &th.Popup.Tag, r.item.Tag).Layout),
					)
				})
			})
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(searchRow),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Flexed(1, results),
	)
}
