package gioui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/raveland/raveland/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type ChainState struct {
	rows []chainRow
}

type chainRow struct {
	selectBtn, upBtn, downBtn widget.Clickable
}

// Layout lists the effects in processing order with buttons that move each
// one up or down a slot.
func (s *ChainState) Layout(gtx C, th *Theme, m *editor.ChainModel) D {
	items := m.Items()
	if len(s.rows) != len(items) {
		s.rows = make([]chainRow, len(items))
	}
	list := m.List()
	children := make([]layout.FlexChild, len(items))
	for i, e := range items {
		row := &s.rows[i]
		for row.selectBtn.Clicked(gtx) {
			list.SetSelected(i)
		}
		children[i] = layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					return material.Clickable(gtx, &row.selectBtn, func(gtx C) D {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						if i == list.Selected() {
							defer clip.Rect{Max: image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(32)))}.Push(gtx.Ops).Pop()
							paint.Fill(gtx.Ops, th.Popup.Selected)
						}
						return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
							l := material.Body2(th.Material, e.Label())
							l.Color = th.Palette.Fg
							return l.Layout(gtx)
						})
					})
				}),
				layout.Rigid(func(gtx C) D {
					return ActionButton(gtx, th, &row.upBtn, icons.NavigationArrowUpward, "Move up", m.MoveUp(i))
				}),
				layout.Rigid(func(gtx C) D {
					return ActionButton(gtx, th, &row.downBtn, icons.NavigationArrowDownward, "Move down", m.MoveDown(i))
				}),
			)
		})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}
