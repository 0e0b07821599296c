package gioui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/raveland/raveland/editor"
)

type (
	ControlState struct {
		knob   KnobState
		slider widget.Float
		toggle widget.Bool
		choice ChoiceState
	}

	ChoiceState struct {
		button  widget.Clickable
		open    bool
		options []widget.Clickable
	}
)

// Slider lays out a horizontal slider. The widget position is reset from the
// model every frame, so it always shows the stored value.
func Slider(gtx C, th *Theme, v editor.Float, state *widget.Float, title string) D {
	if state.Update(gtx) {
		r := v.Range()
		v.SetValue(r.Min + float64(state.Value)*r.Span())
	}
	state.Value = float32(v.Normalized())
	s := material.Slider(th.Material, state)
	s.Color = th.Slider.Fill
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(140))
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			return s.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Spacing: layout.SpaceBetween}.Layout(gtx,
				layout.Rigid(Label(th, &th.Knob.Title, title).Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(Label(th, &th.Knob.Value, v.String()).Layout),
			)
		}),
	)
}

func Toggle(gtx C, th *Theme, v editor.Bool, state *widget.Bool, title string) D {
	if state.Update(gtx) {
		v.SetValue(state.Value)
	}
	state.Value = v.Value()
	sw := material.Switch(th.Material, state, title)
	sw.Color.Enabled = th.Toggle.On
	sw.Color.Disabled = th.Toggle.Off
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(sw.Layout),
		layout.Rigid(Label(th, &th.Knob.Title, title).Layout),
	)
}

// Choice lays out a button showing the current option. Clicking it opens a
// dropdown of all options; clicking outside closes it.
func Choice(gtx C, th *Theme, v editor.Choice, state *ChoiceState, title string) D {
	options := v.Options()
	if len(state.options) != len(options) {
		state.options = make([]widget.Clickable, len(options))
	}
	for state.button.Clicked(gtx) {
		state.open = !state.open
	}
	for i := range state.options {
		for state.options[i].Clicked(gtx) {
			v.SetValue(options[i])
			state.open = false
		}
	}
	button := func(gtx C) D {
		return material.Clickable(gtx, &state.button, func(gtx C) D {
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx C) D {
					rr := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(4))
					paint.FillShape(gtx.Ops, th.Choice.Bg, rr.Op(gtx.Ops))
					return D{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx C) D {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
						l := material.Body2(th.Material, v.Value())
						l.Color = th.Choice.Fg
						l.MaxLines = 1
						return l.Layout(gtx)
					})
				}),
			)
		})
	}
	dropdown := func(gtx C) D {
		dims := button(gtx)
		gtx.Constraints.Min = image.Point{}
		offs := op.Offset(image.Pt(0, dims.Size.Y)).Push(gtx.Ops)
		Popup(th, &state.open).Layout(gtx, func(gtx C) D {
			children := make([]layout.FlexChild, len(options))
			for i, o := range options {
				children[i] = layout.Rigid(func(gtx C) D {
					return material.Clickable(gtx, &state.options[i], func(gtx C) D {
						return layout.UniformInset(unit.Dp(6)).Layout(gtx, material.Body2(th.Material, o).Layout)
					})
				})
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
		})
		offs.Pop()
		return dims
	}
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(dropdown),
		layout.Rigid(Label(th, &th.Knob.Title, title).Layout),
	)
}
