package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type PopupStyle struct {
	Visible      *bool
	SurfaceColor color.NRGBA
	ShadowColor  color.NRGBA
	Shadow       unit.Dp
	Radius       unit.Dp
}

func Popup(th *Theme, visible *bool) PopupStyle {
	return PopupStyle{
		Visible:      visible,
		SurfaceColor: th.Popup.Surface,
		ShadowColor:  th.Popup.Shadow,
		Shadow:       unit.Dp(2),
		Radius:       unit.Dp(6),
	}
}

// Layout draws contents on top of everything else. A press anywhere outside
// the popup sets *Visible to false.
func (s PopupStyle) Layout(gtx C, contents layout.Widget) D {
	if !*s.Visible {
		return D{}
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s.Visible,
			Kinds:  pointer.Press,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			*s.Visible = false
		}
	}
	bg := func(gtx C) D {
		r := gtx.Dp(s.Radius)
		rrect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, r)
		shadow := rrect
		sh := gtx.Dp(s.Shadow)
		shadow.Rect.Min = shadow.Rect.Min.Sub(image.Pt(sh, sh))
		shadow.Rect.Max = shadow.Rect.Max.Add(image.Pt(sh, sh))
		paint.FillShape(gtx.Ops, s.ShadowColor, shadow.Op(gtx.Ops))
		paint.FillShape(gtx.Ops, s.SurfaceColor, rrect.Op(gtx.Ops))
		area := clip.Rect(image.Rect(-1e6, -1e6, 1e6, 1e6)).Push(gtx.Ops)
		event.Op(gtx.Ops, s.Visible)
		area.Pop()
		area = clip.Rect(shadow.Rect).Push(gtx.Ops)
		event.Op(gtx.Ops, &popupTag)
		area.Pop()
		return D{Size: gtx.Constraints.Min}
	}
	macro := op.Record(gtx.Ops)
	dims := layout.Stack{}.Layout(gtx,
		layout.Expanded(bg),
		layout.Stacked(contents),
	)
	op.Defer(gtx.Ops, macro.Stop())
	return dims
}

// popupTag swallows presses inside a popup so they do not close it.
var popupTag bool
