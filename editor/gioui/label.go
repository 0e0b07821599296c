package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	LabelStyle struct {
		Alignment  layout.Direction
		Color      color.NRGBA
		ShadeColor color.NRGBA
		Font       font.Font
		TextSize   unit.Sp
	}

	LabelWidget struct {
		Text   string
		Shaper *text.Shaper
		LabelStyle
	}
)

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Text: txt, Shaper: th.Material.Shaper, LabelStyle: *style}
}

func (l LabelWidget) Layout(gtx C) D {
	return l.Alignment.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		if l.ShadeColor.A > 0 {
			offs := op.Offset(image.Pt(1, 1)).Push(gtx.Ops)
			widget.Label{Alignment: text.Start, MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.TextSize, l.Text, colorMaterial(gtx.Ops, l.ShadeColor))
			offs.Pop()
		}
		dims := widget.Label{Alignment: text.Start, MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.TextSize, l.Text, colorMaterial(gtx.Ops, l.Color))
		return D{Size: dims.Size, Baseline: dims.Baseline}
	})
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return m.Stop()
}
