package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/raveland/raveland/editor"
)

type (
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertStyle struct {
		Bg   color.NRGBA
		Text LabelStyle
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Margin  layout.Inset
		Inset   layout.Inset
	}

	AlertsWidget struct {
		Theme *Theme
		Model *editor.Alerts
		State *AlertsState
	}
)

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *editor.Alerts, th *Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m, State: st}
}

func (s *AlertStyles) style(p editor.AlertPriority) *AlertStyle {
	switch p {
	case editor.Warning:
		return &s.Warning
	case editor.Error:
		return &s.Error
	}
	return &s.Info
}

// Layout stacks the alerts from the bottom of the window up, oldest at the
// bottom. A fading alert slides down by its own height.
func (a *AlertsWidget) Layout(gtx C) D {
	now := gtx.Now
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.State.prevUpdate = now

	styles := &a.Theme.Alert
	bottom := gtx.Constraints.Max.Y - gtx.Dp(styles.Margin.Bottom)
	width := gtx.Constraints.Max.X - gtx.Dp(styles.Margin.Left) - gtx.Dp(styles.Margin.Right)
	if width <= 0 {
		return D{}
	}
	for _, alert := range a.Model.Iterate {
		style := styles.style(alert.Priority)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(image.Pt(width, 0))
		cgtx.Constraints.Max.Y = gtx.Constraints.Max.Y
		macro := op.Record(gtx.Ops)
		dims := layout.Background{}.Layout(cgtx,
			func(gtx C) D {
				rr := gtx.Dp(4)
				paint.FillShape(gtx.Ops, style.Bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
				return D{Size: gtx.Constraints.Min}
			},
			func(gtx C) D {
				return styles.Inset.Layout(gtx, Label(a.Theme, &style.Text, alert.Message).Layout)
			})
		call := macro.Stop()
		h := dims.Size.Y
		y := bottom - int(float64(h)*alert.FadeLevel)
		stack := op.Offset(image.Pt(gtx.Dp(styles.Margin.Left), y)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
		bottom -= int(float64(h+gtx.Dp(styles.Margin.Top)) * alert.FadeLevel)
	}
	return D{}
}
