package gioui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/stroke"
	"github.com/raveland/raveland/editor"
)

type (
	KnobStyle struct {
		Diameter    unit.Dp
		StrokeWidth unit.Dp
		Track       color.NRGBA
		Fill        color.NRGBA
		Indicator   struct {
			Color     color.NRGBA
			Width     unit.Dp
			InnerDiam unit.Dp
			OuterDiam unit.Dp
		}
		Value LabelStyle
		Title LabelStyle
	}

	KnobState struct {
		drag     gesture.Drag
		click    gesture.Click
		knobDrag editor.KnobDrag
	}

	KnobWidget struct {
		Theme       *Theme
		Value       editor.Float
		State       *KnobState
		Style       *KnobStyle
		Title       string
		Default     float64
		Sensitivity float64
	}
)

func Knob(th *Theme, v editor.Float, state *KnobState, title string, def float64) KnobWidget {
	return KnobWidget{
		Theme:   th,
		Value:   v,
		State:   state,
		Style:   &th.Knob,
		Title:   title,
		Default: def,
	}
}

// update handles the pointer. The drag grabs the pointer on press, so the
// knob keeps following it outside its bounds until release or cancel.
func (s *KnobState) update(gtx C, v editor.Float, def, sensitivity float64) {
	for {
		e, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		y := float64(e.Position.Y / gtx.Metric.PxPerDp)
		switch e.Kind {
		case pointer.Press:
			s.knobDrag = editor.StartKnobDrag(v.Range(), y, v.Value())
			s.knobDrag.Sensitivity = sensitivity
		case pointer.Drag:
			v.SetValue(s.knobDrag.Update(y))
		}
	}
	for {
		g, ok := s.click.Update(gtx.Source)
		if !ok {
			break
		}
		if g.Kind == gesture.KindClick && g.NumClicks > 1 {
			v.SetValue(def)
		}
	}
	for {
		e, ok := gtx.Event(pointer.Filter{
			Target:  s,
			Kinds:   pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		if ev, ok := e.(pointer.Event); ok && ev.Kind == pointer.Scroll && ev.Scroll.Y != 0 {
			delta := -int(math.Copysign(1, float64(ev.Scroll.Y)))
			v.Add(delta)
		}
	}
}

func (k KnobWidget) Layout(gtx C) D {
	k.State.update(gtx, k.Value, k.Default, k.Sensitivity)
	knob := func(gtx C) D {
		amount := float32(k.Value.Normalized())
		sw := gtx.Dp(k.Style.StrokeWidth)
		d := gtx.Dp(k.Style.Diameter)
		defer clip.Rect(image.Rectangle{Max: image.Pt(d, d)}).Push(gtx.Ops).Pop()
		event.Op(gtx.Ops, k.State)
		k.State.drag.Add(gtx.Ops)
		k.State.click.Add(gtx.Ops)
		k.strokeArc(gtx, k.Style.Track, sw, d, 0, 1)
		if amount > 0 {
			k.strokeArc(gtx, k.Style.Fill, sw, d, 0, amount)
		}
		k.strokeIndicator(gtx, amount)
		return D{Size: image.Pt(d, d)}
	}
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(knob),
		layout.Rigid(Label(k.Theme, &k.Style.Value, k.Value.String()).Layout),
		layout.Rigid(Label(k.Theme, &k.Style.Title, k.Title).Layout),
	)
}

// knobAngle maps an amount in [0,1] to the angle of the knob, measured
// clockwise from the bottom: the arc spans 270 degrees with the gap at the
// bottom.
func knobAngle(amount float32) float64 {
	return math.Pi/4 + float64(amount)*3*math.Pi/2
}

func (k KnobWidget) strokeArc(gtx C, color color.NRGBA, strokeWidth, diameter int, start, end float32) {
	rad := float32(diameter) / 2
	startAngle := knobAngle(start)
	deltaAngle := float32(knobAngle(end) - startAngle)
	center := f32.Point{X: rad, Y: rad}
	r2 := rad - float32(strokeWidth)/2
	startPt := f32.Point{X: rad - r2*float32(math.Sin(startAngle)), Y: rad + r2*float32(math.Cos(startAngle))}
	segments := [...]stroke.Segment{
		stroke.MoveTo(startPt),
		stroke.ArcTo(center, deltaAngle),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(strokeWidth),
		Cap:   stroke.RoundCap,
	}
	paint.FillShape(gtx.Ops, color, s.Op(gtx.Ops))
}

func (k KnobWidget) strokeIndicator(gtx C, amount float32) {
	innerRad := float32(gtx.Dp(k.Style.Indicator.InnerDiam)) / 2
	outerRad := float32(gtx.Dp(k.Style.Indicator.OuterDiam)) / 2
	center := float32(gtx.Dp(k.Style.Diameter)) / 2
	angle := knobAngle(amount)
	start := f32.Point{
		X: center - innerRad*float32(math.Sin(angle)),
		Y: center + innerRad*float32(math.Cos(angle)),
	}
	end := f32.Point{
		X: center - outerRad*float32(math.Sin(angle)),
		Y: center + outerRad*float32(math.Cos(angle)),
	}
	segments := [...]stroke.Segment{
		stroke.MoveTo(start),
		stroke.LineTo(end),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(gtx.Dp(k.Style.Indicator.Width)),
		Cap:   stroke.RoundCap,
	}
	paint.FillShape(gtx.Ops, k.Style.Indicator.Color, s.Op(gtx.Ops))
}
