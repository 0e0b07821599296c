package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/stroke"
	"github.com/raveland/raveland/visual"
)

// CanvasState holds the datasets and frame throttles of the decorative
// displays. Throttled displays are drawn at the time of their last redraw, so
// a frame triggered by something else does not advance them.
type CanvasState struct {
	start     time.Time
	starfield *visual.Starfield
	scopes    map[visual.ScopeID]*visual.Scope
	meter     *visual.Meter

	bgThrottle    visual.Throttle
	scopeThrottle visual.Throttle
	bgTime        float64
	scopeTime     float64
	meterLevel    float64
}

func NewCanvasState(scopeInterval time.Duration) *CanvasState {
	s := &CanvasState{
		start:         time.Now(),
		starfield:     visual.NewStarfield(visual.StarfieldSeed, visual.StarCount),
		scopes:        map[visual.ScopeID]*visual.Scope{},
		meter:         visual.NewMeter(),
		bgThrottle:    visual.Throttle{Interval: visual.BackgroundInterval},
		scopeThrottle: visual.Throttle{Interval: scopeInterval},
	}
	for _, id := range visual.ScopeIDs() {
		s.scopes[id] = visual.NewScope(id)
	}
	return s
}

// advance updates the animation clocks for this frame and schedules the next
// frame for the earliest throttle.
func (s *CanvasState) advance(gtx C, volume float64) {
	now := gtx.Now
	if s.bgThrottle.Ready(now) {
		s.bgTime = now.Sub(s.start).Seconds()
	}
	if s.scopeThrottle.Ready(now) {
		s.scopeTime = now.Sub(s.start).Seconds()
	}
	s.meterLevel = s.meter.Update(now, volume)
	next := s.bgThrottle.Next()
	if n := s.scopeThrottle.Next(); n.Before(next) {
		next = n
	}
	gtx.Execute(op.InvalidateCmd{At: next})
}

func (s *CanvasState) layoutBackground(gtx C, th *Theme) D {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, th.Background, clip.Rect{Max: size}.Op())
	w, h, dpr := float64(size.X), float64(size.Y), float64(gtx.Metric.PxPerDp)
	for _, d := range s.starfield.Dots(s.bgTime, w, h, dpr) {
		fillDot(gtx, d)
	}
	for _, wave := range s.starfield.Waves {
		pts := wave.Points(s.bgTime, w, h, dpr)
		strokePolyline(gtx, pts, wave.Glow, float32(gtx.Dp(4)))
		strokePolyline(gtx, pts, wave.Color, float32(gtx.Dp(1)))
	}
	return D{Size: size}
}

func (s *CanvasState) layoutStackScope(gtx C, th *Theme, layer string) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(th.Scope.Height))
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, th.Scope.Bg, clip.Rect{Max: size}.Op())
	scope := s.scopes[visual.ScopeID{Kind: visual.StackScope, Layer: layer}]
	bars, spark := scope.StackBars(s.scopeTime, float64(size.X), float64(size.Y), float64(gtx.Metric.PxPerDp))
	for _, b := range bars {
		r := image.Rect(int(b.X), int(b.Y), int(b.X+b.W+0.5), int(b.Y+b.H+0.5))
		paint.FillShape(gtx.Ops, visual.WithAlpha(th.Scope.Line, 0.55), clip.Rect(r).Op())
	}
	strokePolyline(gtx, spark, th.Scope.Dot, float32(gtx.Dp(1)))
	return D{Size: size}
}

func (s *CanvasState) layoutOscScope(gtx C, th *Theme, osc int, wave string) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(th.Scope.Height))
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, th.Scope.Bg, clip.Rect{Max: size}.Op())
	mid := size.Y / 2
	paint.FillShape(gtx.Ops, th.Scope.Grid, clip.Rect(image.Rect(0, mid, size.X, mid+1)).Op())
	scope := s.scopes[visual.ScopeID{Kind: visual.OscScope, Osc: osc}]
	trace, dot := scope.Trace(wave, s.scopeTime, float64(size.X), float64(size.Y))
	strokePolyline(gtx, trace, th.Scope.Line, float32(gtx.Dp(2)))
	fillDot(gtx, visual.Dot{Center: dot, Radius: float32(gtx.Dp(3)), Color: th.Scope.Dot})
	return D{Size: size}
}

func layoutModPlot(gtx C, th *Theme, curve func(w, h float64) []visual.Point, caption string) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(th.Scope.Height))
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, th.Scope.Bg, clip.Rect{Max: size}.Op())
	xs, ys := visual.ModGrid(float64(size.X), float64(size.Y))
	for _, x := range xs {
		paint.FillShape(gtx.Ops, th.Scope.Grid, clip.Rect(image.Rect(int(x), 0, int(x)+1, size.Y)).Op())
	}
	for _, y := range ys {
		paint.FillShape(gtx.Ops, th.Scope.Grid, clip.Rect(image.Rect(0, int(y), size.X, int(y)+1)).Op())
	}
	strokePolyline(gtx, curve(float64(size.X), float64(size.Y)), th.Scope.Line, float32(gtx.Dp(2)))
	Label(th, &th.Knob.Title, caption).Layout(gtx)
	return D{Size: size}
}

func (s *CanvasState) layoutMeter(gtx C, th *Theme) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(th.Meter.Height))
	paint.FillShape(gtx.Ops, th.Meter.Bg, clip.Rect{Max: size}.Op())
	w := int(s.meterLevel*float64(size.X) + 0.5)
	paint.FillShape(gtx.Ops, th.Meter.Fill, clip.Rect{Max: image.Pt(w, size.Y)}.Op())
	return D{Size: size}
}

func strokePolyline(gtx C, pts []visual.Point, c color.NRGBA, width float32) {
	if len(pts) < 2 {
		return
	}
	segments := make([]stroke.Segment, 0, len(pts))
	segments = append(segments, stroke.MoveTo(f32.Pt(pts[0].X, pts[0].Y)))
	for _, p := range pts[1:] {
		segments = append(segments, stroke.LineTo(f32.Pt(p.X, p.Y)))
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments},
		Width: width,
		Cap:   stroke.RoundCap,
		Join:  stroke.RoundJoin,
	}
	paint.FillShape(gtx.Ops, c, s.Op(gtx.Ops))
}

func fillDot(gtx C, d visual.Dot) {
	r := d.Radius
	b := image.Rect(int(d.Center.X-r), int(d.Center.Y-r), int(d.Center.X+r+0.5), int(d.Center.Y+r+0.5))
	paint.FillShape(gtx.Ops, d.Color, clip.Ellipse(b).Op(gtx.Ops))
}
