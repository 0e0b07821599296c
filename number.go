package raveland

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Range is an inclusive range of a continuous control, with the step values
// snap to.
type Range struct {
	Min, Max, Step float64
}

func Clamp(v, lo, hi float64) float64 { return math.Min(hi, math.Max(lo, v)) }

// RoundToStep rounds v to the nearest multiple of step, halves rounding up.
// A non-positive step leaves v unchanged.
func RoundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	inv := 1 / step
	return math.Floor(v*inv+0.5) / inv
}

// Apply snaps v to the step and then clamps it to the range. This is the only
// form in which a continuous value ever reaches a Patch. NaN maps to Min.
func (r Range) Apply(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return Clamp(RoundToStep(v, r.Step), r.Min, r.Max)
}

// Normalize maps v to [0,1] within the range.
func (r Range) Normalize(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return Clamp((v-r.Min)/(r.Max-r.Min), 0, 1)
}

func (r Range) Span() float64 { return r.Max - r.Min }

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber formats a value for a readout. Integral values of magnitude
// 1000 or more are grouped by thousands, small fractional values get two
// decimals and other fractional values one.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // no "-0"
	}
	integral := v == math.Trunc(v)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'f', -1, 64)
	case integral && math.Abs(v) >= 1000:
		return numberPrinter.Sprintf("%d", int64(v))
	case !integral && math.Abs(v) < 10:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case !integral:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// FormatReadout is FormatNumber followed by the unit, if any.
func FormatReadout(v float64, unit string) string {
	if unit == "" {
		return FormatNumber(v)
	}
	return FormatNumber(v) + " " + unit
}
