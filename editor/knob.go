package editor

import "github.com/raveland/raveland"

// KnobSensitivity is the share of a knob's range, in percent, that one pixel
// of vertical drag covers.
const KnobSensitivity = 0.35

// KnobDrag tracks a vertical drag on a knob. Dragging up increases the value.
type KnobDrag struct {
	Range       raveland.Range
	StartY      float64
	StartValue  float64
	Sensitivity float64 // zero means KnobSensitivity
}

func StartKnobDrag(r raveland.Range, y, value float64) KnobDrag {
	return KnobDrag{Range: r, StartY: y, StartValue: value}
}

// Update returns the value for the pointer at y, snapped and clamped.
func (d KnobDrag) Update(y float64) float64 {
	s := d.Sensitivity
	if s == 0 {
		s = KnobSensitivity
	}
	delta := (d.StartY - y) * s
	return d.Range.Apply(d.StartValue + delta/100*d.Range.Span())
}
