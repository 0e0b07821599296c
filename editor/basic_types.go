package editor

import (
	"math"
	"slices"

	"github.com/raveland/raveland"
)

// Enabler is an interface that defines a single Enabled() method, which is used
// by the UI to check if UI Action/Bool/Float etc. is enabled or not.
type Enabler interface {
	Enabled() bool
}

// Action

type (
	// Action describes a user action that can be performed on the model, which
	// can be initiated by calling the Do() method. It is usually initiated by a
	// button press or a key. Action advertises whether it is enabled, so the UI
	// can e.g. gray out the chain move buttons at the ends of the list. The
	// underlying Doer can optionally implement the Enabler interface; if it
	// does not, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}
)

func MakeAction(doer Doer) Action { return Action{doer: doer} }

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// Bool

type (
	Bool struct {
		value BoolValue
	}

	BoolValue interface {
		Value() bool
		SetValue(bool)
	}
)

func MakeBool(value BoolValue) Bool { return Bool{value: value} }
func (v Bool) Toggle()              { v.SetValue(!v.Value()) }

func (v Bool) SetValue(value bool) (changed bool) {
	if !v.Enabled() || v.Value() == value {
		return false
	}
	v.value.SetValue(value)
	return true
}

func (v Bool) Value() bool {
	if v.value == nil {
		return false
	}
	return v.value.Value()
}

func (v Bool) Enabled() bool {
	if v.value == nil {
		return false
	}
	e, ok := v.value.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

// Float

type (
	// Float represents a continuous control value, e.g. a knob or a slider.
	// Float guards that every value passed to the underlying FloatValue is
	// snapped to the step and clamped to the range, and that SetValue is not
	// called when the value is unchanged. The FloatValue can optionally
	// implement the FloatStringOfer interface to provide a readout with a unit.
	Float struct {
		value FloatValue
	}

	FloatValue interface {
		Value() float64
		SetValue(float64) (changed bool)
		Range() raveland.Range
	}

	FloatStringOfer interface {
		StringOf(value float64) string
	}
)

func MakeFloat(value FloatValue) Float { return Float{value} }

// Add moves the value by a number of steps.
func (v Float) Add(steps int) (changed bool) {
	return v.SetValue(v.Value() + float64(steps)*v.Range().Step)
}

func (v Float) SetValue(value float64) (changed bool) {
	if v.value == nil || math.IsNaN(value) {
		return false
	}
	value = v.Range().Apply(value)
	if value == v.Value() {
		return false
	}
	return v.value.SetValue(value)
}

func (v Float) Range() raveland.Range {
	if v.value == nil {
		return raveland.Range{}
	}
	return v.value.Range()
}

func (v Float) Value() float64 {
	if v.value == nil {
		return 0
	}
	return v.value.Value()
}

// Normalized returns the value mapped to [0,1] within the range.
func (v Float) Normalized() float64 { return v.Range().Normalize(v.Value()) }

func (v Float) String() string {
	return v.StringOf(v.Value())
}

func (v Float) StringOf(value float64) string {
	if s, ok := v.value.(FloatStringOfer); ok {
		return s.StringOf(value)
	}
	return raveland.FormatNumber(value)
}

// Choice

type (
	// Choice is a string value restricted to a list of options, e.g. a
	// waveform or a filter type.
	Choice struct {
		value ChoiceValue
	}

	ChoiceValue interface {
		Value() string
		SetValue(string) (changed bool)
		Options() []string
	}
)

func MakeChoice(value ChoiceValue) Choice { return Choice{value} }

func (v Choice) Value() string {
	if v.value == nil {
		return ""
	}
	return v.value.Value()
}

func (v Choice) Options() []string {
	if v.value == nil {
		return nil
	}
	return v.value.Options()
}

// SetValue sets the value if it is one of the options.
func (v Choice) SetValue(value string) (changed bool) {
	if v.value == nil || v.Value() == value || !slices.Contains(v.Options(), value) {
		return false
	}
	return v.value.SetValue(value)
}

// Index returns the position of the current value in the options, or -1.
func (v Choice) Index() int { return slices.Index(v.Options(), v.Value()) }

// Cycle moves the value delta positions through the options, wrapping
// around.
func (v Choice) Cycle(delta int) (changed bool) {
	opts := v.Options()
	if len(opts) == 0 {
		return false
	}
	i := max(v.Index(), 0) + delta
	i = ((i % len(opts)) + len(opts)) % len(opts)
	return v.SetValue(opts[i])
}

// String

type (
	String struct {
		value StringValue
	}

	StringValue interface {
		Value() string
		SetValue(string) (changed bool)
	}
)

func MakeString(value StringValue) String { return String{value: value} }

func (v String) SetValue(value string) (changed bool) {
	if v.value == nil || v.value.Value() == value {
		return false
	}
	return v.value.SetValue(value)
}

func (v String) Value() string {
	if v.value == nil {
		return ""
	}
	return v.value.Value()
}

// List

type (
	List struct {
		data ListData
	}

	ListData interface {
		Selected() int
		SetSelected(int)
		Count() int
	}

	// MutableListData is implemented by lists whose elements can be
	// reordered. Move moves the element at index by delta and reports whether
	// it did.
	MutableListData interface {
		Move(index, delta int) (ok bool)
	}
)

func MakeList(data ListData) List { return List{data} }

func (l List) Selected() int         { return max(min(l.data.Selected(), l.data.Count()-1), 0) }
func (l List) SetSelected(value int) { l.data.SetSelected(max(min(value, l.data.Count()-1), 0)) }
func (l List) Count() int            { return l.data.Count() }

// MoveElements moves the selected element in a list by delta, keeping it
// selected. The list must implement the MutableListData interface.
func (l List) MoveElements(delta int) bool {
	s, ok := l.data.(MutableListData)
	if !ok {
		return false
	}
	i := l.Selected()
	if delta == 0 || i+delta < 0 || i+delta >= l.Count() {
		return false
	}
	if !s.Move(i, delta) {
		return false
	}
	l.SetSelected(i + delta)
	return true
}

func (l List) Mutable() bool {
	_, ok := l.data.(MutableListData)
	return ok
}
