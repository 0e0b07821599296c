package editor

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/raveland/raveland"
)

type (
	// Event is a user edit reported by a front-end. The set of events is
	// closed: ToggleChanged, ChoiceChanged, ContinuousChanged, PresetSelected
	// and ChainReordered.
	Event interface {
		isEvent()
	}

	ToggleChanged struct {
		Path  string
		Value bool
	}

	ChoiceChanged struct {
		Path  string
		Value string
	}

	// ContinuousChanged is a knob or slider edit. Value is the raw value; the
	// model snaps and clamps it.
	ContinuousChanged struct {
		Path  string
		Value float64
	}

	PresetSelected struct {
		Index int
	}

	// ChainReordered swaps the effect at From with its neighbour at To.
	ChainReordered struct {
		From, To int
	}
)

func (ToggleChanged) isEvent()     {}
func (ChoiceChanged) isEvent()     {}
func (ContinuousChanged) isEvent() {}
func (PresetSelected) isEvent()    {}
func (ChainReordered) isEvent()    {}

var (
	ErrInvalidChoice   = errors.New("value is not one of the options")
	ErrNonAdjacentMove = errors.New("effects can only move by one slot")
	ErrControlKind     = errors.New("event does not match control kind")
	ErrNotANumber      = errors.New("value is not a number")
)

// Update applies an event to the patch and returns the value the patch holds
// afterwards. A rejected event leaves the patch untouched.
func (m *Model) Update(ev Event) (raveland.Value, error) {
	switch e := ev.(type) {
	case ToggleChanged:
		c, err := m.control(e.Path, Toggle)
		if err != nil {
			return raveland.Value{}, err
		}
		*c.field.Flag(&m.d.Patch) = e.Value
		return raveland.BoolValue(e.Value), nil
	case ChoiceChanged:
		c, err := m.control(e.Path, Select)
		if err != nil {
			return raveland.Value{}, err
		}
		if !slices.Contains(c.Options.List, e.Value) {
			return c.field.Get(&m.d.Patch), fmt.Errorf("%s = %q: %w", e.Path, e.Value, ErrInvalidChoice)
		}
		*c.field.Text(&m.d.Patch) = e.Value
		return raveland.StringValue(e.Value), nil
	case ContinuousChanged:
		c, err := m.control(e.Path, Knob, Slider)
		if err != nil {
			return raveland.Value{}, err
		}
		if math.IsNaN(e.Value) {
			return c.field.Get(&m.d.Patch), fmt.Errorf("%s: %w", e.Path, ErrNotANumber)
		}
		v := c.Range().Apply(e.Value)
		if c.Path == modAmountPath {
			m.cancelPulse()
		}
		*c.field.Number(&m.d.Patch) = v
		return raveland.NumberValue(v), nil
	case PresetSelected:
		if err := m.ApplyPreset(e.Index); err != nil {
			return raveland.Value{}, err
		}
		return raveland.StringValue(m.d.PresetName), nil
	case ChainReordered:
		chain := m.d.Patch.FX.Chain
		if e.To != e.From-1 && e.To != e.From+1 {
			return raveland.ChainValue(chain), fmt.Errorf("move %d to %d: %w", e.From, e.To, ErrNonAdjacentMove)
		}
		var ok bool
		if e.To < e.From {
			ok = chain.MoveUp(e.From)
		} else {
			ok = chain.MoveDown(e.From)
		}
		if !ok {
			return raveland.ChainValue(chain), fmt.Errorf("move %d to %d: %w", e.From, e.To, raveland.ErrChainIndex)
		}
		return raveland.ChainValue(chain), nil
	}
	return raveland.Value{}, fmt.Errorf("unknown event %T", ev)
}

func (m *Model) control(path string, kinds ...ControlKind) (Control, error) {
	c, ok := m.Control(path)
	if !ok {
		return Control{}, fmt.Errorf("control %q: %w", path, raveland.ErrInvalidPath)
	}
	if !slices.Contains(kinds, c.Kind) {
		return Control{}, fmt.Errorf("control %q is a %s: %w", path, c.Kind, ErrControlKind)
	}
	return c, nil
}
