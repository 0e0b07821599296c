package editor

import (
	"time"

	"github.com/raveland/raveland"
	"github.com/raveland/raveland/visual"
)

type (
	ModModel Model

	// pulseState tracks a trigger pulse on the modulation amount. base is
	// the amount before the first trigger; retriggers keep it, so repeated
	// pulses never drift.
	pulseState struct {
		active   bool
		base     float64
		gen      int
		deadline time.Time
	}

	pulseRevert struct {
		gen int
	}
)

const (
	PulseBoost    = 22
	PulseDuration = 180 * time.Millisecond
	modAmountPath = "mod.amount"
)

func (m *Model) Mod() *ModModel { return (*ModModel)(m) }

func (m *ModModel) Shape() Choice   { return (*Model)(m).Choice("mod.shape") }
func (m *ModModel) Amount() Float   { return (*Model)(m).Float(modAmountPath) }
func (m *ModModel) Rate() Float     { return (*Model)(m).Float("mod.rate") }
func (m *ModModel) Pulsing() bool   { return m.pulse.active }
func (m *ModModel) Caption() string { return visual.ModCaption(m.d.Patch.Mod) }

// Curve returns the modulation curve of the live patch on a w×h surface.
func (m *ModModel) Curve(w, h float64) []visual.Point {
	return visual.ModCurve(m.d.Patch.Mod.Shape, m.d.Patch.Mod.Amount, w, h)
}

// CycleShape advances the modulation shape to the next one in
// visual.ModShapes.
func (m *ModModel) CycleShape() Action { return MakeAction((*cycleShape)(m)) }

type cycleShape ModModel

func (m *cycleShape) Do() {
	next := visual.NextModShape(m.d.Patch.Mod.Shape)
	(*Model)(m).Update(ChoiceChanged{Path: "mod.shape", Value: next})
}

// Trigger bumps the modulation amount by PulseBoost for PulseDuration.
func (m *ModModel) Trigger() Action { return MakeAction((*triggerPulse)(m)) }

type triggerPulse ModModel

func (m *triggerPulse) Do() {
	p := &m.pulse
	if !p.active {
		p.base = m.d.Patch.Mod.Amount
	}
	p.active = true
	p.gen++
	p.deadline = m.now().Add(PulseDuration)
	m.d.Patch.Mod.Amount = raveland.Clamp(p.base+PulseBoost, 0, 100)
	if b := m.broker; b != nil {
		msg := MsgToModel{Data: pulseRevert{gen: p.gen}}
		time.AfterFunc(PulseDuration, func() { TrySend(b.ToModel, msg) })
	}
}

// Tick reverts a pulse whose deadline has passed. Front-ends without a
// broker call it every frame; it reports whether the patch changed.
func (m *ModModel) Tick(now time.Time) bool {
	if !m.pulse.active || now.Before(m.pulse.deadline) {
		return false
	}
	(*Model)(m).revertPulse(m.pulse.gen)
	return true
}

func (m *Model) revertPulse(gen int) {
	if !m.pulse.active || gen != m.pulse.gen {
		return // stale timer or pulse already cancelled
	}
	m.d.Patch.Mod.Amount = m.pulse.base
	m.pulse.active = false
}

// cancelPulse forgets an active pulse without restoring the amount, so a
// pending revert does not overwrite a newer edit.
func (m *Model) cancelPulse() {
	m.pulse.active = false
}
