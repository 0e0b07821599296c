package editor

import (
	"math"

	"github.com/raveland/raveland"
)

// randomRanges are the continuous controls the randomize action touches and
// the interval each is drawn from. Integral intervals are drawn as whole
// numbers.
var randomRanges = []struct {
	path     string
	min, max float64
}{
	{"osc.1.voices", 8, 32},
	{"osc.2.voices", 8, 32},
	{"osc.3.voices", 4, 24},
	{"osc.1.detune", 15, 95},
	{"osc.2.detune", 15, 95},
	{"osc.3.detune", 0, 75},
	{"fx.reverb.mix", 0, 35},
	{"fx.delay.mix", 0, 35},
	{"fx.chorus.mix", 0, 65},
	{"fx.dist.drive", 0, 55},
	{"layers.A.startRand", 0, 90},
	{"layers.B.startRand", 0, 90},
	{"mod.amount", 0, 80},
}

const (
	randomRateMin  = 0.1
	randomRateMax  = 8.0
	randomRateStep = 0.05
)

// Randomize scatters a handful of oscillator, effect and modulation values.
// The patch no longer matches any preset afterwards.
func (m *Model) Randomize() Action { return MakeAction((*randomizePatch)(m)) }

type randomizePatch Model

func (m *randomizePatch) Do() {
	model := (*Model)(m)
	model.cancelPulse()
	uniform := func(lo, hi float64) float64 { return lo + m.rand.Float64()*(hi-lo) }
	for _, r := range randomRanges {
		v := math.Floor(uniform(r.min, r.max) + 0.5)
		model.Update(ContinuousChanged{Path: r.path, Value: v})
	}
	rate := raveland.RoundToStep(uniform(randomRateMin, randomRateMax), randomRateStep)
	model.Update(ContinuousChanged{Path: "mod.rate", Value: rate})
	m.d.PresetIndex = -1
	m.d.PresetName = RandomizedPresetName
}
