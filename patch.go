package raveland

type (
	// Patch is the complete parameter tree of the synthesizer front panel. Its
	// shape is fixed: every field is always present and only the leaf values
	// change. Patches are replaced wholesale when a preset is applied.
	Patch struct {
		Layers Layers      `yaml:"layers"`
		Osc    Oscillators `yaml:"osc"`
		Mod    Mod         `yaml:"mod"`
		FX     FX          `yaml:"fx"`
		Mono   Mono        `yaml:"mono"`
		Master Master      `yaml:"master"`
	}

	// Layers holds the three sample-stack layers, addressed as A, B and C.
	Layers struct {
		A Layer `yaml:"A"`
		B Layer `yaml:"B"`
		C Layer `yaml:"C"`
	}

	Layer struct {
		Enabled   bool    `yaml:"enabled"`
		Stack     string  `yaml:"stack"`     // one of LayerStacks
		Tune      float64 `yaml:"tune"`      // semitones
		StartRand float64 `yaml:"startRand"` // sample start randomization, percent
		Attack    float64 `yaml:"attack"`    // ms
		Release   float64 `yaml:"release"`   // ms
	}

	// Oscillators holds the four oscillators, addressed as 1 to 4.
	Oscillators struct {
		O1 Oscillator `yaml:"1"`
		O2 Oscillator `yaml:"2"`
		O3 Oscillator `yaml:"3"`
		O4 Oscillator `yaml:"4"`
	}

	Oscillator struct {
		Enabled bool    `yaml:"enabled"`
		Wave    string  `yaml:"wave"`
		Voices  float64 `yaml:"voices"`
		Detune  float64 `yaml:"detune"`
		Semi    float64 `yaml:"semi"`
		Fine    float64 `yaml:"fine"`
		Level   float64 `yaml:"level"`
	}

	Mod struct {
		Mode   string  `yaml:"mode"` // lfo or env
		Rate   float64 `yaml:"rate"` // Hz
		Amount float64 `yaml:"amount"`
		Target string  `yaml:"target"`
		Shape  string  `yaml:"shape"`
	}

	FX struct {
		Chain  Chain  `yaml:"chain,flow"`
		Filter Filter `yaml:"filter"`
		Chorus Chorus `yaml:"chorus"`
		Delay  Delay  `yaml:"delay"`
		Reverb Reverb `yaml:"reverb"`
		Dist   Dist   `yaml:"dist"`
	}

	Filter struct {
		Enabled bool    `yaml:"enabled"`
		Type    string  `yaml:"type"`
		Cutoff  float64 `yaml:"cutoff"`
		Reso    float64 `yaml:"reso"`
	}

	Chorus struct {
		Enabled bool    `yaml:"enabled"`
		Rate    float64 `yaml:"rate"`
		Depth   float64 `yaml:"depth"`
		Mix     float64 `yaml:"mix"`
	}

	Delay struct {
		Enabled  bool    `yaml:"enabled"`
		Time     float64 `yaml:"time"`
		Feedback float64 `yaml:"fb"`
		Mix      float64 `yaml:"mix"`
	}

	Reverb struct {
		Enabled bool    `yaml:"enabled"`
		Mode    string  `yaml:"mode"`
		Size    float64 `yaml:"size"`
		Damp    float64 `yaml:"damp"`
		Mix     float64 `yaml:"mix"`
	}

	Dist struct {
		Enabled bool    `yaml:"enabled"`
		Type    string  `yaml:"type"`
		Drive   float64 `yaml:"drive"`
		Tone    float64 `yaml:"tone"`
		Mix     float64 `yaml:"mix"`
	}

	Mono struct {
		Enabled    bool    `yaml:"enabled"`
		Legato     bool    `yaml:"legato"`
		Portamento float64 `yaml:"portamento"`
		Curve      float64 `yaml:"curve"`
	}

	Master struct {
		Volume float64 `yaml:"volume"`
	}
)

// LayerStacks are the sample stacks a layer can play. The stack choice of
// every layer is populated from this list.
var LayerStacks = []string{
	"Hard Dance Stack 01",
	"Hard Dance Stack 02",
	"Rave Techno Stack 01",
	"Trance Stack 01",
	"Virus Lead Stack (mock)",
	"JP Lead Stack (mock)",
}

const (
	NumLayers      = 3
	NumOscillators = 4
)

// LayerNames are the path keys of the layers, in order.
var LayerNames = [NumLayers]string{"A", "B", "C"}

// Layer returns the layer with index i (0 = A), or nil if i is out of range.
func (l *Layers) Layer(i int) *Layer {
	switch i {
	case 0:
		return &l.A
	case 1:
		return &l.B
	case 2:
		return &l.C
	}
	return nil
}

// Osc returns the oscillator numbered n, counting from 1, or nil if there is
// no such oscillator.
func (o *Oscillators) Osc(n int) *Oscillator {
	switch n {
	case 1:
		return &o.O1
	case 2:
		return &o.O2
	case 3:
		return &o.O3
	case 4:
		return &o.O4
	}
	return nil
}

// Copy makes a deep copy of a patch.
func (p Patch) Copy() Patch {
	p.FX.Chain = p.FX.Chain.Copy()
	return p
}

// DefaultPatch returns the INIT patch every session starts from.
func DefaultPatch() Patch {
	return Patch{
		Layers: Layers{
			A: Layer{Enabled: true, Stack: LayerStacks[0], Tune: 0, StartRand: 35, Attack: 10, Release: 220},
			B: Layer{Enabled: true, Stack: LayerStacks[2], Tune: 0, StartRand: 45, Attack: 8, Release: 240},
			C: Layer{Enabled: false, Stack: LayerStacks[3], Tune: -12, StartRand: 55, Attack: 12, Release: 300},
		},
		Osc: Oscillators{
			O1: Oscillator{Enabled: true, Wave: "saw", Voices: 16, Detune: 55, Semi: 0, Fine: 0, Level: 85},
			O2: Oscillator{Enabled: true, Wave: "saw2", Voices: 16, Detune: 62, Semi: 0, Fine: -7, Level: 75},
			O3: Oscillator{Enabled: true, Wave: "pulse", Voices: 12, Detune: 38, Semi: 12, Fine: 3, Level: 62},
			O4: Oscillator{Enabled: false, Wave: "sine", Voices: 1, Detune: 0, Semi: -12, Fine: 0, Level: 35},
		},
		Mod: Mod{Mode: "lfo", Rate: 2, Amount: 45, Target: "filter.cutoff", Shape: "sine"},
		FX: FX{
			Chain:  DefaultChain(),
			Filter: Filter{Enabled: true, Type: "lp", Cutoff: 9800, Reso: 18},
			Chorus: Chorus{Enabled: true, Rate: 0.35, Depth: 50, Mix: 35},
			Delay:  Delay{Enabled: true, Time: 260, Feedback: 26, Mix: 18},
			Reverb: Reverb{Enabled: true, Mode: "hall", Size: 55, Damp: 28, Mix: 22},
			Dist:   Dist{Enabled: true, Type: "soft", Drive: 32, Tone: 8, Mix: 26},
		},
		Mono:   Mono{},
		Master: Master{Volume: 78},
	}
}
