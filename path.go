package raveland

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the type of a leaf in the parameter tree.
type ValueKind int

const (
	Undefined ValueKind = iota
	BoolKind
	NumberKind
	StringKind
	ChainKind
)

func (k ValueKind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ChainKind:
		return "chain"
	}
	return "undefined"
}

// Value is a tagged leaf value read from or written to a Patch by path. The
// zero Value is the undefined sentinel returned for absent paths.
type Value struct {
	kind  ValueKind
	b     bool
	n     float64
	s     string
	chain Chain
}

func BoolValue(b bool) Value            { return Value{kind: BoolKind, b: b} }
func NumberValue(n float64) Value       { return Value{kind: NumberKind, n: n} }
func StringValue(s string) Value        { return Value{kind: StringKind, s: s} }
func ChainValue(c Chain) Value          { return Value{kind: ChainKind, chain: c.Copy()} }
func (v Value) Kind() ValueKind         { return v.kind }
func (v Value) Defined() bool           { return v.kind != Undefined }
func (v Value) Bool() (bool, bool)      { return v.b, v.kind == BoolKind }
func (v Value) Number() (float64, bool) { return v.n, v.kind == NumberKind }
func (v Value) Text() (string, bool)    { return v.s, v.kind == StringKind }
func (v Value) Chain() (Chain, bool)    { return v.chain.Copy(), v.kind == ChainKind }

func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case StringKind:
		return v.s
	case ChainKind:
		parts := make([]string, len(v.chain))
		for i, e := range v.chain {
			parts[i] = string(e)
		}
		return strings.Join(parts, ",")
	}
	return "undefined"
}

var (
	ErrInvalidPath = errors.New("invalid parameter path")
	ErrValueKind   = errors.New("value kind does not match parameter")
)

// Field is a typed accessor to one leaf of a Patch. Fields are resolved once
// from their dot-separated path; after that, code works with typed pointers
// instead of strings.
type Field struct {
	Path string
	Kind ValueKind

	num   func(*Patch) *float64
	flag  func(*Patch) *bool
	text  func(*Patch) *string
	chain func(*Patch) *Chain
}

// Number returns a pointer to the numeric leaf in p, or nil if the field is
// not numeric.
func (f Field) Number(p *Patch) *float64 {
	if f.num == nil {
		return nil
	}
	return f.num(p)
}

func (f Field) Flag(p *Patch) *bool {
	if f.flag == nil {
		return nil
	}
	return f.flag(p)
}

func (f Field) Text(p *Patch) *string {
	if f.text == nil {
		return nil
	}
	return f.text(p)
}

func (f Field) Get(p *Patch) Value {
	switch f.Kind {
	case BoolKind:
		return BoolValue(*f.flag(p))
	case NumberKind:
		return NumberValue(*f.num(p))
	case StringKind:
		return StringValue(*f.text(p))
	case ChainKind:
		return ChainValue(*f.chain(p))
	}
	return Value{}
}

func (f Field) Set(p *Patch, v Value) error {
	if v.kind != f.Kind {
		return fmt.Errorf("%s: %w: got %s, want %s", f.Path, ErrValueKind, v.kind, f.Kind)
	}
	switch f.Kind {
	case BoolKind:
		*f.flag(p) = v.b
	case NumberKind:
		*f.num(p) = v.n
	case StringKind:
		*f.text(p) = v.s
	case ChainKind:
		*f.chain(p) = v.chain.Copy()
	}
	return nil
}

var (
	fields     []Field
	fieldIndex map[string]int
)

func init() {
	add := func(f Field) { fields = append(fields, f) }
	num := func(path string, ref func(*Patch) *float64) {
		add(Field{Path: path, Kind: NumberKind, num: ref})
	}
	flag := func(path string, ref func(*Patch) *bool) {
		add(Field{Path: path, Kind: BoolKind, flag: ref})
	}
	text := func(path string, ref func(*Patch) *string) {
		add(Field{Path: path, Kind: StringKind, text: ref})
	}
	for i, name := range LayerNames {
		l := func(p *Patch) *Layer { return p.Layers.Layer(i) }
		prefix := "layers." + name + "."
		flag(prefix+"enabled", func(p *Patch) *bool { return &l(p).Enabled })
		text(prefix+"stack", func(p *Patch) *string { return &l(p).Stack })
		num(prefix+"tune", func(p *Patch) *float64 { return &l(p).Tune })
		num(prefix+"startRand", func(p *Patch) *float64 { return &l(p).StartRand })
		num(prefix+"attack", func(p *Patch) *float64 { return &l(p).Attack })
		num(prefix+"release", func(p *Patch) *float64 { return &l(p).Release })
	}
	for n := 1; n <= NumOscillators; n++ {
		o := func(p *Patch) *Oscillator { return p.Osc.Osc(n) }
		prefix := "osc." + strconv.Itoa(n) + "."
		flag(prefix+"enabled", func(p *Patch) *bool { return &o(p).Enabled })
		text(prefix+"wave", func(p *Patch) *string { return &o(p).Wave })
		num(prefix+"voices", func(p *Patch) *float64 { return &o(p).Voices })
		num(prefix+"detune", func(p *Patch) *float64 { return &o(p).Detune })
		num(prefix+"semi", func(p *Patch) *float64 { return &o(p).Semi })
		num(prefix+"fine", func(p *Patch) *float64 { return &o(p).Fine })
		num(prefix+"level", func(p *Patch) *float64 { return &o(p).Level })
	}
	text("mod.mode", func(p *Patch) *string { return &p.Mod.Mode })
	num("mod.rate", func(p *Patch) *float64 { return &p.Mod.Rate })
	num("mod.amount", func(p *Patch) *float64 { return &p.Mod.Amount })
	text("mod.target", func(p *Patch) *string { return &p.Mod.Target })
	text("mod.shape", func(p *Patch) *string { return &p.Mod.Shape })
	add(Field{Path: "fx.chain", Kind: ChainKind, chain: func(p *Patch) *Chain { return &p.FX.Chain }})
	flag("fx.filter.enabled", func(p *Patch) *bool { return &p.FX.Filter.Enabled })
	text("fx.filter.type", func(p *Patch) *string { return &p.FX.Filter.Type })
	num("fx.filter.cutoff", func(p *Patch) *float64 { return &p.FX.Filter.Cutoff })
	num("fx.filter.reso", func(p *Patch) *float64 { return &p.FX.Filter.Reso })
	flag("fx.chorus.enabled", func(p *Patch) *bool { return &p.FX.Chorus.Enabled })
	num("fx.chorus.rate", func(p *Patch) *float64 { return &p.FX.Chorus.Rate })
	num("fx.chorus.depth", func(p *Patch) *float64 { return &p.FX.Chorus.Depth })
	num("fx.chorus.mix", func(p *Patch) *float64 { return &p.FX.Chorus.Mix })
	flag("fx.delay.enabled", func(p *Patch) *bool { return &p.FX.Delay.Enabled })
	num("fx.delay.time", func(p *Patch) *float64 { return &p.FX.Delay.Time })
	num("fx.delay.fb", func(p *Patch) *float64 { return &p.FX.Delay.Feedback })
	num("fx.delay.mix", func(p *Patch) *float64 { return &p.FX.Delay.Mix })
	flag("fx.reverb.enabled", func(p *Patch) *bool { return &p.FX.Reverb.Enabled })
	text("fx.reverb.mode", func(p *Patch) *string { return &p.FX.Reverb.Mode })
	num("fx.reverb.size", func(p *Patch) *float64 { return &p.FX.Reverb.Size })
	num("fx.reverb.damp", func(p *Patch) *float64 { return &p.FX.Reverb.Damp })
	num("fx.reverb.mix", func(p *Patch) *float64 { return &p.FX.Reverb.Mix })
	flag("fx.dist.enabled", func(p *Patch) *bool { return &p.FX.Dist.Enabled })
	text("fx.dist.type", func(p *Patch) *string { return &p.FX.Dist.Type })
	num("fx.dist.drive", func(p *Patch) *float64 { return &p.FX.Dist.Drive })
	num("fx.dist.tone", func(p *Patch) *float64 { return &p.FX.Dist.Tone })
	num("fx.dist.mix", func(p *Patch) *float64 { return &p.FX.Dist.Mix })
	flag("mono.enabled", func(p *Patch) *bool { return &p.Mono.Enabled })
	flag("mono.legato", func(p *Patch) *bool { return &p.Mono.Legato })
	num("mono.portamento", func(p *Patch) *float64 { return &p.Mono.Portamento })
	num("mono.curve", func(p *Patch) *float64 { return &p.Mono.Curve })
	num("master.volume", func(p *Patch) *float64 { return &p.Master.Volume })

	fieldIndex = make(map[string]int, len(fields))
	for i, f := range fields {
		fieldIndex[f.Path] = i
	}
}

// LookupField resolves a dot-separated path, e.g. "osc.1.detune", to its
// typed accessor.
func LookupField(path string) (Field, bool) {
	i, ok := fieldIndex[path]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// Paths returns the path of every leaf, in tree order.
func Paths() []string {
	ret := make([]string, len(fields))
	for i, f := range fields {
		ret[i] = f.Path
	}
	return ret
}

// Get reads the leaf at path. Absent paths, including paths to inner nodes,
// read as the undefined Value.
func (p *Patch) Get(path string) Value {
	f, ok := LookupField(path)
	if !ok {
		return Value{}
	}
	return f.Get(p)
}

// Set writes the leaf at path. The tree shape is fixed, so writing to an
// unknown path is a programming error and returns ErrInvalidPath.
func (p *Patch) Set(path string, v Value) error {
	f, ok := LookupField(path)
	if !ok {
		return fmt.Errorf("set %q: %w", path, ErrInvalidPath)
	}
	return f.Set(p, v)
}

// MustSet is like Set but panics on error.
func (p *Patch) MustSet(path string, v Value) {
	if err := p.Set(path, v); err != nil {
		panic(err)
	}
}
