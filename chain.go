package raveland

import (
	"errors"
	"slices"
)

type (
	// Effect identifies one stage of the effect chain.
	Effect string

	// Chain is the processing order of the effects. A valid chain contains
	// every known effect exactly once; it is only ever reordered by swapping
	// neighbours.
	Chain []Effect
)

const (
	EffectFilter Effect = "filter"
	EffectChorus Effect = "chorus"
	EffectDelay  Effect = "delay"
	EffectReverb Effect = "reverb"
	EffectDist   Effect = "dist"
)

// Effects lists the known effects in their default order.
var Effects = []Effect{EffectFilter, EffectChorus, EffectDelay, EffectReverb, EffectDist}

// ErrChainIndex is returned for a move that would leave the chain.
var ErrChainIndex = errors.New("effect index out of range")

var effectLabels = map[Effect]string{
	EffectFilter: "Filter (pre)",
	EffectChorus: "Chorus",
	EffectDelay:  "Delay",
	EffectReverb: "Reverb",
	EffectDist:   "Distortion",
}

// Label returns the display name of the effect. Unknown effects are shown by
// their identifier.
func (e Effect) Label() string {
	if l, ok := effectLabels[e]; ok {
		return l
	}
	return string(e)
}

func DefaultChain() Chain { return slices.Clone(Chain(Effects)) }

func (c Chain) Copy() Chain { return slices.Clone(c) }

// Valid reports whether every known effect appears exactly once.
func (c Chain) Valid() bool {
	if len(c) != len(Effects) {
		return false
	}
	seen := make(map[Effect]bool, len(c))
	for _, e := range c {
		if _, known := effectLabels[e]; !known || seen[e] {
			return false
		}
		seen[e] = true
	}
	return true
}

func (c Chain) CanMoveUp(i int) bool   { return i > 0 && i < len(c) }
func (c Chain) CanMoveDown(i int) bool { return i >= 0 && i < len(c)-1 }

// MoveUp swaps the effect at i with the one before it. It does nothing and
// returns false at the first position.
func (c Chain) MoveUp(i int) bool {
	if !c.CanMoveUp(i) {
		return false
	}
	c[i-1], c[i] = c[i], c[i-1]
	return true
}

// MoveDown swaps the effect at i with the one after it. It does nothing and
// returns false at the last position.
func (c Chain) MoveDown(i int) bool {
	if !c.CanMoveDown(i) {
		return false
	}
	c[i+1], c[i] = c[i], c[i+1]
	return true
}

func (c Chain) Index(e Effect) int { return slices.Index(c, e) }
