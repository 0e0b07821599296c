package raveland_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/raveland/raveland"
)

func TestChainMovesAreInverse(t *testing.T) {
	for i := 0; i < len(raveland.Effects); i++ {
		c := raveland.DefaultChain()
		if c.MoveUp(i) {
			if !c.MoveDown(i - 1) {
				t.Fatalf("MoveDown(%d) after MoveUp(%d) failed", i-1, i)
			}
		}
		if !reflect.DeepEqual(c, raveland.DefaultChain()) {
			t.Errorf("up then down at %d: got %v", i, c)
		}
		if c.MoveDown(i) {
			c.MoveUp(i + 1)
		}
		if !reflect.DeepEqual(c, raveland.DefaultChain()) {
			t.Errorf("down then up at %d: got %v", i, c)
		}
	}
}

func TestChainEndsAreNoOps(t *testing.T) {
	c := raveland.DefaultChain()
	if c.CanMoveUp(0) || c.MoveUp(0) {
		t.Error("first element moved up")
	}
	last := len(c) - 1
	if c.CanMoveDown(last) || c.MoveDown(last) {
		t.Error("last element moved down")
	}
	if c.MoveUp(-1) || c.MoveDown(len(c)) {
		t.Error("out of range index moved")
	}
	if !reflect.DeepEqual(c, raveland.DefaultChain()) {
		t.Errorf("chain changed: %v", c)
	}
}

func TestChainStaysValid(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	c := raveland.DefaultChain()
	for i := 0; i < 1000; i++ {
		idx := r.Intn(len(c)+2) - 1
		if r.Intn(2) == 0 {
			c.MoveUp(idx)
		} else {
			c.MoveDown(idx)
		}
		if !c.Valid() {
			t.Fatalf("chain became invalid after %d moves: %v", i, c)
		}
	}
}

func TestChainValid(t *testing.T) {
	cases := []struct {
		chain raveland.Chain
		valid bool
	}{
		{raveland.DefaultChain(), true},
		{raveland.Chain{"dist", "reverb", "delay", "chorus", "filter"}, true},
		{raveland.Chain{"filter", "chorus", "delay", "reverb"}, false},
		{raveland.Chain{"filter", "filter", "delay", "reverb", "dist"}, false},
		{raveland.Chain{"filter", "chorus", "delay", "reverb", "phaser"}, false},
	}
	for _, c := range cases {
		if got := c.chain.Valid(); got != c.valid {
			t.Errorf("%v.Valid() = %v, want %v", c.chain, got, c.valid)
		}
	}
}

func TestEffectLabel(t *testing.T) {
	if l := raveland.EffectFilter.Label(); l != "Filter (pre)" {
		t.Errorf("filter label %q", l)
	}
	if l := raveland.Effect("phaser").Label(); l != "phaser" {
		t.Errorf("unknown effect label %q", l)
	}
}
