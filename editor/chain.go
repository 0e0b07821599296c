package editor

import (
	"github.com/raveland/raveland"
)

type ChainModel Model

func (m *Model) Chain() *ChainModel { return (*ChainModel)(m) }

// Items returns a copy of the current effect order.
func (m *ChainModel) Items() raveland.Chain { return m.d.Patch.FX.Chain.Copy() }

// MoveUp returns an Action that swaps effect i with the one above it. It is
// disabled for the first effect.
func (m *ChainModel) MoveUp(i int) Action {
	return MakeAction(&chainMove{m: (*Model)(m), from: i, to: i - 1})
}

// MoveDown returns an Action that swaps effect i with the one below it. It is
// disabled for the last effect.
func (m *ChainModel) MoveDown(i int) Action {
	return MakeAction(&chainMove{m: (*Model)(m), from: i, to: i + 1})
}

type chainMove struct {
	m        *Model
	from, to int
}

func (c *chainMove) Enabled() bool {
	chain := c.m.d.Patch.FX.Chain
	if c.to < c.from {
		return chain.CanMoveUp(c.from)
	}
	return chain.CanMoveDown(c.from)
}

func (c *chainMove) Do() {
	c.m.Update(ChainReordered{From: c.from, To: c.to})
}

// List exposes the chain as a List, so the selected effect can be moved with
// List.MoveElements.
func (m *ChainModel) List() List { return MakeList((*chainList)(m)) }

type chainList ChainModel

func (m *chainList) Selected() int     { return m.chainSelected }
func (m *chainList) SetSelected(i int) { m.chainSelected = i }
func (m *chainList) Count() int        { return len(m.d.Patch.FX.Chain) }

func (m *chainList) Move(index, delta int) bool {
	_, err := (*Model)(m).Update(ChainReordered{From: index, To: index + delta})
	return err == nil
}
