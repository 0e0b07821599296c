package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/raveland/raveland/editor"
)

// ActionButton is an icon button that performs a model action when clicked
// and is greyed out while the action is disabled.
func ActionButton(gtx C, th *Theme, btn *widget.Clickable, icon []byte, description string, action editor.Action) D {
	for btn.Clicked(gtx) {
		action.Do()
	}
	ret := material.IconButton(th.Material, btn, th.Icon(icon), description)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	if action.Enabled() {
		ret.Color = th.Button.Enabled
	} else {
		ret.Color = th.Button.Disabled
	}
	return ret.Layout(gtx)
}

// TextButton is a low emphasis text button for a model action.
func TextButton(gtx C, th *Theme, btn *widget.Clickable, text string, action editor.Action) D {
	for btn.Clicked(gtx) {
		action.Do()
	}
	ret := material.Button(th.Material, btn, text)
	ret.Color = th.Button.Enabled
	if !action.Enabled() {
		ret.Color = th.Button.Disabled
	}
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret.Layout(gtx)
}
