package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gopkg.in/yaml.v3"
)

type (
	Theme struct {
		TextSize   unit.Sp
		Palette    material.Palette
		Background color.NRGBA
		Panel      struct {
			Bg     color.NRGBA
			Border color.NRGBA
			Inset  layout.Inset
			Margin layout.Inset
			Title  LabelStyle
		}
		Knob   KnobStyle
		Slider struct {
			Track color.NRGBA
			Fill  color.NRGBA
		}
		Toggle struct {
			On  color.NRGBA
			Off color.NRGBA
		}
		Choice struct {
			Bg color.NRGBA
			Fg color.NRGBA
		}
		Button struct {
			Enabled  color.NRGBA
			Disabled color.NRGBA
		}
		Popup struct {
			Surface  color.NRGBA
			Shadow   color.NRGBA
			Hover    color.NRGBA
			Selected color.NRGBA
			Group    LabelStyle
			Tag      LabelStyle
		}
		Scope struct {
			Bg     color.NRGBA
			Grid   color.NRGBA
			Line   color.NRGBA
			Dot    color.NRGBA
			Height unit.Dp
		}
		Meter struct {
			Bg     color.NRGBA
			Fill   color.NRGBA
			Height unit.Dp
		}
		Alert AlertStyles

		Material *material.Theme `yaml:"-"`
		iconCache map[*byte]*widget.Icon
	}
)

var transparent = color.NRGBA{}

//go:embed theme.yml
var defaultTheme []byte

// NewTheme loads the embedded theme and overlays $UserConfigDir/raveland/theme.yml
// on it. A broken user theme is reported as a warning; the defaults are still
// returned.
func NewTheme() (*Theme, error) {
	var theme Theme
	if err := decodeTheme(defaultTheme, &theme); err != nil {
		panic(fmt.Errorf("embedded theme: %w", err))
	}
	var warn error
	if data, err := readUserConfig("theme.yml"); err == nil {
		if err := decodeTheme(data, &theme); err != nil {
			warn = fmt.Errorf("theme.yml: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		warn = fmt.Errorf("theme.yml: %w", err)
	}
	theme.Material = material.NewTheme()
	theme.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	theme.Material.Palette = theme.Palette
	theme.Material.TextSize = theme.TextSize
	theme.iconCache = map[*byte]*widget.Icon{}
	return &theme, warn
}

func decodeTheme(data []byte, theme *Theme) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(theme)
}

// Icon returns the widget for an icon in golang.org/x/exp/shiny/materialdesign/icons.
func (th *Theme) Icon(data []byte) *widget.Icon {
	if icon, ok := th.iconCache[&data[0]]; ok {
		return icon
	}
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	th.iconCache[&data[0]] = icon
	return icon
}
