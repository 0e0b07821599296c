// Package gioui is the desktop front-end of the editor, built with gio.
package gioui

import (
	"image"
	"strconv"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/raveland/raveland"
	"github.com/raveland/raveland/editor"
	"github.com/raveland/raveland/version"
	"github.com/raveland/raveland/visual"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	App struct {
		Theme      *Theme
		PopupAlert *AlertsState
		Browser    *PresetBrowserState
		ChainList  *ChainState
		Canvas     *CanvasState

		controls map[string]*ControlState
		defaults raveland.Patch
		sections widget.List

		presetBtn    widget.Clickable
		randomizeBtn widget.Clickable
		resetBtn     widget.Clickable
		shapeBtn     widget.Clickable
		triggerBtn   widget.Clickable
		refreshBtn   widget.Clickable
		midiInput    ChoiceState

		preferences Preferences

		*editor.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewApp(model *editor.Model) *App {
	a := &App{
		PopupAlert: NewAlertsState(),
		Browser:    NewPresetBrowserState(),
		ChainList:  new(ChainState),
		controls:   map[string]*ControlState{},
		defaults:   raveland.DefaultPatch(),
		Model:      model,
	}
	a.sections.Axis = layout.Vertical
	var warn error
	if a.Theme, warn = NewTheme(); warn != nil {
		model.Alerts().AddAlert(editor.Alert{
			Priority: editor.Warning,
			Message:  warn.Error(),
			Duration: 10 * time.Second,
		})
	}
	a.preferences = MakePreferences()
	if a.preferences.YmlError != nil {
		model.Alerts().AddAlert(editor.Alert{
			Priority: editor.Warning,
			Message:  "preferences.yml: " + a.preferences.YmlError.Error(),
			Duration: 10 * time.Second,
		})
	}
	if len(a.preferences.CCMap) > 0 {
		if err := model.MIDI().SetCCMap(a.preferences.CCMap); err != nil {
			model.Alerts().Add("preferences.yml: "+err.Error(), editor.Warning)
		}
	}
	a.Canvas = NewCanvasState(a.preferences.ScopeInterval())
	return a
}

// Preferences returns the loaded preferences, for the main to pick the MIDI
// input.
func (a *App) Preferences() Preferences { return a.preferences }

func (a *App) Main() {
	var ops op.Ops
	w := new(app.Window)
	w.Option(app.Title(version.Title()), app.Size(a.preferences.WindowSize()))
	if a.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case e := <-a.Broker().ToGUI:
			a.processGUIMsg(e)
			w.Invalidate()
		case e := <-a.Broker().ToModel:
			a.ProcessMsg(e)
			w.Invalidate()
		case <-a.Broker().CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				a.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
	close(a.Broker().FinishedGUI)
}

func (a *App) Layout(gtx C) {
	a.Mod().Tick(gtx.Now)
	a.Canvas.advance(gtx, a.Patch().Master.Volume)
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, a)
	a.Canvas.layoutBackground(gtx, a.Theme)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutHeader),
		layout.Flexed(1, a.layoutSections),
	)
	a.Browser.Layout(gtx, a.Theme, a.Presets())
	alerts := Alerts(a.Alerts(), a.Theme, a.PopupAlert)
	alerts.Layout(gtx)
	a.handleKeys(gtx)
}

func (a *App) handleKeys(gtx C) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameUpArrow, Required: key.ModShortcut},
			key.Filter{Name: key.NameDownArrow, Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		switch e.Name {
		case key.NameEscape:
			a.Presets().HandleKey(editor.KeyEscape)
		case key.NameUpArrow:
			l := a.Chain().List()
			l.MoveElements(-1)
		case key.NameDownArrow:
			l := a.Chain().List()
			l.MoveElements(1)
		}
	}
}

func (a *App) layoutHeader(gtx C) D {
	th := a.Theme
	title := func(gtx C) D {
		l := material.H6(th.Material, version.Title())
		l.Color = th.Panel.Title.Color
		return l.Layout(gtx)
	}
	preset := func(gtx C) D {
		return PresetButton(gtx, th, &a.presetBtn, a.Model)
	}
	midi := func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return Choice(gtx, th, a.MIDI().Input(), &a.midiInput, "MIDI in")
			}),
			layout.Rigid(func(gtx C) D {
				return ActionButton(gtx, th, &a.refreshBtn, icons.NavigationRefresh, "Rescan MIDI inputs", a.MIDI().Refresh())
			}),
		)
	}
	return th.Panel.Margin.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
					layout.Rigid(title),
					layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
					layout.Flexed(1, preset),
					layout.Rigid(func(gtx C) D {
						return ActionButton(gtx, th, &a.randomizeBtn, icons.AVShuffle, "Randomize", a.Randomize())
					}),
					layout.Rigid(func(gtx C) D {
						return ActionButton(gtx, th, &a.resetBtn, icons.AVReplay, "Reset", a.Reset())
					}),
					layout.Rigid(midi),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx C) D { return a.Canvas.layoutMeter(gtx, th) }),
		)
	})
}

func (a *App) processGUIMsg(msg editor.MsgToGUI) {
	switch msg.Kind {
	case editor.GUIMessageShowControl:
		if i := a.sectionOf(msg.Param); i >= 0 {
			a.sections.ScrollTo(i)
		}
	}
}

// sectionOf returns the index of the section holding the control with path,
// or -1.
func (a *App) sectionOf(path string) int {
	for i, s := range a.Sections() {
		for _, c := range s.Controls {
			if c.Path == path {
				return i
			}
		}
	}
	return -1
}

func (a *App) layoutSections(gtx C) D {
	sections := a.Sections()
	return material.List(a.Theme.Material, &a.sections).Layout(gtx, len(sections), func(gtx C, i int) D {
		return a.layoutSection(gtx, sections[i])
	})
}

func (a *App) layoutSection(gtx C, s editor.Section) D {
	th := a.Theme
	children := []layout.FlexChild{
		layout.Rigid(Label(th, &th.Panel.Title, s.Title).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
	}
	if len(s.Controls) > 0 && s.Controls[0].Path == "fx.filter.enabled" {
		children = append(children,
			layout.Rigid(func(gtx C) D { return a.ChainList.Layout(gtx, th, a.Chain()) }),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout))
	}
	if w := a.sectionVisual(s); w != nil {
		children = append(children,
			layout.Rigid(w),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout))
	}
	children = append(children, layout.Rigid(func(gtx C) D {
		row := make([]layout.FlexChild, 0, 2*len(s.Controls))
		for _, c := range s.Controls {
			row = append(row,
				layout.Rigid(func(gtx C) D { return a.layoutControl(gtx, c) }),
				layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout))
		}
		return layout.Flex{Alignment: layout.Start}.Layout(gtx, row...)
	}))
	return th.Panel.Margin.Layout(gtx, func(gtx C) D {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx C) D {
				rr := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(8))
				paint.FillShape(gtx.Ops, th.Panel.Bg, rr.Op(gtx.Ops))
				paint.FillShape(gtx.Ops, th.Panel.Border, clip.Stroke{Path: rr.Path(gtx.Ops), Width: 1}.Op())
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return th.Panel.Inset.Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
				})
			}),
		)
	})
}

// sectionVisual returns the display drawn above the controls of a section,
// chosen by the paths the section edits.
func (a *App) sectionVisual(s editor.Section) layout.Widget {
	if len(s.Controls) == 0 {
		return nil
	}
	parts := strings.Split(s.Controls[0].Path, ".")
	th := a.Theme
	switch parts[0] {
	case "layers":
		return func(gtx C) D { return a.Canvas.layoutStackScope(gtx, th, parts[1]) }
	case "osc":
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil
		}
		return func(gtx C) D {
			p := a.Patch()
			return a.Canvas.layoutOscScope(gtx, th, n, visual.OscWave(&p, n))
		}
	case "mod":
		return func(gtx C) D {
			mod := a.Mod()
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D { return layoutModPlot(gtx, th, mod.Curve, mod.Caption()) }),
				layout.Rigid(func(gtx C) D {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return TextButton(gtx, th, &a.shapeBtn, "Shape: "+mod.Shape().Value(), mod.CycleShape())
						}),
						layout.Rigid(func(gtx C) D {
							return ActionButton(gtx, th, &a.triggerBtn, icons.ImageFlashOn, "Trigger", mod.Trigger())
						}),
					)
				}),
			)
		}
	}
	return nil
}

func (a *App) controlState(path string) *ControlState {
	s, ok := a.controls[path]
	if !ok {
		s = new(ControlState)
		a.controls[path] = s
	}
	return s
}

func (a *App) layoutControl(gtx C, c editor.Control) D {
	th := a.Theme
	s := a.controlState(c.Path)
	switch c.Kind {
	case editor.Knob:
		def, _ := a.defaults.Get(c.Path).Number()
		k := Knob(th, a.Float(c.Path), &s.knob, c.Label, def)
		k.Sensitivity = a.preferences.KnobSensitivity
		return k.Layout(gtx)
	case editor.Slider:
		return Slider(gtx, th, a.Float(c.Path), &s.slider, c.Label)
	case editor.Toggle:
		return Toggle(gtx, th, a.Bool(c.Path), &s.toggle, c.Label)
	case editor.Select:
		return Choice(gtx, th, a.Choice(c.Path), &s.choice, c.Label)
	}
	return D{}
}
