/*
Package editor contains the data model for the Raveland front panel.

The editor package defines the Model struct, which holds the live patch, the
preset catalog, the state of the preset browser and effect chain editor, and
the transient state of the modulation pulse.

The front-ends do not modify the patch directly. Every write is either an
Event passed to Model.Update, or one of the types Action, Bool, Float, Choice,
String and List which route through the same reducer. For example,
model.Mod().CycleShape() returns an Action that advances the modulation
shape, which is executed with model.Mod().CycleShape().Do().

The method naming aims at API fluency. For example, model.Presets().Open()
returns an Action to open the preset browser, and model.Chain().MoveUp(2)
returns an Action that swaps the third effect with the one above it.

The Model is owned by a single goroutine. Timers and MIDI drivers talk to it
by sending MsgToModel values through the Broker; the owner drains
Broker.ToModel and calls ProcessMsg.
*/
package editor
