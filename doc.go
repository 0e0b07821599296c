// Package raveland holds the parameter tree of the Raveland synthesizer front
// panel: the Patch type with its defaults, typed dot-path accessors to its
// leaves, the effect chain and the preset catalog.
//
// Raveland makes no sound. The tree is only ever edited and displayed; the
// editor package binds it to controls and the front-ends draw it.
package raveland
