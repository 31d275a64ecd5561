// Package ui is the Bubble Tea presentation layer of the demo page.
//
// Core abstractions:
//   - View: a panel or overlay with its own model, update, view (Elm-style)
//   - FocusManager: tracks and rotates focus across panels
//   - OverlayStack: modal views that receive input first
//   - KeybindRegistry/KeyHandler: SPC-leader key sequences mapped to intents
//
// Panels never mutate state themselves. Keys become intent messages, AppModel
// hands them to the engine, and every panel redraws from the resulting
// engine.Snapshot.
package ui
