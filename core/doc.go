// Package core is the application shell: the Model, message routing, the
// screen stack, key and command registries, and the pane host that tabs
// build on.
//
// Allowed here:
// - model state, routing, and the message contracts tabs respond to
// - shared interaction state machines (picker filtering, pane focus)
// - chrome rendering (header, status bar, footer) and the theme
//
// Not allowed here:
// - concrete modal screen implementations (screens)
// - drawing primitives (widgets) or tab-specific behavior (tabs)
package core
