// Package controls provides focusable input elements for pane content:
// text fields, toggles, steppers, sliders, choice rows, date and time
// fields and buttons. A control keeps its own cursor and value state but
// never touches services; the owning pane reads values out and decides
// what a change means.
package controls
