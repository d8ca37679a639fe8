// Package tabs contains tab-level policy and pane composition for the six
// demo tabs: widgets, counter, csv, loan form, todo and dashboard.
//
// Allowed here:
// - pane behavior, tab-specific layout trees, tab-specific focus/jump policy
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
package tabs
