// Package screens implements the modal overlays (command palette, jump
// picker) that satisfy core.Screen. Screens own their presentation and
// key handling while open; routing and registry ownership stay in core.
package screens
