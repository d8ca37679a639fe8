// Package widgets holds stateless render primitives: pane chrome, row and
// column stacks, metric cards, charts, tables and the popup compositor.
// Everything here draws plain values into a width x height box and knows
// nothing about keys, scopes, services or application state.
package widgets
