package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps one or more keys to a named action inside a set of
// scopes. An empty scope list means the binding is live everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) matches(pressed, scope string) bool {
	if !scopeMatch(scope, b.Scopes) {
		return false
	}
	for _, k := range b.Keys {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

// KeyRegistry resolves key presses to actions per scope. Tabs register
// their pane-level bindings on top of the defaults.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope returns the bindings live in scope, in registration
// order, for the footer help line.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether msg triggers the named action in scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action == action && b.matches(pressed, scope) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	return slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}
