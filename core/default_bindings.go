package core

import "strings"

// DefaultKeyBindings is the stock key map: global chrome bindings first,
// then per-pane bindings scoped so the footer only advertises what the
// selected pane can actually do. Config overrides rebind actions by name
// via ApplyActionKeybindings.
func DefaultKeyBindings() []KeyBinding {
	everywhere := []string{"*"}
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: everywhere},
		{Keys: []string{"v"}, Action: "jump", Description: "jump mode", Scopes: everywhere},
		{Keys: []string{"left"}, Action: "pane-nav", Description: "pane prev", Scopes: everywhere},
		{Keys: []string{"right"}, Action: "pane-nav", Description: "pane next", Scopes: everywhere},
		{Keys: []string{"up"}, Action: "pane-nav", Description: "pane prev", Scopes: everywhere},
		{Keys: []string{"down"}, Action: "pane-nav", Description: "pane next", Scopes: everywhere},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus pane", Scopes: everywhere},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: everywhere},
	}
	for i, tab := range []string{"widgets", "counter", "data", "loan", "todo", "dashboard"} {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{string(rune('1' + i))},
			Action:      "switch-tab-" + string(rune('1'+i)),
			Description: tab,
			Scopes:      everywhere,
		})
	}
	bindings = append(bindings,
		// Counter tab.
		KeyBinding{Keys: []string{"+", "="}, Action: "counter-increment", Description: "increment", Scopes: []string{"pane:counter:controls"}},
		KeyBinding{Keys: []string{"-"}, Action: "counter-decrement", Description: "decrement", Scopes: []string{"pane:counter:controls"}},
		KeyBinding{Keys: []string{"r"}, Action: "counter-reset", Description: "reset", Scopes: []string{"pane:counter:controls"}},
		// CSV file list and todo list share row movement.
		KeyBinding{Keys: []string{"j", "down"}, Action: "list-down", Description: "row down", Scopes: []string{"pane:data:files", "pane:todo:list"}},
		KeyBinding{Keys: []string{"k", "up"}, Action: "list-up", Description: "row up", Scopes: []string{"pane:data:files", "pane:todo:list"}},
		KeyBinding{Keys: []string{"r"}, Action: "files-rescan", Description: "rescan", Scopes: []string{"pane:data:files"}},
		// Todo tab.
		KeyBinding{Keys: []string{"enter"}, Action: "todo-add", Description: "add task", Scopes: []string{"pane:todo:input"}},
		KeyBinding{Keys: []string{"space"}, Action: "todo-toggle", Description: "toggle done", Scopes: []string{"pane:todo:list"}},
		KeyBinding{Keys: []string{"c"}, Action: "todo-clear", Description: "clear done", Scopes: []string{"pane:todo:list"}},
		// Dashboard tab.
		KeyBinding{Keys: []string{"m"}, Action: "trend-series", Description: "cycle series", Scopes: []string{"pane:dashboard:trend"}},
		KeyBinding{Keys: []string{"b"}, Action: "trend-view", Description: "bars/line", Scopes: []string{"pane:dashboard:trend"}},
		KeyBinding{Keys: []string{"w"}, Action: "weekday-view", Description: "bars/table", Scopes: []string{"pane:dashboard:weekday"}},
		KeyBinding{Keys: []string{"space"}, Action: "expander-toggle", Description: "expand", Scopes: []string{"pane:dashboard:raw", "pane:dashboard:notes"}},
		KeyBinding{Keys: []string{"s"}, Action: "slot-swap", Description: "swap slot", Scopes: []string{"pane:dashboard:slot"}},
		// Modal screens.
		KeyBinding{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:command", "screen:jump-picker"}},
		KeyBinding{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:command", "screen:jump-picker"}},
	)
	return bindings
}

// DefaultKeybindingsByAction flattens bindings to an action → keys map for
// writing the config template. The first binding of an action wins.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, seen := out[b.Action]; !seen {
			out[b.Action] = append([]string(nil), b.Keys...)
		}
	}
	return out
}

// ApplyActionKeybindings rebinds actions named in actionKeys, leaving the
// rest of each binding untouched.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
