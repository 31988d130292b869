package main

import "testing"

func TestCommands(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range newApp().Commands {
		if seen[cmd.Name] {
			t.Errorf("duplicate command %s", cmd.Name)
		}
		seen[cmd.Name] = true
		if cmd.Action == nil {
			t.Errorf("command %s has no action", cmd.Name)
		}
	}
	for _, name := range []string{"multiturn", "persistence", "triage", "guess", "serve", "mcp", "launch", "speech"} {
		if !seen[name] {
			t.Errorf("missing command %s", name)
		}
	}
}
