package toolguard

import (
	"fmt"
	"sort"
	"sync"

	"github.com/careerstu/careerstu/internal/modes"
)

// Decision is the guard's answer for one (mode, tool) check. A refusal
// carries a structured reason so the orchestration layer can inform the
// model instead of silently dropping the call.
type Decision struct {
	Allowed bool
	Reason  string
}

// Guard holds the immutable per-mode allow-lists built from the tool
// registry at startup. Safe for concurrent use.
type Guard struct {
	byName  map[string]Tool
	allowed map[modes.Mode]map[string]bool
	schemas sync.Map // tool name -> *jsonschema.Schema, compiled lazily
}

// New builds a Guard from the registry. Duplicate tool names and unknown
// modes are registry bugs and fail construction.
func New(tools []Tool) (*Guard, error) {
	g := &Guard{
		byName:  make(map[string]Tool, len(tools)),
		allowed: make(map[modes.Mode]map[string]bool, 4),
	}
	for _, m := range modes.AllModes() {
		g.allowed[m] = make(map[string]bool)
	}

	for _, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("tool with empty name in registry")
		}
		if _, dup := g.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q in registry", t.Name)
		}
		g.byName[t.Name] = t

		if t.Global {
			for _, m := range modes.AllModes() {
				g.allowed[m][t.Name] = true
			}
			continue
		}
		for _, m := range t.Modes {
			if !m.Valid() {
				return nil, fmt.Errorf("tool %q lists unknown mode %q", t.Name, m)
			}
			g.allowed[m][t.Name] = true
		}
	}

	return g, nil
}

// Check reports whether toolName may be called in mode.
func (g *Guard) Check(mode modes.Mode, toolName string) Decision {
	if !mode.Valid() {
		return Decision{Reason: fmt.Sprintf("unknown mode %q", mode)}
	}
	if _, ok := g.byName[toolName]; !ok {
		return Decision{Reason: fmt.Sprintf("unknown tool %q", toolName)}
	}
	if !g.allowed[mode][toolName] {
		return Decision{Reason: fmt.Sprintf("tool %q is not available in %s mode", toolName, mode)}
	}
	return Decision{Allowed: true}
}

// Lookup returns the registry entry for toolName.
func (g *Guard) Lookup(toolName string) (Tool, bool) {
	t, ok := g.byName[toolName]
	return t, ok
}

// AllowedTools returns the tools callable in mode, sorted by name. This
// is what the orchestration layer advertises to the model each turn.
func (g *Guard) AllowedTools(mode modes.Mode) []Tool {
	names := make([]string, 0, len(g.allowed[mode]))
	for name := range g.allowed[mode] {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, g.byName[name])
	}
	return tools
}
