package toolguard

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ArgumentError indicates tool arguments failed schema validation.
// Recoverable: the orchestration layer reports it to the model as a tool
// result so the call can be corrected.
type ArgumentError struct {
	Tool string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// ValidateArgs validates raw JSON arguments against the tool's input
// schema. Returns *ArgumentError on malformed JSON or schema violation.
func (g *Guard) ValidateArgs(toolName string, raw json.RawMessage) error {
	tool, ok := g.byName[toolName]
	if !ok {
		return &ArgumentError{Tool: toolName, Err: fmt.Errorf("unknown tool")}
	}
	if tool.InputSchema == nil {
		return nil
	}

	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ArgumentError{Tool: toolName, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := g.compiledSchema(tool)
	if err != nil {
		return &ArgumentError{Tool: toolName, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ArgumentError{Tool: toolName, Err: err}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches
// it on the Guard, so two Guards built from different registries never
// see each other's schemas. The jsonschema library expects a parsed JSON
// value, so the definition map round-trips through encoding/json first.
func (g *Guard) compiledSchema(tool Tool) (*jsonschema.Schema, error) {
	if cached, ok := g.schemas.Load(tool.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", tool.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	g.schemas.Store(tool.Name, compiled)
	return compiled, nil
}
