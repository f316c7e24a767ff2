package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema names a JSON Schema definition for one backend result
// shape. Definitions stay permissive about extra fields so a backend
// that volunteers more keys than asked still passes.
type resultSchema struct {
	Name       string
	Definition map[string]any
}

var questionSchema = &resultSchema{
	Name: "generated-question",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"question", "correctAnswer"},
		"properties": map[string]any{
			"question":      map[string]any{"type": "string", "minLength": 1},
			"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"correctAnswer": map[string]any{"type": "string"},
			"explanation":   map[string]any{"type": "string"},
			"subject":       map[string]any{"type": "string"},
		},
	},
}

var verdictSchema = &resultSchema{
	Name: "grading-verdict",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"score", "feedback"},
		"properties": map[string]any{
			"score":         map[string]any{"type": "number"},
			"feedback":      map[string]any{"type": "string"},
			"strengths":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"improvements":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"correctAnswer": map[string]any{"type": "string"},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func validateShape(schema *resultSchema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(schema *resultSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler expects a parsed JSON value, not Go maps with typed
	// slices. Round-trip through encoding/json to normalize.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
