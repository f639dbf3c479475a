// Package tools defines the callable operation surface of the morphology
// server. Each core operation is wrapped as a Tool with a JSON argument
// schema and registered in a Registry; the MCP transport and the CLI both
// dispatch through it.
package tools

import (
	"context"
)

// Category classifies tools by which layer of the engine they expose.
type Category string

const (
	// CategoryTaxonomy covers pure reference-table retrieval.
	CategoryTaxonomy Category = "taxonomy"

	// CategoryMorphism covers the deterministic derivation rules.
	CategoryMorphism Category = "morphism"

	// CategorySynthesis covers single-bot parameter generation.
	CategorySynthesis Category = "synthesis"

	// CategoryScene covers multi-entity and temporal composition.
	CategoryScene Category = "scene"
)

// Property describes a single parameter for the JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

// Schema defines the JSON schema for tool arguments.
type Schema struct {
	// Required lists parameters that must be provided.
	Required []string `json:"required"`

	// Properties describes each parameter.
	Properties map[string]Property `json:"properties"`
}

// ExecuteFunc runs a tool. The result is a JSON document or markdown string
// ready for the transport; errors are the typed core errors.
type ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is one callable operation.
type Tool struct {
	// Name is the unique wire-level identifier.
	Name string

	// Description explains what the tool does, for tool listings.
	Description string

	// Category classifies the tool by engine layer.
	Category Category

	// Execute runs the tool with the given arguments.
	Execute ExecuteFunc

	// Schema defines the expected arguments.
	Schema Schema
}

// Validate checks that the tool definition is complete.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Result wraps a tool execution with metadata.
type Result struct {
	ToolName   string
	Output     string
	Err        error
	DurationMs int64
}

// IsSuccess reports whether execution completed without error.
func (r *Result) IsSuccess() bool { return r.Err == nil }
