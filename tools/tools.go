package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Standard errors
var (
	// ErrToolNotFound is returned when a tool is not registered
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolAlreadyRegistered is returned when trying to register a duplicate tool name.
	ErrToolAlreadyRegistered = errors.New("tool already registered")
)

// ToolError wraps errors with tool context.
type ToolError struct {
	ToolName string
	Err      error
}

func (e *ToolError) Error() string {
	return "tool " + e.ToolName + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Tools is a collection of callable tools.
type Tools struct {
	tools      map[string]*tool
	order      []string
	middleware []ToolMiddleware
	mu         sync.RWMutex
}

// tool is an internal representation of a registered tool.
type tool struct {
	name        string
	description string
	fn          ToolFunc
	schema      Schema
	params      map[string]ParamDef
}

// Schema describes a tool to a client: its name, description and the JSON
// schema of its arguments.
type Schema struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	InputSchema map[string]any `json:"inputSchema" yaml:"inputSchema"`
}

// ParamDef defines a tool parameter.
type ParamDef struct {
	Type        string    `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"`
	Required    bool      `json:"required" yaml:"required"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items       *ParamDef `json:"items,omitempty" yaml:"items,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64  `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// ToolDef allows explicit tool definition with schema.
type ToolDef struct {
	Description string
	Fn          ToolFunc
	Params      map[string]ParamDef
}

// ToolMiddleware wraps tool execution.
type ToolMiddleware func(ToolFunc) ToolFunc

// ToolFunc is the signature for tool execution.
type ToolFunc func(ctx context.Context, params map[string]any) (string, error)

// ToolsOption configures Tools.
type ToolsOption func(*Tools)

// WithMiddleware installs middleware at construction.
func WithMiddleware(mw ...ToolMiddleware) ToolsOption {
	return func(t *Tools) {
		t.middleware = append(t.middleware, mw...)
	}
}

// NewTools creates a new Tools collection.
func NewTools(opts ...ToolsOption) *Tools {
	t := &Tools{
		tools: make(map[string]*tool),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Register adds a tool to the collection.
func (t *Tools) Register(name string, def ToolDef) error {
	if name == "" {
		return errors.New("tool name is required")
	}
	if def.Fn == nil {
		return fmt.Errorf("tool %s: handler is required", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check for duplicate registration
	if _, exists := t.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, name)
	}

	t.tools[name] = &tool{
		name:        name,
		description: def.Description,
		fn:          def.Fn,
		params:      def.Params,
		schema:      buildSchema(name, def.Description, def.Params),
	}
	t.order = append(t.order, name)
	return nil
}

// Use adds middleware to the tool chain.
func (t *Tools) Use(mw ToolMiddleware) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.middleware = append(t.middleware, mw)
}

// Has reports whether a tool is registered.
func (t *Tools) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.tools[name]
	return ok
}

// Execute calls a tool by name.
func (t *Tools) Execute(ctx context.Context, name string, params map[string]any) (string, error) {
	t.mu.RLock()
	tl, ok := t.tools[name]
	middleware := t.middleware
	t.mu.RUnlock()

	if !ok {
		return "", &ToolError{ToolName: name, Err: ErrToolNotFound}
	}

	if params == nil {
		params = map[string]any{}
	}

	exec := tl.fn

	// Apply middleware (in reverse order)
	for i := len(middleware) - 1; i >= 0; i-- {
		exec = middleware[i](exec)
	}

	result, err := exec(withToolName(ctx, name), params)
	if err != nil {
		return "", &ToolError{ToolName: name, Err: err}
	}

	return result, nil
}

// Schema returns the schemas for all tools in registration order.
func (t *Tools) Schema() []Schema {
	t.mu.RLock()
	defer t.mu.RUnlock()

	schemas := make([]Schema, 0, len(t.order))
	for _, name := range t.order {
		schemas = append(schemas, t.tools[name].schema)
	}
	return schemas
}

// Names returns the registered tool names in registration order.
func (t *Tools) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.order...)
}

// Filter returns a new Tools with only the specified tools.
// Unknown names are ignored. Middleware is shared with the receiver.
func (t *Tools) Filter(names ...string) *Tools {
	t.mu.RLock()
	defer t.mu.RUnlock()

	filtered := &Tools{
		tools:      make(map[string]*tool),
		middleware: t.middleware,
	}

	nameSet := make(map[string]bool)
	for _, n := range names {
		nameSet[n] = true
	}

	for _, name := range t.order {
		if nameSet[name] {
			filtered.tools[name] = t.tools[name]
			filtered.order = append(filtered.order, name)
		}
	}

	return filtered
}

// buildSchema builds a schema from explicit definitions.
func buildSchema(name, description string, params map[string]ParamDef) Schema {
	props := make(map[string]any)
	required := []string{}

	for pname, pdef := range params {
		props[pname] = paramSchema(pdef)

		if pdef.Required {
			required = append(required, pname)
		}
	}
	sort.Strings(required)

	return Schema{
		Name:        name,
		Description: description,
		InputSchema: map[string]any{
			"type":       "object",
			"properties": props,
			"required":   required,
		},
	}
}

func paramSchema(pdef ParamDef) map[string]any {
	prop := map[string]any{
		"type": pdef.Type,
	}
	if pdef.Description != "" {
		prop["description"] = pdef.Description
	}
	if len(pdef.Enum) > 0 {
		prop["enum"] = pdef.Enum
	}
	if pdef.Default != nil {
		prop["default"] = pdef.Default
	}
	if pdef.Minimum != nil {
		prop["minimum"] = *pdef.Minimum
	}
	if pdef.Maximum != nil {
		prop["maximum"] = *pdef.Maximum
	}
	if pdef.Items != nil {
		prop["items"] = paramSchema(*pdef.Items)
	}
	return prop
}

type toolNameKey struct{}

func withToolName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, toolNameKey{}, name)
}

// ToolName returns the name of the tool being executed, if any.
func ToolName(ctx context.Context) string {
	name, _ := ctx.Value(toolNameKey{}).(string)
	return name
}
