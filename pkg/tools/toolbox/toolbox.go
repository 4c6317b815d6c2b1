// Package toolbox defines the Tool type and a registry for looking tools up
// and invoking them by name.
package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolBox holds a collection of tools keyed by name.
type ToolBox struct {
	tools map[string]Tool
	order []string
}

// New creates a ToolBox pre-populated with the given tools.
func New(tools ...Tool) *ToolBox {
	tb := &ToolBox{tools: make(map[string]Tool)}
	tb.Register(tools...)
	return tb
}

// Register adds one or more tools to the ToolBox. If a tool with the same
// name already exists, it is replaced in place.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		if _, exists := tb.tools[t.Name]; !exists {
			tb.order = append(tb.order, t.Name)
		}
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Tools returns all registered tools in registration order.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		result = append(result, tb.tools[name])
	}
	return result
}

// Call invokes the named tool with the given JSON input. It returns an error
// if the tool is not registered or its handler fails.
func (tb *ToolBox) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	t, ok := tb.tools[name]
	if !ok {
		return "", fmt.Errorf("toolbox: tool not found: %s", name)
	}

	return t.Handler(ctx, input)
}
