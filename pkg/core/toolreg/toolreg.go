// Package toolreg owns the editable function-tool registry. Tools are kept in
// insertion order; names are unique and that uniqueness is enforced at add and
// rename time rather than repaired after the fact.
package toolreg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// Scheduling hints carried on function responses.
const (
	SchedulingInterrupt = "INTERRUPT"
	SchedulingWhenIdle  = "WHEN_IDLE"
	SchedulingSilent    = "SILENT"
)

// Tool is one registry entry. Parameters uses the Live API's uppercase
// JSON-schema type names.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	IsEnabled   bool
	Scheduling  string
}

// Registry holds the tool list for the active template.
type Registry struct {
	mu       sync.Mutex
	tools    []Tool
	template Template
}

// NewRegistry starts on the customer support toolset.
func NewRegistry() *Registry {
	return &Registry{
		tools:    Toolset(TemplateCustomerSupport),
		template: TemplateCustomerSupport,
	}
}

// Template returns the active template.
func (r *Registry) Template() Template {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.template
}

// SetTemplate swaps in the template's toolset wholesale. Any edits made to
// the previous list are discarded.
func (r *Registry) SetTemplate(t Template) error {
	set := Toolset(t)
	if set == nil {
		return fmt.Errorf("unknown tool template %q", t)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools = set
	r.template = t
	return nil
}

// Tools returns a copy of the full list, disabled entries included.
func (r *Registry) Tools() []Tool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneTools(r.tools)
}

// Add appends a blank enabled tool under the first free auto-generated name
// and returns it.
func (r *Registry) Add() Tool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := "new_function"
	for i := 1; r.hasName(name); i++ {
		name = fmt.Sprintf("new_function_%d", i)
	}
	tool := Tool{
		Name:       name,
		IsEnabled:  true,
		Parameters: map[string]any{"type": "OBJECT", "properties": map[string]any{}},
		Scheduling: SchedulingInterrupt,
	}
	r.tools = append(r.tools, tool)
	return tool
}

// Update replaces the tool named oldName. A rename that collides with a
// different existing tool is rejected and leaves the list unchanged.
func (r *Registry) Update(oldName string, updated Tool) error {
	updated.Name = strings.TrimSpace(updated.Name)
	if updated.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(oldName)
	if idx < 0 {
		return fmt.Errorf("no tool named %q", oldName)
	}
	if updated.Name != oldName && r.hasName(updated.Name) {
		return fmt.Errorf("tool named %q already exists", updated.Name)
	}
	r.tools[idx] = updated
	return nil
}

// Toggle flips the enabled flag of the named tool. Unknown names are a no-op.
func (r *Registry) Toggle(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx := r.indexOf(name); idx >= 0 {
		r.tools[idx].IsEnabled = !r.tools[idx].IsEnabled
	}
}

// Remove drops the named tool. Unknown names are a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx := r.indexOf(name); idx >= 0 {
		r.tools = append(r.tools[:idx], r.tools[idx+1:]...)
	}
}

// Scheduling returns the scheduling hint of the named tool, defaulting to
// INTERRUPT when the tool is unknown or carries none.
func (r *Registry) Scheduling(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx := r.indexOf(name); idx >= 0 && r.tools[idx].Scheduling != "" {
		return r.tools[idx].Scheduling
	}
	return SchedulingInterrupt
}

// Declarations maps the enabled subset into wire declarations, in list order.
// Disabled tools stay in the registry but are never sent to the remote
// session.
func (r *Registry) Declarations() []types.ToolDeclaration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var decls []types.ToolDeclaration
	for _, tool := range r.tools {
		if !tool.IsEnabled {
			continue
		}
		decls = append(decls, types.ToolDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}
	return decls
}

func (r *Registry) hasName(name string) bool {
	return r.indexOf(name) >= 0
}

func (r *Registry) indexOf(name string) int {
	for i, tool := range r.tools {
		if tool.Name == name {
			return i
		}
	}
	return -1
}

func cloneTools(tools []Tool) []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}
