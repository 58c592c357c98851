// Package output provides the interface and registry for theme emitters.
package output

import (
	"context"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
)

// Plugin represents an output emitter that renders a colour scheme into one
// or more configuration files.
type Plugin interface {
	// Name returns the emitter's name (e.g., "kitty", "tmux").
	Name() string

	// Description returns a human-readable description of the emitter.
	Description() string

	// Generate renders file(s) from the given scheme.
	// Returns a map of filename -> content to support emitters that
	// produce multiple files.
	Generate(scheme colour.Scheme) (map[string][]byte, error)

	// RegisterFlags registers emitter-specific flags with a cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the emitter configuration is valid.
	Validate() error

	// Usage returns a short hint telling the operator how to wire the
	// generated file into the target application.
	Usage(writtenFiles []string) string
}

// PostExecuteHook is implemented by emitters that want to run after their
// files have been written, e.g. to reload the target application.
type PostExecuteHook interface {
	PostExecute(ctx context.Context, writtenFiles []string) error
}

// Registry holds all registered output emitters.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new emitter registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds an emitter to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves an emitter by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// Names returns all registered emitter names, sorted for deterministic
// iteration.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered emitters in name order.
func (r *Registry) All() []Plugin {
	plugins := make([]Plugin, 0, len(r.plugins))
	for _, name := range r.Names() {
		plugins = append(plugins, r.plugins[name])
	}
	return plugins
}
