// Package kitty provides an output emitter for Kitty terminal colour themes.
package kitty

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
	"github.com/jmylchreest/palgen/internal/output/common"
)

//go:embed *.tmpl
var templates embed.FS

// DefaultFilename is the conf file kitty users include from kitty.conf.
const DefaultFilename = "colors-wallpaper.conf"

// Plugin implements the output.Plugin interface for Kitty terminal.
type Plugin struct {
	filename     string
	reloadConfig bool
}

// New creates a new Kitty output emitter with default settings.
func New() *Plugin {
	return &Plugin{filename: DefaultFilename}
}

// Name returns the emitter name.
func (p *Plugin) Name() string {
	return "kitty"
}

// Description returns the emitter description.
func (p *Plugin) Description() string {
	return "Generate Kitty terminal colour theme configuration"
}

// RegisterFlags registers emitter-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "kitty.filename", DefaultFilename, "Kitty theme filename")
	cmd.Flags().BoolVar(&p.reloadConfig, "kitty.reload", false, "Reload kitty config after generation (sends SIGUSR1)")
}

// Validate checks if the emitter configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" {
		return fmt.Errorf("kitty filename cannot be empty")
	}
	return nil
}

// Generate renders the theme file.
// Returns a map of filename -> content.
func (p *Plugin) Generate(scheme colour.Scheme) (map[string][]byte, error) {
	if err := scheme.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to render incomplete scheme: %w", err)
	}

	tmplContent, err := templates.ReadFile("colors.conf.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read theme template: %w", err)
	}

	tmpl, err := template.New("kitty").Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, common.NewTemplateData(scheme, "wallpaper")); err != nil {
		return nil, fmt.Errorf("failed to execute theme template: %w", err)
	}

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}

// Usage tells the operator how to include the generated file.
func (p *Plugin) Usage(writtenFiles []string) string {
	if len(writtenFiles) == 0 {
		return ""
	}
	return fmt.Sprintf("Kitty: add to your kitty.conf:\n  include %s", writtenFiles[0])
}

// PostExecute reloads kitty configuration if requested.
// Implements the output.PostExecuteHook interface.
func (p *Plugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	if !p.reloadConfig {
		return nil
	}
	return p.reloadAllKittyInstances()
}
