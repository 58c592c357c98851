// Package tmux provides an output emitter for tmux status-line themes.
package tmux

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os/exec"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
	"github.com/jmylchreest/palgen/internal/output/common"
)

//go:embed *.tmpl
var templates embed.FS

// DefaultFilename is the conf file tmux users source from tmux.conf.
const DefaultFilename = "colors-wallpaper.tmux.conf"

// Plugin implements the output.Plugin interface for tmux.
type Plugin struct {
	filename     string
	reloadConfig bool
}

// New creates a new tmux output emitter with default settings.
func New() *Plugin {
	return &Plugin{filename: DefaultFilename}
}

// Name returns the emitter name.
func (p *Plugin) Name() string {
	return "tmux"
}

// Description returns the emitter description.
func (p *Plugin) Description() string {
	return "Generate tmux status-line theme configuration"
}

// RegisterFlags registers emitter-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.filename, "tmux.filename", DefaultFilename, "tmux theme filename")
	cmd.Flags().BoolVar(&p.reloadConfig, "tmux.reload", false, "Source the theme into the running tmux server after generation")
}

// Validate checks if the emitter configuration is valid.
func (p *Plugin) Validate() error {
	if p.filename == "" {
		return fmt.Errorf("tmux filename cannot be empty")
	}
	return nil
}

// Generate renders the theme file.
// Returns a map of filename -> content.
func (p *Plugin) Generate(scheme colour.Scheme) (map[string][]byte, error) {
	if err := scheme.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to render incomplete scheme: %w", err)
	}

	tmplContent, err := templates.ReadFile("theme.tmux.conf.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read theme template: %w", err)
	}

	tmpl, err := template.New("tmux").Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, common.NewTemplateData(scheme, "wallpaper")); err != nil {
		return nil, fmt.Errorf("failed to execute theme template: %w", err)
	}

	return map[string][]byte{p.filename: buf.Bytes()}, nil
}

// Usage tells the operator how to source the generated file.
func (p *Plugin) Usage(writtenFiles []string) string {
	if len(writtenFiles) == 0 {
		return ""
	}
	return fmt.Sprintf("Tmux: add to your ~/.tmux.conf:\n  source-file %s", writtenFiles[0])
}

// PostExecute sources the theme into the running tmux server if requested.
// Implements the output.PostExecuteHook interface.
func (p *Plugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	if !p.reloadConfig || len(writtenFiles) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, "tmux", "source-file", writtenFiles[0])
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to source tmux theme (is a tmux server running?): %w", err)
	}

	return nil
}
