// Package neovim provides an output emitter for Neovim/Vim colour schemes.
package neovim

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
	"github.com/jmylchreest/palgen/internal/output/common"
)

//go:embed *.tmpl
var templates embed.FS

// DefaultThemeName names the generated colorscheme when none is given.
const DefaultThemeName = "wallpaper"

// Plugin implements the output.Plugin interface for Neovim.
type Plugin struct {
	themeName string
}

// New creates a new Neovim output emitter with default settings.
func New() *Plugin {
	return &Plugin{themeName: DefaultThemeName}
}

// Name returns the emitter name.
func (p *Plugin) Name() string {
	return "neovim"
}

// Description returns the emitter description.
func (p *Plugin) Description() string {
	return "Generate Neovim colour scheme (Vimscript format)"
}

// RegisterFlags registers emitter-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.themeName, "neovim.theme-name", DefaultThemeName, "Theme name for the colorscheme")
}

// Validate checks if the emitter configuration is valid.
func (p *Plugin) Validate() error {
	if p.themeName == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	return nil
}

// Generate renders the colorscheme file.
// Returns a map of filename -> content.
func (p *Plugin) Generate(scheme colour.Scheme) (map[string][]byte, error) {
	if err := scheme.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to render incomplete scheme: %w", err)
	}

	tmplContent, err := templates.ReadFile("theme.vim.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read theme template: %w", err)
	}

	tmpl, err := template.New("neovim").Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, common.NewTemplateData(scheme, p.themeName)); err != nil {
		return nil, fmt.Errorf("failed to execute theme template: %w", err)
	}

	filename := fmt.Sprintf("%s.vim", p.themeName)
	return map[string][]byte{filename: buf.Bytes()}, nil
}

// Usage tells the operator how to install the generated colorscheme.
func (p *Plugin) Usage(writtenFiles []string) string {
	if len(writtenFiles) == 0 {
		return ""
	}
	return fmt.Sprintf("Neovim: copy to ~/.config/nvim/colors/ and add to init.vim:\n  colorscheme %s", p.themeName)
}
