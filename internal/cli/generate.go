package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
	"github.com/jmylchreest/palgen/internal/image"
	"github.com/jmylchreest/palgen/internal/output"
	"github.com/jmylchreest/palgen/internal/output/kitty"
	"github.com/jmylchreest/palgen/internal/output/neovim"
	"github.com/jmylchreest/palgen/internal/output/tmux"
)

// generateOptions holds the flag state for one generate invocation.
type generateOptions struct {
	colours   int
	outputs   []string
	outputDir string
	seed      int64
	preview   bool
	dryRun    bool
	overrides map[string]string
}

// newGenerateCmd builds the generate command with all emitters registered.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	registry := output.NewRegistry()
	registry.Register(kitty.New())
	registry.Register(tmux.New())
	registry.Register(neovim.New())

	cmd := &cobra.Command{
		Use:   "generate <image>",
		Short: "Generate terminal colour scheme files from a wallpaper",
		Long: `Generate terminal colour scheme configuration from a wallpaper image.

The image is downsampled and clustered into dominant colours, which are
deduplicated into a palette and mapped onto the 16 ANSI slots plus the
background, foreground, cursor and selection roles. Every foreground-ish
colour is then nudged until it reads against the background at the WCAG AA
contrast ratio (4.5:1) or the adjustment budget runs out.

If a directory is given instead of a file, a random image from it is used.
HTTP(S) URLs are fetched.

Examples:
  # Generate a kitty theme (the default output)
  palgen generate wallpaper.jpg

  # Generate everything
  palgen generate --outputs all wallpaper.png

  # Random wallpaper from a directory, without the palette preview
  palgen generate --preview=false ~/Pictures/walls

  # Pin a slot before contrast correction runs
  palgen generate --colour color4=#6699cc wallpaper.jpg

  # Preview without writing files
  palgen generate --dry-run --outputs kitty,tmux wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts, registry)
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 16, "number of colours to extract (1-256)")
	cmd.Flags().StringSliceVarP(&opts.outputs, "outputs", "o", []string{"kitty"}, "output emitters (comma-separated, or 'all')")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "directory to write generated files to")
	cmd.Flags().Int64Var(&opts.seed, "seed", colour.DefaultSeed, "clustering seed (fixed for deterministic output)")
	cmd.Flags().BoolVar(&opts.preview, "preview", true, "show a palette preview in the terminal")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would be written without writing files")
	cmd.Flags().StringToStringVar(&opts.overrides, "colour", nil, "scheme overrides applied before contrast correction (key=#rrggbb, repeatable)")

	for _, plugin := range registry.All() {
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

// runGenerate executes the full pipeline: image -> clusters -> palette ->
// scheme -> contrast correction -> emitters.
func runGenerate(cmd *cobra.Command, imagePath string, opts *generateOptions, registry *output.Registry) error {
	logger := newLogger(cmd)

	if opts.colours < 1 || opts.colours > 256 {
		return fmt.Errorf("colour count must be between 1 and 256, got %d", opts.colours)
	}

	plugins, err := selectPlugins(registry, opts.outputs)
	if err != nil {
		return err
	}
	for _, plugin := range plugins {
		if err := plugin.Validate(); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", plugin.Name(), err)
		}
	}

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	logger.Debug("loading image", "path", resolved)

	img, err := image.NewSmartLoader().Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	logger.Debug("image loaded", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	// Extraction failure halts the run before any scheme is synthesized;
	// no partial output is ever written.
	sampler := colour.NewSampler(colour.NewKMeansWithSeed(opts.seed))
	clusters, err := sampler.Sample(img, opts.colours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("clustering complete", "clusters", len(clusters), "seed", opts.seed)

	palette := colour.ExtractPalette(clusters, opts.colours)
	logger.Debug("palette extracted", "colours", palette.Len())

	scheme, err := colour.Synthesize(palette)
	if err != nil {
		return fmt.Errorf("failed to synthesize scheme: %w", err)
	}

	for key, hexValue := range opts.overrides {
		c, err := colour.ParseHex(hexValue)
		if err != nil {
			return fmt.Errorf("invalid --colour override for %s: %w", key, err)
		}
		if err := scheme.Set(key, c); err != nil {
			return fmt.Errorf("invalid --colour override: %w", err)
		}
		logger.Debug("override applied", "key", key, "colour", hexValue)
	}

	colour.CorrectScheme(scheme)
	if err := scheme.Validate(); err != nil {
		return fmt.Errorf("corrected scheme is incomplete: %w", err)
	}

	written, err := emit(cmd, plugins, scheme, opts, logger)
	if err != nil {
		return err
	}

	printDiagnostics(cmd, palette, scheme, written, plugins, opts)

	return nil
}

// emit renders every selected emitter and writes the results, honouring
// dry-run mode. Returns the written (or would-be-written) paths per emitter.
func emit(cmd *cobra.Command, plugins []output.Plugin, scheme colour.Scheme, opts *generateOptions, logger hclog.Logger) (map[string][]string, error) {
	if !opts.dryRun {
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	written := make(map[string][]string, len(plugins))
	for _, plugin := range plugins {
		files, err := plugin.Generate(scheme)
		if err != nil {
			return nil, fmt.Errorf("%s generation failed: %w", plugin.Name(), err)
		}

		var paths []string
		for filename, content := range files {
			path := filepath.Join(opts.outputDir, filename)
			if opts.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] would write %s (%d bytes)\n", path, len(content))
			} else {
				if err := os.WriteFile(path, content, 0o644); err != nil {
					return nil, fmt.Errorf("failed to write %s: %w", path, err)
				}
				logger.Debug("file written", "emitter", plugin.Name(), "path", path)
			}
			paths = append(paths, path)
		}
		written[plugin.Name()] = paths

		if hook, ok := plugin.(output.PostExecuteHook); ok && !opts.dryRun {
			if err := hook.PostExecute(cmd.Context(), paths); err != nil {
				// Reload failures are advisory; the files are already on disk.
				logger.Warn("post-generation hook failed", "emitter", plugin.Name(), "error", err)
			}
		}
	}

	return written, nil
}

// selectPlugins resolves the --outputs flag against the registry.
func selectPlugins(registry *output.Registry, names []string) ([]output.Plugin, error) {
	if len(names) == 1 && names[0] == "all" {
		return registry.All(), nil
	}

	plugins := make([]output.Plugin, 0, len(names))
	for _, name := range names {
		plugin, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output %q (available: %v)", name, registry.Names())
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}

// printDiagnostics reports the palette, the measured background/foreground
// contrast and the generated files. Observational output only.
func printDiagnostics(cmd *cobra.Command, palette *colour.Palette, scheme colour.Scheme, written map[string][]string, plugins []output.Plugin, opts *generateOptions) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "✓ Extracted %d colours from wallpaper\n", palette.Len())
	fmt.Fprintf(out, "✓ Background: %s\n", scheme[colour.KeyBackground].Hex())
	fmt.Fprintf(out, "✓ Foreground: %s\n", scheme[colour.KeyForeground].Hex())

	ratio := colour.ContrastRatio(scheme[colour.KeyBackground], scheme[colour.KeyForeground])
	fmt.Fprintf(out, "✓ Contrast ratio: %.2f:1 (WCAG %s)\n", ratio, colour.ContrastLabel(ratio))

	if opts.preview {
		fmt.Fprintln(out, "\nColour palette:")
		for i, c := range palette.Colours {
			if i >= 8 {
				break
			}
			fmt.Fprintf(out, "  %d: %s\n", i+1, colour.FormatColourWithPreview(c, 8))
		}
	}

	fmt.Fprintln(out, "\nGenerated files:")
	for _, plugin := range plugins {
		for _, path := range written[plugin.Name()] {
			fmt.Fprintf(out, "  %s: %s\n", plugin.Name(), path)
		}
	}

	for _, plugin := range plugins {
		if usage := plugin.Usage(written[plugin.Name()]); usage != "" {
			fmt.Fprintf(out, "\n%s\n", usage)
		}
	}
}

// newLogger builds the diagnostic logger, at debug level when --verbose is
// set and warnings-only otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "palgen",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
