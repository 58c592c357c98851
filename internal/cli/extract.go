package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/colour"
	"github.com/jmylchreest/palgen/internal/image"
)

// extractOptions holds the flag state for one extract invocation.
type extractOptions struct {
	colours int
	format  string
	output  string
	seed    int64
	preview bool
}

// newExtractCmd builds the extract command.
func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a colour palette from an image",
		Long: `Extract the dominant colour palette from an image without synthesizing a
terminal scheme.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 16 colours (default)
  palgen extract wallpaper.jpg

  # Extract 8 colours with terminal previews
  palgen extract --preview -c 8 wallpaper.png

  # Extract colours as JSON
  palgen extract --format json wallpaper.jpg

  # Save the palette to a file
  palgen extract -f rgb --output palette.txt wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 16, "number of colours to extract (1-256)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Int64Var(&opts.seed, "seed", colour.DefaultSeed, "clustering seed (fixed for deterministic output)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in the terminal")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, imagePath string, opts *extractOptions) error {
	if opts.colours < 1 || opts.colours > 256 {
		return fmt.Errorf("colour count must be between 1 and 256, got %d", opts.colours)
	}

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	img, err := image.NewSmartLoader().Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	sampler := colour.NewSampler(colour.NewKMeansWithSeed(opts.seed))
	clusters, err := sampler.Sample(img, opts.colours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	palette := colour.ExtractPalette(clusters, opts.colours)

	text, err := formatPalette(palette, opts.format, opts.preview)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// formatPalette renders the palette according to the requested format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		var b strings.Builder
		for _, c := range palette.Colours {
			if showPreview {
				b.WriteString(colour.FormatColourWithPreview(c, 8))
			} else {
				b.WriteString(c.Hex())
			}
			b.WriteByte('\n')
		}
		return b.String(), nil
	case "rgb":
		var b strings.Builder
		for _, c := range palette.Colours {
			if showPreview {
				b.WriteString(colour.ColourPreview(c, 8))
				b.WriteString("  ")
			}
			b.WriteString(c.String())
			b.WriteByte('\n')
		}
		return b.String(), nil
	case "json":
		jsonBytes, err := json.MarshalIndent(palette.ToHex(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
