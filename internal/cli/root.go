// Package cli provides the command-line interface for palgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palgen/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palgen",
		Short: "A wallpaper-driven terminal colour scheme generator",
		Long: `Palgen extracts a colour palette from a wallpaper image and synthesizes a
complete 16-colour terminal scheme from it, correcting foreground colours
against the background until they meet the WCAG AA contrast threshold.

The scheme can be rendered as configuration for kitty, tmux and neovim.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
