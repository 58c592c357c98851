// Palgen - a wallpaper-driven terminal colour scheme generator
//
// Palgen extracts a colour palette from a wallpaper image and generates
// colour scheme configuration for kitty, tmux and neovim.
package main

import (
	"os"

	"github.com/jmylchreest/palgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
