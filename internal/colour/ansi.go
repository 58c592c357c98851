package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput forces plain-text previews regardless of the terminal.
var DisableColourOutput = false

// SupportsANSIColours reports whether stdout is likely to render ANSI
// truecolor escapes, i.e. it is a terminal and colour is not disabled.
func SupportsANSIColours() bool {
	if DisableColourOutput {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColourPreview returns an ANSI-coloured preview block for a colour, width
// characters wide. Falls back to an empty string when the terminal does not
// support colour.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if !SupportsANSIColours() {
		return strings.Repeat(" ", width)
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// FormatColourWithPreview formats a colour with its preview block and hex code.
func FormatColourWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(c, width), c.Hex())
}

// FormatColourWithLabel formats a colour with a preview block, a label and
// its hex code.
func FormatColourWithLabel(c RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", ColourPreview(c, width), label, c.Hex())
}
