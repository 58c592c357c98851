package colour

import (
	"fmt"
	"strings"
)

// Scheme key names for the special (non-ANSI) roles.
const (
	KeyBackground          = "background"
	KeyForeground          = "foreground"
	KeyCursor              = "cursor"
	KeyCursorTextColor     = "cursor_text_color"
	KeySelectionBackground = "selection_background"
	KeySelectionForeground = "selection_foreground"
)

// Brightening offsets applied per channel when synthesizing slots that have
// no direct palette entry.
const (
	brightSlotOffset  = 30 // bright variants of colour1-6 and colour15
	brightBlackOffset = 50 // colour8 from the background
	selectionOffset   = 40 // selection background from the background
)

// SchemeKeys lists the 22 required scheme keys in canonical order: the 16
// ANSI slots followed by the special roles.
var SchemeKeys = buildSchemeKeys()

func buildSchemeKeys() []string {
	keys := make([]string, 0, 22)
	for i := 0; i < 16; i++ {
		keys = append(keys, fmt.Sprintf("color%d", i))
	}
	return append(keys,
		KeyBackground,
		KeyForeground,
		KeyCursor,
		KeyCursorTextColor,
		KeySelectionBackground,
		KeySelectionForeground,
	)
}

// Scheme maps the 22 fixed keys (color0..color15 plus the special roles) to
// colours. A scheme is only valid output once every key is present.
type Scheme map[string]RGB

// Synthesize builds a complete Scheme from a palette of at least two
// entries.
//
// The minimum-luminance entry becomes background/color0 and the
// maximum-luminance entry becomes foreground/color7. Slots 1-6 and their
// bright counterparts 9-14 are filled positionally from the original,
// dominance-ordered palette with wraparound indexing; slot assignment is not
// hue-aware, which is a known fidelity limitation of the pipeline, preserved
// deliberately.
func Synthesize(p *Palette) (Scheme, error) {
	if p == nil || p.Len() < 2 {
		return nil, fmt.Errorf("palette needs at least 2 colours to anchor a scheme, got %d", p.Len())
	}

	background := p.Colours[0]
	foreground := p.Colours[0]
	minLum := Luminance(background)
	maxLum := minLum
	for _, c := range p.Colours[1:] {
		lum := Luminance(c)
		if lum < minLum {
			minLum = lum
			background = c
		}
		if lum >= maxLum {
			maxLum = lum
			foreground = c
		}
	}

	scheme := make(Scheme, len(SchemeKeys))

	scheme["color0"] = background
	scheme["color7"] = foreground
	for n := 1; n <= 6; n++ {
		base := p.Colours[n%p.Len()]
		scheme[fmt.Sprintf("color%d", n)] = base
		scheme[fmt.Sprintf("color%d", n+8)] = base.Offset(brightSlotOffset)
	}
	scheme["color8"] = background.Offset(brightBlackOffset)
	scheme["color15"] = foreground.Offset(brightSlotOffset)

	scheme[KeyBackground] = background
	scheme[KeyForeground] = foreground
	scheme[KeyCursor] = foreground
	scheme[KeyCursorTextColor] = background
	scheme[KeySelectionBackground] = background.Offset(selectionOffset)
	scheme[KeySelectionForeground] = foreground

	return scheme, nil
}

// Validate checks that every required key is present.
func (s Scheme) Validate() error {
	for _, key := range SchemeKeys {
		if _, ok := s[key]; !ok {
			return fmt.Errorf("scheme is missing required key %q", key)
		}
	}
	return nil
}

// ToHex returns the scheme as a map of key to lowercase hex string.
func (s Scheme) ToHex() map[string]string {
	out := make(map[string]string, len(s))
	for key, c := range s {
		out[key] = c.Hex()
	}
	return out
}

// Set assigns a colour to a key. Unknown keys are rejected so that operator
// overrides cannot introduce keys no emitter understands.
func (s Scheme) Set(key string, c RGB) error {
	for _, known := range SchemeKeys {
		if key == known {
			s[key] = c
			return nil
		}
	}
	return fmt.Errorf("unknown scheme key %q (valid keys: %s)", key, strings.Join(SchemeKeys, ", "))
}
