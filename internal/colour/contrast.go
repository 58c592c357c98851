package colour

import "strings"

const (
	// TargetContrast is the WCAG AA threshold for normal text.
	TargetContrast = 4.5

	// correctionIterations bounds the adjustment search. The best colour
	// found within the budget is kept even when the target was never
	// reached; correction is best-effort, not a guarantee.
	correctionIterations = 8

	// initialStep is the starting per-channel step, half the channel range.
	initialStep = 128
)

// Correctable reports whether a scheme key is eligible for contrast
// correction: the ANSI slots and the foreground. The background is the fixed
// reference and the decorative cursor/selection roles are left alone.
func Correctable(key string) bool {
	return strings.HasPrefix(key, "color") || key == KeyForeground
}

// CorrectScheme raises the contrast ratio of every eligible scheme entry
// against the background to at least TargetContrast where possible, mutating
// the scheme in place.
func CorrectScheme(s Scheme) {
	background := s[KeyBackground]
	for key, c := range s {
		if !Correctable(key) {
			continue
		}
		s[key] = CorrectColour(c, background, TargetContrast)
	}
}

// CorrectColour nudges c until its contrast ratio against background meets
// the target, or the search budget runs out.
//
// The direction (lighten on a dark background, darken on a light one) is
// chosen once up front. Each iteration applies direction*step to every
// channel; when the candidate meets the target it is accepted, the step is
// halved and the direction flipped so the search refines from the other
// side. When it misses, only the step is halved. The flip-on-success rule is
// unusual for a bisection but downstream golden files depend on it, so it is
// kept exactly as is.
func CorrectColour(c, background RGB, target float64) RGB {
	if ContrastRatio(c, background) >= target {
		return c
	}

	direction := -1
	if Luminance(background) < 0.5 {
		direction = 1
	}

	adjusted := c
	step := initialStep
	for i := 0; i < correctionIterations; i++ {
		candidate := adjusted.Offset(direction * step)
		if ContrastRatio(candidate, background) >= target {
			adjusted = candidate
			step /= 2
			direction = -direction
		} else {
			step /= 2
		}
	}

	return adjusted
}
