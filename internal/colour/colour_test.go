package colour

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "mixed", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1a2b3c"},
		{name: "near black", rgb: RGB{R: 10, G: 10, B: 10}, want: "#0a0a0a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "lowercase", input: "#1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "uppercase", input: "#1A2B3C", want: RGB{R: 26, G: 43, B: 60}},
		{name: "white", input: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
		{name: "whitespace", input: " #ff0000 ", want: RGB{R: 255, G: 0, B: 0}},
		{name: "missing hash", input: "ffffff", wantErr: true},
		{name: "too short", input: "#fff0", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOffsetClamps(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		delta int
		want  RGB
	}{
		{name: "lighten", rgb: RGB{R: 10, G: 20, B: 30}, delta: 30, want: RGB{R: 40, G: 50, B: 60}},
		{name: "darken", rgb: RGB{R: 100, G: 100, B: 100}, delta: -50, want: RGB{R: 50, G: 50, B: 50}},
		{name: "clamp high", rgb: RGB{R: 240, G: 250, B: 200}, delta: 30, want: RGB{R: 255, G: 255, B: 230}},
		{name: "clamp low", rgb: RGB{R: 5, G: 100, B: 0}, delta: -10, want: RGB{R: 0, G: 90, B: 0}},
		{name: "zero delta", rgb: RGB{R: 1, G: 2, B: 3}, delta: 0, want: RGB{R: 1, G: 2, B: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Offset(tt.delta); got != tt.want {
				t.Errorf("Offset(%d) = %+v, want %+v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{name: "identical", a: RGB{R: 10, G: 20, B: 30}, b: RGB{R: 10, G: 20, B: 30}, want: 0},
		{name: "3-4-5 triangle", a: RGB{R: 0, G: 0, B: 0}, b: RGB{R: 3, G: 4, B: 0}, want: 5},
		{name: "single channel", a: RGB{R: 0, G: 0, B: 0}, b: RGB{R: 20, G: 0, B: 0}, want: 20},
		{name: "black to white", a: RGB{R: 0, G: 0, B: 0}, b: RGB{R: 255, G: 255, B: 255}, want: 255 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Distance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestLuminanceEndpoints(t *testing.T) {
	if got := Luminance(RGB{R: 0, G: 0, B: 0}); math.Abs(got) > epsilon {
		t.Errorf("Luminance(black) = %g, want 0", got)
	}
	if got := Luminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1.0) > epsilon {
		t.Errorf("Luminance(white) = %g, want 1", got)
	}
}

func TestLuminanceBounds(t *testing.T) {
	// Sweep a coarse grid of the colour cube; every luminance must land in
	// [0, 1] and increase monotonically on the grey axis.
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				lum := Luminance(RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
				if lum < 0 || lum > 1 {
					t.Fatalf("Luminance(%d,%d,%d) = %g, out of [0,1]", r, g, b, lum)
				}
			}
		}
	}

	prev := -1.0
	for v := 0; v <= 255; v++ {
		lum := Luminance(RGB{R: uint8(v), G: uint8(v), B: uint8(v)})
		if lum <= prev {
			t.Fatalf("grey luminance not increasing at %d: %g <= %g", v, lum, prev)
		}
		prev = lum
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	colours := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 10, G: 10, B: 10},
		{R: 240, G: 240, B: 240},
		{R: 204, G: 102, B: 102},
		{R: 102, G: 153, B: 204},
		{R: 1, G: 2, B: 3},
	}

	for _, a := range colours {
		for _, b := range colours {
			if got, want := ContrastRatio(a, b), ContrastRatio(b, a); math.Abs(got-want) > epsilon {
				t.Errorf("ContrastRatio(%v, %v) = %g, reversed = %g", a, b, got, want)
			}
		}
	}
}

func TestContrastRatioRange(t *testing.T) {
	maxRatio := ContrastRatio(RGB{R: 0, G: 0, B: 0}, RGB{R: 255, G: 255, B: 255})
	if math.Abs(maxRatio-21.0) > 1e-9 {
		t.Errorf("black/white contrast = %g, want 21", maxRatio)
	}

	same := ContrastRatio(RGB{R: 120, G: 40, B: 200}, RGB{R: 120, G: 40, B: 200})
	if math.Abs(same-1.0) > epsilon {
		t.Errorf("self contrast = %g, want 1", same)
	}
}

func TestContrastLabel(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "AAA boundary", ratio: 7.0, want: "AAA"},
		{name: "AAA above", ratio: 16.8, want: "AAA"},
		{name: "AA boundary", ratio: 4.5, want: "AA"},
		{name: "AA mid", ratio: 5.2, want: "AA"},
		{name: "fail below AA", ratio: 4.49, want: "Fail"},
		{name: "fail minimum", ratio: 1.0, want: "Fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastLabel(tt.ratio); got != tt.want {
				t.Errorf("ContrastLabel(%g) = %q, want %q", tt.ratio, got, tt.want)
			}
		})
	}
}
