package motion

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// --- ParseColor ---

func TestParseColorFormats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect Color
	}{
		{"hex6", "#4682b4", Color{70, 130, 180}},
		{"hex6 upper", "#4682B4", Color{70, 130, 180}},
		{"hex3", "#fff", Color{255, 255, 255}},
		{"hex3 mixed", "#F0a", Color{255, 0, 170}},
		{"rgb", "rgb(70, 130, 180)", Color{70, 130, 180}},
		{"rgb tight", "rgb(1,2,3)", Color{1, 2, 3}},
		{"rgb clamped", "rgb(300, -5, 128)", Color{255, 0, 128}},
		{"rgb percent", "rgb(100%, 50%, 0%)", Color{255, 128, 0}},
		{"hsl red", "hsl(0, 100%, 50%)", Color{255, 0, 0}},
		{"hsl green", "hsl(120, 100%, 50%)", Color{0, 255, 0}},
		{"hsl negative hue wraps", "hsl(-120, 100%, 50%)", Color{0, 0, 255}},
		{"named", "steelblue", Color{70, 130, 180}},
		{"named case-insensitive", "SteelBlue", Color{70, 130, 180}},
		{"named trimmed", "  tomato  ", Color{255, 99, 71}},
		{"rebeccapurple", "rebeccapurple", Color{102, 51, 153}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if !ok {
				t.Fatalf("ParseColor(%q) not ok", tt.input)
			}
			if got != tt.expect {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	// A failed parse is a sentinel, not an error: generic interpolation
	// takes over for these.
	inputs := []string{"", "#12", "#12345", "#gggggg", "rgb(1,2)", "notacolor", "hsl(0,0,0)", "10px"}
	for _, in := range inputs {
		if _, ok := ParseColor(in); ok {
			t.Errorf("ParseColor(%q) unexpectedly ok", in)
		}
	}
}

// --- Hex ---

func TestHexFormatting(t *testing.T) {
	tests := []struct {
		c      Color
		expect string
	}{
		{Color{70, 130, 180}, "#4682b4"},
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 255, 255}, "#ffffff"},
		{Color{-10, 300, 128}, "#00ff80"}, // out-of-range channels clamp
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.expect {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.expect)
		}
	}
}

func TestRoundChannelNaN(t *testing.T) {
	if got := rgbFloat(math.NaN(), 128, math.NaN()); got != (Color{0, 128, 0}) {
		t.Errorf("NaN channels should clamp to 0, got %v", got)
	}
}

// --- Darker / Brighter ---

func TestDarkerBrighter(t *testing.T) {
	c := Color{100, 200, 50}

	d := c.Darker(1)
	if d != (Color{70, 140, 35}) {
		t.Errorf("Darker(1) = %v, want {70 140 35}", d)
	}

	b := Color{70, 140, 35}.Brighter(1)
	if b != (Color{100, 200, 50}) {
		t.Errorf("Brighter(1) = %v, want {100 200 50}", b)
	}

	// k = 2 applies the factor twice.
	d2 := c.Darker(2)
	if d2 != (Color{49, 98, 25}) {
		t.Errorf("Darker(2) = %v, want {49 98 25}", d2)
	}

	// Brighter saturates at white rather than overflowing.
	w := Color{250, 250, 250}.Brighter(3)
	if w != (Color{255, 255, 255}) {
		t.Errorf("Brighter(3) = %v, want white", w)
	}
}

// --- HSL ---

func TestHSLRoundTrip(t *testing.T) {
	colors := []Color{
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{70, 130, 180},
		{255, 99, 71},
		{1, 2, 3},
	}
	for _, c := range colors {
		got := c.HSL().RGB()
		if abs(got.R-c.R) > 1 || abs(got.G-c.G) > 1 || abs(got.B-c.B) > 1 {
			t.Errorf("HSL round trip of %v = %v", c, got)
		}
	}
}

func TestHSLAchromaticHueIsNaN(t *testing.T) {
	for _, c := range []Color{{0, 0, 0}, {128, 128, 128}, {255, 255, 255}} {
		h := c.HSL()
		if !math.IsNaN(h.H) {
			t.Errorf("%v hue = %v, want NaN", c, h.H)
		}
		if h.S != 0 {
			t.Errorf("%v saturation = %v, want 0", c, h.S)
		}
		// NaN hue converts back without poisoning the channels.
		if got := h.RGB(); got != c {
			t.Errorf("achromatic round trip of %v = %v", c, got)
		}
	}
}

func TestHSLNegativeHueWraps(t *testing.T) {
	// -120 degrees is the same hue as 240 degrees (blue).
	a := HSL{H: -120, S: 1, L: 0.5}.RGB()
	b := HSL{H: 240, S: 1, L: 0.5}.RGB()
	if a != b {
		t.Errorf("HSL(-120) = %v, HSL(240) = %v; want equal", a, b)
	}
}

// Cross-check chromatic conversions against go-colorful, which implements
// the same colorimetry independently.
func TestHSLAgainstColorful(t *testing.T) {
	colors := []Color{
		{255, 0, 0},
		{70, 130, 180},
		{255, 99, 71},
		{60, 179, 113},
		{138, 43, 226},
	}
	for _, c := range colors {
		ref := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		wantH, wantS, wantL := ref.Hsl()
		got := c.HSL()
		if math.Abs(got.H-wantH) > 0.5 {
			t.Errorf("%v hue = %v, colorful says %v", c, got.H, wantH)
		}
		if math.Abs(got.S-wantS) > 0.01 {
			t.Errorf("%v saturation = %v, colorful says %v", c, got.S, wantS)
		}
		if math.Abs(got.L-wantL) > 0.01 {
			t.Errorf("%v lightness = %v, colorful says %v", c, got.L, wantL)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
