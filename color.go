package motion

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is an immutable RGB triple with integer channels in [0, 255].
// Construct one with RGB, ParseColor, or HSL.RGB; derived shades come from
// Darker and Brighter. The zero value is black.
type Color struct {
	R, G, B int
}

// RGB returns a Color with each channel clamped to [0, 255].
func RGB(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// rgbFloat rounds fractional channels into a Color. NaN channels become 0,
// matching the formatter contract (never emit garbage hex digits).
func rgbFloat(r, g, b float64) Color {
	return Color{roundChannel(r), roundChannel(g), roundChannel(b)}
}

func roundChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return clampChannel(int(math.Round(v)))
}

// Hex encodes the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// shadeBase is the per-step scaling factor shared by Darker and Brighter.
const shadeBase = 0.7

// Darker returns a copy with each channel scaled by 0.7^k.
// k = 1 is one standard step darker.
func (c Color) Darker(k float64) Color {
	f := math.Pow(shadeBase, k)
	return rgbFloat(float64(c.R)*f, float64(c.G)*f, float64(c.B)*f)
}

// Brighter returns a copy with each channel scaled by (1/0.7)^k.
func (c Color) Brighter(k float64) Color {
	f := math.Pow(1/shadeBase, k)
	return rgbFloat(float64(c.R)*f, float64(c.G)*f, float64(c.B)*f)
}

// HSL is a hue/saturation/lightness triple. H is in degrees; negative values
// and values past 360 wrap. S and L are clamped to [0, 1] on conversion.
// H is NaN for achromatic colors (R == G == B), where hue is undefined.
type HSL struct {
	H, S, L float64
}

// HSL converts the color to hue/saturation/lightness.
// For achromatic input the hue is NaN and saturation is 0.
func (c Color) HSL() HSL {
	r := float64(clampChannel(c.R)) / 255
	g := float64(clampChannel(c.G)) / 255
	b := float64(clampChannel(c.B)) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: math.NaN(), S: 0, L: l}
	}

	d := max - min
	var s float64
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{H: h * 60, S: s, L: l}
}

// RGB converts back to an integer RGB triple. NaN hue is treated as 0
// (achromatic colors are unaffected since their saturation is 0).
func (h HSL) RGB() Color {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	if math.IsNaN(h.H) {
		hue = 0
	}
	s := clamp01(h.S)
	l := clamp01(h.L)

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return rgbFloat(
		hueChannel(m1, m2, hue+120)*255,
		hueChannel(m1, m2, hue)*255,
		hueChannel(m1, m2, hue-120)*255,
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hueChannel(m1, m2, h float64) float64 {
	if h > 360 {
		h -= 360
	} else if h < 0 {
		h += 360
	}
	switch {
	case h < 60:
		return m1 + (m2-m1)*h/60
	case h < 180:
		return m2
	case h < 240:
		return m1 + (m2-m1)*(240-h)/60
	default:
		return m1
	}
}

var (
	reHex3   = regexp.MustCompile(`^#([0-9a-f]{3})$`)
	reHex6   = regexp.MustCompile(`^#([0-9a-f]{6})$`)
	reRGB    = regexp.MustCompile(`^rgb\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)$`)
	reRGBPct = regexp.MustCompile(`^rgb\(\s*(-?\d+(?:\.\d+)?)%\s*,\s*(-?\d+(?:\.\d+)?)%\s*,\s*(-?\d+(?:\.\d+)?)%\s*\)$`)
	reHSL    = regexp.MustCompile(`^hsl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)%\s*,\s*(-?\d+(?:\.\d+)?)%\s*\)$`)
)

// ParseColor parses a CSS color string: "#rgb", "#rrggbb", "rgb(r,g,b)",
// "rgb(r%,g%,b%)", "hsl(h,s%,l%)", or a named CSS color. Input is trimmed
// and matched case-insensitively. Returns ok=false for anything else; a
// failed parse is the signal for generic interpolation to take over, so
// malformed colors are never an error.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if m := reHex3.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 16)
		r := int(v >> 8 & 0xf)
		g := int(v >> 4 & 0xf)
		b := int(v & 0xf)
		return Color{r<<4 | r, g<<4 | g, b<<4 | b}, true
	}
	if m := reHex6.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return Color{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
	}
	if m := reRGB.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return RGB(r, g, b), true
	}
	if m := reRGBPct.FindStringSubmatch(s); m != nil {
		r, _ := strconv.ParseFloat(m[1], 64)
		g, _ := strconv.ParseFloat(m[2], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		return rgbFloat(r*255/100, g*255/100, b*255/100), true
	}
	if m := reHSL.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return HSL{H: h, S: sat / 100, L: l / 100}.RGB(), true
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	return Color{}, false
}

// namedColors is the standard CSS named color table.
var namedColors = map[string]Color{
	"aliceblue":            {240, 248, 255},
	"antiquewhite":         {250, 235, 215},
	"aqua":                 {0, 255, 255},
	"aquamarine":           {127, 255, 212},
	"azure":                {240, 255, 255},
	"beige":                {245, 245, 220},
	"bisque":               {255, 228, 196},
	"black":                {0, 0, 0},
	"blanchedalmond":       {255, 235, 205},
	"blue":                 {0, 0, 255},
	"blueviolet":           {138, 43, 226},
	"brown":                {165, 42, 42},
	"burlywood":            {222, 184, 135},
	"cadetblue":            {95, 158, 160},
	"chartreuse":           {127, 255, 0},
	"chocolate":            {210, 105, 30},
	"coral":                {255, 127, 80},
	"cornflowerblue":       {100, 149, 237},
	"cornsilk":             {255, 248, 220},
	"crimson":              {220, 20, 60},
	"cyan":                 {0, 255, 255},
	"darkblue":             {0, 0, 139},
	"darkcyan":             {0, 139, 139},
	"darkgoldenrod":        {184, 134, 11},
	"darkgray":             {169, 169, 169},
	"darkgreen":            {0, 100, 0},
	"darkgrey":             {169, 169, 169},
	"darkkhaki":            {189, 183, 107},
	"darkmagenta":          {139, 0, 139},
	"darkolivegreen":       {85, 107, 47},
	"darkorange":           {255, 140, 0},
	"darkorchid":           {153, 50, 204},
	"darkred":              {139, 0, 0},
	"darksalmon":           {233, 150, 122},
	"darkseagreen":         {143, 188, 143},
	"darkslateblue":        {72, 61, 139},
	"darkslategray":        {47, 79, 79},
	"darkslategrey":        {47, 79, 79},
	"darkturquoise":        {0, 206, 209},
	"darkviolet":           {148, 0, 211},
	"deeppink":             {255, 20, 147},
	"deepskyblue":          {0, 191, 255},
	"dimgray":              {105, 105, 105},
	"dimgrey":              {105, 105, 105},
	"dodgerblue":           {30, 144, 255},
	"firebrick":            {178, 34, 34},
	"floralwhite":          {255, 250, 240},
	"forestgreen":          {34, 139, 34},
	"fuchsia":              {255, 0, 255},
	"gainsboro":            {220, 220, 220},
	"ghostwhite":           {248, 248, 255},
	"gold":                 {255, 215, 0},
	"goldenrod":            {218, 165, 32},
	"gray":                 {128, 128, 128},
	"green":                {0, 128, 0},
	"greenyellow":          {173, 255, 47},
	"grey":                 {128, 128, 128},
	"honeydew":             {240, 255, 240},
	"hotpink":              {255, 105, 180},
	"indianred":            {205, 92, 92},
	"indigo":               {75, 0, 130},
	"ivory":                {255, 255, 240},
	"khaki":                {240, 230, 140},
	"lavender":             {230, 230, 250},
	"lavenderblush":        {255, 240, 245},
	"lawngreen":            {124, 252, 0},
	"lemonchiffon":         {255, 250, 205},
	"lightblue":            {173, 216, 230},
	"lightcoral":           {240, 128, 128},
	"lightcyan":            {224, 255, 255},
	"lightgoldenrodyellow": {250, 250, 210},
	"lightgray":            {211, 211, 211},
	"lightgreen":           {144, 238, 144},
	"lightgrey":            {211, 211, 211},
	"lightpink":            {255, 182, 193},
	"lightsalmon":          {255, 160, 122},
	"lightseagreen":        {32, 178, 170},
	"lightskyblue":         {135, 206, 250},
	"lightslategray":       {119, 136, 153},
	"lightslategrey":       {119, 136, 153},
	"lightsteelblue":       {176, 196, 222},
	"lightyellow":          {255, 255, 224},
	"lime":                 {0, 255, 0},
	"limegreen":            {50, 205, 50},
	"linen":                {250, 240, 230},
	"magenta":              {255, 0, 255},
	"maroon":               {128, 0, 0},
	"mediumaquamarine":     {102, 205, 170},
	"mediumblue":           {0, 0, 205},
	"mediumorchid":         {186, 85, 211},
	"mediumpurple":         {147, 112, 219},
	"mediumseagreen":       {60, 179, 113},
	"mediumslateblue":      {123, 104, 238},
	"mediumspringgreen":    {0, 250, 154},
	"mediumturquoise":      {72, 209, 204},
	"mediumvioletred":      {199, 21, 133},
	"midnightblue":         {25, 25, 112},
	"mintcream":            {245, 255, 250},
	"mistyrose":            {255, 228, 225},
	"moccasin":             {255, 228, 181},
	"navajowhite":          {255, 222, 173},
	"navy":                 {0, 0, 128},
	"oldlace":              {253, 245, 230},
	"olive":                {128, 128, 0},
	"olivedrab":            {107, 142, 35},
	"orange":               {255, 165, 0},
	"orangered":            {255, 69, 0},
	"orchid":               {218, 112, 214},
	"palegoldenrod":        {238, 232, 170},
	"palegreen":            {152, 251, 152},
	"paleturquoise":        {175, 238, 238},
	"palevioletred":        {219, 112, 147},
	"papayawhip":           {255, 239, 213},
	"peachpuff":            {255, 218, 185},
	"peru":                 {205, 133, 63},
	"pink":                 {255, 192, 203},
	"plum":                 {221, 160, 221},
	"powderblue":           {176, 224, 230},
	"purple":               {128, 0, 128},
	"rebeccapurple":        {102, 51, 153},
	"red":                  {255, 0, 0},
	"rosybrown":            {188, 143, 143},
	"royalblue":            {65, 105, 225},
	"saddlebrown":          {139, 69, 19},
	"salmon":               {250, 128, 114},
	"sandybrown":           {244, 164, 96},
	"seagreen":             {46, 139, 87},
	"seashell":             {255, 245, 238},
	"sienna":               {160, 82, 45},
	"silver":               {192, 192, 192},
	"skyblue":              {135, 206, 235},
	"slateblue":            {106, 90, 205},
	"slategray":            {112, 128, 144},
	"slategrey":            {112, 128, 144},
	"snow":                 {255, 250, 250},
	"springgreen":          {0, 255, 127},
	"steelblue":            {70, 130, 180},
	"tan":                  {210, 180, 140},
	"teal":                 {0, 128, 128},
	"thistle":              {216, 191, 216},
	"tomato":               {255, 99, 71},
	"turquoise":            {64, 224, 208},
	"violet":               {238, 130, 238},
	"wheat":                {245, 222, 179},
	"white":                {255, 255, 255},
	"whitesmoke":           {245, 245, 245},
	"yellow":               {255, 255, 0},
	"yellowgreen":          {154, 205, 50},
}
