package platzhalter

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color parsing errors. Both surface as "treat the value as absent" in
// request parsing, but they are distinct for callers that parse directly.
var (
	ErrInvalidColorLength = errors.New("only hex strings of length 3 or 6 are supported")
	ErrInvalidColorHex    = errors.New("values of the triplet must be valid hex")
)

// opaqueMarker is the alpha assigned to every parsed Color. Hex triplets
// carry no alpha component; the marker is 1, not 255, and every drawing path
// is RGB-only, so the stored value is never observable in output.
const opaqueMarker = 1

// Color is an 8-bit RGB color parsed from a hex triplet. Construct it with
// ParseHex only; it is immutable afterwards.
type Color struct {
	R, G, B, A uint8
}

// ScaledColor holds channels scaled to [0,1] for luminance math. Alpha is
// carried through unscaled.
type ScaledColor struct {
	R, G, B, A float64
}

// PerceivedLuminance classifies a color as visually light or dark.
type PerceivedLuminance int

const (
	Dark PerceivedLuminance = iota
	Light
)

// ParseHex parses a 3- or 6-character hex triplet without a leading '#'.
// Shorthand input is expanded by doubling each character, so "abc" parses
// the same as "aabbcc". Parsing is case-insensitive.
func ParseHex(hex string) (Color, error) {
	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, ErrInvalidColorLength
	}
	hex = strings.ToLower(hex)
	if len(hex) == 3 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorHex, hex[i*2:i*2+2])
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: opaqueMarker}, nil
}

// mustHex parses a built-in palette constant and panics on failure.
func mustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic("platzhalter: bad builtin color " + hex + ": " + err.Error())
	}
	return c
}

// ToScaled maps each 8-bit channel to [0,1]. Alpha passes through as-is.
func (c Color) ToScaled() ScaledColor {
	return ScaledColor{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
		A: float64(c.A),
	}
}

// NRGBA returns the color ready for drawing at the given opacity. The alpha
// here is the draw opacity; the stored alpha marker is never read.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// PerceivedLuminance classifies the color by its CIE L* lightness: channels
// are linearized, combined into relative luminance, and mapped to perceptual
// lightness. Light means dark text is legible on it, and vice versa.
func (c Color) PerceivedLuminance() PerceivedLuminance {
	s := c.ToScaled()
	y := 0.2126*srgbToLinear(s.R) + 0.7152*srgbToLinear(s.G) + 0.0722*srgbToLinear(s.B)
	if luminanceToLightness(y) >= 80 {
		return Light
	}
	return Dark
}

// srgbToLinear undoes the sRGB transfer function for one channel.
func srgbToLinear(channel float64) float64 {
	if channel <= 0.04045 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// luminanceToLightness maps relative luminance Y to CIE L*, where 0 is
// black and 100 is diffuse white.
func luminanceToLightness(y float64) float64 {
	if y <= 216.0/24389.0 {
		return y * (24389.0 / 27.0)
	}
	return math.Pow(y, 1.0/3.0)*116 - 16
}
