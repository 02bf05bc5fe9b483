package platzhalter

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseHexShorthandExpansion(t *testing.T) {
	short, err := ParseHex("abc")
	if err != nil {
		t.Fatalf("ParseHex(abc) failed: %v", err)
	}
	long, err := ParseHex("aabbcc")
	if err != nil {
		t.Fatalf("ParseHex(aabbcc) failed: %v", err)
	}
	if short != long {
		t.Errorf("shorthand %+v != expanded %+v", short, long)
	}
	if short.R != 0xaa || short.G != 0xbb || short.B != 0xcc {
		t.Errorf("channels = %+v, want aa/bb/cc", short)
	}
}

func TestParseHexCaseInsensitive(t *testing.T) {
	upper, err := ParseHex("FFF")
	if err != nil {
		t.Fatalf("ParseHex(FFF) failed: %v", err)
	}
	lower, err := ParseHex("ffffff")
	if err != nil {
		t.Fatalf("ParseHex(ffffff) failed: %v", err)
	}
	if upper != lower {
		t.Errorf("ParseHex(FFF) = %+v, ParseHex(ffffff) = %+v", upper, lower)
	}
}

func TestParseHexInvalidLength(t *testing.T) {
	for _, hex := range []string{"", "f", "ff", "ffff", "fffff", "fffffff"} {
		if _, err := ParseHex(hex); !errors.Is(err, ErrInvalidColorLength) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColorLength", hex, err)
		}
	}
}

func TestParseHexInvalidHex(t *testing.T) {
	for _, hex := range []string{"12g", "zzz", "12345z"} {
		if _, err := ParseHex(hex); !errors.Is(err, ErrInvalidColorHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColorHex", hex, err)
		}
	}
}

func TestParseHexAlphaMarker(t *testing.T) {
	c, err := ParseHex("336699")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c.A != opaqueMarker {
		t.Errorf("A = %d, want the opaque marker %d", c.A, opaqueMarker)
	}
}

func TestToScaled(t *testing.T) {
	c, err := ParseHex("ff0080")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	s := c.ToScaled()
	if s.R != 1.0 {
		t.Errorf("R = %v, want 1.0", s.R)
	}
	if s.G != 0.0 {
		t.Errorf("G = %v, want 0.0", s.G)
	}
	if got, want := s.B, float64(0x80)/255.0; got != want {
		t.Errorf("B = %v, want %v", got, want)
	}
	if s.A != float64(opaqueMarker) {
		t.Errorf("A = %v, want %v passed through unscaled", s.A, float64(opaqueMarker))
	}
}

func TestPerceivedLuminance(t *testing.T) {
	tests := []struct {
		hex  string
		want PerceivedLuminance
	}{
		{"FFFFFF", Light},
		{"000000", Dark},
		{"FFD8C2", Light}, // default peach background
		{"111827", Dark},
		{"F9FAFB", Light},
		{"336699", Dark},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.hex)
		if err != nil {
			t.Fatalf("ParseHex(%s) failed: %v", tt.hex, err)
		}
		if got := c.PerceivedLuminance(); got != tt.want {
			t.Errorf("PerceivedLuminance(%s) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

// TestLightnessMatchesColorful cross-checks the lightness model against
// go-colorful's independent CIE Lab implementation.
func TestLightnessMatchesColorful(t *testing.T) {
	for _, hex := range []string{"FFFFFF", "000000", "FFD8C2", "336699", "ff0080", "808080", "123456"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%s) failed: %v", hex, err)
		}
		s := c.ToScaled()
		y := 0.2126*srgbToLinear(s.R) + 0.7152*srgbToLinear(s.G) + 0.0722*srgbToLinear(s.B)
		got := luminanceToLightness(y)

		l, _, _ := colorful.Color{R: s.R, G: s.G, B: s.B}.Lab()
		want := l * 100
		if math.Abs(got-want) > 0.5 {
			t.Errorf("lightness(%s) = %v, colorful says %v", hex, got, want)
		}
	}
}
