package platzhalter

import "math"

// Built-in palette. Backgrounds default to peach; label colors are a
// near-black and a near-white picked for contrast against whatever
// background ends up behind them.
var (
	defaultBackground = mustHex("FFD8C2")
	defaultBorder     = mustHex("000")
	textOnLight       = mustHex("111827")
	textOnDark        = mustHex("F9FAFB")
)

// watermarkMinWidth is the narrowest canvas that still gets a watermark.
const watermarkMinWidth = 200

const (
	watermarkMinFontSize = 12
	watermarkMaxFontSize = 40
)

// TextSpan describes one piece of text to draw: content, point size, weight
// and opacity. Placement is resolved by the renderer from measured ink
// extents.
type TextSpan struct {
	Text  string
	Size  float64
	Bold  bool
	Alpha uint8
}

// Layout is the complete draw plan for one placeholder image.
type Layout struct {
	Width, Height int
	Background    Color
	BorderColor   Color
	BorderSize    int // 0 draws no border
	TextColor     Color
	Label         TextSpan
	Watermark     *TextSpan // nil when the canvas is too narrow
}

// ComposeLayout resolves a request into a draw plan: defaults applied, the
// contrast text color selected from the background's perceived luminance,
// and font sizes derived from the canvas width.
func ComposeLayout(spec *RequestSpec, watermark string) Layout {
	l := Layout{
		Width:      spec.Width,
		Height:     spec.Height,
		Background: defaultBackground,
	}
	if spec.Config.Background != nil {
		l.Background = *spec.Config.Background
	}

	// A border is drawn only when a thickness was explicitly requested; the
	// border color alone does nothing.
	if spec.Config.BorderSize != nil {
		l.BorderSize = int(*spec.Config.BorderSize)
		l.BorderColor = defaultBorder
		if spec.Config.Border != nil {
			l.BorderColor = *spec.Config.Border
		}
	}

	switch l.Background.PerceivedLuminance() {
	case Light:
		l.TextColor = textOnLight
	case Dark:
		l.TextColor = textOnDark
	}

	l.Label = TextSpan{
		Text:  spec.RawDimensions,
		Size:  float64(spec.Width) / float64(len(spec.RawDimensions)) * 1.2,
		Bold:  true,
		Alpha: 255,
	}

	if spec.Width >= watermarkMinWidth && watermark != "" {
		size := float64(spec.Width) / float64(len(watermark))
		size = math.Min(math.Max(size, watermarkMinFontSize), watermarkMaxFontSize)
		l.Watermark = &TextSpan{Text: watermark, Size: size, Alpha: 128}
	}

	return l
}
