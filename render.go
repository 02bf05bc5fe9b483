package platzhalter

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer rasterizes layouts into PNG bytes. The fonts are parsed once at
// construction; faces are created per draw because they are sized per
// layout. Rendering is CPU-bound, so concurrent renders are bounded by a
// semaphore to keep request intake responsive.
type Renderer struct {
	bold    *opentype.Font
	regular *opentype.Font
	sem     chan struct{}
}

// NewRenderer parses the built-in Go fonts and bounds concurrent renders to
// the given limit (minimum 1).
func NewRenderer(concurrency int) (*Renderer, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	return &Renderer{
		bold:    bold,
		regular: regular,
		sem:     make(chan struct{}, concurrency),
	}, nil
}

// Render draws the layout and returns the encoded PNG.
func (r *Renderer) Render(l Layout) ([]byte, error) {
	r.sem <- struct{}{}
	defer func() { <-r.sem }()

	img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))

	draw.Draw(img, img.Bounds(), image.NewUniform(l.Background.NRGBA(0xff)), image.Point{}, draw.Src)

	// The border is drawn as four filled edge rectangles so the full
	// requested thickness stays inside the canvas.
	if l.BorderSize > 0 {
		s := l.BorderSize
		border := image.NewUniform(l.BorderColor.NRGBA(0xff))
		for _, rect := range []image.Rectangle{
			image.Rect(0, 0, l.Width, s),
			image.Rect(0, l.Height-s, l.Width, l.Height),
			image.Rect(0, 0, s, l.Height),
			image.Rect(l.Width-s, 0, l.Width, l.Height),
		} {
			draw.Draw(img, rect, border, image.Point{}, draw.Src)
		}
	}

	if err := r.drawLabel(img, l); err != nil {
		return nil, err
	}
	if l.Watermark != nil {
		if err := r.drawWatermark(img, l); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel centers the dimension label on the canvas using the measured
// ink extents, so the glyphs themselves sit visually centered rather than
// the nominal baseline box.
func (r *Renderer) drawLabel(img draw.Image, l Layout) error {
	face, err := r.face(l.Label)
	if err != nil {
		return err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, l.Label.Text)
	inkW := bounds.Max.X - bounds.Min.X
	inkH := bounds.Max.Y - bounds.Min.Y
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.TextColor.NRGBA(l.Label.Alpha)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(l.Width)/2 - inkW/2 - bounds.Min.X,
			Y: fixed.I(l.Height)/2 - inkH/2 - bounds.Min.Y,
		},
	}
	d.DrawString(l.Label.Text)
	return nil
}

// drawWatermark anchors the watermark near the bottom-right corner, inset by
// two thirds of the border thickness so it never sits on a drawn border.
func (r *Renderer) drawWatermark(img draw.Image, l Layout) error {
	face, err := r.face(*l.Watermark)
	if err != nil {
		return err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, l.Watermark.Text)
	inset := fixed.Int26_6(float64(l.BorderSize) / 1.5 * 64)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.TextColor.NRGBA(l.Watermark.Alpha)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(l.Width) - (bounds.Max.X - bounds.Min.X) - fixed.I(5) - inset,
			Y: fixed.I(l.Height) + bounds.Min.Y/2 - inset,
		},
	}
	d.DrawString(l.Watermark.Text)
	return nil
}

// face creates a sized face for the span, bold for the label and regular
// for the watermark.
func (r *Renderer) face(span TextSpan) (font.Face, error) {
	f := r.regular
	if span.Bold {
		f = r.bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    span.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
