package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Exporter renders the menu URL as a scannable code. PNG is the preferred
// format, with the brand badge composited over the center; SVG is the
// degraded fallback when PNG encoding fails. Filenames are deterministic,
// derived from the brand slug.
type Exporter struct {
	url   string
	badge string
	slug  string
	size  int
}

func NewExporter(url, badge, slug string) *Exporter {
	return &Exporter{
		url:   url,
		badge: badge,
		slug:  slug,
		size:  512,
	}
}

// Filename is the deterministic download name for the given format.
func (e *Exporter) Filename(format string) string {
	return fmt.Sprintf("%s-menu-qr.%s", e.slug, format)
}

// PNG renders the code at high error correction (the center badge obscures a
// few modules) and composites the badge text over the middle.
func (e *Exporter) PNG() ([]byte, error) {
	code, err := qrcode.New(e.url, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	img := code.Image(e.size)

	canvas := image.NewRGBA(img.Bounds())
	draw.Draw(canvas, canvas.Bounds(), img, image.Point{}, draw.Src)

	if e.badge != "" {
		e.drawBadge(canvas)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	return buf.Bytes(), nil
}

func (e *Exporter) drawBadge(canvas *image.RGBA) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, e.badge).Ceil()

	padX, padY := 10, 6
	w := textWidth + 2*padX
	h := face.Metrics().Height.Ceil() + 2*padY

	bounds := canvas.Bounds()
	cx, cy := bounds.Dx()/2, bounds.Dy()/2
	badgeRect := image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)

	draw.Draw(canvas, badgeRect, image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(cx - textWidth/2),
			Y: fixed.I(cy + face.Metrics().Ascent.Ceil()/2),
		},
	}
	drawer.DrawString(e.badge)
}

// SVG emits the code as vector markup, one rect per dark module. No badge:
// this is the fallback format and keeps every module intact.
func (e *Exporter) SVG() ([]byte, error) {
	code, err := qrcode.New(e.url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	grid := code.Bitmap()
	n := len(grid)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	buf.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	for y, row := range grid {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="1" height="1" fill="#000000"/>`, x, y)
			}
		}
	}
	buf.WriteString(`</svg>`)

	return buf.Bytes(), nil
}
