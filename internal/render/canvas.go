package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/mockups/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a fixed-size in-memory raster surface. It is never resized.
type Canvas struct {
	img        *image.RGBA
	background color.Color
	rasterizer *raster.Rasterizer
	painter    *raster.RGBAPainter
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas allocates a width×height canvas filled with background.
func NewCanvas(width, height int, background color.Color) *Canvas {
	if background == nil {
		background = DefaultBackground
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	canvas := &Canvas{
		img:        img,
		background: background,
		rasterizer: raster.NewRasterizer(width, height),
		painter:    raster.NewRGBAPainter(img),
	}
	canvas.rasterizer.UseNonZeroWinding = true
	canvas.FillBackground()
	return canvas
}

// Image exposes the underlying pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: c.background}, image.Point{}, draw.Src)
}

// FillRoundedRect paints an anti-aliased rounded rectangle. The radius is
// clamped to half of the shorter side; empty rectangles paint nothing.
func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius int, fill color.Color) {
	rect = layout.Normalize(rect)
	if rect.Empty() || fill == nil {
		return
	}
	c.rasterizer.Clear()
	addRoundedRect(c.rasterizer, rect, clampRadius(rect, radius))
	c.painter.SetColor(fill)
	c.rasterizer.Rasterize(c.painter)
}

// DrawPanel fills rect with the outline color, then fills the inset area with
// the fill color, so the outline sits entirely inside rect.
func (c *Canvas) DrawPanel(rect image.Rectangle, radius int, style PanelStyle) {
	if style.Outline == nil || style.OutlineWidth <= 0 {
		c.FillRoundedRect(rect, radius, style.Fill)
		return
	}
	c.FillRoundedRect(rect, radius, style.Outline)
	inner := layout.Inset(rect, style.OutlineWidth)
	innerRadius := radius - style.OutlineWidth
	if innerRadius < 0 {
		innerRadius = 0
	}
	c.FillRoundedRect(inner, innerRadius, style.Fill)
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := faceOrDefault(style.Face)
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	return TextMetrics{
		Width:      width,
		Height:     metrics.Ascent.Ceil() + metrics.Descent.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

// DrawText places text with its anchor at (x, y) and returns its metrics.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	m := c.MeasureText(text, style)
	textColor := style.Color
	if textColor == nil {
		textColor = color.Black
	}

	if style.Align == TextAlignCenter {
		x -= m.Width / 2
	}

	baseline := y + m.Ascent
	if style.Anchor == TextAnchorMiddle {
		baseline = y + (m.Ascent-m.Descent)/2
	}

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: faceOrDefault(style.Face),
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(text)
	return m
}

// DrawImageInRect scales img into rect using nearest-neighbour sampling,
// which keeps hard edges such as QR modules crisp.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil {
		return
	}
	rect = layout.Normalize(rect)
	src := img.Bounds()
	if rect.Empty() || src.Empty() {
		return
	}
	dst := fitRect(rect, src.Dx(), src.Dy())
	xdraw.NearestNeighbor.Scale(c.img, dst, img, src, xdraw.Over, nil)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to path, replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func faceOrDefault(face font.Face) font.Face {
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

// fitRect returns the largest rectangle with the aspect ratio of w×h that
// fits into rect, centered.
func fitRect(rect image.Rectangle, w, h int) image.Rectangle {
	dw, dh := rect.Dx(), rect.Dy()
	if dw*h > dh*w {
		dw = dh * w / h
	} else {
		dh = dw * h / w
	}
	x := rect.Min.X + (rect.Dx()-dw)/2
	y := rect.Min.Y + (rect.Dy()-dh)/2
	return image.Rect(x, y, x+dw, y+dh)
}
