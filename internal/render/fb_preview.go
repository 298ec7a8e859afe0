package render

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// DefaultFramebufferDevice is the Linux console framebuffer.
const DefaultFramebufferDevice = "/dev/fb0"

// Pixel sink the preview blits into; satisfied by *fb.Device.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// FramebufferPreview shows rendered canvases on a Linux framebuffer device.
type FramebufferPreview struct {
	dev *fb.Device
}

// OpenFramebufferPreview opens the framebuffer at path.
func OpenFramebufferPreview(path string) (*FramebufferPreview, error) {
	if path == "" {
		path = DefaultFramebufferDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return &FramebufferPreview{dev: dev}, nil
}

// Show blits canvas onto the whole framebuffer.
func (p *FramebufferPreview) Show(canvas *Canvas) {
	if p == nil || p.dev == nil || canvas == nil {
		return
	}
	blitScaled(p.dev, canvas.Image())
}

func (p *FramebufferPreview) Close() error {
	if p == nil || p.dev == nil {
		return nil
	}
	p.dev.Close()
	p.dev = nil
	return nil
}

// Helper: nearest-neighbor scale of src over the full bounds of dst.
func blitScaled(dst pixelSink, src *image.RGBA) {
	bounds := dst.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	srcBounds := src.Bounds()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()
	if dstWidth == 0 || dstHeight == 0 || srcWidth == 0 || srcHeight == 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcWidth)/dstWidth
			pixel := src.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
