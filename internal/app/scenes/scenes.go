package scenes

import (
	"image/color"

	"github.com/rook-computer/mockups/internal/render"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Shared palette.
var (
	white     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	navy      = hex(0x1b3a8a)
	slate     = hex(0x3d4a6d)
	muted     = hex(0x4b5676)
	primary   = hex(0x2563eb)
	barTrack  = hex(0xe0e7ff)
	loginBg   = hex(0xeef3ff)
	loginLine = hex(0xd9e1ff)
	dashBg    = hex(0xf6f8ff)
	dashLine  = hex(0xd0dafc)
)

func hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

// All returns the mockups in render order.
func All(helpURL string, logger Logger) []render.Scene {
	return []render.Scene{
		NewLoginScene(helpURL, logger),
		NewDashboardScene(),
	}
}

