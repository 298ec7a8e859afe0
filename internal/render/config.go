package render

import "image/color"

// Global render configuration for the mockup canvas.
var (
	// Every mockup is rendered at this fixed size.
	CanvasWidth  = 1280
	CanvasHeight = 720

	// Background used when a scene does not provide its own.
	DefaultBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
