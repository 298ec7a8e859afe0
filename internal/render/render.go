package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Scene is one complete mockup drawn onto its own canvas.
type Scene interface {
	Name() string
	// Filename is the base name of the PNG written for this scene.
	Filename() string
	Background() color.Color
	Draw(d Drawer, fonts FontSet)
}

// FontSet holds the three text roles shared read-only by every scene.
type FontSet struct {
	Large  font.Face
	Medium font.Face
	Body   font.Face

	// Fallback reports that the built-in bitmap face stands in for all roles.
	Fallback bool
}

// Drawer is an abstraction the canvas provides to scenes to draw primitives
// without exposing the raster details.
type Drawer interface {
	FillBackground()

	// Shape primitives. Rectangles use image.Rectangle semantics (Max exclusive).
	FillRoundedRect(rect image.Rectangle, radius int, fill color.Color)
	DrawPanel(rect image.Rectangle, radius int, style PanelStyle)

	// Generic text primitives.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawImageInRect scales img to the largest centered fit inside rect.
	DrawImageInRect(img image.Image, rect image.Rectangle)
}

// PanelStyle describes a filled rounded rectangle with an inner outline.
type PanelStyle struct {
	Fill         color.Color
	Outline      color.Color
	OutlineWidth int
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
)

// TextAnchor selects what the y coordinate of DrawText refers to.
type TextAnchor int

const (
	// TextAnchorTop places the ascender line at y.
	TextAnchorTop TextAnchor = iota
	// TextAnchorMiddle places the midpoint between ascender and descender at y.
	TextAnchorMiddle
)

// TextStyle describes how to render text.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color  color.Color
	Face   font.Face // nil means the built-in bitmap face
	Align  TextAlign
	Anchor TextAnchor
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}
