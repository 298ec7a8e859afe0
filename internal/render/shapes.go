package render

import (
	"image"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Control point distance for approximating a quarter circle with one cubic.
const kappa = 0.5522847498

func clampRadius(rect image.Rectangle, radius int) int {
	limit := rect.Dx()
	if rect.Dy() < limit {
		limit = rect.Dy()
	}
	limit /= 2
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

// addRoundedRect appends a closed clockwise rounded-rectangle path to r.
func addRoundedRect(r *raster.Rasterizer, rect image.Rectangle, radius int) {
	x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
	x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)
	rad := float64(radius)
	k := rad * kappa

	r.Start(pt(x0+rad, y0))
	r.Add1(pt(x1-rad, y0))
	if radius > 0 {
		r.Add3(pt(x1-rad+k, y0), pt(x1, y0+rad-k), pt(x1, y0+rad))
	}
	r.Add1(pt(x1, y1-rad))
	if radius > 0 {
		r.Add3(pt(x1, y1-rad+k), pt(x1-rad+k, y1), pt(x1-rad, y1))
	}
	r.Add1(pt(x0+rad, y1))
	if radius > 0 {
		r.Add3(pt(x0+rad-k, y1), pt(x0, y1-rad+k), pt(x0, y1-rad))
	}
	r.Add1(pt(x0, y0+rad))
	if radius > 0 {
		r.Add3(pt(x0, y0+rad-k), pt(x0+rad-k, y0), pt(x0+rad, y0))
	}
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}
