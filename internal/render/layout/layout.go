package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// StackVertical returns count rectangles of the given size, the first with its
// top-left corner at origin and each following one gapPx below the previous.
func StackVertical(origin image.Point, size image.Point, gapPx, count int) []image.Rectangle {
	if count <= 0 {
		return nil
	}
	rects := make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		top := origin.Y + i*(size.Y+gapPx)
		rects = append(rects, image.Rect(origin.X, top, origin.X+size.X, top+size.Y))
	}
	return rects
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx, heightPx = clampSize(rect, widthPx, heightPx)
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed
// marginX from the right edge and marginY from the bottom edge of rect.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx, marginX, marginY int) image.Rectangle {
	rect = Normalize(rect)
	maxX := rect.Max.X - marginX
	maxY := rect.Max.Y - marginY
	return Normalize(image.Rect(maxX-widthPx, maxY-heightPx, maxX, maxY))
}

// AnchorRight returns the full-height strip of widthPx at the right edge of rect.
// widthPx is clamped to [0, rect.Dx()].
func AnchorRight(rect image.Rectangle, widthPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx, _ = clampSize(rect, widthPx, 0)
	return image.Rect(rect.Max.X-widthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	return AnchorTopLeft(rect, size, size)
}

func clampSize(rect image.Rectangle, widthPx, heightPx int) (int, int) {
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	if widthPx > rect.Dx() {
		widthPx = rect.Dx()
	}
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	return widthPx, heightPx
}
