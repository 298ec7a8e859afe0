package layout

import (
	"image"
	"testing"
)

func TestStackVerticalConstantGap(t *testing.T) {
	rects := StackVertical(image.Pt(10, 20), image.Pt(100, 30), 5, 4)
	if len(rects) != 4 {
		t.Fatalf("got %d rects, want 4", len(rects))
	}
	if rects[0] != image.Rect(10, 20, 110, 50) {
		t.Fatalf("first rect = %v", rects[0])
	}
	for i := 1; i < len(rects); i++ {
		if gap := rects[i].Min.Y - rects[i-1].Max.Y; gap != 5 {
			t.Errorf("gap between %d and %d = %d, want 5", i-1, i, gap)
		}
		if rects[i].Size() != image.Pt(100, 30) {
			t.Errorf("rect %d size = %v", i, rects[i].Size())
		}
	}
}

func TestStackVerticalEmpty(t *testing.T) {
	if rects := StackVertical(image.Pt(0, 0), image.Pt(1, 1), 0, 0); rects != nil {
		t.Fatalf("expected nil, got %v", rects)
	}
}

func TestInsetAndNormalize(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 10, 10), 2); got != image.Rect(2, 2, 8, 8) {
		t.Errorf("Inset = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 10, 10), 0); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Inset(0) = %v", got)
	}
	// Over-insetting flips Min/Max, which Normalize repairs.
	got := Inset(image.Rect(0, 0, 4, 4), 3)
	if got.Min.X > got.Max.X || got.Min.Y > got.Max.Y {
		t.Errorf("Inset not normalized: %v", got)
	}
}

func TestAnchorBottomRight(t *testing.T) {
	card := image.Rect(80, 220, 600, 340)
	got := AnchorBottomRight(card, 236, 38, 24, 16)
	want := image.Rect(340, 266, 576, 304)
	if got != want {
		t.Fatalf("AnchorBottomRight = %v, want %v", got, want)
	}
}

func TestAnchorRightAndFitSquare(t *testing.T) {
	slot := image.Rect(0, 0, 200, 40)
	right := AnchorRight(slot, 40)
	if right != image.Rect(160, 0, 200, 40) {
		t.Fatalf("AnchorRight = %v", right)
	}
	if got := FitSquare(slot); got != image.Rect(0, 0, 40, 40) {
		t.Errorf("FitSquare = %v", got)
	}
	if got := AnchorRight(slot, 500); got != slot {
		t.Errorf("AnchorRight clamp = %v", got)
	}
}
