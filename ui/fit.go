package ui

import (
	"fmt"
	"math"

	"github.com/OpticalFlyer/gadget/geom"
)

// FitText finds the largest integer font size at which s fits inside box.
// The search starts at min(box.Width, box.Height) and walks down one pixel
// at a time, because glyph bounds are not guaranteed to grow smoothly with
// size. Measurers that implement MonotonicMeasurer and report true are
// bisected instead.
//
// If even size 1 overflows, FitText returns ErrRenderSpaceExhausted.
func FitText(m Measurer, font, s string, box geom.Size) (int, geom.Size, error) {
	start := int(math.Floor(math.Min(box.Width, box.Height)))
	if start >= 1 {
		if mm, ok := m.(MonotonicMeasurer); ok && mm.MonotonicText() {
			if size, bounds, ok := fitBisect(m, font, s, box, start); ok {
				return size, bounds, nil
			}
		} else {
			for size := start; size >= 1; size-- {
				if bounds := measure(m, font, size, s); bounds.Fits(box) {
					return size, bounds, nil
				}
			}
		}
	}
	return 0, geom.Size{}, fmt.Errorf("%w: %q in %gx%g", ErrRenderSpaceExhausted, s, box.Width, box.Height)
}

func fitBisect(m Measurer, font, s string, box geom.Size, hi int) (int, geom.Size, bool) {
	lo := 1
	best := measure(m, font, lo, s)
	if !best.Fits(box) {
		return 0, geom.Size{}, false
	}
	// Invariant: lo fits, everything above hi is unknown or overflowing.
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if bounds := measure(m, font, mid, s); bounds.Fits(box) {
			lo, best = mid, bounds
		} else {
			hi = mid - 1
		}
	}
	return lo, best, true
}

func measure(m Measurer, font string, size int, s string) geom.Size {
	w, h := m.MeasureText(font, size, s)
	return geom.Sz(w, h)
}
