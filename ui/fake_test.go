package ui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/OpticalFlyer/gadget/geom"
)

// op is one recorded drawing call.
type op struct {
	kind   string
	rect   geom.Rect
	at     geom.Point
	radius float64
	color  color.Color
	src    *fakeSurface
}

type fakeSurface struct {
	size     geom.Size
	text     string
	color    color.Color
	ops      []op
	released bool
}

func (s *fakeSurface) Bounds() image.Rectangle {
	w, h := s.size.Pixels()
	return image.Rect(0, 0, w, h)
}

func (s *fakeSurface) Clear() {
	s.ops = append(s.ops, op{kind: "clear"})
}

func (s *fakeSurface) kinds() []string {
	out := make([]string, len(s.ops))
	for i, o := range s.ops {
		out[i] = o.kind
	}
	return out
}

// fakeRenderer measures text as 0.6*size pixels per rune by size pixels.
type fakeRenderer struct {
	monotonic bool
	measures  int
	surfaces  int
	released  int
}

var _ Renderer = (*fakeRenderer)(nil)

func (r *fakeRenderer) MeasureText(font string, size int, s string) (w, h float64) {
	r.measures++
	return float64(utf8.RuneCountInString(s)) * float64(size) * 0.6, float64(size)
}

func (r *fakeRenderer) MonotonicText() bool {
	return r.monotonic
}

func (r *fakeRenderer) NewSurface(size geom.Size) Surface {
	r.surfaces++
	return &fakeSurface{size: size}
}

func (r *fakeRenderer) FillRect(dst Surface, c color.Color, rect geom.Rect) {
	s := dst.(*fakeSurface)
	s.ops = append(s.ops, op{kind: "rect", rect: rect, color: c})
}

func (r *fakeRenderer) FillCircle(dst Surface, c color.Color, center geom.Point, radius float64) {
	s := dst.(*fakeSurface)
	s.ops = append(s.ops, op{kind: "circle", at: center, radius: radius, color: c})
}

func (r *fakeRenderer) RenderText(font string, size int, s string, c color.Color) Surface {
	w, h := r.MeasureText(font, size, s)
	return &fakeSurface{size: geom.Sz(w, h), text: s, color: c}
}

func (r *fakeRenderer) Blit(dst, src Surface, at geom.Point) {
	s := dst.(*fakeSurface)
	s.ops = append(s.ops, op{kind: "blit", at: at, src: src.(*fakeSurface)})
}

func (r *fakeRenderer) Release(s Surface) {
	r.released++
	s.(*fakeSurface).released = true
}
