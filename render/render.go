// Package render implements ui.Renderer on top of ebiten. Surfaces are
// *ebiten.Image values, shapes come from the vector package and text is
// shaped with text/v2.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/gadget/geom"
	"github.com/OpticalFlyer/gadget/ui"
)

var _ ui.Renderer = (*Renderer)(nil)
var _ ui.MonotonicMeasurer = (*Renderer)(nil)

// Built-in font families.
const (
	FontSans      = "sans"
	FontMonospace = "monospace"
	FontBold      = "bold"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMonotonicText declares that text bounds never shrink as the size
// grows, letting label fitting bisect instead of scanning every size.
func WithMonotonicText(monotonic bool) Option {
	return func(r *Renderer) {
		r.monotonic = monotonic
	}
}

// WithFallbackFont sets the family used for unknown family names.
func WithFallbackFont(family string) Option {
	return func(r *Renderer) {
		r.fallback = family
	}
}

// Renderer draws onto ebiten images.
type Renderer struct {
	sources   map[string]*text.GoTextFaceSource
	fallback  string
	monotonic bool
	warned    map[string]bool
}

// New creates a Renderer with the Go fonts registered as FontSans,
// FontMonospace and FontBold.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: FontMonospace,
		warned:   make(map[string]bool),
	}
	builtin := map[string][]byte{
		FontSans:      goregular.TTF,
		FontMonospace: gomono.TTF,
		FontBold:      gobold.TTF,
	}
	for family, ttf := range builtin {
		if err := r.RegisterFont(family, ttf); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	if _, ok := r.sources[r.fallback]; !ok {
		return nil, fmt.Errorf("fallback font %q is not registered", r.fallback)
	}
	return r, nil
}

// RegisterFont parses a TrueType or OpenType font and makes it available
// under family, replacing any previous font with that name.
func (r *Renderer) RegisterFont(family string, ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("parsing font %q failed: %w", family, err)
	}
	r.sources[family] = src
	return nil
}

// MonotonicText implements ui.MonotonicMeasurer.
func (r *Renderer) MonotonicText() bool {
	return r.monotonic
}

func (r *Renderer) face(family string, size int) *text.GoTextFace {
	src, ok := r.sources[family]
	if !ok {
		if !r.warned[family] {
			r.warned[family] = true
			slog.Warn("unknown font family, using fallback", "family", family, "fallback", r.fallback)
		}
		src = r.sources[r.fallback]
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}
}

func lineHeight(f *text.GoTextFace) float64 {
	m := f.Metrics()
	return m.HLineGap + m.HAscent + m.HDescent
}

// MeasureText returns the bounds of s at the given pixel size.
func (r *Renderer) MeasureText(family string, size int, s string) (w, h float64) {
	f := r.face(family, size)
	return text.Measure(s, f, lineHeight(f))
}

// RenderText rasterizes s onto a new image sized to its bounds.
func (r *Renderer) RenderText(family string, size int, s string, c color.Color) ui.Surface {
	f := r.face(family, size)
	w, h := text.Measure(s, f, lineHeight(f))
	pw, ph := geom.Sz(w, h).Pixels()
	if pw <= 0 || ph <= 0 {
		return emptySurface{}
	}

	img := ebiten.NewImage(pw, ph)
	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight(f)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, s, f, op)
	return img
}

// NewSurface allocates an off-screen image. Zero-sized requests get a
// surface that swallows all drawing.
func (r *Renderer) NewSurface(size geom.Size) ui.Surface {
	w, h := size.Pixels()
	if w <= 0 || h <= 0 {
		return emptySurface{}
	}
	return ebiten.NewImage(w, h)
}

func (r *Renderer) FillRect(dst ui.Surface, c color.Color, rect geom.Rect) {
	img, ok := dst.(*ebiten.Image)
	if !ok || rect.Size().Empty() {
		return
	}
	vector.DrawFilledRect(img, float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height), c, true)
}

func (r *Renderer) FillCircle(dst ui.Surface, c color.Color, center geom.Point, radius float64) {
	img, ok := dst.(*ebiten.Image)
	if !ok || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// Blit draws src onto dst with its top-left corner at the given point.
// Positions are rounded to whole pixels so text stays crisp.
func (r *Renderer) Blit(dst, src ui.Surface, at geom.Point) {
	d, ok := dst.(*ebiten.Image)
	if !ok {
		return
	}
	s, ok := src.(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(at.X), math.Round(at.Y))
	d.DrawImage(s, op)
}

// Release deallocates the image behind s. Empty surfaces are ignored.
func (r *Renderer) Release(s ui.Surface) {
	if img, ok := s.(*ebiten.Image); ok {
		img.Deallocate()
	}
}

// emptySurface stands in for zero-sized images, which ebiten cannot
// allocate.
type emptySurface struct{}

func (emptySurface) Bounds() image.Rectangle { return image.Rectangle{} }
func (emptySurface) Clear()                  {}
