package ui

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/OpticalFlyer/gadget/geom"
)

var _ Container = (*Panel)(nil)
var _ Clickable = (*Panel)(nil)

// Fill selects how a Panel clears its surface every frame. It is either
// Opaque or Transparent.
type Fill interface {
	isFill()
}

// Opaque fills the panel with Color at the given Alpha.
type Opaque struct {
	Color color.NRGBA
	Alpha uint8
}

// Transparent clears the panel to fully transparent pixels.
type Transparent struct{}

func (Opaque) isFill()      {}
func (Transparent) isFill() {}

// Panel is a container with its own off-screen surface. Children are
// positioned relative to the panel's origin and drawn into that surface,
// which is then composited onto the parent's target.
type Panel struct {
	Base

	r        Renderer
	fill     Fill
	children []Element

	surface Surface
	// surfaceSize is the size surface was allocated for.
	surfaceSize geom.Size
}

// NewBackground creates a panel that refills itself with c at alpha.
func NewBackground(r Renderer, placement geom.Rect, c color.NRGBA, alpha uint8) *Panel {
	return newPanel(r, placement, Opaque{Color: c, Alpha: alpha})
}

// NewPlaceholder creates a transparent panel used purely for grouping.
func NewPlaceholder(r Renderer, placement geom.Rect) *Panel {
	return newPanel(r, placement, Transparent{})
}

func newPanel(r Renderer, placement geom.Rect, fill Fill) *Panel {
	p := &Panel{
		Base: newBase(placement),
		r:    r,
		fill: fill,
	}
	p.onChange = func(r geom.Rect) {
		// A moved panel keeps its surface; a resized one gets a new
		// surface on the next Draw.
		if p.surface != nil && r.Size() != p.surfaceSize {
			p.r.Release(p.surface)
			p.surface = nil
		}
	}
	return p
}

// Fill returns the current fill variant.
func (p *Panel) Fill() Fill {
	return p.fill
}

// SetFill switches the fill, e.g. turning a placeholder into a background.
func (p *Panel) SetFill(f Fill) {
	if f == nil {
		f = Transparent{}
	}
	p.fill = f
}

// Color returns the fill color and alpha. ok is false for a transparent
// panel, which has no color.
func (p *Panel) Color() (c color.NRGBA, alpha uint8, ok bool) {
	o, ok := p.fill.(Opaque)
	return o.Color, o.Alpha, ok
}

// SetColor changes the color of an opaque fill, keeping its alpha. It does
// nothing on a transparent panel and reports whether the color was applied.
func (p *Panel) SetColor(c color.NRGBA) bool {
	o, ok := p.fill.(Opaque)
	if !ok {
		return false
	}
	o.Color = c
	p.fill = o
	return true
}

// SetAlpha changes the alpha of an opaque fill. Like SetColor it does
// nothing on a transparent panel.
func (p *Panel) SetAlpha(alpha uint8) bool {
	o, ok := p.fill.(Opaque)
	if !ok {
		return false
	}
	o.Alpha = alpha
	p.fill = o
	return true
}

// AddChild appends child to the draw order and points its parent at p.
func (p *Panel) AddChild(child Element) error {
	if child == nil {
		return ErrNilElement
	}
	b := child.base()
	if b.parent != nil {
		return fmt.Errorf("add child: %w", ErrAlreadyAttached)
	}
	var self Container = p
	for c := self; c != nil; c = c.Parent() {
		if c.base() == b {
			return fmt.Errorf("add child: %w", ErrCycle)
		}
	}
	b.parent = p
	p.children = append(p.children, child)
	return nil
}

// RemoveChild detaches child and clears its parent. It reports whether the
// child was found.
func (p *Panel) RemoveChild(child Element) bool {
	for i, c := range p.children {
		if c != child {
			continue
		}
		p.children = slices.Delete(p.children, i, i+1)
		c.base().parent = nil
		return true
	}
	return false
}

// Children returns the children in draw order. The slice is a copy.
func (p *Panel) Children() []Element {
	out := make([]Element, len(p.children))
	copy(out, p.children)
	return out
}

// Clicked forwards the pointer to the topmost child that accepts it.
func (p *Panel) Clicked(pt geom.Point) bool {
	return p.hit(pt) != nil
}

// hit clips to the panel: children are drawn only inside the panel's
// surface, so a pointer outside the panel never reaches them, even where a
// child's own hit region (such as a slider's knob overhang) reaches past
// the panel edge.
func (p *Panel) hit(pt geom.Point) Clickable {
	if !p.AbsoluteBounds().Hit(pt) {
		return nil
	}
	return dispatch(p.children, pt)
}

// dispatch returns the topmost clickable in elems that accepts pt, recursing
// into containers. Later elements are drawn on top, so they are asked first.
func dispatch(elems []Element, pt geom.Point) Clickable {
	for i := len(elems) - 1; i >= 0; i-- {
		switch e := elems[i].(type) {
		case *Panel:
			if t := e.hit(pt); t != nil {
				return t
			}
		case Clickable:
			if e.Clicked(pt) {
				return e
			}
		}
	}
	return nil
}

func (p *Panel) Draw(dst Surface) {
	size := p.Size()
	if size.Empty() {
		return
	}
	if p.surface == nil {
		p.surface = p.r.NewSurface(size)
		p.surfaceSize = size
	}

	// Clear before drawing
	p.surface.Clear()
	if o, ok := p.fill.(Opaque); ok {
		p.r.FillRect(p.surface, withAlpha(o.Color, o.Alpha), geom.FromParts(geom.Point{}, size))
	}

	for _, c := range p.children {
		c.Draw(p.surface)
	}

	p.r.Blit(dst, p.surface, p.Position())
}
