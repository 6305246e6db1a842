package ui

import (
	"image"
	"image/color"

	"github.com/OpticalFlyer/gadget/geom"
)

// Element represents the basic building block of the UI system.
// All UI elements embed Base, which is the only way to satisfy this
// interface.
type Element interface {
	Placement() geom.Rect
	SetPlacement(r geom.Rect)
	SetPosition(p geom.Point)
	SetSize(s geom.Size)
	Parent() Container
	AbsolutePosition() geom.Point
	Draw(dst Surface)

	base() *Base
}

// Container represents an Element that owns and composites other Elements.
// Children are drawn in insertion order into the container's own surface.
type Container interface {
	Element
	AddChild(child Element) error
	RemoveChild(child Element) bool
	Children() []Element
}

// Clickable is implemented by elements that react to the pointer. The point
// is always in absolute (screen) coordinates.
type Clickable interface {
	Clicked(p geom.Point) bool
}

// Dragger is a Clickable that keeps tracking the pointer while the button
// is held after the initial hit.
type Dragger interface {
	Clickable
	Drag(p geom.Point) bool
}

// Surface is a drawing target owned by the Renderer.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
}

// Measurer reports the bounds of text rendered in a font family at an
// integer pixel size.
type Measurer interface {
	MeasureText(font string, size int, s string) (w, h float64)
}

// MonotonicMeasurer is implemented by measurers that guarantee text bounds
// never shrink as the size grows. FitText only bisects when MonotonicText
// reports true.
type MonotonicMeasurer interface {
	Measurer
	MonotonicText() bool
}

// Renderer is the rasterization capability every widget draws through.
type Renderer interface {
	Measurer
	NewSurface(size geom.Size) Surface
	FillRect(dst Surface, c color.Color, r geom.Rect)
	FillCircle(dst Surface, c color.Color, center geom.Point, radius float64)
	RenderText(font string, size int, s string, c color.Color) Surface
	Blit(dst, src Surface, at geom.Point)
	// Release frees a surface the caller will not use again.
	Release(s Surface)
}

func withAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
