package ui

import "github.com/OpticalFlyer/gadget/geom"

// Base carries the placement and parent back-reference shared by every
// element. The parent pointer is only used to resolve absolute positions;
// the container's child list is what keeps an element alive.
type Base struct {
	placement geom.Rect
	parent    Container

	// onChange runs after every placement mutation with the new value.
	onChange func(geom.Rect)
}

func newBase(r geom.Rect) Base {
	return Base{placement: r.Canon()}
}

func (b *Base) base() *Base {
	return b
}

// Placement returns the element's bounds relative to its parent.
func (b *Base) Placement() geom.Rect {
	return b.placement
}

// Position returns the top-left corner relative to the parent.
func (b *Base) Position() geom.Point {
	return b.placement.Position()
}

// Size returns the element's width and height.
func (b *Base) Size() geom.Size {
	return b.placement.Size()
}

// SetPlacement replaces the whole placement and then notifies dependents.
func (b *Base) SetPlacement(r geom.Rect) {
	b.placement = r.Canon()
	if b.onChange != nil {
		b.onChange(b.placement)
	}
}

// SetPosition moves the element, keeping its size.
func (b *Base) SetPosition(p geom.Point) {
	b.SetPlacement(b.placement.WithPosition(p))
}

// SetSize resizes the element, keeping its position.
func (b *Base) SetSize(s geom.Size) {
	b.SetPlacement(b.placement.WithSize(s))
}

// Parent returns the container holding this element, or nil for a root.
func (b *Base) Parent() Container {
	return b.parent
}

// AbsolutePosition resolves the element's top-left corner in screen space
// by walking the parent chain.
func (b *Base) AbsolutePosition() geom.Point {
	if b.parent == nil {
		return b.placement.Position()
	}
	return b.parent.AbsolutePosition().Add(b.placement.Position())
}

// AbsoluteBounds returns the placement translated into screen space.
func (b *Base) AbsoluteBounds() geom.Rect {
	return b.placement.WithPosition(b.AbsolutePosition())
}
