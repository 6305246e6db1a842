package ui

import (
	"slices"

	"github.com/OpticalFlyer/gadget/geom"
)

// Controller manages the root elements of a scene and routes pointer input
// to them. It is driven from the host's update loop.
type Controller struct {
	roots []Element

	pressed  bool
	captured Clickable
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		roots: make([]Element, 0),
	}
}

// Add appends a root element. Later roots draw on top and receive the
// pointer first.
func (c *Controller) Add(e Element) {
	c.roots = append(c.roots, e)
}

// Remove drops a root element, reporting whether it was present.
func (c *Controller) Remove(e Element) bool {
	for i, r := range c.roots {
		if r == e {
			c.roots = slices.Delete(c.roots, i, i+1)
			// The captured widget may live under e; drop the press.
			c.captured = nil
			return true
		}
	}
	return false
}

// Draw draws all root elements in order.
func (c *Controller) Draw(screen Surface) {
	for _, r := range c.roots {
		r.Draw(screen)
	}
}

// HandleInput feeds one frame of pointer state. On the frame the button
// goes down the topmost widget under the pointer is clicked and captured;
// while the button stays down a captured Dragger is dragged every frame.
// It reports whether the UI consumed the pointer.
func (c *Controller) HandleInput(x, y float64, pressed bool) bool {
	p := geom.Pt(x, y)
	if !pressed {
		c.pressed = false
		c.captured = nil
		return false
	}

	if !c.pressed {
		c.pressed = true
		c.captured = dispatch(c.roots, p)
		return c.captured != nil
	}

	if d, ok := c.captured.(Dragger); ok {
		d.Drag(p)
	}
	return c.captured != nil
}

// IsInteractingWithUI returns true while a press that landed on a widget
// is still held.
func (c *Controller) IsInteractingWithUI() bool {
	return c.captured != nil
}
