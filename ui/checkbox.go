package ui

import (
	"image/color"
	"math"

	"github.com/OpticalFlyer/gadget/geom"
)

var _ Element = (*Checkbox)(nil)
var _ Clickable = (*Checkbox)(nil)

// CheckboxStyle defines checkbox appearance.
type CheckboxStyle struct {
	BoxColor       color.NRGBA
	IndicatorColor color.NRGBA
	Alpha          uint8
	// Spacing is the gap between the box and the label.
	Spacing float64
	Label   LabelStyle
}

// DefaultCheckboxStyle returns a grey box with a black indicator.
func DefaultCheckboxStyle() CheckboxStyle {
	label := DefaultLabelStyle()
	label.Align = AlignStart
	return CheckboxStyle{
		BoxColor:       color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		IndicatorColor: color.NRGBA{A: 255},
		Alpha:          255,
		Spacing:        10,
		Label:          label,
	}
}

// Checkbox is a square toggle box followed by a label. The box side equals
// the widget height; the rest of the width belongs to the label.
type Checkbox struct {
	Base

	r       Renderer
	style   CheckboxStyle
	label   *Label
	checked bool
	onClick func()
}

// NewCheckbox creates an unchecked checkbox. onClick may be nil.
func NewCheckbox(r Renderer, placement geom.Rect, text string, onClick func()) *Checkbox {
	c := &Checkbox{
		Base:    newBase(placement),
		r:       r,
		style:   DefaultCheckboxStyle(),
		onClick: onClick,
	}
	c.label = NewLabel(r, c.labelPlacement(), text, c.style.Label)
	c.onChange = func(geom.Rect) { c.label.SetPlacement(c.labelPlacement()) }
	return c
}

// box returns the square hit and draw region in parent coordinates.
func (c *Checkbox) box() geom.Rect {
	p := c.placement
	return geom.R(p.X, p.Y, p.Height, p.Height)
}

func (c *Checkbox) labelPlacement() geom.Rect {
	p := c.placement
	offset := p.Height + c.style.Spacing
	return geom.R(p.X+offset, p.Y, math.Max(0, p.Width-offset), p.Height)
}

func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked sets the state without running the callback.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

func (c *Checkbox) Text() string {
	return c.label.Text()
}

func (c *Checkbox) SetText(text string) {
	c.label.SetText(text)
}

func (c *Checkbox) Style() CheckboxStyle {
	return c.style
}

func (c *Checkbox) SetStyle(style CheckboxStyle) {
	c.style = style
	c.label.SetStyle(style.Label)
	c.label.SetPlacement(c.labelPlacement())
}

func (c *Checkbox) SetOnClick(fn func()) {
	c.onClick = fn
}

// LabelPlacement returns where the label sits, to the right of the box.
func (c *Checkbox) LabelPlacement() geom.Rect {
	return c.label.Placement()
}

func (c *Checkbox) LabelFontSize() int {
	return c.label.FontSize()
}

func (c *Checkbox) Draw(dst Surface) {
	box := c.box()
	c.r.FillRect(dst, withAlpha(c.style.BoxColor, c.style.Alpha), box)

	// Draw checked indicator
	if c.checked {
		c.r.FillCircle(dst, withAlpha(c.style.IndicatorColor, 255), box.Center(), box.Width/4)
	}

	c.label.Draw(dst)
}

// Clicked toggles the box and runs the callback if p is inside the box.
// Clicks on the label do not count.
func (c *Checkbox) Clicked(p geom.Point) bool {
	box := c.box().WithPosition(c.AbsolutePosition())
	if !box.Hit(p) {
		return false
	}
	c.checked = !c.checked
	if c.onClick != nil {
		c.onClick()
	}
	return true
}
