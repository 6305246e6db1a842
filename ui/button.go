package ui

import (
	"image/color"

	"github.com/OpticalFlyer/gadget/geom"
)

var _ Element = (*Button)(nil)
var _ Clickable = (*Button)(nil)

// ButtonStyle defines button appearance.
type ButtonStyle struct {
	Color color.NRGBA
	Alpha uint8
	Label LabelStyle
}

// DefaultButtonStyle returns a grey button with black auto-fitted text.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Color: color.NRGBA{R: 150, G: 150, B: 150, A: 255},
		Alpha: 255,
		Label: DefaultLabelStyle(),
	}
}

// Button is a filled rectangle with a centered label that runs a callback
// when clicked.
type Button struct {
	Base

	r       Renderer
	style   ButtonStyle
	label   *Label
	onClick func()
}

// NewButton creates a button. onClick may be nil.
func NewButton(r Renderer, placement geom.Rect, text string, onClick func()) *Button {
	b := &Button{
		Base:    newBase(placement),
		r:       r,
		style:   DefaultButtonStyle(),
		onClick: onClick,
	}
	b.label = NewLabel(r, b.labelPlacement(), text, b.style.Label)
	b.onChange = func(geom.Rect) { b.label.SetPlacement(b.labelPlacement()) }
	return b
}

func (b *Button) labelPlacement() geom.Rect {
	return b.placement
}

func (b *Button) Text() string {
	return b.label.Text()
}

func (b *Button) SetText(text string) {
	b.label.SetText(text)
}

func (b *Button) Style() ButtonStyle {
	return b.style
}

func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
	b.label.SetStyle(style.Label)
}

// SetOnClick replaces the click callback.
func (b *Button) SetOnClick(fn func()) {
	b.onClick = fn
}

// LabelPlacement returns where the label sits. It always covers the whole
// button.
func (b *Button) LabelPlacement() geom.Rect {
	return b.label.Placement()
}

// LabelFontSize returns the size the label was rendered at, 0 if it does
// not fit.
func (b *Button) LabelFontSize() int {
	return b.label.FontSize()
}

func (b *Button) Draw(dst Surface) {
	b.r.FillRect(dst, withAlpha(b.style.Color, b.style.Alpha), b.placement)
	b.label.Draw(dst)
}

// Clicked runs the callback and reports true if p is inside the button.
func (b *Button) Clicked(p geom.Point) bool {
	if !b.AbsoluteBounds().Hit(p) {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}
