package ui

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/OpticalFlyer/gadget/geom"
)

var _ Element = (*Label)(nil)

// FontSize is a fixed pixel size, or AutoSize to fit the label's box.
type FontSize int

// AutoSize asks the label to pick the largest size that fits its box.
const AutoSize FontSize = 0

// Align controls where rendered text sits horizontally inside the label's
// box. Text is always centered vertically.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
)

// DefaultFont is the font family used when a style leaves Font empty.
const DefaultFont = "monospace"

// LabelStyle defines label appearance.
type LabelStyle struct {
	Font  string
	Size  FontSize
	Color color.NRGBA
	// Alpha replaces Color's own alpha channel.
	Alpha uint8
	Align Align
}

// DefaultLabelStyle returns default label styling: black auto-fitted text.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		Font:  DefaultFont,
		Size:  AutoSize,
		Color: color.NRGBA{A: 255},
		Alpha: 255,
		Align: AlignCenter,
	}
}

// Label renders a single line of text inside its placement. The rendered
// glyphs are rebuilt synchronously whenever the text, style or placement
// changes, so Draw never sees stale output.
type Label struct {
	Base

	r     Renderer
	text  string
	style LabelStyle

	glyphs   Surface
	fontSize int
	rendered geom.Size
	err      error
}

// NewLabel creates a label and renders it immediately.
func NewLabel(r Renderer, placement geom.Rect, text string, style LabelStyle) *Label {
	l := &Label{
		Base:  newBase(placement),
		r:     r,
		text:  text,
		style: style,
	}
	l.onChange = func(geom.Rect) { l.refresh() }
	l.refresh()
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.refresh()
}

func (l *Label) Style() LabelStyle {
	return l.style
}

func (l *Label) SetStyle(style LabelStyle) {
	l.style = style
	l.refresh()
}

// SetFontSize switches between a fixed size and AutoSize.
func (l *Label) SetFontSize(size FontSize) {
	l.style.Size = size
	l.refresh()
}

func (l *Label) SetColor(c color.NRGBA) {
	l.style.Color = c
	l.refresh()
}

func (l *Label) SetAlpha(a uint8) {
	l.style.Alpha = a
	l.refresh()
}

// FontSize returns the size the text was last rendered at, or 0 when the
// text does not fit.
func (l *Label) FontSize() int {
	return l.fontSize
}

// RenderedSize returns the bounds of the rendered text, or zero when the
// text does not fit.
func (l *Label) RenderedSize() geom.Size {
	return l.rendered
}

// Err returns ErrRenderSpaceExhausted (wrapped) while the text cannot be
// rendered, and nil otherwise.
func (l *Label) Err() error {
	return l.err
}

func (l *Label) font() string {
	if l.style.Font == "" {
		return DefaultFont
	}
	return l.style.Font
}

func (l *Label) refresh() {
	font := l.font()

	var (
		size   int
		bounds geom.Size
		err    error
	)
	if l.style.Size > AutoSize {
		// A fixed size is drawn even if it overflows the box.
		size = int(l.style.Size)
		bounds = measure(l.r, font, size, l.text)
	} else {
		size, bounds, err = FitText(l.r, font, l.text, l.Size())
	}

	if l.glyphs != nil {
		l.r.Release(l.glyphs)
		l.glyphs = nil
	}

	wasFitting := l.err == nil
	l.err = err
	if err != nil {
		l.fontSize = 0
		l.rendered = geom.Size{}
		if wasFitting && errors.Is(err, ErrRenderSpaceExhausted) {
			slog.Warn("label does not fit", "text", l.text,
				"width", l.placement.Width, "height", l.placement.Height)
		}
		return
	}

	l.fontSize = size
	l.rendered = bounds
	if !bounds.Empty() {
		l.glyphs = l.r.RenderText(font, size, l.text, withAlpha(l.style.Color, l.style.Alpha))
	}
}

// origin returns where the rendered text's top-left corner goes within the
// parent's coordinate space.
func (l *Label) origin() geom.Point {
	p := l.placement
	y := p.Y + (p.Height-l.rendered.Height)/2
	if l.style.Align == AlignStart {
		return geom.Pt(p.X, y)
	}
	return geom.Pt(p.X+(p.Width-l.rendered.Width)/2, y)
}

func (l *Label) Draw(dst Surface) {
	if l.glyphs == nil {
		return
	}
	l.r.Blit(dst, l.glyphs, l.origin())
}
