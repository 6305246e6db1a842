package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/OpticalFlyer/gadget/geom"
)

var _ Element = (*Slider)(nil)
var _ Dragger = (*Slider)(nil)

// maxJumpPrecision caps the number of decimal places a slider value keeps.
const maxJumpPrecision = 6

// SliderRange is the value domain of a slider. Values are multiples of Jump
// counted from Min, clamped to [Min, Max].
type SliderRange struct {
	Min, Max float64
	Jump     float64
	Value    float64
}

// steps returns how many jumps fit between Min and Max.
func (sr SliderRange) steps() float64 {
	return (sr.Max - sr.Min) / sr.Jump
}

// SliderStyle defines slider appearance.
type SliderStyle struct {
	BarColor   color.NRGBA
	KnobColor  color.NRGBA
	Alpha      uint8
	KnobRadius float64
	// LabelHeight is the height of the label box under the track.
	LabelHeight float64
	Label       LabelStyle
}

// DefaultSliderStyle returns a black bar with a red knob.
func DefaultSliderStyle() SliderStyle {
	return SliderStyle{
		BarColor:    color.NRGBA{A: 255},
		KnobColor:   color.NRGBA{R: 255, A: 255},
		Alpha:       255,
		KnobRadius:  5,
		LabelHeight: 20,
		Label:       DefaultLabelStyle(),
	}
}

// Slider is a horizontal track with a knob. Its label reads "text: value".
type Slider struct {
	Base

	r         Renderer
	style     SliderStyle
	rng       SliderRange
	precision int
	value     float64
	text      string
	label     *Label
	onSlide   func()
}

// NewSlider creates a slider. It fails with a ConfigError when the range is
// empty, the jump is not positive, or the track has fewer pixels than the
// range has jumps.
func NewSlider(r Renderer, placement geom.Rect, text string, rng SliderRange, onChange func()) (*Slider, error) {
	placement = placement.Canon()
	switch {
	case !(rng.Jump > 0):
		return nil, &ConfigError{Widget: "slider", Reason: fmt.Sprintf("jump %g must be positive", rng.Jump)}
	case !(rng.Max > rng.Min):
		return nil, &ConfigError{Widget: "slider", Reason: fmt.Sprintf("max %g must exceed min %g", rng.Max, rng.Min)}
	case placement.Width < rng.steps():
		return nil, &ConfigError{
			Widget: "slider",
			Reason: fmt.Sprintf("track width %g is narrower than its %g steps", placement.Width, rng.steps()),
		}
	}

	s := &Slider{
		Base:      newBase(placement),
		r:         r,
		style:     DefaultSliderStyle(),
		rng:       rng,
		precision: decimalPlaces(rng.Jump),
		text:      text,
		onSlide:   onChange,
	}
	s.value = s.snap(rng.Value)
	s.label = NewLabel(r, s.labelPlacement(), s.caption(), s.style.Label)
	s.onChange = func(p geom.Rect) {
		if p.Width < s.rng.steps() {
			slog.Warn("slider track narrower than its steps", "width", p.Width, "steps", s.rng.steps())
		}
		s.label.SetPlacement(s.labelPlacement())
	}
	return s, nil
}

func (s *Slider) labelPlacement() geom.Rect {
	p := s.placement
	return geom.R(p.X, p.Y+p.Height/2+s.style.KnobRadius, p.Width, s.style.LabelHeight)
}

func (s *Slider) caption() string {
	return s.text + ": " + FormatValue(s.value)
}

// Range returns the slider's bounds and jump; Value holds the current value.
func (s *Slider) Range() SliderRange {
	rng := s.rng
	rng.Value = s.value
	return rng
}

func (s *Slider) Value() float64 {
	return s.value
}

// SetValue clamps v to the range, snaps it to the nearest jump and updates
// the label. It does not run the callback.
func (s *Slider) SetValue(v float64) {
	s.value = s.snap(v)
	s.label.SetText(s.caption())
}

func (s *Slider) Text() string {
	return s.text
}

func (s *Slider) SetText(text string) {
	s.text = text
	s.label.SetText(s.caption())
}

func (s *Slider) Style() SliderStyle {
	return s.style
}

func (s *Slider) SetStyle(style SliderStyle) {
	s.style = style
	s.label.SetStyle(style.Label)
	s.label.SetPlacement(s.labelPlacement())
}

func (s *Slider) SetOnChange(fn func()) {
	s.onSlide = fn
}

// LabelPlacement returns where the label sits, just below the knob.
func (s *Slider) LabelPlacement() geom.Rect {
	return s.label.Placement()
}

func (s *Slider) LabelText() string {
	return s.label.Text()
}

func (s *Slider) pixelsPerJump() float64 {
	return s.placement.Width / s.rng.steps()
}

// knob returns the knob center in parent coordinates.
func (s *Slider) knob() geom.Point {
	p := s.placement
	return geom.Pt(p.X+s.pixelsPerJump()*((s.value-s.rng.Min)/s.rng.Jump), p.Y+p.Height/2)
}

func (s *Slider) Draw(dst Surface) {
	s.r.FillRect(dst, withAlpha(s.style.BarColor, s.style.Alpha), s.placement)
	s.r.FillCircle(dst, withAlpha(s.style.KnobColor, 255), s.knob(), s.style.KnobRadius)
	s.label.Draw(dst)
}

// Clicked moves the knob under p and runs the callback. The hit region is
// the track grown by the knob radius, since the knob overhangs the track.
func (s *Slider) Clicked(p geom.Point) bool {
	track := s.AbsoluteBounds()
	if !track.Expand(s.style.KnobRadius).Hit(p) {
		return false
	}
	s.SetValue(s.valueAt(p.X - track.X))
	if s.onSlide != nil {
		s.onSlide()
	}
	return true
}

// Drag is Clicked; the host calls it every frame while the pointer is held.
func (s *Slider) Drag(p geom.Point) bool {
	return s.Clicked(p)
}

// valueAt converts a horizontal distance from the track's left edge into a
// value.
func (s *Slider) valueAt(distance float64) float64 {
	ppj := s.pixelsPerJump()
	if ppj <= 0 {
		return s.value
	}
	// Round to the jump's precision first so float noise such as
	// 3.4999999 steps does not fall to the lower step.
	steps := math.Round(roundTo(distance/ppj, s.precision))
	return roundTo(steps*s.rng.Jump+s.rng.Min, s.precision)
}

// snap clamps v to the range and rounds it to the nearest jump.
func (s *Slider) snap(v float64) float64 {
	if math.IsNaN(v) {
		v = s.rng.Min
	}
	v = clamp(v, s.rng.Min, s.rng.Max)
	steps := math.Round((v - s.rng.Min) / s.rng.Jump)
	return clamp(roundTo(s.rng.Min+steps*s.rng.Jump, s.precision), s.rng.Min, s.rng.Max)
}

// FormatValue prints v without a trailing fractional part when it is
// integral: 7 prints as "7", 7.5 as "7.5".
func FormatValue(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decimalPlaces returns the digits after the point in the shortest decimal
// form of v, capped at maxJumpPrecision.
func decimalPlaces(v float64) int {
	str := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	i := strings.IndexByte(str, '.')
	if i < 0 {
		return 0
	}
	return min(len(str)-i-1, maxJumpPrecision)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
