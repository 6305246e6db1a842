package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/gadget/geom"
	"github.com/OpticalFlyer/gadget/ui"
)

func TestNewRegistersBuiltinFonts(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, family := range []string{FontSans, FontMonospace, FontBold} {
		assert.Contains(t, r.sources, family)
	}
	assert.False(t, r.MonotonicText())
}

func TestNewRejectsUnknownFallback(t *testing.T) {
	_, err := New(WithFallbackFont("comic"))
	assert.Error(t, err)
}

func TestRegisterFontRejectsGarbage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.RegisterFont("junk", []byte("not a font")))
	assert.NotContains(t, r.sources, "junk")
}

func TestMeasureTextGrowsWithSize(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w10, h10 := r.MeasureText(FontMonospace, 10, "hello")
	w20, h20 := r.MeasureText(FontMonospace, 20, "hello")
	assert.Greater(t, w10, 0.0)
	assert.Greater(t, w20, w10)
	assert.Greater(t, h20, h10)

	// Monospace glyphs share one advance.
	wi, _ := r.MeasureText(FontMonospace, 20, "iiiii")
	assert.InDelta(t, w20, wi, 0.01)
}

func TestUnknownFamilyFallsBack(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w, h := r.MeasureText("no-such-family", 16, "abc")
	fw, fh := r.MeasureText(FontMonospace, 16, "abc")
	assert.Equal(t, fw, w)
	assert.Equal(t, fh, h)
	assert.True(t, r.warned["no-such-family"])
}

func TestFitTextWithGoFonts(t *testing.T) {
	linear, err := New()
	require.NoError(t, err)
	bisect, err := New(WithMonotonicText(true))
	require.NoError(t, err)

	box := geom.Sz(120, 40)
	ls, lb, err := ui.FitText(linear, FontSans, "Click Me!", box)
	require.NoError(t, err)
	assert.True(t, lb.Fits(box))
	assert.GreaterOrEqual(t, ls, 1)

	bs, _, err := ui.FitText(bisect, FontSans, "Click Me!", box)
	require.NoError(t, err)
	assert.Equal(t, ls, bs)
}

func TestZeroSizedSurfaces(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	s := r.NewSurface(geom.Sz(0, 10))
	assert.True(t, s.Bounds().Empty())
	// Drawing onto it is a no-op.
	r.FillRect(s, nil, geom.R(0, 0, 5, 5))
	r.FillCircle(s, nil, geom.Pt(1, 1), 3)
	r.Blit(s, s, geom.Pt(0, 0))
	r.Release(s)
}
