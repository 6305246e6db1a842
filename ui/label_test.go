package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/gadget/geom"
)

func TestLabelRefitsOnEveryChange(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLabel(r, geom.R(0, 0, 60, 20), "abc", DefaultLabelStyle())
	assert.Equal(t, 20, l.FontSize())
	assert.Equal(t, geom.Sz(36, 20), l.RenderedSize())

	l.SetSize(geom.Sz(10, 20))
	assert.Equal(t, 5, l.FontSize())

	l.SetText("a")
	assert.Equal(t, 10, l.FontSize())

	l.SetFontSize(14)
	assert.Equal(t, 14, l.FontSize())
	assert.NoError(t, l.Err())

	l.SetFontSize(AutoSize)
	assert.Equal(t, 10, l.FontSize())
}

func TestLabelUnrenderable(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLabel(r, geom.R(0, 0, 1, 1), "abc", DefaultLabelStyle())

	assert.ErrorIs(t, l.Err(), ErrRenderSpaceExhausted)
	assert.Zero(t, l.FontSize())
	assert.Equal(t, geom.Size{}, l.RenderedSize())

	screen := &fakeSurface{}
	l.Draw(screen)
	assert.Empty(t, screen.ops)

	// Growing the box recovers.
	l.SetSize(geom.Sz(60, 20))
	assert.NoError(t, l.Err())
	l.Draw(screen)
	assert.Len(t, screen.ops, 1)
}

func TestLabelFixedSizeOverflows(t *testing.T) {
	r := &fakeRenderer{}
	style := DefaultLabelStyle()
	style.Size = 40
	l := NewLabel(r, geom.R(0, 0, 10, 10), "abc", style)

	require.NoError(t, l.Err())
	assert.Equal(t, 40, l.FontSize())
	assert.Equal(t, geom.Sz(72, 40), l.RenderedSize())

	screen := &fakeSurface{}
	l.Draw(screen)
	require.Len(t, screen.ops, 1)
	// Centered, so it spills past both edges.
	assert.Equal(t, geom.Pt(-31, -15), screen.ops[0].at)
}

func TestLabelAlignment(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLabel(r, geom.R(10, 10, 60, 30), "abc", DefaultLabelStyle())
	screen := &fakeSurface{}
	l.Draw(screen)
	assert.Equal(t, 30, l.FontSize())

	style := l.Style()
	style.Align = AlignStart
	l.SetStyle(style)
	l.Draw(screen)

	require.Len(t, screen.ops, 2)
	w := l.RenderedSize().Width
	assert.Equal(t, geom.Pt(10+(60-w)/2, 10), screen.ops[0].at)
	assert.Equal(t, geom.Pt(10, 10), screen.ops[1].at)
}

func TestLabelRendersWithAlpha(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLabel(r, geom.R(0, 0, 60, 20), "abc", DefaultLabelStyle())
	before := l.glyphs

	l.SetColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	l.SetAlpha(99)

	assert.NotSame(t, before, l.glyphs)
	glyphs := l.glyphs.(*fakeSurface)
	assert.Equal(t, "abc", glyphs.text)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 99}, glyphs.color)
}

func TestLabelReleasesReplacedGlyphs(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLabel(r, geom.R(0, 0, 60, 20), "abc", DefaultLabelStyle())
	first := l.glyphs.(*fakeSurface)

	l.SetText("xyz")
	assert.True(t, first.released)
	second := l.glyphs.(*fakeSurface)
	assert.False(t, second.released)

	// Shrinking until nothing fits releases the glyphs too.
	l.SetSize(geom.Sz(1, 1))
	assert.True(t, second.released)
	assert.Nil(t, l.glyphs)
	assert.Equal(t, 2, r.released)
}
