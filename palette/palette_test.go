package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "palette.toml"))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"accent", "background", "overlay"}, r.Names())

	c, ok := r.Lookup("background")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 240, G: 240, B: 240, A: 255}, c)

	c, ok = r.Lookup("Overlay")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{A: 128}, c)

	c, ok = r.Lookup("accent")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 70, G: 130, B: 180, A: 255}, c)
}

func TestLookupMiss(t *testing.T) {
	r := Empty()
	c, ok := r.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, color.NRGBA{}, c)
}

func TestLoadMissingFile(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrMissingConfig)
	require.NotNil(t, r)
	assert.Zero(t, r.Len())
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantLen int
	}{
		{name: "not toml", doc: "[colors\nred = ", wantLen: 0},
		{name: "too few components", doc: "[colors]\nred = [255, 0]\nok = [1, 2, 3]", wantLen: 1},
		{name: "out of range", doc: "[colors]\nred = [256, 0, 0]\nok = [1, 2, 3]", wantLen: 1},
		{name: "fractional", doc: "[colors]\nred = [0.5, 0, 0]\nok = [1, 2, 3]", wantLen: 1},
		{name: "unknown css name", doc: "[colors]\nred = \"reddish\"\nok = \"red\"", wantLen: 1},
		{name: "wrong type", doc: "[colors]\nred = true\nok = [1, 2, 3, 4]", wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrMalformed)
			require.NotNil(t, r)
			assert.Equal(t, tt.wantLen, r.Len())
			if tt.wantLen > 0 {
				_, ok := r.Lookup("ok")
				assert.True(t, ok)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	r, err := Parse(nil)
	assert.NoError(t, err)
	assert.Zero(t, r.Len())
}

func TestInitOnce(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte("[colors]\nink = [1, 2, 3]\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("[colors]\npaper = [4, 5, 6]\n"), 0o644))

	Init(first)
	Init(second)

	c, ok := Lookup("ink")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, c)
	_, ok = Lookup("paper")
	assert.False(t, ok)
	assert.Same(t, Default(), global)
}
