// Package palette holds named colors loaded from a TOML file.
//
// A palette file maps names to RGB or RGBA tuples, or to CSS color names:
//
//	[colors]
//	background = [240, 240, 240]
//	overlay    = [0, 0, 0, 128]
//	accent     = "steelblue"
//
// The process-wide registry is filled once by Init and is read-only after
// that.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

var (
	// ErrMissingConfig is returned by Load when the palette file does not
	// exist.
	ErrMissingConfig = errors.New("palette file not found")
	// ErrMalformed is returned when the file cannot be decoded or holds
	// entries that are not colors.
	ErrMalformed = errors.New("malformed palette")
)

// Built-in colors.
var (
	Red    = color.NRGBA{R: 255, A: 255}
	Black  = color.NRGBA{A: 255}
	White  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Green  = color.NRGBA{G: 255, A: 255}
	Grey   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow = color.NRGBA{R: 255, G: 255, A: 255}
	Orange = color.NRGBA{R: 255, G: 165, A: 255}
	Blue   = color.NRGBA{B: 255, A: 255}
)

// Registry maps lower-cased names to colors.
type Registry struct {
	colors map[string]color.NRGBA
}

type file struct {
	Colors map[string]any `toml:"colors"`
}

// Empty returns a registry with no colors.
func Empty() *Registry {
	return &Registry{colors: make(map[string]color.NRGBA)}
}

// Parse decodes a palette document. Entries that are not valid colors are
// skipped; the returned registry holds the rest and the error wraps
// ErrMalformed.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Empty(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	r := Empty()
	var errs []error
	for name, v := range f.Colors {
		c, err := decode(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: color %q: %w", ErrMalformed, name, err))
			continue
		}
		r.colors[strings.ToLower(name)] = c
	}
	return r, errors.Join(errs...)
}

// Load reads and parses the palette at path. A missing file yields an
// empty registry and an error wrapping ErrMissingConfig.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Empty(), fmt.Errorf("%w: %s", ErrMissingConfig, path)
	}
	if err != nil {
		return Empty(), fmt.Errorf("reading palette %s failed: %w", path, err)
	}
	return Parse(data)
}

func decode(v any) (color.NRGBA, error) {
	switch v := v.(type) {
	case string:
		c, ok := colornames.Map[strings.ToLower(v)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown CSS color %q", v)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	case []any:
		if len(v) != 3 && len(v) != 4 {
			return color.NRGBA{}, fmt.Errorf("want 3 or 4 components, got %d", len(v))
		}
		comps := [4]uint8{3: 255}
		for i, x := range v {
			n, err := component(x)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("component %d: %w", i, err)
			}
			comps[i] = n
		}
		return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unsupported value %v (%T)", v, v)
}

func component(x any) (uint8, error) {
	var n int64
	switch x := x.(type) {
	case int64:
		n = x
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		n = int64(x)
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", x, x)
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%d out of range 0..255", n)
	}
	return uint8(n), nil
}

// Lookup returns the color registered under name, ignoring case. Misses are
// logged.
func (r *Registry) Lookup(name string) (color.NRGBA, bool) {
	c, ok := r.colors[strings.ToLower(name)]
	if !ok {
		slog.Warn("unknown color", "name", name)
	}
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.colors))
	for n := range r.colors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.colors)
}

var (
	initOnce sync.Once
	global   = Empty()
)

// Init loads the process-wide registry from path. Only the first call has
// any effect. Load problems are logged and leave the registry empty or
// partially filled; they are never fatal.
func Init(path string) {
	initOnce.Do(func() {
		r, err := Load(path)
		if err != nil {
			slog.Warn("palette not fully loaded", "path", path, "err", err)
		}
		global = r
	})
}

// Lookup finds name in the process-wide registry.
func Lookup(name string) (color.NRGBA, bool) {
	return global.Lookup(name)
}

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}
