package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigError.
	ErrConfiguration = errors.New("invalid widget configuration")
	// ErrRenderSpaceExhausted means no font size of at least one pixel fits
	// the label's box. The label keeps working but draws nothing.
	ErrRenderSpaceExhausted = errors.New("text does not fit at any font size")
	// ErrAlreadyAttached is returned when adding an element that already has
	// a parent.
	ErrAlreadyAttached = errors.New("element already belongs to a container")
	// ErrCycle is returned when adding a container to itself or to one of its
	// descendants.
	ErrCycle = errors.New("element would contain itself")
	// ErrNilElement is returned when adding a nil element.
	ErrNilElement = errors.New("nil element")
)

// ConfigError reports a widget that was constructed with settings it cannot
// honor.
type ConfigError struct {
	Widget string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Widget, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
