package drawable

import (
	"errors"
	"fmt"
)

var (
	// ErrCloneNotSupported is returned by Shape.Clone and Mutate when a shape
	// cannot be copied. The drawable stays usable, it just keeps sharing its
	// state.
	ErrCloneNotSupported = errors.New("drawable: shape does not support cloning")

	// ErrUnknownDrawable is returned by Inflate for a top-level element that
	// does not name a drawable type.
	ErrUnknownDrawable = errors.New("drawable: unknown drawable element")

	// ErrThemeCycle reports a theme attribute that refers back to itself.
	ErrThemeCycle = errors.New("drawable: theme attribute cycle")

	// ErrUnresolved reports a reference that neither the theme nor the
	// resources could satisfy where a concrete value was required.
	ErrUnresolved = errors.New("drawable: unresolved reference")

	// ErrUnknownBlendMode is returned by ParseBlendMode for a name or code
	// it does not know.
	ErrUnknownBlendMode = errors.New("drawable: unknown blend mode")

	// ErrSharedOption is returned by Resources.Drawable for a drawable option
	// that would change the shared state of a cached resource.
	ErrSharedOption = errors.New("drawable: option changes shared resource state")
)

// AttributeError describes a markup attribute whose value could not be
// interpreted.
type AttributeError struct {
	Attr  string
	Value string
	Err   error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("drawable: attribute %s=%q: %v", e.Attr, e.Value, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// ThemeError is returned when deferred theme attributes cannot be applied.
// It indicates a broken style chain rather than bad input to a single call.
type ThemeError struct {
	Theme string
	Err   error
}

func (e *ThemeError) Error() string {
	if e.Theme == "" {
		return "drawable: apply theme: " + e.Err.Error()
	}
	return fmt.Sprintf("drawable: apply theme %q: %v", e.Theme, e.Err)
}

func (e *ThemeError) Unwrap() error { return e.Err }
