package drawable

import (
	"slices"
	"strings"
)

// Opacity classifies the pixels a drawable may produce. It is a hint for
// compositors; Translucent is always a safe answer.
type Opacity int

const (
	OpacityUnknown Opacity = iota
	// OpacityTranslucent means the drawable may produce partially
	// transparent pixels.
	OpacityTranslucent
	// OpacityTransparent means the drawable draws nothing visible.
	OpacityTransparent
	// OpacityOpaque means every pixel in the bounds is fully opaque.
	OpacityOpaque
)

func (o Opacity) String() string {
	switch o {
	case OpacityTranslucent:
		return "translucent"
	case OpacityTransparent:
		return "transparent"
	case OpacityOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Config is a bitmask of configuration axes. A drawable reports the axes
// whose change would invalidate its state.
type Config uint32

const (
	ConfigDensity Config = 1 << iota
	ConfigFontScale
	ConfigOrientation
	ConfigLocale
	ConfigUIMode
)

func (c Config) String() string {
	if c == 0 {
		return "0"
	}
	var parts []string
	for _, e := range []struct {
		bit  Config
		name string
	}{
		{ConfigDensity, "density"},
		{ConfigFontScale, "fontScale"},
		{ConfigOrientation, "orientation"},
		{ConfigLocale, "locale"},
		{ConfigUIMode, "uiMode"},
	} {
		if c&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// Callback receives redraw requests from drawables.
type Callback interface {
	InvalidateDrawable(d Drawable)
}

// CallbackFunc adapts a function to Callback.
type CallbackFunc func(d Drawable)

// InvalidateDrawable implements Callback.
func (f CallbackFunc) InvalidateDrawable(d Drawable) { f(d) }

// Drawable is something that can be drawn into bounds on a Canvas.
//
// Drawables are not safe for concurrent use; they are driven from a single
// rendering goroutine.
type Drawable interface {
	Draw(c Canvas)

	Bounds() Rect
	SetBounds(r Rect)

	// State returns the current state set.
	State() []State
	// SetState replaces the state set. It reports whether the drawable's
	// appearance changed and it needs redrawing.
	SetState(stateSet []State) bool
	IsStateful() bool

	Alpha() int
	SetAlpha(alpha int)
	SetColorFilter(cf ColorFilter)
	Opacity() Opacity

	IntrinsicWidth() int
	IntrinsicHeight() int
	// Padding returns the drawable's content insets. ok is false when the
	// drawable has no padding of its own.
	Padding() (padding Rect, ok bool)
	Outline(o *Outline)

	// Mutate makes the drawable's state private so changes to it do not
	// affect other drawables sharing the same constant state.
	Mutate() (Drawable, error)
	ConstantState() ConstantState
	ChangingConfigurations() Config

	SetCallback(cb Callback)
	InvalidateSelf()
}

// ConstantState is a shareable snapshot of a drawable's configuration.
// Drawables created from the same ConstantState share it until mutated.
type ConstantState interface {
	NewDrawable() Drawable
	// NewThemedDrawable returns a drawable with theme attributes resolved
	// against t. The shared state is left untouched.
	NewThemedDrawable(t *Theme) (Drawable, error)
	CanApplyTheme() bool
	ChangingConfigurations() Config
}

// base holds the per-instance bookkeeping common to all drawables.
type base struct {
	self     Drawable
	bounds   Rect
	stateSet []State
	callback Callback
	configs  Config
}

// Bounds returns the drawable bounds.
func (b *base) Bounds() Rect { return b.bounds }

// setBounds stores r and reports whether it differs from the old bounds.
func (b *base) setBounds(r Rect) bool {
	if b.bounds == r {
		return false
	}
	b.bounds = r
	return true
}

// State returns the current state set.
func (b *base) State() []State { return b.stateSet }

func (b *base) setState(stateSet []State) bool {
	if slices.Equal(b.stateSet, stateSet) {
		return false
	}
	b.stateSet = slices.Clone(stateSet)
	return true
}

// SetChangingConfigurations records configuration axes this drawable
// instance depends on in addition to those of its state.
func (b *base) SetChangingConfigurations(c Config) { b.configs = c }

// SetCallback sets the receiver of redraw requests. Pass nil to detach.
func (b *base) SetCallback(cb Callback) { b.callback = cb }

// InvalidateSelf asks the callback, if any, to redraw the drawable.
func (b *base) InvalidateSelf() {
	if b.callback != nil && b.self != nil {
		b.callback.InvalidateDrawable(b.self)
	}
}
