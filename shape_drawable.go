package drawable

import (
	"fmt"
	"slices"
)

// ShaderFactory builds the paint shader for a given size. It is consulted
// every time a ShapeDrawable's bounds change.
type ShaderFactory interface {
	Resize(width, height int) Shader
}

// ShaderFactoryFunc adapts a function to ShaderFactory.
type ShaderFactoryFunc func(width, height int) Shader

// Resize implements ShaderFactory.
func (f ShaderFactoryFunc) Resize(width, height int) Shader { return f(width, height) }

// ShapeState is the shareable configuration of a ShapeDrawable. Drawables
// created from the same state share its paint, padding and shape until
// one of them is mutated.
type ShapeState struct {
	paint           *Paint
	shape           Shape
	padding         *Rect
	intrinsicWidth  int
	intrinsicHeight int
	alpha           int
	tint            *ColorStateList
	tintMode        BlendMode
	shaderFactory   ShaderFactory
	drawFunc        DrawFunc
	themeAttrs      []ThemeAttr
	configs         Config

	// Inflation context kept for resolving themeAttrs later.
	metrics   DisplayMetrics
	resources *Resources
}

var _ ConstantState = (*ShapeState)(nil)

// newShapeState returns a copy of orig that shares its paint, padding and
// shape, or a default state if orig is nil.
func newShapeState(orig *ShapeState) *ShapeState {
	if orig == nil {
		return &ShapeState{
			paint:    NewPaint(),
			alpha:    255,
			tintMode: DefaultTintMode,
		}
	}
	s := *orig
	s.themeAttrs = slices.Clone(orig.themeAttrs)
	return &s
}

// NewDrawable returns a drawable sharing this state.
func (s *ShapeState) NewDrawable() Drawable {
	return newShapeDrawable(s)
}

// NewThemedDrawable returns a drawable with the deferred theme attributes
// resolved against t. When there is nothing to resolve the state is shared
// as by NewDrawable; otherwise the drawable gets its own copy.
func (s *ShapeState) NewThemedDrawable(t *Theme) (Drawable, error) {
	if t == nil || !s.CanApplyTheme() {
		return newShapeDrawable(s), nil
	}
	st := newShapeState(s)
	st.paint = s.paint.Clone()
	d := newShapeDrawable(st)
	if err := d.ApplyTheme(t); err != nil {
		return nil, err
	}
	return d, nil
}

// CanApplyTheme reports whether the state holds theme references that have
// not been resolved yet.
func (s *ShapeState) CanApplyTheme() bool { return len(s.themeAttrs) > 0 }

// ChangingConfigurations returns the configuration axes the state depends on.
func (s *ShapeState) ChangingConfigurations() Config { return s.configs }

// ThemeAttrs returns the deferred theme references.
func (s *ShapeState) ThemeAttrs() []ThemeAttr { return slices.Clone(s.themeAttrs) }

// ShapeDrawable draws a Shape with a Paint. Without a shape it fills its
// bounds.
type ShapeDrawable struct {
	base
	state      *ShapeState
	tintFilter ColorFilter
	mutated    bool
	tagHandler TagHandler
}

var _ Drawable = (*ShapeDrawable)(nil)

// NewShapeDrawable creates a ShapeDrawable with a default anti-aliased
// black paint.
func NewShapeDrawable(opts ...Option) *ShapeDrawable {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	st := newShapeState(nil)
	st.shape = o.shape
	st.drawFunc = o.drawFunc
	d := newShapeDrawable(st)
	d.tagHandler = o.tagHandler
	d.callback = o.callback
	return d
}

func newShapeDrawable(st *ShapeState) *ShapeDrawable {
	d := &ShapeDrawable{state: st}
	d.self = d
	d.initializeWithState()
	return d
}

// initializeWithState derives the per-instance values from the state.
func (d *ShapeDrawable) initializeWithState() {
	d.tintFilter = d.updateTintFilter()
}

// updateTintFilter returns the filter for the current tint and state set, or
// nil without a tint.
func (d *ShapeDrawable) updateTintFilter() ColorFilter {
	tint := d.state.tint
	if tint == nil {
		return nil
	}
	c := tint.ColorForState(d.stateSet, tint.DefaultColor())
	return NewPorterDuffColorFilter(c, d.state.tintMode)
}

// modulateAlpha scales paintAlpha by alpha, treating 255 as exactly one.
func modulateAlpha(paintAlpha, alpha int) int {
	scale := alpha + (alpha >> 7)
	return paintAlpha * scale >> 8
}

// Draw draws the drawable into its bounds. The paint alpha is restored
// before Draw returns.
func (d *ShapeDrawable) Draw(c Canvas) {
	r := d.bounds
	st := d.state
	p := st.paint

	prevAlpha := p.Alpha()
	p.SetAlpha(modulateAlpha(prevAlpha, st.alpha))
	defer p.SetAlpha(prevAlpha)

	if _, xfer := p.Xfermode(); p.Alpha() == 0 && !xfer {
		return
	}

	clearFilter := false
	if d.tintFilter != nil && p.ColorFilter() == nil {
		p.SetColorFilter(d.tintFilter)
		clearFilter = true
	}

	if st.shape != nil {
		n := c.Save()
		c.Translate(float64(r.Left), float64(r.Top))
		d.onDraw(st.shape, c, p)
		c.RestoreToCount(n)
	} else {
		c.DrawRect(r.RectF(), p)
	}

	if clearFilter {
		p.SetColorFilter(nil)
	}
}

func (d *ShapeDrawable) onDraw(s Shape, c Canvas, p *Paint) {
	if d.state.drawFunc != nil {
		d.state.drawFunc(s, c, p)
		return
	}
	s.Draw(c, p)
}

// SetBounds sets the drawable bounds and resizes the shape to match.
func (d *ShapeDrawable) SetBounds(r Rect) {
	if d.setBounds(r) {
		d.updateShape()
	}
}

// updateShape resizes the shape and rebuilds the shader for the current
// bounds, then requests a redraw.
func (d *ShapeDrawable) updateShape() {
	st := d.state
	w, h := d.bounds.Width(), d.bounds.Height()
	if st.shape != nil {
		st.shape.Resize(float64(w), float64(h))
	}
	if st.shaderFactory != nil {
		st.paint.SetShader(st.shaderFactory.Resize(w, h))
	}
	d.InvalidateSelf()
}

// SetState sets the state set. It reports true when a tint is set, since the
// tint colour may depend on the state.
func (d *ShapeDrawable) SetState(stateSet []State) bool {
	if !d.setState(stateSet) {
		return false
	}
	return d.onStateChange()
}

func (d *ShapeDrawable) onStateChange() bool {
	if d.state.tint == nil {
		return false
	}
	d.tintFilter = d.updateTintFilter()
	return true
}

// IsStateful reports whether the tint depends on the state set.
func (d *ShapeDrawable) IsStateful() bool {
	return d.state.tint != nil && d.state.tint.IsStateful()
}

// Mutate gives the drawable a private copy of its state, so later changes
// to paint, padding or shape do not leak into drawables sharing the
// original. Calling it again is a no-op. If the shape cannot be cloned the
// drawable stays unmutated and the error wraps ErrCloneNotSupported.
func (d *ShapeDrawable) Mutate() (Drawable, error) {
	if d.mutated {
		return d, nil
	}
	old := d.state
	st := newShapeState(old)
	if old.paint != nil {
		st.paint = old.paint.Clone()
	} else {
		st.paint = NewPaint()
	}
	if old.padding != nil {
		p := *old.padding
		st.padding = &p
	}
	if old.shape != nil {
		s, err := old.shape.Clone()
		if err != nil {
			Logger().Debug("drawable: shape not cloneable", "shape", fmt.Sprintf("%T", old.shape), "err", err)
			return nil, fmt.Errorf("drawable: mutate: %w", err)
		}
		st.shape = s
	}
	d.state = st
	d.mutated = true
	return d, nil
}

// ConstantState returns the shareable state. The instance's changing
// configurations are folded into it first.
func (d *ShapeDrawable) ConstantState() ConstantState {
	d.state.configs |= d.configs
	return d.state
}

// ChangingConfigurations returns the configuration axes the drawable
// depends on.
func (d *ShapeDrawable) ChangingConfigurations() Config {
	return d.configs | d.state.configs
}

// Opacity reports Transparent or Opaque only for a shapeless drawable with
// no transfer mode whose effective alpha is 0 or 255.
func (d *ShapeDrawable) Opacity() Opacity {
	st := d.state
	if st.shape == nil {
		if _, xfer := st.paint.Xfermode(); !xfer {
			switch modulateAlpha(st.paint.Alpha(), st.alpha) {
			case 0:
				return OpacityTransparent
			case 255:
				return OpacityOpaque
			}
		}
	}
	return OpacityTranslucent
}

// Outline stores the shape's outline in o. It leaves o untouched when there
// is no shape.
func (d *ShapeDrawable) Outline(o *Outline) {
	if d.state.shape == nil {
		return
	}
	d.state.shape.Outline(o)
	o.SetAlpha(float64(d.Alpha()) / 255)
}

// Alpha returns the drawable alpha, 0..255.
func (d *ShapeDrawable) Alpha() int { return d.state.alpha }

// SetAlpha sets the drawable alpha. It multiplies the paint alpha when
// drawing.
func (d *ShapeDrawable) SetAlpha(alpha int) {
	d.state.alpha = clamp(alpha, 0, 255)
	d.InvalidateSelf()
}

// SetColorFilter sets the paint's colour filter. An explicit filter takes
// precedence over the tint.
func (d *ShapeDrawable) SetColorFilter(cf ColorFilter) {
	d.state.paint.SetColorFilter(cf)
	d.InvalidateSelf()
}

// SetTint tints the drawable with a single colour.
func (d *ShapeDrawable) SetTint(c Color) {
	d.SetTintList(ColorStateListOf(c))
}

// SetTintList tints the drawable with a state dependent colour. Pass nil to
// remove the tint.
func (d *ShapeDrawable) SetTintList(tint *ColorStateList) {
	d.state.tint = tint
	d.tintFilter = d.updateTintFilter()
	d.InvalidateSelf()
}

// TintList returns the tint, or nil.
func (d *ShapeDrawable) TintList() *ColorStateList { return d.state.tint }

// SetTintMode sets how the tint is blended with the drawn pixels.
func (d *ShapeDrawable) SetTintMode(m BlendMode) {
	d.state.tintMode = m
	d.tintFilter = d.updateTintFilter()
	d.InvalidateSelf()
}

// TintMode returns the tint blend mode.
func (d *ShapeDrawable) TintMode() BlendMode { return d.state.tintMode }

// SetDither enables dithering of the paint.
func (d *ShapeDrawable) SetDither(dither bool) {
	d.state.paint.SetDither(dither)
	d.InvalidateSelf()
}

// Paint returns the paint. Call Mutate first if the drawable shares its
// state and the change must stay local.
func (d *ShapeDrawable) Paint() *Paint { return d.state.paint }

// Shape returns the shape, or nil.
func (d *ShapeDrawable) Shape() Shape { return d.state.shape }

// SetShape sets the shape and resizes it to the current bounds.
func (d *ShapeDrawable) SetShape(s Shape) {
	d.state.shape = s
	d.updateShape()
}

// ShaderFactory returns the shader factory, or nil.
func (d *ShapeDrawable) ShaderFactory() ShaderFactory { return d.state.shaderFactory }

// SetShaderFactory sets the factory used to rebuild the paint shader when
// the bounds change.
func (d *ShapeDrawable) SetShaderFactory(f ShaderFactory) {
	d.state.shaderFactory = f
}

// IntrinsicWidth returns the preferred width, or 0.
func (d *ShapeDrawable) IntrinsicWidth() int { return d.state.intrinsicWidth }

// IntrinsicHeight returns the preferred height, or 0.
func (d *ShapeDrawable) IntrinsicHeight() int { return d.state.intrinsicHeight }

// SetIntrinsicWidth sets the preferred width.
func (d *ShapeDrawable) SetIntrinsicWidth(w int) {
	d.state.intrinsicWidth = w
	d.InvalidateSelf()
}

// SetIntrinsicHeight sets the preferred height.
func (d *ShapeDrawable) SetIntrinsicHeight(h int) {
	d.state.intrinsicHeight = h
	d.InvalidateSelf()
}

// Padding returns the padding. ok is false when none is set.
func (d *ShapeDrawable) Padding() (Rect, bool) {
	if d.state.padding == nil {
		return Rect{}, false
	}
	return *d.state.padding, true
}

// SetPadding sets the padding insets. All zeros clears the padding.
func (d *ShapeDrawable) SetPadding(left, top, right, bottom int) {
	if left|top|right|bottom == 0 {
		d.state.padding = nil
	} else {
		if d.state.padding == nil {
			d.state.padding = &Rect{}
		}
		*d.state.padding = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	}
	d.InvalidateSelf()
}

// SetPaddingRect sets the padding from r. A nil or all-zero r clears it.
func (d *ShapeDrawable) SetPaddingRect(r *Rect) {
	if r == nil {
		d.SetPadding(0, 0, 0, 0)
		return
	}
	d.SetPadding(r.Left, r.Top, r.Right, r.Bottom)
}
