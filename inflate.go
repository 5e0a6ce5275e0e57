package drawable

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/drawable/markup"
)

// Inflate creates a drawable from a markup element. The element name picks
// the drawable type; only "shape" is known.
func Inflate(el *markup.Element, opts ...InflateOption) (Drawable, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrUnknownDrawable)
	}
	o := defaultInflateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch el.Name {
	case "shape":
		d := NewShapeDrawable(o.options...)
		if err := d.Inflate(el, opts...); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: <%s>", ErrUnknownDrawable, el.Name)
}

// InflateXML decodes an XML document from r and inflates its root element.
func InflateXML(r io.Reader, opts ...InflateOption) (Drawable, error) {
	el, err := markup.Decode(r)
	if err != nil {
		return nil, err
	}
	return Inflate(el, opts...)
}

// Inflate overlays the attributes of el onto the drawable's state. Values
// el does not mention keep their current setting. Child elements go to the
// tag handler first, then to the built-in padding handling; anything else
// is logged and skipped.
func (d *ShapeDrawable) Inflate(el *markup.Element, opts ...InflateOption) error {
	o := defaultInflateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d.state.metrics = o.metrics
	d.state.resources = o.resources

	if err := d.updateStateFromAttributes(newAttributes(el.Attrs, &o)); err != nil {
		return err
	}

	for _, child := range el.Children {
		handled, err := d.inflateTag(child, newAttributes(child.Attrs, &o))
		if err != nil {
			return fmt.Errorf("drawable: <%s>: %w", child.Name, err)
		}
		if !handled {
			Logger().Warn("drawable: unknown element", "element", child.Name, "drawable", "ShapeDrawable")
		}
	}

	d.initializeWithState()
	return nil
}

// inflateTag handles one child element and reports whether it was
// recognised.
func (d *ShapeDrawable) inflateTag(el *markup.Element, a *Attributes) (bool, error) {
	if d.tagHandler != nil {
		handled, err := d.tagHandler(d, el, a)
		if handled || err != nil {
			return handled, err
		}
	}
	if el.Name != "padding" {
		return false, nil
	}

	var pad [4]int
	for i, name := range [4]string{"left", "top", "right", "bottom"} {
		v, err := a.DimensionPixelOffset(name, 0)
		if err != nil {
			return true, err
		}
		pad[i] = v
	}
	d.SetPadding(pad[0], pad[1], pad[2], pad[3])
	return true, nil
}

// updateStateFromAttributes reads the drawable attributes from a into the
// state. Attributes a does not resolve leave the state untouched, and the
// state is only written once every attribute has been read.
func (d *ShapeDrawable) updateStateFromAttributes(a *Attributes) error {
	st := d.state
	p := st.paint

	c, err := a.Color("color", p.Color())
	if err != nil {
		return err
	}
	dither, err := a.Bool("dither", p.IsDither())
	if err != nil {
		return err
	}
	h, err := a.Dimension("height", float64(st.intrinsicHeight))
	if err != nil {
		return err
	}
	w, err := a.Dimension("width", float64(st.intrinsicWidth))
	if err != nil {
		return err
	}
	mode, err := a.BlendMode("tintMode", st.tintMode)
	if errors.Is(err, ErrUnknownBlendMode) {
		Logger().Warn("drawable: unknown tint mode", "err", err, "using", DefaultTintMode.String())
		mode, err = DefaultTintMode, nil
	}
	if err != nil {
		return err
	}
	tint, err := a.ColorStateList("tint")
	if err != nil {
		return err
	}

	p.SetColor(c)
	p.SetDither(dither)
	d.SetIntrinsicHeight(int(h))
	d.SetIntrinsicWidth(int(w))
	st.tintMode = mode
	if tint != nil {
		st.tint = tint
	}
	st.configs |= a.ChangingConfigurations()
	st.themeAttrs = a.ThemeAttrs()
	return nil
}

// ApplyTheme resolves the deferred theme attributes against t. It is a
// no-op when nothing is deferred. References t cannot resolve either stay
// deferred; a cycle or a malformed resolved value is returned as a
// *ThemeError.
//
// ApplyTheme changes the state in place; use ConstantState().NewThemedDrawable
// to theme a private copy.
func (d *ShapeDrawable) ApplyTheme(t *Theme) error {
	st := d.state
	if t == nil || len(st.themeAttrs) == 0 {
		return nil
	}
	o := defaultInflateOptions()
	if st.metrics != (DisplayMetrics{}) {
		o.metrics = st.metrics
	}
	o.resources = st.resources
	if err := d.updateStateFromAttributes(themeAttributes(st.themeAttrs, t, &o)); err != nil {
		return &ThemeError{Theme: t.Name, Err: err}
	}
	d.initializeWithState()
	return nil
}

// InflateColorStateList builds a ColorStateList from a selector element:
//
//	<selector>
//	  <item android:state_pressed="true" android:color="#ff0000"/>
//	  <item android:state_enabled="false" android:color="@color/grey"/>
//	  <item android:color="#000000" android:alpha="0.5"/>
//	</selector>
//
// A state attribute set to false means the state must be absent.
func InflateColorStateList(el *markup.Element, opts ...InflateOption) (*ColorStateList, error) {
	if el == nil || el.Name != "selector" {
		return nil, fmt.Errorf("drawable: color state list: want <selector>")
	}
	o := defaultInflateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var specs [][]State
	var colors []Color
	for _, item := range el.Children {
		if item.Name != "item" {
			continue
		}
		a := newAttributes(item.Attrs, &o)
		if !a.Has("color") {
			return nil, fmt.Errorf("drawable: <item> requires a color attribute")
		}
		c, err := a.Color("color", Transparent)
		if err != nil {
			return nil, err
		}
		alpha, err := a.Float("alpha", 1)
		if err != nil {
			return nil, err
		}
		if alpha != 1 {
			c = c.WithAlpha(clampAlpha(int(math.Round(float64(c.A()) * alpha))))
		}

		var spec []State
		for _, at := range item.Attrs {
			if !strings.HasPrefix(at.Name, "state_") {
				continue
			}
			s, err := ParseState(at.Name)
			if err != nil {
				return nil, &AttributeError{Attr: at.Name, Value: at.Value, Err: err}
			}
			on, err := strconv.ParseBool(strings.TrimSpace(at.Value))
			if err != nil {
				return nil, &AttributeError{Attr: at.Name, Value: at.Value, Err: err}
			}
			if !on {
				s = -s
			}
			spec = append(spec, s)
		}
		specs = append(specs, spec)
		colors = append(colors, c)
	}
	return NewColorStateList(specs, colors)
}
