package drawable

import "github.com/gogpu/drawable/markup"

// Option configures a ShapeDrawable during creation.
//
// Example:
//
//	// A plain rectangle filling its bounds
//	d := drawable.NewShapeDrawable()
//
//	// An oval, redrawn through a view's invalidation hook
//	d := drawable.NewShapeDrawable(
//		drawable.WithShape(drawable.NewOvalShape()),
//		drawable.WithCallback(view),
//	)
type Option func(*options)

// options holds optional configuration for ShapeDrawable creation.
type options struct {
	shape      Shape
	tagHandler TagHandler
	drawFunc   DrawFunc
	callback   Callback
}

// TagHandler inflates a child element the ShapeDrawable does not know
// itself. It reports whether it handled el; unhandled elements fall through
// to the built-in handling and are logged if still unknown.
type TagHandler func(d *ShapeDrawable, el *markup.Element, attrs *Attributes) (bool, error)

// DrawFunc draws shape onto c with p. It replaces the default call to
// shape.Draw, with the canvas already translated to the bounds origin.
type DrawFunc func(shape Shape, c Canvas, p *Paint)

// WithShape sets the shape to draw. Without a shape the drawable fills its
// bounds.
func WithShape(s Shape) Option {
	return func(o *options) {
		o.shape = s
	}
}

// WithTagHandler installs a handler for extra child elements during
// inflation.
//
// Example:
//
//	d := drawable.NewShapeDrawable(drawable.WithTagHandler(
//		func(d *drawable.ShapeDrawable, el *markup.Element, a *drawable.Attributes) (bool, error) {
//			if el.Name != "corners" {
//				return false, nil
//			}
//			r, err := a.Dimension("radius", 0)
//			if err != nil {
//				return true, err
//			}
//			rr, err := drawable.NewRoundRectShape([]float64{r, r, r, r, r, r, r, r}, nil, nil)
//			if err != nil {
//				return true, err
//			}
//			d.SetShape(rr)
//			return true, nil
//		}))
func WithTagHandler(h TagHandler) Option {
	return func(o *options) {
		o.tagHandler = h
	}
}

// WithDrawFunc overrides how the shape is drawn.
func WithDrawFunc(f DrawFunc) Option {
	return func(o *options) {
		o.drawFunc = f
	}
}

// WithCallback sets the receiver of redraw requests.
func WithCallback(cb Callback) Option {
	return func(o *options) {
		o.callback = cb
	}
}

// InflateOption configures inflation from markup.
type InflateOption func(*inflateOptions)

type inflateOptions struct {
	theme     *Theme
	metrics   DisplayMetrics
	resources *Resources
	options   []Option
}

func defaultInflateOptions() inflateOptions {
	return inflateOptions{
		metrics: DefaultDisplayMetrics(),
	}
}

// WithTheme resolves theme references (?attr/name) while inflating. Without
// a theme such references are deferred until ApplyTheme.
func WithTheme(t *Theme) InflateOption {
	return func(o *inflateOptions) {
		o.theme = t
	}
}

// WithDisplayMetrics sets the metrics used to convert dp, sp and physical
// units to pixels.
func WithDisplayMetrics(m DisplayMetrics) InflateOption {
	return func(o *inflateOptions) {
		o.metrics = m
	}
}

// WithResources sets the table @color/ references are looked up in.
func WithResources(r *Resources) InflateOption {
	return func(o *inflateOptions) {
		o.resources = r
	}
}

// WithDrawableOptions passes options to drawables created by Inflate.
func WithDrawableOptions(opts ...Option) InflateOption {
	return func(o *inflateOptions) {
		o.options = append(o.options, opts...)
	}
}
