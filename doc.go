// Package drawable provides skinnable 2D drawables on top of the gg canvas.
//
// # Overview
//
// A drawable is a self-contained, resolution-independent renderable unit. It
// owns its configuration (paint, geometry, padding, intrinsic size, tint) and
// draws itself onto a [Canvas] when the host asks it to. The host view system
// assigns bounds, forwards widget state changes (pressed, focused, ...) and
// receives invalidation requests through a [Callback].
//
// The central type is [ShapeDrawable], which renders a [Shape] with a
// [Paint]:
//
//	d := drawable.NewShapeDrawable(drawable.WithShape(drawable.NewOvalShape()))
//	d.Paint().SetColor(drawable.RGB(0x33, 0x99, 0xff))
//	d.SetBounds(drawable.Rect{Left: 10, Top: 10, Right: 110, Bottom: 60})
//
//	dc := gg.NewContext(128, 128)
//	c := ggcanvas.New(dc)
//	d.Draw(c)
//
// # Constant state
//
// Every drawable keeps its configuration in a [ConstantState]. Drawables
// created from the same constant state share it until one of them calls
// Mutate, which forks a private copy. Editing a shared paint or shape without
// calling Mutate first changes every sibling; this is a contract, not a
// runtime check.
//
// # Inflation
//
// Drawables can be built from declarative markup decoded by the markup
// package:
//
//	<shape android:color="#ff3399ff" android:width="24dp" android:height="24dp"
//	       android:tint="?attr/colorAccent">
//	  <padding android:left="4dp" android:top="4dp"/>
//	</shape>
//
// Attributes that reference a theme (?attr/name) are deferred when no theme
// is available and resolved later by ApplyTheme.
//
// A [Resources] table holds named colours for @color/name references and
// named drawable markup. Drawables fetched by name with Resources.Drawable
// share one inflated constant state.
//
// # Concurrency
//
// Drawables are not safe for concurrent use. Draw, SetBounds and SetState are
// expected to run on the host's render goroutine.
package drawable
