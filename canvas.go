package drawable

import "github.com/gogpu/gg"

// Canvas is the drawing surface a drawable renders onto. Implementations
// for gg contexts, gg recordings and Gio op lists live in the ggcanvas and
// giocanvas packages.
type Canvas interface {
	// Save pushes the current transform and returns the save count before
	// the push, to be passed to RestoreToCount.
	Save() int
	// RestoreToCount pops saved states until count remain.
	RestoreToCount(count int)

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)
	// Scale scales the coordinate system.
	Scale(sx, sy float64)

	// DrawRect draws r with p.
	DrawRect(r RectF, p *Paint)
	// DrawPath draws path with p.
	DrawPath(path *gg.Path, p *Paint)
}
