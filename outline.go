package drawable

import "github.com/gogpu/gg"

// OutlineKind identifies the geometry an Outline holds.
type OutlineKind uint8

const (
	OutlineEmpty OutlineKind = iota
	OutlineRect
	OutlineRoundRect
	OutlineOval
	OutlinePath
)

// Outline describes the silhouette of a drawable for shadow casting and
// clipping.
type Outline struct {
	Kind   OutlineKind
	Rect   RectF
	Radius float64
	Path   *gg.Path
	Alpha  float64
}

// SetEmpty clears the outline.
func (o *Outline) SetEmpty() {
	*o = Outline{Alpha: o.Alpha}
}

// IsEmpty reports whether the outline holds no geometry.
func (o *Outline) IsEmpty() bool { return o.Kind == OutlineEmpty }

// SetRect sets a rectangular outline.
func (o *Outline) SetRect(r RectF) {
	o.SetRoundRect(r, 0)
}

// SetRoundRect sets a rectangle with uniformly rounded corners.
func (o *Outline) SetRoundRect(r RectF, radius float64) {
	if r.Empty() {
		o.SetEmpty()
		return
	}
	o.Kind = OutlineRoundRect
	if radius <= 0 {
		o.Kind = OutlineRect
		radius = 0
	}
	o.Rect = r
	o.Radius = radius
	o.Path = nil
}

// SetOval sets an elliptical outline inscribed in r.
func (o *Outline) SetOval(r RectF) {
	if r.Empty() {
		o.SetEmpty()
		return
	}
	o.Kind = OutlineOval
	o.Rect = r
	o.Radius = 0
	o.Path = nil
}

// SetConvexPath sets an arbitrary convex outline.
func (o *Outline) SetConvexPath(p *gg.Path) {
	if p == nil || len(p.Elements()) == 0 {
		o.SetEmpty()
		return
	}
	o.Kind = OutlinePath
	o.Path = p
	o.Rect = RectF{}
	o.Radius = 0
}

// SetAlpha sets the outline opacity in [0, 1].
func (o *Outline) SetAlpha(a float64) {
	o.Alpha = clamp(a, 0, 1)
}
