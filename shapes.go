package drawable

import (
	"fmt"

	"github.com/gogpu/gg"
)

// OvalShape fills the ellipse inscribed in its bounds.
type OvalShape struct {
	RectShape
}

var _ Shape = (*OvalShape)(nil)

// NewOvalShape returns an oval shape.
func NewOvalShape() *OvalShape {
	return &OvalShape{}
}

// Draw implements Shape.
func (s *OvalShape) Draw(c Canvas, p *Paint) {
	if s.rect.Empty() {
		return
	}
	path := gg.NewPath()
	path.Ellipse(s.rect.CenterX(), s.rect.CenterY(), s.rect.Width()/2, s.rect.Height()/2)
	c.DrawPath(path, p)
}

// Outline implements Shape.
func (s *OvalShape) Outline(o *Outline) {
	o.SetOval(s.rect)
}

// Clone implements Shape.
func (s *OvalShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}

// RoundRectShape is a rectangle with rounded corners and an optional
// rectangular hole.
//
// Radii are given as eight values: x and y radius pairs for the top-left,
// top-right, bottom-right and bottom-left corners, in that order.
type RoundRectShape struct {
	RectShape
	outerRadii [8]float64
	inset      *RectF
	innerRadii *[8]float64
	innerRect  RectF
	path       *gg.Path
}

var _ Shape = (*RoundRectShape)(nil)

// NewRoundRectShape returns a rounded rectangle. inset, if non-nil, gives the
// distance from each outer edge to the hole; innerRadii, if non-nil, rounds
// the hole corners. Missing radii are zero.
func NewRoundRectShape(outerRadii []float64, inset *RectF, innerRadii []float64) (*RoundRectShape, error) {
	if len(outerRadii) > 8 || len(innerRadii) > 8 {
		return nil, fmt.Errorf("round rect radii: want at most 8 values, got %d and %d",
			len(outerRadii), len(innerRadii))
	}
	s := &RoundRectShape{path: gg.NewPath()}
	copy(s.outerRadii[:], outerRadii)
	if inset != nil {
		in := *inset
		s.inset = &in
	}
	if innerRadii != nil {
		var r [8]float64
		copy(r[:], innerRadii)
		s.innerRadii = &r
	}
	return s, nil
}

// Resize implements Shape.
func (s *RoundRectShape) Resize(w, h float64) {
	s.RectShape.Resize(w, h)
	s.path = gg.NewPath()
	r := s.rect
	appendRoundRect(s.path, r, s.outerRadii, false)
	if s.inset != nil {
		s.innerRect = RectF{
			Left:   r.Left + s.inset.Left,
			Top:    r.Top + s.inset.Top,
			Right:  r.Right - s.inset.Right,
			Bottom: r.Bottom - s.inset.Bottom,
		}
		if s.innerRect.Width() < r.Width() && s.innerRect.Height() < r.Height() && !s.innerRect.Empty() {
			var radii [8]float64
			if s.innerRadii != nil {
				radii = *s.innerRadii
			}
			appendRoundRect(s.path, s.innerRect, radii, true)
		}
	}
}

// Draw implements Shape.
func (s *RoundRectShape) Draw(c Canvas, p *Paint) {
	if s.path == nil || len(s.path.Elements()) == 0 {
		return
	}
	c.DrawPath(s.path, p)
}

// Outline implements Shape. Shapes with a hole have no outline; uniform radii
// produce a round rect outline and anything else a path outline.
func (s *RoundRectShape) Outline(o *Outline) {
	if s.inset != nil {
		return
	}
	radius := s.outerRadii[0]
	for _, r := range s.outerRadii[1:] {
		if r != radius {
			o.SetConvexPath(s.path)
			return
		}
	}
	o.SetRoundRect(s.rect, radius)
}

// Clone implements Shape.
func (s *RoundRectShape) Clone() (Shape, error) {
	c := *s
	if s.inset != nil {
		in := *s.inset
		c.inset = &in
	}
	if s.innerRadii != nil {
		r := *s.innerRadii
		c.innerRadii = &r
	}
	if s.path != nil {
		c.path = s.path.Clone()
	}
	return &c, nil
}

// appendRoundRect adds a closed round rect contour to p, clockwise unless
// reverse is set. Radii larger than half the rect are clamped.
func appendRoundRect(p *gg.Path, r RectF, radii [8]float64, reverse bool) {
	if r.Empty() {
		return
	}
	hw, hh := r.Width()/2, r.Height()/2
	for i := 0; i < 8; i += 2 {
		radii[i] = clamp(radii[i], 0, hw)
		radii[i+1] = clamp(radii[i+1], 0, hh)
	}
	tlx, tly := radii[0], radii[1]
	trx, try := radii[2], radii[3]
	brx, bry := radii[4], radii[5]
	blx, bly := radii[6], radii[7]
	l, t, rt, b := r.Left, r.Top, r.Right, r.Bottom

	p.MoveTo(l+tlx, t)
	if !reverse {
		p.LineTo(rt-trx, t)
		cornerTo(p, rt-trx, t, rt, t, rt, t+try)
		p.LineTo(rt, b-bry)
		cornerTo(p, rt, b-bry, rt, b, rt-brx, b)
		p.LineTo(l+blx, b)
		cornerTo(p, l+blx, b, l, b, l, b-bly)
		p.LineTo(l, t+tly)
		cornerTo(p, l, t+tly, l, t, l+tlx, t)
	} else {
		cornerTo(p, l+tlx, t, l, t, l, t+tly)
		p.LineTo(l, b-bly)
		cornerTo(p, l, b-bly, l, b, l+blx, b)
		p.LineTo(rt-brx, b)
		cornerTo(p, rt-brx, b, rt, b, rt, b-bry)
		p.LineTo(rt, t+try)
		cornerTo(p, rt, t+try, rt, t, rt-trx, t)
	}
	p.Close()
}

// ArcShape draws a pie wedge of the ellipse inscribed in its bounds.
// Angles are in degrees, clockwise from the 3 o'clock position.
type ArcShape struct {
	RectShape
	start, sweep float64
}

var _ Shape = (*ArcShape)(nil)

// NewArcShape returns a wedge starting at startAngle and spanning
// sweepAngle degrees.
func NewArcShape(startAngle, sweepAngle float64) *ArcShape {
	return &ArcShape{start: startAngle, sweep: sweepAngle}
}

// StartAngle returns the start angle in degrees.
func (s *ArcShape) StartAngle() float64 { return s.start }

// SweepAngle returns the sweep angle in degrees.
func (s *ArcShape) SweepAngle() float64 { return s.sweep }

// Draw implements Shape.
func (s *ArcShape) Draw(c Canvas, p *Paint) {
	if s.rect.Empty() {
		return
	}
	path := gg.NewPath()
	path.MoveTo(s.rect.CenterX(), s.rect.CenterY())
	appendArc(path, s.rect, s.start, s.sweep, false)
	path.Close()
	c.DrawPath(path, p)
}

// Clone implements Shape.
func (s *ArcShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}

// PathShape draws a path defined in a standard coordinate space of
// stdWidth by stdHeight, scaled to the shape size.
type PathShape struct {
	shapeSize
	path                *gg.Path
	stdWidth, stdHeight float64
	scaleX, scaleY      float64
}

var _ Shape = (*PathShape)(nil)

// NewPathShape returns a shape drawing path, which is laid out in a
// stdWidth by stdHeight box.
func NewPathShape(path *gg.Path, stdWidth, stdHeight float64) *PathShape {
	return &PathShape{path: path, stdWidth: stdWidth, stdHeight: stdHeight, scaleX: 1, scaleY: 1}
}

// Resize implements Shape.
func (s *PathShape) Resize(w, h float64) {
	s.resize(w, h)
	s.scaleX, s.scaleY = 1, 1
	if s.stdWidth > 0 {
		s.scaleX = s.width / s.stdWidth
	}
	if s.stdHeight > 0 {
		s.scaleY = s.height / s.stdHeight
	}
}

// Draw implements Shape.
func (s *PathShape) Draw(c Canvas, p *Paint) {
	if s.path == nil {
		return
	}
	n := c.Save()
	c.Scale(s.scaleX, s.scaleY)
	c.DrawPath(s.path, p)
	c.RestoreToCount(n)
}

// Outline implements Shape. Arbitrary paths are not guaranteed convex, so
// no outline is reported.
func (s *PathShape) Outline(*Outline) {}

// Clone implements Shape.
func (s *PathShape) Clone() (Shape, error) {
	c := *s
	if s.path != nil {
		c.path = s.path.Clone()
	}
	return &c, nil
}
