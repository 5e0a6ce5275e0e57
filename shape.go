package drawable

import (
	"math"

	"github.com/gogpu/gg"
)

// Shape is a geometric primitive that a ShapeDrawable renders. A shape is
// laid out in its own coordinate space with the origin at its top-left
// corner and sized by Resize.
type Shape interface {
	// Resize sets the size the shape is drawn at. Negative sizes are
	// treated as zero.
	Resize(width, height float64)
	Width() float64
	Height() float64

	// Draw draws the shape onto c with p.
	Draw(c Canvas, p *Paint)

	// Outline stores the shape's silhouette in o. Shapes without a useful
	// outline leave o unchanged.
	Outline(o *Outline)

	// Clone returns a deep copy. It returns ErrCloneNotSupported if the
	// shape cannot be copied.
	Clone() (Shape, error)
}

// shapeSize holds the size shared by every shape implementation.
type shapeSize struct {
	width, height float64
}

func (s *shapeSize) resize(w, h float64) bool {
	w, h = max(w, 0), max(h, 0)
	if s.width == w && s.height == h {
		return false
	}
	s.width, s.height = w, h
	return true
}

// Width returns the current width.
func (s *shapeSize) Width() float64 { return s.width }

// Height returns the current height.
func (s *shapeSize) Height() float64 { return s.height }

// RectShape fills its whole bounds.
type RectShape struct {
	shapeSize
	rect RectF
}

var _ Shape = (*RectShape)(nil)

// NewRectShape returns a rectangle shape.
func NewRectShape() *RectShape {
	return &RectShape{}
}

// Resize implements Shape.
func (s *RectShape) Resize(w, h float64) {
	s.resize(w, h)
	s.rect = RectWH(s.width, s.height)
}

// Rect returns the rectangle the shape covers.
func (s *RectShape) Rect() RectF { return s.rect }

// Draw implements Shape.
func (s *RectShape) Draw(c Canvas, p *Paint) {
	c.DrawRect(s.rect, p)
}

// Outline implements Shape.
func (s *RectShape) Outline(o *Outline) {
	o.SetRect(s.rect)
}

// Clone implements Shape.
func (s *RectShape) Clone() (Shape, error) {
	c := *s
	return &c, nil
}

// kappa is the control point distance for a quarter-ellipse cubic Bezier.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// appendArc appends an elliptical arc inscribed in r. Angles are in degrees,
// measured clockwise from the positive x axis. The arc starts with a MoveTo
// when move is set, otherwise with a LineTo from the current point.
func appendArc(p *gg.Path, r RectF, startDeg, sweepDeg float64, move bool) {
	sweepDeg = clamp(sweepDeg, -360, 360)
	cx, cy := r.CenterX(), r.CenterY()
	rx, ry := r.Width()/2, r.Height()/2
	at := func(theta float64) (float64, float64) {
		return cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)
	}
	tangent := func(theta float64) (float64, float64) {
		return -rx * math.Sin(theta), ry * math.Cos(theta)
	}

	theta := startDeg * math.Pi / 180
	x, y := at(theta)
	if move {
		p.MoveTo(x, y)
	} else {
		p.LineTo(x, y)
	}
	if sweepDeg == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweepDeg) / 90))
	step := sweepDeg / float64(n) * math.Pi / 180
	alpha := 4.0 / 3.0 * math.Tan(step/4)
	for range n {
		next := theta + step
		x0, y0 := at(theta)
		dx0, dy0 := tangent(theta)
		x3, y3 := at(next)
		dx3, dy3 := tangent(next)
		p.CubicTo(x0+alpha*dx0, y0+alpha*dy0, x3-alpha*dx3, y3-alpha*dy3, x3, y3)
		theta = next
	}
}

// cornerTo appends a quarter-ellipse from the current point (fx, fy) to
// (tx, ty) bending around the rectangle corner (cx, cy).
func cornerTo(p *gg.Path, fx, fy, cx, cy, tx, ty float64) {
	if fx == tx && fy == ty {
		return
	}
	if (fx == cx && fy == cy) || (tx == cx && ty == cy) {
		p.LineTo(tx, ty)
		return
	}
	p.CubicTo(
		fx+kappa*(cx-fx), fy+kappa*(cy-fy),
		tx+kappa*(cx-tx), ty+kappa*(cy-ty),
		tx, ty,
	)
}
