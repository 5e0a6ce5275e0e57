// Package giocanvas records drawables into Gio operation lists, so a
// drawable can be painted from a Gio layout function:
//
//	func (w *Swatch) Layout(gtx layout.Context) layout.Dimensions {
//		size := gtx.Constraints.Max
//		w.drawable.SetBounds(drawable.Rect{Right: size.X, Bottom: size.Y})
//		w.drawable.Draw(giocanvas.New(gtx.Ops))
//		return layout.Dimensions{Size: size}
//	}
//
// Gio fills with a single colour per shape, so paints with shaders are
// approximated by their colour at the centre of the shape.
package giocanvas

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/gogpu/drawable"
	"github.com/gogpu/gg"
)

// Canvas implements drawable.Canvas by appending operations to a Gio
// operation list.
type Canvas struct {
	ops   *op.Ops
	cur   f32.Affine2D
	saved []f32.Affine2D
}

var _ drawable.Canvas = (*Canvas)(nil)

// New returns a canvas writing to ops.
func New(ops *op.Ops) *Canvas {
	return &Canvas{ops: ops}
}

// Transform returns the current transform.
func (c *Canvas) Transform() f32.Affine2D { return c.cur }

// Save implements drawable.Canvas.
func (c *Canvas) Save() int {
	n := len(c.saved)
	c.saved = append(c.saved, c.cur)
	return n
}

// RestoreToCount implements drawable.Canvas.
func (c *Canvas) RestoreToCount(count int) {
	if count < 0 {
		count = 0
	}
	if count >= len(c.saved) {
		return
	}
	c.cur = c.saved[count]
	c.saved = c.saved[:count]
}

// Translate implements drawable.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.cur = c.cur.Mul(f32.Affine2D{}.Offset(f32.Pt(float32(dx), float32(dy))))
}

// Scale implements drawable.Canvas.
func (c *Canvas) Scale(sx, sy float64) {
	c.cur = c.cur.Mul(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(float32(sx), float32(sy))))
}

// DrawRect implements drawable.Canvas.
func (c *Canvas) DrawRect(r drawable.RectF, p *drawable.Paint) {
	if r.Empty() {
		return
	}
	path := gg.NewPath()
	path.Rectangle(r.Left, r.Top, r.Width(), r.Height())
	c.DrawPath(path, p)
}

// DrawPath implements drawable.Canvas.
func (c *Canvas) DrawPath(path *gg.Path, p *drawable.Paint) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	if m, ok := p.Xfermode(); ok && m != drawable.BlendSrcOver {
		drawable.Logger().Debug("giocanvas: transfer mode not supported, using src_over", "mode", m.String())
	}

	// Shaded paints are sampled once, at the centre of the path.
	cx, cy := pathCenter(path)
	col := p.ColorAt(cx, cy).NRGBA()

	t := op.Affine(c.cur).Push(c.ops)
	defer t.Pop()

	switch p.Style() {
	case drawable.StyleStroke:
		c.stroke(path, p, col)
	case drawable.StyleFillAndStroke:
		c.fill(path, col)
		c.stroke(path, p, col)
	default:
		c.fill(path, col)
	}
}

func (c *Canvas) fill(path *gg.Path, col color.NRGBA) {
	paint.FillShape(c.ops, col, clip.Outline{Path: clipPath(c.ops, path)}.Op())
}

func (c *Canvas) stroke(path *gg.Path, p *drawable.Paint, col color.NRGBA) {
	w := float32(p.StrokeWidth())
	if w <= 0 {
		w = 1 // hairline
	}
	paint.FillShape(c.ops, col, clip.Stroke{Path: clipPath(c.ops, path), Width: w}.Op())
}

// clipPath records path into ops.
func clipPath(ops *op.Ops, path *gg.Path) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			p.MoveTo(pt(e.Point))
		case gg.LineTo:
			p.LineTo(pt(e.Point))
		case gg.QuadTo:
			p.QuadTo(pt(e.Control), pt(e.Point))
		case gg.CubicTo:
			p.CubeTo(pt(e.Control1), pt(e.Control2), pt(e.Point))
		case gg.Close:
			p.Close()
		}
	}
	return p.End()
}

func pt(p gg.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

// pathCenter returns the centre of the control point bounding box.
func pathCenter(path *gg.Path) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p gg.Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			add(e.Point)
		case gg.LineTo:
			add(e.Point)
		case gg.QuadTo:
			add(e.Control)
			add(e.Point)
		case gg.CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if minX > maxX {
		return 0, 0
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}
