// Package ggcanvas draws drawables with gg, either rasterising onto a
// *gg.Context or recording onto a *recording.Recorder for vector export.
//
// Example:
//
//	dc := gg.NewContext(64, 64)
//	c := ggcanvas.New(dc)
//	d.SetBounds(drawable.Rect{Right: 64, Bottom: 64})
//	d.Draw(c)
//	if err := c.Err(); err != nil {
//		log.Fatal(err)
//	}
//	dc.SavePNG("out.png")
package ggcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/drawable"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// target is the drawing API gg.Context and recording.Recorder share.
type target interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(sx, sy float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()

	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(w float64)
}

// Canvas implements drawable.Canvas on top of gg.
type Canvas struct {
	t            target
	fill         func() error
	fillPreserve func() error
	stroke       func() error

	// layers is nil when the target cannot composite layers.
	layers *gg.Context

	// m is the local-to-device transform applied by Translate and Scale.
	// gg samples brushes in device pixels, so shaded paints are mapped back
	// through its inverse.
	m      gg.Matrix
	mstack []gg.Matrix

	saves int
	errs  []error
}

var _ drawable.Canvas = (*Canvas)(nil)

// New returns a canvas rasterising onto dc.
func New(dc *gg.Context) *Canvas {
	return &Canvas{
		t:            dc,
		fill:         dc.Fill,
		fillPreserve: dc.FillPreserve,
		stroke:       dc.Stroke,
		layers:       dc,
		m:            gg.Identity(),
	}
}

// NewRecording returns a canvas recording onto r. Blend mode layers are
// not recorded; such paints draw with source-over.
func NewRecording(r *recording.Recorder) *Canvas {
	return &Canvas{
		t:            r,
		fill:         func() error { r.Fill(); return nil },
		fillPreserve: func() error { r.FillPreserve(); return nil },
		stroke:       func() error { r.Stroke(); return nil },
		m:            gg.Identity(),
	}
}

// Err returns the errors reported by the target since the canvas was
// created, joined.
func (c *Canvas) Err() error {
	return errors.Join(c.errs...)
}

func (c *Canvas) record(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Save implements drawable.Canvas.
func (c *Canvas) Save() int {
	n := c.saves
	c.t.Push()
	c.mstack = append(c.mstack, c.m)
	c.saves++
	return n
}

// RestoreToCount implements drawable.Canvas.
func (c *Canvas) RestoreToCount(count int) {
	if count < 0 {
		count = 0
	}
	for c.saves > count {
		c.t.Pop()
		c.m = c.mstack[len(c.mstack)-1]
		c.mstack = c.mstack[:len(c.mstack)-1]
		c.saves--
	}
}

// Translate implements drawable.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.t.Translate(dx, dy)
	c.m = c.m.Multiply(gg.Translate(dx, dy))
}

// Scale implements drawable.Canvas.
func (c *Canvas) Scale(sx, sy float64) {
	c.t.Scale(sx, sy)
	c.m = c.m.Multiply(gg.Scale(sx, sy))
}

// brush returns p's brush sampled in the canvas's local coordinates.
func (c *Canvas) brush(p *drawable.Paint) gg.Brush {
	b := p.Brush()
	if _, solid := b.(gg.SolidBrush); solid || c.m.IsIdentity() {
		return b
	}
	inv := c.m.Invert()
	return gg.CustomBrush{
		Func: func(x, y float64) gg.RGBA {
			pt := inv.TransformPoint(gg.Pt(x, y))
			return b.ColorAt(pt.X, pt.Y)
		},
		Name: "ggcanvas.local",
	}
}

// DrawRect implements drawable.Canvas.
func (c *Canvas) DrawRect(r drawable.RectF, p *drawable.Paint) {
	if r.Empty() {
		return
	}
	c.draw(p, func() {
		c.t.MoveTo(r.Left, r.Top)
		c.t.LineTo(r.Right, r.Top)
		c.t.LineTo(r.Right, r.Bottom)
		c.t.LineTo(r.Left, r.Bottom)
		c.t.ClosePath()
	})
}

// DrawPath implements drawable.Canvas.
func (c *Canvas) DrawPath(path *gg.Path, p *drawable.Paint) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	c.draw(p, func() { appendPath(c.t, path) })
}

// appendPath replays path onto t's current path.
func appendPath(t target, path *gg.Path) {
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			t.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			t.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			t.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			t.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			t.ClosePath()
		}
	}
}

func (c *Canvas) draw(p *drawable.Paint, build func()) {
	if layered := c.pushBlendLayer(p); layered {
		defer c.layers.PopLayer()
	}

	c.t.ClearPath()
	build()

	switch p.Style() {
	case drawable.StyleStroke:
		c.setStroke(p)
		c.record(c.stroke())
	case drawable.StyleFillAndStroke:
		c.t.SetFillBrush(c.brush(p))
		c.record(c.fillPreserve())
		c.setStroke(p)
		c.record(c.stroke())
	default:
		c.t.SetFillBrush(c.brush(p))
		c.record(c.fill())
	}
}

func (c *Canvas) setStroke(p *drawable.Paint) {
	w := p.StrokeWidth()
	if w <= 0 {
		w = 1 // hairline
	}
	c.t.SetStrokeBrush(c.brush(p))
	c.t.SetLineWidth(w)
}

// pushBlendLayer opens a gg layer for paints with a separable blend
// transfer mode and reports whether it did.
func (c *Canvas) pushBlendLayer(p *drawable.Paint) bool {
	m, ok := p.Xfermode()
	if !ok || m == drawable.BlendSrcOver {
		return false
	}
	var mode gg.BlendMode
	switch m {
	case drawable.BlendMultiply:
		mode = gg.BlendMultiply
	case drawable.BlendScreen:
		mode = gg.BlendScreen
	case drawable.BlendOverlay:
		mode = gg.BlendOverlay
	default:
		drawable.Logger().Debug("ggcanvas: transfer mode not supported, using src_over", "mode", m.String())
		return false
	}
	if c.layers == nil {
		drawable.Logger().Debug("ggcanvas: target has no layers, using src_over", "mode", m.String())
		return false
	}
	c.layers.PushLayer(mode, 1)
	return true
}

func (c *Canvas) String() string {
	return fmt.Sprintf("ggcanvas.Canvas{saves: %d}", c.saves)
}
