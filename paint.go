package drawable

import "github.com/gogpu/gg"

// Style specifies whether geometry is filled, stroked or both.
type Style int

const (
	// StyleFill fills the interior of shapes.
	StyleFill Style = iota
	// StyleStroke outlines shapes with the paint's stroke width.
	StyleStroke
	// StyleFillAndStroke fills, then strokes.
	StyleFillAndStroke
)

// Shader produces a colour for every point it is sampled at. Every gg.Brush
// (solid, gradients, custom) satisfies Shader.
type Shader interface {
	ColorAt(x, y float64) gg.RGBA
}

// Paint represents the styling information for drawing.
//
// The alpha channel of the paint colour is the paint alpha. A shader, when
// set, replaces the colour but is still modulated by the paint alpha. A
// colour filter is applied last.
type Paint struct {
	color       Color
	style       Style
	strokeWidth float64
	antialias   bool
	dither      bool
	colorFilter ColorFilter
	shader      Shader
	xfermode    BlendMode
	hasXfermode bool
}

// NewPaint creates an anti-aliased paint that fills with opaque black.
func NewPaint() *Paint {
	return &Paint{
		color:       Black,
		style:       StyleFill,
		strokeWidth: 0,
		antialias:   true,
	}
}

// Clone creates an independent copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// Color returns the paint colour.
func (p *Paint) Color() Color { return p.color }

// SetColor sets the paint colour, including its alpha.
func (p *Paint) SetColor(c Color) { p.color = c }

// Alpha returns the alpha channel of the paint colour.
func (p *Paint) Alpha() int { return int(p.color.A()) }

// SetAlpha replaces the alpha channel of the paint colour. Values outside
// 0..255 are clamped.
func (p *Paint) SetAlpha(a int) { p.color = p.color.WithAlpha(clampAlpha(a)) }

// Style returns the paint style.
func (p *Paint) Style() Style { return p.style }

// SetStyle sets the paint style.
func (p *Paint) SetStyle(s Style) { p.style = s }

// StrokeWidth returns the stroke width. Zero means a hairline.
func (p *Paint) StrokeWidth() float64 { return p.strokeWidth }

// SetStrokeWidth sets the stroke width.
func (p *Paint) SetStrokeWidth(w float64) { p.strokeWidth = w }

// IsAntialias reports whether edges are anti-aliased.
func (p *Paint) IsAntialias() bool { return p.antialias }

// SetAntialias enables or disables anti-aliasing.
func (p *Paint) SetAntialias(aa bool) { p.antialias = aa }

// IsDither reports whether dithering is requested.
func (p *Paint) IsDither() bool { return p.dither }

// SetDither requests dithering on low-depth targets.
func (p *Paint) SetDither(d bool) { p.dither = d }

// ColorFilter returns the colour filter, or nil.
func (p *Paint) ColorFilter() ColorFilter { return p.colorFilter }

// SetColorFilter sets the colour filter. Pass nil to clear it.
func (p *Paint) SetColorFilter(cf ColorFilter) { p.colorFilter = cf }

// Shader returns the shader, or nil.
func (p *Paint) Shader() Shader { return p.shader }

// SetShader sets the shader. Pass nil to paint with the plain colour.
func (p *Paint) SetShader(s Shader) { p.shader = s }

// Xfermode returns the transfer mode and whether one is set.
func (p *Paint) Xfermode() (BlendMode, bool) { return p.xfermode, p.hasXfermode }

// SetXfermode sets a custom transfer mode.
func (p *Paint) SetXfermode(m BlendMode) {
	p.xfermode = m
	p.hasXfermode = true
}

// ClearXfermode removes the custom transfer mode.
func (p *Paint) ClearXfermode() {
	p.xfermode = 0
	p.hasXfermode = false
}

// ColorAt returns the colour the paint produces at (x, y).
func (p *Paint) ColorAt(x, y float64) Color {
	c := p.color
	if p.shader != nil {
		c = fromRGBA(p.shader.ColorAt(x, y))
		c = c.WithAlpha(uint8(int(c.A()) * p.Alpha() / 255))
	}
	if p.colorFilter != nil {
		c = p.colorFilter.Filter(c)
	}
	return c
}

// Brush returns a gg brush reproducing the paint. The brush captures the
// paint as it is now, so it stays valid after the paint is modified.
func (p *Paint) Brush() gg.Brush {
	if p.shader == nil {
		return gg.Solid(p.ColorAt(0, 0).RGBA())
	}
	snap := p.Clone()
	return gg.CustomBrush{
		Func: func(x, y float64) gg.RGBA { return snap.ColorAt(x, y).RGBA() },
		Name: "drawable.Paint",
	}
}
