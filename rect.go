package drawable

import "fmt"

// Rect is an integer rectangle. It holds drawable bounds and padding
// insets (where each field is the inset on that side).
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// IsZero reports whether all four fields are zero.
func (r Rect) IsZero() bool { return r == Rect{} }

// RectF converts r to floating point.
func (r Rect) RectF() RectF {
	return RectF{
		Left:   float64(r.Left),
		Top:    float64(r.Top),
		Right:  float64(r.Right),
		Bottom: float64(r.Bottom),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d - %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// RectF is a floating point rectangle.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// RectWH returns the rectangle with its origin at (0, 0) and the given size.
func RectWH(w, h float64) RectF {
	return RectF{Right: w, Bottom: h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r RectF) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal centre.
func (r RectF) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical centre.
func (r RectF) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Inset shrinks r by the given amounts on each side.
func (r RectF) Inset(left, top, right, bottom float64) RectF {
	return RectF{
		Left:   r.Left + left,
		Top:    r.Top + top,
		Right:  r.Right - right,
		Bottom: r.Bottom - bottom,
	}
}

// Empty reports whether r encloses no area.
func (r RectF) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }
