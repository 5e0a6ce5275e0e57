package drawable

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied colour packed as 0xAARRGGBB.
type Color uint32

// Common colours.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

var errBadColor = errors.New("not a colour")

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00ffffff | Color(a)<<24
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA converts c to a gg colour.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// fromRGBA converts a gg colour, rounding each channel to the nearest byte.
func fromRGBA(c gg.RGBA) Color {
	return ARGB(unit8(c.A), unit8(c.R), unit8(c.G), unit8(c.B))
}

func unit8(v float64) uint8 {
	return uint8(clamp(v*255+0.5, 0, 255))
}

// String formats c as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor parses a colour literal.
//
// Accepted forms are #RGB, #ARGB, #RRGGBB and #AARRGGBB (alpha first), and
// the SVG colour keywords known to golang.org/x/image/colornames.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return FromColor(c), nil
		}
		return 0, fmt.Errorf("%q: %w", s, errBadColor)
	}
	hex := s[1:]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errBadColor)
	}
	switch len(hex) {
	case 3:
		return RGB(nibble(v>>8), nibble(v>>4), nibble(v)), nil
	case 4:
		return ARGB(nibble(v>>12), nibble(v>>8), nibble(v>>4), nibble(v)), nil
	case 6:
		return Color(v) | 0xff000000, nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("%q: %w", s, errBadColor)
	}
}

// nibble expands the low four bits of v to a full byte (0xA -> 0xAA).
func nibble(v uint64) uint8 {
	n := uint8(v & 0xf)
	return n<<4 | n
}
