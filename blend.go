package drawable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/drawable/internal/blend"
)

// BlendMode controls how a source colour is composited with a destination
// colour. It is used as a paint transfer mode and as a tint mode.
type BlendMode uint8

const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
	BlendXor
	BlendDarken
	BlendLighten
	BlendMultiply
	BlendScreen
	BlendAdd
	BlendOverlay
)

// DefaultTintMode is the tint mode used when none is configured.
const DefaultTintMode = BlendSrcIn

var blendModeNames = [...]string{
	BlendClear:    "clear",
	BlendSrc:      "src",
	BlendDst:      "dst",
	BlendSrcOver:  "src_over",
	BlendDstOver:  "dst_over",
	BlendSrcIn:    "src_in",
	BlendDstIn:    "dst_in",
	BlendSrcOut:   "src_out",
	BlendDstOut:   "dst_out",
	BlendSrcAtop:  "src_atop",
	BlendDstAtop:  "dst_atop",
	BlendXor:      "xor",
	BlendDarken:   "darken",
	BlendLighten:  "lighten",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendAdd:      "add",
	BlendOverlay:  "overlay",
}

// tintModeCodes maps the numeric enum values used by tintMode attributes.
var tintModeCodes = map[int]BlendMode{
	3:  BlendSrcOver,
	5:  BlendSrcIn,
	9:  BlendSrcAtop,
	14: BlendMultiply,
	15: BlendScreen,
	16: BlendAdd,
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode parses a blend mode name such as "src_in" or "multiply",
// or one of the numeric tint mode codes (3, 5, 9, 14, 15, 16).
func ParseBlendMode(s string) (BlendMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if m, ok := tintModeCodes[n]; ok {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBlendMode, s)
}

// Blend composites src over dst with m and returns the straight-alpha result.
func (m BlendMode) Blend(src, dst Color) Color {
	out := blend.Straight(blend.Mode(m),
		[4]byte{src.R(), src.G(), src.B(), src.A()},
		[4]byte{dst.R(), dst.G(), dst.B(), dst.A()})
	return ARGB(out[3], out[0], out[1], out[2])
}

// ColorFilter transforms the colour of every source pixel before it is
// composited onto the canvas.
type ColorFilter interface {
	Filter(c Color) Color
}

// PorterDuffColorFilter blends a constant colour with each pixel. The
// constant colour is the source operand and the pixel the destination.
type PorterDuffColorFilter struct {
	Color Color
	Mode  BlendMode
}

// NewPorterDuffColorFilter returns a filter blending c with mode.
func NewPorterDuffColorFilter(c Color, mode BlendMode) *PorterDuffColorFilter {
	return &PorterDuffColorFilter{Color: c, Mode: mode}
}

// Filter implements ColorFilter.
func (f *PorterDuffColorFilter) Filter(c Color) Color {
	return f.Mode.Blend(f.Color, c)
}
