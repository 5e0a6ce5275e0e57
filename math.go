package drawable

import "golang.org/x/exp/constraints"

// clamp restricts v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampAlpha restricts an alpha value to the 0..255 range.
func clampAlpha(a int) uint8 {
	return uint8(clamp(a, 0, 255))
}
