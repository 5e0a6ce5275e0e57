package blend

// Premultiply converts a straight-alpha colour to premultiplied form.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}

// Unpremultiply converts a premultiplied colour back to straight alpha.
func Unpremultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	un := func(c byte) byte {
		v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	return un(r), un(g), un(b), a
}

// Straight blends two straight-alpha colours with mode and returns a
// straight-alpha result. src is the source operand, dst the destination.
func Straight(mode Mode, src, dst [4]byte) [4]byte {
	sr, sg, sb, sa := Premultiply(src[0], src[1], src[2], src[3])
	dr, dg, db, da := Premultiply(dst[0], dst[1], dst[2], dst[3])
	r, g, b, a := Get(mode)(sr, sg, sb, sa, dr, dg, db, da)
	r, g, b, a = Unpremultiply(r, g, b, a)
	return [4]byte{r, g, b, a}
}
