// Package blend implements the Porter-Duff operators and separable blend
// modes used by colour filters.
//
// All blend operations work with premultiplied alpha values in the range
// 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing operation.
type Mode uint8

const (
	Clear    Mode = iota // Result: 0
	Src                  // Result: S
	Dst                  // Result: D
	SrcOver              // Result: S + D*(1-Sa)
	DstOver              // Result: S*(1-Da) + D
	SrcIn                // Result: S*Da
	DstIn                // Result: D*Sa
	SrcOut               // Result: S*(1-Da)
	DstOut               // Result: D*(1-Sa)
	SrcAtop              // Result: S*Da + D*(1-Sa), alpha Da
	DstAtop              // Result: S*(1-Da) + D*Sa, alpha Sa
	Xor                  // Result: S*(1-Da) + D*(1-Sa)
	Darken               // Result: S*(1-Da) + D*(1-Sa) + min(S, D)
	Lighten              // Result: S*(1-Da) + D*(1-Sa) + max(S, D)
	Multiply             // Result: S*D
	Screen               // Result: S + D - S*D
	Add                  // Result: min(S + D, 255)
	Overlay              // Result: W3C overlay
)

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Get returns the blend function for mode.
// Unknown modes fall back to SrcOver.
func Get(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Src:
		return blendSrc
	case Dst:
		return blendDst
	case SrcOver:
		return blendSrcOver
	case DstOver:
		return blendDstOver
	case SrcIn:
		return blendSrcIn
	case DstIn:
		return blendDstIn
	case SrcOut:
		return blendSrcOut
	case DstOut:
		return blendDstOut
	case SrcAtop:
		return blendSrcAtop
	case DstAtop:
		return blendDstAtop
	case Xor:
		return blendXor
	case Darken:
		return blendDarken
	case Lighten:
		return blendLighten
	case Multiply:
		return blendMultiply
	case Screen:
		return blendScreen
	case Add:
		return blendAdd
	case Overlay:
		return blendOverlay
	default:
		return blendSrcOver
	}
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDst(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func blendDstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcOver(dr, dg, db, da, sr, sg, sb, sa)
}

func blendSrcIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendDstIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func blendSrcOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

func blendDstOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

func blendSrcAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

func blendDstAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// unionAlpha is Sa + Da - Sa*Da.
func unionAlpha(sa, da byte) byte {
	return addClamp(sa, mulDiv255(da, 255-sa))
}

// separable composes a per-channel blend term with the uncovered parts of
// source and destination.
func separable(s, sa, d, da byte, term byte) byte {
	return addClamp(addClamp(mulDiv255(s, 255-da), mulDiv255(d, 255-sa)), term)
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ch := func(s, d byte) byte {
		return separable(s, sa, d, da, min(mulDiv255(s, da), mulDiv255(d, sa)))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), unionAlpha(sa, da)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ch := func(s, d byte) byte {
		return separable(s, sa, d, da, max(mulDiv255(s, da), mulDiv255(d, sa)))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), unionAlpha(sa, da)
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ch := func(s, d byte) byte {
		return addClamp(s, mulDiv255(d, 255-s))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), unionAlpha(sa, da)
}

func blendAdd(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ch := func(s, d byte) byte {
		var term int
		if 2*int(d) <= int(da) {
			term = 2 * int(s) * int(d) / 255
		} else {
			term = int(sa)*int(da)/255 - 2*(int(da)-int(d))*(int(sa)-int(s))/255
		}
		return separable(s, sa, d, da, byte(max(0, min(255, term))))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), unionAlpha(sa, da)
}

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
