package sixelcore

import "image/color"

// normalizeRGB converts SIXEL RGB channel percentages (0..100) to a packed
// little-endian RGBA word with alpha forced opaque.
//
// Each channel is scaled with (c*256 - c + 50) / 100, which rounds to the
// nearest byte without floating point.
func normalizeRGB(r, g, b int) uint32 {
	scale := func(c int) uint32 {
		return uint32((c*256 - c + 50) / 100)
	}
	return 0xFF000000 | scale(b)<<16 | scale(g)<<8 | scale(r)
}

// h2c is the hue-to-channel helper shared by normalizeHLS's three channels.
func h2c(t1, t2, c float64) float64 {
	switch {
	case c < 0:
		c++
	case c > 1:
		c--
	}
	switch {
	case c*6 < 1:
		return t2 + (t1-t2)*6*c
	case c*2 < 1:
		return t1
	case c*3 < 2:
		return t2 + (t1-t2)*(4-6*c)
	default:
		return t2
	}
}

// normalizeHLS converts SIXEL HLS parameters (H 0..360, L and S 0..100) to
// a packed little-endian RGBA word with alpha forced opaque.
//
// The hue is rotated by 240 degrees before conversion; this offset is a
// SIXEL-specific convention (not part of the general HLS color model) and
// must be preserved for output to match real terminals.
func normalizeHLS(h, l, s int) uint32 {
	if s == 0 {
		return normalizeRGB(l, l, l)
	}

	hf := float64((h+240)%360) / 360
	lf := float64(l) / 100
	sf := float64(s) / 100

	var t1 float64
	if lf < 0.5 {
		t1 = lf * (1 + sf)
	} else {
		t1 = lf*(1-sf) + sf
	}
	t2 := 2*lf - t1

	round := func(v float64) uint32 {
		return uint32(255*v + 0.5)
	}
	r := round(h2c(t1, t2, hf+1.0/3))
	g := round(h2c(t1, t2, hf))
	b := round(h2c(t1, t2, hf-1.0/3))

	return 0xFF000000 | b<<16 | g<<8 | r
}

// colorConverter is the shared signature of the two SIXEL color param
// converters, dispatched by the color introducer's mode parameter
// (1=HLS, 2=RGB) without branching.
type colorConverter func(a, b, c int) uint32

var colorConverters = [2]colorConverter{
	normalizeHLS,
	normalizeRGB,
}

// packedToRGBA unpacks a little-endian RGBA word into image/color.RGBA.
func packedToRGBA(packed uint32) color.RGBA {
	return color.RGBA{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}

// rgbaToPacked packs an image/color.RGBA into a little-endian RGBA word.
func rgbaToPacked(c color.RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}
