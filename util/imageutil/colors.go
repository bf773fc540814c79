package imageutil

import "image/color"

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	c2.R += uint8(v * float64(255-c2.R))
	c2.G += uint8(v * float64(255-c2.G))
	c2.B += uint8(v * float64(255-c2.B))
	return c2
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	v = 1.0 - v
	c2.R = uint8(v * float64(c2.R))
	c2.G = uint8(v * float64(c2.G))
	c2.B = uint8(v * float64(c2.B))
	return c2
}

func TintOrShade(c color.Color, v float64) color.Color {
	if IsLighter(c) {
		return Shade(c, v)
	}
	return Tint(c, v)
}

func IsLighter(c color.Color) bool {
	c2 := RgbaColor(c)
	u := int(c2.R) + int(c2.G) + int(c2.B)
	return u > 256*3/2
}
