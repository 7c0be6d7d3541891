package render

import (
	"image/color"

	"fireworks/internal/core"
)

// fillRGBA converts accumulated light into RGBA pixels in buf, composited
// additively over bg and saturated at full intensity.
func fillRGBA(buf []byte, cells []core.RGB, bg color.Color) {
	br, bgG, bb, _ := bg.RGBA()
	baseR := float32(br>>8) / 255
	baseG := float32(bgG>>8) / 255
	baseB := float32(bb>>8) / 255
	for i, c := range cells {
		base := i * 4
		buf[base+0] = toByte(baseR + c.R)
		buf[base+1] = toByte(baseG + c.G)
		buf[base+2] = toByte(baseB + c.B)
		buf[base+3] = 0xff
	}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// Intensity returns the brightest channel of c, saturated to [0, 1].
func Intensity(c core.RGB) float32 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	if m > 1 {
		return 1
	}
	if m < 0 {
		return 0
	}
	return m
}

// Saturate clamps each channel of c to [0, 1] and returns 8-bit values.
func Saturate(c core.RGB) (uint8, uint8, uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}
