package outercolor

import colorful "github.com/lucasb-eyer/go-colorful"

// Colorful converts c for color-space math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts back, clamping out-of-gamut values.
func FromColorful(cc colorful.Color) RGB {
	r, g, b := cc.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// IsDark reports whether c is perceptually dark (CIE L* below 50).
func (c RGB) IsDark() bool {
	l, _, _ := c.Colorful().Lab()
	return l < 0.5
}

// Blend mixes c toward other by t in [0,1], interpolating in Lab space.
func (c RGB) Blend(other RGB, t float64) RGB {
	return FromColorful(c.Colorful().BlendLab(other.Colorful(), t))
}
