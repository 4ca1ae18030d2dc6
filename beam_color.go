package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// defaultColorRamp shifts the beam hue from red toward violet and dims it
// slightly with every mirror bounce. The exact curve is presentation
// tuning, not a propagation contract.
func defaultColorRamp(bounce int) colorful.Color {
	hue := beamBaseHue + float64(bounce)*beamHueStepDeg
	for hue >= 360 {
		hue -= 360
	}
	val := beamBaseValue
	for i := 0; i < bounce && val > beamMinValue; i++ {
		val *= beamValueDecay
	}
	if val < beamMinValue {
		val = beamMinValue
	}
	return colorful.Hsv(hue, beamSaturation, val)
}

// rgba converts a ramp color to the RGBA value ebiten draws with.
func rgba(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// blendRGBA lerps between two draw colors in Lab space, used for hover
// highlights on nodes and walls.
func blendRGBA(from, to color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	b := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	m := a.BlendLab(b, t).Clamped()
	r, g, bl := m.RGB255()
	alpha := uint8(lerp(float64(from.A), float64(to.A), t))
	return color.RGBA{R: r, G: g, B: bl, A: alpha}
}
