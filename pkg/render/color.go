// pkg/render/color.go

// Package render holds renderer-independent helpers for drawing the packed
// body buffer.
package render

import "image/color"

// Palette assigns colors to bodies by index.
type Palette struct {
	Colors   []color.RGBA
	Fallback color.RGBA
}

// BodyColor returns the color of body i. Colors cycle through the palette.
func (p Palette) BodyColor(i int) color.RGBA {
	if len(p.Colors) == 0 {
		return p.Fallback
	}
	return p.Colors[i%len(p.Colors)]
}

// Dimmed returns a copy of the palette with every color darkened. Bodies
// are drawn with it while the simulation is paused.
func (p Palette) Dimmed() Palette {
	out := Palette{Colors: make([]color.RGBA, len(p.Colors)), Fallback: DarkenColor(p.Fallback)}
	for i, c := range p.Colors {
		out.Colors[i] = DarkenColor(c)
	}
	return out
}

// DarkenColor halves the RGB channels and keeps alpha.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// Circle is one decoded render triple.
type Circle struct {
	X, Y, Radius float32
}

// EachCircle calls fn for every [x, y, r] triple of a render buffer, in body
// order. A trailing partial triple is ignored.
func EachCircle(buf []float32, fn func(i int, c Circle)) {
	for i, b := 0, 0; i+2 < len(buf); i, b = i+3, b+1 {
		fn(b, Circle{X: buf[i], Y: buf[i+1], Radius: buf[i+2]})
	}
}
