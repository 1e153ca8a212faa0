// seehuhn.de/go/squircle - continuous-corner borders and shadows
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Mask is a rectangular grid of coverage values in the range [0, 1].
type Mask struct {
	// Pix holds the values in row-major order.  The value of pixel
	// (x, y) is Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix    []float32
	Stride int
	Rect   image.Rectangle
}

// NewMask returns a zeroed mask covering r.
func NewMask(r image.Rectangle) *Mask {
	w, h := r.Dx(), r.Dy()
	return &Mask{
		Pix:    make([]float32, w*h),
		Stride: w,
		Rect:   r,
	}
}

// Bounds implements part of the image.Image interface.
func (m *Mask) Bounds() image.Rectangle { return m.Rect }

// ColorModel implements part of the image.Image interface.
func (m *Mask) ColorModel() color.Model { return color.Alpha16Model }

// At implements part of the image.Image interface, so that a Mask can be
// used directly as the mask argument of draw.DrawMask.
func (m *Mask) At(x, y int) color.Color {
	return color.Alpha16{A: uint16(m.Value(x, y)*0xffff + 0.5)}
}

// Value returns the coverage of pixel (x, y).  Pixels outside the mask
// have coverage 0.
func (m *Mask) Value(x, y int) float32 {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[(y-m.Rect.Min.Y)*m.Stride+(x-m.Rect.Min.X)]
}

// Clip returns the mask rectangle as a rasterizer clip region.
func (m *Mask) Clip() rect.Rect {
	return rect.Rect{
		LLx: float64(m.Rect.Min.X),
		LLy: float64(m.Rect.Min.Y),
		URx: float64(m.Rect.Max.X),
		URy: float64(m.Rect.Max.Y),
	}
}

// Store returns an EmitFunc which writes coverage values into m,
// replacing the previous contents.
func (m *Mask) Store() EmitFunc {
	return func(y, xMin int, coverage []float32) {
		if y < m.Rect.Min.Y || y >= m.Rect.Max.Y {
			return
		}
		row := m.Pix[(y-m.Rect.Min.Y)*m.Stride:]
		for i, c := range coverage {
			x := xMin + i
			if x >= m.Rect.Min.X && x < m.Rect.Max.X {
				row[x-m.Rect.Min.X] = c
			}
		}
	}
}

// Crop returns a copy of the part of m inside r.  Pixels of r outside m
// are 0.
func (m *Mask) Crop(r image.Rectangle) *Mask {
	res := NewMask(r)
	res.combine(m, func(_, b float32) float32 { return b })
	return res
}

// Multiply scales every pixel of m by the matching pixel of other.
// Pixels of m outside other become 0.
func (m *Mask) Multiply(other *Mask) {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		row := m.Pix[(y-m.Rect.Min.Y)*m.Stride:]
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			row[x-m.Rect.Min.X] *= other.Value(x, y)
		}
	}
}

// Invert replaces every value v by 1-v.
func (m *Mask) Invert() {
	for i, v := range m.Pix {
		m.Pix[i] = 1 - v
	}
}

func (m *Mask) combine(other *Mask, f func(a, b float32) float32) {
	r := m.Rect.Intersect(other.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst := m.Pix[(y-m.Rect.Min.Y)*m.Stride:]
		src := other.Pix[(y-other.Rect.Min.Y)*other.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			i := x - m.Rect.Min.X
			dst[i] = f(dst[i], src[x-other.Rect.Min.X])
		}
	}
}

// Alpha converts m to an 8-bit alpha image.
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(m.Rect)
	w := m.Rect.Dx()
	for y := 0; y < m.Rect.Dy(); y++ {
		src := m.Pix[y*m.Stride : y*m.Stride+w]
		dst := img.Pix[y*img.Stride : y*img.Stride+w]
		for x, v := range src {
			dst[x] = uint8(max(0, min(255, int(v*255+0.5))))
		}
	}
	return img
}
