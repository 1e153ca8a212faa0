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

package squircle

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/squircle/raster"
)

// Mask returns the anti-aliased coverage of a squircle, one pixel per
// 1/scale points.
func Mask(size Size, radii CornerRadii, smoothing float64, opts ...Option) (*image.Alpha, error) {
	const op = "squircle.Mask"
	s, err := validateShape(op, size, radii, smoothing)
	if err != nil {
		return nil, err
	}
	o, err := buildOptions(op, opts)
	if err != nil {
		return nil, err
	}
	r, err := o.pixelRect(op, 0, 0, size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	c := newCanvas(r, o.scale, o.flatness)
	return c.fill(s.path(), raster.NonZero).Alpha(), nil
}

// canvas rasterizes outlines given in points into masks covering a fixed
// rectangle of device pixels.
type canvas struct {
	rect image.Rectangle
	r    *raster.Rasterizer
}

func newCanvas(r image.Rectangle, scale, flatness float64) *canvas {
	z := raster.NewRasterizer(clipRect(r))
	z.CTM = matrix.Scale(scale, scale)
	z.Flatness = flatness
	return &canvas{rect: r, r: z}
}

func clipRect(r image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}

func (c *canvas) fill(p *path.Data, rule raster.Rule) *raster.Mask {
	m := raster.NewMask(c.rect)
	if p != nil {
		c.r.Fill(p, rule, m.Store())
	}
	return m
}

// stroke rasterizes a dashed stroke of p.  Joins are round, so that the
// dashes follow the curved corners without spikes.
func (c *canvas) stroke(p *path.Data, width float64, lineCap graphics.LineCapStyle, dash []float64) *raster.Mask {
	m := raster.NewMask(c.rect)
	c.r.Width = width
	c.r.Cap = lineCap
	c.r.Join = graphics.LineJoinRound
	c.r.Dash = dash
	c.r.DashPhase = 0
	c.r.Stroke(p, m.Store())
	c.r.Dash = nil
	return m
}

// union concatenates the subpaths of the given paths.  Filling the result
// with the even-odd rule gives the region between nested outlines.
func union(ps ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range ps {
		if p == nil {
			continue
		}
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}

// paint composites the color c onto dst, using m as the coverage.  Pixel
// (x, y) of m maps to (x, y) + at in dst.
func paint(dst draw.Image, at image.Point, m *raster.Mask, c color.Color) {
	if isTransparent(c) {
		return
	}
	r := m.Rect.Add(at).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, m, r.Min.Sub(at), draw.Over)
}

// accumulate adds m·c to the premultiplied pixels of dst.  This is used
// for regions which partition a shape, where the coverage values of
// neighbouring regions add up to the coverage of their union.
func accumulate(dst *image.RGBA, m *raster.Mask, c color.Color) {
	if isTransparent(c) {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	ch := [4]float32{float32(cr >> 8), float32(cg >> 8), float32(cb >> 8), float32(ca >> 8)}

	b := m.Rect.Intersect(dst.Rect)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := m.Value(x, y)
			if v <= 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			for k, val := range ch {
				dst.Pix[i+k] = uint8(min(float32(dst.Pix[i+k])+val*v+0.5, 255))
			}
		}
	}
}

func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// sameColor reports whether a and b are the same premultiplied color.
// All transparent colors, including nil, are equal.
func sameColor(a, b color.Color) bool {
	if isTransparent(a) || isTransparent(b) {
		return isTransparent(a) && isTransparent(b)
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
