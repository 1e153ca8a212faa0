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
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/squircle/raster"
)

// BorderStyle selects how the border band is painted.
type BorderStyle int

// These are the supported border styles.
const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderDotted
)

func (s BorderStyle) String() string {
	switch s {
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// BorderColors gives the color of each edge of a border.  A nil color is
// transparent.
type BorderColors struct {
	Top, Left, Bottom, Right color.Color
}

// UniformColors returns border colors with all four edges set to c.
func UniformColors(c color.Color) BorderColors {
	return BorderColors{Top: c, Left: c, Bottom: c, Right: c}
}

func (c BorderColors) isUniform() bool {
	return sameColor(c.Top, c.Left) && sameColor(c.Top, c.Bottom) && sameColor(c.Top, c.Right)
}

// BorderRequest describes a border to render.
type BorderRequest struct {
	Size      Size
	Radii     CornerRadii
	Widths    EdgeInsets
	Colors    BorderColors
	Style     BorderStyle
	Smoothing float64

	// Background, if not nil, fills the shape under the border.
	Background color.Color

	// DrawToEdge extends the background to the outer edge of the border.
	// Otherwise the background stops at the inner edge.
	DrawToEdge bool
}

// BorderImage is a rendered border.
type BorderImage struct {
	// Image holds the premultiplied pixels.  Its bounds start at (0, 0).
	Image *image.RGBA

	// CapInsets are the widths, in pixels, of the margins which contain
	// the corners.  The parts of the image between the margins can be
	// stretched without distorting the corners.
	CapInsets EdgeInsets

	// Scale is the number of pixels per point.
	Scale float64
}

// RenderBorder renders the border and background of a squircle.
//
// Different edge colors meet along the diagonals from the outer corners of
// the shape to the corners of the inner rectangle.  Dashed and dotted
// borders need equal widths on all edges.  Otherwise they are drawn as
// solid borders.
func RenderBorder(req BorderRequest, opts ...Option) (*BorderImage, error) {
	const op = "squircle.RenderBorder"
	s, err := validateShape(op, req.Size, req.Radii, req.Smoothing)
	if err != nil {
		return nil, err
	}
	if err := req.Widths.validate(op, "widths", req.Size); err != nil {
		return nil, err
	}
	if req.Style < BorderSolid || req.Style > BorderDotted {
		return nil, newError(op, KindInvalidParameter, "style: unknown value %d", int(req.Style))
	}
	o, err := buildOptions(op, opts)
	if err != nil {
		return nil, err
	}
	bounds, err := o.pixelRect(op, 0, 0, req.Size.Width, req.Size.Height)
	if err != nil {
		return nil, err
	}
	Logger().Debug("rendering border",
		"size", req.Size.String(),
		"style", req.Style.String(),
		"scale", o.scale,
		"pixels", bounds.Size().String())

	outlines := s.borderOutlines(req.Widths)
	c := newCanvas(bounds, o.scale, o.flatness)
	img := image.NewRGBA(bounds)

	if req.Background != nil {
		bg := outlines.Inner
		if req.DrawToEdge {
			bg = outlines.Outer
		}
		if bg != nil {
			paint(img, image.Point{}, c.fill(bg, raster.NonZero), req.Background)
		}
	}

	if !req.Widths.IsZero() {
		band := borderBand(c, outlines, req.Widths, req.Style)
		layer := image.NewRGBA(bounds)
		if req.Colors.isUniform() {
			accumulate(layer, band, req.Colors.Top)
		} else {
			for _, e := range s.edgeRegions(req.Widths, req.Colors) {
				m := c.fill(e.region, raster.NonZero)
				m.Multiply(band)
				accumulate(layer, m, e.color)
			}
		}
		draw.Draw(img, bounds, layer, bounds.Min, draw.Over)
	}

	return &BorderImage{
		Image:     img,
		CapInsets: s.capInsets(req.Widths).Scale(o.scale).ceil(),
		Scale:     o.scale,
	}, nil
}

// borderBand returns the coverage of the painted part of the border.
func borderBand(c *canvas, outlines *Outlines, widths EdgeInsets, style BorderStyle) *raster.Mask {
	if style != BorderSolid && !widths.IsUniform() {
		Logger().Warn("border widths differ, drawing a solid border",
			"style", style.String(),
			"widths", fmt.Sprintf("%g,%g,%g,%g", widths.Top, widths.Left, widths.Bottom, widths.Right))
		style = BorderSolid
	}

	w := widths.Top
	switch {
	case style == BorderSolid || outlines.Center == nil:
		return c.fill(union(outlines.Outer, outlines.Inner), raster.EvenOdd)
	case style == BorderDashed:
		m := c.stroke(outlines.Center, w, graphics.LineCapButt, []float64{3 * w, 3 * w})
		m.Multiply(c.fill(outlines.Outer, raster.NonZero))
		return m
	default: // BorderDotted
		m := c.stroke(outlines.Center, w, graphics.LineCapRound, []float64{0, 2 * w})
		m.Multiply(c.fill(outlines.Outer, raster.NonZero))
		return m
	}
}

type edgeRegion struct {
	region *path.Data
	color  color.Color
}

// edgeRegions divides the rectangle of s into four quadrilaterals, one per
// edge, which meet along the lines from the outer corners to the corners of
// the inner rectangle.  Edges with zero width or transparent color are
// omitted.
func (s shape) edgeRegions(widths EdgeInsets, colors BorderColors) []edgeRegion {
	x0, y0 := s.X, s.Y
	x1, y1 := s.X+s.Size.Width, s.Y+s.Size.Height
	ix0, iy0 := x0+widths.Left, y0+widths.Top
	ix1, iy1 := x1-widths.Right, y1-widths.Bottom

	quad := func(a, b, c, d vec.Vec2) *path.Data {
		return (&path.Data{}).MoveTo(a).LineTo(b).LineTo(c).LineTo(d).Close()
	}
	o00, o10 := vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y0}
	o11, o01 := vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x0, Y: y1}
	i00, i10 := vec.Vec2{X: ix0, Y: iy0}, vec.Vec2{X: ix1, Y: iy0}
	i11, i01 := vec.Vec2{X: ix1, Y: iy1}, vec.Vec2{X: ix0, Y: iy1}

	all := []struct {
		width  float64
		color  color.Color
		region *path.Data
	}{
		{widths.Top, colors.Top, quad(o00, o10, i10, i00)},
		{widths.Right, colors.Right, quad(o10, o11, i11, i10)},
		{widths.Bottom, colors.Bottom, quad(o11, o01, i01, i11)},
		{widths.Left, colors.Left, quad(o01, o00, i00, i01)},
	}
	var res []edgeRegion
	for _, e := range all {
		if e.width <= 0 || isTransparent(e.color) {
			continue
		}
		res = append(res, edgeRegion{region: e.region, color: e.color})
	}
	return res
}

// capInsets returns the margins, in points, which contain the corner
// curves and the border widths.
func (s shape) capInsets(widths EdgeInsets) EdgeInsets {
	tl := s.cornerExtent(s.Radii.TopLeft)
	tr := s.cornerExtent(s.Radii.TopRight)
	br := s.cornerExtent(s.Radii.BottomRight)
	bl := s.cornerExtent(s.Radii.BottomLeft)
	return EdgeInsets{
		Top:    max(widths.Top, tl.Y, tr.Y),
		Left:   max(widths.Left, tl.X, bl.X),
		Bottom: max(widths.Bottom, bl.Y, br.Y),
		Right:  max(widths.Right, tr.X, br.X),
	}
}

// cornerExtent returns how far the corner curve reaches along the
// horizontal and vertical edges.
func (s shape) cornerExtent(r Radius) vec.Vec2 {
	if r.IsSharp() {
		return vec.Vec2{}
	}
	budget := min(s.Size.Width/2/r.X, s.Size.Height/2/r.Y)
	p := cornerProfile(1, s.Smoothing, budget).P
	return vec.Vec2{X: p * r.X, Y: p * r.Y}
}

// ceil rounds all insets up to whole numbers.
func (e EdgeInsets) ceil() EdgeInsets {
	return EdgeInsets{
		Top:    math.Ceil(e.Top),
		Left:   math.Ceil(e.Left),
		Bottom: math.Ceil(e.Bottom),
		Right:  math.Ceil(e.Right),
	}
}
