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

// Package pdfout writes squircle outlines as vector graphics to PDF files.
package pdfout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/testcases"
)

// Shape is an outline to be painted.
type Shape struct {
	Path *path.Data

	// Gray is the paint color, from 0 (black) to 1 (white).
	Gray float64

	// EvenOdd fills using the even-odd rule instead of nonzero winding.
	EvenOdd bool

	// If Stroke is set, the outline is stroked instead of filled.
	Stroke bool
	Width  float64
	Cap    graphics.LineCapStyle
	Dash   []float64
}

// Write writes a single page PDF file with the given shapes.  The shapes
// use y-down coordinates.  The page is just large enough to hold all
// shapes.
func Write(fname string, shapes []Shape) error {
	b, ok := PageBounds(shapes)
	if !ok {
		return errors.New("nothing to draw")
	}
	paper := &pdf.Rectangle{URx: b.URx - b.LLx, URy: b.URy - b.LLy}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, squircle outlines use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, -b.LLx, b.URy})

	for _, s := range shapes {
		if s.Path == nil {
			continue
		}
		if s.Stroke {
			page.SetStrokeColor(color.DeviceGray(s.Gray))
			page.SetLineWidth(s.Width)
			page.SetLineCap(s.Cap)
			page.SetLineJoin(graphics.LineJoinRound)
			if len(s.Dash) > 0 {
				page.SetLineDash(s.Dash, 0)
			}
		} else {
			page.SetFillColor(color.DeviceGray(s.Gray))
		}

		// PDF has no quadratic curves
		for cmd, pts := range s.Path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		switch {
		case s.Stroke:
			page.Stroke()
			if len(s.Dash) > 0 {
				page.SetLineDash(nil, 0)
			}
		case s.EvenOdd:
			page.FillEvenOdd()
		default:
			page.Fill()
		}
	}

	return page.Close()
}

// PageBounds returns the area covered by the shapes, with room for
// half the line width around stroked outlines.
func PageBounds(shapes []Shape) (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for _, s := range shapes {
		if s.Path == nil || len(s.Path.Coords) == 0 {
			continue
		}
		b := squircle.Bounds(s.Path)
		if s.Stroke {
			d := s.Width / 2
			b = rect.Rect{LLx: b.LLx - d, LLy: b.LLy - d, URx: b.URx + d, URy: b.URy + d}
		}
		if !found {
			res, found = b, true
			continue
		}
		res = rect.Rect{
			LLx: min(res.LLx, b.LLx),
			LLy: min(res.LLy, b.LLy),
			URx: max(res.URx, b.URx),
			URy: max(res.URy, b.URy),
		}
	}
	return res, found
}

// Shapes returns the outlines of a test case.  Borders and rings give
// the band between the outer and inner outline, or the dash pattern
// along the center line.  Rings are drawn over a light copy of the
// shape.  Shadows give the unblurred outset shadow shapes under the
// shape, and the holes of inset shadows on top of it.
func Shapes(tc testcases.TestCase) ([]Shape, error) {
	switch op := tc.Op.(type) {
	case testcases.Fill:
		p, err := squircle.Outline(tc.Size, tc.Radii, tc.Smoothing)
		if err != nil {
			return nil, err
		}
		return []Shape{{Path: p}}, nil

	case testcases.Border:
		o, err := squircle.BorderOutlines(tc.Size, tc.Radii, op.Widths, tc.Smoothing)
		if err != nil {
			return nil, err
		}
		return bandShapes(o, op.Widths, op.Style), nil

	case testcases.Shadows:
		layers, err := squircle.ShadowLayers(tc.ShadowRequest(op))
		if err != nil {
			return nil, err
		}
		p, err := squircle.Outline(tc.Size, tc.Radii, tc.Smoothing)
		if err != nil {
			return nil, err
		}
		var res []Shape
		for _, l := range layers {
			if l.Inverted {
				continue
			}
			res = append(res, Shape{Path: l.Fill, Gray: 0.7})
		}
		res = append(res, Shape{Path: p, Gray: 0})
		for _, l := range layers {
			if l.Inverted {
				res = append(res, Shape{Path: l.Fill, Gray: 0.4})
			}
		}
		return res, nil

	case testcases.Ring:
		o, err := squircle.RingOutlines(tc.Size, tc.Radii, op.Width, op.Offset, tc.Smoothing)
		if err != nil {
			return nil, err
		}
		p, err := squircle.Outline(tc.Size, tc.Radii, tc.Smoothing)
		if err != nil {
			return nil, err
		}
		res := []Shape{{Path: p, Gray: 0.85}}
		if o == nil {
			return res, nil
		}
		return append(res, bandShapes(o, squircle.UniformInsets(op.Width), op.Style)...), nil

	default:
		return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}
}

// bandShapes returns the band between the outer and inner outline, or
// the dash pattern along the center line.
func bandShapes(o *squircle.Outlines, widths squircle.EdgeInsets, style squircle.BorderStyle) []Shape {
	w := widths.Top
	switch {
	case style == squircle.BorderDashed && widths.IsUniform() && o.Center != nil:
		return []Shape{{Path: o.Center, Stroke: true, Width: w,
			Cap: graphics.LineCapButt, Dash: []float64{3 * w, 3 * w}}}
	case style == squircle.BorderDotted && widths.IsUniform() && o.Center != nil:
		return []Shape{{Path: o.Center, Stroke: true, Width: w,
			Cap: graphics.LineCapRound, Dash: []float64{0, 2 * w}}}
	}
	band := &path.Data{}
	for _, p := range []*path.Data{o.Outer, o.Inner} {
		if p != nil {
			band.Cmds = append(band.Cmds, p.Cmds...)
			band.Coords = append(band.Coords, p.Coords...)
		}
	}
	return []Shape{{Path: band, EvenOdd: true}}
}
