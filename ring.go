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

	"seehuhn.de/go/geom/rect"
)

// RingRequest describes a ring drawn around a squircle, in the way of the
// CSS outline property.  The ring does not take up space: it is drawn
// outside the shape, Offset points away from its edge.
type RingRequest struct {
	Size      Size
	Radii     CornerRadii
	Smoothing float64

	// Width is the thickness of the ring.
	Width float64

	// Offset is the gap between the shape and the ring.  Negative values
	// move the ring over the shape.
	Offset float64

	Color color.Color
	Style BorderStyle
}

// RingImage is a rendered ring.
type RingImage struct {
	// Image holds the premultiplied pixels.  Its bounds start at (0, 0).
	Image *image.RGBA

	// Origin is the pixel position of the top left corner of the shape
	// inside Image.
	Origin image.Point

	// Scale is the number of pixels per point.
	Scale float64
}

// RingOutlines returns the outlines of a ring around a squircle.  Outer
// and Inner bound the ring, Center runs along its middle.  The rounded
// corners of the shape grow by the distance of each outline from the
// shape.  Sharp corners stay sharp.
//
// Inner is nil if the offset is so negative that the ring covers the
// whole shape.  The result is nil if nothing remains of the ring.
func RingOutlines(size Size, radii CornerRadii, width, offset, smoothing float64) (*Outlines, error) {
	const op = "squircle.RingOutlines"
	s, err := validateShape(op, size, radii, smoothing)
	if err != nil {
		return nil, err
	}
	if err := validateRing(op, width, offset); err != nil {
		return nil, err
	}
	return s.ringOutlines(width, offset), nil
}

func validateRing(op string, width, offset float64) error {
	if err := checkNonNegative(op, "width", width); err != nil {
		return err
	}
	return checkFinite(op, "offset", offset)
}

func (s shape) ringOutlines(width, offset float64) *Outlines {
	if width == 0 {
		return nil
	}
	outer, ok := s.outset(offset + width)
	if !ok {
		return nil
	}
	res := &Outlines{Outer: outer.path()}
	if inner, ok := s.outset(offset); ok {
		res.Inner = inner.path()
	}
	if center, ok := s.outset(offset + width/2); ok {
		res.Center = center.path()
	}
	return res
}

// RenderRing renders a ring around a squircle.  The image covers the
// shape and the ring.  The shape itself is not drawn.
//
// Dashed and dotted rings use the same patterns as borders.
func RenderRing(req RingRequest, opts ...Option) (*RingImage, error) {
	const op = "squircle.RenderRing"
	s, err := validateShape(op, req.Size, req.Radii, req.Smoothing)
	if err != nil {
		return nil, err
	}
	if err := validateRing(op, req.Width, req.Offset); err != nil {
		return nil, err
	}
	if req.Style < BorderSolid || req.Style > BorderDotted {
		return nil, newError(op, KindInvalidParameter, "style: unknown value %d", int(req.Style))
	}
	o, err := buildOptions(op, opts)
	if err != nil {
		return nil, err
	}

	outlines := s.ringOutlines(req.Width, req.Offset)
	frame := rect.Rect{URx: req.Size.Width, URy: req.Size.Height}
	if outlines != nil {
		frame = unionRect(frame, Bounds(outlines.Outer))
	}
	bounds, err := o.pixelRect(op, frame.LLx, frame.LLy, frame.URx, frame.URy)
	if err != nil {
		return nil, err
	}
	Logger().Debug("rendering ring",
		"size", req.Size.String(),
		"width", req.Width,
		"offset", req.Offset,
		"style", req.Style.String(),
		"pixels", bounds.Size().String())

	img := image.NewRGBA(image.Rectangle{Max: bounds.Size()})
	origin := image.Point{}.Sub(bounds.Min)
	if outlines != nil && !isTransparent(req.Color) {
		c := newCanvas(bounds, o.scale, o.flatness)
		band := borderBand(c, outlines, UniformInsets(req.Width), req.Style)
		paint(img, origin, band, req.Color)
	}
	return &RingImage{Image: img, Origin: origin, Scale: o.scale}, nil
}
