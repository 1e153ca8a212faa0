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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// BoxShadow describes one shadow cast by a shape.
type BoxShadow struct {
	// OffsetX and OffsetY move the shadow relative to the shape.
	OffsetX, OffsetY float64

	// Blur is the blur radius.  The shadow edge is blurred with a
	// Gaussian of standard deviation Blur/2.
	Blur float64

	// Spread grows the shadow shape on all sides before blurring.
	// Negative values shrink it.
	Spread float64

	Color color.Color

	// Inset shadows are cast inwards, onto the inside of the shape.
	Inset bool
}

func (b BoxShadow) validate(op, name string) error {
	if err := checkFinite(op, name+".offset_x", b.OffsetX); err != nil {
		return err
	}
	if err := checkFinite(op, name+".offset_y", b.OffsetY); err != nil {
		return err
	}
	if err := checkNonNegative(op, name+".blur", b.Blur); err != nil {
		return err
	}
	return checkFinite(op, name+".spread", b.Spread)
}

// ShadowRequest describes the shadows of a squircle.
type ShadowRequest struct {
	Size      Size
	Radii     CornerRadii
	Smoothing float64

	// Shadows are painted in order: the first shadow is at the bottom,
	// the last shadow is on top.
	Shadows []BoxShadow
}

// ShadowImage holds a set of rendered shadows.
type ShadowImage struct {
	// Image holds the premultiplied pixels.  Its bounds start at (0, 0).
	Image *image.RGBA

	// Origin is the pixel position of the top left corner of the shape.
	Origin image.Point

	// Scale is the number of pixels per point.
	Scale float64
}

// shadowClipInset is the distance, in points, by which the clip outline of
// an outset shadow lies inside the shape.  The shadow then slightly
// overlaps the shape, and no gap shows between the shape edge and the
// shadow.
const shadowClipInset = 0.4

// RenderShadows renders all shadows of a squircle into one image.  The
// image covers the shape and all shadows.  The shape itself is not drawn.
func RenderShadows(req ShadowRequest, opts ...Option) (*ShadowImage, error) {
	const op = "squircle.RenderShadows"
	layers, err := shadowLayers(op, req)
	if err != nil {
		return nil, err
	}
	o, err := buildOptions(op, opts)
	if err != nil {
		return nil, err
	}

	frame := rect.Rect{URx: req.Size.Width, URy: req.Size.Height}
	for _, l := range layers {
		frame = unionRect(frame, l.Frame)
	}
	bounds, err := o.pixelRect(op, frame.LLx, frame.LLy, frame.URx, frame.URy)
	if err != nil {
		return nil, err
	}
	Logger().Debug("rendering shadows",
		"size", req.Size.String(),
		"layers", len(layers),
		"scale", o.scale,
		"pixels", bounds.Size().String())

	img := image.NewRGBA(image.Rectangle{Max: bounds.Size()})
	origin := image.Point{}.Sub(bounds.Min)
	for _, l := range layers {
		if err := l.draw(op, img, origin, &o); err != nil {
			return nil, err
		}
	}
	return &ShadowImage{Image: img, Origin: origin, Scale: o.scale}, nil
}

// ShadowLayers returns one compositing layer per shadow, in painting
// order.  Shadows which paint nothing, for example because they are
// transparent, are omitted.
func ShadowLayers(req ShadowRequest) ([]*Layer, error) {
	return shadowLayers("squircle.ShadowLayers", req)
}

func shadowLayers(op string, req ShadowRequest) ([]*Layer, error) {
	s, err := validateShape(op, req.Size, req.Radii, req.Smoothing)
	if err != nil {
		return nil, err
	}
	var layers []*Layer
	for i, b := range req.Shadows {
		if err := b.validate(op, fmt.Sprintf("shadows[%d]", i)); err != nil {
			return nil, err
		}
		if l := s.shadowLayer(b); l != nil {
			layers = append(layers, l)
		}
	}
	return layers, nil
}

// ShadowLayer returns the compositing layer for a single shadow.  The
// result is nil if the shadow paints nothing.
func ShadowLayer(shadow BoxShadow, size Size, radii CornerRadii, smoothing float64) (*Layer, error) {
	const op = "squircle.ShadowLayer"
	s, err := validateShape(op, size, radii, smoothing)
	if err != nil {
		return nil, err
	}
	if err := shadow.validate(op, "shadow"); err != nil {
		return nil, err
	}
	return s.shadowLayer(shadow), nil
}

func (s shape) shadowLayer(b BoxShadow) *Layer {
	if isTransparent(b.Color) {
		return nil
	}
	sigma := b.Blur / 2

	if b.Inset {
		l := &Layer{
			Frame:    rect.Rect{LLx: s.X, LLy: s.Y, URx: s.X + s.Size.Width, URy: s.Y + s.Size.Height},
			Fill:     &path.Data{},
			Inverted: true,
			Clip:     s.path(),
			ClipMode: ClipIn,
			Color:    b.Color,
			Sigma:    sigma,
		}
		// If the spread swallows the hole, the shadow covers the
		// whole shape.
		if hole, ok := s.translate(b.OffsetX, b.OffsetY).outset(-b.Spread); ok {
			l.Fill = hole.path()
		}
		return l
	}

	cast, ok := s.translate(b.OffsetX, b.OffsetY).outset(b.Spread)
	if !ok {
		return nil
	}
	margin := 3 * sigma
	l := &Layer{
		Frame: rect.Rect{
			LLx: cast.X - margin,
			LLy: cast.Y - margin,
			URx: cast.X + cast.Size.Width + margin,
			URy: cast.Y + cast.Size.Height + margin,
		},
		Fill:     cast.path(),
		ClipMode: ClipOut,
		Color:    b.Color,
		Sigma:    sigma,
	}
	if clip, ok := s.inset(UniformInsets(shadowClipInset)); ok {
		l.Clip = clip.path()
	} else {
		// too small to inset
		l.Clip = s.path()
	}
	return l
}

func unionRect(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
