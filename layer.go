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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/squircle/raster"
)

// ClipMode says which side of a clip outline a layer paints on.
type ClipMode int

// These are the supported clip modes.
const (
	// ClipOut paints only outside the clip outline.
	ClipOut ClipMode = iota

	// ClipIn paints only inside the clip outline.
	ClipIn
)

func (m ClipMode) String() string {
	switch m {
	case ClipOut:
		return "clip-out"
	case ClipIn:
		return "clip-in"
	default:
		return fmt.Sprintf("ClipMode(%d)", int(m))
	}
}

// Layer is a resolution independent compositing layer.  The layer fills
// an outline with a color, blurs the result and then clips it to a second
// outline.  All coordinates are in points, relative to the top left corner
// of the shape which casts the shadow.
//
// Layers are computed on demand.  They can be drawn at any scale, and the
// fields can be modified between draws, for example to animate a shadow.
type Layer struct {
	// Frame is the area the layer may paint.
	Frame rect.Rect

	// Fill is the outline which is filled and blurred.
	Fill *path.Data

	// Inverted fills the outside of Fill instead of the inside.
	Inverted bool

	// Clip restricts the painted area.  If Clip is nil, the layer is not
	// clipped.
	Clip     *path.Data
	ClipMode ClipMode

	Color color.Color

	// Sigma is the standard deviation of the Gaussian blur, in points.
	Sigma float64
}

// Bounds returns the pixels which the layer may paint at the given scale.
func (l *Layer) Bounds(scale float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(l.Frame.LLx*scale)),
		int(math.Floor(l.Frame.LLy*scale)),
		int(math.Ceil(l.Frame.URx*scale)),
		int(math.Ceil(l.Frame.URy*scale)),
	)
}

// Render draws the layer into a new image, covering l.Bounds(scale).
// The bounds of the image are in the pixel coordinates of the shape, so
// that the shape origin is at (0, 0).
func (l *Layer) Render(scale float64) (*image.RGBA, error) {
	const op = "squircle.Layer.Render"
	o, err := buildOptions(op, []Option{WithScale(scale)})
	if err != nil {
		return nil, err
	}
	b, err := o.pixelRect(op, l.Frame.LLx, l.Frame.LLy, l.Frame.URx, l.Frame.URy)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(b)
	if err := l.draw(op, img, image.Point{}, &o); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw composites the layer onto dst, using the source-over operator.
// The shape origin is placed at pixel position at.  Only the part of the
// layer inside dst is computed.
func (l *Layer) Draw(dst draw.Image, at image.Point, scale float64) error {
	const op = "squircle.Layer.Draw"
	o, err := buildOptions(op, []Option{WithScale(scale)})
	if err != nil {
		return err
	}
	return l.draw(op, dst, at, &o)
}

func (l *Layer) draw(op string, dst draw.Image, at image.Point, o *options) error {
	area := l.Bounds(o.scale).Intersect(dst.Bounds().Sub(at))
	if area.Empty() || isTransparent(l.Color) {
		return nil
	}
	m, err := l.mask(op, area, o)
	if err != nil {
		return err
	}
	paint(dst, at, m, l.Color)
	return nil
}

// mask computes the coverage of the layer inside the pixel rectangle
// area.
func (l *Layer) mask(op string, area image.Rectangle, o *options) (*raster.Mask, error) {
	sigma := l.Sigma * o.scale
	// The work area is checked before BlurMargin converts to int.
	if err := o.checkWork(op, area, math.Ceil(3*sigma)+1); err != nil {
		return nil, err
	}
	margin := raster.BlurMargin(sigma)
	Logger().Debug("rendering layer",
		"pixels", area.Size().String(),
		"sigma", sigma,
		"margin", margin)

	// The blur needs the filled outline beyond the edges of area.
	work := newCanvas(area.Inset(-margin), o.scale, o.flatness)
	m := work.fill(l.Fill, raster.NonZero)
	m.Blur(sigma)
	if l.Inverted {
		m.Invert()
	}
	m = m.Crop(area)

	if l.Clip != nil {
		c := newCanvas(area, o.scale, o.flatness).fill(l.Clip, raster.NonZero)
		if l.ClipMode == ClipOut {
			c.Invert()
		}
		m.Multiply(c)
	}
	return m, nil
}
