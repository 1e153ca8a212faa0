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
	"math"
)

// Option configures a rendering operation.
//
// Example:
//
//	img, err := squircle.RenderBorder(req, squircle.WithScale(2))
type Option func(*options)

type options struct {
	scale     float64
	maxPixels int
	flatness  float64
}

// DefaultMaxPixels is the default limit on the number of pixels of a
// rendered image.
const DefaultMaxPixels = 1 << 26

func defaultOptions() options {
	return options{
		scale:     1,
		maxPixels: DefaultMaxPixels,
		flatness:  0.25,
	}
}

// WithScale sets the number of device pixels per point.  Use 2 or 3 for
// high resolution displays.  The default is 1.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithMaxPixels limits the size of rendered images.  Requests which would
// need more pixels fail with ErrResourceExhausted.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		o.maxPixels = n
	}
}

// WithFlatness sets the maximal distance, in device pixels, between a
// curve and the polygon used to rasterize it.  The default is 0.25.
func WithFlatness(flatness float64) Option {
	return func(o *options) {
		o.flatness = flatness
	}
}

func buildOptions(op string, opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.scale > 0) || math.IsInf(o.scale, 0) {
		return o, newError(op, KindInvalidParameter, "scale %g is not positive", o.scale)
	}
	if !(o.flatness > 0) || math.IsInf(o.flatness, 0) {
		return o, newError(op, KindInvalidParameter, "flatness %g is not positive", o.flatness)
	}
	if o.maxPixels <= 0 {
		return o, newError(op, KindInvalidParameter, "pixel limit %d is not positive", o.maxPixels)
	}
	return o, nil
}

// pixelRect converts a rectangle in points to the smallest enclosing
// rectangle of device pixels.  Sizes which exceed the pixel limit are
// reported as errors.
func (o *options) pixelRect(op string, x0, y0, x1, y1 float64) (image.Rectangle, error) {
	fx0 := math.Floor(x0 * o.scale)
	fy0 := math.Floor(y0 * o.scale)
	fx1 := math.Ceil(x1 * o.scale)
	fy1 := math.Ceil(y1 * o.scale)

	w, h := fx1-fx0, fy1-fy0
	if w > maxSide || h > maxSide || w*h > float64(o.maxPixels) ||
		math.Abs(fx0) > maxSide || math.Abs(fy0) > maxSide {
		return image.Rectangle{}, newError(op, KindResourceExhausted,
			"image of %gx%g pixels exceeds the limit of %d pixels", w, h, o.maxPixels)
	}
	return image.Rect(int(fx0), int(fy0), int(fx1), int(fy1)), nil
}

// maxSide bounds pixel coordinates, so that they fit into an int.
const maxSide = 1 << 30

// checkWork reports whether a scratch buffer covering r, grown by pad
// pixels on every side, fits into the pixel limit.
func (o *options) checkWork(op string, r image.Rectangle, pad float64) error {
	w := float64(r.Dx()) + 2*pad
	h := float64(r.Dy()) + 2*pad
	if !(pad <= maxSide && w*h <= float64(o.maxPixels)) {
		return newError(op, KindResourceExhausted,
			"work area of %gx%g pixels exceeds the limit of %d pixels", w, h, o.maxPixels)
	}
	return nil
}
