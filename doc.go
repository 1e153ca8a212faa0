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

// Package squircle draws rectangles with continuous-curvature corners,
// together with their borders and box shadows.
//
// A squircle corner starts on each edge with a cubic transition curve of
// zero curvature, which leads into a circular arc.  The smoothing
// parameter controls the length of the transitions: 0 gives an ordinary
// rounded rectangle, 1 gives the flattest corners.  [DefaultSmoothing] is
// a common choice.
//
// All geometry is given in points, with the y axis pointing down.
// Rendering functions take a scale factor (see [WithScale]) which gives the
// number of device pixels per point.
//
// The main entry points are:
//   - [Outline] and [BorderOutlines] for the geometry,
//   - [Mask] for the coverage of a shape,
//   - [RenderBorder] for borders and backgrounds,
//   - [RenderShadows] and [ShadowLayers] for box shadows.
//
// All functions are safe for concurrent use.  Errors are of type
// [*Error] and can be matched using [errors.Is] with [ErrInvalidParameter],
// [ErrInvalidGeometry] and [ErrResourceExhausted].
package squircle
