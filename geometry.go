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
	"math"
)

// Size is the extent of a shape in points.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func (s Size) validate(op string) error {
	if err := checkFinite(op, "size.width", s.Width); err != nil {
		return err
	}
	if err := checkFinite(op, "size.height", s.Height); err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return newError(op, KindInvalidGeometry, "size %s is not positive", s)
	}
	return nil
}

// Radius is the radius of one corner.  X is measured along the horizontal
// edge and Y along the vertical edge.  If X and Y differ, the corner is
// elliptical.
type Radius struct {
	X, Y float64
}

// Circular returns a corner radius with X = Y = r.
func Circular(r float64) Radius {
	return Radius{X: r, Y: r}
}

// IsSharp reports whether the corner is a plain right angle.
func (r Radius) IsSharp() bool {
	return r.X <= 0 || r.Y <= 0
}

// CornerRadii holds the radii of the four corners of a shape.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft Radius
}

// Uniform returns four equal circular corner radii.
func Uniform(r float64) CornerRadii {
	c := Circular(r)
	return CornerRadii{TopLeft: c, TopRight: c, BottomRight: c, BottomLeft: c}
}

func (c CornerRadii) validate(op string) error {
	fields := []struct {
		name string
		val  float64
	}{
		{"radii.top_left.x", c.TopLeft.X}, {"radii.top_left.y", c.TopLeft.Y},
		{"radii.top_right.x", c.TopRight.X}, {"radii.top_right.y", c.TopRight.Y},
		{"radii.bottom_right.x", c.BottomRight.X}, {"radii.bottom_right.y", c.BottomRight.Y},
		{"radii.bottom_left.x", c.BottomLeft.X}, {"radii.bottom_left.y", c.BottomLeft.Y},
	}
	for _, f := range fields {
		if err := checkNonNegative(op, f.name, f.val); err != nil {
			return err
		}
	}
	return nil
}

// isUniform reports whether all four corners are equal and circular.
func (c CornerRadii) isUniform() bool {
	return c.TopLeft.X == c.TopLeft.Y &&
		c.TopLeft == c.TopRight &&
		c.TopLeft == c.BottomRight &&
		c.TopLeft == c.BottomLeft
}

// fit scales all radii by a common factor, so that no horizontal radius
// exceeds half the width and no vertical radius exceeds half the height.
// The ratios between the radii are preserved.  The second return value
// is the factor used.
func (c CornerRadii) fit(size Size) (CornerRadii, float64) {
	maxX := max(c.TopLeft.X, c.TopRight.X, c.BottomRight.X, c.BottomLeft.X)
	maxY := max(c.TopLeft.Y, c.TopRight.Y, c.BottomRight.Y, c.BottomLeft.Y)

	f := 1.0
	if maxX > size.Width/2 {
		f = min(f, size.Width/2/maxX)
	}
	if maxY > size.Height/2 {
		f = min(f, size.Height/2/maxY)
	}
	if f == 1 {
		return c, 1
	}
	return c.scale(f), f
}

func (c CornerRadii) scale(f float64) CornerRadii {
	s := func(r Radius) Radius { return Radius{X: r.X * f, Y: r.Y * f} }
	return CornerRadii{
		TopLeft:     s(c.TopLeft),
		TopRight:    s(c.TopRight),
		BottomRight: s(c.BottomRight),
		BottomLeft:  s(c.BottomLeft),
	}
}

// inset returns the radii of a concentric shape with edges moved inwards
// by the given amounts.  Each axis of a corner shrinks by the inset of the
// adjacent edge, so uneven insets give elliptical corners.
func (c CornerRadii) inset(e EdgeInsets) CornerRadii {
	s := func(r Radius, dx, dy float64) Radius {
		return Radius{X: max(r.X-dx, 0), Y: max(r.Y-dy, 0)}
	}
	return CornerRadii{
		TopLeft:     s(c.TopLeft, e.Left, e.Top),
		TopRight:    s(c.TopRight, e.Right, e.Top),
		BottomRight: s(c.BottomRight, e.Right, e.Bottom),
		BottomLeft:  s(c.BottomLeft, e.Left, e.Bottom),
	}
}

// grow adds d to both axes of every rounded corner.  Sharp corners stay
// sharp.  Negative d shrinks the corners, down to zero.
func (c CornerRadii) grow(d float64) CornerRadii {
	g := func(r Radius) Radius {
		if r.IsSharp() {
			return Radius{}
		}
		return Radius{X: max(r.X+d, 0), Y: max(r.Y+d, 0)}
	}
	return CornerRadii{
		TopLeft:     g(c.TopLeft),
		TopRight:    g(c.TopRight),
		BottomRight: g(c.BottomRight),
		BottomLeft:  g(c.BottomLeft),
	}
}

// EdgeInsets gives a distance for each of the four edges of a rectangle,
// for example border widths.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns insets with all four values equal to w.
func UniformInsets(w float64) EdgeInsets {
	return EdgeInsets{Top: w, Left: w, Bottom: w, Right: w}
}

// IsUniform reports whether all four insets are equal.
func (e EdgeInsets) IsUniform() bool {
	return e.Top == e.Left && e.Top == e.Bottom && e.Top == e.Right
}

// IsZero reports whether all four insets are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Scale multiplies all insets by f.
func (e EdgeInsets) Scale(f float64) EdgeInsets {
	return EdgeInsets{Top: e.Top * f, Left: e.Left * f, Bottom: e.Bottom * f, Right: e.Right * f}
}

func (e EdgeInsets) validate(op, name string, size Size) error {
	for _, f := range []struct {
		name string
		val  float64
	}{{"top", e.Top}, {"left", e.Left}, {"bottom", e.Bottom}, {"right", e.Right}} {
		if err := checkNonNegative(op, name+"."+f.name, f.val); err != nil {
			return err
		}
	}
	if e.Left+e.Right > size.Width || e.Top+e.Bottom > size.Height {
		return newError(op, KindInvalidGeometry,
			"%s (%g,%g,%g,%g) exceed size %s", name, e.Top, e.Left, e.Bottom, e.Right, size)
	}
	return nil
}

// DefaultSmoothing is the corner smoothing used by most designs.
const DefaultSmoothing = 0.6

// clampSmoothing soft-clamps s to the range [0, 1].  NaN and negative
// values are errors.
func clampSmoothing(op string, s float64) (float64, error) {
	if math.IsNaN(s) {
		return 0, newError(op, KindInvalidParameter, "smoothing: not a number")
	}
	if s < 0 {
		return 0, newError(op, KindInvalidParameter, "smoothing: negative value %g", s)
	}
	return min(s, 1), nil
}
