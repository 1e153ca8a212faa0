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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Corner is the geometry of one continuous-curvature corner.
//
// The corner consists of a cubic Bézier transition curve leaving the first
// edge, a circular arc of radius Radius, and a mirror image of the first
// transition curve joining the second edge.  The transition curves start
// with zero curvature, so that the outline has continuous curvature where
// it meets the straight edges.
//
// All lengths are in the units of the radius.  The corner is described in
// corner coordinates: the corner point of the enclosing rectangle is the
// origin, the first axis points along the incoming edge towards the corner
// and the second axis points along the outgoing edge away from it.
type Corner struct {
	// Radius is the radius of the circular part.
	Radius float64

	// Smoothing is the smoothing actually used.  It can be smaller than the
	// requested value when the corner does not have enough room.
	Smoothing float64

	// P is the distance from the corner point to where the curve leaves
	// each of the two edges.
	P float64

	// A, B, C and D are the control distances of the transition curves.
	A, B, C, D float64

	// ArcSection is the extent of the circular part along each of the two
	// axes.
	ArcSection float64

	// ArcAngle is the angle, in radians, covered by the circular part.
	ArcAngle float64
}

// CornerProfile computes the corner geometry for the given radius and
// smoothing.  The budget is the largest distance from the corner point
// which the curve may use along either edge, normally half the shorter
// side of the rectangle.
//
// Smoothing 0 gives a quarter circle.  A radius of 0 gives a sharp corner.
// Smoothing outside the range [0, 1] is an error.
func CornerProfile(radius, smoothing, budget float64) (Corner, error) {
	const op = "squircle.CornerProfile"
	if err := checkNonNegative(op, "radius", radius); err != nil {
		return Corner{}, err
	}
	if err := checkNonNegative(op, "budget", budget); err != nil {
		return Corner{}, err
	}
	if math.IsNaN(smoothing) || smoothing < 0 || smoothing > 1 {
		return Corner{}, newError(op, KindInvalidParameter, "smoothing %g outside [0, 1]", smoothing)
	}
	return cornerProfile(radius, smoothing, budget), nil
}

// cornerProfile implements CornerProfile for validated arguments.
func cornerProfile(radius, smoothing, budget float64) Corner {
	radius = min(radius, budget)
	if radius <= 0 {
		return Corner{}
	}

	p := min((1+smoothing)*radius, budget)
	s := max(min(smoothing, budget/radius-1), 0)

	arcMeasure := 90 * (1 - s)
	arcSection := math.Sin(deg(arcMeasure/2)) * radius * math.Sqrt2

	// angle between the line through the arc end points and the edge
	alpha := (90 - arcMeasure) / 2
	p3ToP4 := radius * math.Tan(deg(alpha/2))

	beta := 45 * s
	c := p3ToP4 * math.Cos(deg(beta))
	d := c * math.Tan(deg(beta))

	b := (p - arcSection - c - d) / 3
	a := 2 * b

	return Corner{
		Radius:     radius,
		Smoothing:  s,
		P:          p,
		A:          a,
		B:          b,
		C:          c,
		D:          d,
		ArcSection: arcSection,
		ArcAngle:   deg(arcMeasure),
	}
}

func deg(x float64) float64 {
	return x * math.Pi / 180
}

// IsSharp reports whether the corner is a right angle.
func (c Corner) IsSharp() bool {
	return c.Radius <= 0
}

// hasTransition reports whether the corner has non-degenerate
// transition curves.
func (c Corner) hasTransition() bool {
	return c.B > 0 || c.C > 0 || c.D > 0
}

// Start returns the point where the corner leaves the incoming edge, in
// corner coordinates.
func (c Corner) Start() vec.Vec2 {
	return vec.Vec2{X: -c.P}
}

// Curves returns the three cubic Bézier segments of the corner, in corner
// coordinates.  Each segment is given by its two control points and its
// end point.  The first segment starts at c.Start().
func (c Corner) Curves() [3][3]vec.Vec2 {
	s := vec.Vec2{X: -c.P + c.A + c.B + c.C, Y: c.D}
	e := vec.Vec2{X: -c.D, Y: c.P - c.A - c.B - c.C}
	o := vec.Vec2{X: -c.Radius, Y: c.Radius}

	// A circular arc of angle θ is approximated by one cubic, with
	// control points at distance 4/3·tan(θ/4)·R along the tangents.
	k := 4.0 / 3 * math.Tan(c.ArcAngle/4) * c.Radius
	ts := perp(s.Sub(o)).Mul(1 / c.Radius)
	te := perp(e.Sub(o)).Mul(1 / c.Radius)

	return [3][3]vec.Vec2{
		{
			{X: -c.P + c.A},
			{X: -c.P + c.A + c.B},
			s,
		},
		{
			s.Add(ts.Mul(k)),
			e.Sub(te.Mul(k)),
			e,
		},
		{
			{Y: c.P - c.A - c.B},
			{Y: c.P - c.A},
			{Y: c.P},
		},
	}
}

// perp rotates v by 90 degrees, from the first towards the second corner
// axis.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
