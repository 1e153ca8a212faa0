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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the closed outline of a squircle with the given size,
// with its top left corner at the origin.  The y axis points down and the
// outline runs clockwise, starting on the top edge.
//
// Radii which do not fit are scaled down together, keeping their ratios.
// Smoothing values above 1 are treated as 1.
func Outline(size Size, radii CornerRadii, smoothing float64) (*path.Data, error) {
	const op = "squircle.Outline"
	s, err := validateShape(op, size, radii, smoothing)
	if err != nil {
		return nil, err
	}
	return s.path(), nil
}

// Outlines are the nested outlines of a border.
type Outlines struct {
	// Outer is the outline of the full shape.
	Outer *path.Data

	// Inner is the outline of the area inside the border.  It is nil if
	// the border leaves no interior.
	Inner *path.Data

	// Center runs halfway between Outer and Inner.  Dashed and dotted
	// borders are stroked along this line.
	Center *path.Data
}

// BorderOutlines returns the outlines of a border with the given widths.
// The inner corners are concentric with the outer ones: each axis of a
// corner radius shrinks by the width of the adjacent edge.
func BorderOutlines(size Size, radii CornerRadii, widths EdgeInsets, smoothing float64) (*Outlines, error) {
	const op = "squircle.BorderOutlines"
	s, err := validateShape(op, size, radii, smoothing)
	if err != nil {
		return nil, err
	}
	if err := widths.validate(op, "widths", size); err != nil {
		return nil, err
	}
	return s.borderOutlines(widths), nil
}

// Bounds returns the bounding box of the points and control points of p.
// For the outlines constructed by this package, this is the exact
// bounding box of the shape.
func Bounds(p *path.Data) rect.Rect {
	if len(p.Coords) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, q := range p.Coords {
		b.LLx = min(b.LLx, q.X)
		b.LLy = min(b.LLy, q.Y)
		b.URx = max(b.URx, q.X)
		b.URy = max(b.URy, q.Y)
	}
	return b
}

// Offset returns a copy of p, moved by (dx, dy).
func Offset(p *path.Data, dx, dy float64) *path.Data {
	res := &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	d := vec.Vec2{X: dx, Y: dy}
	for i, q := range p.Coords {
		res.Coords[i] = q.Add(d)
	}
	return res
}

// shape is a validated squircle, placed in the plane.
type shape struct {
	X, Y      float64 // top left corner
	Size      Size
	Radii     CornerRadii // fitted to Size
	Smoothing float64     // in [0, 1]
}

// validateShape checks the common arguments of all operations and
// returns the corresponding shape at the origin.
func validateShape(op string, size Size, radii CornerRadii, smoothing float64) (shape, error) {
	if err := size.validate(op); err != nil {
		return shape{}, err
	}
	if err := radii.validate(op); err != nil {
		return shape{}, err
	}
	s, err := clampSmoothing(op, smoothing)
	if err != nil {
		return shape{}, err
	}
	return newShape(0, 0, size, radii, s), nil
}

// newShape places a squircle with top left corner (x, y).  The radii are
// fitted to the size.
func newShape(x, y float64, size Size, radii CornerRadii, smoothing float64) shape {
	fitted, f := radii.fit(size)
	if f < 1 {
		Logger().Debug("scaled corner radii", "size", size.String(), "factor", f)
	}
	return shape{X: x, Y: y, Size: size, Radii: fitted, Smoothing: smoothing}
}

// inset returns the shape with its edges moved inwards by e.  The second
// return value is false if nothing remains.
func (s shape) inset(e EdgeInsets) (shape, bool) {
	size := Size{
		Width:  s.Size.Width - e.Left - e.Right,
		Height: s.Size.Height - e.Top - e.Bottom,
	}
	if !(size.Width > 0 && size.Height > 0) {
		return shape{}, false
	}
	return newShape(s.X+e.Left, s.Y+e.Top, size, s.Radii.inset(e), s.Smoothing), true
}

// outset moves all edges outwards by d and grows the rounded corners by
// the same amount.  Negative d moves the edges inwards.
func (s shape) outset(d float64) (shape, bool) {
	size := Size{Width: s.Size.Width + 2*d, Height: s.Size.Height + 2*d}
	if !(size.Width > 0 && size.Height > 0) {
		return shape{}, false
	}
	return newShape(s.X-d, s.Y-d, size, s.Radii.grow(d), s.Smoothing), true
}

// translate moves the shape by (dx, dy).
func (s shape) translate(dx, dy float64) shape {
	s.X += dx
	s.Y += dy
	return s
}

func (s shape) borderOutlines(widths EdgeInsets) *Outlines {
	res := &Outlines{Outer: s.path()}
	if inner, ok := s.inset(widths); ok {
		res.Inner = inner.path()
	}
	if center, ok := s.inset(widths.Scale(0.5)); ok {
		res.Center = center.path()
	}
	return res
}

// placement describes where a corner sits on the rectangle.  u is the
// direction of travel along the incoming edge and v along the outgoing
// edge.  If swap is set, u is vertical.
type placement struct {
	at   vec.Vec2
	u, v vec.Vec2
	r    Radius
	swap bool
}

// path builds the clockwise outline of the shape.
func (s shape) path() *path.Data {
	x0, y0 := s.X, s.Y
	x1, y1 := s.X+s.Size.Width, s.Y+s.Size.Height
	corners := [4]placement{
		{at: vec.Vec2{X: x1, Y: y0}, u: vec.Vec2{X: 1}, v: vec.Vec2{Y: 1}, r: s.Radii.TopRight},
		{at: vec.Vec2{X: x1, Y: y1}, u: vec.Vec2{Y: 1}, v: vec.Vec2{X: -1}, r: s.Radii.BottomRight, swap: true},
		{at: vec.Vec2{X: x0, Y: y1}, u: vec.Vec2{X: -1}, v: vec.Vec2{Y: -1}, r: s.Radii.BottomLeft},
		{at: vec.Vec2{X: x0, Y: y0}, u: vec.Vec2{Y: -1}, v: vec.Vec2{X: 1}, r: s.Radii.TopLeft, swap: true},
	}

	// The profile is computed for unit radius and then stretched along
	// each axis, which also handles elliptical corners.
	halfW, halfH := s.Size.Width/2, s.Size.Height/2
	uniform := s.Radii.isUniform()
	var prof Corner

	p := &path.Data{}
	var cur vec.Vec2
	started := false
	lineTo := func(q vec.Vec2) {
		switch {
		case !started:
			p.MoveTo(q)
			started = true
		case q != cur:
			p.LineTo(q)
		}
		cur = q
	}

	for i, c := range corners {
		if c.r.IsSharp() {
			lineTo(c.at)
			continue
		}
		su, sv := c.r.X, c.r.Y
		if c.swap {
			su, sv = sv, su
		}
		if i == 0 || !uniform {
			budget := min(halfW/c.r.X, halfH/c.r.Y)
			prof = cornerProfile(1, s.Smoothing, budget)
		}
		tr := func(q vec.Vec2) vec.Vec2 {
			return c.at.Add(c.u.Mul(q.X * su)).Add(c.v.Mul(q.Y * sv))
		}

		lineTo(tr(prof.Start()))
		for j, seg := range prof.Curves() {
			if j != 1 && !prof.hasTransition() {
				continue
			}
			p.CubeTo(tr(seg[0]), tr(seg[1]), tr(seg[2]))
			cur = tr(seg[2])
		}
	}
	p.Close()
	return p
}
