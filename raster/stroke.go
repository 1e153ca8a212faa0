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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// line is a flattened stroke segment in user space.
type line struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent a→b
	n    vec.Vec2 // unit normal, t rotated by +90°
}

// at returns the point at distance s from a.
func (l *line) at(s float64) vec.Vec2 {
	return l.a.Add(l.t.Mul(s))
}

// subpath is a range of lines.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke computes the coverage of the stroked outline of p, using Width,
// Cap, Join, MiterLimit, Dash and DashPhase.
//
// The stroke is assembled from one small polygon per segment, join, and
// cap, all with the same orientation.  Filling their union with the
// nonzero rule paints overlapping parts exactly once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.splitLines(p)
	r.edges = r.edges[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addDisc(pt, d)
		}
	}

	if r.applyDash() {
		for _, s := range r.dashes {
			r.strokeRun(r.dashLines[s.start:s.end], false, d)
		}
	} else {
		for _, s := range r.subpaths {
			r.strokeRun(r.lines[s.start:s.end], s.closed, d)
		}
	}

	r.sweep(NonZero, emit)
}

// splitLines flattens p into r.lines, grouped by subpath.
func (r *Rasterizer) splitLines(p *path.Data) {
	r.lines = r.lines[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if !open {
			return
		}
		if len(r.lines) > first {
			r.subpaths = append(r.subpaths, subpath{start: first, end: len(r.lines), closed: closed})
		} else if drawn || closed {
			r.dots = append(r.dots, start)
		}
		first = len(r.lines)
		open = false
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			if open {
				r.addLine(cur, p.Coords[k])
				drawn = true
			}
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addLine)
				drawn = true
			}
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addLine)
				drawn = true
			}
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open && cur != start {
				r.addLine(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	finish(false)
}

// addLine appends the segment a→b to r.lines, unless it is too short to
// have a direction.
func (r *Rasterizer) addLine(a, b vec.Vec2) {
	v := b.Sub(a)
	length := v.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / length)
	r.lines = append(r.lines, line{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeRun adds the stroke polygons for a connected run of lines.
func (r *Rasterizer) strokeRun(ls []line, closed bool, d float64) {
	if len(ls) == 0 {
		return
	}
	if len(ls) == 1 && ls[0].a == ls[0].b {
		// a zero-length dash keeps the direction of the underlying path
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(ls[0].a, d)
		case graphics.LineCapSquare:
			r.addCap(ls[0].a, ls[0].t.Mul(-1), d)
			r.addCap(ls[0].a, ls[0].t, d)
		}
		return
	}

	for i := range ls {
		l := &ls[i]
		r.poly = append(r.poly[:0],
			l.a.Add(l.n.Mul(d)), l.b.Add(l.n.Mul(d)),
			l.b.Sub(l.n.Mul(d)), l.a.Sub(l.n.Mul(d)))
		r.addPoly()
	}
	for i := 1; i < len(ls); i++ {
		r.addJoin(&ls[i-1], &ls[i], d)
	}
	if closed {
		r.addJoin(&ls[len(ls)-1], &ls[0], d)
	} else {
		r.addCap(ls[0].a, ls[0].t.Mul(-1), d)
		r.addCap(ls[len(ls)-1].b, ls[len(ls)-1].t, d)
	}
}

// addJoin fills the wedge on the outer side of the corner between l1 and
// l2.  The inner side is already covered by the overlapping segment
// polygons.
func (r *Rasterizer) addJoin(l1, l2 *line, d float64) {
	cos := l1.t.Dot(l2.t)
	sin := l1.t.X*l2.t.Y - l1.t.Y*l2.t.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	p := l1.b
	if cos < cuspCosineThreshold {
		r.addCap(p, l1.t, d)
		r.addCap(p, l2.t.Mul(-1), d)
		return
	}

	// A turn towards +n has its outer side at -n.
	side := 1.0
	if sin > 0 {
		side = -1
	}
	n1 := l1.n.Mul(side)
	n2 := l2.n.Mul(side)
	o1 := p.Add(n1.Mul(d))
	o2 := p.Add(n2.Mul(d))

	switch r.Join {
	case graphics.LineJoinRound:
		sweep := math.Atan2(n1.X*n2.Y-n1.Y*n2.X, n1.Dot(n2))
		r.poly = append(r.poly[:0], p)
		r.appendArc(p, d, n1, sweep)
		r.addPoly()
		return

	case graphics.LineJoinMiter:
		cosHalf := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bis := n1.Add(n2)
			if l := bis.Length(); l > zeroLengthThreshold {
				tip := p.Add(bis.Mul(d / (cosHalf * l)))
				r.poly = append(r.poly[:0], p, o1, tip, o2)
				r.addPoly()
				return
			}
		}
	}

	// bevel, also used when the miter limit is exceeded
	r.poly = append(r.poly[:0], p, o1, o2)
	r.addPoly()
}

// addCap adds the cap at the end point p of a run.  The unit vector t
// points away from the run.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}
		e := p.Add(t.Mul(d))
		r.poly = append(r.poly[:0],
			p.Add(n.Mul(d)), e.Add(n.Mul(d)),
			e.Sub(n.Mul(d)), p.Sub(n.Mul(d)))
		r.addPoly()
	}
}

// addDisc adds a full circle of radius rad around c.
func (r *Rasterizer) addDisc(c vec.Vec2, rad float64) {
	r.poly = r.poly[:0]
	r.appendArc(c, rad, vec.Vec2{X: 1}, 2*math.Pi)
	r.addPoly()
}

// appendArc appends points on the circle of radius rad around c to
// r.poly, starting in direction dir and turning by sweep radians.
func (r *Rasterizer) appendArc(c vec.Vec2, rad float64, dir vec.Vec2, sweep float64) {
	devRad := max(r.deviceLinear(vec.Vec2{X: rad}).Length(),
		r.deviceLinear(vec.Vec2{Y: rad}).Length())

	// A chord spanning angle θ deviates from the circle by rad·(1-cos(θ/2)).
	step := math.Pi / 4
	if devRad > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/devRad)
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 8)
	}

	for i := 0; i <= n; i++ {
		s, c0 := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{X: dir.X*c0 - dir.Y*s, Y: dir.X*s + dir.Y*c0}
		r.poly = append(r.poly, c.Add(v.Mul(rad)))
	}
}

// addPoly adds the edges of the closed polygon r.poly, reversing it if
// needed so that all stroke polygons wind the same way.
func (r *Rasterizer) addPoly() {
	pts := r.poly
	if len(pts) < 3 {
		return
	}
	var a2 float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a2 += p.X*q.Y - q.X*p.Y
	}
	if a2 == 0 {
		return
	}
	for i := range pts {
		j := (i + 1) % len(pts)
		if a2 > 0 {
			r.addEdge(pts[i], pts[j])
		} else {
			r.addEdge(pts[j], pts[i])
		}
	}
}
