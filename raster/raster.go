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

// Package raster converts outlines into anti-aliased pixel coverage.
//
// Coverage is computed analytically: every edge adds its signed area to
// per-pixel accumulators, and a left-to-right integration pass turns the
// accumulators into the fraction of each pixel covered by the shape.
// Filling supports the nonzero and even-odd rules.  Stroking supports the
// usual cap and join styles and dash patterns.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rule selects how winding numbers map to inside/outside.
type Rule int

const (
	// NonZero treats every point with a nonzero winding number as inside.
	NonZero Rule = iota

	// EvenOdd treats points with an odd winding number as inside.
	EvenOdd
)

func (rule Rule) String() string {
	switch rule {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// EmitFunc receives the coverage of one scanline segment.  The slice holds
// the coverage of pixels xMin, xMin+1, ... and is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths to pixel coverage values between 0 (outside)
// and 1 (inside).  Internal buffers grow as needed and are kept between
// calls, so a Rasterizer used for many paths settles into zero
// allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is used at the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins relative to the
	// stroke width.  Longer miters are drawn as bevels.
	MiterLimit float64

	// Dash lists alternating on and off lengths in user space.
	// Nil strokes a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which
	// every subpath starts.
	DashPhase float64

	// smallPathThreshold is the largest bounding box area, in pixels,
	// which is rasterized with full-size 2D accumulation buffers.
	smallPathThreshold int

	cover  []float32 // per-pixel winding change, reused as output row
	area   []float32 // per-pixel signed area to the right of the edges
	edges  []edge    // device-space edges of the current shape
	active []int     // indices into edges, for the scanline sweep
	rowUse []bool    // rows which received at least one edge

	// device-space bounding box of edges, valid if len(edges) > 0
	devXMin, devXMax float64
	devYMin, devYMax float64

	// stroking state, see stroke.go and dash.go
	lines     []line     // flattened segments of all subpaths
	subpaths  []subpath  // index ranges into lines
	dots      []vec.Vec2 // subpaths without any extent
	dashLines []line     // segments of all dashes
	dashes    []subpath  // index ranges into dashLines
	poly      []vec.Vec2 // scratch buffer for one stroke polygon
}

// edge is a straight, non-horizontal line in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope
}

// NewRasterizer returns a Rasterizer for the given device clip rectangle.
// Stroke parameters are initialised to the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  Buffers are kept for reuse.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	r.smallPathThreshold = smallPathThreshold
}

// Fill computes the coverage of the interior of p.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.addPathEdges(p)
	r.sweep(rule, emit)
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// addPathEdges flattens p and appends its edges in device space.
// Open subpaths are closed implicitly.
func (r *Rasterizer) addPathEdges(p *path.Data) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}
}

// addEdge transforms the user-space line p0→p1 to device space and
// records it.  Horizontal lines carry no coverage and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	if len(r.edges) == 0 {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// pixelBounds returns the integer pixel box touched by the current edges,
// intersected with the clip rectangle.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// sweep turns the collected edges into coverage.
func (r *Rasterizer) sweep(rule Rule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.sweepBuffered(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.sweepActive(xMin, xMax, yMin, yMax, rule, emit)
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.  Joins with an
	// interior angle below about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0

	// smallPathThreshold trades the memory of full 2D buffers against
	// the bookkeeping of an active edge list.
	smallPathThreshold = 65536

	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, for an edge to be kept.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment, in user space,
	// which still has a direction.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for segments treated as
	// continuing straight on.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path reversing onto itself.
	cuspCosineThreshold = -0.9999
)
