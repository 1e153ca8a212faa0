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
	"cmp"
	"math"
	"slices"
)

// Coverage accumulation.
//
// Each pixel of a scanline has two accumulators.  cover[i] is the signed
// vertical extent of all edge pieces inside column i, where edges going
// down count positive.  area[i] is the same quantity weighted by the
// fraction of the pixel to the right of the edge piece.  Integrating from
// left to right,
//
//	raw[i] = sum(cover[0:i]) + area[i]
//
// is the signed winding-weighted area of pixel i.  Edge pieces left of
// the buffer are folded into pixel 0 so that the running sum starts with
// the correct winding number.

// accumulate adds the part of e inside scanline y to the accumulators.
// The buffers cover the pixel columns x0, ..., x1-1.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	first := int(math.Floor(min(xTop, xBot)))
	last := int(math.Floor(max(xTop, xBot)))

	if last < x0 {
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	}
	if first >= x1 {
		return
	}

	steep := first == last
	if first < x0 {
		// the part of the edge left of the buffer, in one step
		yc := max(min(e.y0+(float64(x0)-e.x0)/e.dxdy, bot), top)
		l := bot - yc
		if xTop < xBot {
			l = yc - top
		}
		c := sign * float32(l)
		cover[0] += c
		area[0] += c
		first = x0
	}
	last = min(last, x1-1)

	for pix := first; pix <= last; pix++ {
		a, b := top, bot
		if !steep {
			// y range where the edge is inside column pix
			ya := e.y0 + (float64(pix)-e.x0)/e.dxdy
			yb := e.y0 + (float64(pix+1)-e.x0)/e.dxdy
			a = max(min(ya, yb), top)
			b = min(max(ya, yb), bot)
			if b <= a {
				continue
			}
		}

		c := sign * float32(b-a)
		xMid := e.x0 + e.dxdy*((a+b)/2-e.y0)
		i := pix - x0
		cover[i] += c
		area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrate turns the accumulators of one scanline into coverage values,
// stored in cover.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			// fold the winding area into a triangle wave of period 2
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// nonZeroSpan returns the part of row between the first and the last
// nonzero entry, together with its offset.
func nonZeroSpan(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// sweepBuffered accumulates all edges into a full 2D buffer before
// integrating the rows.  This is fastest for small shapes.
func (r *Rasterizer) sweepBuffered(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	w, h := xMax-xMin, yMax-yMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowUse = slices.Grow(r.rowUse[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUse)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		y1 := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			k := row * w
			accumulate(e, y, r.cover[k:k+w], r.area[k:k+w], xMin, xMax)
			r.rowUse[row] = true
		}
	}

	for row, used := range r.rowUse {
		if !used {
			continue
		}
		k := row * w
		line := r.cover[k : k+w]
		integrate(line, r.area[k:k+w], rule)
		if span, off := nonZeroSpan(line); span != nil {
			emit(yMin+row, xMin+off, span)
		}
	}
}

// sweepActive processes one scanline at a time, keeping only the edges
// which intersect the current scanline.  Memory use is proportional to
// the width of the shape.
func (r *Rasterizer) sweepActive(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				// finished: swap-remove
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if span, off := nonZeroSpan(r.cover); span != nil {
			emit(y, xMin+off, span)
		}
	}
}
