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
	"slices"
)

// applyDash cuts the flattened subpaths into dashes, stored in
// r.dashLines and r.dashes.  It returns false if no dash pattern is set,
// or if the pattern has zero total length.
func (r *Rasterizer) applyDash() bool {
	r.dashLines = r.dashLines[:0]
	r.dashes = r.dashes[:0]

	pattern := r.Dash
	n := len(pattern)
	if n == 0 {
		return false
	}
	var period float64
	for _, x := range pattern {
		period += x
	}
	if n%2 == 1 {
		period *= 2
	}
	if !(period > 0) {
		return false
	}
	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for _, sp := range r.subpaths {
		// find the pattern entry at distance phase
		idx := 0
		skip := phase
		for skip >= pattern[idx%n] && pattern[idx%n] > 0 {
			skip -= pattern[idx%n]
			idx++
		}
		rem := pattern[idx%n] - skip
		on := idx%2 == 0
		startedOn := on

		cur := len(r.dashLines) // first line of the open dash
		firstDash := -1         // index into r.dashes

		endDash := func() {
			r.dashes = append(r.dashes, subpath{start: cur, end: len(r.dashLines)})
			if firstDash < 0 {
				firstDash = len(r.dashes) - 1
			}
		}

		for i := sp.start; i < sp.end; i++ {
			l := r.lines[i]
			length := l.b.Sub(l.a).Length()
			pos := 0.0
			for {
				step := min(rem, length-pos)
				if on && step > 0 {
					seg := l
					seg.a = l.at(pos)
					seg.b = l.at(pos + step)
					r.dashLines = append(r.dashLines, seg)
				}
				pos += step
				rem -= step
				if rem > 0 {
					break
				}

				// switch between on and off at distance pos
				if on {
					if len(r.dashLines) == cur {
						p := l.at(pos)
						r.dashLines = append(r.dashLines, line{a: p, b: p, t: l.t, n: l.n})
					}
					endDash()
				}
				idx++
				rem = pattern[idx%n]
				on = idx%2 == 0
				cur = len(r.dashLines)
				if pos >= length {
					break
				}
			}
		}

		if !on || len(r.dashLines) == cur {
			continue
		}
		if sp.closed && startedOn && firstDash >= 0 {
			// the dash crossing the start point of a closed subpath
			// continues into the first dash
			first := r.dashes[firstDash]
			for j := first.start; j < first.end; j++ {
				r.dashLines = append(r.dashLines, r.dashLines[j])
			}
			r.dashes = slices.Delete(r.dashes, firstDash, firstDash+1)
		}
		r.dashes = append(r.dashes, subpath{start: cur, end: len(r.dashLines)})
	}
	return true
}
