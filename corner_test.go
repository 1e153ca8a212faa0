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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestCornerProfileValues(t *testing.T) {
	// 100x60 card with radius 12: the budget is half the shorter side
	c, err := CornerProfile(12, 0.6, 30)
	require.NoError(t, err)

	const eps = 1e-4
	assert.InDelta(t, 12, c.Radius, eps)
	assert.InDelta(t, 0.6, c.Smoothing, eps)
	assert.InDelta(t, 19.2, c.P, eps)
	assert.InDelta(t, 6.72062, c.A, eps)
	assert.InDelta(t, 3.36031, c.B, eps)
	assert.InDelta(t, 2.56694, c.C, eps)
	assert.InDelta(t, 1.30792, c.D, eps)
	assert.InDelta(t, 5.24420, c.ArcSection, eps)
	assert.InDelta(t, 36*math.Pi/180, c.ArcAngle, eps)
}

func TestCornerProfileCircle(t *testing.T) {
	c, err := CornerProfile(10, 0, 50)
	require.NoError(t, err)

	assert.InDelta(t, 10, c.P, 1e-9)
	assert.InDelta(t, math.Pi/2, c.ArcAngle, 1e-9)
	assert.InDelta(t, 0, c.B, 1e-9)
	assert.InDelta(t, 0, c.D, 1e-9)

	// the arc runs from one edge to the other
	seg := c.Curves()[1]
	assert.InDelta(t, 0, seg[2].X, 1e-9)
	assert.InDelta(t, 10, seg[2].Y, 1e-9)
	assert.Equal(t, vec.Vec2{X: -10}, c.Start())
}

func TestCornerProfileBudget(t *testing.T) {
	// not enough room for full smoothing
	c, err := CornerProfile(20, 1, 30)
	require.NoError(t, err)
	assert.InDelta(t, 30, c.P, 1e-9)
	assert.InDelta(t, 0.5, c.Smoothing, 1e-9)

	// the radius itself is limited by the budget
	c, err = CornerProfile(40, 0.6, 30)
	require.NoError(t, err)
	assert.InDelta(t, 30, c.Radius, 1e-9)
	assert.InDelta(t, 0, c.Smoothing, 1e-9)
	assert.InDelta(t, 30, c.P, 1e-9)

	c, err = CornerProfile(0, 0.6, 30)
	require.NoError(t, err)
	assert.True(t, c.IsSharp())
}

func TestCornerProfileErrors(t *testing.T) {
	for _, args := range [][3]float64{
		{-1, 0.5, 10},
		{math.NaN(), 0.5, 10},
		{1, -0.1, 10},
		{1, 1.1, 10},
		{1, math.NaN(), 10},
		{1, 0.5, math.Inf(1)},
	} {
		_, err := CornerProfile(args[0], args[1], args[2])
		assert.True(t, errors.Is(err, ErrInvalidParameter), "%v: %v", args, err)
	}
}

// TestCornerCurvesContinuous checks that the three segments join
// smoothly, and that the curve leaves the edges tangentially.
func TestCornerCurvesContinuous(t *testing.T) {
	for _, s := range []float64{0.1, 0.6, 0.9} {
		c := cornerProfile(12, s, 30)
		segs := c.Curves()
		start := c.Start()

		// tangential at both edges
		assert.InDelta(t, 0, segs[0][0].Y, 1e-9)
		assert.InDelta(t, 0, segs[2][1].X, 1e-9)

		// G1 continuity at the joins
		joins := []struct{ in, at, out vec.Vec2 }{
			{segs[0][1], segs[0][2], segs[1][0]},
			{segs[1][1], segs[1][2], segs[2][0]},
		}
		for _, j := range joins {
			d1 := j.at.Sub(j.in)
			d2 := j.out.Sub(j.at)
			cross := d1.X*d2.Y - d1.Y*d2.X
			assert.InDelta(t, 0, cross/(d1.Length()*d2.Length()), 1e-6, "smoothing %g", s)
		}

		// symmetric about the diagonal
		assert.InDelta(t, -start.X, segs[2][2].Y, 1e-9)
	}
}

// TestCornerInsideDisc checks that a smoothed corner lies within the
// quarter circle of the same radius, i.e. that smoothing only removes
// material.
func TestCornerInsideDisc(t *testing.T) {
	p, err := Outline(Size{Width: 100, Height: 60}, Uniform(12), DefaultSmoothing)
	require.NoError(t, err)

	// the top left corner circle has centre (12, 12)
	center := vec.Vec2{X: 12, Y: 12}
	for q := range sample(p, 32) {
		if q.X > 12 || q.Y > 12 {
			continue
		}
		assert.LessOrEqual(t, q.Sub(center).Length(), 12+0.01, "point %v", q)
	}
}
