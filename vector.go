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
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendVector adds the outline p, transformed by m, to z.  This allows
// to draw squircles with golang.org/x/image/vector.
//
// z always uses the nonzero winding rule.  The outlines of this package
// never intersect themselves, so this makes no difference.
func AppendVector(z *vector.Rasterizer, p *path.Data, m matrix.Matrix) {
	tr := func(q vec.Vec2) (float32, float32) {
		return float32(m[0]*q.X + m[2]*q.Y + m[4]),
			float32(m[1]*q.X + m[3]*q.Y + m[5])
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(tr(p.Coords[k]))
			k++
		case path.CmdLineTo:
			z.LineTo(tr(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			bx, by := tr(p.Coords[k])
			cx, cy := tr(p.Coords[k+1])
			z.QuadTo(bx, by, cx, cy)
			k += 2
		case path.CmdCubeTo:
			bx, by := tr(p.Coords[k])
			cx, cy := tr(p.Coords[k+1])
			dx, dy := tr(p.Coords[k+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
