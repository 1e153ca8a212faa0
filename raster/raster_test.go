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
	"fmt"
	"image"
	"math"
	"sort"
	"strings"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// shape is a filled test path.
type shape struct {
	name string
	path *path.Data
	size int
	rule Rule
}

// polygons contain only straight edges, so that the output does not
// depend on how curves are flattened.  They are rendered both by
// Rasterizer and by x/image/vector.
var polygons = []shape{
	{"rectangle", rectangle(10.5, 10.25, 54, 40.75), 64, NonZero},
	{"triangle", triangle(10, 50, 32, 10, 54, 50), 64, NonZero},
	{"polygon", polygon(32, 32, 25, 48, false), 64, NonZero},
	{"polygon_ccw", polygon(32, 32, 25, 48, true), 64, NonZero},
	{"polygon_ring", polygonRing(100, 100, 90, 50), 200, EvenOdd},
	{"large_polygon", polygon(200, 200, 190, 96, false), 400, NonZero},
}

// curved shapes are only compared against each other.
var curved = []shape{
	{"circle", circle(32, 32, 25, false), 64, NonZero},
	{"ring", ring(100, 100, 90, 50, true), 200, EvenOdd},
	{"large_circle", circle(200, 200, 190, false), 400, NonZero},
	{"rounded_rect", roundedRect(8, 8, 120, 80, 20), 128, NonZero},
}

func TestAgainstVector(t *testing.T) {
	// Approach A (2D buffers) is forced by a huge threshold,
	// approach B (active edge list) by a zero threshold.
	approaches := []struct {
		name      string
		threshold int
	}{
		{"A", 1 << 30},
		{"B", 0},
	}

	for _, s := range polygons {
		ref := renderVector(s.path, s.size)
		for _, approach := range approaches {
			name := s.name + "_" + approach.name
			t.Run(name, func(t *testing.T) {
				r := NewRasterizer(rect.Rect{URx: float64(s.size), URy: float64(s.size)})
				r.smallPathThreshold = approach.threshold
				got := make([]byte, s.size*s.size)
				r.Fill(s.path, s.rule, grayEmit(got, s.size))
				if err := compareImages(ref, got, s.size, s.size); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func TestApproachesAgree(t *testing.T) {
	for _, s := range append(polygons[:len(polygons):len(polygons)], curved...) {
		t.Run(s.name, func(t *testing.T) {
			clip := rect.Rect{URx: float64(s.size), URy: float64(s.size)}
			a := NewMask(image.Rect(0, 0, s.size, s.size))
			b := NewMask(a.Rect)

			r := NewRasterizer(clip)
			r.smallPathThreshold = 1 << 30
			r.Fill(s.path, s.rule, a.Store())
			r.smallPathThreshold = 0
			r.Fill(s.path, s.rule, b.Store())

			for i := range a.Pix {
				if d := math.Abs(float64(a.Pix[i] - b.Pix[i])); d > 1e-5 {
					t.Fatalf("pixel %d: %g vs %g", i, a.Pix[i], b.Pix[i])
				}
			}
		})
	}
}

// TestTriangleCoverage checks exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel X is covered by (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.FillNonZero(tri, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, coverage[x])
		}
	}
}

func TestCircleArea(t *testing.T) {
	for _, rad := range []float64{3.5, 10, 47.25} {
		t.Run(fmt.Sprint(rad), func(t *testing.T) {
			size := int(2*rad) + 4
			c := float64(size) / 2
			r := NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
			r.Flatness = 0.01
			var got float64
			r.FillNonZero(circle(c, c, rad, false), func(y, xMin int, cov []float32) {
				for _, v := range cov {
					got += float64(v)
				}
			})
			want := math.Pi * rad * rad
			if math.Abs(got-want)/want > 1e-2 {
				t.Errorf("area %.3f, want %.3f", got, want)
			}
		})
	}
}

func TestEvenOddHole(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 200, URy: 200})
	m := NewMask(image.Rect(0, 0, 200, 200))
	r.FillEvenOdd(ring(100, 100, 90, 50, false), m.Store())
	if v := m.Value(100, 100); v > 1e-4 {
		t.Errorf("center of ring has coverage %g", v)
	}
	if v := m.Value(100, 30); v < 1-1e-4 {
		t.Errorf("inside of ring has coverage %g", v)
	}

	// with the nonzero rule, two equally oriented circles fill the hole
	r.FillNonZero(ring(100, 100, 90, 50, false), m.Store())
	if v := m.Value(100, 100); v < 1-1e-4 {
		t.Errorf("nonzero: center has coverage %g", v)
	}
}

func TestClip(t *testing.T) {
	r := NewRasterizer(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20})
	r.FillNonZero(rectangle(0, 0, 30, 30), func(y, xMin int, cov []float32) {
		if y < 10 || y >= 20 || xMin < 10 || xMin+len(cov) > 20 {
			t.Errorf("row %d [%d,%d) outside clip", y, xMin, xMin+len(cov))
		}
	})
}

func TestCTMScale(t *testing.T) {
	small := coverageSum(rectangle(1, 1, 11, 6), 40, NonZero)

	r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
	r.CTM = matrix.Scale(3, 3)
	var big float64
	r.FillNonZero(rectangle(1, 1, 11, 6), func(y, xMin int, cov []float32) {
		for _, c := range cov {
			big += float64(c)
		}
	})
	if math.Abs(big-9*small) > 1e-3 {
		t.Errorf("scaled area %g, want %g", big, 9*small)
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.FillNonZero(&path.Data{}, func(y, xMin int, cov []float32) {
		t.Error("unexpected output for empty path")
	})
	flat := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 5}).LineTo(vec.Vec2{X: 9, Y: 5}).Close()
	r.FillNonZero(flat, func(y, xMin int, cov []float32) {
		t.Error("unexpected output for horizontal path")
	})
}

// TestEdgesBeyondClip checks shapes whose edges reach far outside the
// clip rectangle.  The cost must not depend on the off-screen length.
func TestEdgesBeyondClip(t *testing.T) {
	const far = 1e12
	shapes := []struct {
		name string
		path *path.Data
	}{
		{"left", triangle(-far, 0, 10, 0, 10, 10)},
		{"right", triangle(0, 0, far, 10, 0, 10)},
	}
	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
			var n int
			r.FillNonZero(s.path, func(y, xMin int, cov []float32) {
				for _, c := range cov {
					n++
					if math.Abs(float64(c)-1) > 1e-4 {
						t.Errorf("row %d: coverage %g, want 1", y, c)
						return
					}
				}
			})
			if n != 100 {
				t.Errorf("%d pixels covered, want 100", n)
			}
		})
	}
}

// TestEdgeEnteringClip checks the columns of an edge which crosses the
// left clip boundary inside a scanline.  Column x is covered by
// (x+20.5)/3 of ten pixels.
func TestEdgeEnteringClip(t *testing.T) {
	tri := triangle(-20, 0, 10, 0, 10, 10)
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	var cols [10]float64
	r.FillNonZero(tri, func(y, xMin int, cov []float32) {
		for i, c := range cov {
			cols[xMin+i] += float64(c)
		}
	})
	for x, got := range cols {
		want := (float64(x) + 20.5) / 3
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("column %d: coverage %g, want %g", x, got, want)
		}
	}
}

// renderVector rasterizes p with golang.org/x/image/vector.
func renderVector(p *path.Data, size int) []byte {
	z := vector.NewRasterizer(size, size)
	vectorPath(z, p)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}

func vectorPath(z *vector.Rasterizer, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdLineTo:
			z.LineTo(float32(p.Coords[k].X), float32(p.Coords[k].Y))
			k++
		case path.CmdQuadTo:
			z.QuadTo(float32(p.Coords[k].X), float32(p.Coords[k].Y),
				float32(p.Coords[k+1].X), float32(p.Coords[k+1].Y))
			k += 2
		case path.CmdCubeTo:
			z.CubeTo(float32(p.Coords[k].X), float32(p.Coords[k].Y),
				float32(p.Coords[k+1].X), float32(p.Coords[k+1].Y),
				float32(p.Coords[k+2].X), float32(p.Coords[k+2].Y))
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

func grayEmit(buf []byte, stride int) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*255+0.5))))
		}
	}
}

func coverageSum(p *path.Data, size int, rule Rule) float64 {
	r := NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
	var sum float64
	r.Fill(p, rule, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			sum += float64(c)
		}
	})
	return sum
}

// compareImages accepts small anti-aliasing differences between two
// coverage images, but no systematic deviations.
func compareImages(expected, actual []byte, w, h int) error {
	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p90 := diffs[int(math.Round(0.90*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]
	worst := diffs[total-1]

	var failures []string
	if p90 > 1 {
		failures = append(failures, fmt.Sprintf("90th percentile diff is %d (want ≤1)", p90))
	}
	if p99 >= 16 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <16)", p99))
	}
	if worst >= 64 {
		failures = append(failures, fmt.Sprintf("max diff is %d (want <64)", worst))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64, ccw bool) *path.Data {
	p := &path.Data{}
	appendCircle(p, cx, cy, r, ccw)
	return p
}

func appendCircle(p *path.Data, cx, cy, r float64, ccw bool) {
	const kappa = 0.5522847498
	k := kappa * r
	s := 1.0
	if ccw {
		s = -1
	}
	p.MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+s*k), pt(cx+k, cy+s*r), pt(cx, cy+s*r)).
		CubeTo(pt(cx-k, cy+s*r), pt(cx-r, cy+s*k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-s*k), pt(cx-k, cy-s*r), pt(cx, cy-s*r)).
		CubeTo(pt(cx+k, cy-s*r), pt(cx+r, cy-s*k), pt(cx+r, cy)).
		Close()
}

// ring builds two concentric circles.  If reverse is set, the inner
// circle has the opposite orientation.
func ring(cx, cy, outer, inner float64, reverse bool) *path.Data {
	p := &path.Data{}
	appendCircle(p, cx, cy, outer, false)
	appendCircle(p, cx, cy, inner, reverse)
	return p
}

// polygon builds a regular n-gon with circumradius r.
func polygon(cx, cy, r float64, n int, ccw bool) *path.Data {
	p := &path.Data{}
	appendPolygon(p, cx, cy, r, n, ccw)
	return p
}

func appendPolygon(p *path.Data, cx, cy, r float64, n int, ccw bool) {
	s := 1.0
	if ccw {
		s = -1
	}
	p.MoveTo(pt(cx+r, cy))
	for i := 1; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		p.LineTo(pt(cx+r*math.Cos(phi), cy+s*r*math.Sin(phi)))
	}
	p.Close()
}

// polygonRing has an inner polygon of opposite orientation, so that
// both fill rules leave a hole.
func polygonRing(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	appendPolygon(p, cx, cy, outer, 64, false)
	appendPolygon(p, cx, cy, inner, 64, true)
	return p
}

func roundedRect(x0, y0, x1, y1, rad float64) *path.Data {
	const kappa = 0.5522847498
	k := kappa * rad
	return (&path.Data{}).
		MoveTo(pt(x0+rad, y0)).
		LineTo(pt(x1-rad, y0)).
		CubeTo(pt(x1-rad+k, y0), pt(x1, y0+rad-k), pt(x1, y0+rad)).
		LineTo(pt(x1, y1-rad)).
		CubeTo(pt(x1, y1-rad+k), pt(x1-rad+k, y1), pt(x1-rad, y1)).
		LineTo(pt(x0+rad, y1)).
		CubeTo(pt(x0+rad-k, y1), pt(x0, y1-rad+k), pt(x0, y1-rad)).
		LineTo(pt(x0, y0+rad)).
		CubeTo(pt(x0, y0+rad-k), pt(x0+rad-k, y0), pt(x0+rad, y0)).
		Close()
}
