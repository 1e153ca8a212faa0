package raster

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// BenchmarkFillRing fills an "O" shape of varying size.
func BenchmarkFillRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := float64(size) / 2
			o := ring(c, c, 0.45*float64(size), 0.30*float64(size), true)

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing draws the same shape using golang.org/x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := float64(size) / 2
			o := ring(c, c, 0.45*float64(size), 0.30*float64(size), true)

			z := vector.NewRasterizer(size, size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				vectorPath(z, o)
				z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// BenchmarkDottedStroke strokes a rounded rectangle with round dots, the
// most expensive border style.
func BenchmarkDottedStroke(b *testing.B) {
	r := NewRasterizer(rect.Rect{URx: 128, URy: 128})
	p := roundedRect(8, 8, 120, 120, 24)
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Width = 3
		r.Cap = graphics.LineCapRound
		r.Dash = []float64{0, 6}
		r.Stroke(p, emit)
	}
}
