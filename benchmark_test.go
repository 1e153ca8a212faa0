package squircle

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
)

// BenchmarkMask benchmarks the coverage mask of a squircle of varying size.
func BenchmarkMask(b *testing.B) {
	for _, size := range []float64{20, 200, 2000} {
		b.Run(fmt.Sprintf("%gx%g", size, size), func(b *testing.B) {
			sz := Size{Width: size, Height: size}
			radii := Uniform(size / 5)

			b.ReportAllocs()
			for b.Loop() {
				if _, err := Mask(sz, radii, DefaultSmoothing); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorMask draws the same outline using golang.org/x/image/vector.
func BenchmarkVectorMask(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			p, err := Outline(Size{Width: s, Height: s}, Uniform(s/5), DefaultSmoothing)
			if err != nil {
				b.Fatal(err)
			}
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			z := vector.NewRasterizer(size, size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				AppendVector(z, p, matrix.Identity)
				z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

func BenchmarkRenderBorder(b *testing.B) {
	styles := []BorderStyle{BorderSolid, BorderDashed, BorderDotted}
	for _, style := range styles {
		b.Run(style.String(), func(b *testing.B) {
			req := BorderRequest{
				Size:      Size{Width: 320, Height: 200},
				Radii:     Uniform(24),
				Widths:    UniformInsets(3),
				Colors:    UniformColors(color.Black),
				Style:     style,
				Smoothing: DefaultSmoothing,
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := RenderBorder(req, WithScale(2)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRenderShadows(b *testing.B) {
	for _, blur := range []float64{0, 4, 16, 64} {
		b.Run(fmt.Sprintf("blur%g", blur), func(b *testing.B) {
			req := ShadowRequest{
				Size:      Size{Width: 320, Height: 200},
				Radii:     Uniform(24),
				Smoothing: DefaultSmoothing,
				Shadows: []BoxShadow{
					{OffsetY: blur / 4, Blur: blur, Color: color.NRGBA{A: 64}},
				},
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := RenderShadows(req, WithScale(2)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
