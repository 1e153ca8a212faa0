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
	"image"
	"math"
	"sync"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	for _, sigma := range []float64{0.3, 1, 2.5, 10} {
		k := gaussianKernel(sigma)
		if len(k)%2 != 1 {
			t.Fatalf("sigma %g: even kernel length %d", sigma, len(k))
		}
		half := len(k) / 2
		if want := int(math.Ceil(3 * sigma)); half != want {
			t.Errorf("sigma %g: half-width %d, want %d", sigma, half, want)
		}

		var sum float64
		for i, v := range k {
			sum += float64(v)
			if v != k[len(k)-1-i] {
				t.Errorf("sigma %g: kernel not symmetric at %d", sigma, i)
			}
			if i > 0 && i <= half && v < k[i-1] {
				t.Errorf("sigma %g: kernel not increasing at %d", sigma, i)
			}
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("sigma %g: kernel sum %g", sigma, sum)
		}
	}

	if k := gaussianKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("sigma 0: got %v", k)
	}
}

func TestBlurMargin(t *testing.T) {
	cases := []struct {
		sigma float64
		want  int
	}{
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{0.001, 0},
		{1, 3},
		{2.5, 8},
		{4.004, 12},
	}
	for _, c := range cases {
		if got := BlurMargin(c.sigma); got != c.want {
			t.Errorf("BlurMargin(%g) = %d, want %d", c.sigma, got, c.want)
		}
	}
}

// TestBlurPreservesMass checks that blurring a small square, with enough
// margin, keeps the total coverage.
func TestBlurPreservesMass(t *testing.T) {
	const sigma = 2
	m := NewMask(image.Rect(-20, -20, 30, 30))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m.Pix[(y+20)*m.Stride+x+20] = 1
		}
	}
	m.Blur(sigma)

	var sum float64
	for _, v := range m.Pix {
		sum += float64(v)
		if v < 0 || v > 1 {
			t.Fatalf("value %g out of range", v)
		}
	}
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("total coverage %g, want 100", sum)
	}

	// the centre stays almost fully covered, the edge drops to one half
	if v := m.Value(5, 5); v < 0.9 {
		t.Errorf("centre value %g", v)
	}
	if v := m.Value(-1, 5); v < 0.3 || v > 0.6 {
		t.Errorf("edge value %g", v)
	}
	if v := m.Value(-15, 5); v != 0 {
		t.Errorf("value beyond 3 sigma is %g", v)
	}
}

func TestBlurZeroSigma(t *testing.T) {
	m := NewMask(image.Rect(0, 0, 4, 4))
	for i := range m.Pix {
		m.Pix[i] = float32(i) / 16
	}
	orig := append([]float32(nil), m.Pix...)

	for _, sigma := range []float64{0, 0.001, -1, math.Inf(1)} {
		m.Blur(sigma)
		for i, v := range m.Pix {
			if v != orig[i] {
				t.Fatalf("sigma %g changed pixel %d from %g to %g", sigma, i, orig[i], v)
			}
		}
	}
}

func TestKernelCacheConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				sigma := 0.5 + float64((i*7+j)%90)/10
				k := kernels.get(sigma)
				if len(k) != 2*int(math.Ceil(3*quantize(sigma)))+1 {
					t.Errorf("sigma %g: kernel length %d", sigma, len(k))
					return
				}
			}
		}()
	}
	wg.Wait()

	kernels.mu.RLock()
	n := len(kernels.cache)
	kernels.mu.RUnlock()
	if n > kernels.max {
		t.Errorf("cache holds %d kernels, limit is %d", n, kernels.max)
	}
}

func TestCrop(t *testing.T) {
	m := NewMask(image.Rect(0, 0, 4, 4))
	for i := range m.Pix {
		m.Pix[i] = 1
	}
	c := m.Crop(image.Rect(2, 2, 6, 6))
	if c.Rect != image.Rect(2, 2, 6, 6) {
		t.Fatalf("bounds %v", c.Rect)
	}
	if v := c.Value(3, 3); v != 1 {
		t.Errorf("inside: %g", v)
	}
	if v := c.Value(4, 4); v != 0 {
		t.Errorf("outside the source: %g", v)
	}
	c.Pix[0] = 0.5
	if m.Value(2, 2) != 1 {
		t.Error("crop shares pixels with the source")
	}
}
