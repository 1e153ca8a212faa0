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
	"sync"
)

// BlurMargin returns the distance, in pixels, by which a Gaussian blur of
// standard deviation sigma spreads a shape.
func BlurMargin(sigma float64) int {
	if !(sigma > 0) {
		return 0
	}
	return int(math.Ceil(3 * quantize(sigma)))
}

// Blur convolves m with a Gaussian of standard deviation sigma, given in
// pixels.  Pixels outside m are taken to be 0, so m should have a margin of
// at least BlurMargin(sigma) around the shape.
func (m *Mask) Blur(sigma float64) {
	k := kernels.get(sigma)
	if len(k) < 2 {
		return
	}
	half := len(k) / 2
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	tmp := make([]float32, w*h)

	for y := range h {
		src := m.Pix[y*m.Stride : y*m.Stride+w]
		dst := tmp[y*w : (y+1)*w]
		for x := range dst {
			lo := max(x-half, 0)
			hi := min(x+half, w-1)
			var sum float32
			for i := lo; i <= hi; i++ {
				sum += src[i] * k[i-x+half]
			}
			dst[x] = sum
		}
	}

	for y := range h {
		lo := max(y-half, 0)
		hi := min(y+half, h-1)
		dst := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range dst {
			var sum float32
			for j := lo; j <= hi; j++ {
				sum += tmp[j*w+x] * k[j-y+half]
			}
			dst[x] = min(sum, 1)
		}
	}
}

// quantize rounds sigma to a multiple of 0.01, so that nearby values share
// a cached kernel.
func quantize(sigma float64) float64 {
	return math.Round(sigma*100) / 100
}

// gaussianKernel returns the normalized 1D Gaussian kernel for sigma, with
// half-width ceil(3σ).
func gaussianKernel(sigma float64) []float32 {
	if !(sigma > 0) {
		return []float32{1}
	}
	half := int(math.Ceil(3 * sigma))
	k := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	vals := make([]float64, len(k))
	for i := range vals {
		x := float64(i - half)
		vals[i] = math.Exp(-x * x / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		k[i] = float32(v / sum)
	}
	return k
}

// kernelCache holds Gaussian kernels by quantized sigma.  Kernels are
// never modified after creation.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
	max   int
}

var kernels = &kernelCache{
	cache: make(map[int][]float32),
	max:   64,
}

func (c *kernelCache) get(sigma float64) []float32 {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return []float32{1}
	}
	key := int(math.Round(sigma * 100))
	if key == 0 {
		return []float32{1}
	}

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = gaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.max {
		clear(c.cache)
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k
}
