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
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Stretch returns a copy of the border image, resized to w×h pixels.
// The margins given by CapInsets keep their size: the corners are copied
// unchanged, the edges are stretched along their length and the middle
// is stretched in both directions.
//
// If the margins leave no middle part, the middle row or column of the
// image is used instead.
func (b *BorderImage) Stretch(w, h int) (*image.RGBA, error) {
	const op = "squircle.BorderImage.Stretch"
	src := b.Image.Bounds()
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return nil, newError(op, KindInvalidGeometry, "empty border image")
	}

	l, r := splitMargins(int(b.CapInsets.Left), int(b.CapInsets.Right), sw)
	t, bt := splitMargins(int(b.CapInsets.Top), int(b.CapInsets.Bottom), sh)
	if w < l+r || h < t+bt {
		return nil, newError(op, KindInvalidGeometry,
			"size %dx%d is smaller than the cap insets", w, h)
	}
	if w == sw && h == sh {
		return clone.AsRGBA(b.Image), nil
	}

	xs := [4]int{0, l, sw - r, sw}
	xd := [4]int{0, l, w - r, w}
	ys := [4]int{0, t, sh - bt, sh}
	yd := [4]int{0, t, h - bt, h}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for j := range 3 {
		for i := range 3 {
			sr := image.Rect(xs[i], ys[j], xs[i+1], ys[j+1]).Add(src.Min)
			dr := image.Rect(xd[i], yd[j], xd[i+1], yd[j+1])
			if sr.Empty() || dr.Empty() {
				continue
			}
			piece := transform.Crop(b.Image, sr)
			if piece.Bounds().Size() != dr.Size() {
				piece = transform.Resize(piece, dr.Dx(), dr.Dy(), transform.Linear)
			}
			draw.Draw(dst, dr, piece, piece.Bounds().Min, draw.Src)
		}
	}
	return dst, nil
}

// splitMargins shrinks the margins a and b, if needed, so that at least
// one pixel of size remains between them.
func splitMargins(a, b, size int) (int, int) {
	a, b = max(a, 0), max(b, 0)
	if a+b < size {
		return a, b
	}
	a = (size - 1) / 2
	return a, size - 1 - a
}
