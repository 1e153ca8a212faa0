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
	"bytes"
	"errors"
	"image"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions(t *testing.T) {
	o, err := buildOptions("test", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultOptions(), o)

	o, err = buildOptions("test", []Option{WithScale(3), WithMaxPixels(10), WithFlatness(0.1)})
	require.NoError(t, err)
	assert.Equal(t, options{scale: 3, maxPixels: 10, flatness: 0.1}, o)

	for _, opt := range []Option{
		WithScale(0),
		WithScale(-2),
		WithScale(math.NaN()),
		WithScale(math.Inf(1)),
		WithFlatness(0),
		WithMaxPixels(0),
	} {
		_, err := buildOptions("test", []Option{opt})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestPixelRect(t *testing.T) {
	o := defaultOptions()
	o.scale = 2

	r, err := o.pixelRect("test", -1.2, 0.3, 10.1, 5)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(-3, 0, 21, 10), r)

	o.maxPixels = 200
	_, err = o.pixelRect("test", 0, 0, 10, 5)
	require.NoError(t, err)
	_, err = o.pixelRect("test", 0, 0, 10, 5.1)
	assert.ErrorIs(t, err, ErrResourceExhausted)

	o = defaultOptions()
	_, err = o.pixelRect("test", 0, 0, 1e12, 1)
	assert.ErrorIs(t, err, ErrResourceExhausted)
}

func TestResourceExhausted(t *testing.T) {
	_, err := Mask(Size{Width: 1e6, Height: 1e6}, Uniform(10), DefaultSmoothing)
	require.ErrorIs(t, err, ErrResourceExhausted)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "squircle.Mask", e.Op)
	assert.Equal(t, KindResourceExhausted, e.Kind)
	assert.NotErrorIs(t, err, ErrInvalidGeometry)

	_, err = RenderShadows(ShadowRequest{
		Size:    Size{Width: 10, Height: 10},
		Shadows: []BoxShadow{{Blur: 1e5, Color: black}},
	})
	assert.ErrorIs(t, err, ErrResourceExhausted)
}

func TestErrorStrings(t *testing.T) {
	err := newError("squircle.Outline", KindInvalidGeometry, "size %s is not positive", Size{Width: 0, Height: 1})
	assert.Equal(t, "squircle.Outline [invalid-geometry]: size 0x1 is not positive", err.Error())
	assert.Equal(t, "resource-exhausted", KindResourceExhausted.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
	assert.Equal(t, " [invalid-parameter]", ErrInvalidParameter.Error())

	assert.False(t, errors.Is(err, &Error{Kind: KindInvalidGeometry, Op: "other"}))
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	// oversized radii are scaled down
	_, err := Outline(Size{Width: 10, Height: 10}, Uniform(20), DefaultSmoothing)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scaled corner radii")
	assert.Contains(t, buf.String(), "factor=0.25")

	buf.Reset()
	_, err = RenderShadows(ShadowRequest{
		Size:    Size{Width: 10, Height: 10},
		Shadows: []BoxShadow{{Blur: 2, Color: black}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rendering shadows")
	assert.Contains(t, buf.String(), "rendering layer")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
