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

// Package testcases holds named rendering scenarios.  They are shared by
// the tests, the JSON exporter and the PDF generator.
package testcases

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/squircle"
)

// TestCase defines a single rendering scenario.
type TestCase struct {
	Name      string // lowercase a-z, 0-9 and _ only
	Size      squircle.Size
	Radii     squircle.CornerRadii
	Smoothing float64
	Scale     float64 // pixels per point, zero means 1
	Op        Operation
}

// Operation is what is rendered for a test case.
type Operation interface {
	isOperation()
}

// Fill renders the coverage of the shape.
type Fill struct{}

func (Fill) isOperation() {}

// Border renders a border and background.
type Border struct {
	Widths     squircle.EdgeInsets
	Colors     squircle.BorderColors
	Style      squircle.BorderStyle
	Background color.Color
	DrawToEdge bool
}

func (Border) isOperation() {}

// Shadows renders a list of box shadows.
type Shadows struct {
	List []squircle.BoxShadow
}

func (Shadows) isOperation() {}

// Ring renders a ring around the shape.
type Ring struct {
	Width  float64
	Offset float64
	Color  color.Color
	Style  squircle.BorderStyle
}

func (Ring) isOperation() {}

// PixelScale returns the scale used to render tc.
func (tc TestCase) PixelScale() float64 {
	if tc.Scale == 0 {
		return 1
	}
	return tc.Scale
}

// BorderRequest returns the request for a Border test case.
func (tc TestCase) BorderRequest(op Border) squircle.BorderRequest {
	return squircle.BorderRequest{
		Size:       tc.Size,
		Radii:      tc.Radii,
		Widths:     op.Widths,
		Colors:     op.Colors,
		Style:      op.Style,
		Smoothing:  tc.Smoothing,
		Background: op.Background,
		DrawToEdge: op.DrawToEdge,
	}
}

// ShadowRequest returns the request for a Shadows test case.
func (tc TestCase) ShadowRequest(op Shadows) squircle.ShadowRequest {
	return squircle.ShadowRequest{
		Size:      tc.Size,
		Radii:     tc.Radii,
		Smoothing: tc.Smoothing,
		Shadows:   op.List,
	}
}

// RingRequest returns the request for a Ring test case.
func (tc TestCase) RingRequest(op Ring) squircle.RingRequest {
	return squircle.RingRequest{
		Size:      tc.Size,
		Radii:     tc.Radii,
		Smoothing: tc.Smoothing,
		Width:     op.Width,
		Offset:    op.Offset,
		Color:     op.Color,
		Style:     op.Style,
	}
}

// Render renders the test case.
func (tc TestCase) Render() (image.Image, error) {
	scale := squircle.WithScale(tc.PixelScale())
	switch op := tc.Op.(type) {
	case Fill:
		return squircle.Mask(tc.Size, tc.Radii, tc.Smoothing, scale)
	case Border:
		res, err := squircle.RenderBorder(tc.BorderRequest(op), scale)
		if err != nil {
			return nil, err
		}
		return res.Image, nil
	case Shadows:
		res, err := squircle.RenderShadows(tc.ShadowRequest(op), scale)
		if err != nil {
			return nil, err
		}
		return res.Image, nil
	case Ring:
		res, err := squircle.RenderRing(tc.RingRequest(op), scale)
		if err != nil {
			return nil, err
		}
		return res.Image, nil
	default:
		return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}
}

func gray(a uint8) color.Color {
	return color.NRGBA{A: a}
}

func rgba(r, g, b, a uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func corners(tl, tr, br, bl float64) squircle.CornerRadii {
	return squircle.CornerRadii{
		TopLeft:     squircle.Circular(tl),
		TopRight:    squircle.Circular(tr),
		BottomRight: squircle.Circular(br),
		BottomLeft:  squircle.Circular(bl),
	}
}
