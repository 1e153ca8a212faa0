package testcases

import (
	"image/color"

	"seehuhn.de/go/squircle"
)

var precisionCases = []TestCase{
	{
		Name:      "tiny",
		Size:      squircle.Size{Width: 1, Height: 1},
		Radii:     squircle.Uniform(0.5),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name:      "fractional",
		Size:      squircle.Size{Width: 10.3, Height: 7.7},
		Radii:     squircle.Uniform(3.2),
		Smoothing: squircle.DefaultSmoothing,
		Scale:     1.5,
		Op:        Fill{},
	},
	{
		Name:      "hairline_border",
		Size:      squircle.Size{Width: 64, Height: 32},
		Radii:     squircle.Uniform(10),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(0.25),
			Colors: squircle.UniformColors(color.Black),
		},
	},
	{
		Name:      "wide",
		Size:      squircle.Size{Width: 1000, Height: 12},
		Radii:     squircle.Uniform(6),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name:      "subpixel_shadow",
		Size:      squircle.Size{Width: 20, Height: 20},
		Radii:     squircle.Uniform(5),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetX: 0.3, OffsetY: 0.7, Blur: 0.5, Color: gray(255)},
		}},
	},
}
