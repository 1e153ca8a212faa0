package testcases

import (
	"image/color"

	"seehuhn.de/go/squircle"
)

var borderCases = []TestCase{
	{
		Name:  "circle_ring",
		Size:  squircle.Size{Width: 50, Height: 50},
		Radii: squircle.Uniform(25),
		Op: Border{
			Widths:     squircle.UniformInsets(2),
			Colors:     squircle.UniformColors(color.Black),
			DrawToEdge: true,
		},
	},
	{
		Name:      "solid",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(12),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(3),
			Colors: squircle.UniformColors(rgba(0, 0, 200, 255)),
		},
	},
	{
		Name:      "four_colors",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(16),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(6),
			Colors: squircle.BorderColors{
				Top:    rgba(255, 0, 0, 255),
				Left:   rgba(0, 160, 0, 255),
				Bottom: rgba(0, 0, 255, 255),
				Right:  rgba(255, 200, 0, 255),
			},
		},
	},
	{
		Name:      "uneven_widths",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(20),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.EdgeInsets{Top: 2, Left: 12, Bottom: 6, Right: 0},
			Colors: squircle.BorderColors{
				Top:    gray(255),
				Left:   rgba(200, 0, 0, 255),
				Bottom: gray(128),
			},
			Background: rgba(255, 255, 240, 255),
			DrawToEdge: true,
		},
	},
	{
		Name:      "dashed",
		Size:      squircle.Size{Width: 120, Height: 80},
		Radii:     squircle.Uniform(16),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(3),
			Colors: squircle.UniformColors(color.Black),
			Style:  squircle.BorderDashed,
		},
	},
	{
		Name:      "dotted",
		Size:      squircle.Size{Width: 120, Height: 80},
		Radii:     squircle.Uniform(16),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(4),
			Colors: squircle.UniformColors(color.Black),
			Style:  squircle.BorderDotted,
		},
	},
	{
		Name:      "dashed_uneven",
		Size:      squircle.Size{Width: 120, Height: 80},
		Radii:     squircle.Uniform(16),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.EdgeInsets{Top: 2, Left: 4, Bottom: 2, Right: 4},
			Colors: squircle.UniformColors(color.Black),
			Style:  squircle.BorderDashed,
		},
	},
	{
		Name:      "background_inset",
		Size:      squircle.Size{Width: 80, Height: 80},
		Radii:     squircle.Uniform(24),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths:     squircle.UniformInsets(4),
			Colors:     squircle.UniformColors(rgba(0, 0, 0, 128)),
			Background: rgba(0, 120, 255, 255),
		},
	},
	{
		Name:      "filled_by_border",
		Size:      squircle.Size{Width: 30, Height: 20},
		Radii:     squircle.Uniform(6),
		Smoothing: squircle.DefaultSmoothing,
		Op: Border{
			Widths: squircle.UniformInsets(10),
			Colors: squircle.UniformColors(color.Black),
		},
	},
}
