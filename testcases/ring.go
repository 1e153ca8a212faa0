package testcases

import "seehuhn.de/go/squircle"

var ringCases = []TestCase{
	{
		Name:      "focus",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(12),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Ring{Width: 3, Offset: 2, Color: rgba(0, 100, 255, 255)},
	},
	{
		Name:      "dashed",
		Size:      squircle.Size{Width: 120, Height: 80},
		Radii:     squircle.Uniform(20),
		Smoothing: 1,
		Scale:     2,
		Op:        Ring{Width: 2, Offset: 4, Color: gray(255), Style: squircle.BorderDashed},
	},
	{
		Name:  "inside",
		Size:  squircle.Size{Width: 60, Height: 60},
		Radii: squircle.Uniform(30),
		Op:    Ring{Width: 4, Offset: -6, Color: rgba(200, 0, 0, 128)},
	},
	{
		Name:      "sharp_corner",
		Size:      squircle.Size{Width: 80, Height: 40},
		Radii:     corners(0, 16, 16, 16),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Ring{Width: 2, Offset: 1, Color: gray(255), Style: squircle.BorderDotted},
	},
}
