package testcases

import "seehuhn.de/go/squircle"

var outlineCases = []TestCase{
	{
		Name:      "circle",
		Size:      squircle.Size{Width: 50, Height: 50},
		Radii:     squircle.Uniform(25),
		Smoothing: 0,
		Op:        Fill{},
	},
	{
		Name:      "rounded_rect",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(12),
		Smoothing: 0,
		Op:        Fill{},
	},
	{
		Name:      "squircle_default",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(12),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name:      "squircle_max",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(20),
		Smoothing: 1,
		Op:        Fill{},
	},
	{
		Name:  "sharp",
		Size:  squircle.Size{Width: 40.5, Height: 30.25},
		Radii: squircle.Uniform(0),
		Op:    Fill{},
	},
	{
		Name:      "asymmetric",
		Size:      squircle.Size{Width: 120, Height: 80},
		Radii:     corners(0, 20, 5, 40),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name: "elliptical",
		Size: squircle.Size{Width: 120, Height: 60},
		Radii: squircle.CornerRadii{
			TopLeft:     squircle.Radius{X: 40, Y: 20},
			TopRight:    squircle.Radius{X: 40, Y: 20},
			BottomRight: squircle.Radius{X: 20, Y: 10},
			BottomLeft:  squircle.Radius{X: 20, Y: 10},
		},
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name:      "oversized_radii",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     corners(200, 100, 200, 100),
		Smoothing: squircle.DefaultSmoothing,
		Op:        Fill{},
	},
	{
		Name:      "hidpi",
		Size:      squircle.Size{Width: 40, Height: 24},
		Radii:     squircle.Uniform(8),
		Smoothing: squircle.DefaultSmoothing,
		Scale:     3,
		Op:        Fill{},
	},
}
