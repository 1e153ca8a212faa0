package testcases

import "seehuhn.de/go/squircle"

var shadowCases = []TestCase{
	{
		Name:      "stacked",
		Size:      squircle.Size{Width: 100, Height: 60},
		Radii:     squircle.Uniform(12),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetY: 4, Blur: 8, Color: gray(128)},
			{OffsetY: 1, Blur: 2, Color: gray(64)},
		}},
	},
	{
		Name:      "hard",
		Size:      squircle.Size{Width: 60, Height: 40},
		Radii:     squircle.Uniform(10),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetX: 6, OffsetY: 6, Color: gray(255)},
		}},
	},
	{
		Name:      "spread",
		Size:      squircle.Size{Width: 60, Height: 40},
		Radii:     squircle.Uniform(10),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{Blur: 6, Spread: 8, Color: rgba(0, 80, 255, 160)},
		}},
	},
	{
		Name:      "negative_spread",
		Size:      squircle.Size{Width: 60, Height: 40},
		Radii:     squircle.Uniform(10),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetY: 12, Blur: 10, Spread: -6, Color: gray(200)},
		}},
	},
	{
		Name:      "inset",
		Size:      squircle.Size{Width: 80, Height: 50},
		Radii:     squircle.Uniform(14),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetX: 3, OffsetY: 3, Blur: 6, Color: gray(180), Inset: true},
		}},
	},
	{
		Name:      "inset_full",
		Size:      squircle.Size{Width: 40, Height: 30},
		Radii:     squircle.Uniform(8),
		Smoothing: squircle.DefaultSmoothing,
		Op: Shadows{List: []squircle.BoxShadow{
			{Spread: 20, Color: rgba(255, 0, 0, 255), Inset: true},
		}},
	},
	{
		Name:      "mixed",
		Size:      squircle.Size{Width: 80, Height: 50},
		Radii:     corners(4, 20, 4, 20),
		Smoothing: squircle.DefaultSmoothing,
		Scale:     2,
		Op: Shadows{List: []squircle.BoxShadow{
			{OffsetX: -4, OffsetY: 8, Blur: 12, Color: rgba(0, 0, 0, 100)},
			{Blur: 3, Spread: 1, Color: rgba(255, 0, 128, 200)},
			{OffsetY: 2, Blur: 4, Color: gray(128), Inset: true},
		}},
	},
}
