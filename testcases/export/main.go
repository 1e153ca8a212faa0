// Command export writes the test case definitions, together with their
// outlines, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/testcases"
)

func main() {
	outName := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(*outName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Radii     [4][2]float64 `json:"radii"` // top left, top right, bottom right, bottom left
	Smoothing float64       `json:"smoothing"`
	Scale     float64       `json:"scale"`
	Outline   []jsonSegment `json:"outline"`
	Op        string        `json:"op"`

	Widths     *[4]float64  `json:"widths,omitempty"` // top, left, bottom, right
	Colors     []string     `json:"colors,omitempty"`
	Style      string       `json:"style,omitempty"`
	Background string       `json:"background,omitempty"`
	DrawToEdge bool         `json:"draw_to_edge,omitempty"`
	Shadows    []jsonShadow `json:"shadows,omitempty"`
	Ring       *jsonRing    `json:"ring,omitempty"`
}

type jsonRing struct {
	Width  float64 `json:"width"`
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
	Style  string  `json:"style"`
}

type jsonShadow struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Color   string  `json:"color"`
	Inset   bool    `json:"inset,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	outline, err := squircle.Outline(tc.Size, tc.Radii, tc.Smoothing)
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
	}
	r := tc.Radii
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Size.Width,
		Height: tc.Size.Height,
		Radii: [4][2]float64{
			{r.TopLeft.X, r.TopLeft.Y},
			{r.TopRight.X, r.TopRight.Y},
			{r.BottomRight.X, r.BottomRight.Y},
			{r.BottomLeft.X, r.BottomLeft.Y},
		},
		Smoothing: tc.Smoothing,
		Scale:     tc.PixelScale(),
		Outline:   pathToJSON(outline),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Border:
		jtc.Op = "border"
		w := op.Widths
		jtc.Widths = &[4]float64{w.Top, w.Left, w.Bottom, w.Right}
		c := op.Colors
		jtc.Colors = []string{hex(c.Top), hex(c.Left), hex(c.Bottom), hex(c.Right)}
		jtc.Style = op.Style.String()
		jtc.Background = hex(op.Background)
		jtc.DrawToEdge = op.DrawToEdge
	case testcases.Shadows:
		jtc.Op = "shadow"
		for _, s := range op.List {
			jtc.Shadows = append(jtc.Shadows, jsonShadow{
				OffsetX: s.OffsetX,
				OffsetY: s.OffsetY,
				Blur:    s.Blur,
				Spread:  s.Spread,
				Color:   hex(s.Color),
				Inset:   s.Inset,
			})
		}
	case testcases.Ring:
		jtc.Op = "ring"
		jtc.Ring = &jsonRing{
			Width:  op.Width,
			Offset: op.Offset,
			Color:  hex(op.Color),
			Style:  op.Style.String(),
		}
	}
	return jtc, nil
}

// hex formats c as #RRGGBBAA, or returns the empty string for nil.
func hex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
