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

// Package config reads rendering requests from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/testcases"
)

// File is the contents of a request file.
type File struct {
	Kind   string  `yaml:"kind" toml:"kind"`
	Name   string  `yaml:"name,omitempty" toml:"name,omitempty"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// Radius applies to all corners which have no override.
	Radius      float64 `yaml:"radius" toml:"radius"`
	TopLeft     *Corner `yaml:"top_left,omitempty" toml:"top_left,omitempty"`
	TopRight    *Corner `yaml:"top_right,omitempty" toml:"top_right,omitempty"`
	BottomRight *Corner `yaml:"bottom_right,omitempty" toml:"bottom_right,omitempty"`
	BottomLeft  *Corner `yaml:"bottom_left,omitempty" toml:"bottom_left,omitempty"`

	// Smoothing defaults to squircle.DefaultSmoothing.
	Smoothing *float64 `yaml:"smoothing,omitempty" toml:"smoothing,omitempty"`
	Scale     float64  `yaml:"scale,omitempty" toml:"scale,omitempty"`

	Border  *Border  `yaml:"border,omitempty" toml:"border,omitempty"`
	Ring    *Ring    `yaml:"ring,omitempty" toml:"ring,omitempty"`
	Shadows []Shadow `yaml:"shadows,omitempty" toml:"shadows,omitempty"`
}

// Corner overrides the radius of one corner.  R sets both axes, X and Y
// override single axes.  In a request file, a corner is either a table
// with the keys r, x and y, or a plain number, which sets R.
type Corner struct {
	R *float64 `yaml:"r,omitempty" toml:"r,omitempty"`
	X *float64 `yaml:"x,omitempty" toml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty" toml:"y,omitempty"`
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Corner) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var r float64
		if err := n.Decode(&r); err != nil {
			return err
		}
		*c = Corner{R: &r}
		return nil
	case yaml.MappingNode:
		// n.Decode does not inherit KnownFields from the outer decoder.
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; !isCornerKey(k.Value) {
				return fmt.Errorf("line %d: unknown corner field %q", k.Line, k.Value)
			}
		}
		type plain Corner
		return n.Decode((*plain)(c))
	default:
		return fmt.Errorf("line %d: corner must be a number or a mapping", n.Line)
	}
}

// UnmarshalTOML implements the [unstable.Unmarshaler] interface.  It is
// used for corners given as a key/value pair, for example
// "top_left = 4" or "top_left = {x = 20, y = 10}".
func (c *Corner) UnmarshalTOML(n *unstable.Node) error {
	switch n.Kind {
	case unstable.Integer, unstable.Float:
		r, err := tomlNumber(n)
		if err != nil {
			return err
		}
		*c = Corner{R: &r}
		return nil
	case unstable.InlineTable:
		*c = Corner{}
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			keys := kv.Key()
			keys.Next()
			name := string(keys.Node().Data)
			if !keys.IsLast() || !isCornerKey(name) {
				return fmt.Errorf("unknown corner field %q", name)
			}
			v, err := tomlNumber(kv.Value())
			if err != nil {
				return fmt.Errorf("corner field %s: %w", name, err)
			}
			switch name {
			case "r":
				c.R = &v
			case "x":
				c.X = &v
			case "y":
				c.Y = &v
			}
		}
		return nil
	default:
		return fmt.Errorf("corner must be a number or a table, not %s", n.Kind)
	}
}

func isCornerKey(k string) bool {
	return k == "r" || k == "x" || k == "y"
}

func tomlNumber(n *unstable.Node) (float64, error) {
	if n.Kind != unstable.Integer && n.Kind != unstable.Float {
		return 0, fmt.Errorf("expected a number, not %s", n.Kind)
	}
	return strconv.ParseFloat(strings.ReplaceAll(string(n.Data), "_", ""), 64)
}

// Border describes a border.  Width and Color apply to all edges without
// an override.
type Border struct {
	Width  float64  `yaml:"width" toml:"width"`
	Top    *float64 `yaml:"top,omitempty" toml:"top,omitempty"`
	Left   *float64 `yaml:"left,omitempty" toml:"left,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
	Right  *float64 `yaml:"right,omitempty" toml:"right,omitempty"`

	Color       string `yaml:"color" toml:"color"`
	TopColor    string `yaml:"top_color,omitempty" toml:"top_color,omitempty"`
	LeftColor   string `yaml:"left_color,omitempty" toml:"left_color,omitempty"`
	BottomColor string `yaml:"bottom_color,omitempty" toml:"bottom_color,omitempty"`
	RightColor  string `yaml:"right_color,omitempty" toml:"right_color,omitempty"`

	Style      string `yaml:"style,omitempty" toml:"style,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
	DrawToEdge bool   `yaml:"draw_to_edge,omitempty" toml:"draw_to_edge,omitempty"`
}

// Shadow describes one box shadow.
type Shadow struct {
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
	Blur    float64 `yaml:"blur" toml:"blur"`
	Spread  float64 `yaml:"spread" toml:"spread"`
	Color   string  `yaml:"color" toml:"color"`
	Inset   bool    `yaml:"inset,omitempty" toml:"inset,omitempty"`
}

// Ring describes a ring drawn around the shape.  Offset is the gap
// between the shape and the ring.
type Ring struct {
	Width  float64 `yaml:"width" toml:"width"`
	Offset float64 `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Color  string  `yaml:"color" toml:"color"`
	Style  string  `yaml:"style,omitempty" toml:"style,omitempty"`
}

// Load reads a request file.  The format is chosen by the file name
// extension: .yaml or .yml for YAML, .toml for TOML.
func Load(fname string) (*File, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fname, err)
	}
	f, err := Parse(data, filepath.Ext(fname))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fname, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	return f, nil
}

// Parse decodes a request in the format given by ext.  Unknown fields are
// errors.
func Parse(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.EnableUnmarshalerInterface()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	return &f, nil
}

// ErrInvalid is returned by Resolve for requests which cannot be
// rendered.
var ErrInvalid = errors.New("invalid request")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Resolve applies defaults and overrides and converts the request into a
// test case.  The geometry is checked by the squircle package when the
// test case is rendered.
func (f *File) Resolve() (testcases.TestCase, error) {
	tc := testcases.TestCase{
		Name:      f.Name,
		Size:      squircle.Size{Width: f.Width, Height: f.Height},
		Smoothing: squircle.DefaultSmoothing,
		Scale:     f.Scale,
	}
	if f.Smoothing != nil {
		tc.Smoothing = *f.Smoothing
	}
	if f.Scale < 0 {
		return tc, invalid("scale", "negative value %g", f.Scale)
	}

	def := squircle.Circular(f.Radius)
	tc.Radii = squircle.CornerRadii{
		TopLeft:     f.TopLeft.resolve(def),
		TopRight:    f.TopRight.resolve(def),
		BottomRight: f.BottomRight.resolve(def),
		BottomLeft:  f.BottomLeft.resolve(def),
	}

	switch f.Kind {
	case "fill", "mask":
		tc.Op = testcases.Fill{}
	case "border":
		if f.Border == nil {
			return tc, invalid("border", "missing for kind %q", f.Kind)
		}
		op, err := f.Border.resolve()
		if err != nil {
			return tc, err
		}
		tc.Op = op
	case "ring", "outline":
		if f.Ring == nil {
			return tc, invalid("ring", "missing for kind %q", f.Kind)
		}
		c, err := ParseColor(f.Ring.Color)
		if err != nil {
			return tc, invalid("ring.color", "%v", err)
		}
		style, err := parseStyle("ring.style", f.Ring.Style)
		if err != nil {
			return tc, err
		}
		tc.Op = testcases.Ring{
			Width:  f.Ring.Width,
			Offset: f.Ring.Offset,
			Color:  c,
			Style:  style,
		}
	case "shadow", "shadows":
		op := testcases.Shadows{}
		for i, s := range f.Shadows {
			c, err := ParseColor(s.Color)
			if err != nil {
				return tc, invalid(fmt.Sprintf("shadows[%d].color", i), "%v", err)
			}
			op.List = append(op.List, squircle.BoxShadow{
				OffsetX: s.OffsetX,
				OffsetY: s.OffsetY,
				Blur:    s.Blur,
				Spread:  s.Spread,
				Color:   c,
				Inset:   s.Inset,
			})
		}
		tc.Op = op
	default:
		return tc, invalid("kind", "unknown value %q", f.Kind)
	}
	return tc, nil
}

func (c *Corner) resolve(def squircle.Radius) squircle.Radius {
	if c == nil {
		return def
	}
	r := def
	if c.R != nil {
		r = squircle.Circular(*c.R)
	}
	if c.X != nil {
		r.X = *c.X
	}
	if c.Y != nil {
		r.Y = *c.Y
	}
	return r
}

func (b *Border) resolve() (testcases.Border, error) {
	pick := func(v *float64) float64 {
		if v != nil {
			return *v
		}
		return b.Width
	}
	op := testcases.Border{
		Widths: squircle.EdgeInsets{
			Top:    pick(b.Top),
			Left:   pick(b.Left),
			Bottom: pick(b.Bottom),
			Right:  pick(b.Right),
		},
		DrawToEdge: b.DrawToEdge,
	}

	colors := []struct {
		field string
		val   string
		dst   *color.Color
	}{
		{"border.top_color", b.TopColor, &op.Colors.Top},
		{"border.left_color", b.LeftColor, &op.Colors.Left},
		{"border.bottom_color", b.BottomColor, &op.Colors.Bottom},
		{"border.right_color", b.RightColor, &op.Colors.Right},
		{"border.background", b.Background, &op.Background},
	}
	def, err := ParseColor(b.Color)
	if err != nil {
		return op, invalid("border.color", "%v", err)
	}
	for i, c := range colors {
		if c.val == "" {
			if i < 4 {
				*c.dst = def
			}
			continue
		}
		col, err := ParseColor(c.val)
		if err != nil {
			return op, invalid(c.field, "%v", err)
		}
		*c.dst = col
	}

	op.Style, err = parseStyle("border.style", b.Style)
	return op, err
}

func parseStyle(field, s string) (squircle.BorderStyle, error) {
	switch strings.ToLower(s) {
	case "", "solid":
		return squircle.BorderSolid, nil
	case "dashed":
		return squircle.BorderDashed, nil
	case "dotted":
		return squircle.BorderDotted, nil
	default:
		return 0, invalid(field, "unknown value %q", s)
	}
}

// ParseColor parses a color of the form #RRGGBB or #RRGGBBAA.  The color
// components are not premultiplied.  The empty string gives nil, which
// is transparent.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("malformed color %q, want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
