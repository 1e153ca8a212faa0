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

// Command squircle renders a squircle, its border or its shadows, as
// described in a YAML or TOML request file, to a PNG image.
//
// Usage:
//
//	squircle [-o out.png] [-pdf out.pdf] [-v] request.yaml
//
// A request file looks like this:
//
//	kind: border
//	width: 100
//	height: 60
//	radius: 12
//	smoothing: 0.6
//	scale: 2
//	border:
//	  width: 2
//	  color: "#1a1a1a"
//	  style: dashed
//	  background: "#ffffff"
//
// With -pdf, the outlines are also written as vector graphics.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/internal/config"
	"seehuhn.de/go/squircle/internal/pdfout"
)

func main() {
	outName := flag.String("o", "out.png", "output PNG file")
	pdfName := flag.String("pdf", "", "also write the outlines to this PDF file")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] request.{yaml,toml}\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	squircle.SetLogger(logger)

	if err := run(flag.Arg(0), *outName, *pdfName); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
}

func run(reqName, outName, pdfName string) error {
	f, err := config.Load(reqName)
	if err != nil {
		return err
	}
	tc, err := f.Resolve()
	if err != nil {
		return err
	}

	img, err := tc.Render()
	if err != nil {
		return err
	}
	if err := imgio.Save(outName, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", outName, err)
	}
	squircle.Logger().Info("wrote image", "file", outName, "size", img.Bounds().Size().String())

	if pdfName != "" {
		shapes, err := pdfout.Shapes(tc)
		if err != nil {
			return err
		}
		if err := pdfout.Write(pdfName, shapes); err != nil {
			return fmt.Errorf("failed to write %s: %w", pdfName, err)
		}
	}
	return nil
}
