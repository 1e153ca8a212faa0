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

// Command genpdf writes the outlines of all test cases as vector PDF files.
// With -gs, the PDF files are also rendered to PNG using Ghostscript, for
// visual comparison with the output of the squircle rasterizer.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"

	"seehuhn.de/go/squircle/internal/pdfout"
	"seehuhn.de/go/squircle/testcases"
)

func main() {
	outDir := flag.String("d", "testdata/pdf", "output directory")
	useGS := flag.Bool("gs", false, "render the PDF files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			shapes, err := pdfout.Shapes(tc)
			if err == nil {
				err = pdfout.Write(pdfPath, shapes)
			}
			if err == nil && *useGS {
				pngPath := filepath.Join(*outDir, name+".png")
				err = renderPNG(pdfPath, pngPath, tc.PixelScale())
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string, scale float64) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r: 72 DPI per unit of scale, so that 1 point = scale pixels
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r"+strconv.FormatFloat(72*scale, 'f', -1, 64),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
