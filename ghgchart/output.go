// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgchart

import (
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// TrendFile is the output file name of the trend chart.
const TrendFile = "output_plot.png"

// TrendSVGFile is the interactive companion of TrendFile.
const TrendSVGFile = "output_plot.svg"

// PieFile returns the output file name of the pie chart for year.
func PieFile(year string) string {
	return "emissions_pie_" + year + ".png"
}

// BarFile returns the output file name of the bar chart for year.
func BarFile(year string) string {
	return "emissions_barplot_" + year + ".png"
}

// writeFile creates path and fills it using write. If anything fails,
// path is removed so that no partial image is left behind.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}

// savePNG renders p as a w×h PNG at path.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return err
	}
	return writeFile(path, func(f io.Writer) error {
		_, err := wt.WriteTo(f)
		return err
	})
}

// saveEmpty writes a PNG holding only title, for charts with nothing
// to draw.
func saveEmpty(title string, w, h vg.Length, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	return savePNG(p, w, h, path)
}
