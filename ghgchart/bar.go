// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgchart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ghgcharts/ghgcharts/ghgtab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var skyBlue = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

const (
	barChartWidth  = 12 * vg.Inch
	barChartHeight = 8 * vg.Inch
	maxBarWidth    = 20 // points
)

// YearBars returns the country names and values of the bar chart of
// year. names[i] labels values[i]; rows without a measurement for year
// are dropped from both. It returns an *ghgtab.UnknownYearError if
// year is not a column of t.
func YearBars(t *ghgtab.Table, year string) (names []string, values []float64, err error) {
	return t.Column(year)
}

// RenderYearBar draws one bar per country with a measurement for year
// and writes it as a PNG to path. If year is not a column of t, it
// returns an *ghgtab.UnknownYearError and does not create path.
func RenderYearBar(t *ghgtab.Table, year string, path string) error {
	names, values, err := YearBars(t, year)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Greenhouse Gas Emissions by Country (%s)", year)
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Greenhouse Gas Emissions (kt of CO2 equivalent)"
	p.Y.Tick.Marker = niceTicks{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	if len(values) > 0 {
		bars, err := plotter.NewBarChart(plotter.Values(values), barWidth(len(values)))
		if err != nil {
			return fmt.Errorf("year %s: %w", year, err)
		}
		bars.Color = skyBlue
		bars.LineStyle.Color = color.Black
		bars.LineStyle.Width = vg.Points(0.5)
		p.Add(bars)

		p.NominalX(names...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	if err := savePNG(p, barChartWidth, barChartHeight, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// barWidth fits n bars side by side across the chart.
func barWidth(n int) vg.Length {
	w := 0.8 * (barChartWidth - vg.Inch) / vg.Length(n)
	if w > vg.Points(maxBarWidth) {
		w = vg.Points(maxBarWidth)
	}
	return w
}
