// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghgchart draws emissions tables as trend, pie, and bar
// charts.
//
// Each chart is built in two steps. A layout function (TrendSeries,
// PieWedges, YearBars) turns a table into the geometry to draw,
// dropping missing values. A Render function draws that geometry
// and writes it to an image file.
package ghgchart

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/ghgcharts/ghgcharts/ghgtab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoSeries is returned by WriteTrendSVG and RenderTrendSVG when no
// row of the table has any measurement.
var ErrNoSeries = errors.New("no series to plot")

// A Point is one measurement of a series.
type Point struct {
	// X is the position of Year on the X axis.
	X    float64
	Y    float64
	Year string
}

// A Series is the trend line of one table row.
type Series struct {
	Name string

	// Row is the index of the series' row in the table.
	Row   int
	Style Style

	// Segments are the maximal runs of consecutive years with a
	// measurement. Missing years separate segments and are never
	// interpolated.
	Segments [][]Point
}

// TrendSeries returns the series to draw for t, in row order. Rows
// with no measurements at all are skipped.
func TrendSeries(t *ghgtab.Table) []Series {
	xs := yearPositions(t.Years)
	var out []Series
	for i, row := range t.Rows {
		s := Series{Name: row.Name, Row: i, Style: StyleFor(i, len(t.Rows))}
		var seg []Point
		for j, v := range row.Values {
			if ghgtab.IsMissing(v) {
				if seg != nil {
					s.Segments = append(s.Segments, seg)
					seg = nil
				}
				continue
			}
			seg = append(seg, Point{X: xs[j], Y: v, Year: t.Years[j]})
		}
		if seg != nil {
			s.Segments = append(s.Segments, seg)
		}
		if len(s.Segments) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// LegendEntries returns the legend labels for series, in plotted
// order. Series without a name get no legend entry.
func LegendEntries(series []Series) []string {
	labels := []string{}
	for _, s := range series {
		if s.inLegend() {
			labels = append(labels, s.Name)
		}
	}
	return labels
}

func (s Series) inLegend() bool {
	return strings.TrimSpace(s.Name) != ""
}

// yearPositions returns the X position of each year label. If every
// label is a number, the labels themselves are used, so gaps between
// years are spaced proportionally. Otherwise, years are spaced
// evenly by column index.
func yearPositions(years []string) []float64 {
	xs := make([]float64, len(years))
	for i, y := range years {
		x, err := strconv.ParseFloat(y, 64)
		if err != nil {
			for i := range xs {
				xs[i] = float64(i)
			}
			return xs
		}
		xs[i] = x
	}
	return xs
}

func trendTitle(t *ghgtab.Table) string {
	const title = "Total Greenhouse Gas Emissions by Country"
	if len(t.Years) == 0 {
		return title
	}
	return fmt.Sprintf("%s (%s-%s)", title, t.Years[0], t.Years[len(t.Years)-1])
}

const emissionsLabel = "Total Greenhouse Gas Emissions (kt of CO2 equivalent)"

// RenderTrendLines draws one line per row of t across all years and
// writes it as a PNG to path. A table with no measurements produces
// an empty chart.
func RenderTrendLines(t *ghgtab.Table, path string) error {
	p := plot.New()
	p.Title.Text = trendTitle(t)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = emissionsLabel
	p.Y.Tick.Marker = niceTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Dashes = grid.Vertical.Dashes
	p.Add(grid)

	series := TrendSeries(t)
	for _, s := range series {
		var thumbs []plot.Thumbnailer
		for _, seg := range s.Segments {
			xys := make(plotter.XYs, len(seg))
			for i, pt := range seg {
				xys[i].X, xys[i].Y = pt.X, pt.Y
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("series %s: %w", s.Name, err)
			}
			line.LineStyle.Color = s.Style.Color
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Dashes = s.Style.Line.dashes()

			points, err := plotter.NewScatter(xys)
			if err != nil {
				return fmt.Errorf("series %s: %w", s.Name, err)
			}
			points.GlyphStyle.Shape = s.Style.Marker.glyph()
			points.GlyphStyle.Color = s.Style.Color
			points.GlyphStyle.Radius = vg.Points(3)

			p.Add(line, points)
			if thumbs == nil {
				thumbs = []plot.Thumbnailer{line, points}
			}
		}
		if s.inLegend() {
			p.Legend.Add(s.Name, thumbs...)
		}
	}
	if len(series) > 0 {
		p.X.Tick.Marker = yearTicks(t.Years, yearPositions(t.Years))
	}

	if err := savePNG(p, 10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteTrendSVG draws the same series as RenderTrendLines as an SVG
// to w. Each point carries a hover tooltip with its country, year,
// and value. If there are no series, it returns ErrNoSeries and
// writes nothing.
func WriteTrendSVG(t *ghgtab.Table, w io.Writer) error {
	series := TrendSeries(t)
	if len(series) == 0 {
		return ErrNoSeries
	}

	var (
		countries, segments, tooltips []string
		xs, ys                        []float64
	)
	for _, s := range series {
		for k, seg := range s.Segments {
			id := fmt.Sprintf("%d/%d", s.Row, k)
			for _, pt := range seg {
				countries = append(countries, s.Name)
				segments = append(segments, id)
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
				tooltips = append(tooltips, fmt.Sprintf("%s %s: %s", s.Name, pt.Year, formatTick(pt.Y)))
			}
		}
	}
	tab := new(table.Builder).
		Add("country", countries).
		Add("year", xs).
		Add("emissions", ys).
		Add("segment", segments).
		Add("tooltip", tooltips).
		Done()

	p := gg.NewPlot(tab)
	// Group by segment first so that a gap in the data is also a
	// gap in the line.
	p.GroupBy("segment")
	p.Add(gg.LayerLines{X: "year", Y: "emissions", Color: "country"})
	p.Add(gg.LayerPoints{X: "year", Y: "emissions", Color: "country"})
	p.Add(gg.LayerTooltips{X: "year", Y: "emissions", Label: "tooltip"})
	p.Add(gg.Title(trendTitle(t)))
	return p.WriteSVG(w, 1000, 600)
}

// RenderTrendSVG writes the interactive trend chart of t to path. If
// t has nothing to plot, it returns ErrNoSeries and does not create
// path.
func RenderTrendSVG(t *ghgtab.Table, path string) error {
	if len(TrendSeries(t)) == 0 {
		return ErrNoSeries
	}
	err := writeFile(path, func(w io.Writer) error {
		return WriteTrendSVG(t, w)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
