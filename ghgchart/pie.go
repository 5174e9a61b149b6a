// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgchart

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/ghgcharts/ghgcharts/ghgtab"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg"
)

// A Wedge is one country's slice of a year's pie chart.
type Wedge struct {
	Name string

	// Row is the index of the wedge's row in the table.
	Row   int
	Value float64

	// Percent is Value as a percentage of the total of every
	// present value in the year, rounded to one decimal place.
	// Wedges drawn by RenderSharePie are labeled with their share
	// of the drawn total instead (see DrawnWedges).
	Percent float64

	// Exploded marks the wedge drawn with emphasis. It is the
	// first wedge.
	Exploded bool
}

// Label returns the text drawn on w.
func (w Wedge) Label() string {
	return fmt.Sprintf("%s %.1f%%", w.Name, w.Percent)
}

// PieWedges returns the wedges of the pie chart of year, one for each
// row with a measurement for year, in row order. It returns an
// *ghgtab.UnknownYearError if year is not a column of t.
func PieWedges(t *ghgtab.Table, year string) ([]Wedge, error) {
	col, err := t.YearIndex(year)
	if err != nil {
		return nil, err
	}
	wedges := []Wedge{}
	var values []float64
	for i, row := range t.Rows {
		v := row.Values[col]
		if ghgtab.IsMissing(v) {
			continue
		}
		wedges = append(wedges, Wedge{Name: row.Name, Row: i, Value: v})
		values = append(values, v)
	}
	if len(wedges) == 0 {
		return wedges, nil
	}
	wedges[0].Exploded = true
	setPercents(wedges, values)
	return wedges, nil
}

// DrawnWedges returns the wedges a pie chart can draw, those with a
// positive value, with Percent recomputed as the share of their own
// total. The input is not modified.
func DrawnWedges(wedges []Wedge) []Wedge {
	drawn := []Wedge{}
	var values []float64
	for _, w := range wedges {
		if w.Value > 0 {
			drawn = append(drawn, w)
			values = append(values, w.Value)
		}
	}
	setPercents(drawn, values)
	return drawn
}

// setPercents sets each wedge's Percent from values, which holds the
// wedge values in the same order. A zero total leaves every Percent 0.
func setPercents(wedges []Wedge, values []float64) {
	total := stats.Sample{Xs: values}.Sum()
	for i := range wedges {
		wedges[i].Percent = 0
		if total != 0 {
			wedges[i].Percent = math.Round(wedges[i].Value/total*1000) / 10
		}
	}
}

// RenderSharePie draws the pie chart of year and writes it as a PNG
// to path. Wedges without a positive value cannot be drawn and are
// left out, and each drawn wedge is labeled with its share of the
// drawn total. If no wedge remains, the chart is empty. If year is not
// a column of t, it returns an *ghgtab.UnknownYearError and does not
// create path.
func RenderSharePie(t *ghgtab.Table, year string, path string) error {
	wedges, err := PieWedges(t, year)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Total Greenhouse Gas Emissions by Country (%s)", year)

	var values []chart.Value
	for _, w := range DrawnWedges(wedges) {
		style := chart.Style{
			FillColor:   chartColor(PieColor(w.Row)),
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: 1,
		}
		if w.Exploded {
			style.StrokeWidth = 4
		}
		values = append(values, chart.Value{Value: w.Value, Label: w.Label(), Style: style})
	}
	if len(values) == 0 {
		if err := saveEmpty(title, 8*vg.Inch, 8*vg.Inch, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: values,
	}
	err = writeFile(path, func(w io.Writer) error {
		return pie.Render(chart.PNG, w)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
