// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgtab

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Summary describes the reported measurements of one row.
type Summary struct {
	Name string

	// Reported is the number of years with a measurement.
	Reported int

	// Mean is the mean of the reported measurements, or NaN if
	// there are none.
	Mean float64

	// Latest is the measurement for LatestYear, the last year
	// with a measurement. If Reported is 0, Latest is NaN and
	// LatestYear is "".
	Latest     float64
	LatestYear string
}

// Summarize returns a Summary for each row of t, in row order.
func Summarize(t *Table) []Summary {
	out := make([]Summary, len(t.Rows))
	for i, row := range t.Rows {
		s := Summary{Name: row.Name, Mean: math.NaN(), Latest: math.NaN()}
		var xs []float64
		for j, v := range row.Values {
			if IsMissing(v) {
				continue
			}
			xs = append(xs, v)
			s.Latest, s.LatestYear = v, t.Years[j]
		}
		s.Reported = len(xs)
		if len(xs) > 0 {
			s.Mean = stats.Mean(xs)
		}
		out[i] = s
	}
	return out
}

// SummaryTable returns Summarize(t) as a gg table with one row per
// entity, suitable for table.Fprint.
func SummaryTable(t *Table) *table.Table {
	sums := Summarize(t)
	var (
		names   = make([]string, len(sums))
		counts  = make([]int, len(sums))
		means   = make([]float64, len(sums))
		latest  = make([]float64, len(sums))
		latestY = make([]string, len(sums))
	)
	for i, s := range sums {
		names[i] = s.Name
		counts[i] = s.Reported
		means[i] = s.Mean
		latest[i] = s.Latest
		latestY[i] = s.LatestYear
	}
	nameCol := t.Country
	if nameCol == "" {
		nameCol = "name"
	}
	return new(table.Builder).
		Add(nameCol, names).
		Add("years reported", counts).
		Add("mean", means).
		Add("latest year", latestY).
		Add("latest", latest).
		Done()
}
