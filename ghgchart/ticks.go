// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgchart

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// maxYearTicks bounds the number of labeled year ticks on the X axis.
const maxYearTicks = 16

// niceTicks is a plot.Ticker that places major ticks at round values
// and labels them without exponents, since emissions run to the
// millions of kilotons.
type niceTicks struct {
	// Max is the maximum number of major ticks. If it is 0, 8 is
	// used.
	Max int
}

func (t niceTicks) Ticks(min, max float64) []plot.Tick {
	n := t.Max
	if n <= 0 {
		n = 8
	}
	s := scale.Linear{Min: min, Max: max}
	major, _ := s.Ticks(scale.TickOptions{Max: n})
	if len(major) == 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	ticks := make([]plot.Tick, len(major))
	for i, v := range major {
		ticks[i] = plot.Tick{Value: v, Label: formatTick(v)}
	}
	return ticks
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.10g", v)
}

// yearTicks labels the X axis with year labels at xs, thinning the
// labels so that at most maxYearTicks are shown.
func yearTicks(years []string, xs []float64) plot.ConstantTicks {
	step := (len(years) + maxYearTicks - 1) / maxYearTicks
	if step < 1 {
		step = 1
	}
	ticks := make(plot.ConstantTicks, len(years))
	for i, y := range years {
		ticks[i].Value = xs[i]
		if i%step == 0 {
			ticks[i].Label = y
		}
	}
	return ticks
}
