// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ghgplot charts national greenhouse-gas emissions.
//
// ghgplot reads a table with one row per country and one column per
// year (the World Bank "Total greenhouse gas emissions (kt of CO2
// equivalent)" layout, as CSV or .xlsx) and writes:
//
//	output_plot.png               emissions of every country over time
//	output_plot.svg               the same, with hover tooltips
//	emissions_pie_<year>.png      each country's share of a year's total
//	emissions_barplot_<year>.png  each country's emissions in a year
//
// With no arguments it reads the published table from the current
// directory and draws pies for 2012 and 1998 and a bar chart for 2000.
// Missing measurements are left out of every chart.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/ghgcharts/ghgcharts/ghgtab"
	"github.com/ghgcharts/ghgcharts/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := newRootCommand(stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logging.Default().Error("ghgplot failed", errorFields(err)...)
		return 1
	}
	return 0
}

// errorFields returns log fields naming the input that caused err.
func errorFields(err error) []interface{} {
	fields := []interface{}{logging.FieldError, err}
	var lerr *ghgtab.LoadError
	var yerr *ghgtab.UnknownYearError
	switch {
	case errors.As(err, &lerr):
		fields = append(fields, logging.FieldInput, lerr.Path)
	case errors.As(err, &yerr):
		fields = append(fields, logging.FieldYear, yerr.Year)
	}
	return fields
}
