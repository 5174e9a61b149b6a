// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghgtab reads per-country, per-year emissions tables.
//
// A table file has a header row followed by one row per country (or
// other reporting entity). The first few columns are metadata such as
// the country name and indicator code; every column after those is a
// year whose cells hold a measurement or are empty. Empty cells are
// missing values, which are kept distinct from zero.
package ghgtab

import (
	"fmt"
	"math"
)

// A Table is an immutable, rectangular emissions table.
type Table struct {
	// Country is the header label of the entity name column.
	Country string

	// Years lists the year column labels in header order.
	Years []string

	// Rows holds one entry per entity, in file order.
	Rows []Row
}

// A Row is one entity's measurements. Values[i] is the
// measurement for Years[i], or NaN if it is missing.
type Row struct {
	Name   string
	Values []float64
}

// IsMissing reports whether v represents a missing measurement.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// YearIndex returns the column index of year in t.Years.
func (t *Table) YearIndex(year string) (int, error) {
	for i, y := range t.Years {
		if y == year {
			return i, nil
		}
	}
	return -1, &UnknownYearError{Year: year}
}

// Column returns the names and values of the rows that have a
// measurement for year. names[i] and values[i] always come from the
// same row, and rows keep their table order.
func (t *Table) Column(year string) (names []string, values []float64, err error) {
	col, err := t.YearIndex(year)
	if err != nil {
		return nil, nil, err
	}
	names, values = []string{}, []float64{}
	for _, row := range t.Rows {
		v := row.Values[col]
		if IsMissing(v) {
			continue
		}
		names = append(names, row.Name)
		values = append(values, v)
	}
	return names, values, nil
}

// Present returns the number of non-missing values in r.
func (r Row) Present() int {
	n := 0
	for _, v := range r.Values {
		if !IsMissing(v) {
			n++
		}
	}
	return n
}

// LoadError reports a table file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnknownYearError reports a year label that is not a column of the
// table.
type UnknownYearError struct {
	Year string
}

func (e *UnknownYearError) Error() string {
	return fmt.Sprintf("unknown year %q", e.Year)
}
