// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgtab

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// DefaultMetaColumns is the number of leading metadata columns in the
// published emissions tables (name, code, indicator name, indicator
// code).
const DefaultMetaColumns = 4

// DefaultCountryColumn is the header label of the entity name column.
const DefaultCountryColumn = "Country Name"

// missingMarkers are the cell spellings treated as missing values.
var missingMarkers = []string{"", "NA", "NaN", "nan", "<nil>"}

// LoadOptions controls how Load interprets a table file. The zero
// value selects the layout of the published emissions tables.
type LoadOptions struct {
	// MetaColumns is the number of leading non-year columns. If
	// it is <= 0, DefaultMetaColumns is used.
	MetaColumns int

	// CountryColumn is the header label of the entity name column.
	// If no column has this label, column 0 is used. If it is "",
	// DefaultCountryColumn is used.
	CountryColumn string

	// Delimiter separates fields in delimited text files. If it is
	// 0, ',' is used.
	Delimiter rune

	// Sheet names the worksheet to read from .xlsx files. If it is
	// "", the first sheet is used.
	Sheet string
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.MetaColumns <= 0 {
		o.MetaColumns = DefaultMetaColumns
	}
	if o.CountryColumn == "" {
		o.CountryColumn = DefaultCountryColumn
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	return o
}

// Load reads the table file at path. Files ending in .xlsx are read
// as Excel workbooks; anything else is read as delimited text.
//
// Any failure is reported as a *LoadError.
func Load(path string, opts LoadOptions) (*Table, error) {
	opts = opts.withDefaults()

	var records [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err = readXLSX(path, opts.Sheet)
	} else {
		records, err = readCSVFile(path, opts.Delimiter)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	t, err := fromRecords(records, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

// Read parses delimited text from r. It is Load without the file
// handling; errors are not wrapped in *LoadError.
func Read(r io.Reader, opts LoadOptions) (*Table, error) {
	opts = opts.withDefaults()
	records, err := readCSV(r, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	return fromRecords(records, opts)
}

func readCSVFile(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCSV(f, delim)
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	// Read everything, header included, as raw strings. gota would
	// otherwise rename duplicate or empty header labels and rewrite
	// name cells that look like missing markers; year cells are
	// interpreted by parseValue instead.
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(delim),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	// The first record holds gota's generated column names.
	return df.Records()[1:], nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	// GetRows drops trailing empty cells, so restore short rows
	// to the header width. Longer rows are left for fromRecords
	// to reject.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows, nil
}

func fromRecords(records [][]string, opts LoadOptions) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	header := append([]string(nil), records[0]...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) <= opts.MetaColumns {
		return nil, fmt.Errorf("header has %d columns, want year columns after %d metadata columns", len(header), opts.MetaColumns)
	}

	nameCol := 0
	for i, h := range header[:opts.MetaColumns] {
		if strings.TrimSpace(h) == opts.CountryColumn {
			nameCol = i
			break
		}
	}

	t := &Table{
		Country: header[nameCol],
		Years:   append([]string(nil), header[opts.MetaColumns:]...),
		Rows:    make([]Row, 0, len(records)-1),
	}
	for i, rec := range records[1:] {
		// Line numbers are 1-based and count the header.
		line := i + 2
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d columns, header has %d", line, len(rec), len(header))
		}
		row := Row{Name: rec[nameCol], Values: make([]float64, len(t.Years))}
		for j, cell := range rec[opts.MetaColumns:] {
			v, err := parseValue(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, year %s: %w", line, t.Years[j], err)
			}
			row.Values[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseValue(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	for _, m := range missingMarkers {
		if cell == m {
			return math.NaN(), nil
		}
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", cell)
	}
	if math.IsNaN(v) {
		return math.NaN(), nil
	}
	return v, nil
}
