// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a ghgplot run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ghgcharts/ghgcharts/ghgtab"
)

// DefaultInput is the name of the published emissions table.
const DefaultInput = "Total greenhouse gas emissions (kt of CO2 equivalent).csv"

// Config selects the input table and the charts to draw.
type Config struct {
	// Input is the path of the table file.
	Input string `yaml:"input"`

	// OutDir is the directory charts are written to.
	OutDir string `yaml:"out_dir"`

	// PieYears lists the years to draw share pies for.
	PieYears []string `yaml:"pie_years"`

	// BarYear is the year to draw the bar chart for. If it is "",
	// no bar chart is drawn.
	BarYear string `yaml:"bar_year"`

	// MetaColumns is the number of leading non-year columns.
	MetaColumns int `yaml:"meta_columns"`

	// CountryColumn is the header label of the entity name column.
	CountryColumn string `yaml:"country_column"`

	// Sheet is the worksheet to read from .xlsx inputs.
	Sheet string `yaml:"sheet"`

	// SVG enables the interactive SVG trend chart.
	SVG bool `yaml:"svg"`
}

// Default returns the settings of the reference run: the published
// table in the working directory, pies for 2012 and 1998, and a bar
// chart for 2000.
func Default() Config {
	return Config{
		Input:         DefaultInput,
		OutDir:        ".",
		PieYears:      []string{"2012", "1998"},
		BarYear:       "2000",
		MetaColumns:   ghgtab.DefaultMetaColumns,
		CountryColumn: ghgtab.DefaultCountryColumn,
		SVG:           true,
	}
}

// Load returns Default overlaid with the YAML file at path. Keys
// missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input table")
	}
	if c.MetaColumns < 0 {
		return fmt.Errorf("meta_columns is %d, must not be negative", c.MetaColumns)
	}
	for _, y := range c.PieYears {
		if y == "" {
			return errors.New("empty pie year")
		}
	}
	return nil
}

// LoadOptions returns the table loading options selected by c.
func (c Config) LoadOptions() ghgtab.LoadOptions {
	return ghgtab.LoadOptions{
		MetaColumns:   c.MetaColumns,
		CountryColumn: c.CountryColumn,
		Sheet:         c.Sheet,
	}
}
