// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ghgcharts/ghgcharts/ghgchart"
	"github.com/ghgcharts/ghgcharts/ghgtab"
	"github.com/ghgcharts/ghgcharts/internal/config"
	"github.com/ghgcharts/ghgcharts/internal/logging"
)

func newRootCommand(stdout io.Writer) *cobra.Command {
	var (
		flagConfig  string
		flagDebug   bool
		flagTable   bool
		flagPie     []string
		flagBar     string
		flagOut     string
		flagMeta    int
		flagCountry string
		flagSheet   string
		flagSVG     bool
	)

	cmd := &cobra.Command{
		Use:   "ghgplot [flags] [input]",
		Short: "Chart national greenhouse-gas emissions by year",
		Long: `ghgplot reads a table of greenhouse-gas emissions with one row per
country and one column per year, and draws a trend chart of every
country, share pie charts for selected years, and a bar chart for one
year. Missing measurements are left out of every chart.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flagDebug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if flagConfig != "" {
				var err error
				if cfg, err = config.Load(flagConfig); err != nil {
					return err
				}
			}

			// Flags override the config file.
			flags := cmd.Flags()
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if flags.Changed("pie-year") {
				cfg.PieYears = flagPie
			}
			if flags.Changed("bar-year") {
				cfg.BarYear = flagBar
			}
			if flags.Changed("out") {
				cfg.OutDir = flagOut
			}
			if flags.Changed("meta-columns") {
				cfg.MetaColumns = flagMeta
			}
			if flags.Changed("country-column") {
				cfg.CountryColumn = flagCountry
			}
			if flags.Changed("sheet") {
				cfg.Sheet = flagSheet
			}
			if flags.Changed("svg") {
				cfg.SVG = flagSVG
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.Default()
			t, err := ghgtab.Load(cfg.Input, cfg.LoadOptions())
			if err != nil {
				return err
			}
			logger.Debug("loaded table", logging.FieldInput, cfg.Input,
				logging.FieldRows, len(t.Rows), logging.FieldYears, len(t.Years))

			if flagTable {
				table.Fprint(stdout, ghgtab.SummaryTable(t))
				return nil
			}
			return plotAll(cfg, t, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flagConfig, "config", "", "read settings from YAML `file`")
	f.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	f.BoolVar(&flagTable, "table", false, "print a per-country summary instead of drawing charts")
	f.StringSliceVar(&flagPie, "pie-year", nil, "draw a share pie for `year` (repeatable)")
	f.StringVar(&flagBar, "bar-year", "", "draw a bar chart for `year` (\"\" for none)")
	f.StringVarP(&flagOut, "out", "o", "", "write charts to `dir`")
	f.IntVar(&flagMeta, "meta-columns", 0, "number of leading non-year columns")
	f.StringVar(&flagCountry, "country-column", "", "header label of the country name column")
	f.StringVar(&flagSheet, "sheet", "", "worksheet to read from .xlsx inputs")
	f.BoolVar(&flagSVG, "svg", true, "also write an interactive SVG trend chart")
	return cmd
}

// plotAll draws every chart selected by cfg into cfg.OutDir. It stops
// at the first failure.
func plotAll(cfg config.Config, t *ghgtab.Table, logger *log.Logger) error {
	out := func(name string) string {
		return filepath.Join(cfg.OutDir, name)
	}

	path := out(ghgchart.TrendFile)
	if err := ghgchart.RenderTrendLines(t, path); err != nil {
		return err
	}
	logger.Info("wrote trend chart", logging.FieldPath, path,
		logging.FieldSeries, len(ghgchart.TrendSeries(t)))

	if cfg.SVG {
		path := out(ghgchart.TrendSVGFile)
		switch err := ghgchart.RenderTrendSVG(t, path); {
		case errors.Is(err, ghgchart.ErrNoSeries):
			logger.Debug("skipping interactive chart", logging.FieldPath, path, logging.FieldError, err)
		case err != nil:
			return err
		default:
			logger.Info("wrote interactive trend chart", logging.FieldPath, path)
		}
	}

	for _, year := range cfg.PieYears {
		path := out(ghgchart.PieFile(year))
		if err := ghgchart.RenderSharePie(t, year, path); err != nil {
			return err
		}
		logger.Info("wrote pie chart", logging.FieldYear, year, logging.FieldPath, path)
	}

	if cfg.BarYear != "" {
		path := out(ghgchart.BarFile(cfg.BarYear))
		if err := ghgchart.RenderYearBar(t, cfg.BarYear, path); err != nil {
			return err
		}
		logger.Info("wrote bar chart", logging.FieldYear, cfg.BarYear, logging.FieldPath, path)
	}
	return nil
}
