// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghgcharts/ghgcharts/ghgtab"
	"github.com/ghgcharts/ghgcharts/internal/logging"
)

const inputCSV = `Country Name,Country Code,Indicator Name,Indicator Code,1998,2000,2012
Albania,ALB,GHG,EN,7200,8100,8900
Aruba,ABW,GHG,EN,,,
Chad,TCD,GHG,EN,3000,,4100
`

func setup(t *testing.T) (input, out string, logs *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "ghg.csv")
	require.NoError(t, os.WriteFile(input, []byte(inputCSV), 0666))

	logs = new(bytes.Buffer)
	orig := logging.Default()
	logging.SetDefault(logging.NewWriter(logs, "info"))
	t.Cleanup(func() { logging.SetDefault(orig) })
	return input, filepath.Join(dir, "out"), logs
}

func TestRunDefaults(t *testing.T) {
	input, out, logs := setup(t)
	var stdout bytes.Buffer
	require.Equal(t, 0, run([]string{input, "--out", out}, &stdout), logs.String())

	for _, name := range []string{
		"output_plot.png",
		"output_plot.svg",
		"emissions_pie_2012.png",
		"emissions_pie_1998.png",
		"emissions_barplot_2000.png",
	} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.Contains(t, logs.String(), "wrote bar chart")
}

func TestRunFlags(t *testing.T) {
	input, out, logs := setup(t)
	args := []string{input, "-o", out, "--pie-year", "2000", "--bar-year", "", "--svg=false"}
	require.Equal(t, 0, run(args, new(bytes.Buffer)), logs.String())

	assert.FileExists(t, filepath.Join(out, "emissions_pie_2000.png"))
	assert.NoFileExists(t, filepath.Join(out, "emissions_pie_2012.png"))
	assert.NoFileExists(t, filepath.Join(out, "output_plot.svg"))
	matches, err := filepath.Glob(filepath.Join(out, "emissions_barplot_*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRunConfigFile(t *testing.T) {
	input, out, logs := setup(t)
	cfgPath := filepath.Join(t.TempDir(), "ghgplot.yaml")
	body := "input: " + input + "\nout_dir: " + out + "\npie_years: []\nbar_year: \"1998\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0666))

	require.Equal(t, 0, run([]string{"--config", cfgPath}, new(bytes.Buffer)), logs.String())
	assert.FileExists(t, filepath.Join(out, "emissions_barplot_1998.png"))
}

func TestRunTable(t *testing.T) {
	input, out, _ := setup(t)
	var stdout bytes.Buffer
	require.Equal(t, 0, run([]string{input, "--out", out, "--table"}, &stdout))
	assert.Contains(t, stdout.String(), "Albania")
	assert.Contains(t, stdout.String(), "years reported")
	assert.NoDirExists(t, out)
}

func TestRunUnknownYear(t *testing.T) {
	input, out, logs := setup(t)
	assert.Equal(t, 1, run([]string{input, "--out", out, "--pie-year", "1990"}, new(bytes.Buffer)))
	assert.NoFileExists(t, filepath.Join(out, "emissions_pie_1990.png"))
	assert.Contains(t, logs.String(), "year=1990")
}

func TestRunMissingInput(t *testing.T) {
	_, out, logs := setup(t)
	missing := filepath.Join(t.TempDir(), "nope.csv")
	assert.Equal(t, 1, run([]string{missing, "--out", out}, new(bytes.Buffer)))
	assert.Contains(t, logs.String(), missing)
	assert.NoDirExists(t, out)
}

func TestErrorFields(t *testing.T) {
	lerr := &ghgtab.LoadError{Path: "x.csv", Err: errors.New("boom")}
	assert.Equal(t, []interface{}{logging.FieldError, lerr, logging.FieldInput, "x.csv"}, errorFields(lerr))

	yerr := &ghgtab.UnknownYearError{Year: "1990"}
	assert.Equal(t, []interface{}{logging.FieldError, yerr, logging.FieldYear, "1990"}, errorFields(yerr))

	plain := errors.New("plain")
	assert.Equal(t, []interface{}{logging.FieldError, plain}, errorFields(plain))
}
