// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghgplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0666))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, []string{"2012", "1998"}, cfg.PieYears)
	assert.Equal(t, "2000", cfg.BarYear)
	assert.Equal(t, 4, cfg.MetaColumns)
	assert.True(t, cfg.SVG)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
input: data/ghg.xlsx
pie_years: ["2005"]
svg: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/ghg.xlsx", cfg.Input)
	assert.Equal(t, []string{"2005"}, cfg.PieYears)
	assert.False(t, cfg.SVG)
	// Unset keys keep their defaults.
	assert.Equal(t, "2000", cfg.BarYear)
	assert.Equal(t, "Country Name", cfg.CountryColumn)
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "pie_yeras: [2012]\n"))
	assert.Error(t, err, "unknown key")

	_, err = Load(writeConfig(t, "pie_years: {\n"))
	assert.Error(t, err, "bad YAML")
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(*Config)
	}{
		{"no input", func(c *Config) { c.Input = "" }},
		{"negative meta columns", func(c *Config) { c.MetaColumns = -1 }},
		{"empty pie year", func(c *Config) { c.PieYears = []string{"2012", ""} }},
	} {
		cfg := Default()
		test.modify(&cfg)
		assert.Error(t, cfg.Validate(), test.name)
	}
}

func TestLoadOptions(t *testing.T) {
	cfg := Default()
	cfg.MetaColumns = 2
	cfg.Sheet = "Data"
	opts := cfg.LoadOptions()
	assert.Equal(t, 2, opts.MetaColumns)
	assert.Equal(t, "Country Name", opts.CountryColumn)
	assert.Equal(t, "Data", opts.Sheet)
}
