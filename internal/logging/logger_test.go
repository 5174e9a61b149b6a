// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for _, test := range []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
	} {
		logger := New(test.level)
		require.NotNil(t, logger)
		assert.Equal(t, test.want, logger.GetLevel(), "level %q", test.level)
	}
}

func TestNewWriterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, "info")
	logger.Debug("hidden")
	logger.Info("wrote chart", FieldPath, "output_plot.png")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "wrote chart")
	assert.Contains(t, out, "path=output_plot.png")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	var buf bytes.Buffer
	SetDefault(NewWriter(&buf, "info"))
	SetLevel("debug")
	Default().Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
