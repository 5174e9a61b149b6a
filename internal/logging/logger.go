// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging configures the charmbracelet/log logger shared by
// the commands in this module.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Field names for structured log entries.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldYear   = "year"
	FieldRows   = "rows"
	FieldYears  = "years"
	FieldSeries = "series"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

// New returns a logger writing to stderr at level, which is one of
// "debug", "info", "warn", or "error". Unknown levels mean "info".
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is like New, but writes to w.
func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "ghgplot",
	})
	setLoggerLevel(logger, level)
	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level logger.
func Default() *log.Logger {
	defaultLoggerOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New("info")
		}
	})
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	Default()
	defaultLogger = logger
}

// SetLevel sets the level of the package-level logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
