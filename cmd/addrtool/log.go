// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2016-2020 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logRotator writes written data to a rotating log file, without forcing
// every caller to know about rotation.
var logRotator *rotator.Rotator

// logWriter implements io.Writer and writes a message to both standard
// output and the log rotator, if one is active.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var backendLog = slog.NewBackend(logWriter{})

// addrLog is the subsystem logger for addrtool itself; the codec packages
// do not log, so this is the only logger in the program.
var addrLog = backendLog.Logger("ADXR")

// logLevels maps the --debuglevel flag's accepted spellings to slog levels.
var logLevels = map[string]slog.Level{
	"trace":    slog.LevelTrace,
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warn":     slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": slog.LevelCritical,
}

// initLogging parses cfg's --debuglevel and --logfile options and wires up
// addrLog accordingly. It must be called once, before any subcommand runs.
func initLogging(cfg *config) error {
	level, ok := logLevels[cfg.DebugLevel]
	if !ok {
		return fmt.Errorf("unknown debug level %q", cfg.DebugLevel)
	}
	addrLog.SetLevel(level)

	if cfg.LogFile == "" {
		return nil
	}

	logDir := filepath.Dir(cfg.LogFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	r, err := rotator.New(cfg.LogFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("create log rotator: %w", err)
	}
	logRotator = r

	return nil
}

// closeLogging flushes and closes the log rotator, if one was started.
func closeLogging() {
	if logRotator != nil {
		logRotator.Close()
	}
}

var _ io.Writer = logWriter{}
