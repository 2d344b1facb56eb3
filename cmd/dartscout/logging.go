// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"dartscout-cli/internal/config"

	"github.com/charmbracelet/log"
)

// setupLogging configures the default logger: leveled output to stderr, with
// a copy appended to the session log file so `dartscout doctor`'s "Show log"
// action has something to show. The file handle lives for the process.
func setupLogging(cfg *config.Config, verboseMode bool) {
	level := log.InfoLevel
	if verboseMode {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if cfg == nil {
		return
	}
	path, err := config.LogFilePath(cfg)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Debug("session log unavailable", "path", path, "err", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}
