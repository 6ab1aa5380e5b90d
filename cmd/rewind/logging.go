package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/rewind/status"
)

const (
	logDir      = "logs"
	logFileName = "rewind.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/rewind.log when debug is set, discarding it otherwise
// An oversized log is rotated aside with a timestamp suffix
// The returned file, nil when disabled, must be closed by the caller
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("rewind-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Logging started")
	return f
}

// metricsFileName receives the final metrics snapshot of a debug session
const metricsFileName = "metrics.json"

// writeMetrics dumps the registry next to the debug log
func writeMetrics(reg *status.Registry) error {
	data, err := reg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	if err := os.WriteFile(filepath.Join(logDir, metricsFileName), data, 0644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
