package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FetchLogger logs one fetch cycle to a file under ~/.cribl-explorer/logs.
// It implements cribl.FetchLog, so the aggregator reports every endpoint
// outcome here, including the per-group failures it swallows.
type FetchLogger struct {
	file      *os.File
	startTime time.Time
}

// NewFetchLogger creates a log file for one fetch cycle.
func NewFetchLogger() (*FetchLogger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Join(home, ".cribl-explorer", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("fetch-%s.log", timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	logger := &FetchLogger{
		file:      file,
		startTime: time.Now(),
	}
	logger.writeHeader()
	return logger, nil
}

func (l *FetchLogger) writeHeader() {
	l.file.WriteString(strings.Repeat("=", 80) + "\n")
	l.file.WriteString("Cribl Explorer fetch cycle\n")
	l.file.WriteString(fmt.Sprintf("Started: %s\n", l.startTime.Format(time.RFC3339)))
	l.file.WriteString(strings.Repeat("=", 80) + "\n\n")
}

// Log writes a message to the log file.
func (l *FetchLogger) Log(format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	l.file.WriteString(fmt.Sprintf("[%s] %s\n", timestamp, msg))
}

// Fetched records a successful endpoint fetch.
func (l *FetchLogger) Fetched(endpoint string, records int) {
	l.Log("OK   %s (%d records)", endpoint, records)
}

// Failed records a failed endpoint fetch.
func (l *FetchLogger) Failed(endpoint string, err error) {
	l.Log("FAIL %s: %v", endpoint, err)
}

// Close closes the log file and returns its path.
func (l *FetchLogger) Close() string {
	if l == nil || l.file == nil {
		return ""
	}
	l.file.WriteString(fmt.Sprintf("\nDuration: %s\n", time.Since(l.startTime).Round(time.Millisecond)))
	path := l.file.Name()
	l.file.Close()
	return path
}
